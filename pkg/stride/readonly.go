package stride

import (
	"cmp"
	"iter"

	"strided/pkg/iterator"
)

// ReadOnly is a Cursor without write access. It has the same arithmetic,
// comparison and distance rules.
//
// The restriction covers the cursor's own methods only. Buffer, like
// ContiguousReadOnly, returns the underlying slice itself so that positions
// can be converted between cursor types; writes through it are visible to
// every cursor on the array.
type ReadOnly[T any, S Stepper] struct {
	pos[T, S]
}

var (
	_ iterator.RandomAccess[ReadOnly[int, Fwd2], int]    = ReadOnly[int, Fwd2]{}
	_ iterator.RandomAccess[ReadOnly[int, Dynamic], int] = ReadOnly[int, Dynamic]{}
)

// ReadAt returns a read-only cursor at buf[i] with the static step S.
func ReadAt[S Static, T any](buf []T, i int) ReadOnly[T, S] {
	return At[S](buf, i).ReadOnly()
}

// ReadDyn returns a read-only cursor at buf[i] with the run-time step n.
func ReadDyn[T any](buf []T, i, n int) ReadOnly[T, Dynamic] {
	return Dyn(buf, i, n).ReadOnly()
}

// ReadDynAt returns a read-only cursor at buf[i] with a run-time step of 1.
func ReadDynAt[T any](buf []T, i int) ReadOnly[T, Dynamic] {
	return DynAt(buf, i).ReadOnly()
}

// ReadFrom converts a host position handle into a read-only cursor.
func ReadFrom[S Static, T any](p iterator.Position[T]) ReadOnly[T, S] {
	return ReadAt[S](p.Buffer(), p.Index())
}

func (c *ReadOnly[T, S]) Inc() ReadOnly[T, S] {
	c.idx += c.step.Step()
	return *c
}

func (c *ReadOnly[T, S]) PostInc() ReadOnly[T, S] {
	old := *c
	c.idx += c.step.Step()
	return old
}

func (c *ReadOnly[T, S]) Dec() ReadOnly[T, S] {
	c.idx -= c.step.Step()
	return *c
}

func (c *ReadOnly[T, S]) PostDec() ReadOnly[T, S] {
	old := *c
	c.idx -= c.step.Step()
	return old
}

func (c *ReadOnly[T, S]) Advance(n int) { c.idx += n * c.step.Step() }
func (c *ReadOnly[T, S]) Retreat(n int) { c.idx -= n * c.step.Step() }

func (c ReadOnly[T, S]) Next() ReadOnly[T, S] {
	c.idx += c.step.Step()
	return c
}

func (c ReadOnly[T, S]) Add(n int) ReadOnly[T, S] {
	c.idx += n * c.step.Step()
	return c
}

func (c ReadOnly[T, S]) Sub(n int) ReadOnly[T, S] {
	c.idx -= n * c.step.Step()
	return c
}

func (c ReadOnly[T, S]) Distance(o ReadOnly[T, S]) (int, error) { return c.distance(o.pos) }

func (c ReadOnly[T, S]) Equal(o ReadOnly[T, S]) bool     { return c.offsetTo(o.pos) == 0 }
func (c ReadOnly[T, S]) NotEqual(o ReadOnly[T, S]) bool  { return c.offsetTo(o.pos) != 0 }
func (c ReadOnly[T, S]) Less(o ReadOnly[T, S]) bool      { return c.offsetTo(o.pos) > 0 }
func (c ReadOnly[T, S]) LessEq(o ReadOnly[T, S]) bool    { return c.offsetTo(o.pos) >= 0 }
func (c ReadOnly[T, S]) Greater(o ReadOnly[T, S]) bool   { return c.offsetTo(o.pos) < 0 }
func (c ReadOnly[T, S]) GreaterEq(o ReadOnly[T, S]) bool { return c.offsetTo(o.pos) <= 0 }
func (c ReadOnly[T, S]) Compare(o ReadOnly[T, S]) int    { return cmp.Compare(0, c.offsetTo(o.pos)) }

func (c ReadOnly[T, S]) Walk(last ReadOnly[T, S]) iter.Seq[T] { return c.walk(last.pos) }
func (c ReadOnly[T, S]) Take(n int) iter.Seq2[int, T]         { return c.take(n) }

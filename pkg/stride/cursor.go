package stride

import (
	"cmp"
	"iter"
	"unsafe"

	"strided/pkg/iterator"
	"strided/pkg/stridederrors"

	"github.com/pkg/errors"
)

// pos is the state shared by Cursor and ReadOnly.
type pos[T any, S Stepper] struct {
	buf  []T
	idx  int
	step S
}

// Get returns the element under the cursor.
func (p pos[T, S]) Get() T { return p.buf[p.idx] }

// At returns the element n steps away without moving the cursor.
func (p pos[T, S]) At(n int) T { return p.buf[p.idx+n*p.step.Step()] }

// Index returns the position as an index into Buffer. It may lie outside the
// slice, e.g. one before the first element.
func (p pos[T, S]) Index() int { return p.idx }

// Buffer returns the slice the cursor walks.
func (p pos[T, S]) Buffer() []T { return p.buf }

// Stride returns the step.
func (p pos[T, S]) Stride() int { return p.step.Step() }

// IsContiguous reports whether consecutive positions are adjacent elements.
func (p pos[T, S]) IsContiguous() bool {
	s := p.step.Step()
	return s == 1 || s == -1
}

// offsetTo returns the number of elements from p to o. Both must point into
// the same underlying array; slices with different starts are reconciled by
// address.
func (p pos[T, S]) offsetTo(o pos[T, S]) int {
	d := o.idx - p.idx
	pb, ob := unsafe.SliceData(p.buf), unsafe.SliceData(o.buf)
	if pb == ob {
		return d
	}
	var zero T
	size := unsafe.Sizeof(zero)
	if size == 0 {
		return d
	}
	return d + int(uintptr(unsafe.Pointer(ob))-uintptr(unsafe.Pointer(pb)))/int(size)
}

func (p pos[T, S]) distance(o pos[T, S]) (int, error) {
	if p.step != o.step {
		return 0, errors.Wrapf(stridederrors.ErrStrideMismatch, "strides %d and %d", p.step.Step(), o.step.Step())
	}
	s := p.step.Step()
	if s == 0 {
		return 0, stridederrors.ErrZeroStride
	}
	return p.offsetTo(o) / s, nil
}

func (p pos[T, S]) walk(last pos[T, S]) iter.Seq[T] {
	return func(yield func(T) bool) {
		s := p.step.Step()
		if s == 0 {
			return
		}
		for it := p; ; it.idx += s {
			d := it.offsetTo(last)
			if (s > 0 && d <= 0) || (s < 0 && d >= 0) {
				return
			}
			if !yield(it.buf[it.idx]) {
				return
			}
		}
	}
}

func (p pos[T, S]) take(n int) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		s := p.step.Step()
		for i, j := 0, p.idx; i < n; i, j = i+1, j+s {
			if !yield(i, p.buf[j]) {
				return
			}
		}
	}
}

// Cursor is a read-write strided position in a slice of T.
type Cursor[T any, S Stepper] struct {
	pos[T, S]
}

var (
	_ iterator.Mutable[Cursor[int, Fwd1], int]    = Cursor[int, Fwd1]{}
	_ iterator.Mutable[Cursor[int, Dynamic], int] = Cursor[int, Dynamic]{}
	_ iterator.Position[int]                      = Cursor[int, Back2]{}
)

// New returns a cursor at buf[i] moving by s.
func New[T any, S Stepper](buf []T, i int, s S) Cursor[T, S] {
	return Cursor[T, S]{pos[T, S]{buf: buf, idx: i, step: s}}
}

// At returns a cursor at buf[i] with the static step S.
func At[S Static, T any](buf []T, i int) Cursor[T, S] {
	var s S
	return New(buf, i, s)
}

// Dyn returns a cursor at buf[i] with the run-time step n.
func Dyn[T any](buf []T, i, n int) Cursor[T, Dynamic] {
	return New(buf, i, Every(n))
}

// DynAt returns a cursor at buf[i] with a run-time step of 1.
func DynAt[T any](buf []T, i int) Cursor[T, Dynamic] {
	return New(buf, i, Dynamic{})
}

// From converts a host position handle into a cursor with the static step S.
func From[S Static, T any](p iterator.Position[T]) Cursor[T, S] {
	return At[S](p.Buffer(), p.Index())
}

// DynFrom converts a host position handle into a cursor with the run-time step n.
func DynFrom[T any](p iterator.Position[T], n int) Cursor[T, Dynamic] {
	return Dyn(p.Buffer(), p.Index(), n)
}

// Plus is c.Add(n) with the operands swapped.
func Plus[T any, S Stepper](n int, c Cursor[T, S]) Cursor[T, S] {
	return c.Add(n)
}

// Ptr returns the address of the element under the cursor.
func (c Cursor[T, S]) Ptr() *T { return &c.buf[c.idx] }

// Set writes v to the element under the cursor.
func (c Cursor[T, S]) Set(v T) { c.buf[c.idx] = v }

// SetAt writes v to the element n steps away.
func (c Cursor[T, S]) SetAt(n int, v T) { c.buf[c.idx+n*c.step.Step()] = v }

// Inc moves one step forward and returns the moved cursor.
func (c *Cursor[T, S]) Inc() Cursor[T, S] {
	c.idx += c.step.Step()
	return *c
}

// PostInc moves one step forward and returns the cursor as it was.
func (c *Cursor[T, S]) PostInc() Cursor[T, S] {
	old := *c
	c.idx += c.step.Step()
	return old
}

// Dec moves one step back and returns the moved cursor.
func (c *Cursor[T, S]) Dec() Cursor[T, S] {
	c.idx -= c.step.Step()
	return *c
}

// PostDec moves one step back and returns the cursor as it was.
func (c *Cursor[T, S]) PostDec() Cursor[T, S] {
	old := *c
	c.idx -= c.step.Step()
	return old
}

// Advance moves n steps.
func (c *Cursor[T, S]) Advance(n int) { c.idx += n * c.step.Step() }

// Retreat moves n steps back.
func (c *Cursor[T, S]) Retreat(n int) { c.idx -= n * c.step.Step() }

func (c Cursor[T, S]) Next() Cursor[T, S] {
	c.idx += c.step.Step()
	return c
}

func (c Cursor[T, S]) Add(n int) Cursor[T, S] {
	c.idx += n * c.step.Step()
	return c
}

func (c Cursor[T, S]) Sub(n int) Cursor[T, S] {
	c.idx -= n * c.step.Step()
	return c
}

// Distance returns the number of steps from c to o, so that c.Add(d) equals o.
// A partial trailing step is truncated toward zero.
func (c Cursor[T, S]) Distance(o Cursor[T, S]) (int, error) { return c.distance(o.pos) }

func (c Cursor[T, S]) Equal(o Cursor[T, S]) bool     { return c.offsetTo(o.pos) == 0 }
func (c Cursor[T, S]) NotEqual(o Cursor[T, S]) bool  { return c.offsetTo(o.pos) != 0 }
func (c Cursor[T, S]) Less(o Cursor[T, S]) bool      { return c.offsetTo(o.pos) > 0 }
func (c Cursor[T, S]) LessEq(o Cursor[T, S]) bool    { return c.offsetTo(o.pos) >= 0 }
func (c Cursor[T, S]) Greater(o Cursor[T, S]) bool   { return c.offsetTo(o.pos) < 0 }
func (c Cursor[T, S]) GreaterEq(o Cursor[T, S]) bool { return c.offsetTo(o.pos) <= 0 }

// Compare orders c and o by buffer position: -1 if c comes first, +1 if o
// does, 0 if they denote the same element.
func (c Cursor[T, S]) Compare(o Cursor[T, S]) int { return cmp.Compare(0, c.offsetTo(o.pos)) }

// Walk yields the elements from c up to, not including, last. It stops as
// soon as the cursor passes last in the direction of the step, so the range
// length need not be a multiple of the step. A zero step yields nothing.
func (c Cursor[T, S]) Walk(last Cursor[T, S]) iter.Seq[T] { return c.walk(last.pos) }

// Take yields exactly n elements starting at c, whatever the step.
func (c Cursor[T, S]) Take(n int) iter.Seq2[int, T] { return c.take(n) }

// ReadOnly returns a read-only cursor at the same position with the same step.
func (c Cursor[T, S]) ReadOnly() ReadOnly[T, S] { return ReadOnly[T, S]{c.pos} }

package stride

import (
	"iter"
	"unsafe"
)

// Contiguous returns the block of memory traversed from first up to, not
// including, last. For Back1 the block is returned in memory order, which is
// the reverse of the traversal order. first and last may come from different
// re-slices of one array. last must be reachable from first; otherwise the
// result is nil.
func Contiguous[S Unit, T any](first, last Cursor[T, S]) []T {
	return contiguous(first.pos, last.pos)
}

// ContiguousReadOnly is Contiguous for read-only cursors. The returned slice
// aliases the buffer; callers that only hold read access must not write to it.
func ContiguousReadOnly[S Unit, T any](first, last ReadOnly[T, S]) []T {
	return contiguous(first.pos, last.pos)
}

func contiguous[S Unit, T any](first, last pos[T, S]) []T {
	// lo holds the lowest address of the block, in whichever re-slice
	// of the array it was given.
	lo, n := first, first.offsetTo(last)
	if first.step.Step() < 0 {
		lo, n = last, -n
		lo.idx++
	}
	if n <= 0 {
		return nil
	}
	var zero T
	base := unsafe.Add(unsafe.Pointer(unsafe.SliceData(lo.buf)), lo.idx*int(unsafe.Sizeof(zero)))
	return unsafe.Slice((*T)(base), n)
}

// Repeat yields v n times through a zero-step cursor.
func Repeat[T any](v T, n int) iter.Seq[T] {
	c := At[Still]([]T{v}, 0)
	return func(yield func(T) bool) {
		for _, x := range c.Take(n) {
			if !yield(x) {
				return
			}
		}
	}
}

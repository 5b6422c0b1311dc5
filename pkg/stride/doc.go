// Package stride provides random-access cursors that walk a slice with a fixed
// step between consecutive logical elements.
//
// A cursor is a position in a buffer plus a step. Advancing moves the position
// by the step, so a cursor with step 3 visits buf[i], buf[i+3], buf[i+6] and so
// on. Rows, columns and diagonals of a flat row-major matrix are all strided
// ranges of the same buffer, which lets generic sequence code run over them
// without copying.
//
// The step is a type parameter. Static steps are zero-size types whose Step
// method returns a constant (Fwd1, Fwd2, Back1, Still, ...). The dynamic step,
// Dynamic, stores its value per cursor and is used when the step is only known
// at run time:
//
//	buf := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
//	end := stride.At[stride.Fwd1](buf, len(buf))
//	for it := stride.At[stride.Fwd2](buf, 0); it.Index() < end.Index(); it.Inc() {
//		fmt.Println(it.Get()) // 1 3 5 7 9
//	}
//
//	col := stride.Dyn(buf, 1, cols)
//
// Equality and ordering compare the denoted element only; the step never takes
// part in identity. Ordering is raw buffer order, so a cursor with a negative
// step moves towards "smaller" positions and loops over it must terminate
// with > rather than <.
//
// A zero step is allowed and keeps the cursor on the same element forever.
// It broadcasts one value into code that expects a sequence. Such a cursor
// never reaches any other position, so a loop that stops on equality with an
// end cursor never ends. Use Take or Repeat to bound it.
//
// For the same reason, code that stops on equality (as the algorithms in
// package algo do) must be given ranges whose length is an exact multiple of
// the step. Walk terminates by ordering and is safe for any length.
//
// Element access is not checked beyond the slice bounds check of the Go
// runtime. The only reported failure is Distance between two dynamic cursors
// with different steps, or with a zero step; both match
// stridederrors.ErrInvalidOperation.
//
// Cursors do not own the buffer and are not synchronized. Several cursors may
// read one buffer from different goroutines; writers must be coordinated by
// the caller.
package stride

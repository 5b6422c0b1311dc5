// Package matrix provides row-major dense matrix views over flat buffers.
// Rows, columns and diagonals are exposed as strided cursor ranges over the
// same buffer, so no view copies data.
package matrix

import (
	"strided/pkg/algo"
	"strided/pkg/stride"
	"strided/pkg/stridederrors"
	"strided/pkg/types"

	"github.com/pkg/errors"
)

// Dense is a rows×cols view over data, stored row by row.
type Dense[T types.Number] struct {
	rows, cols int
	data       []T
}

// New wraps data as a rows×cols matrix. len(data) must be rows*cols.
func New[T types.Number](rows, cols int, data []T) (*Dense[T], error) {
	if rows < 0 || cols < 0 {
		return nil, errors.Wrapf(stridederrors.ErrInvalidArgument, "negative shape %dx%d", rows, cols)
	}
	if len(data) != rows*cols {
		return nil, errors.Wrapf(stridederrors.ErrDimensionMismatch, "%dx%d matrix over %d elements", rows, cols, len(data))
	}
	return &Dense[T]{rows: rows, cols: cols, data: data}, nil
}

// Zeros allocates a zero rows×cols matrix.
func Zeros[T types.Number](rows, cols int) *Dense[T] {
	return &Dense[T]{rows: rows, cols: cols, data: make([]T, rows*cols)}
}

func (m *Dense[T]) Rows() int     { return m.rows }
func (m *Dense[T]) Cols() int     { return m.cols }
func (m *Dense[T]) Data() []T     { return m.data }
func (m *Dense[T]) At(i, j int) T { return m.data[i*m.cols+j] }

func (m *Dense[T]) Set(i, j int, v T) { m.data[i*m.cols+j] = v }

// Row returns the cursor range over row i.
func (m *Dense[T]) Row(i int) (first, last stride.Cursor[T, stride.Fwd1]) {
	return stride.At[stride.Fwd1](m.data, i*m.cols), stride.At[stride.Fwd1](m.data, (i+1)*m.cols)
}

// Col returns the cursor range over column j. last lies past the buffer and
// must not be dereferenced.
func (m *Dense[T]) Col(j int) (first, last stride.Cursor[T, stride.Dynamic]) {
	return stride.Dyn(m.data, j, m.cols), stride.Dyn(m.data, j+m.rows*m.cols, m.cols)
}

// Diag returns the cursor range over the main diagonal of a square matrix.
func (m *Dense[T]) Diag() (first, last stride.Cursor[T, stride.Dynamic], err error) {
	if m.rows != m.cols {
		return first, last, errors.Wrapf(stridederrors.ErrDimensionMismatch, "diagonal of %dx%d matrix", m.rows, m.cols)
	}
	first = stride.Dyn(m.data, 0, m.cols+1)
	return first, first.Add(m.rows), nil
}

// AntiDiag returns the cursor range over the anti-diagonal of a square
// matrix, from the top-right to the bottom-left corner.
func (m *Dense[T]) AntiDiag() (first, last stride.Cursor[T, stride.Dynamic], err error) {
	if m.rows != m.cols {
		return first, last, errors.Wrapf(stridederrors.ErrDimensionMismatch, "anti-diagonal of %dx%d matrix", m.rows, m.cols)
	}
	first = stride.Dyn(m.data, m.cols-1, m.cols-1)
	if m.cols == 1 {
		// a step of zero would never reach last
		first = stride.Dyn(m.data, 0, 1)
	}
	return first, first.Add(m.rows), nil
}

// Trace returns the sum of the main diagonal.
func (m *Dense[T]) Trace() (T, error) {
	first, last, err := m.Diag()
	if err != nil {
		return 0, err
	}
	return algo.Accumulate(first, last, T(0)), nil
}

// Transpose returns a new cols×rows matrix. Each column of m is copied into a
// row of the result.
func (m *Dense[T]) Transpose() *Dense[T] {
	t := Zeros[T](m.cols, m.rows)
	for j := 0; j < m.cols; j++ {
		first, last := m.Col(j)
		out, _ := t.Row(j)
		algo.Transform(first, last, out, func(v T) T { return v })
	}
	return t
}

// Mul returns a×b. Each cell is the inner product of a row of a and a column of b.
func Mul[T types.Number](a, b *Dense[T]) (*Dense[T], error) {
	if a.cols != b.rows {
		return nil, errors.Wrapf(stridederrors.ErrDimensionMismatch, "%dx%d times %dx%d", a.rows, a.cols, b.rows, b.cols)
	}
	res := Zeros[T](a.rows, b.cols)
	for i := 0; i < a.rows; i++ {
		rowFirst, rowLast := a.Row(i)
		for j := 0; j < b.cols; j++ {
			colFirst, _ := b.Col(j)
			res.Set(i, j, algo.InnerProduct(rowFirst, rowLast, colFirst.ReadOnly(), T(0)))
		}
	}
	return res, nil
}

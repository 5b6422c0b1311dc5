// Package algo holds generic sequence algorithms over random-access cursors.
//
// Every algorithm walks [first, last) and stops when the cursor becomes equal
// to last. With strided cursors the distance between first and last must be
// an exact multiple of the step, otherwise last is stepped over and the walk
// runs past the end of the range.
package algo

import (
	"sort"

	"strided/pkg/iterator"
	"strided/pkg/types"
)

// Distancer is the part of the cursor contract Count needs.
type Distancer[C any] interface {
	Distance(other C) (int, error)
}

// Accumulate returns init plus the sum of the range.
func Accumulate[C iterator.RandomAccess[C, T], T types.Number](first, last C, init T) T {
	for it := first; !it.Equal(last); it = it.Next() {
		init += it.Get()
	}
	return init
}

// InnerProduct returns init plus the sum of pairwise products of [first1, last1)
// and the range of the same length starting at first2. The two ranges may use
// different cursor types.
func InnerProduct[C1 iterator.RandomAccess[C1, T], C2 iterator.RandomAccess[C2, T], T types.Number](first1, last1 C1, first2 C2, init T) T {
	for it, jt := first1, first2; !it.Equal(last1); it, jt = it.Next(), jt.Next() {
		init += it.Get() * jt.Get()
	}
	return init
}

// Transform writes fn(x) for every x of [first, last) through out and returns
// out advanced past the last write.
func Transform[C iterator.RandomAccess[C, T], O iterator.Mutable[O, U], T, U any](first, last C, out O, fn func(T) U) O {
	for it := first; !it.Equal(last); it = it.Next() {
		out.Set(fn(it.Get()))
		out = out.Next()
	}
	return out
}

// Fill assigns v to every element of [first, last).
func Fill[C iterator.Mutable[C, T], T any](first, last C, v T) {
	for it := first; !it.Equal(last); it = it.Next() {
		it.Set(v)
	}
}

// Count returns the number of steps in [first, last).
func Count[C Distancer[C]](first, last C) (int, error) {
	return first.Distance(last)
}

// Sort sorts [first, last) in place by less. It fails when the range length
// cannot be computed, see Distance on the cursor.
func Sort[C iterator.Mutable[C, T], T any](first, last C, less func(a, b T) bool) error {
	n, err := Count(first, last)
	if err != nil {
		return err
	}
	sort.Sort(&sorter[C, T]{first: first, n: n, less: less})
	return nil
}

type sorter[C iterator.Mutable[C, T], T any] struct {
	first C
	n     int
	less  func(a, b T) bool
}

func (s *sorter[C, T]) Len() int           { return s.n }
func (s *sorter[C, T]) Less(i, j int) bool { return s.less(s.first.At(i), s.first.At(j)) }

func (s *sorter[C, T]) Swap(i, j int) {
	a, b := s.first.At(i), s.first.At(j)
	s.first.SetAt(i, b)
	s.first.SetAt(j, a)
}

/*mat contains a minimal N-dimensional array type used to hold the value
tensors of grid interpolators. Arrays are stored in row-major order, and
views share storage with the array they were taken from.

This is not a linear algebra package. Anything which needs real matrix
operations should go through gonum.
*/
package mat

import (
	"fmt"
)

// Array represents an N-dimensional array of values. A zero-rank array holds
// exactly one value.
type Array[T any] struct {
	Vals    []T
	shape   []int
	strides []int
	offset  int
}

// New creates an array with the specified values and shape. vals is not
// copied.
func New[T any](vals []T, shape ...int) (*Array[T], error) {
	n := 1
	for i, s := range shape {
		if s < 0 {
			return nil, fmt.Errorf(
				"Axis %d of array has negative length %d.", i, s,
			)
		}
		n *= s
	}
	if n != len(vals) {
		return nil, fmt.Errorf(
			"Shape %v requires %d values, but %d were given.",
			shape, n, len(vals),
		)
	}

	a := &Array[T]{Vals: vals, shape: append([]int{}, shape...)}
	a.strides = rowMajorStrides(a.shape)
	return a, nil
}

// Must is like New, but panics on an invalid shape. It is intended for
// literals in tests and examples.
func Must[T any](vals []T, shape ...int) *Array[T] {
	a, err := New(vals, shape...)
	if err != nil {
		panic(err.Error())
	}
	return a
}

// Zeros creates an array of the specified shape with zero values.
func Zeros[T any](shape ...int) *Array[T] {
	n := 1
	for _, s := range shape {
		n *= s
	}
	return Must(make([]T, n), shape...)
}

// Scalar creates a zero-rank array holding a single value.
func Scalar[T any](v T) *Array[T] {
	return Must([]T{v})
}

func rowMajorStrides(shape []int) []int {
	strides := make([]int, len(shape))
	stride := 1
	for i := len(shape) - 1; i >= 0; i-- {
		strides[i] = stride
		stride *= shape[i]
	}
	return strides
}

// NDim returns the rank of the array.
func (a *Array[T]) NDim() int { return len(a.shape) }

// Shape returns a copy of the array's extent along each axis.
func (a *Array[T]) Shape() []int { return append([]int{}, a.shape...) }

// Dim returns the extent of the array along a single axis.
func (a *Array[T]) Dim(axis int) int { return a.shape[axis] }

// Len returns the number of elements in the array.
func (a *Array[T]) Len() int {
	n := 1
	for _, s := range a.shape {
		n *= s
	}
	return n
}

func (a *Array[T]) index(idx []int) int {
	if len(idx) != len(a.shape) {
		panic(fmt.Sprintf(
			"Index %v has %d axes, but array has %d.",
			idx, len(idx), len(a.shape),
		))
	}
	flat := a.offset
	for i, j := range idx {
		if j < 0 || j >= a.shape[i] {
			panic(fmt.Sprintf(
				"Index %v is out of range for shape %v.", idx, a.shape,
			))
		}
		flat += j * a.strides[i]
	}
	return flat
}

// At returns the element at the given index.
func (a *Array[T]) At(idx ...int) T { return a.Vals[a.index(idx)] }

// Set writes v to the given index.
func (a *Array[T]) Set(v T, idx ...int) { a.Vals[a.index(idx)] = v }

// First returns the first element in row-major order.
func (a *Array[T]) First() T { return a.Vals[a.offset] }

// IndexAxis returns a view of the array with the given axis fixed at i. The
// result has one fewer axis and shares storage with a.
func (a *Array[T]) IndexAxis(axis, i int) *Array[T] {
	if axis < 0 || axis >= len(a.shape) {
		panic(fmt.Sprintf("Axis %d out of range for shape %v.", axis, a.shape))
	} else if i < 0 || i >= a.shape[axis] {
		panic(fmt.Sprintf(
			"Index %d out of range for axis %d of shape %v.", i, axis, a.shape,
		))
	}

	shape := make([]int, 0, len(a.shape)-1)
	strides := make([]int, 0, len(a.shape)-1)
	shape = append(append(shape, a.shape[:axis]...), a.shape[axis+1:]...)
	strides = append(append(strides, a.strides[:axis]...), a.strides[axis+1:]...)

	return &Array[T]{
		Vals:    a.Vals,
		shape:   shape,
		strides: strides,
		offset:  a.offset + i*a.strides[axis],
	}
}

// Flat returns the elements of the array in row-major order. The result is a
// new slice.
func (a *Array[T]) Flat() []T {
	out := make([]T, 0, a.Len())
	a.Each(func(_ []int, v T) { out = append(out, v) })
	return out
}

// Each calls f on every element of the array in row-major order. idx is
// reused between calls.
func (a *Array[T]) Each(f func(idx []int, v T)) {
	n := a.Len()
	if n == 0 {
		return
	}
	idx := make([]int, len(a.shape))
	for k := 0; k < n; k++ {
		f(idx, a.At(idx...))
		for i := len(idx) - 1; i >= 0; i-- {
			idx[i]++
			if idx[i] < a.shape[i] {
				break
			}
			idx[i] = 0
		}
	}
}

// Clone returns a contiguous copy of the array which shares no storage with a.
func (a *Array[T]) Clone() *Array[T] {
	return Must(a.Flat(), a.shape...)
}

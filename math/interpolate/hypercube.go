package interpolate

import (
	"fmt"

	"github.com/phil-mansfield/gointerp/math/mat"
)

// hypercube evaluates N-D data at point by repeatedly blending the 2^k grid
// points surrounding it, one axis at a time, until a single value remains.
// blend combines a lower and upper corner given the fractional position of
// the point between them.
//
// Before blending, every axis on which point lies exactly on a grid
// coordinate is removed, so that data which is exactly representable is
// returned without rounding.
func hypercube[T Float](
	data *DataND[T], point []T, blend func(lo, hi, diff T) T,
) (T, error) {
	values := data.Values
	if values.Len() == 1 {
		return values.First(), nil
	}

	grid := append([][]T{}, data.Grid...)
	pt := append([]T{}, point...)

	// Reverse order, so removing an axis doesn't shift the ones still to be
	// checked.
	for dim := len(pt) - 1; dim >= 0; dim-- {
		if i := indexOf(grid[dim], pt[dim]); i >= 0 {
			values = values.IndexAxis(dim, i)
			grid = append(grid[:dim], grid[dim+1:]...)
			pt = append(pt[:dim], pt[dim+1:]...)
		}
	}
	if values.Len() == 1 {
		return values.First(), nil
	}

	k := len(pt)
	lowers, uppers := make([]int, k), make([]int, k)
	diffs := make([]T, k)
	for dim := range pt {
		lowers[dim], uppers[dim], diffs[dim] = bracket(grid[dim], pt[dim])
	}

	perms := indexPermutations(k)
	corners := mat.Zeros[T](twos(k)...)
	idx := make([]int, k)
	for _, p := range perms {
		for dim := range p {
			if p[dim] == 0 {
				idx[dim] = lowers[dim]
			} else {
				idx[dim] = uppers[dim]
			}
		}
		corners.Set(values.At(idx...), p...)
	}

	for dim := 0; dim < k; dim++ {
		// The second half of perms holds the upper counterparts of the
		// first half, in the same order.
		half := len(perms) / 2
		next := mat.Zeros[T](twos(k - dim - 1)...)
		for i := 0; i < half; i++ {
			lo, hi := corners.At(perms[i]...), corners.At(perms[half+i]...)
			if dim == 0 && (lo != lo || hi != hi) {
				return 0, &InterpolateError{
					Kind: NaNValue,
					Msg: fmt.Sprintf(
						"cannot interpolate with NaN values: point = %v, grid = %v, values = %v",
						point, data.Grid, corners.Flat(),
					),
				}
			}
			next.Set(blend(lo, hi, diffs[dim]), perms[i][1:]...)
		}
		corners = next
		perms = indexPermutations(k - dim - 1)
	}

	return corners.First(), nil
}

// indexPermutations returns every index of a (2, 2, ..., 2) array with k
// axes, in row-major order.
func indexPermutations(k int) [][]int {
	perms := make([][]int, 1<<k)
	for i := range perms {
		p := make([]int, k)
		for dim := 0; dim < k; dim++ {
			p[dim] = (i >> (k - 1 - dim)) & 1
		}
		perms[i] = p
	}
	return perms
}

func twos(k int) []int {
	out := make([]int, k)
	for i := range out {
		out[i] = 2
	}
	return out
}

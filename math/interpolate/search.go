package interpolate

import (
	"golang.org/x/exp/constraints"
)

// Float is the set of element types interpolators accept. Named types such
// as physical quantities with an underlying float type are allowed.
type Float interface {
	constraints.Float
}

// nearestIndex returns the index i such that grid[i] <= x <= grid[i+1], to be
// used as the lower index of a bracketing pair. x is expected to be inside the
// range of grid. When x equals the last grid point, len(grid) - 2 is returned
// so that i+1 is still a valid index.
//
// Grids with fewer than two points always return 0.
func nearestIndex[T Float](grid []T, x T) int {
	n := len(grid)
	if n < 2 {
		return 0
	} else if x == grid[n-1] {
		return n - 2
	}

	lo, hi := 0, n-1
	for lo < hi {
		mid := lo + (hi-lo)/2
		if grid[mid] >= x {
			hi = mid
		} else {
			lo = mid + 1
		}
	}

	if lo > 0 && grid[lo] >= x {
		lo--
	}
	// NaN compares false against everything and would otherwise run off the
	// end.
	if lo > n-2 {
		lo = n - 2
	}
	return lo
}

// lowerIndex is nearestIndex extended to points outside the grid, which are
// assigned to the interval closest to them.
func lowerIndex[T Float](grid []T, x T) int {
	n := len(grid)
	if n < 2 || x < grid[0] {
		return 0
	} else if x > grid[n-1] {
		return n - 2
	}
	return nearestIndex(grid, x)
}

// bracket returns the bracketing indices of x in grid and the fractional
// position of x between them. Grids with a single point give (0, 0, 0).
func bracket[T Float](grid []T, x T) (lo, hi int, diff T) {
	if len(grid) < 2 {
		return 0, 0, 0
	}
	lo = lowerIndex(grid, x)
	hi = lo + 1
	return lo, hi, (x - grid[lo]) / (grid[hi] - grid[lo])
}

// nearer returns whichever of the bracketing indices of x is closer to it.
// The choice is made on the same fractional position bracket computes, so
// that every engine agrees on points near a midpoint. Exact midpoints go to
// the upper index.
func nearer[T Float](grid []T, x T) int {
	if len(grid) < 2 {
		return 0
	}
	lo, hi, diff := bracket(grid, x)
	if diff < 0.5 {
		return lo
	}
	return hi
}

// indexOf returns the position of x in grid, or -1.
func indexOf[T Float](grid []T, x T) int {
	for i, g := range grid {
		if g == x {
			return i
		}
	}
	return -1
}

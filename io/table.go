package io

import (
	"fmt"
	"math"
	"sort"

	"github.com/phil-mansfield/table"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"

	"github.com/phil-mansfield/gointerp/math/interpolate"
	"github.com/phil-mansfield/gointerp/math/mat"
)

// ReadTable reads long-format grid data: every row of the whitespace
// separated file holds dims coordinates followed by a value. The grid along
// each axis is the sorted set of distinct coordinates in that column. Grid
// points which no row mentions are NaN, which interpolate rejects whenever a
// query needs them.
func ReadTable(fname string, dims int) (*interpolate.DataND[float64], error) {
	if dims < 1 {
		return nil, fmt.Errorf("Table %s must have at least one coordinate column.", fname)
	}

	colIdxs := make([]int, dims+1)
	for i := range colIdxs {
		colIdxs[i] = i
	}
	cols, err := table.ReadTable(fname, colIdxs, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "reading table %s", fname)
	}

	data, err := GridFromColumns(cols[:dims], cols[dims])
	if err != nil {
		return nil, errors.Wrapf(err, "gridding table %s", fname)
	}
	return data, nil
}

// GridFromColumns builds N-D grid data from coordinate columns and a value
// column of equal length.
func GridFromColumns(coords [][]float64, vals []float64) (*interpolate.DataND[float64], error) {
	n := len(vals)
	grid := make([][]float64, len(coords))
	shape := make([]int, len(coords))
	for dim, col := range coords {
		if len(col) != n {
			return nil, fmt.Errorf(
				"Coordinate column %d has %d rows, but the value column has %d.",
				dim, len(col), n,
			)
		} else if floats.HasNaN(col) {
			return nil, fmt.Errorf("Coordinate column %d contains NaN.", dim)
		}
		grid[dim] = unique(col)
		shape[dim] = len(grid[dim])
	}

	values := mat.Zeros[float64](shape...)
	for i := range values.Vals {
		values.Vals[i] = math.NaN()
	}

	seen := make([]bool, len(values.Vals))
	idx := make([]int, len(coords))
	for row := 0; row < n; row++ {
		flat := 0
		for dim := range coords {
			idx[dim] = sort.SearchFloat64s(grid[dim], coords[dim][row])
			flat = flat*shape[dim] + idx[dim]
		}
		if seen[flat] {
			return nil, fmt.Errorf("Grid point %v appears more than once.", point(coords, row))
		}
		seen[flat] = true
		values.Set(vals[row], idx...)
	}

	return interpolate.NewDataND(grid, values)
}

func unique(xs []float64) []float64 {
	out := append([]float64{}, xs...)
	sort.Float64s(out)
	j := 0
	for i := range out {
		if i == 0 || out[i] != out[j-1] {
			out[j] = out[i]
			j++
		}
	}
	return out[:j]
}

func point(coords [][]float64, row int) []float64 {
	p := make([]float64, len(coords))
	for dim := range coords {
		p[dim] = coords[dim][row]
	}
	return p
}

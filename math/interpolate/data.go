package interpolate

import (
	"github.com/phil-mansfield/gointerp/math/mat"
)

// Data1D holds a 1-D coordinate grid and the values sampled on it.
type Data1D[T Float] struct {
	Grid   [1][]T
	Values []T
}

// Data2D holds a 2-D coordinate grid and the values sampled on it. Values is
// indexed as Values[x][y].
type Data2D[T Float] struct {
	Grid   [2][]T
	Values [][]T
}

// Data3D holds a 3-D coordinate grid and the values sampled on it. Values is
// indexed as Values[x][y][z].
type Data3D[T Float] struct {
	Grid   [3][]T
	Values [][][]T
}

// DataND holds a coordinate grid of any dimensionality and the values sampled
// on it.
type DataND[T Float] struct {
	Grid   [][]T
	Values *mat.Array[T]
}

// NewData1D validates and returns 1-D interpolator data. The slices are
// referenced, not copied: use Clone for an independent copy.
func NewData1D[T Float](x, fx []T) (*Data1D[T], error) {
	d := &Data1D[T]{Grid: [1][]T{x}, Values: fx}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// NewData2D validates and returns 2-D interpolator data.
func NewData2D[T Float](x, y []T, fxy [][]T) (*Data2D[T], error) {
	d := &Data2D[T]{Grid: [2][]T{x, y}, Values: fxy}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// NewData3D validates and returns 3-D interpolator data.
func NewData3D[T Float](x, y, z []T, fxyz [][][]T) (*Data3D[T], error) {
	d := &Data3D[T]{Grid: [3][]T{x, y, z}, Values: fxyz}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// NewDataND validates and returns N-D interpolator data.
func NewDataND[T Float](grid [][]T, values *mat.Array[T]) (*DataND[T], error) {
	d := &DataND[T]{Grid: grid, Values: values}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// validateAxis checks a single grid axis against the extent of the values
// along it.
func validateAxis[T Float](axis int, grid []T, n int) error {
	if len(grid) == 0 {
		return errAxis(EmptyGrid, axis)
	}
	for i := 1; i < len(grid); i++ {
		if !(grid[i-1] < grid[i]) {
			return errAxis(Monotonicity, axis)
		}
	}
	if len(grid) != n {
		return errAxis(IncompatibleShapes, axis)
	}
	return nil
}

// Validate checks the grid and values of d.
func (d *Data1D[T]) Validate() error {
	return validateAxis(0, d.Grid[0], len(d.Values))
}

// Validate checks the grid and values of d. Every row of Values must have
// the length of the y grid.
func (d *Data2D[T]) Validate() error {
	if err := validateAxis(0, d.Grid[0], len(d.Values)); err != nil {
		return err
	}
	for _, row := range d.Values {
		if err := validateAxis(1, d.Grid[1], len(row)); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks the grid and values of d.
func (d *Data3D[T]) Validate() error {
	if err := validateAxis(0, d.Grid[0], len(d.Values)); err != nil {
		return err
	}

	// Report the lowest failing axis first, as the other arities do.
	var zErr error
	for _, plane := range d.Values {
		if err := validateAxis(1, d.Grid[1], len(plane)); err != nil {
			return err
		}
		for _, row := range plane {
			if err := validateAxis(2, d.Grid[2], len(row)); err != nil && zErr == nil {
				zErr = err
			}
		}
	}
	return zErr
}

// NDim returns the dimensionality of the data. A tensor holding exactly one
// element is 0-dimensional regardless of its rank.
func (d *DataND[T]) NDim() int {
	if d.Values == nil {
		return 0
	} else if d.Values.Len() == 1 {
		return 0
	}
	return d.Values.NDim()
}

// Validate checks the grid and values of d.
func (d *DataND[T]) Validate() error {
	if d.Values == nil {
		return errOther("values cannot be nil")
	}

	n := d.NDim()
	if len(d.Grid) != n && !(n == 0 && allEmpty(d.Grid)) {
		return errOther(
			"grid length %d does not match dimensionality %d", len(d.Grid), n,
		)
	}
	for i := 0; i < n; i++ {
		if err := validateAxis(i, d.Grid[i], d.Values.Dim(i)); err != nil {
			return err
		}
	}
	return nil
}

func allEmpty[T Float](grid [][]T) bool {
	for _, g := range grid {
		if len(g) != 0 {
			return false
		}
	}
	return true
}

// Clone returns a copy of d which shares no storage with it.
func (d *Data1D[T]) Clone() *Data1D[T] {
	return &Data1D[T]{
		Grid:   [1][]T{cloneSlice(d.Grid[0])},
		Values: cloneSlice(d.Values),
	}
}

// Clone returns a copy of d which shares no storage with it.
func (d *Data2D[T]) Clone() *Data2D[T] {
	out := &Data2D[T]{
		Grid:   [2][]T{cloneSlice(d.Grid[0]), cloneSlice(d.Grid[1])},
		Values: make([][]T, len(d.Values)),
	}
	for i := range d.Values {
		out.Values[i] = cloneSlice(d.Values[i])
	}
	return out
}

// Clone returns a copy of d which shares no storage with it.
func (d *Data3D[T]) Clone() *Data3D[T] {
	out := &Data3D[T]{
		Grid: [3][]T{
			cloneSlice(d.Grid[0]), cloneSlice(d.Grid[1]), cloneSlice(d.Grid[2]),
		},
		Values: make([][][]T, len(d.Values)),
	}
	for i := range d.Values {
		out.Values[i] = make([][]T, len(d.Values[i]))
		for j := range d.Values[i] {
			out.Values[i][j] = cloneSlice(d.Values[i][j])
		}
	}
	return out
}

// Clone returns a copy of d which shares no storage with it.
func (d *DataND[T]) Clone() *DataND[T] {
	out := &DataND[T]{Grid: make([][]T, len(d.Grid)), Values: d.Values.Clone()}
	for i := range d.Grid {
		out.Grid[i] = cloneSlice(d.Grid[i])
	}
	return out
}

func cloneSlice[T any](xs []T) []T {
	if xs == nil {
		return nil
	}
	return append(make([]T, 0, len(xs)), xs...)
}

// ND converts d to N-D data sharing the same grid.
func (d *Data1D[T]) ND() *DataND[T] {
	return &DataND[T]{
		Grid:   [][]T{d.Grid[0]},
		Values: mat.Must(cloneSlice(d.Values), len(d.Values)),
	}
}

// ND converts d to N-D data sharing the same grid.
func (d *Data2D[T]) ND() *DataND[T] {
	nx, ny := len(d.Grid[0]), len(d.Grid[1])
	vals := make([]T, 0, nx*ny)
	for _, row := range d.Values {
		vals = append(vals, row...)
	}
	return &DataND[T]{
		Grid:   [][]T{d.Grid[0], d.Grid[1]},
		Values: mat.Must(vals, nx, ny),
	}
}

// ND converts d to N-D data sharing the same grid.
func (d *Data3D[T]) ND() *DataND[T] {
	nx, ny, nz := len(d.Grid[0]), len(d.Grid[1]), len(d.Grid[2])
	vals := make([]T, 0, nx*ny*nz)
	for _, plane := range d.Values {
		for _, row := range plane {
			vals = append(vals, row...)
		}
	}
	return &DataND[T]{
		Grid:   [][]T{d.Grid[0], d.Grid[1], d.Grid[2]},
		Values: mat.Must(vals, nx, ny, nz),
	}
}

package interpolate

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/phil-mansfield/gointerp/math/mat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataNDim(t *testing.T) {
	tests := []struct {
		values *mat.Array[float64]
		want   int
	}{
		{mat.Scalar(1.0), 0},
		{mat.Must([]float64{1}, 1), 0},
		{mat.Must([]float64{1}, 1, 1, 1), 0},
		{mat.Must([]float64{1, 2}, 2), 1},
		{mat.Must([]float64{1, 2}, 1, 2), 2},
		{mat.Zeros[float64](2, 3, 4, 5), 4},
		{nil, 0},
	}
	for i, test := range tests {
		d := &DataND[float64]{Values: test.values}
		assert.Equal(t, test.want, d.NDim(), "%d)", i+1)
	}
}

func TestData3DAxisOrder(t *testing.T) {
	grid := []float64{0, 1}
	d := &Data3D[float64]{
		Grid: [3][]float64{grid, grid, grid},
		Values: [][][]float64{
			{{0, 1}, {2}},
			{{4, 5}},
		},
	}
	err := d.Validate()
	verr := validateKind(t, err)
	assert.Equal(t, IncompatibleShapes, verr.Kind)
	assert.Equal(t, 1, verr.Axis)

	d.Values[1] = [][]float64{{4, 5}, {6, 7}}
	verr = validateKind(t, d.Validate())
	assert.Equal(t, 2, verr.Axis)

	d.Values[0][1] = []float64{2, 3}
	assert.NoError(t, d.Validate())
}

func TestDataClone(t *testing.T) {
	x := []float64{0, 1}
	d2, err := NewData2D(x, x, [][]float64{{0, 1}, {2, 3}})
	require.NoError(t, err)
	c2 := d2.Clone()
	assert.True(t, cmp.Equal(d2, c2))
	c2.Values[1][1] = 9
	c2.Grid[0][0] = -1
	assert.Equal(t, 3.0, d2.Values[1][1])
	assert.Equal(t, 0.0, x[0])

	d3, err := NewData3D(x, x, x, [][][]float64{{{0, 1}, {2, 3}}, {{4, 5}, {6, 7}}})
	require.NoError(t, err)
	c3 := d3.Clone()
	assert.True(t, cmp.Equal(d3, c3))
	c3.Values[0][0][0] = 9
	assert.Equal(t, 0.0, d3.Values[0][0][0])

	nd, err := NewDataND([][]float64{x, x}, planeND())
	require.NoError(t, err)
	cnd := nd.Clone()
	cnd.Values.Set(9, 0, 0)
	assert.Equal(t, 0.0, nd.Values.At(0, 0))
	assert.Equal(t, nd.Grid, cnd.Grid)
}

func TestDataToND(t *testing.T) {
	x, y, z := []float64{0, 1}, []float64{0, 1, 2}, []float64{5, 6}

	d1, err := NewData1D(y, []float64{3, 4, 5})
	require.NoError(t, err)
	nd := d1.ND()
	assert.Equal(t, []int{3}, nd.Values.Shape())
	assert.NoError(t, nd.Validate())

	d2, err := NewData2D(x, y, [][]float64{{0, 1, 2}, {3, 4, 5}})
	require.NoError(t, err)
	nd = d2.ND()
	assert.Equal(t, []int{2, 3}, nd.Values.Shape())
	assert.Equal(t, 5.0, nd.Values.At(1, 2))
	assert.NoError(t, nd.Validate())

	d3, err := NewData3D(x, y, z, [][][]float64{
		{{0, 1}, {2, 3}, {4, 5}},
		{{6, 7}, {8, 9}, {10, 11}},
	})
	require.NoError(t, err)
	nd = d3.ND()
	assert.Equal(t, []int{2, 3, 2}, nd.Values.Shape())
	assert.Equal(t, 9.0, nd.Values.At(1, 1, 1))
	assert.Equal(t, [][]float64{x, y, z}, nd.Grid)
}

package io

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/phil-mansfield/gointerp/math/interpolate"
)

const gridTable = `# x y f
1.0 10 0.5
0.0 10 0.25
0.0 20 1.5
1.0 30 2.5
0.0 30 2.0
2.0 10 9
2.0 20 8
2.0 30 7
`

func writeFile(t *testing.T, name, text string) string {
	t.Helper()
	fname := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(fname, []byte(text), 0644))
	return fname
}

func TestReadTable(t *testing.T) {
	data, err := ReadTable(writeFile(t, "grid.txt", gridTable), 2)
	require.NoError(t, err)

	assert.Equal(t, [][]float64{{0, 1, 2}, {10, 20, 30}}, data.Grid)
	assert.Equal(t, []int{3, 3}, data.Values.Shape())

	want := []float64{0.25, 1.5, 2.0, 0.5, math.NaN(), 2.5, 9, 8, 7}
	if diff := cmp.Diff(want, data.Values.Flat(), cmpopts.EquateNaNs()); diff != "" {
		t.Errorf("unexpected values (-want +got):\n%s", diff)
	}

	// The missing cell only matters to queries which touch it.
	interp, err := interpolate.NewND(data.Grid, data.Values, interpolate.Linear[float64]{}, interpolate.Reject())
	require.NoError(t, err)
	got, err := interp.Interpolate([]float64{0.5, 10})
	require.NoError(t, err)
	assert.InDelta(t, 0.375, got, 1e-12)
	_, err = interp.Interpolate([]float64{0.5, 15})
	assert.ErrorIs(t, err, interpolate.ErrNaN)

	_, err = ReadTable(writeFile(t, "grid.txt", gridTable), 0)
	assert.Error(t, err)
}

func TestGridFromColumns(t *testing.T) {
	xs := []float64{3, 1, 2, 1, 3, 2}
	ys := []float64{0, 0, 0, 1, 1, 1}
	fs := []float64{6, 4, 5, 7, 9, 8}

	data, err := GridFromColumns([][]float64{xs, ys}, fs)
	require.NoError(t, err)
	assert.True(t, floats.Equal([]float64{1, 2, 3}, data.Grid[0]))
	assert.True(t, floats.Equal([]float64{0, 1}, data.Grid[1]))
	assert.True(t, floats.EqualApprox([]float64{4, 7, 5, 8, 6, 9}, data.Values.Flat(), 0))

	_, err = GridFromColumns([][]float64{{1, 1}}, []float64{2, 3})
	assert.ErrorContains(t, err, "more than once")

	_, err = GridFromColumns([][]float64{{1, math.NaN()}}, []float64{2, 3})
	assert.ErrorContains(t, err, "NaN")

	_, err = GridFromColumns([][]float64{{1, 2}, {1}}, []float64{2, 3})
	assert.Error(t, err)

	// A single row has no extent to interpolate over.
	_, err = GridFromColumns([][]float64{{1}}, []float64{2})
	assert.ErrorIs(t, err, interpolate.ErrInvalid)
}

package interpolate

import (
	"errors"
	"math"
	"testing"

	"github.com/phil-mansfield/gointerp/math/mat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestWrapValue(t *testing.T) {
	tests := []struct {
		x, lo, hi, want float64
	}{
		{-3, -2, 5, 4},
		{3, -2, 5, 3},
		{6, -2, 5, -1},
		{5, 0, 10, 5},
		{11, 0, 10, 1},
		{-3, 0, 10, 7},
		{-11, 0, 10, 9},
		{-0.1, -2, -1, -1.1},
		{math.Copysign(0, -1), -2, -1, -2},
		{0.1, -2, -1, -1.9},
		{-0.5, -1, 1, -0.5},
		{0, -1, 1, 0},
		{0.5, -1, 1, 0.5},
		{0.8, -1, 1, 0.8},
		{10, 0, 10, 0},
		{7, 3, 3, 3},
	}

	for i, test := range tests {
		got := WrapValue(test.x, test.lo, test.hi)
		assert.InDelta(t, test.want, got, eps,
			"%d) WrapValue(%g, %g, %g)", i+1, test.x, test.lo, test.hi)
	}

	assert.Equal(t, float32(1), WrapValue[float32](11, 0, 10))
}

func TestExtrapolateModes1D(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4}
	fx := []float64{0.2, 0.4, 0.6, 0.8, 1.0}

	tests := []struct {
		e    Extrapolate
		x    float64
		want float64
	}{
		{Fill(-1), 5, -1},
		{Fill(-1), -0.5, -1},
		{Fill(-1), 4, 1.0},
		{Clamp(), 100, 1.0},
		{Clamp(), -100, 0.2},
		{Clamp(), math.NaN(), 0.2},
		{Wrap(), 4, 1.0},
		{Wrap(), 5, 0.4},
		{Wrap(), -1, 0.8},
		{Wrap(), 9.5, 0.5},
		{Enable(), 5, 1.2},
		{Enable(), -1, 0.0},
	}
	for i, test := range tests {
		interp, err := New1D(x, fx, Linear[float64]{}, test.e)
		require.NoError(t, err)
		got, err := interp.Interpolate([]float64{test.x})
		require.NoError(t, err, "%d) %s at %g", i+1, test.e, test.x)
		assert.InDelta(t, test.want, got, eps, "%d) %s at %g", i+1, test.e, test.x)
	}

	interp, err := New1D(x, fx, Linear[float64]{}, Fill(math.NaN()))
	require.NoError(t, err)
	got, err := interp.Interpolate([]float64{math.NaN()})
	require.NoError(t, err)
	assert.True(t, math.IsNaN(got))
}

// periodicBox returns 3-D and N-D interpolators over the same data. Each
// axis has an exactly representable span: 2, 4 and 1.
func periodicBox(t *testing.T, e Extrapolate) []Interpolator[float64] {
	t.Helper()
	x, y, z := []float64{0, 0.5, 2}, []float64{-1, 0, 3}, []float64{1, 1.25, 2}
	nested := make([][][]float64, 3)
	var flat []float64
	for i := range x {
		nested[i] = make([][]float64, 3)
		for j := range y {
			nested[i][j] = make([]float64, 3)
			for k := range z {
				v := math.Cos(float64(5*i+2*j+k)) + float64(j*k)
				nested[i][j][k] = v
				flat = append(flat, v)
			}
		}
	}

	var out []Interpolator[float64]
	for _, s := range []StrategyEnum[float64]{
		KindOf[float64](StrategyLinear), KindOf[float64](StrategyNearest),
	} {
		fixed, err := New3D(x, y, z, nested, s, e)
		require.NoError(t, err)
		nd, err := NewND([][]float64{x, y, z}, mat.Must(flat, 3, 3, 3), s, e)
		require.NoError(t, err)
		out = append(out, fixed, nd)
	}
	return out
}

func TestWrapPeriodicity(t *testing.T) {
	spans := []float64{2, 4, 1}
	base := [][]float64{
		{0.3, 0.7, 1.6},
		{1.9, -0.8, 1.1},
		{0.5, 2.2, 1.25},
	}
	shifts := [][]int{
		{1, 0, 0}, {0, -1, 0}, {0, 0, 3},
		{-3, 2, -1}, {5, 5, 5}, {-40, 17, 1000},
	}

	for n, in := range periodicBox(t, Wrap()) {
		for _, p := range base {
			want, err := in.Interpolate(p)
			require.NoError(t, err)
			for _, k := range shifts {
				q := make([]float64, 3)
				for i := range q {
					q[i] = p[i] + float64(k[i])*spans[i]
				}
				got, err := in.Interpolate(q)
				require.NoError(t, err)
				assert.InDelta(t, want, got, 1e-9, "%d) %v shifted by %v", n, p, k)
			}
		}
	}
}

func TestClampEdges(t *testing.T) {
	tests := []struct {
		p, edge []float64
	}{
		{[]float64{-5, 0.7, 1.6}, []float64{0, 0.7, 1.6}},
		{[]float64{-1e-9, 0.7, 1.6}, []float64{0, 0.7, 1.6}},
		{[]float64{7, -9, 1.6}, []float64{2, -1, 1.6}},
		{[]float64{2.5, 3.5, 0.5}, []float64{2, 3, 1}},
		{[]float64{1e6, 10, -3}, []float64{2, 3, 1}},
		{[]float64{0.3, 1e9, 2.0001}, []float64{0.3, 3, 2}},
	}

	for n, in := range periodicBox(t, Clamp()) {
		for _, test := range tests {
			want, err := in.Interpolate(test.edge)
			require.NoError(t, err)
			got, err := in.Interpolate(test.p)
			require.NoError(t, err)
			assert.Equal(t, want, got, "%d) %v", n, test.p)
		}
	}
}

func TestExtrapolateError(t *testing.T) {
	grid := []float64{0, 1}
	vals := [][][]float64{{{0, 1}, {2, 3}}, {{4, 5}, {6, 7}}}
	interp, err := New3D(grid, grid, grid, vals, Linear[float64]{}, Reject())
	require.NoError(t, err)

	_, err = interp.Interpolate([]float64{0.5, 2, -1})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOutOfBounds)

	var ierr *InterpolateError
	require.True(t, errors.As(err, &ierr))
	assert.Equal(t, OutOfBounds, ierr.Kind)

	axes := multierr.Errors(ierr.Err)
	require.Len(t, axes, 2)
	assert.EqualError(t, axes[0], "point[1] = 2 is out of bounds for grid[1] = [0 1]")
	assert.EqualError(t, axes[1], "point[2] = -1 is out of bounds for grid[2] = [0 1]")
	assert.Contains(t, err.Error(), "point[1] = 2")

	// Bounds are inclusive.
	got, err := interp.Interpolate([]float64{1, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, 5.0, got)

	_, err = interp.Interpolate([]float64{math.NaN(), 0, 0})
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestExtrapolateFillShortCircuits(t *testing.T) {
	var calls int
	counter := countingStrategy{calls: &calls}

	interp, err := NewND[float64, StrategyND[float64]](
		[][]float64{{0, 1}, {0, 1}}, planeND(), counter, Fill(42),
	)
	require.NoError(t, err)

	got, err := interp.Interpolate([]float64{5, 0.5})
	require.NoError(t, err)
	assert.Equal(t, 42.0, got)
	assert.Equal(t, 0, calls)

	_, err = interp.Interpolate([]float64{0.5, 0.5})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestExtrapolateParse(t *testing.T) {
	for _, mode := range []ExtrapolateMode{
		ExtrapolateError, ExtrapolateEnable, ExtrapolateFill,
		ExtrapolateClamp, ExtrapolateWrap,
	} {
		got, err := ParseExtrapolateMode(mode.String())
		require.NoError(t, err)
		assert.Equal(t, mode, got)
	}

	got, err := ParseExtrapolateMode("clamp")
	require.NoError(t, err)
	assert.Equal(t, ExtrapolateClamp, got)

	_, err = ParseExtrapolateMode("mirror")
	assert.ErrorIs(t, err, ErrInvalid)
	assert.Equal(t, "ExtrapolateMode(7)", ExtrapolateMode(7).String())
}

func TestExtrapolateEqual(t *testing.T) {
	assert.True(t, Fill(math.NaN()).Equal(Fill(math.NaN())))
	assert.True(t, Clamp().Equal(Extrapolate{Mode: ExtrapolateClamp, Fill: 3}))
	assert.False(t, Fill(1).Equal(Fill(2)))
	assert.False(t, Clamp().Equal(Wrap()))
	assert.True(t, Reject().Equal(Extrapolate{}))

	assert.Equal(t, "Fill(2.5)", Fill(2.5).String())
	assert.Equal(t, "Wrap", Wrap().String())
}

package interpolate

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/phil-mansfield/gointerp/math/mat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshotFixtures(t *testing.T) map[string]*InterpolatorEnum[float64] {
	t.Helper()
	x, y := []float64{0, 1, 2}, []float64{-1, 1}

	one, err := Enum1D(x, []float64{0, 1, 4},
		StrategyEnum[float64]{Kind: StrategyCubic, Cubic: ClampedCubic(0.5, -2.0)}, Enable())
	require.NoError(t, err)
	two, err := Enum2D(x, y, [][]float64{{0, 1}, {2, 3}, {4, 5}},
		KindOf[float64](StrategyNearest), Fill(math.Inf(-1)))
	require.NoError(t, err)
	three, err := Enum3D(y, y, x, [][][]float64{
		{{0, 1, 2}, {3, 4, 5}}, {{6, 7, 8}, {9, 10, 11}},
	}, KindOf[float64](StrategyLinear), Wrap())
	require.NoError(t, err)
	nd, err := EnumND([][]float64{x, y}, mat.Must([]float64{0, 1, 2, 3, 4, 5}, 3, 2),
		KindOf[float64](StrategyLinear), Clamp())
	require.NoError(t, err)

	return map[string]*InterpolatorEnum[float64]{
		"0D": Enum0D(2.5), "1D": one, "2D": two, "3D": three, "ND": nd,
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	points := map[string][][]float64{
		"0D": {{}},
		"1D": {{0.5}, {-1}, {2}, {3.5}},
		"2D": {{0.4, 0.9}, {5, 0}},
		"3D": {{0, 0.5, 1.5}, {-3, 2, 7}},
		"ND": {{1.5, 0}, {10, -10}},
	}

	for name, ie := range snapshotFixtures(t) {
		snap := ie.Snapshot()
		assert.Equal(t, name, snap.Variant)

		back, err := FromSnapshot[float64](snap)
		require.NoError(t, err, name)
		assert.Equal(t, ie.Variant(), back.Variant(), name)
		assert.True(t, ie.Strategy().Equal(back.Strategy()), name)
		assert.True(t, ie.Extrapolate().Equal(back.Extrapolate()), name)

		if diff := cmp.Diff(snap, back.Snapshot()); diff != "" {
			t.Errorf("%s: snapshot changed after round trip (-want +got):\n%s", name, diff)
		}

		for _, p := range points[name] {
			want, err := ie.Interpolate(p)
			require.NoError(t, err, "%s at %v", name, p)
			got, err := back.Interpolate(p)
			require.NoError(t, err, "%s at %v", name, p)
			assert.Equal(t, want, got, "%s at %v", name, p)
		}
	}
}

func TestSnapshotLayout(t *testing.T) {
	ie := snapshotFixtures(t)["2D"]
	snap := ie.Snapshot()

	want := Snapshot{
		Variant: "2D",
		Grid:    [][]float64{{0, 1, 2}, {-1, 1}},
		Shape:   []int{3, 2},
		Values:  []float64{0, 1, 2, 3, 4, 5},
		Strategy: StrategySnapshot{
			Kind: "Nearest",
		},
		Extrapolate: ExtrapolateSnapshot{Mode: "Fill", Fill: math.Inf(-1)},
	}
	if diff := cmp.Diff(want, snap); diff != "" {
		t.Errorf("unexpected snapshot (-want +got):\n%s", diff)
	}

	cubic := snapshotFixtures(t)["1D"].Snapshot().Strategy
	assert.Equal(t, StrategySnapshot{
		Kind: "Cubic", Boundary: "Clamped", Left: 0.5, Right: -2, Extrapolate: "Linear",
	}, cubic)
}

func TestFromSnapshotFloat32(t *testing.T) {
	snap := Snapshot{
		Variant:     "1D",
		Grid:        [][]float64{{0, 1}},
		Shape:       []int{2},
		Values:      []float64{0, 0.5},
		Strategy:    StrategySnapshot{Kind: "linear"},
		Extrapolate: ExtrapolateSnapshot{Mode: "clamp"},
	}
	ie, err := FromSnapshot[float32](snap)
	require.NoError(t, err)
	got, err := ie.Interpolate([]float32{2})
	require.NoError(t, err)
	assert.Equal(t, float32(0.5), got)
}

func TestFromSnapshotErrors(t *testing.T) {
	good := snapshotFixtures(t)["ND"].Snapshot()

	tests := []struct {
		name     string
		edit     func(s *Snapshot)
		sentinel error
	}{
		{"variant", func(s *Snapshot) { s.Variant = "4D" }, ErrInvalid},
		{"shape", func(s *Snapshot) { s.Shape = []int{2, 2} }, ErrInvalid},
		{"strategy", func(s *Snapshot) { s.Strategy.Kind = "Spline" }, ErrStrategySelection},
		{"extrapolate", func(s *Snapshot) { s.Extrapolate.Mode = "Reflect" }, ErrInvalid},
		{"grid", func(s *Snapshot) { s.Grid[1] = []float64{1, -1} }, ErrMonotonicity},
		{"arity", func(s *Snapshot) { s.Variant = "3D" }, ErrInvalid},
		{"enable", func(s *Snapshot) {
			s.Strategy.Kind = "Nearest"
			s.Extrapolate.Mode = "Enable"
		}, ErrExtrapolateSelection},
		{"0D values", func(s *Snapshot) { s.Variant = "0D" }, ErrInvalid},
	}

	for _, test := range tests {
		snap := good
		snap.Grid = [][]float64{
			append([]float64{}, good.Grid[0]...), append([]float64{}, good.Grid[1]...),
		}
		test.edit(&snap)
		_, err := FromSnapshot[float64](snap)
		assert.ErrorIs(t, err, test.sentinel, test.name)
	}
}

package io

import (
	"encoding/json"
	"math"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phil-mansfield/gointerp/math/interpolate"
)

func testSnapshot(t *testing.T) interpolate.Snapshot {
	t.Helper()
	ie, err := interpolate.Enum1D(
		[]float64{0, 0.1, 0.35, 1}, []float64{1, math.NaN(), 3.25, -0.5},
		interpolate.StrategyEnum[float64]{
			Kind:  interpolate.StrategyCubic,
			Cubic: interpolate.ClampedCubic(math.Inf(1), 0.3),
		},
		interpolate.Fill(math.Inf(-1)),
	)
	require.NoError(t, err)
	return ie.Snapshot()
}

func TestFloatJSON(t *testing.T) {
	tests := []struct {
		f    float64
		text string
	}{
		{1.5, "1.5"},
		{0.1, "0.1"},
		{math.NaN(), `"NaN"`},
		{math.Inf(1), `"+Inf"`},
		{math.Inf(-1), `"-Inf"`},
		{math.Copysign(0, -1), "-0"},
	}
	for _, test := range tests {
		b, err := json.Marshal(Float(test.f))
		require.NoError(t, err)
		assert.Equal(t, test.text, string(b))

		var f Float
		require.NoError(t, json.Unmarshal(b, &f))
		assert.Equal(t, math.Float64bits(test.f) == math.Float64bits(float64(f)) ||
			(math.IsNaN(test.f) && math.IsNaN(float64(f))), true, test.text)
	}

	var f Float
	assert.Error(t, json.Unmarshal([]byte(`"many"`), &f))
	require.NoError(t, json.Unmarshal([]byte(`"inf"`), &f))
	assert.True(t, math.IsInf(float64(f), 1))
}

func TestSnapshotEncodings(t *testing.T) {
	snap := testSnapshot(t)

	codecs := []struct {
		name string
		enc  func(interpolate.Snapshot) ([]byte, error)
		dec  func([]byte) (interpolate.Snapshot, error)
	}{
		{"json", EncodeJSON, DecodeJSON},
		{"yaml", EncodeYAML, DecodeYAML},
	}
	for _, c := range codecs {
		b, err := c.enc(snap)
		require.NoError(t, err, c.name)
		back, err := c.dec(b)
		require.NoError(t, err, c.name)

		if diff := cmp.Diff(snap, back, cmpopts.EquateNaNs()); diff != "" {
			t.Errorf("%s round trip changed snapshot (-want +got):\n%s", c.name, diff)
		}

		ie, err := interpolate.FromSnapshot[float64](back)
		require.NoError(t, err, c.name)
		got, err := ie.Interpolate([]float64{0.7})
		require.NoError(t, err, c.name)
		assert.True(t, math.IsNaN(got), c.name)
		got, err = ie.Interpolate([]float64{2})
		require.NoError(t, err, c.name)
		assert.True(t, math.IsInf(got, -1), c.name)
	}
}

func TestSnapshotFiles(t *testing.T) {
	dir := t.TempDir()
	snap := interpolate.Enum0D(3.5).Snapshot()

	for _, name := range []string{"a.json", "b.yaml", "c.YML"} {
		fname := filepath.Join(dir, name)
		require.NoError(t, WriteSnapshot(fname, snap), name)
		back, err := ReadSnapshot(fname)
		require.NoError(t, err, name)
		assert.Empty(t, cmp.Diff(snap, back), name)

		ie, err := ReadInterpolator(fname)
		require.NoError(t, err, name)
		assert.Equal(t, interpolate.Variant0D, ie.Variant())
	}

	assert.Error(t, WriteSnapshot(filepath.Join(dir, "d.toml"), snap))
	_, err := ReadSnapshot(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	bad := writeFile(t, "bad.json", `{
		"variant": "2D", "shape": [2], "values": [1, 2],
		"strategy": {"kind": "Linear"}, "extrapolate": {"mode": "Error"}
	}`)
	_, err = ReadInterpolator(bad)
	assert.ErrorIs(t, err, interpolate.ErrInvalid)
}

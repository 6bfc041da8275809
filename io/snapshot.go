package io

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"sigs.k8s.io/yaml"

	"github.com/phil-mansfield/gointerp/math/interpolate"
)

// Float is a float64 which survives JSON and YAML encoding when it is NaN or
// infinite. Those values are written as the strings "NaN", "+Inf" and "-Inf".
type Float float64

func (f Float) MarshalJSON() ([]byte, error) {
	v := float64(f)
	switch {
	case math.IsNaN(v):
		return []byte(`"NaN"`), nil
	case math.IsInf(v, +1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(v, -1):
		return []byte(`"-Inf"`), nil
	}
	return json.Marshal(v)
}

func (f *Float) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return errors.Errorf("'%s' is not a number.", s)
		}
		*f = Float(v)
		return nil
	}

	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*f = Float(v)
	return nil
}

func toFloats(xs []float64) []Float {
	if xs == nil {
		return nil
	}
	out := make([]Float, len(xs))
	for i := range xs {
		out[i] = Float(xs[i])
	}
	return out
}

func fromFloats(xs []Float) []float64 {
	if xs == nil {
		return nil
	}
	out := make([]float64, len(xs))
	for i := range xs {
		out[i] = float64(xs[i])
	}
	return out
}

// snapshotFile is the on-disk layout of an interpolate.Snapshot.
type snapshotFile struct {
	Variant     string          `json:"variant"`
	Grid        [][]Float       `json:"grid,omitempty"`
	Shape       []int           `json:"shape"`
	Values      []Float         `json:"values"`
	Strategy    strategyFile    `json:"strategy"`
	Extrapolate extrapolateFile `json:"extrapolate"`
}

type strategyFile struct {
	Kind        string `json:"kind,omitempty"`
	Boundary    string `json:"boundary,omitempty"`
	Left        Float  `json:"left,omitempty"`
	Right       Float  `json:"right,omitempty"`
	Extrapolate string `json:"extrapolate,omitempty"`
}

type extrapolateFile struct {
	Mode string `json:"mode"`
	Fill Float  `json:"fill,omitempty"`
}

func newSnapshotFile(snap interpolate.Snapshot) *snapshotFile {
	f := &snapshotFile{
		Variant: snap.Variant,
		Shape:   snap.Shape,
		Values:  toFloats(snap.Values),
		Strategy: strategyFile{
			Kind:        snap.Strategy.Kind,
			Boundary:    snap.Strategy.Boundary,
			Left:        Float(snap.Strategy.Left),
			Right:       Float(snap.Strategy.Right),
			Extrapolate: snap.Strategy.Extrapolate,
		},
		Extrapolate: extrapolateFile{
			Mode: snap.Extrapolate.Mode,
			Fill: Float(snap.Extrapolate.Fill),
		},
	}
	if snap.Grid != nil {
		f.Grid = make([][]Float, len(snap.Grid))
		for i := range snap.Grid {
			f.Grid[i] = toFloats(snap.Grid[i])
		}
	}
	return f
}

func (f *snapshotFile) snapshot() interpolate.Snapshot {
	snap := interpolate.Snapshot{
		Variant: f.Variant,
		Shape:   f.Shape,
		Values:  fromFloats(f.Values),
		Strategy: interpolate.StrategySnapshot{
			Kind:        f.Strategy.Kind,
			Boundary:    f.Strategy.Boundary,
			Left:        float64(f.Strategy.Left),
			Right:       float64(f.Strategy.Right),
			Extrapolate: f.Strategy.Extrapolate,
		},
		Extrapolate: interpolate.ExtrapolateSnapshot{
			Mode: f.Extrapolate.Mode,
			Fill: float64(f.Extrapolate.Fill),
		},
	}
	if f.Grid != nil {
		snap.Grid = make([][]float64, len(f.Grid))
		for i := range f.Grid {
			snap.Grid[i] = fromFloats(f.Grid[i])
		}
	}
	if snap.Shape == nil {
		snap.Shape = []int{}
	}
	return snap
}

func EncodeJSON(snap interpolate.Snapshot) ([]byte, error) {
	return json.MarshalIndent(newSnapshotFile(snap), "", "  ")
}

func DecodeJSON(b []byte) (interpolate.Snapshot, error) {
	f := &snapshotFile{}
	if err := json.Unmarshal(b, f); err != nil {
		return interpolate.Snapshot{}, errors.Wrap(err, "decoding JSON snapshot")
	}
	return f.snapshot(), nil
}

func EncodeYAML(snap interpolate.Snapshot) ([]byte, error) {
	return yaml.Marshal(newSnapshotFile(snap))
}

func DecodeYAML(b []byte) (interpolate.Snapshot, error) {
	f := &snapshotFile{}
	if err := yaml.Unmarshal(b, f); err != nil {
		return interpolate.Snapshot{}, errors.Wrap(err, "decoding YAML snapshot")
	}
	return f.snapshot(), nil
}

// snapshotCodec returns the encoder and decoder for a file, chosen by its
// extension.
func snapshotCodec(fname string) (
	enc func(interpolate.Snapshot) ([]byte, error),
	dec func([]byte) (interpolate.Snapshot, error),
	err error,
) {
	switch ext := strings.ToLower(filepath.Ext(fname)); ext {
	case ".json":
		return EncodeJSON, DecodeJSON, nil
	case ".yaml", ".yml":
		return EncodeYAML, DecodeYAML, nil
	default:
		return nil, nil, errors.Errorf(
			"Unrecognized snapshot extension '%s' for file %s. Use .json, "+
				".yaml or .yml.", ext, fname,
		)
	}
}

// ReadSnapshot reads a snapshot from a .json, .yaml or .yml file.
func ReadSnapshot(fname string) (interpolate.Snapshot, error) {
	_, dec, err := snapshotCodec(fname)
	if err != nil {
		return interpolate.Snapshot{}, err
	}
	b, err := os.ReadFile(fname)
	if err != nil {
		return interpolate.Snapshot{}, err
	}
	snap, err := dec(b)
	if err != nil {
		return interpolate.Snapshot{}, errors.Wrapf(err, "reading %s", fname)
	}
	return snap, nil
}

// WriteSnapshot writes snap to a .json, .yaml or .yml file.
func WriteSnapshot(fname string, snap interpolate.Snapshot) error {
	enc, _, err := snapshotCodec(fname)
	if err != nil {
		return err
	}
	b, err := enc(snap)
	if err != nil {
		return errors.Wrapf(err, "encoding %s", fname)
	}
	return os.WriteFile(fname, b, 0644)
}

// ReadInterpolator reads a snapshot file and constructs the interpolator it
// describes.
func ReadInterpolator(fname string) (*interpolate.InterpolatorEnum[float64], error) {
	snap, err := ReadSnapshot(fname)
	if err != nil {
		return nil, err
	}
	ie, err := interpolate.FromSnapshot[float64](snap)
	if err != nil {
		return nil, errors.Wrapf(err, "building interpolator from %s", fname)
	}
	return ie, nil
}

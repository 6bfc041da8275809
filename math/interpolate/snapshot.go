package interpolate

import (
	"github.com/phil-mansfield/gointerp/math/mat"
)

// Snapshot is the construction-equivalent description of an
// InterpolatorEnum, suitable for encoding. Values are stored in row-major
// order with an explicit Shape, and every float is widened to float64, which
// is exact for both float32 and float64 element types.
type Snapshot struct {
	// Variant is the kind of interpolator: 0D, 1D, 2D, 3D or ND.
	Variant     string
	Grid        [][]float64
	Shape       []int
	Values      []float64
	Strategy    StrategySnapshot
	Extrapolate ExtrapolateSnapshot
}

// StrategySnapshot describes a StrategyEnum. The cubic fields are empty for
// other kinds.
type StrategySnapshot struct {
	Kind        string
	Boundary    string
	Left, Right float64
	Extrapolate string
}

// ExtrapolateSnapshot describes an Extrapolate policy.
type ExtrapolateSnapshot struct {
	Mode string
	Fill float64
}

var variantNames = map[Variant]string{
	Variant0D: "0D", Variant1D: "1D", Variant2D: "2D", Variant3D: "3D",
	VariantND: "ND",
}

func (v Variant) String() string {
	if name, ok := variantNames[v]; ok {
		return name
	}
	return "None"
}

func parseVariant(s string) (Variant, error) {
	for v, name := range variantNames {
		if name == s {
			return v, nil
		}
	}
	return VariantNone, errOther("unrecognized interpolator variant '%s'", s)
}

func widen[T Float](xs []T) []float64 {
	out := make([]float64, len(xs))
	for i := range xs {
		out[i] = float64(xs[i])
	}
	return out
}

func narrow[T Float](xs []float64) []T {
	out := make([]T, len(xs))
	for i := range xs {
		out[i] = T(xs[i])
	}
	return out
}

func snapshotStrategy[T Float](s StrategyEnum[T]) StrategySnapshot {
	out := StrategySnapshot{Kind: s.Kind.String()}
	if s.Kind == StrategyCubic && s.Cubic != nil {
		out.Boundary = s.Cubic.BC.String()
		out.Left, out.Right = float64(s.Cubic.Left), float64(s.Cubic.Right)
		out.Extrapolate = s.Cubic.Extrapolate.String()
	}
	return out
}

func strategyFromSnapshot[T Float](s StrategySnapshot) (StrategyEnum[T], error) {
	kind, err := ParseStrategyKind(s.Kind)
	if err != nil {
		return StrategyEnum[T]{}, err
	}
	out := StrategyEnum[T]{Kind: kind}
	if kind != StrategyCubic {
		return out, nil
	}

	c := NaturalCubic[T]()
	if s.Boundary != "" {
		if c.BC, err = ParseCubicBC(s.Boundary); err != nil {
			return out, err
		}
	}
	if s.Extrapolate != "" {
		if c.Extrapolate, err = ParseCubicExtrapolate(s.Extrapolate); err != nil {
			return out, err
		}
	}
	c.Left, c.Right = T(s.Left), T(s.Right)
	out.Cubic = c
	return out, nil
}

func snapshotExtrapolate(e Extrapolate) ExtrapolateSnapshot {
	out := ExtrapolateSnapshot{Mode: e.Mode.String()}
	if e.Mode == ExtrapolateFill {
		out.Fill = e.Fill
	}
	return out
}

// Policy converts the snapshot back to an Extrapolate policy.
func (s ExtrapolateSnapshot) Policy() (Extrapolate, error) {
	mode, err := ParseExtrapolateMode(s.Mode)
	if err != nil {
		return Extrapolate{}, err
	}
	return Extrapolate{Mode: mode, Fill: s.Fill}, nil
}

// Snapshot describes ie in a form which can be encoded and later passed to
// FromSnapshot.
func (ie *InterpolatorEnum[T]) Snapshot() Snapshot {
	snap := Snapshot{
		Variant:     ie.Variant().String(),
		Strategy:    snapshotStrategy(ie.Strategy()),
		Extrapolate: snapshotExtrapolate(ie.Extrapolate()),
	}

	switch ie.Variant() {
	case Variant0D:
		snap.Strategy = StrategySnapshot{}
		snap.Shape = []int{}
		snap.Values = []float64{float64(ie.i0.Value)}
	case Variant1D:
		d := ie.i1.Data()
		snap.Grid = [][]float64{widen(d.Grid[0])}
		snap.Shape = []int{len(d.Values)}
		snap.Values = widen(d.Values)
	case Variant2D, Variant3D, VariantND:
		var nd *DataND[T]
		switch ie.Variant() {
		case Variant2D:
			nd = ie.i2.Data().ND()
		case Variant3D:
			nd = ie.i3.Data().ND()
		default:
			nd = ie.nd.Data()
		}
		for _, g := range nd.Grid {
			snap.Grid = append(snap.Grid, widen(g))
		}
		snap.Shape = nd.Values.Shape()
		snap.Values = widen(nd.Values.Flat())
	}
	return snap
}

// FromSnapshot constructs and validates the interpolator described by snap.
// The returned interpolator owns its data.
func FromSnapshot[T Float](snap Snapshot) (*InterpolatorEnum[T], error) {
	variant, err := parseVariant(snap.Variant)
	if err != nil {
		return nil, err
	}

	values, err := mat.New(narrow[T](snap.Values), snap.Shape...)
	if err != nil {
		return nil, errOther("snapshot values: %s", err.Error())
	}
	if variant == Variant0D {
		if values.Len() != 1 {
			return nil, errOther("0-D snapshot must hold exactly one value")
		}
		return Enum0D(values.First()), nil
	}

	s, err := strategyFromSnapshot[T](snap.Strategy)
	if err != nil {
		return nil, err
	}
	e, err := snap.Extrapolate.Policy()
	if err != nil {
		return nil, err
	}

	grid := make([][]T, len(snap.Grid))
	for i := range snap.Grid {
		grid[i] = narrow[T](snap.Grid[i])
	}

	want := map[Variant]int{Variant1D: 1, Variant2D: 2, Variant3D: 3}
	if n, ok := want[variant]; ok && (len(grid) != n || values.NDim() != n) {
		return nil, errOther(
			"%s snapshot has %d grid axes and %d value axes",
			variant, len(grid), values.NDim(),
		)
	}

	switch variant {
	case Variant1D:
		return Enum1D(grid[0], values.Vals, s, e)
	case Variant2D:
		return Enum2D(grid[0], grid[1], rows2D(values), s, e)
	case Variant3D:
		return Enum3D(grid[0], grid[1], grid[2], rows3D(values), s, e)
	default:
		return EnumND(grid, values, s, e)
	}
}

func rows2D[T Float](a *mat.Array[T]) [][]T {
	nx, ny := a.Dim(0), a.Dim(1)
	out := make([][]T, nx)
	for i := range out {
		out[i] = a.Vals[i*ny : (i+1)*ny]
	}
	return out
}

func rows3D[T Float](a *mat.Array[T]) [][][]T {
	nx, ny, nz := a.Dim(0), a.Dim(1), a.Dim(2)
	out := make([][][]T, nx)
	for i := range out {
		out[i] = make([][]T, ny)
		for j := range out[i] {
			off := (i*ny + j) * nz
			out[i][j] = a.Vals[off : off+nz]
		}
	}
	return out
}

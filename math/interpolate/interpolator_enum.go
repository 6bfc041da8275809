package interpolate

import (
	"github.com/phil-mansfield/gointerp/math/mat"
)

// Variant identifies which interpolator an InterpolatorEnum holds.
type Variant int

const (
	VariantNone Variant = iota
	Variant0D
	Variant1D
	Variant2D
	Variant3D
	VariantND
)

// InterpolatorEnum holds one of an Interp0D, Interp1D, Interp2D, Interp3D or
// InterpND, each using a StrategyEnum. It lets callers hold an interpolator
// without knowing its dimensionality and swap strategies at runtime, and it
// is what snapshots are made from.
type InterpolatorEnum[T Float] struct {
	i0 *Interp0D[T]
	i1 *Interp1D[T, StrategyEnum[T]]
	i2 *Interp2D[T, StrategyEnum[T]]
	i3 *Interp3D[T, StrategyEnum[T]]
	nd *InterpND[T, StrategyEnum[T]]
}

func Enum0D[T Float](v T) *InterpolatorEnum[T] {
	return &InterpolatorEnum[T]{i0: New0D(v)}
}

func Enum1D[T Float](
	x, fx []T, s StrategyEnum[T], e Extrapolate,
) (*InterpolatorEnum[T], error) {
	in, err := New1D(x, fx, s, e)
	if err != nil {
		return nil, err
	}
	return &InterpolatorEnum[T]{i1: in}, nil
}

func Enum2D[T Float](
	x, y []T, fxy [][]T, s StrategyEnum[T], e Extrapolate,
) (*InterpolatorEnum[T], error) {
	in, err := New2D(x, y, fxy, s, e)
	if err != nil {
		return nil, err
	}
	return &InterpolatorEnum[T]{i2: in}, nil
}

func Enum3D[T Float](
	x, y, z []T, fxyz [][][]T, s StrategyEnum[T], e Extrapolate,
) (*InterpolatorEnum[T], error) {
	in, err := New3D(x, y, z, fxyz, s, e)
	if err != nil {
		return nil, err
	}
	return &InterpolatorEnum[T]{i3: in}, nil
}

func EnumND[T Float](
	grid [][]T, values *mat.Array[T], s StrategyEnum[T], e Extrapolate,
) (*InterpolatorEnum[T], error) {
	in, err := NewND(grid, values, s, e)
	if err != nil {
		return nil, err
	}
	return &InterpolatorEnum[T]{nd: in}, nil
}

// Variant returns the kind of interpolator held by ie.
func (ie *InterpolatorEnum[T]) Variant() Variant {
	switch {
	case ie.i0 != nil:
		return Variant0D
	case ie.i1 != nil:
		return Variant1D
	case ie.i2 != nil:
		return Variant2D
	case ie.i3 != nil:
		return Variant3D
	case ie.nd != nil:
		return VariantND
	}
	return VariantNone
}

// Interpolator returns the held interpolator, or nil for the zero value.
func (ie *InterpolatorEnum[T]) Interpolator() Interpolator[T] {
	switch ie.Variant() {
	case Variant0D:
		return ie.i0
	case Variant1D:
		return ie.i1
	case Variant2D:
		return ie.i2
	case Variant3D:
		return ie.i3
	case VariantND:
		return ie.nd
	}
	return nil
}

func (ie *InterpolatorEnum[T]) NDim() int {
	if in := ie.Interpolator(); in != nil {
		return in.NDim()
	}
	return 0
}

func (ie *InterpolatorEnum[T]) Validate() error {
	if in := ie.Interpolator(); in != nil {
		return in.Validate()
	}
	return errOther("empty interpolator")
}

func (ie *InterpolatorEnum[T]) Interpolate(point []T) (T, error) {
	if in := ie.Interpolator(); in != nil {
		return in.Interpolate(point)
	}
	return 0, &InterpolateError{Kind: OtherInterpolate, Msg: "empty interpolator"}
}

func (ie *InterpolatorEnum[T]) SetExtrapolate(e Extrapolate) error {
	if in := ie.Interpolator(); in != nil {
		err := in.SetExtrapolate(e)
		if err == nil {
			logChanged("extrapolate", e)
		}
		return err
	}
	return errOther("empty interpolator")
}

// SetStrategy replaces the strategy of the held interpolator, leaving it
// unchanged on failure. 0-D interpolators have no strategy and reject every
// call.
func (ie *InterpolatorEnum[T]) SetStrategy(s StrategyEnum[T]) error {
	var err error
	switch ie.Variant() {
	case Variant1D:
		err = ie.i1.SetStrategy(s)
	case Variant2D:
		err = ie.i2.SetStrategy(s)
	case Variant3D:
		err = ie.i3.SetStrategy(s)
	case VariantND:
		err = ie.nd.SetStrategy(s)
	default:
		err = errStrategySelection(s.String())
	}
	if err == nil {
		logChanged("strategy", s)
	}
	return err
}

// Strategy returns the current strategy. 0-D interpolators return the zero
// StrategyEnum.
func (ie *InterpolatorEnum[T]) Strategy() StrategyEnum[T] {
	switch ie.Variant() {
	case Variant1D:
		return ie.i1.Strategy()
	case Variant2D:
		return ie.i2.Strategy()
	case Variant3D:
		return ie.i3.Strategy()
	case VariantND:
		return ie.nd.Strategy()
	}
	return StrategyEnum[T]{}
}

// Extrapolate returns the current extrapolation policy.
func (ie *InterpolatorEnum[T]) Extrapolate() Extrapolate {
	switch ie.Variant() {
	case Variant1D:
		return ie.i1.Extrapolate()
	case Variant2D:
		return ie.i2.Extrapolate()
	case Variant3D:
		return ie.i3.Extrapolate()
	case VariantND:
		return ie.nd.Extrapolate()
	}
	return Extrapolate{}
}

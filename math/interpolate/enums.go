package interpolate

import (
	"fmt"
	"strings"
)

// StrategyKind names one of the built-in strategies.
type StrategyKind int

const (
	StrategyLinear StrategyKind = iota
	StrategyNearest
	StrategyLeftNearest
	StrategyRightNearest
	StrategyCubic
)

var strategyNames = []string{
	"Linear", "Nearest", "LeftNearest", "RightNearest", "Cubic",
}

func (k StrategyKind) String() string {
	if k < 0 || int(k) >= len(strategyNames) {
		return fmt.Sprintf("StrategyKind(%d)", int(k))
	}
	return strategyNames[k]
}

// ParseStrategyKind is the inverse of StrategyKind.String. Matching is
// case-insensitive.
func ParseStrategyKind(s string) (StrategyKind, error) {
	for i, name := range strategyNames {
		if strings.EqualFold(s, name) {
			return StrategyKind(i), nil
		}
	}
	return 0, errStrategySelection(s)
}

// StrategyEnum is a closed set of the built-in strategies. Unlike an
// interface value it can be serialized and compared, but it cannot hold a
// custom strategy.
//
// A StrategyEnum satisfies the strategy interfaces of every dimensionality.
// Kinds which don't apply to a dimensionality (LeftNearest, RightNearest and
// Cubic outside of 1-D) are rejected with StrategySelection when the
// interpolator is validated.
type StrategyEnum[T Float] struct {
	Kind StrategyKind
	// Cubic holds the spline parameters when Kind is StrategyCubic.
	Cubic *Cubic[T]
}

var (
	_ Strategy1D[float64]    = StrategyEnum[float64]{}
	_ Strategy2D[float64]    = StrategyEnum[float64]{}
	_ Strategy3D[float64]    = StrategyEnum[float64]{}
	_ StrategyND[float64]    = StrategyEnum[float64]{}
	_ Initializer1D[float64] = StrategyEnum[float64]{}
	_ Initializer2D[float64] = StrategyEnum[float64]{}
	_ Initializer3D[float64] = StrategyEnum[float64]{}
	_ InitializerND[float64] = StrategyEnum[float64]{}
)

// KindOf returns the StrategyEnum for a kind. Cubic kinds get a natural
// spline.
func KindOf[T Float](k StrategyKind) StrategyEnum[T] {
	e := StrategyEnum[T]{Kind: k}
	if k == StrategyCubic {
		e.Cubic = NaturalCubic[T]()
	}
	return e
}

// EnumOf converts a built-in strategy value to a StrategyEnum. Anything else
// returns a StrategySelection error.
func EnumOf[T Float](s interface{}) (StrategyEnum[T], error) {
	switch s := s.(type) {
	case StrategyEnum[T]:
		return s, nil
	case Linear[T]:
		return StrategyEnum[T]{Kind: StrategyLinear}, nil
	case Nearest[T]:
		return StrategyEnum[T]{Kind: StrategyNearest}, nil
	case LeftNearest[T]:
		return StrategyEnum[T]{Kind: StrategyLeftNearest}, nil
	case RightNearest[T]:
		return StrategyEnum[T]{Kind: StrategyRightNearest}, nil
	case *Cubic[T]:
		if s != nil {
			return StrategyEnum[T]{Kind: StrategyCubic, Cubic: s}, nil
		}
	}
	return StrategyEnum[T]{}, errStrategySelection(fmt.Sprintf("%T", s))
}

func (s StrategyEnum[T]) String() string {
	if s.Kind == StrategyCubic && s.Cubic != nil {
		return s.Cubic.String()
	}
	return s.Kind.String()
}

// Equal reports whether two enums describe the same strategy.
func (s StrategyEnum[T]) Equal(o StrategyEnum[T]) bool {
	if s.Kind != o.Kind {
		return false
	} else if s.Kind != StrategyCubic {
		return true
	} else if s.Cubic == nil || o.Cubic == nil {
		return s.Cubic == o.Cubic
	}
	return s.Cubic.BC == o.Cubic.BC && s.Cubic.Left == o.Cubic.Left &&
		s.Cubic.Right == o.Cubic.Right &&
		s.Cubic.Extrapolate == o.Cubic.Extrapolate
}

func (s StrategyEnum[T]) AllowExtrapolate() bool {
	return s.Kind == StrategyLinear || s.Kind == StrategyCubic
}

func (s StrategyEnum[T]) Init1D(data *Data1D[T]) error {
	switch s.Kind {
	case StrategyLinear, StrategyNearest, StrategyLeftNearest, StrategyRightNearest:
		return nil
	case StrategyCubic:
		if s.Cubic == nil {
			return errStrategySelection("Cubic without parameters")
		}
		return s.Cubic.Init1D(data)
	}
	return errStrategySelection(s.String())
}

func (s StrategyEnum[T]) Init2D(data *Data2D[T]) error { return s.checkMultiDim() }
func (s StrategyEnum[T]) Init3D(data *Data3D[T]) error { return s.checkMultiDim() }
func (s StrategyEnum[T]) InitND(data *DataND[T]) error { return s.checkMultiDim() }

func (s StrategyEnum[T]) checkMultiDim() error {
	if s.Kind == StrategyLinear || s.Kind == StrategyNearest {
		return nil
	}
	return errStrategySelection(s.String())
}

func (s StrategyEnum[T]) Interpolate1D(data *Data1D[T], point [1]T) (T, error) {
	switch s.Kind {
	case StrategyLinear:
		return Linear[T]{}.Interpolate1D(data, point)
	case StrategyNearest:
		return Nearest[T]{}.Interpolate1D(data, point)
	case StrategyLeftNearest:
		return LeftNearest[T]{}.Interpolate1D(data, point)
	case StrategyRightNearest:
		return RightNearest[T]{}.Interpolate1D(data, point)
	case StrategyCubic:
		if s.Cubic != nil {
			return s.Cubic.Interpolate1D(data, point)
		}
	}
	return 0, s.unsupported(1)
}

func (s StrategyEnum[T]) Interpolate2D(data *Data2D[T], point [2]T) (T, error) {
	switch s.Kind {
	case StrategyLinear:
		return Linear[T]{}.Interpolate2D(data, point)
	case StrategyNearest:
		return Nearest[T]{}.Interpolate2D(data, point)
	}
	return 0, s.unsupported(2)
}

func (s StrategyEnum[T]) Interpolate3D(data *Data3D[T], point [3]T) (T, error) {
	switch s.Kind {
	case StrategyLinear:
		return Linear[T]{}.Interpolate3D(data, point)
	case StrategyNearest:
		return Nearest[T]{}.Interpolate3D(data, point)
	}
	return 0, s.unsupported(3)
}

func (s StrategyEnum[T]) InterpolateND(data *DataND[T], point []T) (T, error) {
	switch s.Kind {
	case StrategyLinear:
		return Linear[T]{}.InterpolateND(data, point)
	case StrategyNearest:
		return Nearest[T]{}.InterpolateND(data, point)
	}
	return 0, s.unsupported(len(point))
}

func (s StrategyEnum[T]) unsupported(ndim int) error {
	return &InterpolateError{
		Kind: OtherInterpolate,
		Msg:  fmt.Sprintf("strategy %s cannot interpolate %d-D data", s, ndim),
	}
}

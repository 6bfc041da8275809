package interpolate

// Strategy1D is an interpolation algorithm for 1-D data. Extrapolation
// policies have already been applied to point when Interpolate1D is called,
// so point is either inside the grid or extrapolation is enabled.
type Strategy1D[T Float] interface {
	Interpolate1D(data *Data1D[T], point [1]T) (T, error)
	// AllowExtrapolate reports whether the strategy defines values outside
	// the grid, i.e. whether it may be used with Enable().
	AllowExtrapolate() bool
}

// Strategy2D is an interpolation algorithm for 2-D data.
type Strategy2D[T Float] interface {
	Interpolate2D(data *Data2D[T], point [2]T) (T, error)
	AllowExtrapolate() bool
}

// Strategy3D is an interpolation algorithm for 3-D data.
type Strategy3D[T Float] interface {
	Interpolate3D(data *Data3D[T], point [3]T) (T, error)
	AllowExtrapolate() bool
}

// StrategyND is an interpolation algorithm for data of any dimensionality.
// len(point) always equals data.NDim().
type StrategyND[T Float] interface {
	InterpolateND(data *DataND[T], point []T) (T, error)
	AllowExtrapolate() bool
}

// Initializer1D is implemented by strategies which precompute state from the
// data, such as spline coefficients. Init1D is called whenever the
// interpolator is validated.
type Initializer1D[T Float] interface {
	Init1D(data *Data1D[T]) error
}

type Initializer2D[T Float] interface {
	Init2D(data *Data2D[T]) error
}

type Initializer3D[T Float] interface {
	Init3D(data *Data3D[T]) error
}

type InitializerND[T Float] interface {
	InitND(data *DataND[T]) error
}

// Linear is multilinear interpolation. It extrapolates along the grid
// interval closest to the point.
type Linear[T Float] struct{}

// Nearest takes the value of the closest grid point along each axis. Points
// exactly halfway between two grid points take the upper one.
type Nearest[T Float] struct{}

// LeftNearest takes the value of the grid point at or below the point.
type LeftNearest[T Float] struct{}

// RightNearest takes the value of the grid point at or above the point.
type RightNearest[T Float] struct{}

var (
	_ Strategy1D[float64] = Linear[float64]{}
	_ Strategy2D[float64] = Linear[float64]{}
	_ Strategy3D[float64] = Linear[float64]{}
	_ StrategyND[float64] = Linear[float64]{}

	_ Strategy1D[float64] = Nearest[float64]{}
	_ Strategy2D[float64] = Nearest[float64]{}
	_ Strategy3D[float64] = Nearest[float64]{}
	_ StrategyND[float64] = Nearest[float64]{}

	_ Strategy1D[float64] = LeftNearest[float64]{}
	_ Strategy1D[float64] = RightNearest[float64]{}

	_ Strategy1D[float64]    = &Cubic[float64]{}
	_ Initializer1D[float64] = &Cubic[float64]{}
)

func (Linear[T]) AllowExtrapolate() bool       { return true }
func (Nearest[T]) AllowExtrapolate() bool      { return false }
func (LeftNearest[T]) AllowExtrapolate() bool  { return false }
func (RightNearest[T]) AllowExtrapolate() bool { return false }

func (Linear[T]) String() string       { return "Linear" }
func (Nearest[T]) String() string      { return "Nearest" }
func (LeftNearest[T]) String() string  { return "LeftNearest" }
func (RightNearest[T]) String() string { return "RightNearest" }

// ownStrategy returns a copy of s which does not share precomputed state
// with the caller. Strategies without such state are returned as is.
func ownStrategy[T Float, S Strategy1D[T]](s S) S {
	switch v := any(s).(type) {
	case *Cubic[T]:
		if v != nil {
			return any(v.clone()).(S)
		}
	case StrategyEnum[T]:
		if v.Cubic != nil {
			v.Cubic = v.Cubic.clone()
			return any(v).(S)
		}
	}
	return s
}

func init1D[T Float](s Strategy1D[T], data *Data1D[T]) error {
	if in, ok := s.(Initializer1D[T]); ok {
		return in.Init1D(data)
	}
	return nil
}

func init2D[T Float](s Strategy2D[T], data *Data2D[T]) error {
	if in, ok := s.(Initializer2D[T]); ok {
		return in.Init2D(data)
	}
	return nil
}

func init3D[T Float](s Strategy3D[T], data *Data3D[T]) error {
	if in, ok := s.(Initializer3D[T]); ok {
		return in.Init3D(data)
	}
	return nil
}

func initND[T Float](s StrategyND[T], data *DataND[T]) error {
	if in, ok := s.(InitializerND[T]); ok {
		return in.InitND(data)
	}
	return nil
}

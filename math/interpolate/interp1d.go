package interpolate

// Interp1D interpolates 1-D data.
type Interp1D[T Float, S Strategy1D[T]] struct {
	data        *Data1D[T]
	strategy    S
	extrapolate Extrapolate
}

// New1D creates an interpolator for the values fx sampled at x. The slices
// are referenced, not copied.
//
// Linear, Nearest, LeftNearest, RightNearest and *Cubic are all valid
// strategies. Enable() is only valid with Linear and *Cubic.
func New1D[T Float, S Strategy1D[T]](
	x, fx []T, strategy S, e Extrapolate,
) (*Interp1D[T, S], error) {
	data, err := NewData1D(x, fx)
	if err != nil {
		logRejected("data", 1, err)
		return nil, err
	}

	in := &Interp1D[T, S]{data: data}
	if err := in.configure(strategy, e); err != nil {
		return nil, err
	}
	return in, nil
}

// configure checks strategy and e against the data and, if both are valid,
// installs them. Strategies holding spline state are copied first.
func (in *Interp1D[T, S]) configure(strategy S, e Extrapolate) error {
	strategy = ownStrategy[T](strategy)
	err := checkExtrapolate(e, strategy.AllowExtrapolate(), in.data.Grid[:])
	if err == nil {
		err = init1D[T](strategy, in.data)
	}
	if err != nil {
		logRejected("configure", 1, err)
		return err
	}

	in.strategy, in.extrapolate = strategy, e
	return nil
}

// NDim returns 1.
func (in *Interp1D[T, S]) NDim() int { return 1 }

func (in *Interp1D[T, S]) Validate() error {
	if err := in.data.Validate(); err != nil {
		logRejected("data", 1, err)
		return err
	}
	return in.configure(in.strategy, in.extrapolate)
}

func (in *Interp1D[T, S]) Interpolate(point []T) (T, error) {
	if len(point) != 1 {
		return 0, errPointLength(1)
	}

	p := [1]T{point[0]}
	v, filled, err := resolve(in.extrapolate, in.data.Grid[:], p[:])
	if err != nil || filled {
		return v, err
	}
	return in.strategy.Interpolate1D(in.data, p)
}

func (in *Interp1D[T, S]) SetExtrapolate(e Extrapolate) error {
	return in.configure(in.strategy, e)
}

// SetStrategy replaces the strategy. If the new strategy is incompatible
// with the data or the extrapolation policy, the interpolator is left
// unchanged.
func (in *Interp1D[T, S]) SetStrategy(strategy S) error {
	return in.configure(strategy, in.extrapolate)
}

func (in *Interp1D[T, S]) Data() *Data1D[T]         { return in.data }
func (in *Interp1D[T, S]) Strategy() S              { return in.strategy }
func (in *Interp1D[T, S]) Extrapolate() Extrapolate { return in.extrapolate }

// Clone returns an interpolator which owns a copy of in's data.
func (in *Interp1D[T, S]) Clone() (*Interp1D[T, S], error) {
	data := in.data.Clone()
	return New1D(data.Grid[0], data.Values, in.strategy, in.extrapolate)
}

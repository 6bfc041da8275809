package interpolate

// Interp2D interpolates 2-D data.
type Interp2D[T Float, S Strategy2D[T]] struct {
	data        *Data2D[T]
	strategy    S
	extrapolate Extrapolate
}

// New2D creates an interpolator for the values fxy sampled on the grid
// x by y, where fxy[i][j] is the value at (x[i], y[j]).
//
// Linear and Nearest are valid strategies. Enable() is only valid with
// Linear.
func New2D[T Float, S Strategy2D[T]](
	x, y []T, fxy [][]T, strategy S, e Extrapolate,
) (*Interp2D[T, S], error) {
	data, err := NewData2D(x, y, fxy)
	if err != nil {
		logRejected("data", 2, err)
		return nil, err
	}

	in := &Interp2D[T, S]{data: data}
	if err := in.configure(strategy, e); err != nil {
		return nil, err
	}
	return in, nil
}

func (in *Interp2D[T, S]) configure(strategy S, e Extrapolate) error {
	err := checkExtrapolate(e, strategy.AllowExtrapolate(), in.data.Grid[:])
	if err == nil {
		err = init2D[T](strategy, in.data)
	}
	if err != nil {
		logRejected("configure", 2, err)
		return err
	}

	in.strategy, in.extrapolate = strategy, e
	return nil
}

// NDim returns 2.
func (in *Interp2D[T, S]) NDim() int { return 2 }

func (in *Interp2D[T, S]) Validate() error {
	if err := in.data.Validate(); err != nil {
		logRejected("data", 2, err)
		return err
	}
	return in.configure(in.strategy, in.extrapolate)
}

func (in *Interp2D[T, S]) Interpolate(point []T) (T, error) {
	if len(point) != 2 {
		return 0, errPointLength(2)
	}

	p := [2]T{point[0], point[1]}
	v, filled, err := resolve(in.extrapolate, in.data.Grid[:], p[:])
	if err != nil || filled {
		return v, err
	}
	return in.strategy.Interpolate2D(in.data, p)
}

func (in *Interp2D[T, S]) SetExtrapolate(e Extrapolate) error {
	return in.configure(in.strategy, e)
}

// SetStrategy replaces the strategy, leaving the interpolator unchanged on
// failure.
func (in *Interp2D[T, S]) SetStrategy(strategy S) error {
	return in.configure(strategy, in.extrapolate)
}

func (in *Interp2D[T, S]) Data() *Data2D[T]         { return in.data }
func (in *Interp2D[T, S]) Strategy() S              { return in.strategy }
func (in *Interp2D[T, S]) Extrapolate() Extrapolate { return in.extrapolate }

// Clone returns an interpolator which owns a copy of in's data.
func (in *Interp2D[T, S]) Clone() (*Interp2D[T, S], error) {
	data := in.data.Clone()
	return New2D(
		data.Grid[0], data.Grid[1], data.Values, in.strategy, in.extrapolate,
	)
}

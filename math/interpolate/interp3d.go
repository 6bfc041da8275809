package interpolate

// Interp3D interpolates 3-D data.
type Interp3D[T Float, S Strategy3D[T]] struct {
	data        *Data3D[T]
	strategy    S
	extrapolate Extrapolate
}

// New3D creates an interpolator for the values fxyz sampled on the grid
// x by y by z, where fxyz[i][j][k] is the value at (x[i], y[j], z[k]).
//
// Linear and Nearest are valid strategies. Enable() is only valid with
// Linear.
func New3D[T Float, S Strategy3D[T]](
	x, y, z []T, fxyz [][][]T, strategy S, e Extrapolate,
) (*Interp3D[T, S], error) {
	data, err := NewData3D(x, y, z, fxyz)
	if err != nil {
		logRejected("data", 3, err)
		return nil, err
	}

	in := &Interp3D[T, S]{data: data}
	if err := in.configure(strategy, e); err != nil {
		return nil, err
	}
	return in, nil
}

func (in *Interp3D[T, S]) configure(strategy S, e Extrapolate) error {
	err := checkExtrapolate(e, strategy.AllowExtrapolate(), in.data.Grid[:])
	if err == nil {
		err = init3D[T](strategy, in.data)
	}
	if err != nil {
		logRejected("configure", 3, err)
		return err
	}

	in.strategy, in.extrapolate = strategy, e
	return nil
}

// NDim returns 3.
func (in *Interp3D[T, S]) NDim() int { return 3 }

func (in *Interp3D[T, S]) Validate() error {
	if err := in.data.Validate(); err != nil {
		logRejected("data", 3, err)
		return err
	}
	return in.configure(in.strategy, in.extrapolate)
}

func (in *Interp3D[T, S]) Interpolate(point []T) (T, error) {
	if len(point) != 3 {
		return 0, errPointLength(3)
	}

	p := [3]T{point[0], point[1], point[2]}
	v, filled, err := resolve(in.extrapolate, in.data.Grid[:], p[:])
	if err != nil || filled {
		return v, err
	}
	return in.strategy.Interpolate3D(in.data, p)
}

func (in *Interp3D[T, S]) SetExtrapolate(e Extrapolate) error {
	return in.configure(in.strategy, e)
}

// SetStrategy replaces the strategy, leaving the interpolator unchanged on
// failure.
func (in *Interp3D[T, S]) SetStrategy(strategy S) error {
	return in.configure(strategy, in.extrapolate)
}

func (in *Interp3D[T, S]) Data() *Data3D[T]         { return in.data }
func (in *Interp3D[T, S]) Strategy() S              { return in.strategy }
func (in *Interp3D[T, S]) Extrapolate() Extrapolate { return in.extrapolate }

// Clone returns an interpolator which owns a copy of in's data.
func (in *Interp3D[T, S]) Clone() (*Interp3D[T, S], error) {
	data := in.data.Clone()
	return New3D(
		data.Grid[0], data.Grid[1], data.Grid[2], data.Values,
		in.strategy, in.extrapolate,
	)
}

package interpolate

import (
	"github.com/phil-mansfield/gointerp/math/mat"
)

// InterpND interpolates data of any dimensionality, chosen at runtime.
type InterpND[T Float, S StrategyND[T]] struct {
	data        *DataND[T]
	strategy    S
	extrapolate Extrapolate
}

// NewND creates an interpolator for values sampled on grid, where grid[i]
// holds the coordinates along axis i of values. values is referenced, not
// copied.
//
// A single value with a grid of empty axes (or no axes) is a 0-D
// interpolator which takes empty points.
//
// Linear and Nearest are valid strategies. Enable() is only valid with
// Linear.
func NewND[T Float, S StrategyND[T]](
	grid [][]T, values *mat.Array[T], strategy S, e Extrapolate,
) (*InterpND[T, S], error) {
	data, err := NewDataND(grid, values)
	if err != nil {
		logRejected("data", len(grid), err)
		return nil, err
	}

	in := &InterpND[T, S]{data: data}
	if err := in.configure(strategy, e); err != nil {
		return nil, err
	}
	return in, nil
}

func (in *InterpND[T, S]) configure(strategy S, e Extrapolate) error {
	n := in.data.NDim()
	err := checkExtrapolate(e, strategy.AllowExtrapolate(), in.data.Grid[:n])
	if err == nil {
		err = initND[T](strategy, in.data)
	}
	if err != nil {
		logRejected("configure", n, err)
		return err
	}

	in.strategy, in.extrapolate = strategy, e
	return nil
}

// NDim returns the dimensionality of the data.
func (in *InterpND[T, S]) NDim() int { return in.data.NDim() }

func (in *InterpND[T, S]) Validate() error {
	if err := in.data.Validate(); err != nil {
		logRejected("data", len(in.data.Grid), err)
		return err
	}
	return in.configure(in.strategy, in.extrapolate)
}

func (in *InterpND[T, S]) Interpolate(point []T) (T, error) {
	n := in.NDim()
	if len(point) != n {
		return 0, errPointLength(n)
	}

	p := append(make([]T, 0, n), point...)
	v, filled, err := resolve(in.extrapolate, in.data.Grid[:n], p)
	if err != nil || filled {
		return v, err
	}
	return in.strategy.InterpolateND(in.data, p)
}

func (in *InterpND[T, S]) SetExtrapolate(e Extrapolate) error {
	return in.configure(in.strategy, e)
}

// SetStrategy replaces the strategy, leaving the interpolator unchanged on
// failure.
func (in *InterpND[T, S]) SetStrategy(strategy S) error {
	return in.configure(strategy, in.extrapolate)
}

func (in *InterpND[T, S]) Data() *DataND[T]         { return in.data }
func (in *InterpND[T, S]) Strategy() S              { return in.strategy }
func (in *InterpND[T, S]) Extrapolate() Extrapolate { return in.extrapolate }

// Clone returns an interpolator which owns a copy of in's data.
func (in *InterpND[T, S]) Clone() (*InterpND[T, S], error) {
	data := in.data.Clone()
	return NewND(data.Grid, data.Values, in.strategy, in.extrapolate)
}

package interpolate

// Interp0D is a constant. It is the 0-dimensional interpolator: the only
// valid point is the empty one.
type Interp0D[T Float] struct {
	Value T
}

func New0D[T Float](v T) *Interp0D[T] { return &Interp0D[T]{Value: v} }

// NDim returns 0.
func (in *Interp0D[T]) NDim() int { return 0 }

// Validate always succeeds.
func (in *Interp0D[T]) Validate() error { return nil }

func (in *Interp0D[T]) Interpolate(point []T) (T, error) {
	if len(point) != 0 {
		return 0, errPointLength(0)
	}
	return in.Value, nil
}

// SetExtrapolate accepts and ignores every policy, since no point is ever out
// of bounds.
func (in *Interp0D[T]) SetExtrapolate(e Extrapolate) error { return nil }

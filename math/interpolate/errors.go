package interpolate

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sentinels for the kinds of ValidateError. Use errors.Is to test for them.
var (
	ErrStrategySelection    = errors.New("selected strategy is inapplicable for interpolator")
	ErrExtrapolateSelection = errors.New("selected extrapolation is inapplicable for interpolator")
	ErrEmptyGrid            = errors.New("grid coordinates cannot be empty")
	ErrMonotonicity         = errors.New("grid coordinates must be sorted and non-repeating")
	ErrIncompatibleShapes   = errors.New("grid and values are not compatible shapes")
	ErrInvalid              = errors.New("invalid interpolator")
)

// Sentinels for the kinds of InterpolateError.
var (
	ErrPointLength = errors.New("wrong point length")
	ErrOutOfBounds = errors.New("point beyond grid data")
	ErrNaN         = errors.New("NaN value encountered")
	ErrInterpolate = errors.New("interpolation failed")
)

// ValidateKind enumerates the ways interpolator data and settings can be
// rejected.
type ValidateKind int

const (
	StrategySelection ValidateKind = iota
	ExtrapolateSelection
	EmptyGrid
	Monotonicity
	IncompatibleShapes
	OtherValidate
)

// ValidateError is returned when constructing or reconfiguring an
// interpolator fails. Axis is only meaningful for EmptyGrid, Monotonicity and
// IncompatibleShapes.
type ValidateError struct {
	Kind ValidateKind
	Axis int
	Msg  string
}

func (e *ValidateError) Error() string {
	switch e.Kind {
	case StrategySelection:
		return fmt.Sprintf("selected strategy (%s) is unimplemented/inapplicable for interpolator", e.Msg)
	case ExtrapolateSelection:
		return fmt.Sprintf("selected extrapolation (%s) is unimplemented/inapplicable for interpolator", e.Msg)
	case EmptyGrid:
		return fmt.Sprintf("supplied grid coordinates cannot be empty: dim %d", e.Axis)
	case Monotonicity:
		return fmt.Sprintf("supplied coordinates must be sorted and non-repeating: dim %d", e.Axis)
	case IncompatibleShapes:
		return fmt.Sprintf("supplied grid and values are not compatible shapes: dim %d", e.Axis)
	default:
		return e.Msg
	}
}

// Unwrap returns the sentinel matching e.Kind.
func (e *ValidateError) Unwrap() error {
	switch e.Kind {
	case StrategySelection:
		return ErrStrategySelection
	case ExtrapolateSelection:
		return ErrExtrapolateSelection
	case EmptyGrid:
		return ErrEmptyGrid
	case Monotonicity:
		return ErrMonotonicity
	case IncompatibleShapes:
		return ErrIncompatibleShapes
	default:
		return ErrInvalid
	}
}

func errStrategySelection(name string) error {
	return &ValidateError{Kind: StrategySelection, Msg: name}
}

func errExtrapolateSelection(e Extrapolate) error {
	return &ValidateError{Kind: ExtrapolateSelection, Msg: e.String()}
}

func errAxis(kind ValidateKind, axis int) error {
	return &ValidateError{Kind: kind, Axis: axis}
}

func errOther(format string, args ...interface{}) error {
	return &ValidateError{Kind: OtherValidate, Msg: fmt.Sprintf(format, args...)}
}

// InterpolateKind enumerates the ways a single query can fail.
type InterpolateKind int

const (
	PointLength InterpolateKind = iota
	OutOfBounds
	NaNValue
	OtherInterpolate
)

// InterpolateError is returned by a failed query. For OutOfBounds errors Err
// holds one error per offending axis, retrievable with multierr.Errors.
type InterpolateError struct {
	Kind     InterpolateKind
	Expected int
	Msg      string
	Err      error
}

func (e *InterpolateError) Error() string {
	switch e.Kind {
	case PointLength:
		return fmt.Sprintf(
			"supplied point slice should have length %d for %d-D interpolation",
			e.Expected, e.Expected,
		)
	case OutOfBounds:
		return fmt.Sprintf("attempted to interpolate at point beyond grid data: %v", e.Err)
	default:
		return e.Msg
	}
}

// Unwrap returns the sentinel matching e.Kind and, for out of bounds errors,
// the per-axis errors.
func (e *InterpolateError) Unwrap() []error {
	var sentinel error
	switch e.Kind {
	case PointLength:
		sentinel = ErrPointLength
	case OutOfBounds:
		sentinel = ErrOutOfBounds
	case NaNValue:
		sentinel = ErrNaN
	default:
		sentinel = ErrInterpolate
	}
	if e.Err == nil {
		return []error{sentinel}
	}
	return []error{sentinel, e.Err}
}

func errPointLength(n int) error {
	return &InterpolateError{Kind: PointLength, Expected: n}
}

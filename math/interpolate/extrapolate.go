package interpolate

import (
	"fmt"
	"math"
	"strings"

	"go.uber.org/multierr"
)

// ExtrapolateMode selects what happens to points outside the grid.
type ExtrapolateMode int

const (
	// ExtrapolateError returns an error naming every out of bounds axis.
	ExtrapolateError ExtrapolateMode = iota
	// ExtrapolateEnable evaluates beyond the grid. Only valid for strategies
	// which allow extrapolation.
	ExtrapolateEnable
	// ExtrapolateFill returns a fixed value.
	ExtrapolateFill
	// ExtrapolateClamp moves out of bounds coordinates to the nearest grid
	// edge.
	ExtrapolateClamp
	// ExtrapolateWrap treats every axis as periodic over its grid range. The
	// first and last values are not required to match.
	ExtrapolateWrap
)

var extrapolateNames = []string{"Error", "Enable", "Fill", "Clamp", "Wrap"}

func (m ExtrapolateMode) String() string {
	if m < 0 || int(m) >= len(extrapolateNames) {
		return fmt.Sprintf("ExtrapolateMode(%d)", int(m))
	}
	return extrapolateNames[m]
}

// ParseExtrapolateMode is the inverse of ExtrapolateMode.String. Matching is
// case-insensitive.
func ParseExtrapolateMode(s string) (ExtrapolateMode, error) {
	for i, name := range extrapolateNames {
		if strings.EqualFold(s, name) {
			return ExtrapolateMode(i), nil
		}
	}
	return 0, errOther("unrecognized extrapolation mode '%s'", s)
}

// Extrapolate is an extrapolation policy. The zero value is ExtrapolateError.
// Fill is only used by ExtrapolateFill.
type Extrapolate struct {
	Mode ExtrapolateMode
	Fill float64
}

func Enable() Extrapolate        { return Extrapolate{Mode: ExtrapolateEnable} }
func Fill(v float64) Extrapolate { return Extrapolate{Mode: ExtrapolateFill, Fill: v} }
func Clamp() Extrapolate         { return Extrapolate{Mode: ExtrapolateClamp} }
func Wrap() Extrapolate          { return Extrapolate{Mode: ExtrapolateWrap} }
func Reject() Extrapolate        { return Extrapolate{Mode: ExtrapolateError} }

func (e Extrapolate) String() string {
	if e.Mode == ExtrapolateFill {
		return fmt.Sprintf("Fill(%g)", e.Fill)
	}
	return e.Mode.String()
}

// Equal reports whether two policies are the same. Fill values are compared
// bitwise so that Fill(NaN) equals itself.
func (e Extrapolate) Equal(o Extrapolate) bool {
	if e.Mode != o.Mode {
		return false
	}
	return e.Mode != ExtrapolateFill ||
		math.Float64bits(e.Fill) == math.Float64bits(o.Fill)
}

// checkExtrapolate reports whether e may be used with a strategy and grid.
func checkExtrapolate[T Float](e Extrapolate, allow bool, grid [][]T) error {
	if e.Mode < ExtrapolateError || e.Mode > ExtrapolateWrap {
		return errExtrapolateSelection(e)
	}
	if e.Mode != ExtrapolateEnable {
		return nil
	}
	if !allow {
		return errExtrapolateSelection(e)
	}
	for i, g := range grid {
		if len(g) < 2 {
			return errOther(
				"at least 2 data points are required for extrapolation: dim %d", i,
			)
		}
	}
	return nil
}

// WrapValue maps x into [lo, hi) by Euclidean modulo over the span hi - lo.
// A zero span maps everything to lo.
func WrapValue[T Float](x, lo, hi T) T {
	span := float64(hi - lo)
	if span == 0 {
		return lo
	}
	r := math.Mod(float64(x-lo), span)
	if r < 0 {
		r += span
	}
	return lo + T(r)
}

func inBounds[T Float](grid []T, x T) bool {
	return grid[0] <= x && x <= grid[len(grid)-1]
}

// resolve applies the extrapolation policy e to point, which is overwritten
// in place when clamped or wrapped. If filled is true, the query is answered
// by value and the strategy must not be called.
func resolve[T Float](
	e Extrapolate, grid [][]T, point []T,
) (value T, filled bool, err error) {
	var errs error
	for i, x := range point {
		if inBounds(grid[i], x) {
			continue
		}

		switch e.Mode {
		case ExtrapolateEnable:
		case ExtrapolateFill:
			return T(e.Fill), true, nil
		case ExtrapolateClamp:
			if x < grid[i][0] || x != x {
				point[i] = grid[i][0]
			} else {
				point[i] = grid[i][len(grid[i])-1]
			}
		case ExtrapolateWrap:
			point[i] = WrapValue(x, grid[i][0], grid[i][len(grid[i])-1])
		default:
			errs = multierr.Append(errs, fmt.Errorf(
				"point[%d] = %v is out of bounds for grid[%d] = %v",
				i, x, i, grid[i],
			))
		}
	}

	if errs != nil {
		return 0, false, &InterpolateError{Kind: OutOfBounds, Err: errs}
	}
	return 0, false, nil
}

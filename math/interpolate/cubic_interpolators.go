package interpolate

import (
	"fmt"
	"strings"
)

// CubicBC is the boundary condition which closes a cubic spline's system of
// equations.
type CubicBC int

const (
	// Natural splines have zero second derivative at both ends.
	Natural CubicBC = iota
	// Clamped splines have the first derivatives given by Cubic.Left and
	// Cubic.Right at the ends.
	Clamped
	// NotAKnot splines have a continuous third derivative at the second and
	// second to last knots.
	NotAKnot
	// Periodic splines match first and second derivatives between the first
	// and last knots. The first and last values should be equal.
	Periodic
)

var cubicBCNames = []string{"Natural", "Clamped", "NotAKnot", "Periodic"}

func (bc CubicBC) String() string {
	if bc < 0 || int(bc) >= len(cubicBCNames) {
		return fmt.Sprintf("CubicBC(%d)", int(bc))
	}
	return cubicBCNames[bc]
}

// ParseCubicBC is the inverse of CubicBC.String. Matching is
// case-insensitive.
func ParseCubicBC(s string) (CubicBC, error) {
	for i, name := range cubicBCNames {
		if strings.EqualFold(s, name) {
			return CubicBC(i), nil
		}
	}
	return 0, errOther("unrecognized cubic boundary condition '%s'", s)
}

// CubicExtrapolate is how a cubic spline is continued past the grid when
// extrapolation is enabled.
type CubicExtrapolate int

const (
	// CubicLinear continues along the tangent line at the end knot.
	CubicLinear CubicExtrapolate = iota
	// CubicSpline continues the polynomial of the end interval.
	CubicSpline
	// CubicWrap wraps the point back into the grid.
	CubicWrap
)

var cubicExtrapolateNames = []string{"Linear", "Spline", "Wrap"}

func (ce CubicExtrapolate) String() string {
	if ce < 0 || int(ce) >= len(cubicExtrapolateNames) {
		return fmt.Sprintf("CubicExtrapolate(%d)", int(ce))
	}
	return cubicExtrapolateNames[ce]
}

// ParseCubicExtrapolate is the inverse of CubicExtrapolate.String.
func ParseCubicExtrapolate(s string) (CubicExtrapolate, error) {
	for i, name := range cubicExtrapolateNames {
		if strings.EqualFold(s, name) {
			return CubicExtrapolate(i), nil
		}
	}
	return 0, errOther("unrecognized cubic extrapolation '%s'", s)
}

// Cubic is 1-D cubic spline interpolation. Knot second derivatives are
// computed by Init1D, which every interpolator calls on validation.
// Interpolators work on their own copy of the *Cubic they are given, so one
// value may configure any number of them.
type Cubic[T Float] struct {
	BC CubicBC
	// Left and Right are the end slopes of Clamped splines.
	Left, Right T
	Extrapolate CubicExtrapolate

	z []T
}

func NewCubic[T Float](bc CubicBC, e CubicExtrapolate) *Cubic[T] {
	return &Cubic[T]{BC: bc, Extrapolate: e}
}

func NaturalCubic[T Float]() *Cubic[T]  { return NewCubic[T](Natural, CubicLinear) }
func NotAKnotCubic[T Float]() *Cubic[T] { return NewCubic[T](NotAKnot, CubicLinear) }
func PeriodicCubic[T Float]() *Cubic[T] { return NewCubic[T](Periodic, CubicWrap) }

func ClampedCubic[T Float](left, right T) *Cubic[T] {
	c := NewCubic[T](Clamped, CubicLinear)
	c.Left, c.Right = left, right
	return c
}

func (c *Cubic[T]) String() string {
	if c.BC == Clamped {
		return fmt.Sprintf("Cubic(Clamped(%g, %g))", float64(c.Left), float64(c.Right))
	}
	return fmt.Sprintf("Cubic(%s)", c.BC)
}

// AllowExtrapolate returns true.
func (c *Cubic[T]) AllowExtrapolate() bool { return true }

// SecondDerivatives returns the spline's second derivative at each knot.
// It is nil before Init1D.
func (c *Cubic[T]) SecondDerivatives() []T { return c.z }

// clone copies the spline parameters, but not the knot derivatives.
func (c *Cubic[T]) clone() *Cubic[T] {
	out := *c
	out.z = nil
	return &out
}

// Init1D solves for the knot second derivatives of data.
func (c *Cubic[T]) Init1D(data *Data1D[T]) error {
	x, y := data.Grid[0], data.Values
	if len(x) < 2 {
		return errOther("at least 2 data points are required for cubic splines")
	}

	sys := newSplineSystem(x, y)
	var (
		z   []T
		err error
	)
	switch c.BC {
	case Natural:
		z, err = sys.natural()
	case Clamped:
		z, err = sys.clamped(c.Left, c.Right)
	case NotAKnot:
		z, err = sys.notAKnot()
	case Periodic:
		z, err = sys.periodic()
	default:
		return errStrategySelection(c.String())
	}
	if err != nil {
		return errOther("cubic spline: %s", err.Error())
	}

	c.z = z
	return nil
}

// Interpolate1D evaluates the spline at point.
func (c *Cubic[T]) Interpolate1D(data *Data1D[T], point [1]T) (T, error) {
	x, y, p := data.Grid[0], data.Values, point[0]
	last := len(x) - 1
	if len(c.z) != len(x) {
		return 0, &InterpolateError{
			Kind: OtherInterpolate, Msg: "cubic spline has not been initialized",
		}
	}
	if i := indexOf(x, p); i >= 0 {
		return y[i], nil
	}

	var l int
	switch {
	case p < x[0]:
		switch c.Extrapolate {
		case CubicLinear:
			h := x[1] - x[0]
			k := (y[1]-y[0])/h - h*(2*c.z[0]+c.z[1])/6
			return y[0] + k*(p-x[0]), nil
		case CubicSpline:
			l = 0
		default:
			p = WrapValue(p, x[0], x[last])
			l = nearestIndex(x, p)
		}
	case p > x[last]:
		switch c.Extrapolate {
		case CubicLinear:
			h := x[last] - x[last-1]
			k := (y[last]-y[last-1])/h + h*(c.z[last-1]+2*c.z[last])/6
			return y[last] + k*(p-x[last]), nil
		case CubicSpline:
			l = last - 1
		default:
			p = WrapValue(p, x[0], x[last])
			l = nearestIndex(x, p)
		}
	default:
		l = nearestIndex(x, p)
	}

	return c.eval(x, y, l, p), nil
}

// eval evaluates the polynomial of interval l at p.
func (c *Cubic[T]) eval(x, y []T, l int, p T) T {
	h := x[l+1] - x[l]
	a, b := x[l+1]-p, p-x[l]
	z0, z1 := c.z[l], c.z[l+1]

	return z0*a*a*a/(6*h) + z1*b*b*b/(6*h) +
		(y[l+1]/h-z1*h/6)*b + (y[l]/h-z0*h/6)*a
}

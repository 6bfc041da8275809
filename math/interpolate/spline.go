package interpolate

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// TriDiagAt solves the system of equations
//
// | b0 c0 ..       |   | out0 |   | r0 |
// | a1 b1 c1 ..    |   | out1 |   | r1 |
// | ..             | * | ..   | = | .. |
// | ..       an bn |   | outn |   | rn |
//
// for out0 .. outn in place in the given slice. a0 and cn are ignored.
func TriDiagAt[T Float](as, bs, cs, rs, out []T) error {
	n := len(out)
	if len(as) != n || len(bs) != n || len(cs) != n || len(rs) != n {
		return fmt.Errorf("Length of arguments to TriDiagAt are unequal.")
	} else if n == 0 {
		return nil
	}

	tmp := make([]T, n)

	beta := bs[0]
	if beta == 0 {
		return fmt.Errorf("TriDiagAt cannot solve given system.")
	}
	out[0] = rs[0] / beta

	for i := 1; i < n; i++ {
		tmp[i] = cs[i-1] / beta
		beta = bs[i] - as[i]*tmp[i]
		if beta == 0 {
			return fmt.Errorf("TriDiagAt cannot solve given system.")
		}
		out[i] = (rs[i] - as[i]*out[i-1]) / beta
	}

	for i := n - 2; i >= 0; i-- {
		out[i] -= tmp[i+1] * out[i+1]
	}
	return nil
}

// TriDiag is TriDiagAt with a newly allocated output slice.
func TriDiag[T Float](as, bs, cs, rs []T) ([]T, error) {
	out := make([]T, len(bs))
	if err := TriDiagAt(as, bs, cs, rs, out); err != nil {
		return nil, err
	}
	return out, nil
}

// splineSystem holds the knot spacings h and the secant slopes b of a
// sampled function.
type splineSystem[T Float] struct {
	h, b []T
}

func newSplineSystem[T Float](xs, ys []T) splineSystem[T] {
	n := len(xs) - 1
	sys := splineSystem[T]{h: make([]T, n), b: make([]T, n)}
	for i := 0; i < n; i++ {
		sys.h[i] = xs[i+1] - xs[i]
		sys.b[i] = (ys[i+1] - ys[i]) / sys.h[i]
	}
	return sys
}

// rhs is the right hand side of the continuity equation at interior knot i.
func (sys splineSystem[T]) rhs(i int) T {
	return 6 * (sys.b[i] - sys.b[i-1])
}

// natural solves for knot second derivatives with zero curvature at both
// ends.
func (sys splineSystem[T]) natural() ([]T, error) {
	return sys.endConditions(1, 0, 0, 1, 0, 0)
}

// clamped solves for knot second derivatives with first derivatives left and
// right at the ends.
func (sys splineSystem[T]) clamped(left, right T) ([]T, error) {
	n := len(sys.h)
	return sys.endConditions(
		2*sys.h[0], sys.h[0], 6*(sys.b[0]-left),
		2*sys.h[n-1], sys.h[n-1], 6*(right-sys.b[n-1]),
	)
}

// endConditions solves the tridiagonal system made of the interior
// continuity equations and one boundary row at each end. The first row is
// (b0 * M0 + c0 * M1 = r0) and the last is (an * M(n-1) + bn * Mn = rn).
func (sys splineSystem[T]) endConditions(b0, c0, r0, bn, an, rn T) ([]T, error) {
	n := len(sys.h)
	as, bs := make([]T, n+1), make([]T, n+1)
	cs, rs := make([]T, n+1), make([]T, n+1)

	bs[0], cs[0], rs[0] = b0, c0, r0
	for i := 1; i < n; i++ {
		as[i] = sys.h[i-1]
		bs[i] = 2 * (sys.h[i-1] + sys.h[i])
		cs[i] = sys.h[i]
		rs[i] = sys.rhs(i)
	}
	as[n], bs[n], rs[n] = an, bn, rn

	return TriDiag(as, bs, cs, rs)
}

// notAKnot solves for knot second derivatives such that the third derivative
// is continuous across the second and second to last knots.
func (sys splineSystem[T]) notAKnot() ([]T, error) {
	h, n := sys.h, len(sys.h)
	z := make([]T, n+1)

	switch n {
	case 1:
		// A line.
		return z, nil
	case 2:
		// A single parabola.
		m := 2 * (sys.b[1] - sys.b[0]) / (h[0] + h[1])
		z[0], z[1], z[2] = m, m, m
		return z, nil
	}

	// Unknowns M1 .. M(n-1), with M0 and Mn eliminated from the first and
	// last rows.
	m := n - 1
	as, bs := make([]T, m), make([]T, m)
	cs, rs := make([]T, m), make([]T, m)
	for i := 0; i < m; i++ {
		k := i + 1
		as[i] = h[k-1]
		bs[i] = 2 * (h[k-1] + h[k])
		cs[i] = h[k]
		rs[i] = sys.rhs(k)
	}
	bs[0] = (h[0] + h[1]) * (h[0] + 2*h[1]) / h[1]
	cs[0] = (h[1]*h[1] - h[0]*h[0]) / h[1]
	as[m-1] = (h[n-2]*h[n-2] - h[n-1]*h[n-1]) / h[n-2]
	bs[m-1] = (h[n-1] + h[n-2]) * (2*h[n-2] + h[n-1]) / h[n-2]

	if err := TriDiagAt(as, bs, cs, rs, z[1:n]); err != nil {
		return nil, err
	}

	z[0] = z[1] + h[0]*(z[1]-z[2])/h[1]
	z[n] = z[n-1] + h[n-1]*(z[n-1]-z[n-2])/h[n-2]
	return z, nil
}

// periodic solves for knot second derivatives of a spline which wraps from
// the last knot back to the first. The resulting system is cyclic rather
// than tridiagonal, so it is solved densely.
func (sys splineSystem[T]) periodic() ([]T, error) {
	h, b, n := sys.h, sys.b, len(sys.h)

	a := mat.NewDense(n, n, nil)
	r := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		prev, next := (i+n-1)%n, (i+1)%n
		hPrev, hi := float64(h[prev]), float64(h[i])

		a.Set(i, prev, a.At(i, prev)+hPrev)
		a.Set(i, i, a.At(i, i)+2*(hPrev+hi))
		a.Set(i, next, a.At(i, next)+hi)
		r.SetVec(i, 6*float64(b[i]-b[prev]))
	}

	var m mat.VecDense
	if err := m.SolveVec(a, r); err != nil {
		return nil, fmt.Errorf("Cannot solve periodic spline system: %s", err.Error())
	}

	z := make([]T, n+1)
	for i := 0; i < n; i++ {
		z[i] = T(m.AtVec(i))
	}
	z[n] = z[0]
	return z, nil
}

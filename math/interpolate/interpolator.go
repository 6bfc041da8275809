/*package interpolate evaluates functions sampled on rectilinear grids.

An interpolator combines grid data, a Strategy which computes values between
grid points, and an Extrapolate policy which decides what happens outside
the grid. Fixed-dimension interpolators (Interp1D, Interp2D, Interp3D) exist
for speed; InterpND handles any number of dimensions and gives the same
results.

Strategies can be supplied statically, as the S type parameter, dynamically
as an interface value such as Strategy1D[T], or through the closed
StrategyEnum, which is what InterpolatorEnum and snapshots use.

Interpolators are not safe for concurrent mutation. Concurrent calls to
Interpolate are fine as long as nothing calls a setter at the same time.
*/
package interpolate

// Interpolator is the query interface shared by every interpolator.
type Interpolator[T Float] interface {
	// NDim returns the number of coordinates Interpolate expects.
	NDim() int
	// Validate rechecks the data, the extrapolation policy and the
	// strategy, reinitializing the strategy.
	Validate() error
	// Interpolate evaluates the interpolator at point.
	Interpolate(point []T) (T, error)
	// SetExtrapolate changes the extrapolation policy. If e is rejected the
	// interpolator is left unchanged.
	SetExtrapolate(e Extrapolate) error
}

var (
	_ Interpolator[float64] = &Interp0D[float64]{}
	_ Interpolator[float64] = &Interp1D[float64, Linear[float64]]{}
	_ Interpolator[float64] = &Interp2D[float64, Linear[float64]]{}
	_ Interpolator[float64] = &Interp3D[float64, Linear[float64]]{}
	_ Interpolator[float64] = &InterpND[float64, Linear[float64]]{}
	_ Interpolator[float64] = &InterpolatorEnum[float64]{}
)

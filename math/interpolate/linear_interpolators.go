package interpolate

///////////////////////
// 1D Implementation //
///////////////////////

// Interpolate1D linearly interpolates between the two grid points bracketing
// point. Points on the grid return the stored value exactly.
func (Linear[T]) Interpolate1D(data *Data1D[T], point [1]T) (T, error) {
	x, fx := data.Grid[0], data.Values
	if i := indexOf(x, point[0]); i >= 0 {
		return fx[i], nil
	}

	lo, hi, diff := bracket(x, point[0])
	return fx[lo]*(1-diff) + fx[hi]*diff, nil
}

///////////////////////
// 2D Implementation //
///////////////////////

// Interpolate2D performs bilinear interpolation, blending along x and then y.
func (Linear[T]) Interpolate2D(data *Data2D[T], point [2]T) (T, error) {
	xl, xu, xd := bracket(data.Grid[0], point[0])
	yl, yu, yd := bracket(data.Grid[1], point[1])
	f := data.Values

	f0 := f[xl][yl]*(1-xd) + f[xu][yl]*xd
	f1 := f[xl][yu]*(1-xd) + f[xu][yu]*xd
	return f0*(1-yd) + f1*yd, nil
}

///////////////////////
// 3D Implementation //
///////////////////////

// Interpolate3D performs trilinear interpolation, blending along x, then y,
// then z.
func (Linear[T]) Interpolate3D(data *Data3D[T], point [3]T) (T, error) {
	xl, xu, xd := bracket(data.Grid[0], point[0])
	yl, yu, yd := bracket(data.Grid[1], point[1])
	zl, zu, zd := bracket(data.Grid[2], point[2])
	f := data.Values

	f00 := f[xl][yl][zl]*(1-xd) + f[xu][yl][zl]*xd
	f01 := f[xl][yl][zu]*(1-xd) + f[xu][yl][zu]*xd
	f10 := f[xl][yu][zl]*(1-xd) + f[xu][yu][zl]*xd
	f11 := f[xl][yu][zu]*(1-xd) + f[xu][yu][zu]*xd

	f0 := f00*(1-yd) + f10*yd
	f1 := f01*(1-yd) + f11*yd

	return f0*(1-zd) + f1*zd, nil
}

///////////////////////
// ND Implementation //
///////////////////////

// InterpolateND performs multilinear interpolation over any number of
// dimensions.
func (Linear[T]) InterpolateND(data *DataND[T], point []T) (T, error) {
	return hypercube(data, point, linearBlend[T])
}

func linearBlend[T Float](lo, hi, diff T) T {
	return lo*(1-diff) + hi*diff
}

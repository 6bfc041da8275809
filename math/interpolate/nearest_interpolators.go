package interpolate

// Nearest neighbor strategies never extrapolate, so every point they see is
// inside the grid.

func (Nearest[T]) Interpolate1D(data *Data1D[T], point [1]T) (T, error) {
	return data.Values[nearer(data.Grid[0], point[0])], nil
}

func (Nearest[T]) Interpolate2D(data *Data2D[T], point [2]T) (T, error) {
	i := nearer(data.Grid[0], point[0])
	j := nearer(data.Grid[1], point[1])
	return data.Values[i][j], nil
}

func (Nearest[T]) Interpolate3D(data *Data3D[T], point [3]T) (T, error) {
	i := nearer(data.Grid[0], point[0])
	j := nearer(data.Grid[1], point[1])
	k := nearer(data.Grid[2], point[2])
	return data.Values[i][j][k], nil
}

func (Nearest[T]) InterpolateND(data *DataND[T], point []T) (T, error) {
	return hypercube(data, point, nearestBlend[T])
}

func nearestBlend[T Float](lo, hi, diff T) T {
	if diff < 0.5 {
		return lo
	}
	return hi
}

func (LeftNearest[T]) Interpolate1D(data *Data1D[T], point [1]T) (T, error) {
	x, fx := data.Grid[0], data.Values
	if i := indexOf(x, point[0]); i >= 0 {
		return fx[i], nil
	}
	return fx[nearestIndex(x, point[0])], nil
}

func (RightNearest[T]) Interpolate1D(data *Data1D[T], point [1]T) (T, error) {
	x, fx := data.Grid[0], data.Values
	if i := indexOf(x, point[0]); i >= 0 {
		return fx[i], nil
	}
	i := nearestIndex(x, point[0]) + 1
	if i >= len(fx) {
		i = len(fx) - 1
	}
	return fx[i], nil
}

package shapes

// Broadcast computes the element-wise broadcast of two dimension sequences,
// following the usual numpy-style rules: the shorter sequence is
// right-aligned and padded with size-1 axes, and a pair of dimensions is
// compatible if they are equal or either is 1.
//
// It returns the broadcast result dimensions and whether a broadcast exists
// at all. Unknown dimensions are compatible with anything and yield an
// unknown result dimension (unless the other side is 1, in which case the
// known side wins).
func Broadcast(x, y []int) ([]int, bool) {
	if len(x) < len(y) {
		x, y = y, x
	}
	result := make([]int, len(x))
	copy(result, x)
	offset := len(x) - len(y)
	for i, yDim := range y {
		xDim := x[offset+i]
		switch {
		case xDim == yDim:
			result[offset+i] = xDim
		case xDim == 1:
			result[offset+i] = yDim
		case yDim == 1:
			result[offset+i] = xDim
		case xDim == UnknownDimension || yDim == UnknownDimension:
			result[offset+i] = UnknownDimension
		default:
			return nil, false
		}
	}
	return result, true
}

// BroadcastShapes is a Shape-level convenience over Broadcast. Both shapes
// must be ranked and have the same DType.
func BroadcastShapes(x, y Shape) (Shape, bool) {
	if !x.IsRanked() || !y.IsRanked() || x.DType != y.DType {
		return Invalid(), false
	}
	dims, ok := Broadcast(x.Dimensions, y.Dimensions)
	if !ok {
		return Invalid(), false
	}
	return Shape{DType: x.DType, Dimensions: dims}, true
}

package kernelgen

// StaticArrayIndex2D returns the flat offset of (col, row) in a
// column-major array with colStride entries per column.
func StaticArrayIndex2D(col, row, colStride int) int {
	return colStride*col + row
}

// StaticArrayIndex3D returns the flat offset of (ind, col, row) in an
// array of indStride-sized column-major matrices.
func StaticArrayIndex3D(ind, col, row, indStride, colStride int) int {
	return indStride*ind + colStride*col + row
}

package math

import (
	"errors"
	"math"
)

// ErrSingularMatrix is returned when a non-invertible matrix is inverted.
// Shape and camera transforms must be invertible; hitting this during
// scene construction is a configuration error.
var ErrSingularMatrix = errors.New("matrix is singular and cannot be inverted")

// Matrix4 is a 4x4 matrix in row-major order
type Matrix4 [4][4]float64

// IdentityMatrix returns the 4x4 identity matrix
func IdentityMatrix() Matrix4 {
	return Matrix4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Multiply returns the matrix product m * other
func (m Matrix4) Multiply(other Matrix4) Matrix4 {
	var result Matrix4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			result[row][col] = m[row][0]*other[0][col] +
				m[row][1]*other[1][col] +
				m[row][2]*other[2][col] +
				m[row][3]*other[3][col]
		}
	}
	return result
}

// MultiplyTuple returns the matrix applied to a tuple
func (m Matrix4) MultiplyTuple(t Tuple) Tuple {
	return Tuple{
		X: m[0][0]*t.X + m[0][1]*t.Y + m[0][2]*t.Z + m[0][3]*t.W,
		Y: m[1][0]*t.X + m[1][1]*t.Y + m[1][2]*t.Z + m[1][3]*t.W,
		Z: m[2][0]*t.X + m[2][1]*t.Y + m[2][2]*t.Z + m[2][3]*t.W,
		W: m[3][0]*t.X + m[3][1]*t.Y + m[3][2]*t.Z + m[3][3]*t.W,
	}
}

// Transpose returns the matrix with rows and columns swapped
func (m Matrix4) Transpose() Matrix4 {
	var result Matrix4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			result[col][row] = m[row][col]
		}
	}
	return result
}

// Determinant returns the determinant via cofactor expansion on row 0
func (m Matrix4) Determinant() float64 {
	det := 0.0
	for col := 0; col < 4; col++ {
		det += m[0][col] * m.cofactor(0, col)
	}
	return det
}

// Inverse returns the inverted matrix, or ErrSingularMatrix when the
// determinant is zero.
func (m Matrix4) Inverse() (Matrix4, error) {
	det := m.Determinant()
	if math.Abs(det) < Epsilon {
		return Matrix4{}, ErrSingularMatrix
	}

	var result Matrix4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			// note the transposed assignment
			result[col][row] = m.cofactor(row, col) / det
		}
	}
	return result, nil
}

// Equal reports whether two matrices are equal within Epsilon
func (m Matrix4) Equal(other Matrix4) bool {
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if !ApproxEqual(m[row][col], other[row][col]) {
				return false
			}
		}
	}
	return true
}

// submatrix returns the 3x3 matrix with the given row and column removed
func (m Matrix4) submatrix(row, col int) [3][3]float64 {
	var result [3][3]float64
	dstRow := 0
	for r := 0; r < 4; r++ {
		if r == row {
			continue
		}
		dstCol := 0
		for c := 0; c < 4; c++ {
			if c == col {
				continue
			}
			result[dstRow][dstCol] = m[r][c]
			dstCol++
		}
		dstRow++
	}
	return result
}

// minor returns the determinant of the submatrix at (row, col)
func (m Matrix4) minor(row, col int) float64 {
	s := m.submatrix(row, col)
	return s[0][0]*(s[1][1]*s[2][2]-s[1][2]*s[2][1]) -
		s[0][1]*(s[1][0]*s[2][2]-s[1][2]*s[2][0]) +
		s[0][2]*(s[1][0]*s[2][1]-s[1][1]*s[2][0])
}

// cofactor returns the signed minor at (row, col)
func (m Matrix4) cofactor(row, col int) float64 {
	minor := m.minor(row, col)
	if (row+col)%2 == 1 {
		return -minor
	}
	return minor
}

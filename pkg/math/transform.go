package math

import "math"

// Translation returns a matrix moving points by (x, y, z)
func Translation(x, y, z float64) Matrix4 {
	m := IdentityMatrix()
	m[0][3] = x
	m[1][3] = y
	m[2][3] = z
	return m
}

// Scaling returns a matrix scaling each axis independently
func Scaling(x, y, z float64) Matrix4 {
	m := IdentityMatrix()
	m[0][0] = x
	m[1][1] = y
	m[2][2] = z
	return m
}

// RotationX returns a matrix rotating around the x axis
func RotationX(radians float64) Matrix4 {
	m := IdentityMatrix()
	m[1][1] = math.Cos(radians)
	m[1][2] = -math.Sin(radians)
	m[2][1] = math.Sin(radians)
	m[2][2] = math.Cos(radians)
	return m
}

// RotationY returns a matrix rotating around the y axis
func RotationY(radians float64) Matrix4 {
	m := IdentityMatrix()
	m[0][0] = math.Cos(radians)
	m[0][2] = math.Sin(radians)
	m[2][0] = -math.Sin(radians)
	m[2][2] = math.Cos(radians)
	return m
}

// RotationZ returns a matrix rotating around the z axis
func RotationZ(radians float64) Matrix4 {
	m := IdentityMatrix()
	m[0][0] = math.Cos(radians)
	m[0][1] = -math.Sin(radians)
	m[1][0] = math.Sin(radians)
	m[1][1] = math.Cos(radians)
	return m
}

// Shearing returns a matrix sliding each coordinate in proportion
// to the other two
func Shearing(xy, xz, yx, yz, zx, zy float64) Matrix4 {
	m := IdentityMatrix()
	m[0][1] = xy
	m[0][2] = xz
	m[1][0] = yx
	m[1][2] = yz
	m[2][0] = zx
	m[2][1] = zy
	return m
}

// ViewTransform returns the world-to-camera transform for an eye at
// from, looking at to, with the given up hint.
func ViewTransform(from, to, up Tuple) Matrix4 {
	forward := to.Subtract(from).Normalize()
	left := forward.Cross(up.Normalize())
	trueUp := left.Cross(forward)

	orientation := Matrix4{
		{left.X, left.Y, left.Z, 0},
		{trueUp.X, trueUp.Y, trueUp.Z, 0},
		{-forward.X, -forward.Y, -forward.Z, 0},
		{0, 0, 0, 1},
	}

	return orientation.Multiply(Translation(-from.X, -from.Y, -from.Z))
}

package vectors

import "math"

// Vec3 is a simple 3D vector with float64 components.
type Vec3 struct {
	X, Y, Z float64
}

func Zero() Vec3 {
	return Vec3{X: 0.0, Y: 0.0, Z: 0.0}
}

// Polar returns the unit vector at azimuthal angle phi and polar angle
// theta, both in radians.
func Polar(phi, theta float64) Vec3 {
	return PolarDist(phi, theta, 1.0)
}

// PolarDist returns the vector at azimuthal angle phi, polar angle theta
// and radius r.
func PolarDist(phi, theta, r float64) Vec3 {
	cosTheta := math.Cos(theta)
	return Vec3{
		X: r * math.Cos(phi) * cosTheta,
		Y: r * math.Sin(phi) * cosTheta,
		Z: r * math.Sin(theta),
	}
}

// Phi returns the azimuthal angle of v in [0, 2π).
// A vector with no projection onto the XY plane has Phi 0.
func (v Vec3) Phi() float64 {
	if v.X == 0.0 && v.Y == 0.0 {
		return 0.0
	}
	phi := math.Atan2(v.Y, v.X)
	if phi < 0.0 {
		phi += 2.0 * math.Pi
	}
	return phi
}

// Theta returns the polar angle of v in [-π/2, π/2].
// The zero vector has Theta 0.
func (v Vec3) Theta() float64 {
	rho := v.X*v.X + v.Y*v.Y
	if rho == 0.0 && v.Z == 0.0 {
		return 0.0
	}
	return math.Atan2(v.Z, math.Sqrt(rho))
}

// R returns the Euclidean length of v, an alias of Norm that reads better
// next to Phi and Theta.
func (v Vec3) R() float64 {
	return v.Norm()
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Neg returns -v.
func (v Vec3) Neg() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Scale returns v * s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product v · o.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Norm returns the Euclidean length ||v||.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns the unit vector v / ||v||.
// If ||v|| == 0, it returns the zero vector (0,0,0).
func (v Vec3) Normalize() Vec3 {
	n := v.Norm()
	if n == 0 {
		return Vec3{}
	}
	inv := 1.0 / n
	return Vec3{v.X * inv, v.Y * inv, v.Z * inv}
}

// Cross returns the cross product v × o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

package dgkernel

import "math"

// Vec3 is a fixed three-component vector used for velocities, gradients and
// face normals at a single quadrature point. Field-sized data stays in gonum
// matrices on the caller's side; a quadrature point only ever sees one of
// these at a time.
type Vec3 [3]float64

// Dot returns the scalar product v·w.
func (v Vec3) Dot(w Vec3) float64 {
	return v[0]*w[0] + v[1]*w[1] + v[2]*w[2]
}

// Norm returns the Euclidean length of v.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// Scale returns a*v.
func (v Vec3) Scale(a float64) Vec3 {
	return Vec3{a * v[0], a * v[1], a * v[2]}
}

// Add returns v+w.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{v[0] + w[0], v[1] + w[1], v[2] + w[2]}
}

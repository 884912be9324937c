package dgkernel

// FaceContext bundles everything the host assembly loop knows at one
// quadrature point of one boundary face, for one test function i and one
// trial function j. It is read-only to the kernels here and valid only for
// the duration of a single evaluation.
type FaceContext struct {
	U     float64 // current solution value u at the quadrature point
	GradU Vec3    // solution gradient at the quadrature point

	Test     float64 // test function value phi_i
	GradTest Vec3    // test function gradient
	Phi      float64 // trial function value phi_j
	GradPhi  Vec3    // trial function gradient

	Normal   Vec3 // outward unit normal
	Velocity Vec3 // advective velocity at the quadrature point

	ElemVolume float64 // volume of the current element
	FaceVolume float64 // "volume" (area / length) of the current side
	Order      int     // polynomial order of the variable's basis
}

// LengthScale is the element length entering the penalty term,
// (elem volume / face volume) / order^2. Tying the order into the scale keeps
// the effective penalty consistent under p-refinement, which is why it is
// recomputed per face rather than configured.
func (q *FaceContext) LengthScale() float64 {
	b := float64(q.Order)
	return q.ElemVolume / q.FaceVolume / (b * b)
}

// InterfaceContext extends a FaceContext with the neighbor side of an
// internal face shared by two independently discretized subdomains. The
// embedded FaceContext holds the element ("primary") side; Normal points from
// the element side into the neighbor side.
type InterfaceContext struct {
	FaceContext

	UNeighbor     float64
	GradUNeighbor Vec3

	TestNeighbor     float64
	GradTestNeighbor Vec3
	PhiNeighbor      float64
	GradPhiNeighbor  Vec3

	// Coupled per-quadrature-point fields consumed by the two-sided kernels.
	// Km and AreaFrac feed InterfaceTransfer; VolFrac and VolFracNeighbor
	// scale the diffusivity on each side of VarDiffusion.
	Km              float64
	AreaFrac        float64
	VolFrac         float64
	VolFracNeighbor float64
}

package dgkernel

// PhaseDiffusion is the interior-face DG diffusion kernel for a variable
// whose effective diffusivity is the base coefficient D scaled by a coupled
// phase volume fraction, evaluated independently on each side of the face.
// It applies the same sigma/epsilon interior penalty policy as FluxLimitedBC,
// but two-sided: the jump u - u_neighbor replaces u - u_in and every
// contribution has an element and a neighbor flavor.
type PhaseDiffusion struct {
	D       float64
	Penalty Penalty
}

// NewPhaseDiffusion validates the penalty configuration once.
func NewPhaseDiffusion(d float64, p Penalty) (*PhaseDiffusion, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &PhaseDiffusion{D: d, Penalty: p}, nil
}

// Residual returns the interior penalty residual for the requested side.
func (pd *PhaseDiffusion) Residual(q *InterfaceContext, side ResidualSide) (r float64) {
	var (
		de    = pd.D * q.VolFrac
		dn    = pd.D * q.VolFracNeighbor
		eps   = pd.Penalty.Scheme.Epsilon()
		hElem = q.LengthScale()
		jump  = q.U - q.UNeighbor
		avg   = 0.5 * (de*q.GradU.Dot(q.Normal) + dn*q.GradUNeighbor.Dot(q.Normal))
	)
	switch side {
	case SideNeighbor:
		r += avg * q.TestNeighbor
		r += eps * 0.5 * jump * dn * q.GradTestNeighbor.Dot(q.Normal)
		r -= pd.Penalty.Sigma / hElem * jump * q.TestNeighbor
	default:
		r -= avg * q.Test
		r += eps * 0.5 * jump * de * q.GradTest.Dot(q.Normal)
		r += pd.Penalty.Sigma / hElem * jump * q.Test
	}
	return
}

// Jacobian returns the derivative of the requested side's residual with
// respect to the trial function on the requested side.
func (pd *PhaseDiffusion) Jacobian(q *InterfaceContext, pair JacobianPair) (r float64) {
	var (
		de    = pd.D * q.VolFrac
		dn    = pd.D * q.VolFracNeighbor
		eps   = pd.Penalty.Scheme.Epsilon()
		hElem = q.LengthScale()
		sig   = pd.Penalty.Sigma / hElem
	)
	switch pair {
	case ElementElement:
		r -= 0.5 * de * q.GradPhi.Dot(q.Normal) * q.Test
		r += eps * 0.5 * q.Phi * de * q.GradTest.Dot(q.Normal)
		r += sig * q.Phi * q.Test
	case ElementNeighbor:
		r -= 0.5 * dn * q.GradPhiNeighbor.Dot(q.Normal) * q.Test
		r -= eps * 0.5 * q.PhiNeighbor * de * q.GradTest.Dot(q.Normal)
		r -= sig * q.PhiNeighbor * q.Test
	case NeighborElement:
		r += 0.5 * de * q.GradPhi.Dot(q.Normal) * q.TestNeighbor
		r += eps * 0.5 * q.Phi * dn * q.GradTestNeighbor.Dot(q.Normal)
		r -= sig * q.Phi * q.TestNeighbor
	case NeighborNeighbor:
		r += 0.5 * dn * q.GradPhiNeighbor.Dot(q.Normal) * q.TestNeighbor
		r -= eps * 0.5 * q.PhiNeighbor * dn * q.GradTestNeighbor.Dot(q.Normal)
		r += sig * q.PhiNeighbor * q.TestNeighbor
	}
	return
}

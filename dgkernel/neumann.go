package dgkernel

// CoupledNeumannBC imposes a flux (Neumann) condition whose magnitude is the
// current value of another variable, typically an auxiliary field used to
// build step functions or feedback at the boundary.
type CoupledNeumannBC struct {
	Flux    func() float64 // samples the coupled flux variable
	FluxVar CoupledVar     // tag of the coupled variable for off-diagonal dispatch
}

func (bc *CoupledNeumannBC) Residual(q *FaceContext) float64 {
	return -q.Test * bc.Flux()
}

// Jacobian is zero: the residual does not involve the primary variable.
func (bc *CoupledNeumannBC) Jacobian(q *FaceContext) float64 {
	return 0
}

func (bc *CoupledNeumannBC) OffDiagJacobian(q *FaceContext, jvar CoupledVar) float64 {
	if jvar == bc.FluxVar {
		return -q.Test * q.Phi
	}
	return 0
}

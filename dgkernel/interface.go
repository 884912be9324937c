package dgkernel

// InterfaceTransfer couples a pair of variables living in adjacent,
// independently discretized subdomains (e.g. bulk channel and washcoat)
// across a shared internal boundary. The exchange is linear in the jump,
//
//	res = test * km * fa * (u - v)
//
// applied with opposite signs to the two sides, so whatever leaves one
// subdomain enters the other. km is a transfer-rate field playing the role a
// diffusivity over a length scale plays in the boundary kernels; fa is the
// contact area fraction (1 for full contact). One kernel instance serves both
// variables; no upwind classification is involved because the exchange is
// direction-free.
type InterfaceTransfer struct {
	KmVar       CoupledVar // tag of the transfer-rate variable
	AreaFracVar CoupledVar // tag of the area-fraction variable
}

// Km and AreaFrac are read from the quadrature context; see
// InterfaceContext.Km and InterfaceContext.AreaFrac.

// Residual returns the exchange residual for the requested side.
func (it *InterfaceTransfer) Residual(q *InterfaceContext, side ResidualSide) float64 {
	jump := q.U - q.UNeighbor
	switch side {
	case SideNeighbor:
		return -q.TestNeighbor * q.Km * q.AreaFrac * jump
	default:
		return q.Test * q.Km * q.AreaFrac * jump
	}
}

// Jacobian returns the derivative of the requested side's residual with
// respect to the trial function on the requested side.
func (it *InterfaceTransfer) Jacobian(q *InterfaceContext, pair JacobianPair) float64 {
	switch pair {
	case ElementElement:
		return q.Test * q.Km * q.AreaFrac * q.Phi
	case ElementNeighbor:
		return -q.Test * q.Km * q.AreaFrac * q.PhiNeighbor
	case NeighborElement:
		return -q.TestNeighbor * q.Km * q.AreaFrac * q.Phi
	case NeighborNeighbor:
		return q.TestNeighbor * q.Km * q.AreaFrac * q.PhiNeighbor
	default:
		return 0
	}
}

// OffDiagJacobian contributes zero for the transfer-rate and area-fraction
// couplings; their derivatives are intentionally left out of the Newton
// matrix, which weakens the Jacobian without changing the residual.
func (it *InterfaceTransfer) OffDiagJacobian(q *InterfaceContext, pair JacobianPair, jvar CoupledVar) float64 {
	return 0
}

package dgkernel

// ResidualSide selects which side of a two-sided (interior or interface) face
// a residual contribution targets.
type ResidualSide uint8

const (
	SideElement ResidualSide = iota
	SideNeighbor
)

// String returns the string representation of a ResidualSide
func (s ResidualSide) String() string {
	switch s {
	case SideElement:
		return "Element"
	case SideNeighbor:
		return "Neighbor"
	default:
		return "Unknown"
	}
}

// JacobianPair selects the (test side, trial side) combination of a two-sided
// Jacobian contribution.
type JacobianPair uint8

const (
	ElementElement JacobianPair = iota
	ElementNeighbor
	NeighborElement
	NeighborNeighbor
)

// String returns the string representation of a JacobianPair
func (p JacobianPair) String() string {
	switch p {
	case ElementElement:
		return "ElementElement"
	case ElementNeighbor:
		return "ElementNeighbor"
	case NeighborElement:
		return "NeighborElement"
	case NeighborNeighbor:
		return "NeighborNeighbor"
	default:
		return "Unknown"
	}
}

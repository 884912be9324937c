package dgkernel

// FlowDirection classifies a boundary face relative to the local advective
// velocity.
type FlowDirection uint8

const (
	// Inflow means the advective flux points into the domain (v·n <= 0).
	Inflow FlowDirection = iota
	// Outflow means the advective flux points out of the domain (v·n > 0).
	Outflow
)

// String returns the string representation of a FlowDirection
func (fd FlowDirection) String() string {
	switch fd {
	case Inflow:
		return "Inflow"
	case Outflow:
		return "Outflow"
	default:
		return "Unknown"
	}
}

// Classify splits the upwind branches on the sign of v·n. The tie v·n == 0
// resolves to Inflow.
func Classify(velocity, normal Vec3) FlowDirection {
	if velocity.Dot(normal) > 0 {
		return Outflow
	}
	return Inflow
}

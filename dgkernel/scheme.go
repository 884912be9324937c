package dgkernel

import "fmt"

// Scheme selects the sign convention for the interior penalty consistency
// term. The three variants trade symmetry of the discrete operator against
// robustness of nonlinear convergence:
//
//	SIPG (epsilon = -1): symmetric, efficient for symmetric problems, but
//	    typically only converges with a large penalty.
//	IIPG (epsilon = 0): incomplete, works for well posed non-symmetric
//	    problems under the same penalty requirements as SIPG.
//	NIPG (epsilon = +1): non-symmetric, the most forgiving of the penalty
//	    choice and the usual default for advection dominated transport.
//
// Reference: B. Riviere, Discontinuous Galerkin Methods for Solving Elliptic
// and Parabolic Equations, SIAM, 2008.
type Scheme int

const (
	SIPG Scheme = -1
	IIPG Scheme = 0
	NIPG Scheme = 1
)

// String returns the string representation of a Scheme
func (s Scheme) String() string {
	switch s {
	case SIPG:
		return "SIPG"
	case IIPG:
		return "IIPG"
	case NIPG:
		return "NIPG"
	default:
		return fmt.Sprintf("Scheme(%d)", int(s))
	}
}

// Epsilon returns the consistency-term multiplier for the scheme.
func (s Scheme) Epsilon() float64 {
	return float64(s)
}

// Penalty carries the two interior penalty correction parameters shared by
// every DG diffusion expression in this package.
type Penalty struct {
	Sigma  float64 // penalty coefficient, must be >= 0
	Scheme Scheme
}

// Validate rejects parameter combinations that make the discretization
// unstable. It is meant to run once at construction; the per-quadrature-point
// code never re-checks.
func (p Penalty) Validate() error {
	if p.Sigma < 0 {
		return fmt.Errorf("penalty sigma must be non-negative, got %g", p.Sigma)
	}
	switch p.Scheme {
	case SIPG, IIPG, NIPG:
	default:
		return fmt.Errorf("scheme epsilon must be -1, 0 or 1, got %d", int(p.Scheme))
	}
	return nil
}

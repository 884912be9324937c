package Transport1D

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/dgflux/dgkernel"
	"github.com/notargets/dgflux/InputParameters"
)

// Transport1D tabulates the boundary flux operator of a one dimensional
// transport variable over a sweep of solution values and simulation times. It
// is a diagnostic driver for inspecting the residual and Jacobian surfaces of
// a configured operator; the mesh, quadrature and nonlinear solve all live in
// the host framework and are represented here by a single nominal quadrature
// point with a unit test function.
type Transport1D struct {
	// Input parameters
	BC       *dgkernel.FluxLimitedBC
	Velocity dgkernel.Vec3
	Order    int
}

func NewTransport1D(tp *InputParameters.TransportParameters) (*Transport1D, error) {
	bc, err := tp.FluxOperator()
	if err != nil {
		return nil, err
	}
	return &Transport1D{
		BC:       bc,
		Velocity: dgkernel.Vec3(tp.Velocity),
		Order:    tp.PolynomialOrder,
	}, nil
}

// context builds the nominal quadrature point for a solution value u. The
// element is a unit interval, so the length scale reduces to 1/order^2.
func (c *Transport1D) context(u float64) *dgkernel.FaceContext {
	return &dgkernel.FaceContext{
		U:          u,
		Test:       1,
		Phi:        1,
		Normal:     dgkernel.Vec3{1, 0, 0},
		Velocity:   c.Velocity,
		ElemVolume: 1,
		FaceVolume: 1,
		Order:      c.Order,
	}
}

// Sweep evaluates the residual over NU solution values in [UMin,UMax] at each
// of NT time steps spread over [0,FinalTime], advancing the inlet schedule
// between steps. Row i of the result is time step i.
func (c *Transport1D) Sweep(uMin, uMax float64, nU int, finalTime float64, nT int) (R *mat.Dense) {
	R = mat.NewDense(nT, nU, nil)
	for i := 0; i < nT; i++ {
		var time float64
		if nT > 1 {
			time = finalTime * float64(i) / float64(nT-1)
		}
		c.BC.Inlet.Advance(time)
		for j := 0; j < nU; j++ {
			u := uMin
			if nU > 1 {
				u += (uMax - uMin) * float64(j) / float64(nU-1)
			}
			R.Set(i, j, c.BC.Residual(c.context(u)))
		}
	}
	return
}

// Run prints the residual sweep along with the inlet value and diagonal
// Jacobian at the sweep midpoint for each time step. The inlet schedule only
// walks forward, so the sweep and the per-step report share one pass.
func (c *Transport1D) Run(uMin, uMax float64, nU int, finalTime float64, nT int) {
	var (
		R    = mat.NewDense(nT, nU, nil)
		uMid = 0.5 * (uMin + uMax)
	)
	for i := 0; i < nT; i++ {
		var time float64
		if nT > 1 {
			time = finalTime * float64(i) / float64(nT-1)
		}
		c.BC.Inlet.Advance(time)
		for j := 0; j < nU; j++ {
			u := uMin
			if nU > 1 {
				u += (uMax - uMin) * float64(j) / float64(nU-1)
			}
			R.Set(i, j, c.BC.Residual(c.context(u)))
		}
		fmt.Printf("t = %8.4f, uIn = %8.4f, dR/du(u=%g) = %8.4f\n",
			time, c.BC.Inlet.Value(), uMid, c.BC.Jacobian(c.context(uMid)))
	}
	fmt.Printf("Residual sweep, u in [%g,%g], t in [0,%g]:\n%v\n",
		uMin, uMax, finalTime,
		mat.Formatted(R, mat.Prefix(""), mat.Squeeze()))
}

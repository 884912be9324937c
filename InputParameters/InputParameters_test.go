package InputParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/dgflux/dgkernel"
)

var exampleInput = []byte(`
Title: Inlet sweep
Diffusion: 1.0
Sigma: 10.0
Epsilon: 1
Velocity: [2.0, 0.0, 0.0]
PolynomialOrder: 1
InletType: stepwise
InletValue: 0.0
InletSchedule:
  - Time: 0.0
    Value: 10.0
    Ramp: 0.0
  - Time: 10.0
    Value: 20.0
    Ramp: 5.0
`)

func TestParse(t *testing.T) {
	var tp TransportParameters
	require.NoError(t, tp.Parse(exampleInput))
	assert.Equal(t, "Inlet sweep", tp.Title)
	assert.Equal(t, 10., tp.Sigma)
	assert.Equal(t, [3]float64{2, 0, 0}, tp.Velocity)
	require.Len(t, tp.InletSchedule, 2)
	assert.Equal(t, 5., tp.InletSchedule[1].Ramp)

	bc, err := tp.FluxOperator()
	require.NoError(t, err)
	assert.Equal(t, dgkernel.NIPG, bc.Penalty.Scheme)
	bc.Inlet.Advance(12)
	assert.InDelta(t, 14., bc.Inlet.Value(), 1.e-12)
}

func TestValidate(t *testing.T) {
	base := func() TransportParameters {
		return TransportParameters{
			Diffusion:       1,
			Sigma:           1,
			Epsilon:         0,
			PolynomialOrder: 1,
		}
	}
	{
		tp := base()
		require.NoError(t, tp.Validate())
	}
	{
		tp := base()
		tp.Sigma = -1
		assert.Error(t, tp.Validate())
	}
	{
		tp := base()
		tp.Epsilon = 2
		assert.Error(t, tp.Validate())
	}
	{
		tp := base()
		tp.InletType = "warp"
		assert.Error(t, tp.Validate())
	}
	{
		tp := base()
		tp.InletType = "stepwise"
		tp.InletSchedule = []ScheduleStep{{Time: 5}, {Time: 5}}
		assert.Error(t, tp.Validate())
	}
}

package dgkernel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstantInlet(t *testing.T) {
	in := ConstantInlet(4.2)
	in.Advance(100)
	assert.Equal(t, 4.2, in.Value())
}

func TestCoupledInlet(t *testing.T) {
	v := 1.0
	in := CoupledInlet{Source: func() float64 { return v }}
	assert.Equal(t, 1.0, in.Value())
	v = 2.5
	in.Advance(10)
	assert.Equal(t, 2.5, in.Value())
}

func TestStepwiseInletValidation(t *testing.T) {
	_, err := NewStepwiseInlet(0, []ScheduleEntry{
		{Time: 5, Target: 1},
		{Time: 5, Target: 2},
	})
	assert.Error(t, err)
	_, err = NewStepwiseInlet(0, []ScheduleEntry{
		{Time: 10, Target: 1},
		{Time: 5, Target: 2},
	})
	assert.Error(t, err)
	_, err = NewStepwiseInlet(0, []ScheduleEntry{
		{Time: 0, Target: 1, Ramp: -1},
	})
	assert.Error(t, err)
}

func TestStepwiseInletSchedule(t *testing.T) {
	// Step at t=0 to 10, then ramp from 10 to 20 over [10,15]: the query at
	// t=12 interpolates to 10 + (20-10)*(12-10)/5 = 14
	{
		in, err := NewStepwiseInlet(0, []ScheduleEntry{
			{Time: 0, Target: 10, Ramp: 0},
			{Time: 10, Target: 20, Ramp: 5},
		})
		require.NoError(t, err)
		in.Advance(12)
		assert.InDelta(t, 14., in.Value(), 1.e-12)
		// Repeated queries at the same time are idempotent
		assert.Equal(t, in.Value(), in.Value())
		in.Advance(12)
		assert.InDelta(t, 14., in.Value(), 1.e-12)
	}
	// Before the first entry the configured initial value holds
	{
		in, _ := NewStepwiseInlet(3, []ScheduleEntry{{Time: 5, Target: 9, Ramp: 0}})
		in.Advance(1)
		assert.Equal(t, 3., in.Value())
		in.Advance(5)
		assert.Equal(t, 9., in.Value())
	}
	// Past the last ramp the final target holds flat, no matter how far
	// time runs on
	{
		in, _ := NewStepwiseInlet(0, []ScheduleEntry{{Time: 0, Target: 10, Ramp: 2}})
		in.Advance(1.e6)
		assert.Equal(t, 10., in.Value())
	}
}

func TestStepwiseInletContinuity(t *testing.T) {
	// Walking the schedule forward must trace a continuous piecewise-linear
	// curve: the value entering a ramp equals the value just before it, and
	// the value leaving a ramp equals the new target.
	in, err := NewStepwiseInlet(1, []ScheduleEntry{
		{Time: 2, Target: 5, Ramp: 2},
		{Time: 6, Target: -1, Ramp: 3},
		{Time: 20, Target: 4, Ramp: 10},
	})
	require.NoError(t, err)
	var (
		dt   = 1.e-3
		prev = in.Value()
	)
	for time := 0.; time <= 35; time += dt {
		in.Advance(time)
		v := in.Value()
		// Slopes are bounded by the steepest ramp, |(-1-5)/3| = 2
		assert.LessOrEqual(t, absDiff(v, prev), 2*dt+1.e-9)
		prev = v
	}
	in.Advance(40)
	assert.Equal(t, 4., in.Value())
}

func TestStepwiseInletForwardOnlyCursor(t *testing.T) {
	// The cursor never rewinds: after advancing past an entry, an earlier
	// time re-interpolates within the current window instead of stepping
	// back through the schedule.
	in, _ := NewStepwiseInlet(0, []ScheduleEntry{
		{Time: 0, Target: 10, Ramp: 0},
		{Time: 10, Target: 20, Ramp: 5},
	})
	in.Advance(12)
	require.InDelta(t, 14., in.Value(), 1.e-12)
	in.Advance(5)
	assert.InDelta(t, 10., in.Value(), 1.e-12)
}

func absDiff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}

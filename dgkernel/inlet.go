package dgkernel

import "fmt"

// InletValue supplies the virtual Dirichlet value u_in imposed weakly on the
// inflow branch of a flux limited boundary. Value must be pure; all time
// dependence goes through Advance, which the host framework calls exactly
// once per time step, with non-decreasing times, before any element
// evaluations of that step run.
type InletValue interface {
	Value() float64
	Advance(time float64)
}

// ConstantInlet holds a fixed inlet value for the whole run.
type ConstantInlet float64

func (c ConstantInlet) Value() float64 { return float64(c) }

func (c ConstantInlet) Advance(time float64) {}

// CoupledInlet passes through the current value of another solved-for
// variable as the inlet value. The source samples that variable at call time,
// so no Advance bookkeeping is needed.
type CoupledInlet struct {
	Source func() float64
}

func (c CoupledInlet) Value() float64 { return c.Source() }

func (c CoupledInlet) Advance(time float64) {}

// ScheduleEntry is one step of a stepwise inlet program: at Time the inlet
// starts moving linearly toward Target, reaching it after Ramp time units. A
// zero Ramp switches instantaneously.
type ScheduleEntry struct {
	Time   float64
	Target float64
	Ramp   float64
}

// StepwiseInlet walks an ordered schedule of inlet set points with a forward
// only cursor. Between Advance calls the value is frozen, so every element
// evaluation within one time step sees the same u_in.
type StepwiseInlet struct {
	entries []ScheduleEntry
	slopes  []float64 // precomputed ramp slopes, one per entry
	initial float64

	index int     // last schedule entry whose start time has passed, -1 before the first
	value float64 // cached value as of the last Advance
}

// NewStepwiseInlet builds a stepwise inlet that returns initial before the
// first schedule entry. Entry times must be strictly increasing and ramps
// non-negative; violations are configuration errors.
func NewStepwiseInlet(initial float64, entries []ScheduleEntry) (*StepwiseInlet, error) {
	prev := initial
	slopes := make([]float64, len(entries))
	for i, e := range entries {
		if i > 0 && e.Time <= entries[i-1].Time {
			return nil, fmt.Errorf("schedule times must be strictly increasing, entry %d at t=%g follows t=%g",
				i, e.Time, entries[i-1].Time)
		}
		if e.Ramp < 0 {
			return nil, fmt.Errorf("schedule entry %d has negative ramp %g", i, e.Ramp)
		}
		if e.Ramp > 0 {
			slopes[i] = (e.Target - prev) / e.Ramp
		}
		prev = e.Target
	}
	return &StepwiseInlet{
		entries: entries,
		slopes:  slopes,
		initial: initial,
		index:   -1,
		value:   initial,
	}, nil
}

// Value returns the inlet value as of the last Advance.
func (s *StepwiseInlet) Value() float64 { return s.value }

// Advance moves the schedule cursor forward to time and recomputes the cached
// value. The cursor never rewinds: a time earlier than a previous Advance
// leaves the cursor in place and interpolates within the current window,
// so callers must present non-decreasing times.
func (s *StepwiseInlet) Advance(time float64) {
	for s.index+1 < len(s.entries) && s.entries[s.index+1].Time <= time {
		s.index++
	}
	if s.index < 0 {
		return // before the first entry, hold the initial value
	}
	e := s.entries[s.index]
	switch {
	case time < e.Time:
		// Only reachable on a reverse-time query; hold the window start.
		s.value = s.previousTarget()
	case e.Ramp > 0 && time < e.Time+e.Ramp:
		s.value = s.previousTarget() + s.slopes[s.index]*(time-e.Time)
	default:
		// At or past the ramp end the value holds at the target, including
		// past the end of the whole schedule.
		s.value = e.Target
	}
}

func (s *StepwiseInlet) previousTarget() float64 {
	if s.index == 0 {
		return s.initial
	}
	return s.entries[s.index-1].Target
}

package InputParameters

import (
	"fmt"
	"strings"

	"github.com/ghodss/yaml"

	"github.com/notargets/dgflux/dgkernel"
)

// ScheduleStep is one stepwise inlet set point from the input file
type ScheduleStep struct {
	Time  float64 `yaml:"Time"`
	Value float64 `yaml:"Value"`
	Ramp  float64 `yaml:"Ramp"`
}

// Parameters obtained from the YAML input file
type TransportParameters struct {
	Title           string         `yaml:"Title"`
	Diffusion       float64        `yaml:"Diffusion"`
	Sigma           float64        `yaml:"Sigma"`
	Epsilon         int            `yaml:"Epsilon"` // -1 = SIPG, 0 = IIPG, 1 = NIPG
	Velocity        [3]float64     `yaml:"Velocity"`
	PolynomialOrder int            `yaml:"PolynomialOrder"`
	InletType       string         `yaml:"InletType"` // "constant" or "stepwise"
	InletValue      float64        `yaml:"InletValue"`
	InletSchedule   []ScheduleStep `yaml:"InletSchedule"`
}

func (tp *TransportParameters) Parse(data []byte) error {
	if err := yaml.Unmarshal(data, tp); err != nil {
		return err
	}
	return tp.Validate()
}

// Validate rejects inputs the kernels treat as construction preconditions:
// a negative penalty, an epsilon outside {-1,0,1}, a non-increasing schedule
// or an unknown inlet type. Bad configuration is fatal here, never patched.
func (tp *TransportParameters) Validate() error {
	if tp.Sigma < 0 {
		return fmt.Errorf("Sigma must be non-negative, got %g", tp.Sigma)
	}
	if tp.Epsilon < -1 || tp.Epsilon > 1 {
		return fmt.Errorf("Epsilon must be -1, 0 or 1, got %d", tp.Epsilon)
	}
	if tp.PolynomialOrder < 1 {
		return fmt.Errorf("PolynomialOrder must be at least 1, got %d", tp.PolynomialOrder)
	}
	switch strings.ToLower(tp.InletType) {
	case "", "constant":
	case "stepwise":
		if len(tp.InletSchedule) == 0 {
			return fmt.Errorf("stepwise inlet requires a non-empty InletSchedule")
		}
		for i, s := range tp.InletSchedule {
			if i > 0 && s.Time <= tp.InletSchedule[i-1].Time {
				return fmt.Errorf("InletSchedule times must be strictly increasing at entry %d", i)
			}
			if s.Ramp < 0 {
				return fmt.Errorf("InletSchedule entry %d has negative Ramp %g", i, s.Ramp)
			}
		}
	default:
		return fmt.Errorf("unknown InletType %q", tp.InletType)
	}
	return nil
}

// Inlet builds the configured inlet value strategy.
func (tp *TransportParameters) Inlet() (dgkernel.InletValue, error) {
	switch strings.ToLower(tp.InletType) {
	case "", "constant":
		return dgkernel.ConstantInlet(tp.InletValue), nil
	case "stepwise":
		entries := make([]dgkernel.ScheduleEntry, len(tp.InletSchedule))
		for i, s := range tp.InletSchedule {
			entries[i] = dgkernel.ScheduleEntry{Time: s.Time, Target: s.Value, Ramp: s.Ramp}
		}
		return dgkernel.NewStepwiseInlet(tp.InletValue, entries)
	default:
		return nil, fmt.Errorf("unknown InletType %q", tp.InletType)
	}
}

// FluxOperator builds the boundary flux operator described by the input file.
func (tp *TransportParameters) FluxOperator() (*dgkernel.FluxLimitedBC, error) {
	inlet, err := tp.Inlet()
	if err != nil {
		return nil, err
	}
	return dgkernel.NewFluxLimitedBC(tp.Diffusion, dgkernel.Penalty{
		Sigma:  tp.Sigma,
		Scheme: dgkernel.Scheme(tp.Epsilon),
	}, inlet)
}

func (tp *TransportParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", tp.Title)
	fmt.Printf("%8.5f\t\t= Diffusion\n", tp.Diffusion)
	fmt.Printf("%8.5f\t\t= Sigma\n", tp.Sigma)
	fmt.Printf("[%s]\t\t\t= Scheme\n", dgkernel.Scheme(tp.Epsilon))
	fmt.Printf("%v\t= Velocity\n", tp.Velocity)
	fmt.Printf("[%d]\t\t\t\t= Polynomial Order\n", tp.PolynomialOrder)
	fmt.Printf("[%s]\t\t= Inlet Type\n", tp.InletType)
	fmt.Printf("%8.5f\t\t= Inlet Value\n", tp.InletValue)
	for i, s := range tp.InletSchedule {
		fmt.Printf("InletSchedule[%d] = {t: %g, value: %g, ramp: %g}\n", i, s.Time, s.Value, s.Ramp)
	}
}

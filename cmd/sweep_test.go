package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSweep(t *testing.T) {
	input := []byte(`
Title: cmd sweep
Diffusion: 1.0
Sigma: 10.0
Epsilon: 1
Velocity: [2.0, 0.0, 0.0]
PolynomialOrder: 1
InletType: constant
InletValue: 2.0
`)
	fname := filepath.Join(t.TempDir(), "input.yaml")
	require.NoError(t, os.WriteFile(fname, input, 0644))
	sw := &SweepRun{
		ParamFile: fname,
		UMin:      0, UMax: 10,
		NU: 11, NT: 1,
	}
	assert.NoError(t, RunSweep(sw))

	sw.ParamFile = filepath.Join(t.TempDir(), "missing.yaml")
	assert.Error(t, RunSweep(sw))
}

/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/notargets/dgflux/InputParameters"
	"github.com/notargets/dgflux/model_problems/Transport1D"
)

// sweepCmd represents the sweep command
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Tabulate boundary flux residuals and Jacobians",
	Long: `
Loads a transport parameter file and sweeps the boundary flux operator over a
range of solution values and simulation times,

dgflux sweep -F input.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		sw := &SweepRun{}
		sw.ParamFile, _ = cmd.Flags().GetString("file")
		sw.UMin, _ = cmd.Flags().GetFloat64("uMin")
		sw.UMax, _ = cmd.Flags().GetFloat64("uMax")
		sw.NU, _ = cmd.Flags().GetInt("nu")
		sw.FinalTime, _ = cmd.Flags().GetFloat64("finalTime")
		sw.NT, _ = cmd.Flags().GetInt("nt")
		sw.Profile, _ = cmd.Flags().GetBool("profile")
		if err := RunSweep(sw); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(sweepCmd)
	sweepCmd.Flags().StringP("file", "F", "input.yaml", "YAML transport parameter file")
	sweepCmd.Flags().Float64("uMin", 0, "low end of the solution value sweep")
	sweepCmd.Flags().Float64("uMax", 10, "high end of the solution value sweep")
	sweepCmd.Flags().Int("nu", 11, "number of solution values in the sweep")
	sweepCmd.Flags().Float64("finalTime", 0, "final simulation time for the inlet schedule")
	sweepCmd.Flags().Int("nt", 1, "number of time steps across the schedule")
	sweepCmd.Flags().Bool("profile", false, "write a CPU profile of the sweep")
}

type SweepRun struct {
	ParamFile  string
	UMin, UMax float64
	NU, NT     int
	FinalTime  float64
	Profile    bool
}

func RunSweep(sw *SweepRun) error {
	data, err := os.ReadFile(sw.ParamFile)
	if err != nil {
		return fmt.Errorf("unable to read parameter file: %w", err)
	}
	var tp InputParameters.TransportParameters
	if err = tp.Parse(data); err != nil {
		return err
	}
	tp.Print()
	c, err := Transport1D.NewTransport1D(&tp)
	if err != nil {
		return err
	}
	if sw.Profile {
		defer profile.Start(profile.CPUProfile).Stop()
	}
	c.Run(sw.UMin, sw.UMax, sw.NU, sw.FinalTime, sw.NT)
	return nil
}

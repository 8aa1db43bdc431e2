// Command ascentsim runs and validates 3-DoF rocket ascent simulations
// described by a RunConfig YAML file.
package main

import (
	"fmt"
	"os"

	"github.com/ascentsim/ascentsim"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "ascentsim",
		Short: "Run and validate 3-DoF rocket ascent simulations",
	}
	root.AddCommand(runCmd(), validateCmd())
	return root
}

func runCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "run [config.yaml]",
		Short: "Run a simulation and print a results summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ascent.LoadRunConfig(args[0])
			if err != nil {
				return err
			}
			mission := ascent.NewMission(ascent.DefaultEarthContext(), cfg)
			results, err := mission.Run()
			if err != nil {
				return err
			}
			fmt.Printf("eng=%d altitude_km=%.3f apoapsis_m=%.1f periapsis_m=%.1f velocity_mps=%.2f\n",
				results.Eng, results.AltitudeKm, results.ApoapsisM, results.PeriapsisM, results.VelocityMps)
			fmt.Printf("max_q=%.1f Pa at t=%.1f s, gravity_loss=%.2f m/s, drag_loss=%.2f m/s\n",
				results.MaxQv, results.MaxQt, results.LostGravityMps, results.LostDragMps)

			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("creating trajectory output file: %w", err)
				}
				defer f.Close()
				if err := ascent.ExportCSV(f, results.Plots); err != nil {
					return err
				}
				fmt.Printf("trajectory written to %s\n", out)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "write the trajectory as CSV to this path")
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [config.yaml]",
		Short: "Validate a run config without simulating it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := ascent.LoadRunConfig(args[0]); err != nil {
				return err
			}
			fmt.Println("ok")
			return nil
		},
	}
}

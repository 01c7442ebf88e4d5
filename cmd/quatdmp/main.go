package main

import (
	"fmt"
	"os"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/skodra/quatdmp/internal/config"
	"github.com/skodra/quatdmp/internal/dmp"
	"github.com/skodra/quatdmp/internal/export"
	"github.com/skodra/quatdmp/internal/quat"
	"github.com/skodra/quatdmp/internal/tui"
)

var (
	nbf        int
	dt         float64
	tau        float64
	samples    int
	angle      float64
	axisX      float64
	axisY      float64
	axisZ      float64
	configFile string
	exportPath string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "quatdmp",
		Short: "quaternion dynamic movement primitives",
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "train on a synthetic demonstration and roll out",
		RunE:  runRollout,
	}
	addRunFlags(runCmd)
	runCmd.Flags().StringVar(&exportPath, "export", "", "write rollout JSON to path")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "train, roll out, and play back in the terminal",
		RunE:  runLive,
	}
	addRunFlags(liveCmd)

	initConfigCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the default configuration file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return config.Save(args[0], config.DefaultConfig())
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, initConfigCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&nbf, "nbf", config.DefaultNumBasis, "number of basis functions")
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "sampling and integration step")
	cmd.Flags().Float64Var(&tau, "tau", config.DefaultTau, "temporal scale (2 plays twice as fast)")
	cmd.Flags().IntVar(&samples, "samples", config.DefaultDemoSamples, "demonstration sample count")
	cmd.Flags().Float64Var(&angle, "angle", config.DefaultDemoAngle, "demonstration sweep angle (rad)")
	cmd.Flags().Float64Var(&axisX, "ax", 0, "demonstration axis x")
	cmd.Flags().Float64Var(&axisY, "ay", 0, "demonstration axis y")
	cmd.Flags().Float64Var(&axisZ, "az", 1, "demonstration axis z")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
}

// applyConfigFile copies a loaded config file over the flag values, the way
// the flags themselves would have been set.
func applyConfigFile() error {
	if configFile == "" {
		return nil
	}
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	nbf = cfg.NumBasis
	dt = cfg.Dt
	tau = cfg.Tau
	samples = cfg.Demo.Samples
	angle = cfg.Demo.Angle
	if len(cfg.Demo.Axis) == 3 {
		axisX, axisY, axisZ = cfg.Demo.Axis[0], cfg.Demo.Axis[1], cfg.Demo.Axis[2]
	}
	return nil
}

// syntheticDemo sweeps the configured angle about the configured axis with a
// minimum-jerk profile.
func syntheticDemo() ([]quat.Quaternion, error) {
	axis := quat.Vec{axisX, axisY, axisZ}
	if axis.Norm() == 0 {
		return nil, fmt.Errorf("demonstration axis must be nonzero")
	}
	axis = axis.Normalize()

	if samples < 2 {
		return nil, fmt.Errorf("demonstration needs at least 2 samples, got %d", samples)
	}
	demo := make([]quat.Quaternion, samples)
	for i := range demo {
		s := float64(i) / float64(samples-1)
		p := s * s * s * (10 + s*(-15+6*s))
		demo[i] = quat.FromAxisAngle(axis, angle*p)
	}
	return demo, nil
}

func trainAndRollout() (*dmp.DMP, []quat.Quaternion, *dmp.Trajectory, error) {
	if err := applyConfigFile(); err != nil {
		return nil, nil, nil, err
	}
	demo, err := syntheticDemo()
	if err != nil {
		return nil, nil, nil, err
	}

	d, err := dmp.New(dmp.Config{NumBasis: nbf, Dt: dt})
	if err != nil {
		return nil, nil, nil, err
	}
	desired, err := d.Imitate(demo)
	if err != nil {
		return nil, nil, nil, err
	}
	tr, err := d.Rollout(tau)
	if err != nil {
		return nil, nil, nil, err
	}
	return d, desired, tr, nil
}

func runRollout(cmd *cobra.Command, args []string) error {
	d, desired, tr, err := trainAndRollout()
	if err != nil {
		return err
	}

	components := []struct {
		name string
		get  func(quat.Quaternion) float64
	}{
		{"qx", func(q quat.Quaternion) float64 { return q.X }},
		{"qy", func(q quat.Quaternion) float64 { return q.Y }},
		{"qz", func(q quat.Quaternion) float64 { return q.Z }},
		{"qw", func(q quat.Quaternion) float64 { return q.W }},
	}

	for _, c := range components {
		demoSeries := make([]float64, len(desired))
		rolloutSeries := make([]float64, tr.Len())
		for i := range desired {
			demoSeries[i] = c.get(desired[i])
		}
		for i := range tr.Orientations {
			rolloutSeries[i] = c.get(tr.Orientations[i])
		}
		graph := asciigraph.PlotMany([][]float64{demoSeries, rolloutSeries},
			asciigraph.Height(8),
			asciigraph.Width(80),
			asciigraph.Caption(c.name+" (demo vs rollout)"),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	sum := 0.0
	for i := range desired {
		sum += desired[i].AngleTo(tr.Orientations[i])
	}
	goal := d.Model().Goal
	final := tr.Orientations[tr.Len()-1]

	fmt.Printf("steps: %d  n_bf: %d  tau: %.2f\n", tr.Len(), nbf, tau)
	fmt.Printf("mean angular error: %.4f rad\n", sum/float64(len(desired)))
	fmt.Printf("final goal error:   %.4f rad\n", final.AngleTo(goal))

	if exportPath != "" {
		if err := export.JSON(exportPath, d.Config(), tau, tr); err != nil {
			return err
		}
		fmt.Printf("exported: %s\n", exportPath)
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	d, _, tr, err := trainAndRollout()
	if err != nil {
		return err
	}
	return tui.Run(tr, d.Config().SampleTimes(tau))
}

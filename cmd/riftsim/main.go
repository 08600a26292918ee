package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/riftsim/internal/analysis"
	"github.com/san-kum/riftsim/internal/config"
	"github.com/san-kum/riftsim/internal/export"
	"github.com/san-kum/riftsim/internal/grid"
	"github.com/san-kum/riftsim/internal/isostasy"
	"github.com/san-kum/riftsim/internal/metrics"
	"github.com/san-kum/riftsim/internal/rift"
	"github.com/san-kum/riftsim/internal/sim"
	"github.com/san-kum/riftsim/internal/storage"
	"github.com/san-kum/riftsim/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	dt         float64
	duration   float64
	extRate    float64
	faultDip   float64
	faultLoc   float64
	detach     float64
	nodes      int
	rows       int
	spacing    float64
	track      bool
	isoFlag    bool
	frameRate  int
	svgOut     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "riftsim",
		Short: "listric fault extension simulation lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".riftsim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run an extension simulation",
		RunE:  runSimulation,
	}
	addScenarioFlags(runCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot the saved cross-section of a run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().StringVar(&svgOut, "svg", "", "write cross-section SVG to file")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run with live terminal visualization",
		RunE:  runLive,
	}
	addScenarioFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "compare a run against the closed-form profile",
		RunE:  compareAnalytic,
	}
	addScenarioFlags(compareCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, exportCmd, liveCmd, compareCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addScenarioFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep (years)")
	cmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration (years)")
	cmd.Flags().Float64Var(&extRate, "rate", config.DefaultExtensionRate, "extension rate (m/yr)")
	cmd.Flags().Float64Var(&faultDip, "dip", config.DefaultFaultDip, "fault dip (degrees)")
	cmd.Flags().Float64Var(&faultLoc, "fault", config.DefaultFaultLocation, "fault trace x position (m)")
	cmd.Flags().Float64Var(&detach, "depth", config.DefaultDetachmentDepth, "detachment depth (m)")
	cmd.Flags().IntVar(&nodes, "nodes", config.DefaultNodes, "nodes along extension direction")
	cmd.Flags().IntVar(&rows, "rows", config.DefaultRows, "rows across extension direction")
	cmd.Flags().Float64Var(&spacing, "spacing", config.DefaultSpacing, "node spacing (m)")
	cmd.Flags().BoolVar(&track, "track-thickness", false, "track crustal thickness")
	cmd.Flags().BoolVar(&isoFlag, "isostasy", false, "apply Airy isostatic response (implies tracking)")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use a named preset")
}

// resolveConfig folds preset, config file, and CLI flags (highest
// priority) into one scenario.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		*cfg = *loaded
	}

	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("time") {
		cfg.Duration = duration
	}
	if cmd.Flags().Changed("rate") {
		cfg.Fault.ExtensionRate = extRate
	}
	if cmd.Flags().Changed("dip") {
		cfg.Fault.Dip = faultDip
	}
	if cmd.Flags().Changed("fault") {
		cfg.Fault.Location = faultLoc
	}
	if cmd.Flags().Changed("depth") {
		cfg.Fault.DetachmentDepth = detach
	}
	if cmd.Flags().Changed("nodes") {
		cfg.Grid.Nodes = nodes
	}
	if cmd.Flags().Changed("rows") {
		cfg.Grid.Rows = rows
	}
	if cmd.Flags().Changed("spacing") {
		cfg.Grid.Spacing = spacing
	}
	if cmd.Flags().Changed("track-thickness") {
		cfg.Thickness.Track = track
	}
	if cmd.Flags().Changed("isostasy") {
		cfg.Thickness.Isostasy = isoFlag
	}
	if cfg.Thickness.Isostasy {
		cfg.Thickness.Track = true
	}
	return cfg, nil
}

// buildScenario constructs the grid and extender for a config.
func buildScenario(cfg *config.Config) (*rift.Extender, error) {
	ny := cfg.Grid.Rows
	if ny < 1 {
		ny = 1
	}
	g, err := grid.NewPlane(cfg.Grid.Nodes, ny, cfg.Grid.Spacing)
	if err != nil {
		return nil, err
	}
	g.AddField(grid.FieldElevation)
	if cfg.Thickness.Track {
		thick := g.AddField(grid.FieldCrustThickness)
		for i := range thick {
			thick[i] = cfg.Thickness.Initial
		}
	}

	return rift.New(g, rift.Params{
		ExtensionRate:         cfg.Fault.ExtensionRate,
		FaultDip:              cfg.Fault.Dip,
		FaultLocation:         cfg.Fault.Location,
		DetachmentDepth:       cfg.Fault.DetachmentDepth,
		FieldsToShift:         cfg.Fault.ShiftFields,
		TrackCrustalThickness: cfg.Thickness.Track,
	})
}

func runScenario(cfg *config.Config) (*rift.Extender, *sim.Result, error) {
	ext, err := buildScenario(cfg)
	if err != nil {
		return nil, nil, err
	}

	runner := sim.New(ext)
	runner.AddMetric(metrics.NewShiftTally())
	runner.AddMetric(metrics.NewSubsidedVolume())
	runner.AddMetric(metrics.NewExtensionBudget())

	if cfg.Thickness.Isostasy {
		airy, err := isostasy.NewAiry(ext.Grid(), cfg.Thickness.CrustDensity, cfg.Thickness.MantleDensity)
		if err != nil {
			return nil, nil, err
		}
		runner.SetIsostasy(airy)
	}

	result, err := runner.Run(context.Background(), sim.Config{Dt: cfg.Dt, Duration: cfg.Duration})
	if err != nil {
		return nil, nil, err
	}
	return ext, result, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	fmt.Println("running extension simulation...")
	start := time.Now()

	ext, result, err := runScenario(cfg)
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(ext, sim.Config{Dt: cfg.Dt, Duration: cfg.Duration}, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d, shifts: %d\n", result.StepsTaken, ext.ShiftCount())
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6g\n", name, val)
	}

	g := ext.Grid()
	row := result.Elevation
	if g.Rows() > 1 {
		row = row[:g.Cols()]
	}
	fmt.Println()
	fmt.Println(viz.PlotProfile(row, 80, 12, "final elevation cross-section"))
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	ext, err := buildScenario(cfg)
	if err != nil {
		return err
	}
	return viz.RunLive(ext, cfg.Dt, cfg.Duration, frameRate)
}

func compareAnalytic(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.Grid.Rows > 1 {
		return fmt.Errorf("compare works on single-row grids")
	}

	ext, result, err := runScenario(cfg)
	if err != nil {
		return err
	}

	g := ext.Grid()
	totalExtension := cfg.Fault.ExtensionRate * cfg.Duration
	ref := analysis.PredictedProfile(g.XCoords(), cfg.Fault.Location, ext.FaultGradient(), cfg.Fault.DetachmentDepth, totalExtension)

	// only fully translated material matches the closed form; skip the
	// stretched zone near the fault trace
	misfit := analysis.Compare(result.Elevation, ref, func(i int) bool {
		return g.X(i) > cfg.Fault.Location+totalExtension
	})

	fmt.Printf("total extension: %.1f m (%d shifts)\n", totalExtension, ext.ShiftCount())
	fmt.Printf("compared nodes:  %d\n", misfit.N)
	fmt.Printf("rms misfit:      %.3f m\n", misfit.RMS)
	fmt.Printf("max misfit:      %.3f m\n", misfit.MaxAbs)
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tDURATION\tDT\tRATE\tDIP\tSHIFTS")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%.0f\t%.0f\t%.4f\t%.1f\t%d\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			run.Dt,
			run.ExtensionRate,
			run.FaultDip,
			run.Shifts,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]
	st := storage.New(dataDir)

	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	_, elev, err := st.LoadProfile(runID)
	if err != nil {
		return err
	}
	if len(elev) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("extension rate: %.4f, dip: %.1f, detachment depth: %.0f\n\n",
		meta.ExtensionRate, meta.FaultDip, meta.DetachmentDepth)
	fmt.Println(viz.PlotProfile(elev, 80, 14, "elevation cross-section"))
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	runID := args[0]
	st := storage.New(dataDir)

	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	x, elev, err := st.LoadProfile(runID)
	if err != nil {
		return err
	}

	if svgOut != "" {
		svg := export.ProfileSVG(x, elev, 800, 400, "")
		if svg == "" {
			return fmt.Errorf("not enough data for SVG export")
		}
		if err := os.WriteFile(svgOut, []byte(svg), 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", svgOut)
		return nil
	}

	return export.JSON("-", *meta, &sim.Result{Elevation: elev, Metrics: meta.Metrics})
}

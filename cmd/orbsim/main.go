package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/san-kum/orbsim/internal/analysis"
	"github.com/san-kum/orbsim/internal/catalog"
	"github.com/san-kum/orbsim/internal/config"
	"github.com/san-kum/orbsim/internal/dynamo"
	"github.com/san-kum/orbsim/internal/experiment"
	"github.com/san-kum/orbsim/internal/export"
	"github.com/san-kum/orbsim/internal/sim"
	"github.com/san-kum/orbsim/internal/storage"
	"github.com/san-kum/orbsim/internal/viz"
)

var (
	dataDir     string
	configFile  string
	preset      string
	bodiesFile  string
	dt          float64
	steps       int
	integrator  string
	accumulator string
	theta       float64
	workers     int
	// satellite
	satelliteFile string
	speed         float64
	angle         float64
	// output
	every      int
	energyStep int
	quiet      bool
	outFile    string
	// serve
	addr string
	fps  float64
	// sweep
	minSpeed  float64
	maxSpeed  float64
	speedStep float64
	// lyapunov
	target string
	delta  float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "orbsim",
		Short: "planetary orbit simulator",
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".orbsim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run simulation and record it",
		Args:  cobra.NoArgs,
		RunE:  runSimulation,
	}
	addConfigFlags(runCmd)
	runCmd.Flags().IntVar(&every, "every", 10, "record trajectory every n steps (0 disables)")
	runCmd.Flags().IntVar(&energyStep, "energy-every", 100, "print total energy every n steps (0 disables)")
	runCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "do not print orbit events")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run simulation with live visualization",
		Args:  cobra.NoArgs,
		RunE:  runLive,
	}
	addConfigFlags(liveCmd)

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "run simulation indefinitely, streaming frames and metrics over http",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
	addConfigFlags(serveCmd)
	serveCmd.Flags().StringVar(&addr, "addr", "localhost:8080", "listen address")
	serveCmd.Flags().Float64Var(&fps, "fps", 30, "max frames per second sent to websocket clients")

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "run every integrator and accumulator on the same bodies",
		Args:  cobra.NoArgs,
		RunE:  compareSchemes,
	}
	addConfigFlags(compareCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot energy and satellite distances of a run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "energy, period and orbit shape analysis",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data as json",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export run trajectories as svg",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default <run_id>.svg)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list presets, integrators, accumulators and catalogs",
		RunE:  listPresets,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "find the satellite launch speed that passes closest to mars",
		Args:  cobra.NoArgs,
		RunE:  runSweep,
	}
	addConfigFlags(sweepCmd)
	sweepCmd.Flags().Float64Var(&minSpeed, "min", 28000, "lowest launch speed (m/s)")
	sweepCmd.Flags().Float64Var(&maxSpeed, "max", 34000, "highest launch speed (m/s)")
	sweepCmd.Flags().Float64Var(&speedStep, "step", 250, "speed increment (m/s)")

	lyapunovCmd := &cobra.Command{
		Use:   "lyapunov",
		Short: "estimate how fast a small displacement of one body grows",
		Args:  cobra.NoArgs,
		RunE:  runLyapunov,
	}
	addConfigFlags(lyapunovCmd)
	lyapunovCmd.Flags().StringVar(&target, "body", "Earth", "body to displace")
	lyapunovCmd.Flags().Float64Var(&delta, "delta", 1000, "initial displacement (m)")

	rootCmd.AddCommand(runCmd, liveCmd, serveCmd, compareCmd, listCmd, plotCmd, analyzeCmd,
		exportJSONCmd, exportSVGCmd, presetsCmd, sweepCmd, lyapunovCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().StringVar(&bodiesFile, "bodies", "", "body catalog: built-in name or csv file")
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep (s)")
	cmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "number of steps")
	cmd.Flags().StringVar(&integrator, "integrator", config.DefaultIntegrator, "integrator")
	cmd.Flags().StringVar(&accumulator, "accumulator", config.DefaultAccumulator, "force accumulator")
	cmd.Flags().Float64Var(&theta, "theta", config.DefaultTheta, "barnes-hut opening angle")
	cmd.Flags().IntVar(&workers, "workers", config.DefaultWorkers, "goroutines per step pass")
	cmd.Flags().StringVar(&satelliteFile, "satellite", "", "satellite csv file")
	cmd.Flags().Float64Var(&speed, "speed", 0, "satellite launch speed (m/s)")
	cmd.Flags().Float64Var(&angle, "angle", 45, "satellite launch angle (degrees)")
}

// resolveConfig layers defaults, preset, config file and changed flags,
// in that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("bodies") {
		cfg.Name = ""
		cfg.Catalog = bodiesFile
		cfg.Bodies = nil
	}
	if flags.Changed("dt") {
		cfg.Dt = dt
	}
	if flags.Changed("steps") {
		cfg.Steps = steps
	}
	if flags.Changed("integrator") {
		cfg.Integrator = integrator
	}
	if flags.Changed("accumulator") {
		cfg.Accumulator = accumulator
	}
	if flags.Changed("theta") {
		cfg.Theta = theta
	}
	if flags.Changed("workers") {
		cfg.Workers = workers
	}

	if satelliteFile != "" {
		f, err := os.Open(satelliteFile)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		sat, err := catalog.ReadSatellite(f)
		if err != nil {
			return nil, fmt.Errorf("read satellite: %w", err)
		}
		cfg.Satellite = &sat
	}
	if flags.Changed("speed") || (flags.Changed("angle") && cfg.Satellite == nil) {
		if cfg.Satellite == nil {
			sat := catalog.DefaultSatellite(speed, angle)
			cfg.Satellite = &sat
		}
		if flags.Changed("speed") {
			cfg.Satellite.Speed = speed
		}
		if flags.Changed("angle") {
			cfg.Satellite.Angle = angle
		}
	}

	if cfg.Name == "" {
		cfg.Name = strings.TrimSuffix(filepath.Base(cfg.Catalog), filepath.Ext(cfg.Catalog))
	}
	return cfg, cfg.Validate()
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
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

	exp, err := experiment.Build(cfg)
	if err != nil {
		return err
	}
	sys := exp.System()

	rec, err := st.Create(cfg.Name, every)
	if err != nil {
		return err
	}
	rec.Attach(sys)

	if !quiet {
		sys.AddOrbitSink(sim.OrbitFunc(func(name string, avgPeriod float64) {
			fmt.Printf("Orbital Period of %s: %v\n", name, avgPeriod)
		}))
	}
	if energyStep > 0 {
		n := 0
		sys.AddEnergySink(sim.EnergyFunc(func(t, energy float64) {
			if n%energyStep == 0 {
				fmt.Printf("day %.0f: total energy %.6e J\n", t/dynamo.SecondsPerDay, energy)
			}
			n++
		}))
	}

	ctx, cancel := signalContext()
	defer cancel()

	fmt.Printf("running %s: %d bodies, %d steps of %gs (%s, %s)\n",
		cfg.Name, len(sys.Bodies()), cfg.Steps, cfg.Dt, cfg.Integrator, cfg.Accumulator)
	start := time.Now()

	result, runErr := exp.Run(ctx)
	elapsed := time.Since(start)

	names := make([]string, len(sys.Bodies()))
	for i, b := range sys.Bodies() {
		names[i] = b.Name
	}
	meta := storage.RunMetadata{
		Name:        cfg.Name,
		Dt:          cfg.Dt,
		Integrator:  cfg.Integrator,
		Accumulator: cfg.Accumulator,
		Bodies:      names,
	}
	if err := rec.Finish(meta, result); err != nil {
		return fmt.Errorf("save run: %w", err)
	}
	if runErr != nil {
		return fmt.Errorf("run %s stopped after %d steps: %w", rec.ID(), result.StepsTaken, runErr)
	}

	fmt.Printf("\ncompleted in %v\n", elapsed)
	fmt.Printf("run id: %s\n", rec.ID())
	fmt.Printf("steps: %d\n", result.StepsTaken)
	fmt.Printf("energy drift: %.3e\n", result.EnergyDrift)

	fmt.Println("\nperiods (years):")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, b := range sys.Bodies() {
		if b.IsSun() {
			continue
		}
		if avg, err := b.Orbit.AveragePeriod(); err == nil {
			fmt.Fprintf(w, "  %s\t%.4f\t(%d orbits)\n", b.Name, avg, len(b.Orbit.Periods))
		} else {
			fmt.Fprintf(w, "  %s\t-\n", b.Name)
		}
	}
	w.Flush()

	fmt.Println("\nmetrics:")
	for _, name := range sortedNames(result.Metrics) {
		fmt.Printf("  %s: %.6g\n", name, result.Metrics[name])
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	first, err := experiment.Build(cfg)
	if err != nil {
		return err
	}
	extent := 1.25 * first.SizeLimit()
	if extent == 0 {
		extent = 2e11
	}

	build := func() (*sim.System, error) {
		exp, err := experiment.Build(cfg)
		if err != nil {
			return nil, err
		}
		return exp.System(), nil
	}
	return viz.Run(cfg.Name, build, extent)
}

func compareSchemes(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	registry := experiment.NewRegistry()
	ens := sim.NewEnsemble()
	systems := make(map[string]*sim.System)
	for _, scheme := range registry.ListSchemes() {
		for _, acc := range registry.ListAccumulators() {
			c := *cfg
			c.Integrator = scheme
			c.Accumulator = acc
			exp, err := experiment.Build(&c)
			if err != nil {
				return err
			}
			name := scheme + "/" + acc
			ens.Add(name, exp.System())
			systems[name] = exp.System()
		}
	}

	ctx, cancel := signalContext()
	defer cancel()

	fmt.Printf("comparing %d configurations over %d steps of %gs\n\n", len(ens.Names()), cfg.Steps, cfg.Dt)
	start := time.Now()
	results, err := ens.Run(ctx, cfg.Steps)
	if err != nil {
		return err
	}
	fmt.Printf("completed in %v\n\n", time.Since(start))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CONFIG\tDRIFT\tMAX VAR %\tORBITS\tEARTH PERIOD")
	for _, name := range ens.Names() {
		r := results[name]
		summary := analysis.Summarize(r.Energies)
		period := "-"
		if earth, ok := systems[name].Body("Earth"); ok {
			if avg, err := earth.Orbit.AveragePeriod(); err == nil {
				period = fmt.Sprintf("%.4f", avg)
			}
		}
		fmt.Fprintf(w, "%s\t%.3e\t%.5f\t%.0f\t%s\n",
			name, r.EnergyDrift, summary.MaxVariation, r.Metrics["orbits"], period)
	}
	return w.Flush()
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
	fmt.Fprintln(w, "ID\tNAME\tTIME\tSTEPS\tDT\tINTEG\tACC\tDRIFT")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%gs\t%s\t%s\t%.2e\n",
			run.ID,
			run.Name,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Steps,
			run.Dt,
			run.Integrator,
			run.Accumulator,
			run.EnergyDrift,
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
	times, energies, err := st.LoadEnergy(runID)
	if err != nil {
		return err
	}
	if len(energies) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("samples: %d over %.0f days\n\n", len(energies), times[len(times)-1]/dynamo.SecondsPerDay)

	lo, hi := analysis.PlotBounds(energies)
	fmt.Println(asciigraph.Plot(analysis.Clamp(energies, lo, hi),
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.LowerBound(lo),
		asciigraph.UpperBound(hi),
		asciigraph.Caption("total energy (J)"),
	))
	fmt.Println()

	fmt.Println(asciigraph.Plot(analysis.Variation(energies),
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("energy variation about the mean (%)"),
	))
	fmt.Println()

	samples, err := st.LoadSatellite(runID)
	if err != nil {
		return err
	}
	if len(samples) > 0 {
		toMars := make([]float64, len(samples))
		toEarth := make([]float64, len(samples))
		for i, s := range samples {
			toMars[i] = s.ToMars
			toEarth[i] = s.ToEarth
		}
		fmt.Println(asciigraph.PlotMany([][]float64{toMars, toEarth},
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.SeriesColors(asciigraph.Red, asciigraph.Blue),
			asciigraph.Caption("satellite distance to mars (red) and earth (blue), m"),
		))
	}
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	_, energies, err := st.LoadEnergy(runID)
	if err != nil {
		return err
	}

	fmt.Printf("analysis: %s\n\n", meta.ID)

	s := analysis.Summarize(energies)
	fmt.Println("energy:")
	fmt.Printf("  samples:       %d\n", s.Samples)
	fmt.Printf("  mean:          %.6e J\n", s.Mean)
	fmt.Printf("  drift:         %.3e\n", s.Drift)
	fmt.Printf("  max variation: %.5f%%\n\n", s.MaxVariation)

	points, err := st.LoadTrajectory(runID)
	if err != nil {
		return err
	}
	names, tracks := storage.Tracks(points)

	var centre []storage.TrajectoryPoint
	if t, ok := tracks["Sun"]; ok {
		centre = t
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BODY\tPERIOD (yr)\tSPECTRAL (yr)\tPERIHELION (m)\tAPHELION (m)\tECC")
	portrait := &analysis.Portrait{}
	for i, name := range names {
		if name == "Sun" {
			continue
		}
		track := tracks[name]
		pts := make([]r2.Vec, len(track))
		xs := make([]float64, len(track))
		for j, p := range track {
			pts[j] = r2.Vec{X: p.X, Y: p.Y}
			if j < len(centre) {
				pts[j] = r2.Sub(pts[j], r2.Vec{X: centre[j].X, Y: centre[j].Y})
			}
			xs[j] = pts[j].X
		}
		portrait.Add(pts, rune('a'+i%26))

		period := "-"
		if p, ok := meta.Periods[name]; ok {
			period = fmt.Sprintf("%.4f", p)
		}
		spectral := "-"
		if len(track) > 1 {
			sampleDt := track[1].Time - track[0].Time
			if p := analysis.DominantPeriod(xs, sampleDt); p > 0 {
				spectral = fmt.Sprintf("%.4f", p/dynamo.SecondsPerYear)
			}
		}
		peri, apo, ecc := analysis.Apsides(pts, r2.Vec{})
		fmt.Fprintf(w, "%s\t%s\t%s\t%.4e\t%.4e\t%.4f\n", name, period, spectral, peri, apo, ecc)
	}
	w.Flush()

	if len(portrait.Tracks) > 0 {
		fmt.Println()
		fmt.Print(portrait.ASCII(80, 30))
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	if outFile == "" {
		return st.ExportJSON(args[0], os.Stdout)
	}

	f, err := os.Create(outFile)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := st.ExportJSON(args[0], f); err != nil {
		return err
	}
	fmt.Printf("exported to %s\n", outFile)
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	points, err := st.LoadTrajectory(runID)
	if err != nil {
		return err
	}

	path := outFile
	if path == "" {
		path = runID + ".svg"
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := export.TrajectoryToSVG(f, points, 800); err != nil {
		return err
	}
	fmt.Printf("exported to %s\n", path)
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tBODIES\tDT\tSTEPS\tACC\tSATELLITE")
	for _, name := range config.ListPresets() {
		cfg := config.GetPreset(name)
		bodies := cfg.Catalog
		if len(cfg.Bodies) > 0 {
			names := make([]string, len(cfg.Bodies))
			for i, r := range cfg.Bodies {
				names[i] = r.Name
			}
			bodies = strings.Join(names, ",")
		}
		sat := "-"
		if cfg.Satellite != nil {
			sat = fmt.Sprintf("%g m/s @ %g°", cfg.Satellite.Speed, cfg.Satellite.Angle)
		}
		fmt.Fprintf(w, "%s\t%s\t%gs\t%d\t%s\t%s\n", name, bodies, cfg.Dt, cfg.Steps, cfg.Accumulator, sat)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	registry := experiment.NewRegistry()
	fmt.Printf("\nintegrators:  %s\n", strings.Join(registry.ListSchemes(), ", "))
	fmt.Printf("accumulators: %s\n", strings.Join(registry.ListAccumulators(), ", "))
	fmt.Printf("catalogs:     %s\n", strings.Join(catalog.Builtin(), ", "))
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if !(speedStep > 0) || maxSpeed < minSpeed {
		return fmt.Errorf("%w: need min <= max and step > 0", dynamo.ErrParameterBounds)
	}

	var speeds []float64
	for v := minSpeed; v <= maxSpeed; v += speedStep {
		speeds = append(speeds, v)
	}

	build := func(v float64) (*sim.System, error) {
		c := *cfg
		sat := catalog.DefaultSatellite(v, angle)
		if cfg.Satellite != nil {
			sat = *cfg.Satellite
			sat.Speed = v
		}
		c.Satellite = &sat
		exp, err := experiment.Build(&c)
		if err != nil {
			return nil, err
		}
		return exp.System(), nil
	}

	fmt.Printf("sweeping %d launch speeds over %d steps\n\n", len(speeds), cfg.Steps)
	points, err := analysis.LaunchSweep(build, speeds, cfg.Steps)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SPEED (m/s)\tCLOSEST MARS (m)\tDAY\tCLOSEST EARTH (m)")
	for _, p := range points {
		fmt.Fprintf(w, "%.0f\t%.4e\t%.0f\t%.4e\n", p.Speed, p.ClosestMars, p.ClosestDay, p.ClosestEarth)
	}
	w.Flush()

	fmt.Println()
	fmt.Print(analysis.SweepToASCII(points, 80, 12))
	if best, ok := analysis.Best(points); ok {
		fmt.Printf("\nbest: %.0f m/s passes %.4e m from mars on day %.0f\n", best.Speed, best.ClosestMars, best.ClosestDay)
	}
	return nil
}

func runLyapunov(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	build := func() (*sim.System, error) {
		exp, err := experiment.Build(cfg)
		if err != nil {
			return nil, err
		}
		return exp.System(), nil
	}

	lambda, err := analysis.LyapunovExponent(build, target, delta, cfg.Steps)
	if err != nil {
		return err
	}
	fmt.Printf("largest lyapunov exponent (%s, %g m): %.6f per year\n", target, delta, lambda)
	if lambda > 0 {
		fmt.Printf("e-folding time: %.3f years\n", 1/lambda)
	}
	if math.Abs(lambda) < 1e-3 {
		fmt.Println("separation grows no faster than linearly: regular motion")
	}
	return nil
}

func sortedNames(m map[string]float64) []string {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

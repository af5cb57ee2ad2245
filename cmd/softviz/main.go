package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/softviz/internal/analysis"
	"github.com/san-kum/softviz/internal/animate"
	"github.com/san-kum/softviz/internal/config"
	"github.com/san-kum/softviz/internal/export"
	"github.com/san-kum/softviz/internal/ingest"
	"github.com/san-kum/softviz/internal/logging"
	"github.com/san-kum/softviz/internal/transform"
	"github.com/san-kum/softviz/internal/viz"
)

var (
	algorithm   string
	temperature float64
	subtractMax bool
	configFile  string
	preset      string
	valuesFile  string
	step        float64
	logLevel    string
	// live view
	frameRate int
	theme     string
	gifPath   string
	// exports
	csvOutput  string
	jsonOutput string
	svgOutput  string
	svgWidth   int
	svgHeight  int
	svgBraille bool
	// sweep
	sweepMin   float64
	sweepMax   float64
	sweepSteps int
	fitTarget  float64
	// formula
	formulaStyle string
	formulaWidth int

	logger = logging.NewNop()
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd registers the softviz commands. With no subcommand the
// interactive view starts with the configured values.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "softviz",
		Short:        "softmax and softargmax explorer",
		SilenceUsage: true,
		RunE:         runLive,
	}
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		level, err := logging.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		logger = logging.New(level)
		return nil
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&algorithm, "algorithm", config.DefaultAlgorithm, "transform: softmax or softargmax")
	pf.Float64Var(&temperature, "temperature", config.DefaultTemperature, "softargmax temperature")
	pf.BoolVar(&subtractMax, "subtract-max", true, "subtract the maximum before exponentiating")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.StringVar(&valuesFile, "file", "", "read comma-separated values from a file")
	pf.Float64Var(&step, "step", config.DefaultStep, "animation progress per tick")
	pf.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	addLiveFlags(rootCmd)

	liveCmd := &cobra.Command{
		Use:   "live [values]",
		Short: "animate the transform in the terminal",
		RunE:  runLive,
	}
	addLiveFlags(liveCmd)

	computeCmd := &cobra.Command{
		Use:   "compute [values]",
		Short: "print exponents, sum, probabilities and output",
		RunE:  runCompute,
	}

	animateCmd := &cobra.Command{
		Use:   "animate [values]",
		Short: "run the animation headless and print each completed column",
		RunE:  runAnimate,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [values]",
		Short: "plot original values and output",
		RunE:  runPlot,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep [values]",
		Short: "softargmax expectation across temperatures",
		RunE:  runSweep,
	}
	sweepCmd.Flags().Float64Var(&sweepMin, "min", 0.05, "lowest temperature")
	sweepCmd.Flags().Float64Var(&sweepMax, "max", 5, "highest temperature")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 60, "number of temperatures")
	sweepCmd.Flags().Float64Var(&fitTarget, "target", 0, "report the temperature whose expectation is closest to this value")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [values]",
		Short: "export the result to CSV",
		RunE:  exportCSV,
	}
	exportCSVCmd.Flags().StringVarP(&csvOutput, "output", "o", "-", "output path, - for stdout")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [values]",
		Short: "export the result to JSON",
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVarP(&jsonOutput, "output", "o", "-", "output path, - for stdout")

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [values]",
		Short: "export an SVG histogram of values and output",
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVarP(&svgOutput, "output", "o", "softviz.svg", "output path, - for stdout")
	exportSVGCmd.Flags().IntVar(&svgWidth, "width", 640, "image width")
	exportSVGCmd.Flags().IntVar(&svgHeight, "height", 320, "image height")
	exportSVGCmd.Flags().BoolVar(&svgBraille, "braille", false, "render the terminal Braille histogram of the output instead")

	formulaCmd := &cobra.Command{
		Use:   "formula",
		Short: "show the formula of the selected transform",
		Args:  cobra.NoArgs,
		RunE:  showFormula,
	}
	formulaCmd.Flags().StringVar(&formulaStyle, "style", "", "glamour style (dark, light, notty); auto when empty")
	formulaCmd.Flags().IntVar(&formulaWidth, "width", 80, "word wrap width")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tALGORITHM\tTEMP\tVALUES")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%s\t%g\t%s\n", name, p.Algorithm, p.Temperature, ingest.Format(p.Values))
			}
			return w.Flush()
		},
	}

	initConfigCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the resolved configuration to a yaml file",
		Args:  cobra.ExactArgs(1),
		RunE:  initConfig,
	}

	rootCmd.AddCommand(liveCmd, computeCmd, animateCmd, plotCmd, sweepCmd, exportCSVCmd, exportJSONCmd, exportSVGCmd, formulaCmd, presetsCmd, initConfigCmd)
	return rootCmd
}

func addLiveFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&frameRate, "fps", config.DefaultFPS, "frame rate")
	cmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
	cmd.Flags().StringVar(&gifPath, "gif", "softviz.gif", "GIF recording path")
}

// resolveConfig applies defaults, then the preset, then the config file, then
// any flag set on the command line. Positional values or --file replace the
// configured values.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		load := config.Load
		if preset != "" {
			load = func(path string) (*config.Config, error) { return config.LoadOver(path, cfg) }
		}
		loaded, err := load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("algorithm") {
		cfg.Algorithm = algorithm
	}
	if flags.Changed("temperature") {
		cfg.Temperature = temperature
	}
	if flags.Changed("subtract-max") {
		cfg.SubtractMax = subtractMax
	}
	if flags.Changed("step") {
		cfg.Animation.Step = step
	}
	if flags.Changed("fps") {
		cfg.Animation.FPS = frameRate
	}
	if flags.Changed("theme") {
		cfg.Display.Theme = theme
	}

	switch {
	case len(args) > 0:
		values, err := ingest.Parse(strings.Join(args, ","))
		if err != nil {
			return nil, err
		}
		cfg.Values = values
	case valuesFile != "":
		values, err := ingest.ReadFile(valuesFile)
		if err != nil {
			return nil, err
		}
		cfg.Values = values
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger.Debug("config resolved",
		"algorithm", cfg.Algorithm,
		"temperature", cfg.Temperature,
		"subtract_max", cfg.SubtractMax,
		"n", len(cfg.Values),
		"preset", preset,
		"config", configFile,
	)
	return cfg, nil
}

// computeStrict resolves the configuration and runs the engine, rejecting an
// empty vector.
func computeStrict(cmd *cobra.Command, args []string) (*config.Config, transform.Config, *transform.Result, error) {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return nil, transform.Config{}, nil, err
	}
	tc, err := cfg.Transform()
	if err != nil {
		return nil, transform.Config{}, nil, err
	}
	res, err := transform.ComputeStrict(cfg.Vector(), tc)
	if err != nil {
		return nil, transform.Config{}, nil, err
	}
	return cfg, tc, res, nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	tc, err := cfg.Transform()
	if err != nil {
		return err
	}

	viz.SetTheme(cfg.Display.Theme)
	opts := viz.Options{
		Step:      cfg.Animation.Step,
		FPS:       cfg.Animation.FPS,
		Autostart: cfg.Animation.Autostart,
		Width:     cfg.Display.Width,
		Height:    cfg.Display.Height,
		GIFPath:   gifPath,
	}
	return viz.Run(cfg.Vector(), tc, opts)
}

func runCompute(cmd *cobra.Command, args []string) error {
	cfg, tc, res, err := computeStrict(cmd, args)
	if err != nil {
		return err
	}
	values := cfg.Vector()

	fmt.Printf("algorithm: %s\n", tc.Algorithm)
	if tc.Algorithm == transform.Softargmax {
		fmt.Printf("temperature: %g\n", tc.Temperature)
	}
	fmt.Printf("subtract max: %t\n\n", tc.SubtractMax)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "INDEX\tVALUE\tEXPONENT\tPROBABILITY\tOUTPUT")
	for i, v := range values {
		fmt.Fprintf(w, "%d\t%.6f\t%.6f\t%.6f\t%.6f\n", i, v, res.Exponents[i], res.Probabilities[i], res.Output[i])
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\nsum: %.6f\n", res.Sum)
	fmt.Printf("expectation: %.6f\n", res.Expectation())
	fmt.Printf("argmax: %d\n", res.ArgMax())
	fmt.Printf("entropy: %.6f\n", analysis.Entropy(res.Probabilities))
	return nil
}

func runAnimate(cmd *cobra.Command, args []string) error {
	cfg, _, res, err := computeStrict(cmd, args)
	if err != nil {
		return err
	}

	ctrl, err := animate.New(cfg.Vector(), res.Output)
	if err != nil {
		return err
	}
	ctrl.Start()

	stepSize := cfg.Animation.Step
	logger.Debug("animating", "columns", ctrl.Len(), "step", stepSize)

	fmt.Printf("start: %s\n", ingest.Format(ctrl.Current()))
	ticks := 0
	for !ctrl.Done() {
		before := ctrl.Index()
		ctrl.Tick(stepSize)
		ticks++
		if ctrl.Index() != before {
			fmt.Printf("column %d (tick %d): %s\n", before, ticks, ingest.Format(ctrl.Current()))
		}
	}
	logger.Info("animation finished", "ticks", ticks)
	return nil
}

func runPlot(cmd *cobra.Command, args []string) error {
	cfg, tc, res, err := computeStrict(cmd, args)
	if err != nil {
		return err
	}

	graph := asciigraph.PlotMany([][]float64{cfg.Vector(), res.Output},
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.SeriesColors(asciigraph.Blue, asciigraph.Purple),
		asciigraph.Caption(fmt.Sprintf("original (blue) vs %s (purple)", tc.Algorithm)),
	)
	fmt.Println(graph)
	fmt.Println()

	probs := asciigraph.Plot(res.Probabilities,
		asciigraph.Height(8),
		asciigraph.Width(80),
		asciigraph.Caption("probabilities"),
	)
	fmt.Println(probs)
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	tc, err := cfg.Transform()
	if err != nil {
		return err
	}
	values := cfg.Vector()
	if len(values) == 0 {
		return transform.ErrEmptyInput
	}

	temps := analysis.Temperatures(sweepMin, sweepMax, sweepSteps)
	points, err := analysis.SweepParallel(cmd.Context(), values, tc, temps, 0)
	if err != nil {
		return err
	}

	graph := asciigraph.Plot(analysis.Expectations(points),
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("softargmax expectation, t = %g..%g", sweepMin, sweepMax)),
	)
	fmt.Println(graph)
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TEMP\tEXPECTATION\tARGMAX\tENTROPY")
	stride := max(len(points)/10, 1)
	for i := 0; i < len(points); i += stride {
		p := points[i]
		fmt.Fprintf(w, "%.4f\t%.6f\t%d\t%.6f\n", p.Temperature, p.Expectation, p.ArgMax, p.Entropy)
	}
	fmt.Fprintf(w, "\nmax value\t%.6f\tat %d\t\n", values[analysis.MaxIndex(values)], analysis.MaxIndex(values))
	if err := w.Flush(); err != nil {
		return err
	}

	if cmd.Flags().Changed("target") {
		best, err := analysis.FitTemperature(cmd.Context(), values, tc, temps, fitTarget)
		if err != nil {
			return err
		}
		fmt.Printf("\nclosest to %g: t = %.4f (expectation %.6f)\n", fitTarget, best.Temperature, best.Expectation)
	}
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	cfg, _, res, err := computeStrict(cmd, args)
	if err != nil {
		return err
	}
	return writeOutput(csvOutput, func(f *os.File) error {
		return export.WriteCSV(f, cfg.Vector(), res)
	})
}

func exportJSON(cmd *cobra.Command, args []string) error {
	cfg, tc, res, err := computeStrict(cmd, args)
	if err != nil {
		return err
	}
	report, err := export.NewReport(cfg.Vector(), tc, res)
	if err != nil {
		return err
	}
	if err := export.ExportJSON(jsonOutput, report); err != nil {
		return err
	}
	logOutput(jsonOutput)
	return nil
}

const brailleDotSize = 4

func exportSVG(cmd *cobra.Command, args []string) error {
	cfg, _, res, err := computeStrict(cmd, args)
	if err != nil {
		return err
	}
	values := cfg.Vector()
	svg := export.HistogramSVG(values, res, svgWidth, svgHeight)
	if svgBraille {
		canvas := viz.NewCanvas(cfg.Display.Width, cfg.Display.Height)
		viz.DrawHistogram(canvas, res.Output, viz.HistogramScale(values, res.Output), viz.HasNegative(values, res.Output))
		svg = export.CanvasToSVG(canvas, brailleDotSize, export.TransformedColor)
	}
	return writeOutput(svgOutput, func(f *os.File) error {
		_, err := f.WriteString(svg)
		return err
	})
}

// writeOutput runs write against stdout for "-" or a newly created file.
func writeOutput(path string, write func(*os.File) error) error {
	if path == "-" {
		return write(os.Stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	logOutput(path)
	return nil
}

func logOutput(path string) {
	if path != "-" {
		logger.Info("exported", "path", path)
	}
}

func showFormula(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, nil)
	if err != nil {
		return err
	}
	tc, err := cfg.Transform()
	if err != nil {
		return err
	}
	out, err := viz.RenderFormula(tc, formulaStyle, formulaWidth)
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}

func initConfig(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, nil)
	if err != nil {
		return err
	}
	if err := config.Save(args[0], cfg); err != nil {
		return err
	}
	logger.Info("config written", "path", args[0], slog.Int("values", len(cfg.Values)))
	return nil
}

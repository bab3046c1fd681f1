package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/gin-gonic/gin"
	"github.com/guptarohit/asciigraph"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/san-kum/sortviz/internal/animation"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/export"
	"github.com/san-kum/sortviz/internal/logging"
	"github.com/san-kum/sortviz/internal/server"
	"github.com/san-kum/sortviz/internal/sorting"
	"github.com/san-kum/sortviz/internal/tui"
	"github.com/san-kum/sortviz/internal/viz"
)

var (
	configFile string
	logFile    string
	logLevel   string

	size       int
	algorithm  string
	intervalMs int
	seed       int64
	values     []int
	theme      string
	preset     string

	svgPath string
	gifPath string
	plain   bool
	quiet   bool

	addr string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sortviz",
		Short: "step-by-step sorting algorithm animator",
		RunE:  runTUI,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	addSessionFlags(rootCmd)

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive terminal UI",
		RunE:  runTUI,
	}
	addSessionFlags(tuiCmd)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "animate one run in the terminal without the interactive UI",
		RunE:  runHeadless,
	}
	addSessionFlags(runCmd)
	runCmd.Flags().StringVar(&svgPath, "svg", "", "write the final frame as SVG")
	runCmd.Flags().StringVar(&gifPath, "gif", "", "record the run as an animated GIF")
	runCmd.Flags().BoolVar(&plain, "plain", false, "print one line per frame instead of redrawing")
	runCmd.Flags().BoolVar(&quiet, "quiet", false, "only print the summary")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "serve the animator over HTTP",
		RunE:  runServe,
	}
	addSessionFlags(serveCmd)
	serveCmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")

	algorithmsCmd := &cobra.Command{
		Use:   "algorithms",
		Short: "list sorting algorithms",
		Args:  cobra.NoArgs,
		RunE:  listAlgorithms,
	}
	algorithmsCmd.Flags().IntVar(&size, "size", config.DefaultSize, "sequence size used for the step count")

	presetsCmd := &cobra.Command{
		Use:   "presets [algorithm]",
		Short: "list available presets",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listPresets,
	}

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write a config file with the default settings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Save(args[0], config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])
			return nil
		},
	}

	rootCmd.AddCommand(tuiCmd, runCmd, serveCmd, algorithmsCmd, presetsCmd, initCmd)
	return rootCmd
}

func addSessionFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&size, "size", config.DefaultSize, "number of values (1-99)")
	cmd.Flags().StringVar(&algorithm, "algorithm", config.DefaultAlgorithm, "sorting algorithm")
	cmd.Flags().IntVar(&intervalMs, "interval", animation.DefaultIntervalMs, "milliseconds per step (1-1000)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time based)")
	cmd.Flags().IntSliceVar(&values, "values", nil, "explicit sequence, e.g. 5,3,4,1,2")
	cmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// loadConfig layers preset, config file and flags, in that order.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		key := algorithm
		if a, err := sorting.ParseAlgorithm(algorithm); err == nil {
			key = a.String()
		}
		p := config.GetPreset(key, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(key))
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("size") {
		cfg.Size = size
		cfg.Values = nil
	}
	if flags.Changed("algorithm") {
		cfg.Algorithm = algorithm
	}
	if flags.Changed("interval") {
		cfg.IntervalMs = intervalMs
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("values") {
		cfg.Values = values
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("addr") {
		cfg.Server.Addr = addr
	}
	if flags.Changed("log-file") {
		cfg.Log.File = logFile
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setupLogger logs to the configured file, else to stderr when console is
// set, else nowhere. The TUI passes console=false because it owns the screen.
func setupLogger(cfg *config.Config, console bool) (zerolog.Logger, func(), error) {
	if cfg.Log.File != "" {
		log, closer, err := logging.Open(cfg.Log.File, cfg.Log.Level)
		if err != nil {
			return zerolog.Nop(), func() {}, err
		}
		return log, func() { closer.Close() }, nil
	}
	if console {
		log, err := logging.Console(cfg.Log.Level)
		return log, func() {}, err
	}
	return zerolog.Nop(), func() {}, nil
}

func newSession(cfg *config.Config, log zerolog.Logger, p animation.Presenter) (*animation.Session, error) {
	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}
	opts := []animation.Option{
		animation.WithAlgorithm(cfg.GetAlgorithm()),
		animation.WithInterval(cfg.IntervalMs),
		animation.WithLogger(logging.Component(log, "session")),
	}
	if p != nil {
		opts = append(opts, animation.WithPresenter(p))
	}
	s := animation.NewSession(sorting.NewStepper(rng), opts...)

	var err error
	if len(cfg.Values) > 0 {
		err = s.Load(cfg.Values)
	} else {
		err = s.Create(cfg.Size)
	}
	return s, err
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, closeLog, err := setupLogger(cfg, false)
	if err != nil {
		return err
	}
	defer closeLog()
	return viz.RunInteractive(cfg, logging.Component(log, "tui"))
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, closeLog, err := setupLogger(cfg, true)
	if err != nil {
		return err
	}
	defer closeLog()

	out := cmd.OutOrStdout()
	th := viz.GetTheme(cfg.Theme)
	var presenters animation.Presenters

	var renderer *tui.LiveRenderer
	if !quiet {
		opts := []tui.Option{tui.WithTheme(th), tui.WithProfile(cfg.Chart.Profile)}
		if plain {
			opts = append(opts, tui.Plain())
		}
		renderer = tui.NewLiveRenderer(out, cfg.Chart.Width, cfg.Chart.Height, opts...)
		presenters = append(presenters, renderer)
	}

	var rec *export.GIFRecorder
	if gifPath != "" {
		rec = export.NewGIFRecorder(th.Hex, export.DefaultOptions(), gifDelay(cfg.IntervalMs))
		presenters = append(presenters, rec)
	}

	session, err := newSession(cfg, log, presenters)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if renderer != nil {
		renderer.Begin()
		defer renderer.End()
	}
	if err := session.Start(); err != nil {
		return err
	}

	driver := animation.NewDriver(session, animation.ExitOnDone(),
		animation.WithDriverLogger(logging.Component(log, "driver")))
	if err := driver.Run(ctx); err != nil {
		if !errors.Is(err, context.Canceled) {
			return err
		}
		log.Warn().Msg("interrupted")
	}
	session.Stop()

	f := session.Frame()
	if svgPath != "" {
		opts := export.DefaultOptions()
		opts.Profile = cfg.Chart.Profile
		if err := export.WriteSVG(svgPath, f, th.Hex, opts); err != nil {
			return fmt.Errorf("failed to write svg: %w", err)
		}
		log.Info().Str("path", svgPath).Msg("svg written")
	}
	if rec != nil {
		if err := rec.Save(gifPath); err != nil {
			return fmt.Errorf("failed to write gif: %w", err)
		}
		log.Info().Str("path", gifPath).Int("frames", rec.Len()).Msg("gif written")
	}

	printSummary(out, f)
	return nil
}

// gifDelay converts a step interval to GIF centiseconds, never below one.
func gifDelay(intervalMs int) int {
	return max(1, (intervalMs+5)/10)
}

func printSummary(w io.Writer, f sorting.Frame) {
	state := "stopped"
	if f.Done {
		state = "sorted"
	}
	fmt.Fprintf(w, "\n%s %s in %d steps\n", f.Algorithm.Title(), state, f.Steps)
	fmt.Fprintf(w, "result: %v\n", f.Values)
	if f.Len() > 1 && quiet {
		data := make([]float64, f.Len())
		for i, v := range f.Values {
			data[i] = float64(v)
		}
		fmt.Fprintln(w, asciigraph.Plot(data, asciigraph.Height(6), asciigraph.Caption("final sequence")))
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, closeLog, err := setupLogger(cfg, true)
	if err != nil {
		return err
	}
	defer closeLog()

	session, err := newSession(cfg, log, nil)
	if err != nil {
		return err
	}

	gin.SetMode(gin.ReleaseMode)
	srv := server.NewServer(session, cfg.Server, logging.Component(log, "server"))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return srv.Run(ctx)
}

func listAlgorithms(cmd *cobra.Command, args []string) error {
	if err := sorting.ValidateSize(size); err != nil {
		return err
	}
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTITLE\tSTEPS\tDESCRIPTION")
	for _, a := range sorting.Algorithms {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", a, a.Title(), a.TotalSteps(size), a.Description())
	}
	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	algs := sorting.AlgorithmNames()
	if len(args) == 1 {
		a, err := sorting.ParseAlgorithm(args[0])
		if err != nil {
			return err
		}
		algs = []string{a.String()}
	}
	for _, name := range algs {
		presets := config.ListPresets(name)
		if len(presets) == 0 {
			fmt.Fprintf(out, "no presets for algorithm: %s\n", name)
			continue
		}
		fmt.Fprintf(out, "presets for %s:\n", name)
		for _, p := range presets {
			fmt.Fprintf(out, "  %s\n", p)
		}
	}
	return nil
}

package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/san-kum/bounce/internal/config"
	"github.com/san-kum/bounce/internal/display"
	"github.com/san-kum/bounce/internal/metrics"
	"github.com/san-kum/bounce/internal/palette"
	"github.com/san-kum/bounce/internal/render"
	"github.com/san-kum/bounce/internal/viz"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	width       int
	height      int
	maxVel      int
	minVel      int
	frames      int
	interval    time.Duration
	paletteName string
	seed        uint64
	configFile  string
	preset      string
	fit         bool
	showStats   bool
	showCount   bool
	tail        int
	debug       bool
	force       bool

	logFile *os.File
)

// main builds the bounce CLI and exits with status 1 if the command fails.
func main() {
	err := newRootCmd().Execute()
	closeLog()
	if err != nil {
		os.Exit(1)
	}
}

// closeLog closes the debug log. cobra skips PersistentPostRun when RunE
// fails, so main calls it again after Execute.
func closeLog() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "bounce",
		Short:        "bouncing colored blocks in the terminal",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runBounce,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logFile = setupLogging(debug)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			closeLog()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.IntVar(&width, "width", config.DefaultWidth, "grid width")
	flags.IntVar(&height, "height", config.DefaultHeight, "grid height")
	flags.IntVar(&maxVel, "max_vel", 0, "max launch velocity (default derived from height)")
	flags.IntVar(&minVel, "min_vel", display.DefaultMinVelocity, "min launch velocity")
	flags.IntVar(&frames, "frames", 0, "stop after n frames (0 runs until interrupted)")
	flags.DurationVar(&interval, "interval", config.DefaultInterval, "sleep between frames")
	flags.StringVar(&paletteName, "palette", config.DefaultPalette, "color palette")
	flags.Uint64Var(&seed, "seed", 0, "random seed (0 picks one)")
	flags.StringVar(&configFile, "config", "", "config file path (yaml)")
	flags.StringVar(&preset, "preset", "", "use preset configuration")
	flags.BoolVar(&fit, "fit", false, "size the grid to the terminal")
	flags.IntVar(&tail, "tail", display.DefaultTailLength, "recent cells each block keeps lit")
	flags.BoolVar(&showCount, "count", false, "print the block count under the FPS counter")
	flags.BoolVar(&showStats, "stats", false, "print a frame rate summary on exit")
	flags.BoolVar(&debug, "debug", false, "write a debug log to "+logDir+"/"+logFileName)

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive view with pause and a population chart",
		Args:  cobra.NoArgs,
		RunE:  runTUI,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "presets:")
			for _, name := range config.ListPresets() {
				p := config.Presets[name]
				fmt.Fprintf(out, "  %-8s max %-5d palette %s\n", name, p.Population.Max, p.Palette)
			}
		},
	}

	palettesCmd := &cobra.Command{
		Use:   "palettes",
		Short: "list available palettes",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			for _, name := range palette.Names() {
				p, _ := palette.Lookup(name)
				fmt.Fprintf(out, "  %-8s ", name)
				for _, tag := range p.Tags() {
					fmt.Fprint(out, tag)
				}
				fmt.Fprintln(out)
			}
		},
	}

	initConfigCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the effective configuration to a yaml file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initConfig,
	}
	initConfigCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	rootCmd.AddCommand(tuiCmd, presetsCmd, palettesCmd, initConfigCmd)
	return rootCmd
}

func runBounce(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	disp, err := buildDisplay(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	opts := render.Options{
		Interval:   cfg.Interval,
		Frames:     cfg.Frames,
		HideCursor: isTerminal(out),
	}
	var stats *metrics.FrameStats
	if showStats {
		stats = metrics.NewFrameStats(metrics.DefaultHistory)
		opts.Stats = stats
	}

	if err := render.New(disp, out, opts).Run(ctx); err != nil {
		return err
	}
	if stats != nil {
		fmt.Fprint(out, "\n"+stats.Summary())
	}
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	disp, err := buildDisplay(cfg)
	if err != nil {
		return err
	}
	return viz.Run(disp, cfg.Interval)
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := "bounce.yaml"
	if len(args) > 0 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if err := config.Save(path, cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return nil
}

// buildDisplay creates and seeds a display from a validated config.
func buildDisplay(cfg *config.Config) (*display.Display, error) {
	pal, err := palette.Lookup(cfg.Palette)
	if err != nil {
		return nil, err
	}

	opts := []display.Option{display.WithPalette(pal)}
	if cfg.Seed != 0 {
		opts = append(opts, display.WithRand(rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))))
	}

	disp, err := display.New(cfg.Width, cfg.Height, opts...)
	if err != nil {
		return nil, err
	}
	disp.Settings = cfg.Settings()
	if err := disp.Seed(); err != nil {
		return nil, err
	}
	return disp, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

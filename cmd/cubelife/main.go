package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/cubelife/internal/analysis"
	"github.com/san-kum/cubelife/internal/config"
	"github.com/san-kum/cubelife/internal/export"
	"github.com/san-kum/cubelife/internal/frame"
	"github.com/san-kum/cubelife/internal/gallery"
	"github.com/san-kum/cubelife/internal/grid"
	"github.com/san-kum/cubelife/internal/gui"
	"github.com/san-kum/cubelife/internal/metrics"
	"github.com/san-kum/cubelife/internal/render"
	"github.com/san-kum/cubelife/internal/sim"
	"github.com/san-kum/cubelife/internal/storage"
	"github.com/san-kum/cubelife/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	seed       int64
	size       int
	logLevel   string

	sound  bool
	ticks  int
	runs   int
	save   bool
	svgOut string
	sweep  bool
	damage string
	frames int
	outDir string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cubelife",
		Short: "3D cellular automaton viewer",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(logLevel)
		},
		RunE: runGUI,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".cubelife", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed (default from config, else clock)")
	rootCmd.PersistentFlags().IntVar(&size, "size", 0, "lattice side (default from config)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug, info, warn or error")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open the window viewer",
		RunE:  runGUI,
	}
	guiCmd.Flags().BoolVar(&sound, "sound", false, "sonify the population")
	rootCmd.Flags().BoolVar(&sound, "sound", false, "sonify the population")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "terminal viewer",
		RunE:  runTUI,
	}
	tuiCmd.Flags().StringVar(&outDir, "out", ".", "directory for GIF and SVG captures")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run generations headless and report population statistics",
		RunE:  runHeadless,
	}
	runCmd.Flags().IntVar(&ticks, "ticks", 200, "generations to apply")
	runCmd.Flags().IntVar(&runs, "runs", 1, "independent runs on consecutive seeds")
	runCmd.Flags().BoolVar(&save, "save", false, "save run statistics")
	runCmd.Flags().StringVar(&svgOut, "svg", "", "write the population plot as SVG")
	runCmd.Flags().BoolVar(&sweep, "sweep", false, "also sweep seed density and plot final populations")
	runCmd.Flags().StringVar(&damage, "damage", "", "flip cell x,y,z of the seed and plot how the difference spreads")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "print a saved run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return storage.New(dataDir).Export(args[0], os.Stdout)
		},
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark the frame driver",
		RunE:  benchFrames,
	}
	benchCmd.Flags().IntVar(&frames, "frames", 600, "frames to drive")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list configuration presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	galleryCmd := &cobra.Command{
		Use:   "gallery",
		Short: "shooting gallery mini game",
		RunE:  runGallery,
	}

	rootCmd.AddCommand(guiCmd, tuiCmd, runCmd, listCmd, exportCmd, benchCmd, presetsCmd, galleryCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogging(level string) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		l = slog.LevelInfo
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})
	slog.SetDefault(slog.New(h))
}

// loadConfig resolves the config file and preset, then applies --size and
// --seed on top.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Resolve(configFile, preset)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("size") {
		cfg.Grid.Size = size
	}
	if cmd.Flags().Changed("seed") {
		cfg.Grid.Seed = seed
	}
	if cfg.Grid.Seed == 0 {
		cfg.Grid.Seed = time.Now().UnixNano()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	slog.Debug("config resolved", "size", cfg.Grid.Size, "density", cfg.Grid.Density, "seed", cfg.Grid.Seed)
	return cfg, nil
}

// parseCell reads "x,y,z" and checks it lies inside a lattice of side n.
func parseCell(s string, n int) (x, y, z int, err error) {
	if _, err := fmt.Sscanf(s, "%d,%d,%d", &x, &y, &z); err != nil {
		return 0, 0, 0, fmt.Errorf("parse cell %q: want x,y,z", s)
	}
	for _, v := range []int{x, y, z} {
		if v < 0 || v >= n {
			return 0, 0, 0, fmt.Errorf("cell %q outside lattice of side %d", s, n)
		}
	}
	return x, y, z, nil
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	state, err := frame.NewState(cfg.Settings(), time.Now())
	if err != nil {
		return err
	}
	return gui.Run(state, gui.Options{
		Width:   cfg.Render.Width,
		Height:  cfg.Render.Height,
		FPS:     cfg.Render.FPS,
		Title:   "cubelife",
		Seed:    cfg.Grid.Seed,
		Density: cfg.Grid.Density,
		Sound:   sound,
	})
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	now := time.Now()
	state, err := frame.NewState(cfg.Settings(), now)
	if err != nil {
		return err
	}
	r := viz.NewRenderer(nil)
	d, err := frame.New(state, r)
	if err != nil {
		return err
	}
	model := viz.NewModel(d, r, viz.Options{
		Seed:    cfg.Grid.Seed,
		Density: cfg.Grid.Density,
		Theme:   cfg.Render.Theme,
		OutDir:  outDir,
	}, now)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}

func runGallery(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	game := gallery.New(rand.New(rand.NewSource(cfg.Grid.Seed)), cfg.Gallery.Birds, cfg.Gallery.WinScore)
	p := tea.NewProgram(viz.NewGalleryModel(game, cfg.Render.Theme), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	simCfg := sim.Config{Ticks: ticks, StopWhenExtinct: true}
	ens := &sim.Ensemble{
		Size:      cfg.Grid.Size,
		Density:   cfg.Grid.Density,
		NumRuns:   runs,
		SeedStart: cfg.Grid.Seed,
		Metrics:   metrics.Standard,
		Observer: func(run int) sim.Observer {
			log := slog.With("run", run)
			return sim.ObserverFunc(func(g *grid.Grid) {
				if g.Generation()%50 == 0 {
					log.Debug("generation", "gen", g.Generation(), "population", g.Population())
				}
			})
		},
	}

	fmt.Printf("lattice %d^3  density %.2f  seed %d  ticks %d\n", cfg.Grid.Size, cfg.Grid.Density, cfg.Grid.Seed, ticks)
	start := time.Now()
	results, err := ens.Run(ctx, simCfg)
	if err != nil {
		return err
	}
	fmt.Printf("completed %d run(s) in %v\n\n", len(results), time.Since(start))

	st := storage.New(dataDir)
	if save {
		if err := st.Init(); err != nil {
			return err
		}
	}

	for i, result := range results {
		runSeed := cfg.Grid.Seed + int64(i)
		series := result.Series()
		summary := analysis.Summarize(result.Population)
		period := analysis.DominantPeriod(series)
		cycle, cyclic := analysis.DetectCycle(result.Hashes)

		if len(results) > 1 {
			fmt.Printf("run %d (seed %d)\n", i, runSeed)
		}
		if len(series) > 1 {
			fmt.Println(asciigraph.Plot(series, asciigraph.Height(10), asciigraph.Width(70), asciigraph.Caption("population")))
			fmt.Println()
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "generations\t%d\n", result.TicksTaken)
		fmt.Fprintf(w, "population\tmin %d  max %d  mean %.1f  final %d\n", summary.Min, summary.Max, summary.Mean, summary.Final)
		if summary.Extinction >= 0 {
			fmt.Fprintf(w, "extinct at\t%d\n", summary.Extinction)
		}
		if cyclic {
			fmt.Fprintf(w, "cycle\tfrom %d, period %d\n", cycle.Start, cycle.Period)
		}
		if period > 0 {
			fmt.Fprintf(w, "dominant period\t%.1f\n", period)
		}
		for name, v := range result.Metrics {
			fmt.Fprintf(w, "%s\t%.4f\n", name, v)
		}
		w.Flush()
		fmt.Println()

		if save {
			meta := storage.RunMetadata{
				Preset:  preset,
				Seed:    runSeed,
				Size:    cfg.Grid.Size,
				Density: cfg.Grid.Density,
				Period:  period,
			}
			if cyclic {
				meta.CycleStart, meta.CyclePeriod = cycle.Start, cycle.Period
			}
			id, err := st.Save(meta, result)
			if err != nil {
				return fmt.Errorf("save run: %w", err)
			}
			fmt.Printf("saved: %s\n\n", id)
		}
	}

	if svgOut != "" && len(results) > 0 {
		doc := export.SeriesToSVG(results[0].Series(), 800, 300, export.DefaultColors)
		if err := os.WriteFile(svgOut, []byte(doc), 0644); err != nil {
			return fmt.Errorf("write svg: %w", err)
		}
		fmt.Printf("plot: %s\n", svgOut)
	}

	if damage != "" {
		if err := printDamage(cfg); err != nil {
			return err
		}
	}

	if sweep {
		points, err := analysis.DensitySweep(ctx, cfg.Grid.Size, cfg.Grid.Seed, 0.05, 0.6, 56, ticks/2, 10)
		if err != nil {
			return err
		}
		fmt.Println(analysis.SweepToASCII(points, 70, 20))
	}
	return nil
}

// printDamage flips one cell of the seed lattice and plots how many cells
// differ from the unperturbed run after each tick.
func printDamage(cfg *config.Config) error {
	x, y, z, err := parseCell(damage, cfg.Grid.Size)
	if err != nil {
		return err
	}
	state, err := frame.NewState(cfg.Settings(), time.Now())
	if err != nil {
		return err
	}

	spread := analysis.Damage(state.Grid, x, y, z, ticks)
	series := make([]float64, len(spread))
	for i, d := range spread {
		series[i] = float64(d)
	}
	fmt.Println(asciigraph.Plot(series, asciigraph.Height(10), asciigraph.Width(70),
		asciigraph.Caption(fmt.Sprintf("damage from cell %d,%d,%d", x, y, z))))
	if n := len(spread); n > 0 {
		fmt.Printf("final damage: %d cells\n\n", spread[n-1])
	}
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
	fmt.Fprintln(w, "ID\tSIZE\tDENSITY\tSEED\tTICKS\tPERIOD\tTIMESTAMP")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%d\t%.2f\t%d\t%d\t%.1f\t%s\n",
			r.ID, r.Size, r.Density, r.Seed, r.Ticks, r.Period, r.Timestamp.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}

// benchFrames drives frames through the null renderer on a simulated 60 Hz
// clock, so ticks happen at the configured rate regardless of wall time.
func benchFrames(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	epoch := time.Now()
	state, err := frame.NewState(cfg.Settings(), epoch)
	if err != nil {
		return err
	}
	r := render.NewNull(cfg.Render.Width, cfg.Render.Height)
	d, err := frame.New(state, r)
	if err != nil {
		return err
	}

	step := time.Second / time.Duration(cfg.Render.FPS)
	var totalTicks, totalDrawn int
	start := time.Now()
	for i := 1; i <= frames; i++ {
		st := d.Frame(epoch.Add(time.Duration(i) * step))
		totalTicks += st.Ticks
		totalDrawn += st.Drawn
	}
	elapsed := time.Since(start)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "lattice\t%d^3\n", cfg.Grid.Size)
	fmt.Fprintf(w, "tick rate\t%.1f/s\n", state.Clock.Rate())
	fmt.Fprintf(w, "ease frames\t%d\n", state.Animator.Frames())
	fmt.Fprintf(w, "frames\t%d\n", frames)
	fmt.Fprintf(w, "ticks\t%d\n", totalTicks)
	fmt.Fprintf(w, "draws\t%d\n", totalDrawn)
	fmt.Fprintf(w, "elapsed\t%v\n", elapsed)
	if elapsed > 0 {
		fmt.Fprintf(w, "frames/sec\t%.0f\n", float64(frames)/elapsed.Seconds())
		fmt.Fprintf(w, "per frame\t%v\n", elapsed/time.Duration(max(frames, 1)))
	}
	return w.Flush()
}

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/artlab/internal/catalog"
	"github.com/san-kum/artlab/internal/config"
	"github.com/san-kum/artlab/internal/design"
	"github.com/san-kum/artlab/internal/export"
	"github.com/san-kum/artlab/internal/palette"
	"github.com/san-kum/artlab/internal/preview"
	"github.com/san-kum/artlab/internal/render"
	"github.com/san-kum/artlab/internal/studio"
)

var (
	configFile string
	preset     string
	outDir     string
	width      int
	height     int
	dpi        float64
	workers    int
	dbFile     string
	// Per-render parameter overrides
	setParams []string
	// History filters
	historyFor string
	historyMax int
	// Preview width
	previewCols int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "artlab",
		Short: "procedural art lab",
		RunE:  runStudio,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "output preset")
	rootCmd.PersistentFlags().StringVar(&outDir, "out", config.DefaultDir, "output directory")
	rootCmd.PersistentFlags().IntVar(&width, "width", config.DefaultWidth, "surface width in pixels")
	rootCmd.PersistentFlags().IntVar(&height, "height", config.DefaultHeight, "surface height in pixels")
	rootCmd.PersistentFlags().Float64Var(&dpi, "dpi", config.DefaultDPI, "resolution for point-sized markers")
	rootCmd.PersistentFlags().IntVar(&workers, "workers", 0, "raster workers (0 = all cores)")
	rootCmd.PersistentFlags().StringVar(&dbFile, "db", "", "render history database (default <out>/artlab.db)")

	renderCmd := &cobra.Command{
		Use:   "render [design]",
		Short: "render one design to PNG",
		Args:  cobra.ExactArgs(1),
		RunE:  runRender,
	}
	renderCmd.Flags().StringArrayVar(&setParams, "set", nil, "parameter override name=value (repeatable)")

	galleryCmd := &cobra.Command{
		Use:   "gallery",
		Short: "render every design",
		RunE:  runGallery,
	}

	designsCmd := &cobra.Command{
		Use:   "designs",
		Short: "list designs",
		RunE:  runDesigns,
	}

	infoCmd := &cobra.Command{
		Use:   "info [design]",
		Short: "describe a design and its parameters",
		Args:  cobra.ExactArgs(1),
		RunE:  runInfo,
	}

	previewCmd := &cobra.Command{
		Use:   "preview [design]",
		Short: "terminal preview without rendering",
		Args:  cobra.ExactArgs(1),
		RunE:  runPreview,
	}
	previewCmd.Flags().IntVar(&previewCols, "cols", 100, "preview width in characters")
	previewCmd.Flags().StringArrayVar(&setParams, "set", nil, "parameter override name=value (repeatable)")

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [design]",
		Short: "export a design as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  runExportSVG,
	}
	exportSVGCmd.Flags().StringArrayVar(&setParams, "set", nil, "parameter override name=value (repeatable)")

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "list recent renders",
		RunE:  runHistory,
	}
	historyCmd.Flags().StringVar(&historyFor, "design", "", "filter by design")
	historyCmd.Flags().IntVar(&historyMax, "limit", 20, "max entries")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list output presets",
		RunE:  runPresets,
	}

	benchCmd := &cobra.Command{
		Use:   "bench [design]",
		Short: "time raster passes at common sizes",
		Args:  cobra.ExactArgs(1),
		RunE:  runBench,
	}

	studioCmd := &cobra.Command{
		Use:   "studio",
		Short: "interactive studio",
		RunE:  runStudio,
	}

	rootCmd.AddCommand(renderCmd, galleryCmd, designsCmd, infoCmd, previewCmd, exportSVGCmd, historyCmd, presetsCmd, benchCmd, studioCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildConfig resolves output settings: flags override the config file, the
// config file overrides the preset, and the preset overrides the defaults.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		if err := config.LoadInto(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Output.Width = width
	}
	if flags.Changed("height") {
		cfg.Output.Height = height
	}
	if flags.Changed("dpi") {
		cfg.Output.DPI = dpi
	}
	if flags.Changed("out") {
		cfg.Output.Dir = outDir
	}
	if flags.Changed("workers") {
		cfg.Output.Workers = workers
	}
	return cfg, nil
}

func optsFrom(cfg *config.Config) render.Options {
	return render.Options{
		Width:   cfg.Output.Width,
		Height:  cfg.Output.Height,
		DPI:     cfg.Output.DPI,
		Workers: cfg.Output.Workers,
	}
}

func openCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	path := dbFile
	if path == "" {
		path = filepath.Join(cfg.Output.Dir, "artlab.db")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	return catalog.Open(path)
}

// applyOverrides pushes --set name=value pairs onto the design.
func applyOverrides(d design.Design) error {
	if len(setParams) == 0 {
		return nil
	}
	tun, ok := d.(design.Tunable)
	if !ok {
		return fmt.Errorf("design %s takes no parameters", d.Slug())
	}
	for _, kv := range setParams {
		name, raw, ok := strings.Cut(kv, "=")
		if !ok {
			return fmt.Errorf("bad override %q, want name=value", kv)
		}
		val, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("bad override %q: %w", kv, err)
		}
		if err := tun.SetParam(name, val); err != nil {
			return err
		}
	}
	return nil
}

func buildDesign(cfg *config.Config, slug string) (design.Design, error) {
	d, err := design.NewRegistry().Get(slug)
	if err != nil {
		return nil, err
	}
	if err := cfg.Apply(d); err != nil {
		return nil, err
	}
	if err := applyOverrides(d); err != nil {
		return nil, err
	}
	return d, nil
}

func runStudio(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	cat, err := openCatalog(cfg)
	if err != nil {
		return err
	}
	defer cat.Close()
	return studio.Run(cfg, cat)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	d, err := buildDesign(cfg, args[0])
	if err != nil {
		return err
	}
	cat, err := openCatalog(cfg)
	if err != nil {
		return err
	}
	defer cat.Close()

	fmt.Printf("rendering %s at %dx%d...\n", d.Slug(), cfg.Output.Width, cfg.Output.Height)
	res, err := render.Save(cmd.Context(), d, optsFrom(cfg), cfg.Output.Dir)
	if err != nil {
		return err
	}
	if err := cat.Record(cmd.Context(), res); err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", time.Duration(res.ElapsedMS)*time.Millisecond)
	fmt.Printf("saved: %s\n", res.Path)
	return nil
}

func runGallery(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	cat, err := openCatalog(cfg)
	if err != nil {
		return err
	}
	defer cat.Close()

	fmt.Printf("rendering the gallery at %dx%d...\n", cfg.Output.Width, cfg.Output.Height)
	start := time.Now()
	for _, d := range design.NewRegistry().All() {
		if err := cfg.Apply(d); err != nil {
			return err
		}
		res, err := render.Save(cmd.Context(), d, optsFrom(cfg), cfg.Output.Dir)
		if err != nil {
			return err
		}
		if err := cat.Record(cmd.Context(), res); err != nil {
			return err
		}
		fmt.Printf("  %-14s %6.2fs  %s\n", res.Design, float64(res.ElapsedMS)/1000, res.Path)
	}
	fmt.Printf("completed in %v\n", time.Since(start).Round(time.Millisecond))
	return nil
}

func runDesigns(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTITLE")
	for _, d := range design.NewRegistry().All() {
		fmt.Fprintf(w, "%s\t%s\n", d.Slug(), d.Title())
	}
	return w.Flush()
}

func runInfo(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	d, err := buildDesign(cfg, args[0])
	if err != nil {
		return err
	}

	win := d.Window()
	fmt.Printf("design: %s\n", d.Slug())
	fmt.Printf("title: %s\n", d.Title())
	fmt.Printf("window: [%g, %g] x [%g, %g]\n", win.X0, win.X1, win.Y0, win.Y1)
	fmt.Printf("background: %s\n", palette.HexString(d.Background()))

	if tun, ok := d.(design.Tunable); ok {
		params := tun.Params()
		names := make([]string, 0, len(params))
		for name := range params {
			names = append(names, name)
		}
		sort.Strings(names)

		fmt.Println("\nparameters:")
		for _, name := range names {
			fmt.Printf("  %-13s %g\n", name, params[name])
		}
	}

	fmt.Printf("\n%s\n", d.Describe())
	return nil
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	d, err := buildDesign(cfg, args[0])
	if err != nil {
		return err
	}

	text, err := preview.Text(d, previewCols)
	if err != nil {
		return err
	}
	fmt.Printf("%s  %s\n\n", d.Slug(), d.Title())
	fmt.Println(text)
	return nil
}

func runExportSVG(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	d, err := buildDesign(cfg, args[0])
	if err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.Output.Dir, 0755); err != nil {
		return err
	}

	path := filepath.Join(cfg.Output.Dir, d.Slug()+".svg")
	fmt.Printf("exporting %s at %dx%d...\n", d.Slug(), cfg.Output.Width, cfg.Output.Height)
	if err := export.SaveSVG(path, d, optsFrom(cfg)); err != nil {
		return err
	}
	fmt.Printf("saved: %s\n", path)
	return nil
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	cat, err := openCatalog(cfg)
	if err != nil {
		return err
	}
	defer cat.Close()

	entries, err := cat.Recent(cmd.Context(), historyFor, historyMax)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("no renders recorded")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDESIGN\tSIZE\tDPI\tTIME\tCREATED\tPATH")
	for _, e := range entries {
		fmt.Fprintf(w, "%d\t%s\t%dx%d\t%.0f\t%v\t%s\t%s\n",
			e.ID,
			e.Design,
			e.Width, e.Height,
			e.DPI,
			time.Duration(e.ElapsedMS)*time.Millisecond,
			e.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			e.Path,
		)
	}
	return w.Flush()
}

func runPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSIZE\tDPI")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%dx%d\t%.0f\n", name, p.Output.Width, p.Output.Height, p.Output.DPI)
	}
	return w.Flush()
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	d, err := buildDesign(cfg, args[0])
	if err != nil {
		return err
	}

	sizes := [][2]int{{480, 270}, {1280, 720}, {1920, 1080}}
	workerCounts := []int{1, runtime.NumCPU()}

	fmt.Printf("benchmarking %s\n\n", d.Slug())
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SIZE\tWORKERS\tTIME\tPX/SEC")

	for _, size := range sizes {
		for _, wc := range workerCounts {
			opts := render.Options{Width: size[0], Height: size[1], DPI: cfg.Output.DPI, Workers: wc}

			start := time.Now()
			if _, err := render.Image(cmd.Context(), d, opts); err != nil {
				return err
			}
			elapsed := time.Since(start)

			px := float64(size[0] * size[1])
			fmt.Fprintf(w, "%dx%d\t%d\t%v\t%.0f\n",
				size[0], size[1], wc, elapsed.Round(time.Microsecond), px/elapsed.Seconds())
		}
	}
	return w.Flush()
}

// boxkit renders CSV or TSV data as a box-drawn table.
//
// Usage:
//
//	boxkit [flags] [file ...]
//
// With no file arguments the table is read from standard input.
//
// Flags:
//
//	-config string    Path to configuration file (default: ~/.config/boxkit/config.toml)
//	-preset string    Box preset (compact|default|report|sheet)
//	-theme string     Border theme name
//	-theme-file path  Load and use a theme from a TOML or YAML file
//	-width string     Width constraint: auto, 40, >=40, <=40, 20..60
//	-height string    Height constraint, same forms as -width
//	-padding int      Cell padding (-1 = from config)
//	-strategy string  Extra-space strategy (first|last|distributed|center)
//	-measurer string  Width measurer (heuristic|ansi|grapheme|runewidth)
//	-title string     Title line(s) above the table
//	-format string    Input format (csv|tsv)
//	-no-header        Treat the first record as data
//	-spreadsheet      First column holds row labels
//	-gallery          Render a sample box in every theme
//	-list-themes      Print the registered theme names
//	-dump-theme name  Print a theme as TOML (or YAML with -yaml)
//	-verbose          Enable verbose logging
//	-version          Print version and exit
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gitlab.com/tinyland/lab/boxkit/pkg/box"
	"gitlab.com/tinyland/lab/boxkit/pkg/config"
	"gitlab.com/tinyland/lab/boxkit/pkg/layout"
	"gitlab.com/tinyland/lab/boxkit/pkg/terminal"
	"gitlab.com/tinyland/lab/boxkit/pkg/theme"
)

var (
	version = "0.1.0"
	commit  = "dev"
	date    = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// options holds the parsed command line.
type options struct {
	configPath  string
	preset      string
	themeName   string
	themeFile   string
	width       string
	height      string
	padding     int
	strategy    string
	measurer    string
	title       string
	format      string
	noHeader    bool
	spreadsheet bool
	gallery     bool
	listThemes  bool
	dumpTheme   string
	yaml        bool
	verbose     bool
	showVersion bool
	files       []string
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("boxkit", flag.ContinueOnError)
	fs.SetOutput(stderr)
	o := &options{}
	fs.StringVar(&o.configPath, "config", "", "Path to configuration file")
	fs.StringVar(&o.preset, "preset", "", "Box preset ("+strings.Join(config.PresetNames(), "|")+")")
	fs.StringVar(&o.themeName, "theme", "", "Border theme name")
	fs.StringVar(&o.themeFile, "theme-file", "", "Load and use a theme from a TOML or YAML file")
	fs.StringVar(&o.width, "width", "", "Width constraint: auto, 40, >=40, <=40, 20..60")
	fs.StringVar(&o.height, "height", "", "Height constraint, same forms as -width")
	fs.IntVar(&o.padding, "padding", -1, "Cell padding (-1 = from config)")
	fs.StringVar(&o.strategy, "strategy", "", "Extra-space strategy (first|last|distributed|center)")
	fs.StringVar(&o.measurer, "measurer", "", "Width measurer (heuristic|ansi|grapheme|runewidth)")
	fs.StringVar(&o.title, "title", "", "Title line(s) above the table")
	fs.StringVar(&o.format, "format", "", "Input format (csv|tsv)")
	fs.BoolVar(&o.noHeader, "no-header", false, "Treat the first record as data")
	fs.BoolVar(&o.spreadsheet, "spreadsheet", false, "First column holds row labels")
	fs.BoolVar(&o.gallery, "gallery", false, "Render a sample box in every theme")
	fs.BoolVar(&o.listThemes, "list-themes", false, "Print the registered theme names")
	fs.StringVar(&o.dumpTheme, "dump-theme", "", "Print a theme as TOML")
	fs.BoolVar(&o.yaml, "yaml", false, "Use YAML for -dump-theme")
	fs.BoolVar(&o.verbose, "verbose", false, "Enable verbose logging")
	fs.BoolVar(&o.showVersion, "version", false, "Print version and exit")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	o.files = fs.Args()
	return o, nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	o, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if o.showVersion {
		fmt.Fprintf(stdout, "boxkit %s (%s) built %s\n", version, commit, date)
		return 0
	}

	cfg, err := loadConfig(o)
	if err != nil {
		fmt.Fprintf(stderr, "failed to load config: %v\n", err)
		return 1
	}

	logLevel, _ := config.ParseLogLevel(cfg.General.LogLevel)
	if o.verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	if dir := cfg.Themes.Dir; dir != "" {
		names, err := theme.LoadDir(dir)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(stderr, "failed to load themes: %v\n", err)
			return 1
		}
		if len(names) > 0 {
			logger.Debug("loaded user themes", "dir", dir, "themes", names)
		}
	}
	if o.themeFile != "" {
		th, err := theme.LoadFile(o.themeFile)
		if err != nil {
			fmt.Fprintf(stderr, "failed to load theme: %v\n", err)
			return 1
		}
		if err := theme.Register(th); err != nil {
			fmt.Fprintf(stderr, "failed to register theme: %v\n", err)
			return 1
		}
		cfg.Box.Theme = th.Name
	}

	caps := terminal.DetectCapabilities()
	logger.Debug("terminal detected",
		"term", caps.Term.String(),
		"tty", caps.TTY,
		"cols", caps.Size.Cols,
		"utf8", caps.UTF8,
	)
	adaptToTerminal(cfg, o, caps, logger)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "invalid config: %v\n", err)
		return 1
	}

	switch {
	case o.listThemes:
		for _, name := range theme.Names() {
			fmt.Fprintln(stdout, name)
		}
		return 0
	case o.dumpTheme != "":
		return dumpTheme(o.dumpTheme, o.yaml, stdout, stderr)
	case o.gallery:
		cols := 0
		if caps.TTY {
			cols = caps.Size.Cols
		}
		fmt.Fprintln(stdout, gallery(theme.Names(), cols))
		return 0
	}

	records, err := readInputs(o.files, stdin, cfg.Input.Format)
	if err != nil {
		fmt.Fprintf(stderr, "failed to read input: %v\n", err)
		return 1
	}
	logger.Debug("input read", "tables", len(records), "format", cfg.Input.Format)

	cons := cfg.Box.Constraints()
	// A table drawn to a terminal is kept within the screen unless the
	// user chose a width.
	if _, auto := cons.Width.(layout.Auto); auto && caps.TTY {
		cons.Width = layout.Max{Value: caps.Size.Cols}
	}

	b := newBuilder(cfg, cons, logger)
	if o.title != "" {
		b.Title(strings.ReplaceAll(o.title, `\n`, "\n"))
	}
	addRecords(b, records, cfg.Input.Header)
	bx, err := b.Build()
	if err != nil {
		fmt.Fprintf(stderr, "failed to build box: %v\n", err)
		return 1
	}
	if err := bx.Render(stringWriter{stdout}); err != nil {
		fmt.Fprintf(stderr, "failed to write output: %v\n", err)
		return 1
	}
	fmt.Fprintln(stdout)
	return 0
}

// loadConfig reads the config file and applies command line overrides on
// top of it.
func loadConfig(o *options) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if o.configPath != "" {
		cfg, err = config.LoadFromFile(o.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}
	if o.preset != "" {
		cfg.Box = config.BoxPreset(o.preset)
	}
	if o.themeName != "" {
		cfg.Box.Theme = o.themeName
	}
	if o.width != "" {
		if err := cfg.Box.Width.UnmarshalText([]byte(o.width)); err != nil {
			return nil, fmt.Errorf("-width: %w", err)
		}
	}
	if o.height != "" {
		if err := cfg.Box.Height.UnmarshalText([]byte(o.height)); err != nil {
			return nil, fmt.Errorf("-height: %w", err)
		}
	}
	if o.padding >= 0 {
		cfg.Box.Padding = o.padding
	}
	if o.strategy != "" {
		if err := cfg.Box.Strategy.UnmarshalText([]byte(o.strategy)); err != nil {
			return nil, fmt.Errorf("-strategy: %w", err)
		}
	}
	if o.measurer != "" {
		cfg.Box.Measurer = o.measurer
	}
	if o.format != "" {
		cfg.Input.Format = o.format
	}
	if o.noHeader {
		cfg.Input.Header = false
	}
	if o.spreadsheet {
		cfg.Box.Spreadsheet = true
	}
	return cfg, nil
}

// adaptToTerminal swaps in an ASCII theme and a CJK-aware measurer when
// output goes to a terminal that needs them and the command line did not
// choose explicitly.
func adaptToTerminal(cfg *config.Config, o *options, caps *terminal.Capabilities, logger *slog.Logger) {
	if !caps.TTY {
		return
	}
	if o.themeName == "" && o.themeFile == "" && caps.SuggestTheme() == "ascii" && cfg.Box.Theme != "ascii" {
		logger.Debug("terminal cannot draw boxes, using ascii", "theme", cfg.Box.Theme)
		cfg.Box.Theme = "ascii"
	}
	if o.measurer == "" && cfg.Box.Measurer == "heuristic" {
		cfg.Box.Measurer = caps.SuggestMeasurer()
	}
}

// newBuilder starts a box builder from the validated configuration.
func newBuilder(cfg *config.Config, cons layout.Constraints, logger *slog.Logger) *box.Builder {
	b := box.New().
		ThemeName(cfg.Box.Theme).
		Width(cons.Width).
		Height(cons.Height).
		Padding(cons.CellPadding).
		Strategy(cons.Strategy).
		Spreadsheet(cons.Spreadsheet).
		Measurer(cons.Measurer).
		Logger(logger)
	if cfg.Box.Ellipsis != "" {
		b.Ellipsis(cfg.Box.Ellipsis)
	}
	return b
}

func dumpTheme(name string, asYAML bool, stdout, stderr io.Writer) int {
	th, ok := theme.Lookup(name)
	if !ok {
		fmt.Fprintf(stderr, "unknown theme: %s (known: %s)\n", name, strings.Join(theme.Names(), ", "))
		return 1
	}
	var (
		data []byte
		err  error
	)
	if asYAML {
		data, err = theme.SaveToYAML(th)
	} else {
		data, err = theme.SaveToTOML(th)
	}
	if err != nil {
		fmt.Fprintf(stderr, "failed to encode theme: %v\n", err)
		return 1
	}
	_, _ = stdout.Write(data)
	return 0
}

// stringWriter adapts an io.Writer to render.Writer.
type stringWriter struct {
	io.Writer
}

func (w stringWriter) WriteString(s string) (int, error) {
	return io.WriteString(w.Writer, s)
}

package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"

	"gitlab.com/tinyland/lab/boxkit/pkg/layout"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"BOXKIT_THEME", "BOXKIT_WIDTH", "BOXKIT_HEIGHT", "BOXKIT_PADDING", "BOXKIT_STRATEGY", "BOXKIT_MEASURER", "BOXKIT_LOG_LEVEL"} {
		t.Setenv(k, "")
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	clearEnv(t)
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}
	if cfg.Box.Theme != "single" {
		t.Errorf("Box.Theme = %q, want single", cfg.Box.Theme)
	}
	c := cfg.Box.Constraints()
	if c.CellPadding != layout.DefaultCellPadding {
		t.Errorf("CellPadding = %d", c.CellPadding)
	}
	if _, ok := c.Width.(layout.Auto); !ok {
		t.Errorf("Width = %#v, want Auto", c.Width)
	}
}

func TestLoadFromReader(t *testing.T) {
	clearEnv(t)
	src := `
[general]
log_level = "debug"

[box]
theme = "double"
width = ">=40"
height = 12
padding = 2
strategy = "center"
measurer = "grapheme"

[input]
format = "tsv"
header = false
`
	cfg, err := LoadFromReader(strings.NewReader(src))
	if err != nil {
		t.Fatalf("LoadFromReader: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.Box.Theme != "double" || cfg.Box.Padding != 2 {
		t.Errorf("box = %+v", cfg.Box)
	}
	if got := cfg.Box.Width.Get(); got != (layout.Min{Value: 40}) {
		t.Errorf("width = %#v, want Min{40}", got)
	}
	if got := cfg.Box.Height.Get(); got != (layout.Exact{Value: 12}) {
		t.Errorf("height = %#v, want Exact{12}", got)
	}
	if cfg.Box.Strategy.Strategy != layout.StrategyCenter {
		t.Errorf("strategy = %s, want center", cfg.Box.Strategy)
	}
	if cfg.Input.Format != "tsv" || cfg.Input.Header {
		t.Errorf("input = %+v", cfg.Input)
	}
	if lvl, _ := ParseLogLevel(cfg.General.LogLevel); lvl != slog.LevelDebug {
		t.Errorf("log level = %v, want debug", lvl)
	}
}

func TestPresetThenOverrides(t *testing.T) {
	clearEnv(t)
	cfg, err := LoadFromReader(strings.NewReader("[box]\npreset = \"sheet\"\npadding = 3\n"))
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Box.Spreadsheet || cfg.Box.Strategy.Strategy != layout.StrategyFirst {
		t.Errorf("sheet preset not applied: %+v", cfg.Box)
	}
	if cfg.Box.Padding != 3 {
		t.Errorf("Padding = %d, want explicit 3", cfg.Box.Padding)
	}
}

func TestLoadFromReaderErrors(t *testing.T) {
	clearEnv(t)
	tests := []struct {
		name, src string
	}{
		{"inverted range", "[box]\nwidth = \"60..20\"\n"},
		{"bad strategy", "[box]\nstrategy = \"sideways\"\n"},
		{"bad width type", "[box]\nwidth = true\n"},
		{"unknown key", "[box]\ncolour = \"red\"\n"},
		{"syntax", "[box\n"},
	}
	for _, tt := range tests {
		if _, err := LoadFromReader(strings.NewReader(tt.src)); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
	_, err := LoadFromReader(strings.NewReader("[box]\nwidth = \"60..20\"\n"))
	if err == nil || !strings.Contains(err.Error(), "exceeds maximum") {
		t.Errorf("inverted range error = %v", err)
	}
}

func TestValidateCollectsErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Box.Theme = "nope"
	cfg.Box.Padding = -1
	cfg.Box.Measurer = "ruler"
	cfg.Input.Format = "xml"
	cfg.General.LogLevel = "loud"
	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate accepted invalid config")
	}
	for _, want := range []string{"box.theme", "box.padding", "box.measurer", "input.format", "general.log_level"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}

func TestEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("BOXKIT_THEME", "heavy")
	t.Setenv("BOXKIT_WIDTH", "20..60")
	t.Setenv("BOXKIT_PADDING", "0")
	t.Setenv("BOXKIT_STRATEGY", "distributed")
	t.Setenv("BOXKIT_MEASURER", "runewidth")
	cfg, err := LoadFromReader(strings.NewReader("[box]\ntheme = \"double\"\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Box.Theme != "heavy" {
		t.Errorf("Theme = %q, want env override heavy", cfg.Box.Theme)
	}
	if got := cfg.Box.Width.Get(); got != (layout.Range{Lo: 20, Hi: 60}) {
		t.Errorf("Width = %#v", got)
	}
	if cfg.Box.Padding != 0 || cfg.Box.Strategy.Strategy != layout.StrategyDistributed || cfg.Box.Measurer != "runewidth" {
		t.Errorf("box = %+v", cfg.Box)
	}
}

func TestEnvOverrideErrors(t *testing.T) {
	for _, kv := range [][2]string{
		{"BOXKIT_WIDTH", "wide"},
		{"BOXKIT_PADDING", "x"},
		{"BOXKIT_STRATEGY", "nope"},
	} {
		clearEnv(t)
		t.Setenv(kv[0], kv[1])
		if _, err := LoadFromReader(strings.NewReader("")); err == nil {
			t.Errorf("%s=%s accepted", kv[0], kv[1])
		}
	}
}

func TestLoadSearchesXDG(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	if err := os.MkdirAll(filepath.Join(dir, "boxkit"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "boxkit", "config.toml"), []byte("[box]\ntheme = \"rounded\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Box.Theme != "rounded" {
		t.Errorf("Theme = %q, want rounded", cfg.Box.Theme)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	clearEnv(t)
	cfg, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Box.Theme != "single" {
		t.Errorf("missing file should yield defaults, got theme %q", cfg.Box.Theme)
	}
}

func TestConfigRoundTrip(t *testing.T) {
	clearEnv(t)
	cfg := DefaultConfig()
	cfg.Box = BoxPreset("report")
	cfg.Box.Width = Constraint{layout.Max{Value: 100}}
	var b strings.Builder
	if err := toml.NewEncoder(&b).Encode(cfg); err != nil {
		t.Fatal(err)
	}
	back, err := LoadFromReader(strings.NewReader(b.String()))
	if err != nil {
		t.Fatalf("reload: %v\n%s", err, b.String())
	}
	if back.Box.Theme != "block3d" || back.Box.Strategy.Strategy != layout.StrategyDistributed {
		t.Errorf("round trip lost preset: %+v", back.Box)
	}
	if got := back.Box.Width.Get(); got != (layout.Max{Value: 100}) {
		t.Errorf("Width = %#v", got)
	}
}

func TestBoxPresets(t *testing.T) {
	for _, name := range PresetNames() {
		cfg := DefaultConfig()
		cfg.Box = BoxPreset(name)
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
		if cfg.Box.Preset != name {
			t.Errorf("BoxPreset(%q).Preset = %q", name, cfg.Box.Preset)
		}
	}
	if BoxPreset("unknown").Preset != "default" {
		t.Error("unknown preset should fall back to default")
	}
}

package config

import "gitlab.com/tinyland/lab/boxkit/pkg/layout"

// BoxPreset returns the box configuration for a named preset.
// If the name is not recognized, the "default" preset is returned.
func BoxPreset(name string) BoxConfig {
	switch name {
	case "compact":
		return compactPreset()
	case "report":
		return reportPreset()
	case "sheet":
		return sheetPreset()
	default:
		return defaultPreset()
	}
}

// PresetNames lists the recognized preset names.
func PresetNames() []string {
	return []string{"compact", "default", "report", "sheet"}
}

// defaultPreset draws single lines with one column of cell padding.
func defaultPreset() BoxConfig {
	return BoxConfig{
		Preset:   "default",
		Theme:    "single",
		Padding:  layout.DefaultCellPadding,
		Measurer: "heuristic",
	}
}

// compactPreset is plain ASCII with no padding, for logs and CI output.
func compactPreset() BoxConfig {
	cfg := defaultPreset()
	cfg.Preset = "compact"
	cfg.Theme = "ascii"
	cfg.Padding = 0
	return cfg
}

// reportPreset uses the raised block3d frame and spreads any extra width
// evenly.
func reportPreset() BoxConfig {
	cfg := defaultPreset()
	cfg.Preset = "report"
	cfg.Theme = "block3d"
	cfg.Strategy = Strategy{layout.StrategyDistributed}
	return cfg
}

// sheetPreset treats the first column as row labels.
//
//	┌─────┬────┬────┐
//	│     │ Q1 │ Q2 │
//	╞═════╪════╪════╡
//	│ row │ 1  │ 2  │
//	└─────┴────┴────┘
func sheetPreset() BoxConfig {
	cfg := defaultPreset()
	cfg.Preset = "sheet"
	cfg.Spreadsheet = true
	cfg.Strategy = Strategy{layout.StrategyFirst}
	return cfg
}

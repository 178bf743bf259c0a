package cli

import (
	"fmt"
	"slices"

	"github.com/codalotl/linediff/internal/diff"
	"github.com/codalotl/linediff/internal/q/cascade"
)

// Config is linediff's configuration, loaded from a cascade of sources and then overridden by explicitly set flags.
type Config struct {
	Sort       bool     `json:"sort"`
	Lowercase  bool     `json:"lowercase"`
	Separators []string `json:"separators"` // every rune of every entry is a separator
	Algorithm  string   `json:"algorithm"`
	Color      string   `json:"color"` // auto, always, or never
	Width      int      `json:"width"` // 0 means detect
	ASCII      bool     `json:"ascii"`
	Format     string   `json:"format"` // table, markdown, or html
}

const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

var colorModes = []string{colorAuto, colorAlways, colorNever}

const (
	formatTable    = "table"
	formatMarkdown = "markdown"
	formatHTML     = "html"
)

var formats = []string{formatTable, formatMarkdown, formatHTML}

const (
	userConfigPath    = ".linediff/config.json"
	projectConfigName = ".linediff.json"
)

// envVars maps config keys to environment variables.
var envVars = map[string]string{
	"sort":       "LINEDIFF_SORT",
	"lowercase":  "LINEDIFF_LOWERCASE",
	"separators": "LINEDIFF_SEPARATORS",
	"algorithm":  "LINEDIFF_ALGORITHM",
	"color":      "LINEDIFF_COLOR",
	"width":      "LINEDIFF_WIDTH",
	"ascii":      "LINEDIFF_ASCII",
	"format":     "LINEDIFF_FORMAT",
}

func defaultConfig() map[string]any {
	return map[string]any{
		"separators": []string{" "},
		"algorithm":  string(diff.AlgorithmMyers),
		"color":      colorAuto,
		"format":     formatTable,
	}
}

// loadConfig loads Config from (low to high) defaults, the user config file, the nearest project config file, and the environment.
func loadConfig() (Config, cascade.Provenances, error) {
	loader := cascade.New().
		WithDefaults(defaultConfig()).
		WithJSONFile(cascade.InUserConfigDirectory(userConfigPath)).
		WithNearestJSONFile(projectConfigName, "").
		WithEnv(envVars)

	var cfg Config
	prov, err := loader.StrictlyLoad(&cfg)
	if err != nil {
		return Config{}, nil, fmt.Errorf("load configuration: %w", err)
	}
	return cfg, prov, nil
}

// validateConfig checks cfg and rewrites Algorithm to its canonical name.
func validateConfig(cfg *Config) error {
	alg, err := diff.ParseAlgorithm(cfg.Algorithm)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	cfg.Algorithm = string(alg)

	if !slices.Contains(colorModes, cfg.Color) {
		return fmt.Errorf("invalid configuration: color must be one of auto, always, never (got %q)", cfg.Color)
	}
	if !slices.Contains(formats, cfg.Format) {
		return fmt.Errorf("invalid configuration: format must be one of table, markdown, html (got %q)", cfg.Format)
	}
	if cfg.Width < 0 {
		return fmt.Errorf("invalid configuration: width must be >= 0 (got %d)", cfg.Width)
	}
	return nil
}

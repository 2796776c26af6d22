// Package config holds the render defaults used by the command line tools. The
// values come from built-in defaults, then an optional YAML file, then
// FIGURE_* environment overrides.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type ViewportConfig struct {
	XMin float64 `yaml:"x_min"`
	XMax float64 `yaml:"x_max"`
	YMin float64 `yaml:"y_min"`
	YMax float64 `yaml:"y_max"`
}

type RenderConfig struct {
	Width     int            `yaml:"width"`
	Height    int            `yaml:"height"`
	Viewport  ViewportConfig `yaml:"viewport"`
	Precision int            `yaml:"precision"`
	OutDir    string         `yaml:"out_dir"`
	PNG       bool           `yaml:"png"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Source bool   `yaml:"source"`
	File   string `yaml:"file"`
}

type Config struct {
	Render  RenderConfig  `yaml:"render"`
	Logging LoggingConfig `yaml:"logging"`
}

// Env var names used as overrides.
const (
	EnvWidth     = "FIGURE_WIDTH"
	EnvHeight    = "FIGURE_HEIGHT"
	EnvPrecision = "FIGURE_PRECISION"
	EnvOutDir    = "FIGURE_OUT_DIR"
	EnvLogLevel  = "FIGURE_LOG_LEVEL"
	EnvLogFormat = "FIGURE_LOG_FORMAT"
	EnvLogFile   = "FIGURE_LOG_FILE"
)

// The defaults reproduce the canvas of the demo figures: 600x400 pixels
// showing [-2, 4] x [-2, 2].
func Defaults() Config {
	return Config{
		Render: RenderConfig{
			Width:     600,
			Height:    400,
			Viewport:  ViewportConfig{XMin: -2, XMax: 4, YMin: -2, YMax: 2},
			Precision: 6,
			OutDir:    ".",
		},
		Logging: LoggingConfig{Level: "info", Format: "console"},
	}
}

// Load the defaults, merge the YAML file at path (if path is non-empty) and
// apply environment overrides. A missing file is an error only when the path
// was given explicitly.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if strings.TrimSpace(path) != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, errors.Wrapf(err, "read config %s", path)
		}
		var fileCfg Config
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return cfg, errors.Wrapf(err, "parse config %s", path)
		}
		mergeInto(&cfg, &fileCfg)
	}
	if err := applyEnvOverrides(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func mergeInto(dst *Config, src *Config) {
	if src.Render.Width != 0 {
		dst.Render.Width = src.Render.Width
	}
	if src.Render.Height != 0 {
		dst.Render.Height = src.Render.Height
	}
	// A viewport is only taken as a whole
	if src.Render.Viewport != (ViewportConfig{}) {
		dst.Render.Viewport = src.Render.Viewport
	}
	if src.Render.Precision != 0 {
		dst.Render.Precision = src.Render.Precision
	}
	if strings.TrimSpace(src.Render.OutDir) != "" {
		dst.Render.OutDir = strings.TrimSpace(src.Render.OutDir)
	}
	dst.Render.PNG = src.Render.PNG

	if strings.TrimSpace(src.Logging.Level) != "" {
		dst.Logging.Level = strings.ToLower(strings.TrimSpace(src.Logging.Level))
	}
	if strings.TrimSpace(src.Logging.Format) != "" {
		dst.Logging.Format = strings.ToLower(strings.TrimSpace(src.Logging.Format))
	}
	dst.Logging.Source = src.Logging.Source
	if strings.TrimSpace(src.Logging.File) != "" {
		dst.Logging.File = strings.TrimSpace(src.Logging.File)
	}
}

func applyEnvOverrides(cfg *Config) error {
	for _, o := range []struct {
		name string
		dst  *int
	}{
		{EnvWidth, &cfg.Render.Width},
		{EnvHeight, &cfg.Render.Height},
		{EnvPrecision, &cfg.Render.Precision},
	} {
		v := strings.TrimSpace(os.Getenv(o.name))
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(err, "%s", o.name)
		}
		*o.dst = n
	}
	if v := strings.TrimSpace(os.Getenv(EnvOutDir)); v != "" {
		cfg.Render.OutDir = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFormat)); v != "" {
		cfg.Logging.Format = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		cfg.Logging.File = v
	}
	return nil
}

// Save writes cfg as YAML.
func Save(cfg Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "encode config")
	}
	return errors.Wrapf(os.WriteFile(path, data, 0o644), "write config %s", path)
}

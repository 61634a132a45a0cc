// Package config loads conversion settings from a YAML file, an optional
// .env file and PDF2DXF_* environment variables, in that order of
// increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/tsawler/pdf2dxf"
	"github.com/tsawler/pdf2dxf/dxf"
	"github.com/tsawler/pdf2dxf/graphicsstate"
	"github.com/tsawler/pdf2dxf/merge"
	"github.com/tsawler/pdf2dxf/shapes"
	"github.com/tsawler/pdf2dxf/text"
)

// Config holds all configuration
type Config struct {
	Layers  LayersConfig `yaml:"layers"`
	Merge   MergeConfig  `yaml:"merge"`
	Shapes  ShapesConfig `yaml:"shapes"`
	Text    TextConfig   `yaml:"text"`
	Paths   PathsConfig  `yaml:"paths"`
	Output  OutputConfig `yaml:"output"`
	Log     LogConfig    `yaml:"log"`
	Workers int          `yaml:"workers"`
}

// LayersConfig selects how path layers are keyed
type LayersConfig struct {
	Policy string `yaml:"policy"` // single, width, color or both
}

// MergeConfig holds line merge tolerances
type MergeConfig struct {
	Snap        float64 `yaml:"snap"`
	AngleTolDeg float64 `yaml:"angle_tol_deg"`
	MinLen      float64 `yaml:"min_len"`
}

// ShapesConfig holds circle and arc detection thresholds
type ShapesConfig struct {
	MaxRadialError       float64 `yaml:"max_radial_error"`
	MinRadius            float64 `yaml:"min_radius"`
	MaxRadius            float64 `yaml:"max_radius"`
	MinPoints            int     `yaml:"min_points"`
	ClosedDist           float64 `yaml:"closed_dist"`
	MinArcAngleDeg       float64 `yaml:"min_arc_angle_deg"`
	AngleMonotonicTolDeg float64 `yaml:"angle_monotonic_tol_deg"`
}

// TextConfig controls text reconstruction and output
type TextConfig struct {
	JoinSameLine bool `yaml:"join_same_line"`
	AsMText      bool `yaml:"as_mtext"`
}

// PathsConfig controls path reconstruction
type PathsConfig struct {
	CurveSteps   int     `yaml:"curve_steps"`
	Scale        float64 `yaml:"scale"`
	KeepRawPaths bool    `yaml:"keep_raw_paths"`
}

// OutputConfig controls the DXF writer
type OutputConfig struct {
	DefaultLayer string `yaml:"default_layer"`
	Version      string `yaml:"version"`
}

// LogConfig controls logging
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads configuration from path (empty means defaults only), applies
// the .env file in the working directory if present, then environment
// overrides, and validates the result.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	if err := LoadEnv(".env"); err != nil {
		return nil, err
	}
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// LoadEnv loads variables from the given .env files without overriding
// variables that are already set. Missing files are ignored.
func LoadEnv(files ...string) error {
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	m := merge.DefaultOptions()
	s := shapes.DefaultOptions()
	t := text.DefaultOptions()
	o := dxf.DefaultOptions()

	return &Config{
		Layers: LayersConfig{Policy: string(graphicsstate.LayerWidth)},
		Merge: MergeConfig{
			Snap:        m.Snap,
			AngleTolDeg: m.AngleTolDeg,
			MinLen:      m.MinLen,
		},
		Shapes: ShapesConfig{
			MaxRadialError:       s.MaxRadialError,
			MinRadius:            s.MinRadius,
			MaxRadius:            s.MaxRadius,
			MinPoints:            s.MinPoints,
			ClosedDist:           s.ClosedDist,
			MinArcAngleDeg:       s.MinArcAngleDeg,
			AngleMonotonicTolDeg: s.AngleMonotonicTolDeg,
		},
		Text: TextConfig{JoinSameLine: t.JoinSameLine},
		Paths: PathsConfig{
			CurveSteps: graphicsstate.DefaultCurveSteps,
			Scale:      1,
		},
		Output: OutputConfig{
			DefaultLayer: o.DefaultLayer,
			Version:      o.Version,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Workers: pdf2dxf.DefaultOptions().Workers,
	}
}

// Validate checks the configuration for invalid values
func (c *Config) Validate() error {
	if _, err := graphicsstate.ParseLayerPolicy(c.Layers.Policy); err != nil {
		return err
	}
	if c.Merge.Snap < 0 {
		return fmt.Errorf("merge.snap must not be negative")
	}
	if c.Merge.AngleTolDeg <= 0 || c.Merge.AngleTolDeg >= 90 {
		return fmt.Errorf("merge.angle_tol_deg must be between 0 and 90")
	}
	if c.Merge.MinLen < 0 {
		return fmt.Errorf("merge.min_len must not be negative")
	}
	if c.Shapes.MaxRadialError <= 0 {
		return fmt.Errorf("shapes.max_radial_error must be positive")
	}
	if c.Shapes.MinRadius < 0 || c.Shapes.MaxRadius <= c.Shapes.MinRadius {
		return fmt.Errorf("shapes radius range [%g, %g] is invalid", c.Shapes.MinRadius, c.Shapes.MaxRadius)
	}
	if c.Shapes.MinPoints < 3 {
		return fmt.Errorf("shapes.min_points must be at least 3")
	}
	if c.Shapes.ClosedDist < 0 || c.Shapes.MinArcAngleDeg <= 0 || c.Shapes.AngleMonotonicTolDeg < 0 {
		return fmt.Errorf("shapes thresholds must be positive")
	}
	if c.Paths.CurveSteps < 1 {
		return fmt.Errorf("paths.curve_steps must be at least 1")
	}
	if c.Paths.Scale <= 0 {
		return fmt.Errorf("paths.scale must be positive")
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1")
	}
	if c.Output.DefaultLayer == "" {
		return fmt.Errorf("output.default_layer must not be empty")
	}
	return nil
}

// Options converts the configuration to converter options
func (c *Config) Options() pdf2dxf.Options {
	policy, err := graphicsstate.ParseLayerPolicy(c.Layers.Policy)
	if err != nil {
		policy = graphicsstate.LayerBoth
	}

	return pdf2dxf.Options{
		LayerPolicy:  policy,
		CurveSteps:   c.Paths.CurveSteps,
		Scale:        c.Paths.Scale,
		KeepRawPaths: c.Paths.KeepRawPaths,
		Merge: merge.Options{
			Snap:        c.Merge.Snap,
			AngleTolDeg: c.Merge.AngleTolDeg,
			MinLen:      c.Merge.MinLen,
		},
		Shapes: shapes.Options{
			MaxRadialError:       c.Shapes.MaxRadialError,
			MinRadius:            c.Shapes.MinRadius,
			MaxRadius:            c.Shapes.MaxRadius,
			MinPoints:            c.Shapes.MinPoints,
			ClosedDist:           c.Shapes.ClosedDist,
			MinArcAngleDeg:       c.Shapes.MinArcAngleDeg,
			AngleMonotonicTolDeg: c.Shapes.AngleMonotonicTolDeg,
		},
		Text: text.Options{
			Scale:        c.Paths.Scale,
			JoinSameLine: c.Text.JoinSameLine,
		},
		Output: dxf.Options{
			DefaultLayer: c.Output.DefaultLayer,
			TextAsMText:  c.Text.AsMText,
			Version:      c.Output.Version,
		},
		Workers: c.Workers,
	}
}

// applyEnvOverrides applies PDF2DXF_* environment variables
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("PDF2DXF_LAYER_POLICY"); v != "" {
		cfg.Layers.Policy = strings.ToLower(v)
	}
	if v := os.Getenv("PDF2DXF_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("PDF2DXF_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv("PDF2DXF_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("PDF2DXF_WORKERS: %w", err)
		}
		cfg.Workers = n
	}
	if v := os.Getenv("PDF2DXF_TEXT_AS_MTEXT"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("PDF2DXF_TEXT_AS_MTEXT: %w", err)
		}
		cfg.Text.AsMText = b
	}
	return nil
}

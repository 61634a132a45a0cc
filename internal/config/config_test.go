package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/pdf2dxf"
	"github.com/tsawler/pdf2dxf/graphicsstate"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfigMatchesOptions(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, pdf2dxf.DefaultOptions(), cfg.Options())
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "width", cfg.Layers.Policy)
	assert.Equal(t, 0.25, cfg.Merge.Snap)
	assert.Equal(t, 12, cfg.Shapes.MinPoints)
	assert.True(t, cfg.Text.JoinSameLine)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
layers:
  policy: both
merge:
  snap: 0.5
shapes:
  min_points: 20
text:
  as_mtext: true
paths:
  keep_raw_paths: true
output:
  version: AC1018
workers: 2
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	opts := cfg.Options()
	assert.Equal(t, graphicsstate.LayerBoth, opts.LayerPolicy)
	assert.Equal(t, 0.5, opts.Merge.Snap)
	assert.Equal(t, 2.0, opts.Merge.AngleTolDeg, "unset keys keep defaults")
	assert.Equal(t, 20, opts.Shapes.MinPoints)
	assert.True(t, opts.Output.TextAsMText)
	assert.True(t, opts.KeepRawPaths)
	assert.Equal(t, "AC1018", opts.Output.Version)
	assert.Equal(t, 2, opts.Workers)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "layers: [oops"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "layers:\n  policy: rainbow\n"))
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("PDF2DXF_LAYER_POLICY", "COLOR")
	t.Setenv("PDF2DXF_LOG_LEVEL", "debug")
	t.Setenv("PDF2DXF_LOG_FORMAT", "json")
	t.Setenv("PDF2DXF_WORKERS", "3")
	t.Setenv("PDF2DXF_TEXT_AS_MTEXT", "true")

	cfg, err := Load(writeConfig(t, "layers:\n  policy: single\n"))
	require.NoError(t, err)
	assert.Equal(t, "color", cfg.Layers.Policy)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 3, cfg.Workers)
	assert.True(t, cfg.Text.AsMText)
}

func TestEnvOverrideErrors(t *testing.T) {
	t.Setenv("PDF2DXF_WORKERS", "many")
	_, err := Load("")
	assert.Error(t, err)

	t.Setenv("PDF2DXF_WORKERS", "")
	t.Setenv("PDF2DXF_TEXT_AS_MTEXT", "maybe")
	_, err = Load("")
	assert.Error(t, err)
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PDF2DXF_TEST_VALUE=from-file\n"), 0o644))
	t.Setenv("PDF2DXF_TEST_VALUE", "")
	os.Unsetenv("PDF2DXF_TEST_VALUE")

	require.NoError(t, LoadEnv(path, filepath.Join(t.TempDir(), "missing.env")))
	assert.Equal(t, "from-file", os.Getenv("PDF2DXF_TEST_VALUE"))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"negative snap", func(c *Config) { c.Merge.Snap = -1 }},
		{"zero angle tolerance", func(c *Config) { c.Merge.AngleTolDeg = 0 }},
		{"negative min length", func(c *Config) { c.Merge.MinLen = -0.1 }},
		{"zero radial error", func(c *Config) { c.Shapes.MaxRadialError = 0 }},
		{"inverted radius range", func(c *Config) { c.Shapes.MaxRadius = 1 }},
		{"too few points", func(c *Config) { c.Shapes.MinPoints = 2 }},
		{"zero arc angle", func(c *Config) { c.Shapes.MinArcAngleDeg = 0 }},
		{"zero curve steps", func(c *Config) { c.Paths.CurveSteps = 0 }},
		{"zero scale", func(c *Config) { c.Paths.Scale = 0 }},
		{"zero workers", func(c *Config) { c.Workers = 0 }},
		{"empty default layer", func(c *Config) { c.Output.DefaultLayer = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

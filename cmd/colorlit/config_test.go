package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/colorlit"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "colorlit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(viper.New(), writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, "upper", cfg.HexCase)
	assert.Equal(t, "omitWhenOpaque", cfg.AlphaInclusion)
	assert.Equal(t, colorlit.DefaultFloatPrecision, cfg.FloatPrecision)
	assert.False(t, cfg.ClampOutOfRange)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, 1024, cfg.CacheSize)

	opts, err := cfg.FormatOptions()
	require.NoError(t, err)
	assert.Equal(t, colorlit.DefaultFormatOptions(), opts)
}

func TestLoadConfig_File(t *testing.T) {
	path := writeConfig(t, heredoc.Doc(`
		hex_case: lower
		alpha_inclusion: always
		float_precision: 2
		float_suffix: f
		clamp_out_of_range: true
		notations: [hex-rgb, float-rgba]
		palette:
		  file: brand.yaml
		  case_insensitive: true
		log:
		  level: debug
		  format: json
	`))

	cfg, err := LoadConfig(viper.New(), path)
	require.NoError(t, err)

	opts, err := cfg.FormatOptions()
	require.NoError(t, err)
	assert.Equal(t, colorlit.FormatOptions{
		HexCase:        colorlit.HexLower,
		Alpha:          colorlit.AlphaAlways,
		FloatPrecision: 2,
		FloatSuffix:    "f",
	}, opts)
	assert.True(t, cfg.ClampOutOfRange)
	assert.Equal(t, PaletteConfig{File: "brand.yaml", CaseInsensitive: true}, cfg.Palette)
	assert.Equal(t, LogConfig{Level: "debug", Format: "json"}, cfg.Log)

	kinds, err := cfg.NotationFilter()
	require.NoError(t, err)
	assert.Equal(t, []colorlit.Notation{colorlit.HexRGB, colorlit.FloatRGBA}, kinds)
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("COLORLIT_HEX_CASE", "lower")
	t.Setenv("COLORLIT_LOG_LEVEL", "error")

	cfg, err := LoadConfig(viper.New(), writeConfig(t, "hex_case: upper\n"))
	require.NoError(t, err)
	assert.Equal(t, "lower", cfg.HexCase, "environment overrides the file")
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "hex case", content: "hex_case: mixed\n"},
		{name: "alpha", content: "alpha_inclusion: sometimes\n"},
		{name: "precision", content: "float_precision: -1\n"},
		{name: "notation", content: "notations: [hex-rbg]\n"},
		{name: "log format", content: "log:\n  format: xml\n"},
		{name: "yaml", content: "hex_case: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(viper.New(), writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}

	_, err := LoadConfig(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err, "an explicit config file must exist")
}

func TestConfig_EngineOptions(t *testing.T) {
	cfg := &Config{ClampOutOfRange: true, Notations: []string{"hex-rgb"}, CacheSize: 8}
	eng := colorlit.New(cfg.EngineOptions(nil)...)

	assert.True(t, eng.Clamp())
	ms := eng.Detect([]byte("#FFFFFF 0.1, 0.2, 0.3"))
	require.Len(t, ms, 1)
	assert.Equal(t, colorlit.HexRGB, ms[0].Kind)
	assert.Equal(t, 8, eng.CacheStats().Capacity)
}

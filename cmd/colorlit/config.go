package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/gogpu/colorlit"
)

// DefaultConfigFileName is looked up in the working directory and in
// $HOME/.config/colorlit when --config is not given.
const DefaultConfigFileName = "colorlit"

// Config is the CLI configuration.
type Config struct {
	HexCase         string        `mapstructure:"hex_case"`
	AlphaInclusion  string        `mapstructure:"alpha_inclusion"`
	FloatPrecision  int           `mapstructure:"float_precision"`
	FloatSuffix     string        `mapstructure:"float_suffix"`
	ClampOutOfRange bool          `mapstructure:"clamp_out_of_range"`
	Notations       []string      `mapstructure:"notations"`
	SkipComments    bool          `mapstructure:"skip_comments"`
	Workers         int           `mapstructure:"workers"`
	CacheSize       int           `mapstructure:"cache_size"`
	Palette         PaletteConfig `mapstructure:"palette"`
	Log             LogConfig     `mapstructure:"log"`
}

// PaletteConfig selects the named color palette.
type PaletteConfig struct {
	// File is a YAML palette; empty means the SVG keywords.
	File            string `mapstructure:"file"`
	CaseInsensitive bool   `mapstructure:"case_insensitive"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// LoadConfig loads configuration from multiple sources with proper priority:
// 1. Command line flags (highest priority)
// 2. Environment variables (COLORLIT_*)
// 3. Config file
// 4. Defaults (lowest priority)
func LoadConfig(v *viper.Viper, cfgFile string) (*Config, error) {
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/colorlit")
		v.SetConfigName(DefaultConfigFileName)
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	v.SetEnvPrefix("COLORLIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("hex_case", "upper")
	v.SetDefault("alpha_inclusion", "omitWhenOpaque")
	v.SetDefault("float_precision", colorlit.DefaultFloatPrecision)
	v.SetDefault("float_suffix", "")
	v.SetDefault("clamp_out_of_range", false)
	v.SetDefault("notations", []string{})
	v.SetDefault("skip_comments", false)
	v.SetDefault("workers", 0) // GOMAXPROCS
	v.SetDefault("cache_size", 1024)

	v.SetDefault("palette.file", "")
	v.SetDefault("palette.case_insensitive", false)

	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "console")
}

// Validate checks values that can be wrong in a config file.
func (c *Config) Validate() error {
	if _, err := c.FormatOptions(); err != nil {
		return err
	}
	if _, err := c.NotationFilter(); err != nil {
		return err
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log.format %q: want console or json", c.Log.Format)
	}
	return nil
}

// FormatOptions converts the formatting keys.
func (c *Config) FormatOptions() (colorlit.FormatOptions, error) {
	hc, err := colorlit.ParseHexCase(c.HexCase)
	if err != nil {
		return colorlit.FormatOptions{}, err
	}
	alpha, err := colorlit.ParseAlphaInclusion(c.AlphaInclusion)
	if err != nil {
		return colorlit.FormatOptions{}, err
	}
	if c.FloatPrecision < 0 {
		return colorlit.FormatOptions{}, fmt.Errorf("float_precision %d must be >= 0", c.FloatPrecision)
	}
	return colorlit.FormatOptions{
		HexCase:        hc,
		Alpha:          alpha,
		FloatPrecision: c.FloatPrecision,
		FloatSuffix:    c.FloatSuffix,
	}, nil
}

// NotationFilter parses the notations key. Nil means every notation.
func (c *Config) NotationFilter() ([]colorlit.Notation, error) {
	return parseNotations(c.Notations)
}

// EngineOptions returns the engine options for this configuration.
func (c *Config) EngineOptions(pal *colorlit.Palette) []colorlit.Option {
	opts := []colorlit.Option{
		colorlit.WithClamp(c.ClampOutOfRange),
		colorlit.WithParseCache(c.CacheSize),
	}
	if pal != nil {
		opts = append(opts, colorlit.WithPalette(pal))
	}
	if kinds, _ := c.NotationFilter(); len(kinds) > 0 {
		opts = append(opts, colorlit.WithNotations(kinds...))
	}
	return opts
}

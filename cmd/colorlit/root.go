package main

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/gogpu/colorlit"
	"github.com/gogpu/colorlit/batch"
)

// app is the state shared by all commands, built once flags are parsed.
type app struct {
	v       *viper.Viper
	cfgFile string

	cfg    *Config
	log    *zap.Logger
	eng    *colorlit.Engine
	format colorlit.FormatOptions
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "colorlit",
		Short: "Find and convert color literals in source code",
		Long: heredoc.Doc(`
			colorlit finds color literals in source files (hex strings, unit
			float lists, named colors, 0x integers and CSS functions) and
			converts them between notations, rewriting only the literal bytes.

			Configuration is read from colorlit.yaml, COLORLIT_* environment
			variables and flags, in increasing priority.
		`),
		Version:       colorlit.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: ./colorlit.yaml)")
	flags.String("hex-case", "upper", "hex digit case (upper, lower)")
	flags.String("alpha", "omitWhenOpaque", "alpha output (omitWhenOpaque, always)")
	flags.Int("precision", colorlit.DefaultFloatPrecision, "decimals written for float notations")
	flags.String("suffix", "", "suffix for float literals, e.g. f")
	flags.Bool("clamp", false, "clamp out-of-range channels instead of rejecting them")
	flags.String("palette", "", "YAML palette file for named colors (default: SVG keywords)")
	flags.Bool("skip-comments", false, "ignore literals inside comments")
	flags.Int("workers", 0, "files processed in parallel (0 = GOMAXPROCS)")
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")
	flags.String("log-format", "console", "log format (console, json)")

	_ = a.v.BindPFlag("hex_case", flags.Lookup("hex-case"))
	_ = a.v.BindPFlag("alpha_inclusion", flags.Lookup("alpha"))
	_ = a.v.BindPFlag("float_precision", flags.Lookup("precision"))
	_ = a.v.BindPFlag("float_suffix", flags.Lookup("suffix"))
	_ = a.v.BindPFlag("clamp_out_of_range", flags.Lookup("clamp"))
	_ = a.v.BindPFlag("palette.file", flags.Lookup("palette"))
	_ = a.v.BindPFlag("skip_comments", flags.Lookup("skip-comments"))
	_ = a.v.BindPFlag("workers", flags.Lookup("workers"))
	_ = a.v.BindPFlag("log.level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("log.format", flags.Lookup("log-format"))

	root.AddCommand(
		newScanCmd(a),
		newConvertCmd(a),
		newParseCmd(a),
		newFormatCmd(a),
		newNameCmd(a),
		newPaletteCmd(a),
		newNotationsCmd(a),
		newWatchCmd(a),
	)
	return root
}

// init loads configuration and builds the logger and engine.
func (a *app) init() error {
	cfg, err := LoadConfig(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if a.log, err = newLogger(cfg.Log); err != nil {
		return err
	}
	colorlit.SetLogger(a.log)

	pal, err := loadPalette(cfg.Palette)
	if err != nil {
		return err
	}
	if a.format, err = cfg.FormatOptions(); err != nil {
		return err
	}
	a.eng = colorlit.New(cfg.EngineOptions(pal)...)

	a.log.Debug("configuration loaded",
		zap.String("config_file", a.v.ConfigFileUsed()),
		zap.Int("palette_size", pal.Len()),
		zap.Bool("clamp", cfg.ClampOutOfRange))
	return nil
}

// processor returns a batch processor for the current configuration.
func (a *app) processor() *batch.Processor {
	return batch.New(a.eng,
		batch.WithWorkers(a.cfg.Workers),
		batch.WithSkipComments(a.cfg.SkipComments))
}

// request builds a conversion request with the configured formatting.
func (a *app) request(target colorlit.Notation) colorlit.ConversionRequest {
	return colorlit.ConversionRequest{Target: target, Format: a.format}
}

package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/colorlit"
)

// paletteFile is the YAML palette format:
//
//	case_insensitive: true
//	colors:
//	  primary: "#6200EE"
//	  surface: "0.071, 0.071, 0.071"
//	  accent: rgb(255, 87, 34)
//
// Values use any notation colorlit can parse except named constants.
type paletteFile struct {
	CaseInsensitive bool              `yaml:"case_insensitive"`
	Colors          map[string]string `yaml:"colors"`
}

// loadPalette reads a palette file. An empty path returns the default
// palette, case-folded when cfg asks for it.
func loadPalette(cfg PaletteConfig) (*colorlit.Palette, error) {
	if cfg.File == "" {
		if cfg.CaseInsensitive {
			return colorlit.NewPalette(colorlit.DefaultPalette().Entries(), colorlit.CaseInsensitive()), nil
		}
		return colorlit.DefaultPalette(), nil
	}
	data, err := os.ReadFile(cfg.File)
	if err != nil {
		return nil, fmt.Errorf("palette: %w", err)
	}
	return parsePalette(data, cfg.CaseInsensitive)
}

func parsePalette(data []byte, caseInsensitive bool) (*colorlit.Palette, error) {
	var pf paletteFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("palette: %w", err)
	}

	// Values are parsed without a palette so entries cannot refer to each other.
	eng := colorlit.New(colorlit.WithPalette(colorlit.NewPalette(nil)))
	entries := make(map[string]colorlit.Color, len(pf.Colors))
	for name, text := range pf.Colors {
		c, _, err := eng.Parse(text)
		if err != nil {
			return nil, fmt.Errorf("palette entry %q: %w", name, err)
		}
		entries[name] = c
	}

	var opts []colorlit.PaletteOption
	if caseInsensitive || pf.CaseInsensitive {
		opts = append(opts, colorlit.CaseInsensitive())
	}
	return colorlit.NewPalette(entries, opts...), nil
}

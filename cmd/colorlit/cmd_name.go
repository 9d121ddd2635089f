package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/MakeNowJust/heredoc"
	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"github.com/gogpu/colorlit"
)

func newNameCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "name <identifier|color>",
		Short: "Look up a named color, or name a color",
		Long: heredoc.Doc(`
			With a palette identifier, print its color. With any other color
			literal, print the closest palette name. Unknown identifiers get
			suggestions.
		`),
		Example: heredoc.Doc(`
			colorlit name cornflowerblue
			colorlit name '#FE6347'
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pal := a.eng.Palette()
			text := strings.TrimSpace(args[0])
			w := cmd.OutOrStdout()

			if c, ok := pal.Lookup(text); ok {
				fmt.Fprintf(w, "%s\t%s\n", text, hexARGB(c))
				return nil
			}

			c, kind, err := a.eng.Parse(text)
			if err != nil {
				if kind == colorlit.NamedConstant {
					return fmt.Errorf("%q is not in the palette%s", text, didYouMean(suggest(text, pal.Names())))
				}
				return err
			}
			name, ok := pal.Nearest(c)
			if !ok {
				return fmt.Errorf("palette is empty")
			}
			fmt.Fprintf(w, "%s\t%s\n", name, hexARGB(c))
			return nil
		},
	}
}

func newPaletteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "palette [search]",
		Short: "List the named colors of the palette",
		Example: heredoc.Doc(`
			colorlit palette
			colorlit palette blu
			colorlit --palette brand.yaml palette
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pal := a.eng.Palette()
			names := pal.Names()
			if len(args) == 1 {
				names = names[:0:0]
				for _, m := range fuzzy.Find(args[0], pal.Names()) {
					names = append(names, m.Str)
				}
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, name := range names {
				c, _ := pal.Lookup(name)
				fmt.Fprintf(tw, "%s\t%s\n", name, hexARGB(c))
			}
			return tw.Flush()
		},
	}
}

func newNotationsCmd(_ *app) *cobra.Command {
	examples := map[colorlit.Notation]string{
		colorlit.HexRGBA:        `#80FF5722 (alpha first)`,
		colorlit.HexRGB:         `#FF5722`,
		colorlit.HexRGBNoPrefix: `"FF5722" (whole quoted string)`,
		colorlit.FloatRGBA:      `0.384, 0.000, 0.933, 0.500`,
		colorlit.FloatRGB:       `0.384, 0.000, 0.933`,
		colorlit.NamedConstant:  `Color.tomato, "tomato", color: tomato;`,
		colorlit.HexLiteral:     `0xFF6200EE`,
		colorlit.CSSRGB:         `rgb(255, 87, 34)`,
		colorlit.CSSHSL:         `hsl(14, 100%, 57%)`,
		colorlit.ByteRGB:        `QColor(255, 87, 34), color.RGBA{255, 87, 34, 255}`,
		colorlit.ByteARGB:       `Color.FromArgb(128, 255, 87, 34)`,
		colorlit.FloatLabeled:   `red: 1.000, green: 0.341, blue: 0.133`,
	}

	return &cobra.Command{
		Use:   "notations",
		Short: "List supported notations in priority order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, n := range colorlit.Notations() {
				fmt.Fprintf(tw, "%s\t%s\n", n, examples[n])
			}
			return tw.Flush()
		},
	}
}

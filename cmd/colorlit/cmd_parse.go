package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/gogpu/colorlit"
)

func newParseCmd(a *app) *cobra.Command {
	var as string

	cmd := &cobra.Command{
		Use:   "parse <text>",
		Short: "Parse one color literal and show its channels",
		Long: heredoc.Doc(`
			Parse a single literal, as an editor does for a selection. The
			notation is detected unless --as is given. Unlike scan, every
			problem with the literal is reported.
		`),
		Example: heredoc.Doc(`
			colorlit parse '#80FF5722'
			colorlit parse --as float-rgb '0.384, 0.000, 0.933'
		`),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			c, kind, err := a.parse(as, text)
			if err != nil {
				return err
			}

			r, g, b, al := c.Channels()
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "kind:  %s\n", kind)
			fmt.Fprintf(w, "rgba:  %s, %s, %s, %s\n", unit(r), unit(g), unit(b), unit(al))
			fmt.Fprintf(w, "argb:  %s\n", hexARGB(c))
			if name, ok := a.eng.Palette().Nearest(c); ok {
				fmt.Fprintf(w, "name:  %s\n", name)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&as, "as", "", "parse as this notation instead of detecting it")
	return cmd
}

func newFormatCmd(a *app) *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "format --to <notation> <text>",
		Short: "Convert one color literal and print it",
		Example: heredoc.Doc(`
			colorlit format --to float-rgba '#80FF5722'
			colorlit format --to hex-rgb --hex-case lower 'rgb(52, 152, 219)'
		`),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := parseNotation(to)
			if err != nil {
				return err
			}
			c, _, err := a.parse("", strings.Join(args, " "))
			if err != nil {
				return err
			}
			text, err := a.eng.Format(c, target, a.format)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
	cmd.Flags().StringVar(&to, "to", "", "target notation (see 'colorlit notations')")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

// parse parses text, as the named notation when as is set.
func (a *app) parse(as, text string) (colorlit.Color, colorlit.Notation, error) {
	if as == "" {
		return a.eng.Parse(text)
	}
	kind, err := parseNotation(as)
	if err != nil {
		return colorlit.Color{}, 0, err
	}
	c, err := a.eng.ParseAs(kind, strings.TrimSpace(text))
	return c, kind, err
}

func unit(v float64) string {
	return strconv.FormatFloat(v, 'f', colorlit.DefaultFloatPrecision, 64)
}

package main

import (
	"fmt"
	"io"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
)

const stdinName = "<stdin>"

func newScanCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "scan [files...]",
		Short: "List the color literals in files",
		Long: heredoc.Doc(`
			List every color literal found in the given files, or in standard
			input when no file is given. Each line shows the position, the
			notation, the literal text and the color as #AARRGGBB.
		`),
		Example: heredoc.Doc(`
			colorlit scan src/theme.rs
			colorlit scan --output yaml --skip-comments styles/*.css
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := newPrinter(cmd.OutOrStdout(), output)
			if err != nil {
				return err
			}

			if len(args) == 0 {
				src, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return err
				}
				ms, err := a.processor().ScanSource(stdinName, src)
				if err != nil {
					return err
				}
				return p.print(newRecords(stdinName, src, ms))
			}

			results, err := a.processor().Scan(cmd.Context(), args)
			if err != nil {
				return err
			}
			recs := []record{}
			failed := 0
			for _, r := range results {
				if r.Err != nil {
					failed++
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", r.Path, r.Err)
					continue
				}
				recs = append(recs, newRecords(r.Path, r.Input, r.Matches)...)
			}
			if err := p.print(recs); err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files could not be scanned", failed, len(results))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format (text, yaml, json)")
	return cmd
}

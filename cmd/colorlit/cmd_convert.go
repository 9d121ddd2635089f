package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/gogpu/colorlit"
	"github.com/gogpu/colorlit/batch"
	"github.com/gogpu/colorlit/internal/preview"
)

func newConvertCmd(a *app) *cobra.Command {
	var (
		to    string
		from  []string
		write bool
		diff  bool
	)

	cmd := &cobra.Command{
		Use:   "convert --to <notation> [files...]",
		Short: "Convert color literals to another notation",
		Long: heredoc.Doc(`
			Convert color literals to the target notation. Only the bytes of
			each literal change.

			Without --write the changes are shown as a diff and no file is
			modified. With no files, standard input is converted to standard
			output.
		`),
		Example: heredoc.Doc(`
			colorlit convert --to float-rgba --from hex-rgb,hex-rgba src/theme.rs
			colorlit convert --to hex-rgb --write --alpha always assets/*.css
			echo 'fill: #FF5722;' | colorlit convert --to css-rgb
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := parseNotation(to)
			if err != nil {
				return err
			}
			kinds, err := parseNotations(from)
			if err != nil {
				return err
			}
			req := a.request(target)

			if len(args) == 0 {
				return a.convertStdin(cmd, kinds, req)
			}

			results, err := a.processor().Convert(cmd.Context(), args, kinds, req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			var errs []error
			changed, edits := 0, 0
			for _, r := range results {
				if r.Err != nil {
					errs = append(errs, fmt.Errorf("%s: %w", r.Path, r.Err))
					continue
				}
				if !r.Changed() {
					continue
				}
				changed++
				edits += len(r.Edits)
				if diff || !write {
					fmt.Fprint(out, preview.Diff(r.Path, r.Input, r.Output))
				}
			}

			if write {
				if err := batch.Write(results); err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "%d literals rewritten in %d files\n", edits, changed)
			}
			return errors.Join(errs...)
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "target notation (see 'colorlit notations')")
	cmd.Flags().StringSliceVar(&from, "from", nil, "only convert these notations (default: all)")
	cmd.Flags().BoolVarP(&write, "write", "w", false, "write the result back to the files")
	cmd.Flags().BoolVar(&diff, "diff", false, "print the diff even with --write")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func (a *app) convertStdin(cmd *cobra.Command, kinds []colorlit.Notation, req colorlit.ConversionRequest) error {
	src, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return err
	}
	out, _, err := a.processor().ConvertSource(stdinName, src, kinds, req)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}

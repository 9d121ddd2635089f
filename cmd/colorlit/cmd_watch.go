package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"time"

	"github.com/MakeNowJust/heredoc"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// watchDebounce coalesces the bursts of events editors produce on save.
const watchDebounce = 100 * time.Millisecond

func newWatchCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "watch <files...>",
		Short: "Rescan files whenever they are saved",
		Long: heredoc.Doc(`
			Scan the files, then rescan each one whenever it changes on disk
			until interrupted.
		`),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := newPrinter(cmd.OutOrStdout(), output)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return a.watch(ctx, p, args, nil)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format (text, yaml, json)")
	return cmd
}

// watch scans paths once and again after every write until ctx ends.
// ready, when non-nil, is closed once the watcher is installed.
func (a *app) watch(ctx context.Context, p *printer, paths []string, ready chan<- struct{}) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	// Watch directories: editors often replace files rather than write them.
	watched := make([]string, 0, len(paths))
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		watched = append(watched, abs)
		if err := watcher.Add(filepath.Dir(abs)); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
		a.scanFile(p, path)
	}
	if ready != nil {
		close(ready)
	}
	a.log.Info("watching files", zap.Int("files", len(paths)))

	pending := make(map[string]*time.Timer)
	fire := make(chan string)
	defer func() {
		for _, t := range pending {
			t.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			i := slices.Index(watched, ev.Name)
			if i < 0 {
				continue
			}
			path := paths[i]
			if t, ok := pending[path]; ok {
				t.Reset(watchDebounce)
				continue
			}
			pending[path] = time.AfterFunc(watchDebounce, func() {
				select {
				case fire <- path:
				case <-ctx.Done():
				}
			})

		case path := <-fire:
			delete(pending, path)
			a.scanFile(p, path)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			a.log.Warn("watch error", zap.Error(err))
		}
	}
}

// scanFile prints the matches of one file; failures are logged, not fatal.
func (a *app) scanFile(p *printer, path string) {
	src, err := os.ReadFile(path)
	if err != nil {
		a.log.Warn("file skipped", zap.String("path", path), zap.Error(err))
		return
	}
	ms, err := a.processor().ScanSource(path, src)
	if err != nil {
		a.log.Warn("file skipped", zap.String("path", path), zap.Error(err))
		return
	}
	if err := p.print(newRecords(path, src, ms)); err != nil {
		a.log.Warn("print failed", zap.Error(err))
	}
}

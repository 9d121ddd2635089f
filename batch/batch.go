// Package batch scans and rewrites color literals across many files
// concurrently.
package batch

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/gogpu/colorlit"
	"github.com/gogpu/colorlit/internal/parallel"
	"github.com/gogpu/colorlit/syntax"
)

// Result is the outcome for one file.
type Result struct {
	Path    string
	Matches []colorlit.Match
	// Edits and Output are set by Convert. Output is nil when nothing changed.
	Edits  []colorlit.Edit
	Input  []byte
	Output []byte
	Err    error
}

// Changed reports whether converting the file produced a different buffer.
func (r Result) Changed() bool {
	return r.Output != nil
}

// Option configures a Processor.
type Option func(*Processor)

// WithWorkers sets the number of files processed at once.
// Zero or negative means GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(p *Processor) {
		p.workers = n
	}
}

// WithSkipComments leaves literals inside comments alone.
func WithSkipComments(skip bool) Option {
	return func(p *Processor) {
		p.skipComments = skip
	}
}

// Processor runs an Engine over files.
type Processor struct {
	eng          *colorlit.Engine
	workers      int
	skipComments bool
}

// New returns a Processor using eng.
func New(eng *colorlit.Engine, opts ...Option) *Processor {
	p := &Processor{eng: eng}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// engineFor returns the engine to use for one source buffer.
func (p *Processor) engineFor(name string, src []byte) (*colorlit.Engine, error) {
	if !p.skipComments {
		return p.eng, nil
	}
	spans, err := syntax.Comments(name, src)
	if err != nil {
		return nil, err
	}
	return p.eng.With(colorlit.WithSkipSpans(spans)), nil
}

// ScanSource detects the literals in src. name selects the comment syntax
// when comments are skipped.
func (p *Processor) ScanSource(name string, src []byte) ([]colorlit.Match, error) {
	eng, err := p.engineFor(name, src)
	if err != nil {
		return nil, err
	}
	return eng.Detect(src), nil
}

// ConvertSource converts the literals of the from kinds in src.
func (p *Processor) ConvertSource(name string, src []byte, from []colorlit.Notation, req colorlit.ConversionRequest) ([]byte, []colorlit.Edit, error) {
	eng, err := p.engineFor(name, src)
	if err != nil {
		return nil, nil, err
	}
	return eng.Rewrite(src, from, req)
}

// Scan detects literals in every file. Results are in the order of paths;
// per-file failures are reported in Result.Err. The returned error is
// non-nil only when ctx ends first.
func (p *Processor) Scan(ctx context.Context, paths []string) ([]Result, error) {
	return p.run(ctx, "scan", paths, func(r *Result) {
		r.Matches, r.Err = p.ScanSource(r.Path, r.Input)
	})
}

// Convert computes the rewritten content of every file without touching
// the files. Use Write to persist the results.
func (p *Processor) Convert(ctx context.Context, paths []string, from []colorlit.Notation, req colorlit.ConversionRequest) ([]Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return p.run(ctx, "convert", paths, func(r *Result) {
		out, edits, err := p.ConvertSource(r.Path, r.Input, from, req)
		if err != nil {
			r.Err = err
			return
		}
		r.Edits = edits
		if len(edits) > 0 {
			r.Output = out
		}
	})
}

func (p *Processor) run(ctx context.Context, op string, paths []string, fn func(r *Result)) ([]Result, error) {
	log := colorlit.Logger()
	start := time.Now()

	results := make([]Result, len(paths))
	pool := parallel.NewPool(min(p.workers, max(len(paths), 1)))
	defer pool.Close()

	err := pool.Run(ctx, len(paths), func(_ context.Context, i int) {
		r := &results[i]
		r.Path = paths[i]
		r.Input, r.Err = os.ReadFile(r.Path)
		if r.Err == nil {
			fn(r)
		}
		if r.Err != nil {
			log.Warn("file skipped", zap.String("op", op), zap.String("path", r.Path), zap.Error(r.Err))
		}
	})

	matches, edits, failed := 0, 0, 0
	for _, r := range results {
		matches += len(r.Matches)
		edits += len(r.Edits)
		if r.Err != nil {
			failed++
		}
	}
	log.Info("batch done",
		zap.String("op", op),
		zap.Int("files", len(paths)),
		zap.Int("failed", failed),
		zap.Int("matches", matches),
		zap.Int("edits", edits),
		zap.Duration("elapsed", time.Since(start)))

	if err != nil {
		return results, fmt.Errorf("batch %s: %w", op, err)
	}
	return results, nil
}

// Write saves the output of every changed result, keeping file modes.
// It stops at the first failure.
func Write(results []Result) error {
	for _, r := range results {
		if r.Err != nil || !r.Changed() {
			continue
		}
		info, err := os.Stat(r.Path)
		if err != nil {
			return fmt.Errorf("batch write: %w", err)
		}
		if err := os.WriteFile(r.Path, r.Output, info.Mode().Perm()); err != nil {
			return fmt.Errorf("batch write: %w", err)
		}
		colorlit.Logger().Debug("file rewritten", zap.String("path", r.Path), zap.Int("edits", len(r.Edits)))
	}
	return nil
}

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/colorlit"
)

// record is one match in machine-readable output.
type record struct {
	File   string `json:"file" yaml:"file"`
	Line   int    `json:"line" yaml:"line"`
	Column int    `json:"column" yaml:"column"`
	Offset int    `json:"offset" yaml:"offset"`
	Kind   string `json:"kind" yaml:"kind"`
	Text   string `json:"text" yaml:"text"`
	Hex    string `json:"hex,omitempty" yaml:"hex,omitempty"`
	Error  string `json:"error,omitempty" yaml:"error,omitempty"`
}

// lineIndex maps byte offsets to 1-based line and column numbers.
type lineIndex []int

func newLineIndex(src []byte) lineIndex {
	idx := lineIndex{0}
	for i, c := range src {
		if c == '\n' {
			idx = append(idx, i+1)
		}
	}
	return idx
}

func (idx lineIndex) position(off int) (line, col int) {
	i := sort.Search(len(idx), func(i int) bool { return idx[i] > off }) - 1
	return i + 1, off - idx[i] + 1
}

// hexARGB renders a color as #AARRGGBB for listings.
func hexARGB(c colorlit.Color) string {
	r, g, b, a := c.Bytes()
	return fmt.Sprintf("#%02X%02X%02X%02X", a, r, g, b)
}

func newRecords(file string, src []byte, ms []colorlit.Match) []record {
	idx := newLineIndex(src)
	out := make([]record, 0, len(ms))
	for _, m := range ms {
		line, col := idx.position(m.Start)
		r := record{File: file, Line: line, Column: col, Offset: m.Start, Kind: m.Kind.String(), Text: m.Text}
		if m.Err != nil {
			r.Error = m.Err.Error()
		} else {
			r.Hex = hexARGB(m.Color)
		}
		out = append(out, r)
	}
	return out
}

// printer writes scan results in one of the output formats.
type printer struct {
	w       io.Writer
	format  string
	profile termenv.Profile
}

// newPrinter returns a printer for format. Swatches are drawn only when w
// is a color terminal.
func newPrinter(w io.Writer, format string) (*printer, error) {
	switch format {
	case "text", "yaml", "json":
	default:
		return nil, fmt.Errorf("unknown output format %q%s", format, didYouMean(suggest(format, []string{"text", "yaml", "json"})))
	}
	p := &printer{w: w, format: format, profile: termenv.Ascii}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		p.profile = termenv.EnvColorProfile()
	}
	return p, nil
}

func (p *printer) swatch(hex string) string {
	if p.profile == termenv.Ascii {
		return ""
	}
	// termenv wants #RRGGBB; listings carry alpha first.
	return " " + p.profile.String("  ").Background(p.profile.Color("#"+hex[3:])).String()
}

func (p *printer) print(recs []record) error {
	switch p.format {
	case "json":
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return enc.Encode(recs)
	case "yaml":
		enc := yaml.NewEncoder(p.w)
		enc.SetIndent(2)
		if err := enc.Encode(recs); err != nil {
			return err
		}
		return enc.Close()
	}

	var sb strings.Builder
	for _, r := range recs {
		fmt.Fprintf(&sb, "%s:%d:%d\t%s\t%s\t", r.File, r.Line, r.Column, r.Kind, r.Text)
		if r.Error != "" {
			sb.WriteString("error: " + r.Error)
		} else {
			sb.WriteString("→ " + r.Hex + p.swatch(r.Hex))
		}
		sb.WriteString("\n")
	}
	_, err := io.WriteString(p.w, sb.String())
	return err
}

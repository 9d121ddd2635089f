package colorlit

import (
	"math"
	"sort"
	"sync"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"

	"github.com/gogpu/colorlit/internal/cache"
)

// nearestCacheSize bounds the memoized Nearest answers per palette.
const nearestCacheSize = 1024

// Palette is an immutable mapping from identifier text to Color.
// It is built once and shared read-only; lookups are safe for concurrent use.
type Palette struct {
	entries map[string]Color
	names   []string // sorted, original spelling
	fold    bool
	nearest *cache.Cache[[3]float64, string]
}

// PaletteOption configures a Palette during creation.
type PaletteOption func(*Palette)

// CaseInsensitive makes lookups fold case, so "Red", "RED" and "red" all
// resolve to the same entry.
func CaseInsensitive() PaletteOption {
	return func(p *Palette) {
		p.fold = true
	}
}

// NewPalette builds a palette from name → color entries.
// The map is copied; later changes to entries do not affect the palette.
// With CaseInsensitive, names that fold to the same key keep the
// lexically smallest spelling.
func NewPalette(entries map[string]Color, opts ...PaletteOption) *Palette {
	p := &Palette{nearest: cache.New[[3]float64, string](nearestCacheSize)}
	for _, opt := range opts {
		opt(p)
	}
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)

	p.entries = make(map[string]Color, len(entries))
	p.names = make([]string, 0, len(names))
	for _, name := range names {
		key := p.key(name)
		if _, dup := p.entries[key]; dup {
			continue
		}
		p.entries[key] = entries[name]
		p.names = append(p.names, name)
	}
	return p
}

var (
	defaultPaletteOnce sync.Once
	defaultPalette     *Palette
)

// DefaultPalette returns the SVG 1.1 color keyword palette ("red",
// "cornflowerblue", ...). It is built on first use and shared.
func DefaultPalette() *Palette {
	defaultPaletteOnce.Do(func() {
		entries := make(map[string]Color, len(colornames.Map))
		for name, c := range colornames.Map {
			entries[name] = FromBytes(c.R, c.G, c.B, c.A)
		}
		defaultPalette = NewPalette(entries)
	})
	return defaultPalette
}

// Lookup returns the color registered under name.
func (p *Palette) Lookup(name string) (Color, bool) {
	if p == nil {
		return Color{}, false
	}
	c, ok := p.entries[p.key(name)]
	return c, ok
}

// Len returns the number of entries.
func (p *Palette) Len() int {
	if p == nil {
		return 0
	}
	return len(p.entries)
}

// Names returns the entry names in sorted order.
func (p *Palette) Names() []string {
	if p == nil {
		return nil
	}
	out := make([]string, len(p.names))
	copy(out, p.names)
	return out
}

// Entries returns a copy of the palette keyed by original spelling, ready
// to be rebuilt with different options.
func (p *Palette) Entries() map[string]Color {
	if p == nil {
		return nil
	}
	out := make(map[string]Color, len(p.names))
	for _, name := range p.names {
		out[name] = p.entries[p.key(name)]
	}
	return out
}

// CaseFolding reports whether lookups ignore case.
func (p *Palette) CaseFolding() bool {
	return p != nil && p.fold
}

// Nearest returns the name whose color is closest to c, ignoring alpha.
// An exact 8-bit match wins; otherwise the smallest CIEDE2000 distance.
// Ties resolve to the lexically smallest name. Returns false for an empty
// palette.
func (p *Palette) Nearest(c Color) (string, bool) {
	if p.Len() == 0 {
		return "", false
	}

	key := [3]float64{c.r, c.g, c.b}
	return p.nearest.GetOrCreate(key, func() string { return p.closest(c) }), true
}

func (p *Palette) closest(c Color) string {
	r, g, b, _ := c.Bytes()
	target := colorful.Color{R: c.r, G: c.g, B: c.b}

	best := ""
	bestDist := math.Inf(1)
	for _, name := range p.names {
		e := p.entries[p.key(name)]
		er, eg, eb, _ := e.Bytes()
		if er == r && eg == g && eb == b {
			return name
		}
		d := target.DistanceCIEDE2000(colorful.Color{R: e.r, G: e.g, B: e.b})
		if d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

func (p *Palette) key(name string) string {
	if p.fold {
		// A Caser is stateful, so each lookup gets its own.
		return cases.Fold().String(name)
	}
	return name
}

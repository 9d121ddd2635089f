package colorlit

import (
	"strings"

	"go.uber.org/zap"
)

// Engine detects, parses, formats and rewrites color literals.
//
// An Engine is immutable after creation and safe for concurrent use.
// Scans of independent buffers share no mutable state; the optional parse
// cache is internally synchronized.
type Engine struct {
	opts    options
	palette *Palette
	kinds   map[Notation]bool // nil reports every notation
	cache   *parseCache
}

// New creates an Engine.
//
// Example:
//
//	// Defaults: SVG palette, out-of-range values rejected.
//	eng := colorlit.New()
//
//	// Clamp out-of-range channels, only report hex literals.
//	eng := colorlit.New(colorlit.WithClamp(true),
//	    colorlit.WithNotations(colorlit.HexRGB, colorlit.HexRGBA))
func New(opts ...Option) *Engine {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return newEngine(o, nil)
}

// newEngine builds an engine from resolved options. The parent's parse cache
// is reused when nothing that changes a parse result differs.
func newEngine(o options, parent *Engine) *Engine {
	e := &Engine{opts: o, palette: o.palette}
	if e.palette == nil {
		e.palette = DefaultPalette()
	}
	if len(o.notations) > 0 {
		e.kinds = make(map[Notation]bool, len(o.notations))
		for _, k := range o.notations {
			e.kinds[k] = true
		}
	}

	switch {
	case o.cacheSize == 0:
	case parent != nil && parent.cache != nil && parent.palette == e.palette &&
		parent.opts.clamp == o.clamp && parent.opts.cacheSize == o.cacheSize:
		e.cache = parent.cache
	default:
		e.cache = newParseCache(o.cacheSize)
	}
	return e
}

// With returns a new Engine with opts applied on top of e's options.
// Useful to derive a per-buffer engine, e.g. with WithSkipSpans. The derived
// engine shares e's parse cache unless opts change the palette, clamping or
// cache size.
func (e *Engine) With(opts ...Option) *Engine {
	o := e.opts
	for _, opt := range opts {
		opt(&o)
	}
	return newEngine(o, e)
}

// Palette returns the palette used for named constants.
func (e *Engine) Palette() *Palette {
	return e.palette
}

// Clamp reports whether out-of-range channels are clamped.
func (e *Engine) Clamp() bool {
	return e.opts.clamp
}

// ParseAs parses text as the given notation. This is the explicit,
// parse-on-demand path: every failure is returned to the caller.
//
// The shape is checked strictly. FloatRGB wants three values and HexRGB
// six digits, while Format writes the alpha form of those notations for a
// translucent color under AlphaOmitWhenOpaque ("#80FF5722" for HexRGB).
// Use Parse to read back formatted text whose shape is not known; it
// classifies "#80FF5722" as HexRGBA.
func (e *Engine) ParseAs(kind Notation, text string) (Color, error) {
	p, ok := parsers[kind]
	if !ok {
		return Color{}, &UnknownNotationError{Kind: kind}
	}
	if e.cache == nil {
		return p(kind, text, e.opts.clamp, e.palette)
	}
	return e.cache.getOrParse(kind, text, func() (Color, error) {
		return p(kind, text, e.opts.clamp, e.palette)
	})
}

// Parse determines the notation of a user-selected span and parses it.
// Surrounding whitespace and one pair of matching quotes are ignored.
func (e *Engine) Parse(text string) (Color, Notation, error) {
	text = trimSelection(text)
	kind := classify(text, e.palette)
	if kind == 0 {
		return Color{}, 0, &SyntaxError{Text: text, Reason: "not a recognized color notation"}
	}
	c, err := e.ParseAs(kind, text)
	if err != nil {
		Logger().Debug("explicit parse failed",
			zap.String("text", text), zap.Stringer("kind", kind), zap.Error(err))
		return Color{}, kind, err
	}
	return c, kind, nil
}

// trimSelection strips whitespace and a pair of matching quotes.
func trimSelection(text string) string {
	text = strings.TrimSpace(text)
	if len(text) >= 2 && isQuote(text[0]) && text[len(text)-1] == text[0] {
		text = text[1 : len(text)-1]
	}
	return strings.TrimSpace(text)
}

// defaultEngine backs the package-level helpers.
var defaultEngine = New()

// Parse parses a user-selected span with the default Engine.
func Parse(text string) (Color, Notation, error) {
	return defaultEngine.Parse(text)
}

// ParseAs parses text as kind with the default Engine.
func ParseAs(kind Notation, text string) (Color, error) {
	return defaultEngine.ParseAs(kind, text)
}

// Detect returns every match in buf found by the default Engine.
func Detect(buf []byte) []Match {
	return defaultEngine.Detect(buf)
}

package colorlit

import (
	"fmt"
	"strings"
)

// HexCase selects the letter case of formatted hex digits.
type HexCase uint8

const (
	// HexUpper writes "#FF5722".
	HexUpper HexCase = iota
	// HexLower writes "#ff5722".
	HexLower
)

// String returns "upper" or "lower".
func (h HexCase) String() string {
	if h == HexLower {
		return "lower"
	}
	return "upper"
}

// ParseHexCase parses "upper" or "lower".
func ParseHexCase(s string) (HexCase, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "upper", "":
		return HexUpper, nil
	case "lower":
		return HexLower, nil
	}
	return 0, fmt.Errorf("colorlit: unknown hex case %q (want upper or lower)", s)
}

// AlphaInclusion controls whether formatted output carries an alpha component.
type AlphaInclusion uint8

const (
	// AlphaOmitWhenOpaque writes alpha iff the color is not opaque, whatever
	// the target's nominal shape. No information is lost.
	AlphaOmitWhenOpaque AlphaInclusion = iota
	// AlphaAlways writes alpha for every notation that can carry it, opaque
	// or not: "#FFFF5722", "rgba(255, 87, 34, 1)". Named constants have no
	// alpha form and are written without it.
	AlphaAlways
)

// String returns "omitWhenOpaque" or "always".
func (a AlphaInclusion) String() string {
	if a == AlphaAlways {
		return "always"
	}
	return "omitWhenOpaque"
}

// ParseAlphaInclusion parses "always" or "omitWhenOpaque" (case-insensitive,
// dashes and underscores ignored).
func ParseAlphaInclusion(s string) (AlphaInclusion, error) {
	key := strings.NewReplacer("-", "", "_", "").Replace(strings.ToLower(strings.TrimSpace(s)))
	switch key {
	case "always":
		return AlphaAlways, nil
	case "omitwhenopaque", "":
		return AlphaOmitWhenOpaque, nil
	}
	return 0, fmt.Errorf("colorlit: unknown alpha inclusion %q (want always or omitWhenOpaque)", s)
}

// DefaultFloatPrecision is the number of decimals written for float notations.
const DefaultFloatPrecision = 3

// FormatOptions controls the Formatter's textual output.
type FormatOptions struct {
	HexCase HexCase
	Alpha   AlphaInclusion
	// FloatPrecision is the fixed number of decimals; trailing zeros are kept.
	FloatPrecision int
	// FloatSuffix is appended to every float literal, e.g. "f" for C#.
	FloatSuffix string
}

// DefaultFormatOptions returns upper-case hex, alpha omitted when opaque and
// three float decimals.
func DefaultFormatOptions() FormatOptions {
	return FormatOptions{
		HexCase:        HexUpper,
		Alpha:          AlphaOmitWhenOpaque,
		FloatPrecision: DefaultFloatPrecision,
	}
}

// ConversionRequest names the target notation and how to render it.
type ConversionRequest struct {
	Target Notation
	Format FormatOptions
}

// NewConversionRequest returns a request for target with default formatting.
func NewConversionRequest(target Notation) ConversionRequest {
	return ConversionRequest{Target: target, Format: DefaultFormatOptions()}
}

// Validate checks the target and options.
func (r ConversionRequest) Validate() error {
	if !r.Target.Valid() {
		return &UnknownNotationError{Kind: r.Target}
	}
	if r.Format.FloatPrecision < 0 {
		return fmt.Errorf("colorlit: float precision %d must be >= 0", r.Format.FloatPrecision)
	}
	return nil
}

// Option configures an Engine during creation.
//
// Example:
//
//	eng := colorlit.New(
//	    colorlit.WithClamp(true),
//	    colorlit.WithNotations(colorlit.HexRGB, colorlit.HexRGBA),
//	)
type Option func(*options)

// options holds optional configuration for Engine creation.
type options struct {
	palette   *Palette
	clamp     bool
	notations []Notation
	skip      []Span
	cacheSize int
}

// defaultOptions returns the default engine options.
func defaultOptions() options {
	return options{
		palette: nil, // DefaultPalette() if nil
	}
}

// WithPalette sets the palette used to recognize and format named constants.
func WithPalette(p *Palette) Option {
	return func(o *options) {
		o.palette = p
	}
}

// WithClamp clamps out-of-range channels instead of rejecting them.
func WithClamp(clamp bool) Option {
	return func(o *options) {
		o.clamp = clamp
	}
}

// WithNotations restricts the notations the Detector reports. Overlap
// arbitration still considers every notation, so a restricted scan never
// reports a fragment of a longer literal of another kind.
func WithNotations(kinds ...Notation) Option {
	return func(o *options) {
		o.notations = append([]Notation(nil), kinds...)
	}
}

// WithSkipSpans drops matches overlapping any of the given spans.
// Typically the comment spans returned by the syntax package.
func WithSkipSpans(spans []Span) Option {
	return func(o *options) {
		o.skip = append([]Span(nil), spans...)
	}
}

// WithParseCache memoizes parse results for up to size distinct literals.
// A size of 0 disables the cache.
func WithParseCache(size int) Option {
	return func(o *options) {
		if size > 0 {
			o.cacheSize = size
		}
	}
}

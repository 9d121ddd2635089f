// Package colorlit detects, parses and rewrites color literals in source text.
//
// # Overview
//
// colorlit scans a text buffer for color expressions in several notations,
// parses each into a canonical [Color] and renders it back in any other
// notation, replacing exactly the matched bytes. It is the engine behind
// editor "convert color under cursor" commands; the editor supplies the
// buffer and applies the returned edits.
//
// # Quick Start
//
//	import "github.com/gogpu/colorlit"
//
//	eng := colorlit.New()
//
//	// Find every literal
//	for m := range eng.Matches(src) {
//	    fmt.Println(m.Start, m.Kind, m.Text)
//	}
//
//	// Convert all hex literals to unit floats
//	out, _, err := eng.Rewrite(src,
//	    []colorlit.Notation{colorlit.HexRGB, colorlit.HexRGBA},
//	    colorlit.NewConversionRequest(colorlit.FloatRGBA))
//
// # Notations
//
//   - FloatRGB / FloatRGBA: "0.384, 0.000, 0.933" and "0.0, 0.0, 0.0, 0.50"
//   - HexRGB: "#FF5722"
//   - HexRGBA: "#80FF5722", alpha FIRST (AARRGGBB)
//   - HexRGBNoPrefix: "FFFFFF" as the whole content of a quoted string
//   - NamedConstant: a [Palette] identifier (SVG keywords by default) used
//     as a color: Color.tomato, "tomato" or color: tomato;
//   - HexLiteral: 0xRRGGBB and 0xAARRGGBB integer literals
//   - CSSRGB / CSSHSL: rgb(), rgba(), hsl(), hsla()
//   - ByteRGB / ByteARGB: 0-255 constructor arguments such as
//     QColor(98, 0, 238) or Color.FromArgb(128, 0, 0, 0)
//   - FloatLabeled: red: 0.384, green: 0.000, blue: 0.933
//
// # Overlaps
//
// The scan runs once, left to right. Among candidates starting at the same
// offset the longest wins; equal lengths are broken by [Priority]. Malformed
// candidates (a five digit hex run, a five value float list) are skipped;
// only explicit [Engine.Parse] calls report them.
//
// # Rewriting
//
// [Apply] applies edits in descending offset order so that earlier edits
// never shift later ones. Bytes outside the edited spans are preserved.
package colorlit

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)

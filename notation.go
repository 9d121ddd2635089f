package colorlit

import "strings"

// Notation identifies the textual form a color literal was written in.
// Every consumer switches on the tag explicitly.
type Notation uint8

const (
	// FloatRGB is three comma-separated unit floats: "0.384, 0.000, 0.933".
	FloatRGB Notation = iota + 1
	// FloatRGBA is four comma-separated unit floats, alpha last.
	FloatRGBA
	// HexRGB is "#RRGGBB".
	HexRGB
	// HexRGBA is "#AARRGGBB" (alpha first), with or without the '#'.
	HexRGBA
	// HexRGBNoPrefix is "RRGGBB" without '#'.
	HexRGBNoPrefix
	// NamedConstant is an identifier from a Palette.
	NamedConstant
	// HexLiteral is an integer literal "0xRRGGBB" or "0xAARRGGBB".
	HexLiteral
	// CSSRGB is "rgb(r, g, b)" or "rgba(r, g, b, a)" with 0-255 channels.
	CSSRGB
	// CSSHSL is "hsl(h, s%, l%)" or "hsla(h, s%, l%, a)".
	CSSHSL
	// ByteRGB is three or four 0-255 integers, alpha last, as written in
	// constructor arguments: color.RGBA{98, 0, 238, 255}, QColor(3, 218, 198).
	ByteRGB
	// ByteARGB is four 0-255 integers, alpha first: Color.FromArgb(128, 0, 0, 0).
	ByteARGB
	// FloatLabeled is unit floats with channel labels:
	// "red: 0.384, green: 0.000, blue: 0.933" with an optional "alpha:" or
	// "opacity:" fourth value.
	FloatLabeled
)

// Priority is the fixed order used to break ties between equally long
// candidates starting at the same offset. Earlier entries win.
var Priority = [...]Notation{
	HexRGBA,
	HexRGB,
	HexRGBNoPrefix,
	FloatRGBA,
	FloatRGB,
	NamedConstant,
	HexLiteral,
	CSSRGB,
	CSSHSL,
	ByteRGB,
	ByteARGB,
	FloatLabeled,
}

var notationNames = map[Notation]string{
	FloatRGB:       "float-rgb",
	FloatRGBA:      "float-rgba",
	HexRGB:         "hex-rgb",
	HexRGBA:        "hex-rgba",
	HexRGBNoPrefix: "hex-rgb-bare",
	NamedConstant:  "named",
	HexLiteral:     "hex-int",
	CSSRGB:         "css-rgb",
	CSSHSL:         "css-hsl",
	ByteRGB:        "byte-rgb",
	ByteARGB:       "byte-argb",
	FloatLabeled:   "float-labeled",
}

// String returns the notation's canonical name, e.g. "hex-rgba".
func (n Notation) String() string {
	if s, ok := notationNames[n]; ok {
		return s
	}
	return "unknown"
}

// Valid reports whether n is a supported notation.
func (n Notation) Valid() bool {
	_, ok := notationNames[n]
	return ok
}

// HasAlpha reports whether the notation's nominal shape carries alpha.
func (n Notation) HasAlpha() bool {
	switch n {
	case FloatRGBA, HexRGBA, ByteARGB:
		return true
	default:
		return false
	}
}

// CanCarryAlpha reports whether the notation has a written form with an
// alpha component. Only named constants cannot express alpha.
func (n Notation) CanCarryAlpha() bool {
	return n.Valid() && n != NamedConstant
}

// IsHex reports whether the notation is one of the hexadecimal forms.
func (n Notation) IsHex() bool {
	switch n {
	case HexRGB, HexRGBA, HexRGBNoPrefix, HexLiteral:
		return true
	default:
		return false
	}
}

// IsFloat reports whether the notation is a unit float list.
func (n Notation) IsFloat() bool {
	return n == FloatRGB || n == FloatRGBA || n == FloatLabeled
}

// IsByte reports whether the notation is a list of 0-255 integers.
func (n Notation) IsByte() bool {
	return n == ByteRGB || n == ByteARGB
}

// rank returns the tie-break position of n in Priority.
func (n Notation) rank() int {
	for i, p := range Priority {
		if p == n {
			return i
		}
	}
	return len(Priority)
}

// Notations returns all supported notations in priority order.
func Notations() []Notation {
	out := make([]Notation, len(Priority))
	copy(out, Priority[:])
	return out
}

// ParseNotation maps a name such as "hex-rgba" to its Notation.
// Matching ignores case and accepts '_' in place of '-'.
func ParseNotation(name string) (Notation, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for n, s := range notationNames {
		if s == key {
			return n, nil
		}
	}
	return 0, &UnknownNotationError{Name: name}
}

// NotationNames returns the canonical names in priority order.
func NotationNames() []string {
	out := make([]string, 0, len(Priority))
	for _, n := range Priority {
		out = append(out, n.String())
	}
	return out
}

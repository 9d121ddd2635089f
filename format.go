package colorlit

import (
	"math"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Format renders c in the given notation using the default palette for
// named constants. It fails only with *UnknownNotationError.
func Format(c Color, kind Notation, opts FormatOptions) (string, error) {
	return format(c, kind, opts, DefaultPalette())
}

// Format renders c in the given notation, resolving named constants
// against the engine's palette.
func (e *Engine) Format(c Color, kind Notation, opts FormatOptions) (string, error) {
	return format(c, kind, opts, e.palette)
}

func format(c Color, kind Notation, opts FormatOptions, pal *Palette) (string, error) {
	if opts.FloatPrecision < 0 {
		opts.FloatPrecision = 0
	}
	withAlpha := includeAlpha(c, kind, opts)

	switch kind {
	case HexRGB, HexRGBA:
		return "#" + hexDigits(c, withAlpha, opts.HexCase), nil
	case HexRGBNoPrefix:
		return hexDigits(c, withAlpha, opts.HexCase), nil
	case HexLiteral:
		return "0x" + hexDigits(c, withAlpha, opts.HexCase), nil
	case FloatRGB, FloatRGBA:
		return formatFloats(c, withAlpha, opts), nil
	case CSSRGB:
		return formatCSSRGB(c, withAlpha, opts), nil
	case CSSHSL:
		return formatCSSHSL(c, withAlpha, opts), nil
	case ByteRGB:
		return formatBytes(c, false, withAlpha), nil
	case ByteARGB:
		return formatBytes(c, true, true), nil
	case FloatLabeled:
		return formatLabeled(c, withAlpha, opts), nil
	case NamedConstant:
		if name, ok := pal.Nearest(c); ok {
			return name, nil
		}
		// An empty palette cannot name anything; fall back to hex.
		return "#" + hexDigits(c, withAlpha, opts.HexCase), nil
	}
	return "", &UnknownNotationError{Kind: kind}
}

// includeAlpha applies the alpha inclusion policy. Named constants never
// carry alpha whatever the policy.
func includeAlpha(c Color, kind Notation, opts FormatOptions) bool {
	if !kind.CanCarryAlpha() {
		return false
	}
	if opts.Alpha == AlphaAlways {
		return true
	}
	return !opaqueIn(c, kind, opts.FloatPrecision)
}

// opaqueIn reports whether alpha renders as fully opaque in kind: 0xFF for
// hex and named notations, 1 at the configured precision for decimal ones.
func opaqueIn(c Color, kind Notation, prec int) bool {
	switch kind {
	case FloatRGB, FloatRGBA, FloatLabeled, CSSRGB, CSSHSL:
		scale := math.Pow10(prec)
		return math.Round(c.a*scale) >= scale
	}
	return c.Opaque()
}

// hexDigits writes RRGGBB, or AARRGGBB (alpha first) when withAlpha is set.
func hexDigits(c Color, withAlpha bool, hc HexCase) string {
	const upper = "0123456789ABCDEF"
	const lower = "0123456789abcdef"
	digits := upper
	if hc == HexLower {
		digits = lower
	}

	r, g, b, a := c.Bytes()
	var buf [8]byte
	out := buf[:0]
	put := func(v uint8) {
		out = append(out, digits[v>>4], digits[v&0x0F])
	}
	if withAlpha {
		put(a)
	}
	put(r)
	put(g)
	put(b)
	return string(out)
}

// formatFloat writes v with a fixed number of decimals, keeping trailing
// zeros: 0.384, 1.000.
func formatFloat(v float64, opts FormatOptions) string {
	return strconv.FormatFloat(v, 'f', opts.FloatPrecision, 64) + opts.FloatSuffix
}

func formatFloats(c Color, withAlpha bool, opts FormatOptions) string {
	parts := []string{formatFloat(c.r, opts), formatFloat(c.g, opts), formatFloat(c.b, opts)}
	if withAlpha {
		parts = append(parts, formatFloat(c.a, opts))
	}
	return strings.Join(parts, ", ")
}

// formatLabeled writes "red: 0.384, green: 0.000, blue: 0.933", with
// ", alpha: 0.500" appended when withAlpha is set.
func formatLabeled(c Color, withAlpha bool, opts FormatOptions) string {
	var sb strings.Builder
	sb.WriteString("red: " + formatFloat(c.r, opts))
	sb.WriteString(", green: " + formatFloat(c.g, opts))
	sb.WriteString(", blue: " + formatFloat(c.b, opts))
	if withAlpha {
		sb.WriteString(", alpha: " + formatFloat(c.a, opts))
	}
	return sb.String()
}

// formatBytes writes "98, 0, 238" or "98, 0, 238, 255". alphaFirst puts
// alpha in front and implies withAlpha.
func formatBytes(c Color, alphaFirst, withAlpha bool) string {
	r, g, b, a := c.Bytes()
	vals := make([]string, 0, 4)
	if alphaFirst {
		vals = append(vals, strconv.Itoa(int(a)))
	}
	vals = append(vals, strconv.Itoa(int(r)), strconv.Itoa(int(g)), strconv.Itoa(int(b)))
	if withAlpha && !alphaFirst {
		vals = append(vals, strconv.Itoa(int(a)))
	}
	return strings.Join(vals, ", ")
}

// formatAlpha writes a CSS alpha value with the configured precision but
// without trailing zeros: 0.5, 0.25, 1.
func formatAlpha(a float64, prec int) string {
	s := strconv.FormatFloat(a, 'f', prec, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}
	return s
}

func formatCSSRGB(c Color, withAlpha bool, opts FormatOptions) string {
	r, g, b, _ := c.Bytes()
	var sb strings.Builder
	if withAlpha {
		sb.WriteString("rgba(")
	} else {
		sb.WriteString("rgb(")
	}
	sb.WriteString(strconv.Itoa(int(r)))
	sb.WriteString(", ")
	sb.WriteString(strconv.Itoa(int(g)))
	sb.WriteString(", ")
	sb.WriteString(strconv.Itoa(int(b)))
	if withAlpha {
		sb.WriteString(", ")
		sb.WriteString(formatAlpha(c.a, opts.FloatPrecision))
	}
	sb.WriteString(")")
	return sb.String()
}

func formatCSSHSL(c Color, withAlpha bool, opts FormatOptions) string {
	h, s, l := colorful.Color{R: c.r, G: c.g, B: c.b}.Hsl()
	if math.IsNaN(h) {
		h = 0
	}
	hue := int(math.RoundToEven(h)) % 360

	var sb strings.Builder
	if withAlpha {
		sb.WriteString("hsla(")
	} else {
		sb.WriteString("hsl(")
	}
	sb.WriteString(strconv.Itoa(hue))
	sb.WriteString(", ")
	sb.WriteString(strconv.Itoa(int(math.RoundToEven(s * 100))))
	sb.WriteString("%, ")
	sb.WriteString(strconv.Itoa(int(math.RoundToEven(l * 100))))
	sb.WriteString("%")
	if withAlpha {
		sb.WriteString(", ")
		sb.WriteString(formatAlpha(c.a, opts.FloatPrecision))
	}
	sb.WriteString(")")
	return sb.String()
}

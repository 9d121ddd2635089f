package colorlit

import (
	"math"
	"slices"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// parser turns the text of one notation family into a Color.
// The clamp flag selects clamping over rejection for out-of-range values.
type parser func(kind Notation, text string, clamp bool, pal *Palette) (Color, error)

// parsers maps every notation to the parser of its family.
var parsers = map[Notation]parser{
	FloatRGB:       parseFloatList,
	FloatRGBA:      parseFloatList,
	HexRGB:         parseHexString,
	HexRGBA:        parseHexString,
	HexRGBNoPrefix: parseHexString,
	NamedConstant:  parseNamed,
	HexLiteral:     parseHexLiteral,
	CSSRGB:         parseCSSRGB,
	CSSHSL:         parseCSSHSL,
	ByteRGB:        parseByteList,
	ByteARGB:       parseByteList,
	FloatLabeled:   parseLabeled,
}

// makeColor applies the clamp policy.
func makeColor(r, g, b, a float64, clamp bool) (Color, error) {
	if clamp {
		return NewColorClamped(r, g, b, a)
	}
	return NewColor(r, g, b, a)
}

// --- hex -------------------------------------------------------------------

// decodeHex decodes 6 (RRGGBB) or 8 (AARRGGBB, alpha first) hex digits.
// offset is added to error positions so they refer to the caller's text.
func decodeHex(full, digits string, offset int) (Color, error) {
	for i := 0; i < len(digits); i++ {
		if _, ok := hexVal(digits[i]); !ok {
			return Color{}, &MalformedHexError{Text: full, Digits: len(digits), Pos: offset + i}
		}
	}

	var a uint8 = 0xFF
	switch len(digits) {
	case 6:
	case 8:
		a = hexByte(digits[0:2])
		digits = digits[2:]
	default:
		return Color{}, &MalformedHexError{Text: full, Digits: len(digits), Pos: -1}
	}
	return FromBytes(hexByte(digits[0:2]), hexByte(digits[2:4]), hexByte(digits[4:6]), a), nil
}

// parseHexString parses "#RRGGBB", "RRGGBB" and "#AARRGGBB"/"AARRGGBB".
func parseHexString(kind Notation, text string, _ bool, _ *Palette) (Color, error) {
	digits, prefixed := strings.CutPrefix(text, "#")
	offset := 0
	if prefixed {
		offset = 1
	}
	c, err := decodeHex(text, digits, offset)
	if err != nil {
		return Color{}, err
	}

	switch kind {
	case HexRGB:
		if !prefixed || len(digits) != 6 {
			return Color{}, &SyntaxError{Kind: kind, Text: text, Reason: "want #RRGGBB"}
		}
	case HexRGBNoPrefix:
		if prefixed || len(digits) != 6 {
			return Color{}, &SyntaxError{Kind: kind, Text: text, Reason: "want RRGGBB without '#'"}
		}
	case HexRGBA:
		if len(digits) != 8 {
			return Color{}, &SyntaxError{Kind: kind, Text: text, Reason: "want #AARRGGBB"}
		}
	}
	return c, nil
}

// parseHexLiteral parses integer literals "0xRRGGBB" and "0xAARRGGBB".
func parseHexLiteral(kind Notation, text string, _ bool, _ *Palette) (Color, error) {
	if len(text) < 2 || text[0] != '0' || (text[1] != 'x' && text[1] != 'X') {
		return Color{}, &SyntaxError{Kind: kind, Text: text, Reason: "want 0x prefix"}
	}
	return decodeHex(text, text[2:], 2)
}

// hexVal returns the value of a hex digit.
func hexVal(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

// hexByte decodes two already validated hex digits.
func hexByte(s string) uint8 {
	hi, _ := hexVal(s[0])
	lo, _ := hexVal(s[1])
	return hi<<4 | lo
}

func isHexDigit(c byte) bool {
	_, ok := hexVal(c)
	return ok
}

// --- float lists -----------------------------------------------------------

// parseFloatList parses "0.384, 0.000, 0.933" (FloatRGB) and
// "0.384, 0.000, 0.933, 0.25" (FloatRGBA). Literals may carry an f/F suffix.
func parseFloatList(kind Notation, text string, clamp bool, _ *Palette) (Color, error) {
	parts := strings.Split(text, ",")
	want := 3
	if kind == FloatRGBA {
		want = 4
	}
	if len(parts) != want {
		return Color{}, &SyntaxError{
			Kind:   kind,
			Text:   text,
			Reason: "want " + strconv.Itoa(want) + " values, got " + strconv.Itoa(len(parts)),
		}
	}

	vals := [4]float64{0, 0, 0, 1}
	for i, p := range parts {
		v, ok := parseUnitLiteral(strings.TrimSpace(p))
		if !ok {
			return Color{}, &SyntaxError{Kind: kind, Text: text, Reason: "invalid decimal literal " + strconv.Quote(strings.TrimSpace(p))}
		}
		vals[i] = v
	}
	return makeColor(vals[0], vals[1], vals[2], vals[3], clamp)
}

// parseUnitLiteral parses a decimal literal with an optional f/F suffix.
// Signs and exponents are not accepted.
func parseUnitLiteral(s string) (float64, bool) {
	s = strings.TrimSuffix(strings.TrimSuffix(s, "f"), "F")
	if s == "" {
		return 0, false
	}
	digits := 0
	dots := 0
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] >= '0' && s[i] <= '9':
			digits++
		case s[i] == '.':
			dots++
		default:
			return 0, false
		}
	}
	if digits == 0 || dots > 1 {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// labels are the channel labels of FloatLabeled, in order. The fourth
// channel accepts either name.
var labels = [...][]string{{"red"}, {"green"}, {"blue"}, {"alpha", "opacity"}}

// parseLabeled parses "red: 0.384, green: 0.000, blue: 0.933" with an
// optional fourth "alpha:" or "opacity:" value.
func parseLabeled(kind Notation, text string, clamp bool, _ *Palette) (Color, error) {
	parts := strings.Split(text, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return Color{}, &SyntaxError{Kind: kind, Text: text, Reason: "want 3 or 4 labeled values"}
	}

	vals := [4]float64{0, 0, 0, 1}
	for i, p := range parts {
		label, value, ok := strings.Cut(p, ":")
		label = strings.TrimSpace(label)
		if !ok || !slices.Contains(labels[i], label) {
			return Color{}, &SyntaxError{Kind: kind, Text: text, Reason: "want label " + strings.Join(labels[i], " or ")}
		}
		v, ok := parseUnitLiteral(strings.TrimSpace(value))
		if !ok {
			return Color{}, &SyntaxError{Kind: kind, Text: text, Reason: "invalid decimal literal " + strconv.Quote(strings.TrimSpace(value))}
		}
		vals[i] = v
	}
	return makeColor(vals[0], vals[1], vals[2], vals[3], clamp)
}

// --- byte lists ------------------------------------------------------------

var byteChannels = [...]string{ChannelRed, ChannelGreen, ChannelBlue, ChannelAlpha}

// parseByteList parses "98, 0, 238" and "98, 0, 238, 255" (ByteRGB, alpha
// last) or "128, 0, 0, 0" (ByteARGB, alpha first).
func parseByteList(kind Notation, text string, clamp bool, _ *Palette) (Color, error) {
	parts := strings.Split(text, ",")
	switch {
	case kind == ByteARGB && len(parts) != 4:
		return Color{}, &SyntaxError{Kind: kind, Text: text, Reason: "want 4 values, alpha first"}
	case kind == ByteRGB && len(parts) != 3 && len(parts) != 4:
		return Color{}, &SyntaxError{Kind: kind, Text: text, Reason: "want 3 or 4 values"}
	}

	vals := [4]float64{0, 0, 0, 1}
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" || len(p) > 3 || strings.Trim(p, "0123456789") != "" {
			return Color{}, &SyntaxError{Kind: kind, Text: text, Reason: "invalid integer " + strconv.Quote(p)}
		}
		n, _ := strconv.Atoi(p)

		ch := i
		if kind == ByteARGB {
			ch = (i + 3) % 4
		}
		v := float64(n) / 255
		if n > 255 {
			if !clamp {
				return Color{}, &OutOfRangeError{Channel: byteChannels[ch], Value: v}
			}
			v = 1
		}
		vals[ch] = v
	}
	return makeColor(vals[0], vals[1], vals[2], vals[3], clamp)
}

// --- named -----------------------------------------------------------------

func parseNamed(kind Notation, text string, _ bool, pal *Palette) (Color, error) {
	if c, ok := pal.Lookup(text); ok {
		return c, nil
	}
	return Color{}, &SyntaxError{Kind: kind, Text: text, Reason: "not in palette"}
}

// --- CSS functions ---------------------------------------------------------

// splitCall splits "name(a, b, c)" into its lower-cased name and trimmed
// arguments.
func splitCall(text string) (string, []string, bool) {
	open := strings.IndexByte(text, '(')
	if open <= 0 || !strings.HasSuffix(text, ")") {
		return "", nil, false
	}
	name := strings.ToLower(strings.TrimSpace(text[:open]))
	inner := text[open+1 : len(text)-1]
	args := strings.Split(inner, ",")
	for i := range args {
		args[i] = strings.TrimSpace(args[i])
	}
	return name, args, true
}

// parseCSSNumber parses a plain number or a percentage. For percentages the
// value is returned as a fraction of full (e.g. "50%" with full=255 → 127.5).
func parseCSSNumber(s string, full float64) (float64, bool) {
	pct := strings.HasSuffix(s, "%")
	s = strings.TrimSuffix(s, "%")
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	if pct {
		v = v / 100 * full
	}
	return v, true
}

func parseCSSAlpha(kind Notation, text string, args []string) (float64, error) {
	if len(args) < 4 {
		return 1, nil
	}
	a, ok := parseCSSNumber(args[3], 1)
	if !ok {
		return 0, &SyntaxError{Kind: kind, Text: text, Reason: "invalid alpha " + strconv.Quote(args[3])}
	}
	return a, nil
}

// parseCSSRGB parses "rgb(52, 152, 219)" and "rgba(46, 204, 113, 0.8)".
func parseCSSRGB(kind Notation, text string, clamp bool, _ *Palette) (Color, error) {
	name, args, ok := splitCall(text)
	if !ok || (name != "rgb" && name != "rgba") {
		return Color{}, &SyntaxError{Kind: kind, Text: text, Reason: "want rgb(...) or rgba(...)"}
	}
	if len(args) != 3 && len(args) != 4 {
		return Color{}, &SyntaxError{Kind: kind, Text: text, Reason: "want 3 or 4 arguments"}
	}

	var ch [3]float64
	for i := range ch {
		v, ok := parseCSSNumber(args[i], 255)
		if !ok {
			return Color{}, &SyntaxError{Kind: kind, Text: text, Reason: "invalid channel " + strconv.Quote(args[i])}
		}
		ch[i] = v / 255
	}
	a, err := parseCSSAlpha(kind, text, args)
	if err != nil {
		return Color{}, err
	}
	return makeColor(ch[0], ch[1], ch[2], a, clamp)
}

// parseCSSHSL parses "hsl(204, 70%, 53%)" and "hsla(0, 0%, 50%, 0.5)".
// Hue is in degrees and wraps; saturation and lightness are percentages.
func parseCSSHSL(kind Notation, text string, clamp bool, _ *Palette) (Color, error) {
	name, args, ok := splitCall(text)
	if !ok || (name != "hsl" && name != "hsla") {
		return Color{}, &SyntaxError{Kind: kind, Text: text, Reason: "want hsl(...) or hsla(...)"}
	}
	if len(args) != 3 && len(args) != 4 {
		return Color{}, &SyntaxError{Kind: kind, Text: text, Reason: "want 3 or 4 arguments"}
	}

	h, ok := parseCSSNumber(strings.TrimSuffix(args[0], "deg"), 360)
	if !ok {
		return Color{}, &SyntaxError{Kind: kind, Text: text, Reason: "invalid hue " + strconv.Quote(args[0])}
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}

	var sl [2]float64
	for i := range sl {
		arg := strings.TrimSuffix(args[i+1], "%")
		v, ok := parseCSSNumber(arg, 1)
		if !ok {
			return Color{}, &SyntaxError{Kind: kind, Text: text, Reason: "invalid percentage " + strconv.Quote(args[i+1])}
		}
		v /= 100
		if !inUnitRange(v) {
			if !clamp {
				ch := "saturation"
				if i == 1 {
					ch = "lightness"
				}
				return Color{}, &OutOfRangeError{Channel: ch, Value: v}
			}
			v = clamp01(v)
		}
		sl[i] = v
	}
	a, err := parseCSSAlpha(kind, text, args)
	if err != nil {
		return Color{}, err
	}

	rgb := colorful.Hsl(h, sl[0], sl[1]).Clamped()
	return makeColor(rgb.R, rgb.G, rgb.B, a, clamp)
}

// --- auto detection --------------------------------------------------------

// classify guesses the notation of a whole, trimmed span.
// It returns 0 when nothing fits.
func classify(text string, pal *Palette) Notation {
	switch {
	case text == "":
		return 0
	case text[0] == '#':
		if len(text) == 9 {
			return HexRGBA
		}
		return HexRGB
	case len(text) > 2 && text[0] == '0' && (text[1] == 'x' || text[1] == 'X'):
		return HexLiteral
	}

	lower := strings.ToLower(text)
	switch {
	case strings.HasPrefix(lower, "rgb"):
		return CSSRGB
	case strings.HasPrefix(lower, "hsl"):
		return CSSHSL
	case strings.Contains(text, ",") && strings.Contains(text, ":"):
		return FloatLabeled
	case strings.Contains(text, ","):
		if !strings.Contains(text, ".") {
			return ByteRGB
		}
		if strings.Count(text, ",") == 3 {
			return FloatRGBA
		}
		return FloatRGB
	}

	if _, ok := pal.Lookup(text); ok {
		return NamedConstant
	}
	if allHex(text) {
		if len(text) == 8 {
			return HexRGBA
		}
		return HexRGBNoPrefix
	}
	if isIdentifier(text) {
		return NamedConstant
	}
	return 0
}

func allHex(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return false
		}
	}
	return s != ""
}

func isIdentifier(s string) bool {
	if s == "" || !isIdentStart(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isIdentChar(s[i]) {
			return false
		}
	}
	return true
}

func isIdentStart(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isIdentChar(c byte) bool {
	return isIdentStart(c) || ('0' <= c && c <= '9')
}

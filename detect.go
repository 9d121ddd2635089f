package colorlit

import (
	"bytes"
	"errors"
	"iter"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Span is a half-open byte range [Start, End) in a buffer.
type Span struct {
	Start, End int
}

// Len returns the span length in bytes.
func (s Span) Len() int { return s.End - s.Start }

// Overlaps reports whether s and o share at least one byte.
func (s Span) Overlaps(o Span) bool {
	return s.Start < o.End && o.Start < s.End
}

// Contains reports whether off lies in [Start, End).
func (s Span) Contains(off int) bool {
	return s.Start <= off && off < s.End
}

// Match is one located color literal.
//
// Err is the parse-failure marker: it is non-nil when the span has the
// shape of a color literal but its value was rejected (for example a float
// list with a channel above 1 while clamping is disabled). Color is the zero
// value in that case.
type Match struct {
	Start, End int
	Kind       Notation
	Text       string
	Color      Color
	Err        error
}

// Span returns the match's byte range.
func (m Match) Span() Span {
	return Span{Start: m.Start, End: m.End}
}

// candidate is a recognized, not yet parsed span.
type candidate struct {
	start, end int
	kind       Notation
}

// recognizer reports the longest literal of its family starting at buf[i].
type recognizer func(buf []byte, i int, pal *Palette) (end int, kind Notation, ok bool)

// recognizers are tried at every offset. Their order is irrelevant:
// arbitration uses span length, then Priority.
var recognizers = [...]recognizer{
	recognizeHashHex,
	recognizeBareHex,
	recognizeFloatList,
	recognizeNamed,
	recognizeHexLiteral,
	recognizeCSSFunc,
	recognizeByteTuple,
	recognizeLabeledFloats,
}

// recognize returns the winning candidate starting at i: the longest span,
// ties going to the notation ranked first in Priority.
func (e *Engine) recognize(buf []byte, i int) (candidate, bool) {
	var best candidate
	found := false
	for _, rec := range recognizers {
		end, kind, ok := rec(buf, i, e.palette)
		if !ok {
			continue
		}
		c := candidate{start: i, end: end, kind: kind}
		if !found ||
			c.end-c.start > best.end-best.start ||
			(c.end-c.start == best.end-best.start && kind.rank() < best.kind.rank()) {
			best, found = c, true
		}
	}
	return best, found
}

// resolve parses a candidate. Syntax failures drop the candidate; range
// failures keep it with the Err marker set.
func (e *Engine) resolve(buf []byte, c candidate) (Match, bool) {
	text := string(buf[c.start:c.end])
	m := Match{Start: c.start, End: c.end, Kind: c.kind, Text: text}

	col, err := e.ParseAs(c.kind, text)
	if err != nil {
		var rangeErr *OutOfRangeError
		if !errors.As(err, &rangeErr) {
			Logger().Debug("skipping malformed candidate",
				zap.Int("offset", c.start), zap.String("text", text), zap.Error(err))
			return Match{}, false
		}
		m.Err = err
		return m, true
	}
	m.Color = col
	return m, true
}

// reports applies the notation filter and skip spans.
func (e *Engine) reports(m Match) bool {
	if e.kinds != nil && !e.kinds[m.Kind] {
		return false
	}
	for _, s := range e.opts.skip {
		if s.Overlaps(m.Span()) {
			return false
		}
	}
	return true
}

// Scanner yields matches left to right in a single pass.
// A Scanner is not restartable; call Engine.Scan again to rescan.
type Scanner struct {
	eng   *Engine
	buf   []byte
	pos   int
	limit int
	cur   Match
	done  bool
}

// Scan returns a Scanner over the whole buffer.
func (e *Engine) Scan(buf []byte) *Scanner {
	return &Scanner{eng: e, buf: buf, limit: len(buf)}
}

// ScanRange returns a Scanner reporting matches that start in [start, end).
// Boundary checks still look at the whole buffer, so a literal is recognized
// exactly as a full scan would recognize it. Out-of-range bounds are clipped.
func (e *Engine) ScanRange(buf []byte, start, end int) *Scanner {
	start = max(0, min(start, len(buf)))
	end = max(start, min(end, len(buf)))
	return &Scanner{eng: e, buf: buf, pos: start, limit: end}
}

// Next advances to the next match. It returns false when the scan is done.
func (s *Scanner) Next() bool {
	for !s.done && s.pos < s.limit {
		c, ok := s.eng.recognize(s.buf, s.pos)
		if !ok {
			s.pos++
			continue
		}
		m, ok := s.eng.resolve(s.buf, c)
		if !ok {
			s.pos++
			continue
		}
		s.pos = c.end
		if !s.eng.reports(m) {
			continue
		}
		s.cur = m
		return true
	}
	s.done = true
	return false
}

// Match returns the current match. Valid after Next returned true.
func (s *Scanner) Match() Match {
	return s.cur
}

// Offset returns the byte offset the scanner will resume from.
func (s *Scanner) Offset() int {
	return s.pos
}

// Matches returns the matches in buf as a lazy, single-pass sequence.
func (e *Engine) Matches(buf []byte) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		s := e.Scan(buf)
		for s.Next() {
			if !yield(s.Match()) {
				return
			}
		}
	}
}

// Detect collects every match in buf.
func (e *Engine) Detect(buf []byte) []Match {
	var out []Match
	for m := range e.Matches(buf) {
		out = append(out, m)
	}
	return out
}

// MatchAt returns the match under a cursor at off. A match containing off
// wins; otherwise a match ending exactly at off (cursor just after it).
func (e *Engine) MatchAt(buf []byte, off int) (Match, bool) {
	var after Match
	found := false
	s := e.Scan(buf)
	for s.Next() {
		m := s.Match()
		if m.Span().Contains(off) {
			return m, true
		}
		if m.End == off {
			after, found = m, true
		}
		if m.Start > off {
			break
		}
	}
	return after, found
}

// --- recognizers -----------------------------------------------------------

func isQuote(c byte) bool {
	return c == '"' || c == '\'' || c == '`'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// hexRun returns the length of the run of hex digits starting at i.
func hexRun(buf []byte, i int) int {
	n := 0
	for i+n < len(buf) && isHexDigit(buf[i+n]) {
		n++
	}
	return n
}

// identBoundary reports whether buf[i] is not an identifier character.
// Offsets outside the buffer are boundaries.
func identBoundary(buf []byte, i int) bool {
	return i < 0 || i >= len(buf) || !isIdentChar(buf[i])
}

// recognizeHashHex matches "#" followed by exactly 6 or 8 hex digits.
func recognizeHashHex(buf []byte, i int, _ *Palette) (int, Notation, bool) {
	if buf[i] != '#' {
		return 0, 0, false
	}
	n := hexRun(buf, i+1)
	end := i + 1 + n
	if !identBoundary(buf, end) {
		return 0, 0, false
	}
	switch n {
	case 6:
		return end, HexRGB, true
	case 8:
		return end, HexRGBA, true
	}
	return 0, 0, false
}

// recognizeBareHex matches 6 or 8 hex digits forming the whole content of a
// quoted string: "FFFFFF" or '80FF5722'.
func recognizeBareHex(buf []byte, i int, _ *Palette) (int, Notation, bool) {
	if i == 0 || !isQuote(buf[i-1]) {
		return 0, 0, false
	}
	n := hexRun(buf, i)
	end := i + n
	if end >= len(buf) || buf[end] != buf[i-1] {
		return 0, 0, false
	}
	switch n {
	case 6:
		return end, HexRGBNoPrefix, true
	case 8:
		return end, HexRGBA, true
	}
	return 0, 0, false
}

// recognizeHexLiteral matches integer literals 0xRRGGBB and 0xAARRGGBB.
func recognizeHexLiteral(buf []byte, i int, _ *Palette) (int, Notation, bool) {
	if buf[i] != '0' || i+1 >= len(buf) || (buf[i+1] != 'x' && buf[i+1] != 'X') {
		return 0, 0, false
	}
	if !identBoundary(buf, i-1) || (i > 0 && buf[i-1] == '.') {
		return 0, 0, false
	}
	n := hexRun(buf, i+2)
	end := i + 2 + n
	if (n != 6 && n != 8) || !identBoundary(buf, end) {
		return 0, 0, false
	}
	return end, HexLiteral, true
}

// recognizeNamed matches a palette identifier in a position where it names a
// color: a member of a color type or namespace (Color.red, Colors::Tomato),
// the whole content of a quoted string, or a CSS color property value.
// Bare identifiers elsewhere are variables and stay untouched.
func recognizeNamed(buf []byte, i int, pal *Palette) (int, Notation, bool) {
	if pal.Len() == 0 || !isIdentStart(buf[i]) || !identBoundary(buf, i-1) {
		return 0, 0, false
	}
	end := i + 1
	for end < len(buf) && isIdentChar(buf[end]) {
		end++
	}
	if !qualifiedByColor(buf, i) && !quotedWhole(buf, i, end) && !cssValue(buf, i, end) {
		return 0, 0, false
	}
	if _, ok := pal.Lookup(string(buf[i:end])); !ok {
		return 0, 0, false
	}
	return end, NamedConstant, true
}

// qualifiedByColor reports whether the identifier at start follows "." or
// "::" and a qualifier whose name mentions color or colour.
func qualifiedByColor(buf []byte, start int) bool {
	j := start - 1
	switch {
	case j >= 0 && buf[j] == '.':
		j--
	case j >= 1 && buf[j] == ':' && buf[j-1] == ':':
		j -= 2
	default:
		return false
	}
	k := j
	for k >= 0 && isIdentChar(buf[k]) {
		k--
	}
	if k == j {
		return false
	}
	q := bytes.ToLower(buf[k+1 : j+1])
	return bytes.Contains(q, []byte("color")) || bytes.Contains(q, []byte("colour"))
}

// quotedWhole reports whether buf[start:end] is the whole content of a
// quoted string that is not a mapping key.
func quotedWhole(buf []byte, start, end int) bool {
	if start == 0 || end >= len(buf) || !isQuote(buf[start-1]) || buf[end] != buf[start-1] {
		return false
	}
	j := skipSpace(buf, end+1)
	return j >= len(buf) || buf[j] != ':'
}

// maxCSSValue bounds the backward search for a declaration's colon.
const maxCSSValue = 128

var cssColorProps = map[string]bool{
	"background":      true,
	"border":          true,
	"border-top":      true,
	"border-right":    true,
	"border-bottom":   true,
	"border-left":     true,
	"box-shadow":      true,
	"column-rule":     true,
	"fill":            true,
	"outline":         true,
	"stroke":          true,
	"text-decoration": true,
	"text-shadow":     true,
}

// cssValue reports whether buf[start:end] ends the value of a color
// declaration on its line: "color: tomato;" or "border: 1px solid red }".
func cssValue(buf []byte, start, end int) bool {
	k := end
	for k < len(buf) && (buf[k] == ' ' || buf[k] == '\t') {
		k++
	}
	if k < len(buf) && strings.IndexByte(";}!\r\n", buf[k]) < 0 {
		return false
	}

	j := start - 1
	for ; j >= 0 && buf[j] != ':'; j-- {
		if start-j > maxCSSValue || strings.IndexByte("\n;{}=(\"'`", buf[j]) >= 0 {
			return false
		}
	}
	if j <= 0 || buf[j-1] == ':' {
		return false
	}
	p := skipSpaceBack(buf, j-1)
	q := p
	for q >= 0 && (isIdentChar(buf[q]) || buf[q] == '-') {
		q--
	}
	if q == p {
		return false
	}
	prop := strings.ToLower(string(buf[q+1 : p+1]))
	return strings.HasSuffix(prop, "color") || cssColorProps[prop]
}

// scanDecimal matches a decimal literal containing a '.', with an optional
// f/F suffix, and returns its end. The literal must not run into an
// identifier character or another '.'.
func scanDecimal(buf []byte, i int) (int, bool) {
	j := i
	digits, dots := 0, 0
	for ; j < len(buf); j++ {
		if isDigit(buf[j]) {
			digits++
		} else if buf[j] == '.' {
			dots++
		} else {
			break
		}
	}
	if digits == 0 || dots != 1 {
		return 0, false
	}
	if j < len(buf) && (buf[j] == 'f' || buf[j] == 'F') {
		j++
	}
	if !identBoundary(buf, j) || (j < len(buf) && buf[j] == '.') {
		return 0, false
	}
	return j, true
}

func skipSpace(buf []byte, i int) int {
	for i < len(buf) && isSpace(buf[i]) {
		i++
	}
	return i
}

func skipSpaceBack(buf []byte, i int) int {
	for i >= 0 && isSpace(buf[i]) {
		i--
	}
	return i
}

// endsWithNumber reports whether buf[..j] ends with a numeric literal
// (digits and dots, optional f/F suffix) that is not part of an identifier.
func endsWithNumber(buf []byte, j int) bool {
	if j >= 0 && (buf[j] == 'f' || buf[j] == 'F') {
		j--
	}
	digits := 0
	for j >= 0 && (isDigit(buf[j]) || buf[j] == '.') {
		if isDigit(buf[j]) {
			digits++
		}
		j--
	}
	return digits > 0 && identBoundary(buf, j)
}

// startsWithNumber reports whether a numeric literal starts at buf[i].
func startsWithNumber(buf []byte, i int) bool {
	return i < len(buf) && (isDigit(buf[i]) || buf[i] == '.')
}

// recognizeFloatList matches a maximal comma-separated run of exactly 3
// (FloatRGB) or 4 (FloatRGBA) decimal literals. A run that is part of a
// longer numeric list is not a candidate.
func recognizeFloatList(buf []byte, i int, _ *Palette) (int, Notation, bool) {
	if !startsWithNumber(buf, i) {
		return 0, 0, false
	}
	if i > 0 && (!identBoundary(buf, i-1) || buf[i-1] == '.' || buf[i-1] == '-' || buf[i-1] == '+') {
		return 0, 0, false
	}
	if j := skipSpaceBack(buf, i-1); j >= 0 && buf[j] == ',' && endsWithNumber(buf, skipSpaceBack(buf, j-1)) {
		return 0, 0, false
	}

	count, end, pos := 0, 0, i
	for {
		litEnd, ok := scanDecimal(buf, pos)
		if !ok {
			if count == 0 || startsWithNumber(buf, pos) {
				return 0, 0, false
			}
			break
		}
		count++
		end = litEnd
		if count > 4 {
			return 0, 0, false
		}

		j := skipSpace(buf, litEnd)
		if j >= len(buf) || buf[j] != ',' {
			break
		}
		pos = skipSpace(buf, j+1)
	}

	switch count {
	case 3:
		return end, FloatRGB, true
	case 4:
		return end, FloatRGBA, true
	}
	return 0, 0, false
}

// scanNumber matches a decimal literal or a plain integer.
func scanNumber(buf []byte, i int) (int, bool) {
	if end, ok := scanDecimal(buf, i); ok {
		return end, true
	}
	j := i
	for j < len(buf) && isDigit(buf[j]) {
		j++
	}
	if j == i || !identBoundary(buf, j) || (j < len(buf) && buf[j] == '.') {
		return 0, false
	}
	return j, true
}

// recognizeLabeledFloats matches "red: R, green: G, blue: B" with an optional
// fourth "alpha: A" or "opacity: A" argument.
func recognizeLabeledFloats(buf []byte, i int, _ *Palette) (int, Notation, bool) {
	if buf[i] != 'r' || !identBoundary(buf, i-1) {
		return 0, 0, false
	}
	end, pos := 0, i
	for n, names := range labels {
		if n > 0 {
			j := skipSpace(buf, end)
			if j >= len(buf) || buf[j] != ',' {
				if n == len(labels)-1 {
					break
				}
				return 0, 0, false
			}
			pos = skipSpace(buf, j+1)
		}
		after, ok := matchLabel(buf, pos, names)
		if ok {
			after, ok = scanNumber(buf, skipSpace(buf, after))
		}
		if !ok {
			if n == len(labels)-1 {
				break
			}
			return 0, 0, false
		}
		end = after
	}
	return end, FloatLabeled, true
}

// matchLabel matches one of names followed by ':' and returns the offset
// after the colon.
func matchLabel(buf []byte, i int, names []string) (int, bool) {
	for _, name := range names {
		end := i + len(name)
		if end > len(buf) || string(buf[i:end]) != name || !identBoundary(buf, end) {
			continue
		}
		if j := skipSpace(buf, end); j < len(buf) && buf[j] == ':' {
			return j + 1, true
		}
	}
	return 0, false
}

// recognizeByteTuple matches the arguments of a constructor call or
// composite literal holding 3 or 4 integers in [0, 255]: QColor(98, 0, 238),
// color.RGBA{98, 0, 238, 255}, Color.FromArgb(128, 0, 0, 0), or a bare
// tuple such as (255, 0, 0) on the right of an assignment or inside a list.
func recognizeByteTuple(buf []byte, i int, _ *Palette) (int, Notation, bool) {
	if !isDigit(buf[i]) || !identBoundary(buf, i-1) {
		return 0, 0, false
	}
	open := skipSpaceBack(buf, i-1)
	if open < 0 || (buf[open] != '(' && buf[open] != '{') {
		return 0, 0, false
	}
	kind, ok := tupleOwner(buf, open)
	if !ok {
		return 0, 0, false
	}
	closer := byte(')')
	if buf[open] == '{' {
		closer = '}'
	}

	count, end, pos := 0, 0, i
	for {
		j := pos
		for j < len(buf) && isDigit(buf[j]) {
			j++
		}
		if j == pos || j-pos > 3 {
			return 0, 0, false
		}
		if n, _ := strconv.Atoi(string(buf[pos:j])); n > 255 {
			return 0, 0, false
		}
		count++
		end = j
		if count > 4 {
			return 0, 0, false
		}

		k := skipSpace(buf, j)
		if k < len(buf) && buf[k] == ',' {
			pos = skipSpace(buf, k+1)
			continue
		}
		if k >= len(buf) || buf[k] != closer {
			return 0, 0, false
		}
		break
	}

	switch {
	case count < 3:
		return 0, 0, false
	case kind == ByteARGB && count == 3:
		kind = ByteRGB
	}
	return end, kind, true
}

// tupleOwner classifies the opener at buf[open] by the name in front of it.
// A color-like name makes a byte tuple; "argb" in the name puts alpha first.
// Without a name the tuple must follow an assignment or sit inside a list.
func tupleOwner(buf []byte, open int) (Notation, bool) {
	p := skipSpaceBack(buf, open-1)
	if p < 0 {
		return 0, false
	}
	q := p
	for q >= 0 && isIdentChar(buf[q]) {
		q--
	}
	if q == p {
		switch buf[p] {
		case '=', '[', ',', ':', '{', '(':
			return ByteRGB, true
		}
		return 0, false
	}

	name := strings.ToLower(string(buf[q+1 : p+1]))
	switch {
	case buf[open] == '(' && (name == "rgb" || name == "rgba" || name == "hsl" || name == "hsla"):
		return 0, false
	case strings.Contains(name, "argb"):
		return ByteARGB, true
	case strings.Contains(name, "rgb"), strings.Contains(name, "color"), strings.Contains(name, "colour"):
		return ByteRGB, true
	}
	return 0, false
}

var cssFuncs = [...]struct {
	name []byte
	kind Notation
}{
	{[]byte("rgba("), CSSRGB},
	{[]byte("rgb("), CSSRGB},
	{[]byte("hsla("), CSSHSL},
	{[]byte("hsl("), CSSHSL},
}

// maxCSSCall bounds the search for the closing parenthesis.
const maxCSSCall = 64

// recognizeCSSFunc matches rgb()/rgba()/hsl()/hsla() calls whose arguments
// are plain numbers, percentages and degrees.
func recognizeCSSFunc(buf []byte, i int, _ *Palette) (int, Notation, bool) {
	if !identBoundary(buf, i-1) {
		return 0, 0, false
	}
	for _, f := range cssFuncs {
		if len(buf)-i < len(f.name) || !bytes.EqualFold(buf[i:i+len(f.name)], f.name) {
			continue
		}
		for j := i + len(f.name); j < len(buf) && j-i <= maxCSSCall; j++ {
			c := buf[j]
			switch {
			case c == ')':
				return j + 1, f.kind, true
			case isDigit(c), isSpace(c) && c != '\n', c == '.', c == ',', c == '%', c == '-', c == '+',
				c == 'd', c == 'e', c == 'g':
			default:
				return 0, 0, false
			}
		}
		return 0, 0, false
	}
	return 0, 0, false
}

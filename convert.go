package colorlit

import (
	"bytes"
	"fmt"
	"slices"

	"go.uber.org/zap"
)

// Edit replaces buf[Start:End] with Text.
type Edit struct {
	Start, End int
	Text       string
}

// Span returns the edit's byte range.
func (e Edit) Span() Span {
	return Span{Start: e.Start, End: e.End}
}

// ConvertOne returns the edit rewriting m into the requested notation.
// Only [m.Start, m.End) is replaced. Returns ErrStaleMatch if m no longer
// describes buf, and m.Err if the match carries a parse failure.
func (e *Engine) ConvertOne(buf []byte, m Match, req ConversionRequest) (Edit, error) {
	if err := req.Validate(); err != nil {
		return Edit{}, err
	}
	if m.Start < 0 || m.End > len(buf) || m.Start > m.End || string(buf[m.Start:m.End]) != m.Text {
		return Edit{}, ErrStaleMatch
	}
	if m.Err != nil {
		return Edit{}, fmt.Errorf("colorlit: convert %s at %d: %w", m.Kind, m.Start, m.Err)
	}

	text, err := e.Format(m.Color, req.Target, req.Format)
	if err != nil {
		return Edit{}, err
	}
	return Edit{Start: m.Start, End: m.End, Text: text}, nil
}

// ConvertAt converts the match under the cursor at off.
// The second result is false when no match covers off.
func (e *Engine) ConvertAt(buf []byte, off int, req ConversionRequest) (Edit, bool, error) {
	m, ok := e.MatchAt(buf, off)
	if !ok {
		return Edit{}, false, nil
	}
	ed, err := e.ConvertOne(buf, m, req)
	return ed, true, err
}

// ConvertAll returns edits converting every match whose kind is in from
// (every kind when from is empty) to the requested notation. Matches
// carrying a parse failure and matches already in their target form are
// skipped. Edits are ordered by ascending start offset.
func (e *Engine) ConvertAll(buf []byte, from []Notation, req ConversionRequest) ([]Edit, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var edits []Edit
	skipped := 0
	for m := range e.Matches(buf) {
		if len(from) > 0 && !slices.Contains(from, m.Kind) {
			continue
		}
		if m.Err != nil {
			skipped++
			Logger().Debug("not converting invalid literal",
				zap.Int("offset", m.Start), zap.String("text", m.Text), zap.Error(m.Err))
			continue
		}
		ed, err := e.ConvertOne(buf, m, req)
		if err != nil {
			return nil, err
		}
		if ed.Text == m.Text {
			continue
		}
		edits = append(edits, ed)
	}

	Logger().Debug("converted literals",
		zap.Stringer("target", req.Target), zap.Int("edits", len(edits)), zap.Int("skipped", skipped))
	return edits, nil
}

// Rewrite converts every match of the from kinds and returns the new buffer.
func (e *Engine) Rewrite(buf []byte, from []Notation, req ConversionRequest) ([]byte, []Edit, error) {
	edits, err := e.ConvertAll(buf, from, req)
	if err != nil {
		return nil, nil, err
	}
	out, err := Apply(buf, edits)
	if err != nil {
		return nil, nil, err
	}
	return out, edits, nil
}

// Apply returns a copy of buf with all edits applied. Edits are applied in
// one pass in descending start order, so offsets of edits not yet applied
// stay valid. buf is not modified.
func Apply(buf []byte, edits []Edit) ([]byte, error) {
	sorted := slices.Clone(edits)
	slices.SortStableFunc(sorted, func(a, b Edit) int {
		return b.Start - a.Start
	})

	limit := len(buf)
	for _, ed := range sorted {
		if ed.Start < 0 || ed.Start > ed.End || ed.End > len(buf) {
			return nil, fmt.Errorf("%w: [%d, %d) in %d bytes", ErrEditOutOfBounds, ed.Start, ed.End, len(buf))
		}
		if ed.End > limit {
			return nil, fmt.Errorf("%w: [%d, %d)", ErrOverlappingEdits, ed.Start, ed.End)
		}
		limit = ed.Start
	}

	out := bytes.Clone(buf)
	for _, ed := range sorted {
		out = slices.Replace(out, ed.Start, ed.End, []byte(ed.Text)...)
	}
	if out == nil {
		out = []byte{}
	}
	return out, nil
}

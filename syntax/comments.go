// Package syntax finds comment regions in source files so that color
// literals inside comments can be left alone.
//
// Lexing is delegated to chroma; the lexer is picked from the file name and,
// failing that, from the content.
package syntax

import (
	"fmt"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"go.uber.org/zap"

	"github.com/gogpu/colorlit"
)

// Lexer returns the lexer for filename, analysing src when the name does
// not identify the language. It never returns nil.
func Lexer(filename string, src []byte) chroma.Lexer {
	l := lexers.Match(filename)
	if l == nil {
		l = lexers.Analyse(string(src))
	}
	if l == nil {
		l = lexers.Fallback
	}
	return chroma.Coalesce(l)
}

// Language returns the name of the language detected for filename.
func Language(filename string, src []byte) string {
	return Lexer(filename, src).Config().Name
}

// Comments returns the byte spans of comments in src, in ascending order
// with adjacent spans merged. Preprocessor directives are code, not
// comments, even though chroma files them under the comment category.
func Comments(filename string, src []byte) ([]colorlit.Span, error) {
	lexer := Lexer(filename, src)
	it, err := lexer.Tokenise(&chroma.TokeniseOptions{State: "root"}, string(src))
	if err != nil {
		return nil, fmt.Errorf("syntax: tokenise %s: %w", filename, err)
	}

	var spans []colorlit.Span
	off := 0
	for tok := it(); tok != chroma.EOF; tok = it() {
		start := off
		off += len(tok.Value)
		if !isComment(tok.Type) {
			continue
		}
		// Some lexers append a trailing newline to the text.
		end := min(off, len(src))
		if start >= end {
			continue
		}
		if n := len(spans); n > 0 && spans[n-1].End == start {
			spans[n-1].End = end
			continue
		}
		spans = append(spans, colorlit.Span{Start: start, End: end})
	}

	colorlit.Logger().Debug("comment spans",
		zap.String("file", filename),
		zap.String("lexer", lexer.Config().Name),
		zap.Int("spans", len(spans)))
	return spans, nil
}

func isComment(t chroma.TokenType) bool {
	switch t {
	case chroma.CommentPreproc, chroma.CommentPreprocFile:
		return false
	}
	return t.InCategory(chroma.Comment)
}

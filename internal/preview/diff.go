// Package preview renders the changes a rewrite would make.
package preview

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Diff renders a line diff of before and after, one hunk per run of
// changed lines, headed by the line number in before. It returns "" when
// the buffers are equal.
//
//	--- theme.css
//	+++ theme.css
//	@@ line 2 @@
//	- a { color: #FF5722; }
//	+ a { color: rgb(255, 87, 34); }
func Diff(path string, before, after []byte) string {
	if bytes.Equal(before, after) {
		return ""
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(string(before), string(after))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var sb strings.Builder
	sb.WriteString("--- " + path + "\n")
	sb.WriteString("+++ " + path + "\n")

	line := 1
	inHunk := false
	for _, d := range diffs {
		ls := splitLines(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			line += len(ls)
			inHunk = false
			continue
		case diffmatchpatch.DiffDelete:
			if !inHunk {
				fmt.Fprintf(&sb, "@@ line %d @@\n", line)
			}
			writePrefixed(&sb, "- ", ls)
			line += len(ls)
		case diffmatchpatch.DiffInsert:
			if !inHunk {
				fmt.Fprintf(&sb, "@@ line %d @@\n", line)
			}
			writePrefixed(&sb, "+ ", ls)
		}
		inHunk = true
	}
	return sb.String()
}

// Stats counts the inserted and deleted lines between before and after.
func Stats(before, after []byte) (inserted, deleted int) {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(string(before), string(after))
	for _, d := range dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines) {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			inserted += len(splitLines(d.Text))
		case diffmatchpatch.DiffDelete:
			deleted += len(splitLines(d.Text))
		}
	}
	return inserted, deleted
}

// splitLines splits text into lines without their terminators.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	ls := strings.SplitAfter(text, "\n")
	if ls[len(ls)-1] == "" {
		ls = ls[:len(ls)-1]
	}
	for i, l := range ls {
		ls[i] = strings.TrimSuffix(l, "\n")
	}
	return ls
}

func writePrefixed(sb *strings.Builder, prefix string, ls []string) {
	for _, l := range ls {
		sb.WriteString(prefix)
		sb.WriteString(l)
		sb.WriteString("\n")
	}
}

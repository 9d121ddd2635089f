package main

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/gogpu/colorlit"
)

// maxSuggestions bounds "did you mean" lists.
const maxSuggestions = 3

// suggest returns up to maxSuggestions candidates close to pattern, best
// first.
func suggest(pattern string, candidates []string) []string {
	matches := fuzzy.Find(pattern, candidates)
	out := make([]string, 0, maxSuggestions)
	for _, m := range matches {
		if len(out) == maxSuggestions {
			break
		}
		out = append(out, m.Str)
	}
	return out
}

// didYouMean formats suggestions as an error suffix.
func didYouMean(s []string) string {
	if len(s) == 0 {
		return ""
	}
	return " (did you mean " + strings.Join(s, ", ") + "?)"
}

// parseNotation is colorlit.ParseNotation with suggestions.
func parseNotation(name string) (colorlit.Notation, error) {
	n, err := colorlit.ParseNotation(name)
	if err != nil {
		return 0, fmt.Errorf("%w%s", err, didYouMean(suggest(name, colorlit.NotationNames())))
	}
	return n, nil
}

// parseNotations parses a list of notation names. Entries may themselves
// be comma separated.
func parseNotations(names []string) ([]colorlit.Notation, error) {
	var out []colorlit.Notation
	for _, entry := range names {
		for _, name := range strings.Split(entry, ",") {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			n, err := parseNotation(name)
			if err != nil {
				return nil, err
			}
			out = append(out, n)
		}
	}
	return out, nil
}

package syntax

import (
	"strings"
	"testing"

	"github.com/MakeNowJust/heredoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/colorlit"
)

func TestComments(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		src      string
		want     []string // literals detected outside comments
	}{
		{
			name:     "go",
			filename: "theme.go",
			src: heredoc.Doc(`
				package theme

				// Accent was #FF5722 before the redesign.
				var Accent = "#000000" /* old: #FFFFFF */
				var Overlay = "#80FF5722"
			`),
			want: []string{"#000000", "#80FF5722"},
		},
		{
			name:     "css",
			filename: "site.css",
			src: heredoc.Doc(`
				/* brand: #FF5722 */
				a { color: #3498DB; }
			`),
			want: []string{"#3498DB"},
		},
		{
			name:     "python",
			filename: "palette.py",
			src: heredoc.Doc(`
				# RED = "#FF0000"
				BLUE = "#0000FF"
			`),
			want: []string{"#0000FF"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := []byte(tt.src)
			spans, err := Comments(tt.filename, src)
			require.NoError(t, err)
			require.NotEmpty(t, spans)

			for i, s := range spans {
				assert.True(t, 0 <= s.Start && s.Start < s.End && s.End <= len(src), "span %v", s)
				if i > 0 {
					assert.Less(t, spans[i-1].End, s.Start, "spans sorted and merged")
				}
			}

			var got []string
			for m := range colorlit.New(colorlit.WithSkipSpans(spans)).Matches(src) {
				got = append(got, m.Text)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComments_PlainText(t *testing.T) {
	spans, err := Comments("notes.txt", []byte("// #FF5722 is not a comment here"))
	require.NoError(t, err)
	assert.Empty(t, spans)
}

func TestComments_CoversCommentText(t *testing.T) {
	src := "x := 1 // #FF5722\n"
	spans, err := Comments("a.go", []byte(src))
	require.NoError(t, err)
	require.Len(t, spans, 1)

	hash := strings.Index(src, "#")
	assert.True(t, spans[0].Contains(hash))
	assert.Equal(t, strings.Index(src, "//"), spans[0].Start)
}

func TestLanguage(t *testing.T) {
	assert.Equal(t, "Go", Language("main.go", nil))
	assert.Equal(t, "CSS", Language("site.css", nil))
}

package preview

import (
	"testing"

	"github.com/MakeNowJust/heredoc"
	"github.com/stretchr/testify/assert"
)

func TestDiff(t *testing.T) {
	tests := []struct {
		name          string
		before, after string
		want          string
	}{
		{
			name:   "equal",
			before: "a\nb\n",
			after:  "a\nb\n",
			want:   "",
		},
		{
			name:   "one line",
			before: "x\na { color: #FF5722; }\ny\n",
			after:  "x\na { color: rgb(255, 87, 34); }\ny\n",
			want: heredoc.Doc(`
				--- site.css
				+++ site.css
				@@ line 2 @@
				- a { color: #FF5722; }
				+ a { color: rgb(255, 87, 34); }
			`),
		},
		{
			name:   "two hunks",
			before: "#FFFFFF\nkeep\n#000000\n",
			after:  "white\nkeep\nblack\n",
			want: heredoc.Doc(`
				--- site.css
				+++ site.css
				@@ line 1 @@
				- #FFFFFF
				+ white
				@@ line 3 @@
				- #000000
				+ black
			`),
		},
		{
			name:   "no trailing newline",
			before: "#FFFFFF",
			after:  "white",
			want: heredoc.Doc(`
				--- site.css
				+++ site.css
				@@ line 1 @@
				- #FFFFFF
				+ white
			`),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Diff("site.css", []byte(tt.before), []byte(tt.after)))
		})
	}
}

func TestStats(t *testing.T) {
	ins, del := Stats([]byte("#FFFFFF\nkeep\n#000000\n"), []byte("white\nkeep\nblack\n"))
	assert.Equal(t, 2, ins)
	assert.Equal(t, 2, del)

	ins, del = Stats([]byte("same"), []byte("same"))
	assert.Zero(t, ins)
	assert.Zero(t, del)
}

func TestSplitLines(t *testing.T) {
	assert.Nil(t, splitLines(""))
	assert.Equal(t, []string{"a", "b"}, splitLines("a\nb\n"))
	assert.Equal(t, []string{"a", "b"}, splitLines("a\nb"))
	assert.Equal(t, []string{""}, splitLines("\n"))
}

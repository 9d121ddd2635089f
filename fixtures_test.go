package colorlit

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readFixture(t *testing.T, name string) []byte {
	t.Helper()
	src, err := os.ReadFile(filepath.Join("testdata", "fixtures", name))
	require.NoError(t, err)
	return src
}

func TestDetect_Fixtures(t *testing.T) {
	tests := []struct {
		file string
		want []Notation
	}{
		{file: "colors.cpp", want: []Notation{ByteRGB, FloatRGB, FloatRGBA, HexLiteral}},
		{file: "colors.cs", want: []Notation{ByteRGB, ByteARGB, FloatRGB, FloatRGBA}},
		{file: "colors.go", want: []Notation{ByteRGB, HexLiteral}},
		{file: "colors.kt", want: []Notation{HexLiteral, HexRGB, HexRGBA}},
		{file: "colors.py", want: []Notation{ByteRGB, HexRGB}},
		{file: "colors.rs", want: []Notation{FloatRGB, FloatRGBA, HexRGB, HexRGBA, HexRGBNoPrefix}},
		{file: "colors.swift", want: []Notation{FloatLabeled, HexLiteral}},
		{file: "colors.tsx", want: []Notation{CSSRGB, HexRGB, HexRGBA}},
		{file: "js_colors.js", want: []Notation{CSSHSL, CSSRGB, HexRGB}},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			src := readFixture(t, tt.file)
			seen := map[Notation]bool{}
			for _, m := range Detect(src) {
				assert.NoError(t, m.Err, "%q at %d", m.Text, m.Start)
				assert.Equal(t, m.Text, string(src[m.Start:m.End]))
				seen[m.Kind] = true
			}
			for _, kind := range tt.want {
				assert.True(t, seen[kind], "no %s literal found", kind)
			}
		})
	}
}

var wordRe = regexp.MustCompile(`[A-Za-z0-9_]+`)

// identifiers lists the identifier tokens of src in order. Hex digit runs
// are left out: they are what rewritten literals are made of.
func identifiers(src []byte) []string {
	var out []string
	for _, w := range wordRe.FindAll(src, -1) {
		if !isIdentStart(w[0]) || ((len(w) == 6 || len(w) == 8) && allHex(string(w))) {
			continue
		}
		out = append(out, string(w))
	}
	return out
}

// Rewriting real sources must only touch literals: variable names such as
// red, white or Background stay as written.
func TestRewrite_FixturesKeepIdentifiers(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("testdata", "fixtures", "*"))
	require.NoError(t, err)
	require.NotEmpty(t, files)

	engines := []struct {
		name string
		eng  *Engine
	}{
		{name: "default", eng: New()},
		{name: "folded", eng: New(WithPalette(NewPalette(DefaultPalette().Entries(), CaseInsensitive())))},
	}
	from := []Notation{HexRGB, HexRGBA, HexRGBNoPrefix, HexLiteral, FloatRGB, FloatRGBA, NamedConstant, ByteRGB, ByteARGB}

	for _, file := range files {
		src, err := os.ReadFile(file)
		require.NoError(t, err)

		for _, e := range engines {
			t.Run(filepath.Base(file)+"_"+e.name, func(t *testing.T) {
				for _, m := range e.eng.Detect(src) {
					assert.NotEqual(t, NamedConstant, m.Kind, "%q at %d", m.Text, m.Start)
				}

				out, edits, err := e.eng.Rewrite(src, from, NewConversionRequest(HexRGB))
				require.NoError(t, err)
				require.NotEmpty(t, edits)
				assert.Equal(t, identifiers(src), identifiers(out))
			})
		}
	}
}

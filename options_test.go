package colorlit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHexCase(t *testing.T) {
	for in, want := range map[string]HexCase{"upper": HexUpper, "LOWER": HexLower, "": HexUpper} {
		got, err := ParseHexCase(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseHexCase("mixed")
	assert.Error(t, err)
	assert.Equal(t, "lower", HexLower.String())
}

func TestParseAlphaInclusion(t *testing.T) {
	tests := map[string]AlphaInclusion{
		"always":           AlphaAlways,
		"Always":           AlphaAlways,
		"omitWhenOpaque":   AlphaOmitWhenOpaque,
		"omit-when-opaque": AlphaOmitWhenOpaque,
		"OMIT_WHEN_OPAQUE": AlphaOmitWhenOpaque,
	}
	for in, want := range tests {
		got, err := ParseAlphaInclusion(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
		assert.Equal(t, want, mustAlpha(t, got.String()))
	}
	_, err := ParseAlphaInclusion("sometimes")
	assert.Error(t, err)
}

func mustAlpha(t *testing.T, s string) AlphaInclusion {
	t.Helper()
	a, err := ParseAlphaInclusion(s)
	require.NoError(t, err)
	return a
}

func TestConversionRequest_Validate(t *testing.T) {
	req := NewConversionRequest(HexRGB)
	require.NoError(t, req.Validate())
	assert.Equal(t, DefaultFloatPrecision, req.Format.FloatPrecision)
	assert.Equal(t, AlphaOmitWhenOpaque, req.Format.Alpha)

	var unknown *UnknownNotationError
	require.ErrorAs(t, NewConversionRequest(Notation(42)).Validate(), &unknown)
	assert.Equal(t, Notation(42), unknown.Kind)

	req.Format.FloatPrecision = -1
	assert.Error(t, req.Validate())
}

func TestOptions(t *testing.T) {
	kinds := []Notation{HexRGB}
	spans := []Span{{Start: 1, End: 2}}
	e := New(WithClamp(true), WithNotations(kinds...), WithSkipSpans(spans), WithParseCache(0))

	kinds[0] = FloatRGB
	spans[0].Start = 0

	assert.True(t, e.Clamp())
	assert.True(t, e.kinds[HexRGB])
	assert.False(t, e.kinds[FloatRGB])
	assert.Equal(t, []Span{{Start: 1, End: 2}}, e.opts.skip)
	assert.Nil(t, e.cache)
	assert.Same(t, DefaultPalette(), e.Palette())

	derived := e.With(WithClamp(false))
	assert.False(t, derived.Clamp())
	assert.True(t, derived.kinds[HexRGB])
	assert.True(t, e.Clamp(), "With must not change the receiver")
}

package colorlit

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Verify at compile time that Color implements color.Color.
var _ color.Color = Color{}

func TestNewColor(t *testing.T) {
	tests := []struct {
		name        string
		r, g, b, a  float64
		wantChannel string
	}{
		{name: "in range", r: 0.1, g: 0.2, b: 0.3, a: 1},
		{name: "bounds", r: 0, g: 1, b: 0, a: 0},
		{name: "red above", r: 1.2, g: 0, b: 0, a: 1, wantChannel: ChannelRed},
		{name: "green below", r: 0, g: -0.1, b: 0, a: 1, wantChannel: ChannelGreen},
		{name: "blue NaN", r: 0, g: 0, b: math.NaN(), a: 1, wantChannel: ChannelBlue},
		{name: "alpha above", r: 0, g: 0, b: 0, a: 1.01, wantChannel: ChannelAlpha},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewColor(tt.r, tt.g, tt.b, tt.a)
			if tt.wantChannel == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.r, c.R())
				assert.Equal(t, tt.g, c.G())
				assert.Equal(t, tt.b, c.B())
				assert.Equal(t, tt.a, c.A())
				return
			}
			var rangeErr *OutOfRangeError
			require.ErrorAs(t, err, &rangeErr)
			assert.Equal(t, tt.wantChannel, rangeErr.Channel)
		})
	}
}

func TestNewColorClamped(t *testing.T) {
	c, err := NewColorClamped(1.5, -0.2, 0.5, 2)
	require.NoError(t, err)
	r, g, b, a := c.Channels()
	assert.Equal(t, []float64{1, 0, 0.5, 1}, []float64{r, g, b, a})

	_, err = NewColorClamped(math.NaN(), 0, 0, 1)
	var rangeErr *OutOfRangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, ChannelRed, rangeErr.Channel)
}

func TestRGBAClampsAndNaN(t *testing.T) {
	c := RGBA(2, math.NaN(), -1, 0.5)
	assert.Equal(t, 1.0, c.R())
	assert.Equal(t, 0.0, c.G())
	assert.Equal(t, 0.0, c.B())
	assert.Equal(t, 0.5, c.A())
	assert.Equal(t, 1.0, RGB(0, 0, 0).A())
}

func TestColor_Bytes(t *testing.T) {
	tests := []struct {
		name       string
		c          Color
		r, g, b, a uint8
	}{
		{name: "white", c: RGB(1, 1, 1), r: 255, g: 255, b: 255, a: 255},
		{name: "half rounds to even", c: RGBA(0.5, 0, 0, 0.5), r: 128, a: 128},
		{name: "fixture gray", c: RGBA(0.071, 0.071, 0.071, 0), r: 18, g: 18, b: 18, a: 0},
		{name: "bytes round trip", c: FromBytes(0xFF, 0x57, 0x22, 0x80), r: 0xFF, g: 0x57, b: 0x22, a: 0x80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.c.Bytes()
			assert.Equal(t, [4]uint8{tt.r, tt.g, tt.b, tt.a}, [4]uint8{r, g, b, a})
		})
	}
}

func TestColor_Opaque(t *testing.T) {
	assert.True(t, RGB(0.2, 0.3, 0.4).Opaque())
	assert.True(t, RGBA(0, 0, 0, 0.999).Opaque(), "0.999 quantizes to 0xFF")
	assert.False(t, RGBA(0, 0, 0, 0.99).Opaque())
}

func TestColor_ColorInterface(t *testing.T) {
	tests := []struct {
		name                       string
		c                          Color
		wantR, wantG, wantB, wantA uint32
	}{
		{name: "opaque red", c: RGB(1, 0, 0), wantR: 65535, wantA: 65535},
		{name: "transparent", c: RGBA(1, 1, 1, 0)},
		{name: "half alpha red", c: RGBA(1, 0, 0, 0.5), wantR: 32896, wantA: 32896},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.c.RGBA()
			assert.Equal(t, [4]uint32{tt.wantR, tt.wantG, tt.wantB, tt.wantA}, [4]uint32{r, g, b, a})
		})
	}
}

func TestFromColor(t *testing.T) {
	c := FromColor(color.NRGBA{R: 0xFF, G: 0x57, B: 0x22, A: 0xFF})
	assert.True(t, c.ApproxEqual(FromBytes(0xFF, 0x57, 0x22, 0xFF), 1e-9), "got %v", c)

	// Round trip through the color.Color interface.
	orig := FromBytes(10, 20, 30, 200)
	back := FromColor(orig)
	assert.True(t, orig.ApproxEqual(back, 1.0/255), "orig %v back %v", orig, back)
}

func TestColor_Equal(t *testing.T) {
	a := RGBA(0.1, 0.2, 0.3, 0.4)
	assert.True(t, a.Equal(RGBA(0.1, 0.2, 0.3, 0.4)))
	assert.False(t, a.Equal(RGBA(0.1, 0.2, 0.3, 0.41)))
	assert.True(t, a.ApproxEqual(RGBA(0.1, 0.2, 0.3, 0.41), 0.011))
	assert.Equal(t, 0.9, a.WithAlpha(0.9).A())
	assert.Equal(t, "Color(1, 0, 0, 1)", RGB(1, 0, 0).String())
}

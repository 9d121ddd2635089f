package colorlit

import (
	"fmt"
	"image/color"
	"math"
)

// Color is the canonical color value every parser produces and every
// formatter consumes. Each channel is a non-premultiplied value in [0, 1].
//
// Color is an immutable value type; the zero value is transparent black.
type Color struct {
	r, g, b, a float64
}

// Channel names used in OutOfRangeError.
const (
	ChannelRed   = "red"
	ChannelGreen = "green"
	ChannelBlue  = "blue"
	ChannelAlpha = "alpha"
)

// NewColor creates a color from four channel values.
// Returns *OutOfRangeError if any channel lies outside [0, 1] or is NaN.
func NewColor(r, g, b, a float64) (Color, error) {
	for _, ch := range [...]struct {
		name string
		v    float64
	}{{ChannelRed, r}, {ChannelGreen, g}, {ChannelBlue, b}, {ChannelAlpha, a}} {
		if !inUnitRange(ch.v) {
			return Color{}, &OutOfRangeError{Channel: ch.name, Value: ch.v}
		}
	}
	return Color{r: r, g: g, b: b, a: a}, nil
}

// NewColorClamped creates a color, clamping every channel into [0, 1].
// Only NaN channels are rejected.
func NewColorClamped(r, g, b, a float64) (Color, error) {
	for _, ch := range [...]struct {
		name string
		v    float64
	}{{ChannelRed, r}, {ChannelGreen, g}, {ChannelBlue, b}, {ChannelAlpha, a}} {
		if math.IsNaN(ch.v) {
			return Color{}, &OutOfRangeError{Channel: ch.name, Value: ch.v}
		}
	}
	return Color{r: clamp01(r), g: clamp01(g), b: clamp01(b), a: clamp01(a)}, nil
}

// RGB creates an opaque color. Channels are clamped into [0, 1]; NaN becomes 0.
func RGB(r, g, b float64) Color {
	return RGBA(r, g, b, 1)
}

// RGBA creates a color from four channels. Channels are clamped into [0, 1];
// NaN becomes 0.
func RGBA(r, g, b, a float64) Color {
	return Color{r: clamp01(r), g: clamp01(g), b: clamp01(b), a: clamp01(a)}
}

// FromBytes creates a color from 8-bit channels.
func FromBytes(r, g, b, a uint8) Color {
	return Color{
		r: float64(r) / 255,
		g: float64(g) / 255,
		b: float64(b) / 255,
		a: float64(a) / 255,
	}
}

// FromColor converts a standard color.Color to Color.
func FromColor(c color.Color) Color {
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return Color{
		r: float64(n.R) / 65535,
		g: float64(n.G) / 65535,
		b: float64(n.B) / 65535,
		a: float64(n.A) / 65535,
	}
}

// R returns the red channel.
func (c Color) R() float64 { return c.r }

// G returns the green channel.
func (c Color) G() float64 { return c.g }

// B returns the blue channel.
func (c Color) B() float64 { return c.b }

// A returns the alpha channel.
func (c Color) A() float64 { return c.a }

// Channels returns all four channels in R, G, B, A order.
func (c Color) Channels() (r, g, b, a float64) {
	return c.r, c.g, c.b, c.a
}

// Equal reports whether both colors have exactly the same channels.
func (c Color) Equal(other Color) bool {
	return c == other
}

// ApproxEqual reports whether every channel differs by at most tol.
func (c Color) ApproxEqual(other Color, tol float64) bool {
	return math.Abs(c.r-other.r) <= tol &&
		math.Abs(c.g-other.g) <= tol &&
		math.Abs(c.b-other.b) <= tol &&
		math.Abs(c.a-other.a) <= tol
}

// Bytes quantizes every channel to [0, 255] rounding half to even.
func (c Color) Bytes() (r, g, b, a uint8) {
	return quantize(c.r), quantize(c.g), quantize(c.b), quantize(c.a)
}

// Opaque reports whether alpha quantizes to 0xFF.
func (c Color) Opaque() bool {
	return quantize(c.a) == 0xFF
}

// WithAlpha returns a copy of c with alpha replaced. a is clamped into [0, 1].
func (c Color) WithAlpha(a float64) Color {
	c.a = clamp01(a)
	return c
}

// RGBA implements color.Color. Channels are premultiplied by alpha.
func (c Color) RGBA() (r, g, b, a uint32) {
	r8, g8, b8, a8 := c.Bytes()
	return color.NRGBA{R: r8, G: g8, B: b8, A: a8}.RGBA()
}

// String returns a debug representation, e.g. "Color(1, 0.341, 0.133, 1)".
func (c Color) String() string {
	return fmt.Sprintf("Color(%g, %g, %g, %g)", c.r, c.g, c.b, c.a)
}

// quantize maps a unit channel to a byte using round-half-to-even.
func quantize(v float64) uint8 {
	return uint8(math.RoundToEven(clamp01(v) * 255))
}

func inUnitRange(v float64) bool {
	return v >= 0 && v <= 1
}

// clamp01 restricts a value to [0, 1]. NaN maps to 0.
func clamp01(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v >= 0 {
		return v
	}
	return 0
}

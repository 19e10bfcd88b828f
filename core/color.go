package core

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGB stores explicit 8-bit color channels, decoupled from any surface
type RGB struct {
	R, G, B uint8
}

// RGBA is an RGB with straight alpha in [0, 1]
type RGBA struct {
	RGB
	A float64
}

// Predefined colors
var (
	RGBBlack = RGB{0, 0, 0}
	RGBWhite = RGB{255, 255, 255}
)

// Hex parses "#rrggbb" via go-colorful
func Hex(s string) (RGB, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGBBlack, err
	}
	r, g, b := c.Clamped().RGB255()
	return RGB{r, g, b}, nil
}

// MustHex parses a hex literal, panicking on malformed input
// Intended for package-level color tables
func MustHex(s string) RGB {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Opaque returns c with alpha 1
func (c RGB) Opaque() RGBA {
	return RGBA{RGB: c, A: 1}
}

// WithAlpha returns c with the given alpha
func (c RGB) WithAlpha(a float64) RGBA {
	return RGBA{RGB: c, A: a}
}

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
func (c RGB) Blend(src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return c
	}
	if alpha >= 1 {
		return src
	}
	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(c.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(c.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(c.B)*inv),
	}
}

// Scale multiplies each channel by factor (for distance fading)
func (c RGB) Scale(factor float64) RGB {
	if factor <= 0 {
		return RGBBlack
	}
	if factor >= 1 {
		return c
	}
	return RGB{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
	}
}

// Shade builds the wall tint for a 0-255 brightness: (s, 0.8s, 1.2s), channels clamped
func Shade(s float64) RGB {
	return RGB{
		R: clamp8(s),
		G: clamp8(s * 0.8),
		B: clamp8(s * 1.2),
	}
}

func clamp8(v float64) uint8 {
	if v >= 255 {
		return 255
	}
	if v <= 0 {
		return 0
	}
	return uint8(v)
}

// Package raster draws slide artwork: gradients, anti-aliased shapes,
// seeded decorative overlays and layered glow text on an RGBA canvas.
package raster

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Hex parses a "#rrggbb" or "#rgb" string into an opaque color.
func Hex(s string) (color.NRGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("parsing color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// MustHex is Hex for package-level constants; it panics on malformed input.
func MustHex(s string) color.NRGBA {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// WithAlpha returns c with its alpha replaced.
func WithAlpha(c color.NRGBA, a uint8) color.NRGBA {
	c.A = a
	return c
}

// Scale multiplies each RGB channel by f, truncating. Alpha is unchanged.
func Scale(c color.NRGBA, f float64) color.NRGBA {
	return color.NRGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: c.A,
	}
}

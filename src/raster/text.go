package raster

import (
	"image"
	"image/color"

	"github.com/sagemind/carousel/src/typeset"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// glowOffsets are the diagonal directions each glow layer is spread to.
var glowOffsets = [4]image.Point{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}}

// Text draws s with its line box top-left at (x, y).
func (c *Canvas) Text(x, y int, s string, face *typeset.Face, col color.Color) {
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(x, y+face.Ascent()),
	}
	d.DrawString(s)
}

// CenteredX returns the x that centers s horizontally on the canvas.
func (c *Canvas) CenteredX(s string, face *typeset.Face) int {
	return (c.Width() - int(face.TextWidth(s))) / 2
}

// TextCentered draws s horizontally centered with its line box top at y.
func (c *Canvas) TextCentered(y int, s string, face *typeset.Face, col color.Color) {
	c.Text(c.CenteredX(s, face), y, s, face, col)
}

// Lines draws each line at x, starting at y and advancing by leading.
// It returns the y just below the last line.
func (c *Canvas) Lines(x, y, leading int, lines []string, face *typeset.Face, col color.Color) int {
	for _, line := range lines {
		c.Text(x, y, line, face, col)
		y += leading
	}
	return y
}

// Glow configures the halo drawn under glow text.
type Glow struct {
	Color   color.NRGBA // halo color; its alpha is ignored
	Layers  int         // number of halo layers
	Falloff float64     // alpha of the innermost layer; layer i gets Falloff/i
}

// GlowText draws s at (x, y) in col on top of a soft halo. Layer i (from
// g.Layers down to 1) is drawn at alpha g.Falloff/i, spread i pixels
// diagonally from the anchor.
func (c *Canvas) GlowText(x, y int, s string, face *typeset.Face, col color.Color, g Glow) {
	for i := g.Layers; i > 0; i-- {
		halo := WithAlpha(g.Color, uint8(int(g.Falloff/float64(i))))
		if halo.A == 0 {
			continue
		}
		for _, o := range glowOffsets {
			c.Text(x+o.X*i, y+o.Y*i, s, face, halo)
		}
	}
	c.Text(x, y, s, face, col)
}

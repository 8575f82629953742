package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

// Canvas is a mutable RGBA raster. All drawing composites source-over.
type Canvas struct {
	img *image.RGBA
}

// New returns a w×h canvas filled with bg.
func New(w, h int, bg color.Color) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	return &Canvas{img: img}
}

// NewTransparent returns a fully transparent w×h canvas, used as an overlay layer.
func NewTransparent(w, h int) *Canvas {
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// FromImage copies src into a new canvas anchored at the origin.
func FromImage(src image.Image) *Canvas {
	b := src.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(img, img.Bounds(), src, b.Min, draw.Src)
	return &Canvas{img: img}
}

// Image exposes the underlying raster.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Bounds returns the canvas rectangle.
func (c *Canvas) Bounds() image.Rectangle { return c.img.Bounds() }

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.img.Bounds().Dx() }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.img.Bounds().Dy() }

// At returns the straight-alpha color at (x, y).
func (c *Canvas) At(x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(c.img.At(x, y)).(color.NRGBA)
}

// Clone returns an independent copy.
func (c *Canvas) Clone() *Canvas {
	return FromImage(c.img)
}

// Composite alpha-composites overlay onto c and flattens the result to an
// opaque canvas. c is left untouched.
func (c *Canvas) Composite(overlay *Canvas) *Canvas {
	merged := imaging.Overlay(c.img, overlay.img, image.Point{}, 1.0)
	return flatten(merged)
}

// flatten drops alpha, keeping straight RGB like an RGBA→RGB conversion.
func flatten(src *image.NRGBA) *Canvas {
	for i := 3; i < len(src.Pix); i += 4 {
		src.Pix[i] = 0xff
	}
	return FromImage(src)
}

// Save encodes the canvas as PNG at path.
func (c *Canvas) Save(path string) error {
	if err := imaging.Save(c.img, path, imaging.PNGCompressionLevel(png.DefaultCompression)); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}

package raster

import (
	"image"
	"image/color"
)

// Orientation selects the axis a gradient runs along.
type Orientation int

const (
	// Vertical varies color from the top row to the bottom row.
	Vertical Orientation = iota
	// Horizontal varies color from the left column to the right column.
	Horizontal
)

// String returns the orientation name.
func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Gradient returns a w×h canvas whose rows (Vertical) or columns
// (Horizontal) interpolate linearly from c1 to c2. Channel i of n steps is
// c1 + (c2-c1)*i/n, truncated toward zero.
func Gradient(w, h int, c1, c2 color.NRGBA, o Orientation) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	steps := h
	if o == Horizontal {
		steps = w
	}
	if steps == 0 {
		return &Canvas{img: img}
	}

	for i := 0; i < steps; i++ {
		c := lerpColor(c1, c2, i, steps)
		if o == Vertical {
			row := img.Pix[i*img.Stride : i*img.Stride+w*4]
			for x := 0; x < len(row); x += 4 {
				row[x], row[x+1], row[x+2], row[x+3] = c.R, c.G, c.B, 0xff
			}
			continue
		}
		for y := 0; y < h; y++ {
			p := img.Pix[y*img.Stride+i*4 : y*img.Stride+i*4+4]
			p[0], p[1], p[2], p[3] = c.R, c.G, c.B, 0xff
		}
	}
	return &Canvas{img: img}
}

func lerpColor(c1, c2 color.NRGBA, i, n int) color.NRGBA {
	return color.NRGBA{
		R: lerpChannel(c1.R, c2.R, i, n),
		G: lerpChannel(c1.G, c2.G, i, n),
		B: lerpChannel(c1.B, c2.B, i, n),
		A: 0xff,
	}
}

func lerpChannel(a, b uint8, i, n int) uint8 {
	return uint8(int(float64(a) + float64(int(b)-int(a))*float64(i)/float64(n)))
}

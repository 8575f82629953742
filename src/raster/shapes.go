package raster

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// Point is a position in canvas pixel space.
type Point struct {
	X, Y float64
}

// kappa places cubic control points so four segments approximate a circle.
const kappa = 0.5522847498

// FillRect fills the rectangle spanning (x0, y0) to (x1, y1), both corners
// included.
func (c *Canvas) FillRect(x0, y0, x1, y1 int, col color.Color) {
	r := image.Rect(x0, y0, x1+1, y1+1).Intersect(c.img.Bounds())
	draw.Draw(c.img, r, image.NewUniform(col), image.Point{}, draw.Over)
}

// Line strokes a straight segment of the given width between two pixel
// positions. Zero-length segments draw nothing.
func (c *Canvas) Line(a, b Point, col color.Color, width float64) {
	dx, dy := b.X-a.X, b.Y-a.Y
	length := math.Hypot(dx, dy)
	if length == 0 || width <= 0 {
		return
	}
	// Stroke through pixel centers.
	a.X, a.Y, b.X, b.Y = a.X+0.5, a.Y+0.5, b.X+0.5, b.Y+0.5
	nx, ny := -dy/length*width/2, dx/length*width/2

	c.fillPolygon(col, []Point{
		{a.X + nx, a.Y + ny},
		{b.X + nx, b.Y + ny},
		{b.X - nx, b.Y - ny},
		{a.X - nx, a.Y - ny},
	})
}

// FillCircle fills a disc of radius r centered on (cx, cy).
func (c *Canvas) FillCircle(center Point, r float64, col color.Color) {
	if r <= 0 {
		return
	}
	cx, cy := center.X+0.5, center.Y+0.5
	k := r * kappa
	bbox := floatRect(cx-r, cy-r, cx+r, cy+r)

	c.fill(col, bbox, func(z *vector.Rasterizer, off Point) {
		p := func(x, y float64) (float32, float32) { return float32(x - off.X), float32(y - off.Y) }
		z.MoveTo(p(cx+r, cy))
		bx, by := p(cx+r, cy+k)
		cx1, cy1 := p(cx+k, cy+r)
		dx, dy := p(cx, cy+r)
		z.CubeTo(bx, by, cx1, cy1, dx, dy)
		bx, by = p(cx-k, cy+r)
		cx1, cy1 = p(cx-r, cy+k)
		dx, dy = p(cx-r, cy)
		z.CubeTo(bx, by, cx1, cy1, dx, dy)
		bx, by = p(cx-r, cy-k)
		cx1, cy1 = p(cx-k, cy-r)
		dx, dy = p(cx, cy-r)
		z.CubeTo(bx, by, cx1, cy1, dx, dy)
		bx, by = p(cx+k, cy-r)
		cx1, cy1 = p(cx+r, cy-k)
		dx, dy = p(cx+r, cy)
		z.CubeTo(bx, by, cx1, cy1, dx, dy)
		z.ClosePath()
	})
}

// RegularPolygon returns the vertices of a regular polygon with the given
// circumradius, the first vertex at angle rotation (radians).
func RegularPolygon(center Point, radius float64, sides int, rotation float64) []Point {
	pts := make([]Point, sides)
	for i := range pts {
		angle := rotation + 2*math.Pi/float64(sides)*float64(i)
		pts[i] = Point{
			X: center.X + radius*math.Cos(angle),
			Y: center.Y + radius*math.Sin(angle),
		}
	}
	return pts
}

// StrokeRegularPolygon outlines a regular polygon with a band of the given
// width lying inside the circumradius.
func (c *Canvas) StrokeRegularPolygon(center Point, radius float64, sides int, col color.Color, width float64) {
	if sides < 3 || radius <= 0 || width <= 0 {
		return
	}
	// Inner vertices sit width/cos(π/n) closer so every edge is width thick.
	inner := radius - width/math.Cos(math.Pi/float64(sides))
	if inner < 0 {
		inner = 0
	}
	center = Point{center.X + 0.5, center.Y + 0.5}
	outer := RegularPolygon(center, radius, sides, 0)
	hole := RegularPolygon(center, inner, sides, 0)

	bbox := floatRect(center.X-radius, center.Y-radius, center.X+radius, center.Y+radius)
	c.fill(col, bbox, func(z *vector.Rasterizer, off Point) {
		tracePolygon(z, off, outer)
		// Opposite winding cancels coverage and cuts the hole.
		for i, j := 0, len(hole)-1; i < j; i, j = i+1, j-1 {
			hole[i], hole[j] = hole[j], hole[i]
		}
		if inner > 0 {
			tracePolygon(z, off, hole)
		}
	})
}

// fillPolygon fills a closed polygon.
func (c *Canvas) fillPolygon(col color.Color, pts []Point) {
	if len(pts) < 3 {
		return
	}
	minX, minY, maxX, maxY := pts[0].X, pts[0].Y, pts[0].X, pts[0].Y
	for _, p := range pts[1:] {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	c.fill(col, floatRect(minX, minY, maxX, maxY), func(z *vector.Rasterizer, off Point) {
		tracePolygon(z, off, pts)
	})
}

// fill rasterizes only the part of the canvas covered by bbox. trace
// receives coordinates relative to off, the rasterizer's origin.
func (c *Canvas) fill(col color.Color, bbox image.Rectangle, trace func(z *vector.Rasterizer, off Point)) {
	r := bbox.Intersect(c.img.Bounds())
	if r.Empty() {
		return
	}
	z := vector.NewRasterizer(r.Dx(), r.Dy())
	trace(z, Point{float64(r.Min.X), float64(r.Min.Y)})
	z.Draw(c.img, r, image.NewUniform(col), image.Point{})
}

func tracePolygon(z *vector.Rasterizer, off Point, pts []Point) {
	z.MoveTo(float32(pts[0].X-off.X), float32(pts[0].Y-off.Y))
	for _, p := range pts[1:] {
		z.LineTo(float32(p.X-off.X), float32(p.Y-off.Y))
	}
	z.ClosePath()
}

// floatRect returns the integer rectangle enclosing the float box plus a
// one pixel margin for anti-aliasing.
func floatRect(x0, y0, x1, y1 float64) image.Rectangle {
	return image.Rect(
		int(math.Floor(x0))-1, int(math.Floor(y0))-1,
		int(math.Ceil(x1))+1, int(math.Ceil(y1))+1,
	)
}

package raster

import (
	"image/color"
	"math"
	"math/rand"
)

// Fixed seeds keep the decoration identical across runs.
const (
	CircuitSeed = 42
	HexagonSeed = 123
	NeuralSeed  = 789
)

const (
	circuitTraces   = 15
	circuitReach    = 200
	circuitDot      = 5
	circuitWidth    = 2
	hexagonCount    = 8
	hexagonMinSize  = 40
	hexagonMaxSize  = 80
	hexagonWidth    = 2
	neuralNodes     = 12
	neuralMargin    = 100
	neuralNodeDot   = 6
	neuralLinkRange = 250
)

// randInt returns a uniform integer in [lo, hi], both ends included.
func randInt(r *rand.Rand, lo, hi int) int {
	return lo + r.Intn(hi-lo+1)
}

// CircuitPattern scatters circuit traces (a line with a dot on each end)
// over base in accent at the given opacity.
func CircuitPattern(base *Canvas, accent color.NRGBA, opacity uint8) *Canvas {
	w, h := base.Width(), base.Height()
	overlay := NewTransparent(w, h)
	ink := WithAlpha(accent, opacity)

	r := rand.New(rand.NewSource(CircuitSeed))
	for range circuitTraces {
		x1, y1 := randInt(r, 0, w), randInt(r, 0, h)
		x2, y2 := x1+randInt(r, -circuitReach, circuitReach), y1+randInt(r, -circuitReach, circuitReach)
		a := Point{float64(x1), float64(y1)}
		b := Point{float64(x2), float64(y2)}

		overlay.Line(a, b, ink, circuitWidth)
		overlay.FillCircle(a, circuitDot, ink)
		overlay.FillCircle(b, circuitDot, ink)
	}

	return base.Composite(overlay)
}

// GeometricShapes scatters hexagon outlines over base.
func GeometricShapes(base *Canvas, accent color.NRGBA, opacity uint8) *Canvas {
	w, h := base.Width(), base.Height()
	overlay := NewTransparent(w, h)
	ink := WithAlpha(accent, opacity)

	r := rand.New(rand.NewSource(HexagonSeed))
	for range hexagonCount {
		x, y := randInt(r, 0, w), randInt(r, 0, h)
		size := randInt(r, hexagonMinSize, hexagonMaxSize)
		overlay.StrokeRegularPolygon(Point{float64(x), float64(y)}, float64(size), 6, ink, hexagonWidth)
	}

	return base.Composite(overlay)
}

// NeuralNetwork places nodes over base and links every pair closer than
// neuralLinkRange with a faint edge at half the node opacity.
func NeuralNetwork(base *Canvas, accent color.NRGBA, opacity uint8) *Canvas {
	w, h := base.Width(), base.Height()
	overlay := NewTransparent(w, h)
	node := WithAlpha(accent, opacity)
	edge := WithAlpha(accent, uint8(int(float64(opacity)*0.5)))

	r := rand.New(rand.NewSource(NeuralSeed))
	nodes := make([]Point, neuralNodes)
	for i := range nodes {
		nodes[i] = Point{
			X: float64(randInt(r, neuralMargin, w-neuralMargin)),
			Y: float64(randInt(r, neuralMargin, h-neuralMargin)),
		}
	}

	for i, n1 := range nodes {
		overlay.FillCircle(n1, neuralNodeDot, node)
		for _, n2 := range nodes[i+1:] {
			if math.Hypot(n1.X-n2.X, n1.Y-n2.Y) < neuralLinkRange {
				overlay.Line(n1, n2, edge, 1)
			}
		}
	}

	return base.Composite(overlay)
}

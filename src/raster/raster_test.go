package raster

import (
	"image/color"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/sagemind/carousel/src/typeset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	navy = MustHex("#02222e")
	teal = MustHex("#014f4f")
	cyan = MustHex("#08f1c7")
)

// assertNear allows anti-aliasing rounding of a couple of units per channel.
func assertNear(t *testing.T, want, got color.NRGBA, msgAndArgs ...any) {
	t.Helper()
	assert.InDelta(t, int(want.R), int(got.R), 2, msgAndArgs...)
	assert.InDelta(t, int(want.G), int(got.G), 2, msgAndArgs...)
	assert.InDelta(t, int(want.B), int(got.B), 2, msgAndArgs...)
}

func TestHex(t *testing.T) {
	assert.Equal(t, color.NRGBA{R: 2, G: 34, B: 46, A: 255}, navy)
	assert.Equal(t, color.NRGBA{R: 8, G: 241, B: 199, A: 255}, cyan)

	_, err := Hex("02222e")
	require.Error(t, err)
	assert.Panics(t, func() { MustHex("#zzzzzz") })
}

func TestScale(t *testing.T) {
	assert.Equal(t, color.NRGBA{R: 2, G: 72, B: 59, A: 255}, Scale(cyan, 0.3))
	assert.Equal(t, color.NRGBA{R: 7, G: 216, B: 179, A: 255}, Scale(cyan, 0.9))
}

func TestGradient_Endpoints(t *testing.T) {
	cases := []struct {
		name string
		o    Orientation
		c1   color.NRGBA
		c2   color.NRGBA
	}{
		{"vertical navy to teal", Vertical, navy, teal},
		{"horizontal cyan", Horizontal, Scale(cyan, 0.9), cyan},
		{"vertical light", Vertical, MustHex("#f5f5f5"), MustHex("#ffffff")},
		{"descending", Vertical, cyan, navy},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			const w, h = 320, 256
			g := Gradient(w, h, tc.c1, tc.c2, tc.o)
			require.Equal(t, w, g.Width())
			require.Equal(t, h, g.Height())

			first := g.At(0, 0)
			var last color.NRGBA
			if tc.o == Vertical {
				last = g.At(w/2, h-1)
				assert.Equal(t, first, g.At(w-1, 0), "row is uniform")
			} else {
				last = g.At(w-1, h/2)
				assert.Equal(t, first, g.At(0, h-1), "column is uniform")
			}

			assert.Equal(t, tc.c1, first)
			assert.InDelta(t, int(tc.c2.R), int(last.R), 1)
			assert.InDelta(t, int(tc.c2.G), int(last.G), 1)
			assert.InDelta(t, int(tc.c2.B), int(last.B), 1)
			assert.True(t, g.Image().Opaque())
		})
	}
}

func TestGradient_Deterministic(t *testing.T) {
	a := Gradient(64, 64, navy, teal, Vertical)
	b := Gradient(64, 64, navy, teal, Vertical)
	assert.Equal(t, a.Image().Pix, b.Image().Pix)
}

func TestOverlays_Deterministic(t *testing.T) {
	overlays := map[string]func(*Canvas, color.NRGBA, uint8) *Canvas{
		"circuit":  CircuitPattern,
		"hexagons": GeometricShapes,
		"neural":   NeuralNetwork,
	}

	for name, apply := range overlays {
		t.Run(name, func(t *testing.T) {
			base := Gradient(400, 400, navy, teal, Vertical)
			before := append([]uint8(nil), base.Image().Pix...)

			a := apply(base, cyan, 60)
			b := apply(base, cyan, 60)

			assert.Equal(t, a.Image().Pix, b.Image().Pix, "same seed, same pixels")
			assert.Equal(t, before, base.Image().Pix, "base is not modified")
			assert.NotEqual(t, base.Image().Pix, a.Image().Pix, "overlay drew something")
			assert.True(t, a.Image().Opaque())
		})
	}
}

func TestOverlay_ZeroOpacityIsIdentity(t *testing.T) {
	base := Gradient(400, 400, navy, teal, Vertical)
	out := NeuralNetwork(base, cyan, 0)
	assert.Equal(t, base.Image().Pix, out.Image().Pix)
}

func TestShapes_ClipOutsideCanvas(t *testing.T) {
	c := New(50, 50, navy)
	assert.NotPanics(t, func() {
		c.Line(Point{-300, -300}, Point{400, 400}, cyan, 2)
		c.FillCircle(Point{-100, -100}, 5, cyan)
		c.StrokeRegularPolygon(Point{1000, 1000}, 80, 6, cyan, 2)
		c.FillRect(-10, -10, 5, 5, cyan)
	})
	assert.Equal(t, cyan, c.At(0, 0))
	assertNear(t, cyan, c.At(25, 25), "diagonal line crosses the center")
}

func TestFillCircle(t *testing.T) {
	c := New(40, 40, navy)
	c.FillCircle(Point{20, 20}, 6, cyan)
	assertNear(t, cyan, c.At(20, 20))
	assert.Equal(t, navy, c.At(2, 2))
}

func TestStrokeRegularPolygon_Hollow(t *testing.T) {
	c := New(200, 200, navy)
	c.StrokeRegularPolygon(Point{100, 100}, 60, 6, cyan, 2)
	assert.Equal(t, navy, c.At(100, 100), "center stays empty")
	assert.NotEqual(t, navy, c.At(159, 100), "right vertex is inked")
}

func TestText(t *testing.T) {
	f, err := typeset.LoadBuiltinFont("go-bold")
	require.NoError(t, err)
	defer f.Close()
	face, err := f.Face(48)
	require.NoError(t, err)

	plain := New(300, 120, navy)
	plain.Text(10, 10, "SAGE", face, cyan)
	assert.NotEqual(t, New(300, 120, navy).Image().Pix, plain.Image().Pix)

	glow := New(300, 120, navy)
	glow.GlowText(10, 10, "SAGE", face, cyan, Glow{Color: cyan, Layers: 3, Falloff: 50})
	assert.NotEqual(t, plain.Image().Pix, glow.Image().Pix, "halo adds ink around the glyphs")

	x := plain.CenteredX("SAGE", face)
	assert.Equal(t, (300-int(face.TextWidth("SAGE")))/2, x)
}

func TestLines(t *testing.T) {
	f, err := typeset.LoadBuiltinFont("go-regular")
	require.NoError(t, err)
	defer f.Close()
	face, err := f.Face(20)
	require.NoError(t, err)

	c := New(200, 200, navy)
	y := c.Lines(10, 30, 25, []string{"a", "b", "c"}, face, cyan)
	assert.Equal(t, 105, y)
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slide.png")
	c := Gradient(64, 32, navy, teal, Horizontal)
	require.NoError(t, c.Save(path))

	img, err := imaging.Open(path)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 32, img.Bounds().Dy())

	require.Error(t, c.Save(filepath.Join(t.TempDir(), "missing", "slide.png")))
}

package carousel

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/sagemind/carousel/src/fonts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var wantFiles = []string{
	"slide_01_cover.png",
	"slide_02_sign1.png",
	"slide_03_sign2.png",
	"slide_04_sign3.png",
	"slide_05_sign4.png",
	"slide_06_sign5.png",
	"slide_07_solution.png",
	"slide_08_cta.png",
}

func TestDeck_Names(t *testing.T) {
	for _, v := range Variants {
		deck := Deck(v)
		require.Len(t, deck, len(wantFiles), v)
		for i, sl := range deck {
			assert.Equal(t, wantFiles[i], sl.Name)
			assert.NotEmpty(t, sl.Title)
		}
	}
}

func TestParseVariant(t *testing.T) {
	v, err := ParseVariant("")
	require.NoError(t, err)
	assert.Equal(t, Enhanced, v)

	v, err = ParseVariant("classic")
	require.NoError(t, err)
	assert.Equal(t, Classic, v)

	_, err = ParseVariant("retro")
	require.Error(t, err)

	assert.Equal(t, "carousel_slides", Classic.DefaultOutput())
	assert.Equal(t, "carousel_slides_v2", Enhanced.DefaultOutput())
}

func TestGenerate_EndToEnd(t *testing.T) {
	for _, v := range Variants {
		t.Run(string(v), func(t *testing.T) {
			out := filepath.Join(t.TempDir(), "nested", "slides")

			g, err := NewGenerator(Options{
				Variant: v,
				Output:  out,
				Logger:  zaptest.NewLogger(t),
			})
			require.NoError(t, err)
			defer g.Close()

			results, err := g.Generate(context.Background())
			require.NoError(t, err)
			require.Len(t, results, len(wantFiles))

			entries, err := os.ReadDir(out)
			require.NoError(t, err)
			var names []string
			for _, e := range entries {
				names = append(names, e.Name())
			}
			assert.ElementsMatch(t, wantFiles, names)

			for _, r := range results {
				img, err := imaging.Open(r.Path)
				require.NoError(t, err, r.Path)
				assert.Equal(t, Width, img.Bounds().Dx(), r.Path)
				assert.Equal(t, Height, img.Bounds().Dy(), r.Path)
			}
		})
	}
}

func TestGenerate_MissingFontFallsBack(t *testing.T) {
	out := t.TempDir()
	g, err := NewGenerator(Options{
		Output:   out,
		FontFile: filepath.Join(t.TempDir(), "Helvetica.ttc"),
	})
	require.NoError(t, err)
	defer g.Close()

	assert.True(t, g.FellBack())
	assert.Equal(t, Enhanced, g.Variant())

	results, err := g.Generate(context.Background())
	require.NoError(t, err)
	assert.Len(t, results, 8)

	img, err := imaging.Open(filepath.Join(out, "slide_04_sign3.png"))
	require.NoError(t, err)
	assert.Equal(t, Width, img.Bounds().Dx())
}

func TestGenerate_UsesPrimaryFont(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Brand.ttf")
	require.NoError(t, os.WriteFile(path, fonts.Builtin["go-medium"], 0o644))

	g, err := NewGenerator(Options{Variant: Classic, Output: t.TempDir(), FontFile: path})
	require.NoError(t, err)
	defer g.Close()
	assert.False(t, g.FellBack())
	assert.NotEmpty(t, g.FontName())
}

func TestGenerate_Deterministic(t *testing.T) {
	render := func() []byte {
		g, err := NewGenerator(Options{Output: t.TempDir()})
		require.NoError(t, err)
		defer g.Close()
		c, err := Deck(Enhanced)[0].Render(g.font)
		require.NoError(t, err)
		return c.Image().Pix
	}
	assert.Equal(t, render(), render())
}

func TestGenerate_Cancelled(t *testing.T) {
	g, err := NewGenerator(Options{Output: t.TempDir()})
	require.NoError(t, err)
	defer g.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	results, err := g.Generate(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, results)
}

func TestGenerate_UnwritableOutput(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	g, err := NewGenerator(Options{Output: filepath.Join(blocker, "slides")})
	require.NoError(t, err)
	defer g.Close()

	_, err = g.Generate(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating output directory")
}

func TestNewGenerator_BadFallback(t *testing.T) {
	_, err := NewGenerator(Options{FontFile: "", Fallback: "papyrus"})
	require.Error(t, err)
}

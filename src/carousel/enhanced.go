package carousel

import (
	"image/color"
	"strconv"

	"github.com/sagemind/carousel/src/raster"
	"github.com/sagemind/carousel/src/typeset"
)

// darkGradient is the navy to teal backdrop shared by most enhanced slides.
func darkGradient() *raster.Canvas {
	return raster.Gradient(Width, Height, DarkNavy, DarkTeal, raster.Vertical)
}

func enhancedCover(s *studio) (*raster.Canvas, error) {
	f, err := s.faces(85, 42, 36)
	if err != nil {
		return nil, err
	}
	title, subtitle, small := f[0], f[1], f[2]

	c := darkGradient()
	c = raster.CircuitPattern(c, BrightCyan, 40)
	c = raster.NeuralNetwork(c, BrightCyan, 60)

	y := 250
	for _, line := range coverTitle {
		c.GlowText(c.CenteredX(line, title), y, line, title, White,
			raster.Glow{Color: BrightCyan, Layers: 4, Falloff: 30})
		y += 95
	}

	c.GlowText(c.CenteredX(coverSubtitle, subtitle), 660, coverSubtitle, subtitle, BrightCyan,
		raster.Glow{Color: BrightCyan, Layers: 3, Falloff: 50})

	c.Line(raster.Point{X: Width/2 - 100, Y: 620}, raster.Point{X: Width/2 + 100, Y: 620}, BrightCyan, 3)

	c.TextCentered(880, "Swipe to discover →", small, BrightCyan)
	c.TextCentered(950, brand, small, BrightCyan)
	return c, nil
}

// signLook is the backdrop and palette of an enhanced sign slide.
type signLook struct {
	canvas      *raster.Canvas
	text        color.NRGBA
	accent      color.NRGBA
	numberColor color.NRGBA
}

func lookFor(style Style) signLook {
	switch style {
	case StyleLight:
		c := raster.Gradient(Width, Height, LightGray, White, raster.Vertical)
		return signLook{
			canvas:      raster.CircuitPattern(c, Teal, 30),
			text:        DarkNavy,
			accent:      DarkNavy,
			numberColor: Teal,
		}
	case StyleCyan:
		c := raster.Gradient(Width, Height, raster.Scale(BrightCyan, 0.3), DarkTeal, raster.Vertical)
		return signLook{
			canvas:      raster.NeuralNetwork(c, BrightCyan, 70),
			text:        White,
			accent:      BrightCyan,
			numberColor: BrightCyan,
		}
	default:
		return signLook{
			canvas:      raster.GeometricShapes(darkGradient(), BrightCyan, 50),
			text:        White,
			accent:      BrightCyan,
			numberColor: BrightCyan,
		}
	}
}

func enhancedSign(s *studio, sg Sign) (*raster.Canvas, error) {
	f, err := s.faces(180, 58, 36, 28)
	if err != nil {
		return nil, err
	}
	number, headline, body, logo := f[0], f[1], f[2], f[3]

	look := lookFor(sg.Style)
	c := look.canvas

	c.GlowText(70, 70, strconv.Itoa(sg.Number), number, look.numberColor,
		raster.Glow{Color: look.numberColor, Layers: 5, Falloff: 40})
	c.FillRect(50, 280, 60, 380, look.accent)

	y := c.Lines(80, 350, 72, typeset.Wrap(sg.Headline, headline, wrapWidth), headline, look.accent)
	c.Lines(80, y+30, 48, typeset.Wrap(sg.Body, body, wrapWidth), body, look.text)

	c.Text(80, 970, brand, logo, look.accent)
	return c, nil
}

func enhancedSolution(s *studio) (*raster.Canvas, error) {
	f, err := s.faces(68, 36, 30)
	if err != nil {
		return nil, err
	}
	headline, body, logo := f[0], f[1], f[2]

	c := darkGradient()
	c = raster.CircuitPattern(c, BrightCyan, 50)
	c = raster.NeuralNetwork(c, BrightCyan, 40)

	y := 120
	for _, line := range solutionTitle {
		c.GlowText(80, y, line, headline, White,
			raster.Glow{Color: BrightCyan, Layers: 3, Falloff: 40})
		y += 85
	}

	c.FillRect(80, 300, 300, 305, BrightCyan)

	y = 380
	for _, point := range solutionPoints {
		c.Text(80, y, "✓  "+point, body, BrightCyan)
		y += 90
	}

	c.Text(80, 850, solutionTagline, logo, BrightCyan)
	c.Text(80, 970, brand, logo, BrightCyan)
	return c, nil
}

func enhancedCTA(s *studio) (*raster.Canvas, error) {
	f, err := s.faces(64, 34, 52, 28)
	if err != nil {
		return nil, err
	}
	headline, body, url, logo := f[0], f[1], f[2], f[3]

	c := raster.Gradient(Width, Height, raster.Scale(BrightCyan, 0.9), BrightCyan, raster.Horizontal)
	c = raster.GeometricShapes(c, DarkNavy, 60)

	c.Lines(80, 140, 78, ctaTitle, headline, DarkNavy)
	c.FillRect(80, 420, 200, 425, DarkNavy)
	c.Lines(80, 460, 48, []string{
		"Custom websites + Google Workspace solutions",
		"designed for small businesses, startups,",
		"and growing teams.",
	}, body, DarkNavy)

	// URL box with a one step shadow.
	c.FillRect(70, 690, Width-70, 810, DarkNavy)
	c.FillRect(80, 700, Width-80, 800, DarkNavy)
	c.GlowText(c.CenteredX(ctaURL, url), 725, ctaURL, url, BrightCyan,
		raster.Glow{Color: BrightCyan, Layers: 3, Falloff: 50})

	c.TextCentered(960, brand+"  |  Bay Area Software Consulting", logo, DarkNavy)
	return c, nil
}

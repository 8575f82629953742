package carousel

import (
	"strconv"

	"github.com/sagemind/carousel/src/raster"
	"github.com/sagemind/carousel/src/typeset"
)

func classicCover(s *studio) (*raster.Canvas, error) {
	f, err := s.faces(80, 45, 35)
	if err != nil {
		return nil, err
	}
	title, subtitle, small := f[0], f[1], f[2]

	c := raster.New(Width, Height, DarkNavy)

	y := 280
	for _, line := range coverTitle {
		c.TextCentered(y, line, title, White)
		y += 90
	}
	c.TextCentered(650, coverSubtitle, subtitle, BrightCyan)
	c.TextCentered(920, "Swipe to find out →", small, BrightCyan)
	c.TextCentered(980, brand, small, BrightCyan)
	return c, nil
}

func classicSign(s *studio, sg Sign) (*raster.Canvas, error) {
	f, err := s.faces(200, 60, 38, 28)
	if err != nil {
		return nil, err
	}
	number, headline, body, logo := f[0], f[1], f[2], f[3]

	c := raster.New(Width, Height, sg.Background)
	c.Text(80, 80, strconv.Itoa(sg.Number), number, sg.NumberColor)

	y := c.Lines(80, 350, 75, typeset.Wrap(sg.Headline, headline, wrapWidth), headline, sg.Accent)
	c.Lines(80, y+40, 50, typeset.Wrap(sg.Body, body, wrapWidth), body, sg.Accent)

	c.Text(80, 980, brand, logo, sg.Accent)
	return c, nil
}

func classicSolution(s *studio) (*raster.Canvas, error) {
	f, err := s.faces(65, 38, 30)
	if err != nil {
		return nil, err
	}
	headline, body, logo := f[0], f[1], f[2]

	c := raster.New(Width, Height, DarkNavy)
	c.Lines(80, 120, 80, solutionTitle, headline, White)

	y := 380
	for _, point := range solutionPoints {
		c.Text(80, y, "✓ "+point, body, BrightCyan)
		y += 90
	}

	c.Text(80, 860, solutionTagline, logo, BrightCyan)
	c.Text(80, 980, brand, logo, BrightCyan)
	return c, nil
}

func classicCTA(s *studio) (*raster.Canvas, error) {
	f, err := s.faces(62, 36, 50, 30)
	if err != nil {
		return nil, err
	}
	headline, body, url, logo := f[0], f[1], f[2], f[3]

	c := raster.New(Width, Height, BrightCyan)

	y := c.Lines(80, 140, 75, ctaTitle, headline, DarkNavy)
	c.Lines(80, y+40, 50, []string{
		"Custom websites + Google Workspace",
		"solutions designed for small businesses,",
		"startups, and growing teams.",
	}, body, DarkNavy)

	c.FillRect(80, 700, Width-80, 800, DarkNavy)
	c.TextCentered(720, ctaURL, url, BrightCyan)

	c.TextCentered(980, brand+" | Bay Area Software Consulting", logo, DarkNavy)
	return c, nil
}

package carousel

import (
	"fmt"

	"github.com/sagemind/carousel/src/raster"
	"github.com/sagemind/carousel/src/typeset"
)

// wrapWidth is the text column width shared by every left-aligned slide.
const wrapWidth = Width - 160

// Slide is one file of the deck.
type Slide struct {
	Name  string // output file name, encodes order and purpose
	Title string // human-readable label for progress output

	render func(s *studio) (*raster.Canvas, error)
}

// Render draws the slide using f for every text block.
func (sl Slide) Render(f *typeset.Font) (*raster.Canvas, error) {
	c, err := sl.render(&studio{font: f})
	if err != nil {
		return nil, fmt.Errorf("rendering %s: %w", sl.Name, err)
	}
	return c, nil
}

// Deck returns the eight slides of variant v in order.
func Deck(v Variant) []Slide {
	var (
		cover, solution, cta func(*studio) (*raster.Canvas, error)
		sign                 func(Sign) func(*studio) (*raster.Canvas, error)
	)
	if v == Classic {
		cover, solution, cta = classicCover, classicSolution, classicCTA
		sign = func(sg Sign) func(*studio) (*raster.Canvas, error) {
			return func(s *studio) (*raster.Canvas, error) { return classicSign(s, sg) }
		}
	} else {
		cover, solution, cta = enhancedCover, enhancedSolution, enhancedCTA
		sign = func(sg Sign) func(*studio) (*raster.Canvas, error) {
			return func(s *studio) (*raster.Canvas, error) { return enhancedSign(s, sg) }
		}
	}

	deck := []Slide{{Name: "slide_01_cover.png", Title: "Cover", render: cover}}
	for i, sg := range Signs {
		deck = append(deck, Slide{
			Name:   fmt.Sprintf("slide_%02d_sign%d.png", i+2, sg.Number),
			Title:  fmt.Sprintf("Sign #%d", sg.Number),
			render: sign(sg),
		})
	}
	n := len(deck)
	deck = append(deck,
		Slide{Name: fmt.Sprintf("slide_%02d_solution.png", n+1), Title: "Solution", render: solution},
		Slide{Name: fmt.Sprintf("slide_%02d_cta.png", n+2), Title: "Call to Action", render: cta},
	)
	return deck
}

// studio hands slide renderers sized faces of one font.
type studio struct {
	font *typeset.Font
}

// faces returns one face per size, in argument order.
func (s *studio) faces(sizes ...float64) ([]*typeset.Face, error) {
	out := make([]*typeset.Face, len(sizes))
	for i, size := range sizes {
		f, err := s.font.Face(size)
		if err != nil {
			return nil, err
		}
		out[i] = f
	}
	return out, nil
}

package carousel

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sagemind/carousel/src/fonts"
	"github.com/sagemind/carousel/src/typeset"
	"go.uber.org/zap"
)

// Options configures a Generator. Zero values select the defaults.
type Options struct {
	Variant  Variant
	Output   string // output directory (default: the variant's DefaultOutput)
	FontFile string // primary font; empty renders with Fallback only
	Fallback string // built-in font used when FontFile is empty or cannot be loaded
	Logger   *zap.Logger
}

// Result describes one written slide.
type Result struct {
	Slide   Slide
	Path    string
	Elapsed time.Duration
}

// Generator renders a deck to PNG files, one slide at a time.
type Generator struct {
	variant  Variant
	output   string
	font     *typeset.Font
	fellBack bool
	logger   *zap.Logger
}

// NewGenerator resolves defaults and loads the font. A primary font that
// cannot be loaded is replaced by the fallback without error.
func NewGenerator(opts Options) (*Generator, error) {
	v, err := ParseVariant(string(opts.Variant))
	if err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	output := opts.Output
	if output == "" {
		output = v.DefaultOutput()
	}
	fallback := opts.Fallback
	if fallback == "" {
		fallback = fonts.DefaultFont
	}

	f, fellBack, err := typeset.LoadWithFallback(opts.FontFile, fallback, logger)
	if err != nil {
		return nil, err
	}

	return &Generator{
		variant:  v,
		output:   output,
		font:     f,
		fellBack: fellBack,
		logger:   logger,
	}, nil
}

// Variant returns the deck variant being rendered.
func (g *Generator) Variant() Variant { return g.variant }

// Output returns the output directory.
func (g *Generator) Output() string { return g.output }

// FontName returns the family name of the font in use.
func (g *Generator) FontName() string { return g.font.Name() }

// FellBack reports whether the built-in fallback font is in use.
func (g *Generator) FellBack() bool { return g.fellBack }

// Close releases cached font faces.
func (g *Generator) Close() error { return g.font.Close() }

// Generate creates the output directory if needed, then renders and saves
// every slide in order. Each slide is written before the next is drawn.
func (g *Generator) Generate(ctx context.Context) ([]Result, error) {
	if err := os.MkdirAll(g.output, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	deck := Deck(g.variant)
	results := make([]Result, 0, len(deck))
	for _, sl := range deck {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		start := time.Now()
		c, err := sl.Render(g.font)
		if err != nil {
			return results, err
		}
		path := filepath.Join(g.output, sl.Name)
		if err := c.Save(path); err != nil {
			return results, fmt.Errorf("writing %s: %w", sl.Name, err)
		}
		elapsed := time.Since(start)

		g.logger.Debug("slide written",
			zap.String("slide", sl.Name),
			zap.String("path", path),
			zap.Duration("elapsed", elapsed))
		results = append(results, Result{Slide: sl, Path: path, Elapsed: elapsed})
	}
	return results, nil
}

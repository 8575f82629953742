// Package typeset loads fonts, measures text and wraps it to a pixel width.
package typeset

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sagemind/carousel/src/fonts"
	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// ttcMagic opens every TrueType collection file.
var ttcMagic = []byte("ttcf")

// Font is a parsed font file that hands out sized faces.
type Font struct {
	name  string         // font family name
	data  []byte         // raw TTF/OTF/TTC bytes
	sfnt  *sfnt.Font     // parsed outlines (face 0 for collections)
	faces map[float64]*Face
}

// Face is a font at one pixel size.
type Face struct {
	font.Face
	size float64
}

// Name returns the font family name.
func (f *Font) Name() string { return f.name }

// Data returns the raw font bytes.
func (f *Font) Data() []byte { return f.data }

// Face returns the face for size, creating and caching it on first use.
// Faces are built at 72 DPI so size is in pixels.
func (f *Font) Face(size float64) (*Face, error) {
	if face, ok := f.faces[size]; ok {
		return face, nil
	}
	ff, err := opentype.NewFace(f.sfnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("creating %gpx face for %s: %w", size, f.name, err)
	}
	face := &Face{Face: ff, size: size}
	f.faces[size] = face
	return face, nil
}

// Close releases every cached face.
func (f *Font) Close() error {
	for size, face := range f.faces {
		face.Close()
		delete(f.faces, size)
	}
	return nil
}

// Size returns the pixel size of the face.
func (f *Face) Size() float64 { return f.size }

// TextWidth returns the advance width of s in pixels.
func (f *Face) TextWidth(s string) float64 {
	return float64(font.MeasureString(f.Face, s)) / 64.0 // fixed.Int26_6 → float64
}

// Ascent returns the distance in pixels from the top of a line to its baseline.
func (f *Face) Ascent() int {
	return f.Metrics().Ascent.Ceil()
}

// LoadFont parses a TTF, OTF or TTC (first face) from raw bytes.
// Built-in and file fonts share this path.
func LoadFont(name string, data []byte) (*Font, error) {
	var (
		f   *sfnt.Font
		err error
	)
	if bytes.HasPrefix(data, ttcMagic) {
		var c *sfnt.Collection
		c, err = sfnt.ParseCollection(data)
		if err != nil {
			return nil, fmt.Errorf("parsing font collection %s: %w", name, err)
		}
		f, err = c.Font(0)
	} else {
		f, err = sfnt.Parse(data)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing font %s: %w", name, err)
	}

	// Try to extract font family name from the name table.
	familyName := name
	buf := &sfnt.Buffer{}
	if n, err := f.Name(buf, sfnt.NameIDFamily); err == nil && n != "" {
		familyName = n
	}

	return &Font{
		name:  familyName,
		data:  data,
		sfnt:  f,
		faces: make(map[float64]*Face),
	}, nil
}

// LoadBuiltinFont loads an embedded font by config name.
func LoadBuiltinFont(name string) (*Font, error) {
	data, ok := fonts.Builtin[name]
	if !ok {
		return nil, fmt.Errorf("unknown built-in font %q (available: %v)", name, fonts.Names())
	}
	return LoadFont(name, data)
}

// LoadFontFile loads a TTF/OTF/TTC from a filesystem path.
func LoadFontFile(path string) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading font file %s: %w", path, err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return LoadFont(name, data)
}

// LoadWithFallback loads the font at path, substituting the built-in font
// named fallback when path is empty or cannot be loaded. The second result
// reports whether the fallback was used. Only a broken fallback is an error.
func LoadWithFallback(path, fallback string, logger *zap.Logger) (*Font, bool, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if path != "" {
		f, err := LoadFontFile(path)
		if err == nil {
			logger.Debug("loaded font", zap.String("path", path), zap.String("family", f.Name()))
			return f, false, nil
		}
		logger.Debug("primary font unavailable, using built-in",
			zap.String("path", path),
			zap.String("fallback", fallback),
			zap.Error(err))
	}
	if fallback == "" {
		fallback = fonts.DefaultFont
	}
	f, err := LoadBuiltinFont(fallback)
	if err != nil {
		return nil, true, fmt.Errorf("loading fallback font: %w", err)
	}
	return f, true, nil
}

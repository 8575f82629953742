package config

import "github.com/sagemind/carousel/src/fonts"

// FontConfig holds slide font configuration.
type FontConfig struct {
	File     string `yaml:"file" toml:"file"`         // path to TTF/OTF/TTC (default: Helvetica.ttc)
	Fallback string `yaml:"fallback" toml:"fallback"` // built-in font used when File can't be loaded
}

// DefaultFontFile is the system font the slides are designed around.
const DefaultFontFile = "/System/Library/Fonts/Helvetica.ttc"

// DefaultFontConfig returns sensible defaults for slide fonts.
func DefaultFontConfig() FontConfig {
	return FontConfig{
		File:     DefaultFontFile,
		Fallback: fonts.DefaultFont,
	}
}

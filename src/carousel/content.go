// Package carousel assembles the "5 Signs You've Outgrown Template
// Solutions" slide deck and writes it to disk as PNG files.
package carousel

import (
	"fmt"
	"image/color"

	"github.com/sagemind/carousel/src/raster"
)

// Slide dimensions.
const (
	Width  = 1080
	Height = 1080
)

// Brand colors.
var (
	DarkNavy   = raster.MustHex("#02222e")
	BrightCyan = raster.MustHex("#08f1c7")
	Teal       = raster.MustHex("#008276")
	DarkTeal   = raster.MustHex("#014f4f")
	White      = raster.MustHex("#ffffff")
	LightGray  = raster.MustHex("#f5f5f5")
)

const brand = "SAGEMIND AI"

// Variant selects one of the two deck designs.
type Variant string

const (
	// Classic uses flat backgrounds and plain text.
	Classic Variant = "classic"
	// Enhanced adds gradients, decorative overlays and glow text.
	Enhanced Variant = "enhanced"
)

// Variants lists every supported variant.
var Variants = []Variant{Classic, Enhanced}

// ParseVariant validates a variant name. Empty means Enhanced.
func ParseVariant(s string) (Variant, error) {
	switch Variant(s) {
	case "":
		return Enhanced, nil
	case Classic, Enhanced:
		return Variant(s), nil
	default:
		return "", fmt.Errorf("unknown variant %q (supported: %s, %s)", s, Classic, Enhanced)
	}
}

// DefaultOutput returns the directory a variant is written to unless overridden.
func (v Variant) DefaultOutput() string {
	if v == Classic {
		return "carousel_slides"
	}
	return "carousel_slides_v2"
}

// Style is the look of an enhanced sign slide.
type Style string

const (
	StyleDark  Style = "dark"
	StyleLight Style = "light"
	StyleCyan  Style = "cyan"
)

// Sign is the content of one numbered sign slide.
type Sign struct {
	Number   int
	Headline string
	Body     string

	// Style is the enhanced look.
	Style Style

	// Classic look: flat background, text color and number color.
	Background  color.NRGBA
	Accent      color.NRGBA
	NumberColor color.NRGBA
}

// Signs is the body of the deck, in slide order.
var Signs = []Sign{
	{
		Number:      1,
		Headline:    "You're Building Workarounds for Workarounds",
		Body:        "Your team spends more time finding ways around your software's limitations than actually using it.",
		Style:       StyleDark,
		Background:  White,
		Accent:      DarkNavy,
		NumberColor: BrightCyan,
	},
	{
		Number:      2,
		Headline:    "You're Paying for 80% You Don't Use",
		Body:        "Template platforms charge for every feature—even the ones that don't fit your workflow.",
		Style:       StyleLight,
		Background:  LightGray,
		Accent:      DarkNavy,
		NumberColor: DarkNavy,
	},
	{
		Number:      3,
		Headline:    "Custom Requests Get a 'No' or '$$$'",
		Body:        "Every unique need hits a wall: 'Not possible' or expensive custom development on top of your subscription.",
		Style:       StyleCyan,
		Background:  DarkNavy,
		Accent:      White,
		NumberColor: White,
	},
	{
		Number:      4,
		Headline:    "Integration Hell",
		Body:        "Your Google Workspace, CRM, and website don't talk to each other—so you're copying data manually.",
		Style:       StyleLight,
		Background:  White,
		Accent:      DarkNavy,
		NumberColor: BrightCyan,
	},
	{
		Number:      5,
		Headline:    "Scaling Means Starting Over",
		Body:        "Your template solution can't grow with you. Hitting a growth wall means rebuilding from scratch.",
		Style:       StyleDark,
		Background:  DarkNavy,
		Accent:      White,
		NumberColor: BrightCyan,
	},
}

// Shared copy.
var (
	coverTitle     = []string{"5 Signs You've", "Outgrown", "Template Solutions"}
	coverSubtitle  = "Is your software holding your business back?"
	solutionTitle  = []string{"Custom Doesn't", "Mean Complicated"}
	solutionPoints = []string{
		"Built for YOUR exact workflow",
		"No paying for features you won't use",
		"Seamless integrations with existing tools",
		"Scales with your business, not against it",
	}
	solutionTagline = "Built exactly how you need it."
	ctaTitle        = []string{"Ready to Build", "What You", "Actually Need?"}
	ctaURL          = "sagemindai.io"
)

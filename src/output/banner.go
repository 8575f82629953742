package output

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// BannerInfo holds the identity fields displayed alongside the slide grid.
type BannerInfo struct {
	Version string
	Variant string
	Date    string
}

// bannerTiles is the number of slide tiles drawn in the banner grid.
const bannerTiles = 8

// Banner prints the carousel banner: a grid of numbered slide tiles with the
// identity text vertically centered beside it.
func Banner(w io.Writer, info BannerInfo, color bool) {
	printBanner(w, slideGrid(bannerTiles, 4, color), buildIdentityText(info, color))
}

// buildIdentityText assembles the identity lines shown beside the grid.
func buildIdentityText(info BannerInfo, color bool) []string {
	items := []string{colorize("Sagemind AI Carousel", colorBold+colorCyan, color)}
	for _, s := range []string{info.Version, info.Variant, info.Date} {
		if s != "" {
			items = append(items, colorize(s, colorCyan, color))
		}
	}
	return items
}

// slideGrid draws n numbered tiles, perRow to a row.
func slideGrid(n, perRow int, color bool) []string {
	var lines []string
	for start := 0; start < n; start += perRow {
		var top, mid, bot strings.Builder
		for i := start; i < n && i < start+perRow; i++ {
			top.WriteString("┌──┐")
			mid.WriteString("│" + colorize(fmt.Sprintf("%02d", i+1), colorCyan, color) + "│")
			bot.WriteString("└──┘")
		}
		lines = append(lines, top.String(), mid.String(), bot.String())
	}
	return lines
}

// printBanner composites art lines with identity text, vertically centered.
func printBanner(w io.Writer, artLines, textItems []string) {
	textLines := make([]string, len(artLines))
	startLine := (len(artLines) - len(textItems)) / 2
	for i, item := range textItems {
		idx := startLine + i
		if idx >= 0 && idx < len(textLines) {
			textLines[idx] = item
		}
	}

	fmt.Fprintln(w)
	for i, artLine := range artLines {
		if textLines[i] != "" {
			fmt.Fprintf(w, "%s   %s\n", artLine, textLines[i])
		} else {
			fmt.Fprintln(w, artLine)
		}
	}
	fmt.Fprintln(w)
}

// NewBannerInfo creates a BannerInfo dated today.
func NewBannerInfo(version, variant string) BannerInfo {
	return BannerInfo{
		Version: version,
		Variant: variant,
		Date:    time.Now().UTC().Format("2006-01-02"),
	}
}

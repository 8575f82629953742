// Package output renders run summaries to the terminal.
package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sagemind/carousel/src/carousel"
)

// Colors for terminal output.
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorGray   = "\033[90m"
	colorBold   = "\033[1m"
)

// RunInfo describes the generator setup printed above the slide list.
type RunInfo struct {
	Variant  carousel.Variant
	Output   string
	Font     string
	FellBack bool
}

// Deck writes a framed summary of a generation run: setup rows, one row
// per written slide, and a totals line.
func Deck(w io.Writer, info RunInfo, results []carousel.Result, color bool) {
	var total time.Duration
	for _, r := range results {
		total += r.Elapsed
	}

	sec := NewSection(w, "Carousel", total, color)
	sec.KV("variant", string(info.Variant))
	sec.KV("output", absPath(info.Output))
	font := info.Font
	if info.FellBack {
		font += " " + Dimmed("(built-in fallback)", color)
	}
	sec.KV("font", font)
	sec.Separator()

	for i, r := range results {
		sec.Row("%s %-24s %-16s %s %s",
			colorize(fmt.Sprintf("%02d", i+1), colorGray, color),
			r.Slide.Name,
			r.Slide.Title,
			StatusIcon("success", color),
			Dimmed(formatElapsed(r.Elapsed), color),
		)
	}

	sec.Separator()
	sec.Row("%s slides written", colorize(fmt.Sprintf("%d", len(results)), colorBold, color))
	sec.Close()
}

// absPath returns the absolute form of p when it can be resolved.
func absPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

func colorize(text, code string, color bool) string {
	if !color {
		return text
	}
	return code + text + colorReset
}

func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

// UseColor returns true if colored output should be used.
// Respects NO_COLOR env, TERM=dumb, and terminal detection.
func UseColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return isTerminal() || IsCI()
}

// FontList writes the built-in font names, marking the default.
func FontList(w io.Writer, names []string, def string, color bool) {
	sec := NewSection(w, "Built-in fonts", 0, color)
	for _, n := range names {
		if n == def {
			sec.Row("%s %s", colorize(n, colorCyan, color), Dimmed("(default)", color))
			continue
		}
		sec.Row("%s", n)
	}
	sec.Close()
}

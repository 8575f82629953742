package typeset

import "strings"

// Measurer reports the rendered width of a string in pixels.
type Measurer interface {
	TextWidth(s string) float64
}

// Wrap greedily breaks text into lines no wider than maxWidth, splitting
// only at whitespace. A word that alone exceeds maxWidth gets its own line.
// Blank input yields no lines.
func Wrap(text string, m Measurer, maxWidth float64) []string {
	words := strings.Fields(text)
	var lines []string
	var current []string

	for _, word := range words {
		candidate := strings.Join(append(current, word), " ")
		if m.TextWidth(candidate) <= maxWidth {
			current = append(current, word)
			continue
		}
		if len(current) > 0 {
			lines = append(lines, strings.Join(current, " "))
		}
		current = []string{word}
	}

	if len(current) > 0 {
		lines = append(lines, strings.Join(current, " "))
	}
	return lines
}

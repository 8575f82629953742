package config

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sagemind/carousel/src/fonts"
)

var validVariants = map[string]bool{
	"classic":  true,
	"enhanced": true,
}

// Validate checks a loaded Config.
// Returns warnings (soft issues) and a hard error if the config is invalid.
func Validate(cfg *Config) (warnings []string, err error) {
	var errs []string

	// ── Variant ───────────────────────────────────────────────────────────

	if cfg.Variant != "" && !validVariants[cfg.Variant] {
		kinds := make([]string, 0, len(validVariants))
		for k := range validVariants {
			kinds = append(kinds, k)
		}
		sort.Strings(kinds)
		errs = append(errs, fmt.Sprintf("variant: unknown variant %q (supported: %s)", cfg.Variant, strings.Join(kinds, ", ")))
	}

	// ── Output ────────────────────────────────────────────────────────────

	if cfg.Output != "" && filepath.Clean(cfg.Output) == "." {
		warnings = append(warnings, "output: writing slides into the working directory")
	}

	// ── Font ──────────────────────────────────────────────────────────────

	if cfg.Font.Fallback != "" && !fonts.Has(cfg.Font.Fallback) {
		errs = append(errs, fmt.Sprintf("font.fallback: unknown built-in font %q (available: %s)",
			cfg.Font.Fallback, strings.Join(fonts.Names(), ", ")))
	}
	if cfg.Font.File == "" {
		warnings = append(warnings, "font.file: empty, slides use the built-in fallback font")
	}

	if len(errs) > 0 {
		return warnings, fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return warnings, nil
}

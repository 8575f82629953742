package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the root command in a scratch directory with the given args
// and returns what it printed.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("NO_COLOR", "1")
	t.Cleanup(func() {
		genVariant, genOutput, genFontFile = "", "", ""
		cfgFile, verbose = "", false
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func pngs(t *testing.T, dir string) []string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(dir, "*.png"))
	require.NoError(t, err)
	return matches
}

func TestGenerateCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "deck")
	stdout, err := run(t, "generate",
		"--variant", "classic",
		"--output", out,
		"--font-file", filepath.Join(t.TempDir(), "missing.ttf"))
	require.NoError(t, err)

	assert.Len(t, pngs(t, out), 8)
	assert.Contains(t, stdout, "slide_01_cover.png")
	assert.Contains(t, stdout, "slide_08_cta.png")
	assert.Contains(t, stdout, "8 slides written")
	assert.Contains(t, stdout, "built-in fallback")
}

func TestRootDefaultsToEnhanced(t *testing.T) {
	stdout, err := run(t)
	require.NoError(t, err)

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Len(t, pngs(t, filepath.Join(wd, "carousel_slides_v2")), 8)
	assert.Contains(t, stdout, "enhanced")
}

func TestGenerateCommand_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "carousel.toml")
	out := filepath.Join(dir, "from-config")
	require.NoError(t, os.WriteFile(path, []byte("variant = \"classic\"\noutput = \""+filepath.ToSlash(out)+"\"\n"), 0o644))

	stdout, err := run(t, "generate", "--config", path)
	require.NoError(t, err)
	assert.Len(t, pngs(t, out), 8)
	assert.Contains(t, stdout, "classic")
}

func TestGenerateCommand_Errors(t *testing.T) {
	t.Run("unknown variant", func(t *testing.T) {
		_, err := run(t, "generate", "--variant", "retro", "--output", t.TempDir())
		require.Error(t, err)
	})

	t.Run("missing explicit config", func(t *testing.T) {
		_, err := run(t, "generate", "--config", filepath.Join(t.TempDir(), "nope.yml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "loading config")
	})

	t.Run("positional args rejected", func(t *testing.T) {
		_, err := run(t, "generate", "extra")
		require.Error(t, err)
	})
}

func TestVersionAndFonts(t *testing.T) {
	stdout, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "carousel ")

	stdout, err = run(t, "fonts")
	require.NoError(t, err)
	assert.Contains(t, stdout, "go-regular")
	assert.Contains(t, stdout, "(default)")
}

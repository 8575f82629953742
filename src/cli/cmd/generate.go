package cmd

import (
	"github.com/sagemind/carousel/src/carousel"
	"github.com/sagemind/carousel/src/output"
	"github.com/sagemind/carousel/src/version"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	genVariant  string
	genOutput   string
	genFontFile string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render the carousel slides to PNG files",
	Long: `Render all eight slides of the carousel and write them to the output directory.

Flags override the config file. The output directory defaults to
carousel_slides_v2 for the enhanced variant and carousel_slides for classic.
When the font file cannot be loaded the built-in fallback font is used.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	addGenerateFlags(generateCmd)
	rootCmd.AddCommand(generateCmd)
}

// addGenerateFlags registers the generate flags on c. The root command
// carries them too so a bare invocation accepts the same overrides.
func addGenerateFlags(c *cobra.Command) {
	c.Flags().StringVar(&genVariant, "variant", "", "slide variant: enhanced or classic (default from config)")
	c.Flags().StringVarP(&genOutput, "output", "o", "", "output directory (default depends on variant)")
	c.Flags().StringVar(&genFontFile, "font-file", "", "primary TrueType/OpenType font file")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	opts := carousel.Options{
		Variant:  carousel.Variant(cfg.Variant),
		Output:   cfg.Output,
		FontFile: cfg.Font.File,
		Fallback: cfg.Font.Fallback,
		Logger:   logger,
	}
	if genVariant != "" {
		opts.Variant = carousel.Variant(genVariant)
	}
	if genOutput != "" {
		opts.Output = genOutput
	}
	if genFontFile != "" {
		opts.FontFile = genFontFile
	}

	gen, err := carousel.NewGenerator(opts)
	if err != nil {
		return err
	}
	defer gen.Close()

	logger.Debug("generating carousel",
		zap.String("variant", string(gen.Variant())),
		zap.String("output", gen.Output()),
		zap.String("font", gen.FontName()),
		zap.Bool("fallback", gen.FellBack()))

	w := cmd.OutOrStdout()
	color := output.UseColor()
	output.Banner(w, output.NewBannerInfo(version.Resolved(), string(gen.Variant())), color)
	output.CIHeader(w)

	output.SectionStart(w, "carousel_render", "Rendering slides")
	results, err := gen.Generate(cmd.Context())
	output.SectionEnd(w, "carousel_render")

	output.Deck(w, output.RunInfo{
		Variant:  gen.Variant(),
		Output:   gen.Output(),
		Font:     gen.FontName(),
		FellBack: gen.FellBack(),
	}, results, color)
	return err
}

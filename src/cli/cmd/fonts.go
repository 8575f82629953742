package cmd

import (
	"github.com/sagemind/carousel/src/fonts"
	"github.com/sagemind/carousel/src/output"
	"github.com/spf13/cobra"
)

var fontsCmd = &cobra.Command{
	Use:   "fonts",
	Short: "List the built-in fallback fonts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		output.FontList(cmd.OutOrStdout(), fonts.Names(), fonts.DefaultFont, output.UseColor())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fontsCmd)
}

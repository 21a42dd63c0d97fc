package main

import (
	"fmt"

	"github.com/setanarut/beadgrid/utils"
	"github.com/spf13/cobra"
)

var paletteCmd = &cobra.Command{
	Use:   "palette [image]",
	Short: "Print the active palette, or one extracted from an image",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		opts, err := cfg.Options()
		if err != nil {
			return err
		}
		palette := opts.Palette

		if len(args) == 1 {
			img, err := utils.ReadImage(args[0])
			if err != nil {
				return err
			}
			n, _ := cmd.Flags().GetInt("colors")
			methodName, _ := cmd.Flags().GetString("method")
			method, ok := utils.ParsePaletteMethod(methodName)
			if !ok {
				return fmt.Errorf("unknown palette method %q", methodName)
			}
			palette = utils.ExtractPalette(img, n, method, logger)
		}
		if sorted, _ := cmd.Flags().GetBool("sort"); sorted {
			utils.SortPaletteByBrightness(palette)
		}
		if err := palette.Validate(); err != nil {
			return err
		}

		for _, h := range palette.Hex() {
			fmt.Println(h)
		}
		if swatch, _ := cmd.Flags().GetString("swatch"); swatch != "" {
			return utils.SavePalette(palette, 64, swatch)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(paletteCmd)

	paletteCmd.Flags().Int("colors", 8, "Number of colors to extract")
	paletteCmd.Flags().String("method", "dominantcolor", "Extraction method: dominantcolor or kmeans")
	paletteCmd.Flags().Bool("sort", false, "Sort from darkest to brightest")
	paletteCmd.Flags().String("swatch", "", "Also write a PNG swatch to this file")
}

package main

import (
	"fmt"
	"os"

	"github.com/setanarut/beadgrid"
	"github.com/setanarut/beadgrid/utils"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <image>",
	Short: "Convert an image into a bead pattern PNG",
	Long: `Resamples the image to the grid size, maps every cell to the nearest palette color
and writes the rendered pattern. Pixels that are more than half transparent stay empty.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("width") {
			cfg.Width, _ = cmd.Flags().GetInt("width")
		}
		if cmd.Flags().Changed("height") {
			cfg.Height, _ = cmd.Flags().GetInt("height")
		}
		if cmd.Flags().Changed("sampler") {
			cfg.Sampler, _ = cmd.Flags().GetString("sampler")
		}
		if cmd.Flags().Changed("cell-size") {
			cfg.CellSize, _ = cmd.Flags().GetInt("cell-size")
		}

		opts, err := cfg.Options()
		if err != nil {
			return err
		}
		opts.Logger = logger

		img, err := utils.ReadImage(args[0])
		if err != nil {
			return err
		}

		if n, _ := cmd.Flags().GetInt("extract"); n > 0 {
			methodName, _ := cmd.Flags().GetString("method")
			method, ok := utils.ParsePaletteMethod(methodName)
			if !ok {
				return fmt.Errorf("unknown palette method %q", methodName)
			}
			opts.Palette = utils.ExtractPalette(img, n, method, logger)
			utils.SortPaletteByBrightness(opts.Palette)
			logger.Info("palette extracted", "method", method, "colors", len(opts.Palette))
		}

		editor, err := beadgrid.NewEditor(opts)
		if err != nil {
			return err
		}
		if err := editor.Import(img); err != nil {
			return err
		}

		render := cfg.RenderOptions()
		if preview, _ := cmd.Flags().GetBool("preview"); preview {
			render = beadgrid.PreviewRenderOptions(editor.Grid(), 280)
		}
		if lines, _ := cmd.Flags().GetBool("grid-lines"); lines {
			render.GridLines = true
		}

		out, _ := cmd.Flags().GetString("output")
		if err := utils.SavePattern(editor.Grid(), render, out); err != nil {
			return err
		}

		g := editor.Grid()
		fmt.Fprintf(os.Stdout, "Pattern size: %d × %d beads\n", g.Width(), g.Height())
		fmt.Fprintf(os.Stdout, "Beads used: %d\n", g.BeadCount())
		if counts, _ := cmd.Flags().GetBool("counts"); counts {
			hist := g.Histogram()
			for _, c := range editor.Palette() {
				if n := hist[c]; n > 0 {
					fmt.Fprintf(os.Stdout, "  %s  %d\n", c.Hex(), n)
				}
			}
		}
		return nil
	},
}

func loadConfig(cmd *cobra.Command) (utils.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return utils.Config{}, nil
	}
	return utils.LoadConfig(path)
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().Int("width", 20, "Grid width in beads (5-50)")
	importCmd.Flags().Int("height", 20, "Grid height in beads (5-50)")
	importCmd.Flags().String("sampler", "nearest", "Resampler: nearest, approxbilinear, bilinear, catmullrom")
	importCmd.Flags().Int("cell-size", beadgrid.DefaultCellSize, "Output pixels per bead")
	importCmd.Flags().Int("extract", 0, "Derive an N color palette from the image instead of the configured one")
	importCmd.Flags().String("method", "dominantcolor", "Palette extraction method: dominantcolor or kmeans")
	importCmd.Flags().Bool("preview", false, "Render with background and bead highlights")
	importCmd.Flags().Bool("grid-lines", false, "Draw cell borders")
	importCmd.Flags().Bool("counts", false, "Print bead counts per color")
	importCmd.Flags().StringP("output", "o", "bead-pattern.png", "Output PNG file")
}

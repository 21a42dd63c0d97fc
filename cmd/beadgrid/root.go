package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/setanarut/beadgrid/internal/logging"
	"github.com/spf13/cobra"
)

var logger = logging.NewNop()

var rootCmd = &cobra.Command{
	Use:   "beadgrid",
	Short: "beadgrid turns images into bead patterns",
	Long:  `beadgrid approximates images onto a bead color palette and renders the resulting pattern.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		logger = logging.New(level)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log editor operations to stderr")
	rootCmd.PersistentFlags().StringP("config", "c", "", "YAML config with size, sampler and palette")
}

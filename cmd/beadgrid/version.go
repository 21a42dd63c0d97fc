package main

import (
	"fmt"

	"github.com/setanarut/beadgrid"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of beadgrid",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("beadgrid version %s\n", beadgrid.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

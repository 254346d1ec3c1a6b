package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"figctx"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of figctx",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("figctx version %s\n", strings.TrimSpace(figctx.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "figctx",
	Short: "figctx serves simplified Figma designs to coding agents",
	Long: `figctx fetches Figma files, strips them down to the properties that
matter for implementing a layout, and serves the result as compact YAML
over the Model Context Protocol.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("figma-api-key", "", "Figma personal access token (overrides FIGMA_API_KEY)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error (overrides LOG_LEVEL)")
}

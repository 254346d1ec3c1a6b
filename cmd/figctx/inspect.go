package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"figctx/internal/config"
	"figctx/internal/tui"
	"figctx/pkg/figma"
)

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect <file-key-or-url>",
	Short: "Fetch a design and print its simplified form",
	Long: `Fetches a Figma file (or a node within it) and prints the simplified
design. Interactive terminals get a rendered summary; pipes and the
--yaml flag get the full YAML document.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()
		applyFlags(cmd, cfg)
		if err := cfg.Validate(); err != nil {
			log.Fatalf("Error: %v", err)
		}

		logger, err := newLogger(cfg)
		if err != nil {
			log.Fatalf("Error: %v", err)
		}

		fileKey, err := figma.ExtractFileKey(args[0])
		if err != nil {
			log.Fatalf("Error: %v", err)
		}

		nodeID, _ := cmd.Flags().GetString("node-id")
		if nodeID == "" {
			nodeID = figma.ExtractNodeID(args[0])
		}
		depth, _ := cmd.Flags().GetInt("depth")
		asYAML, _ := cmd.Flags().GetBool("yaml")

		svc, closer, err := buildService(cfg, logger)
		if err != nil {
			log.Fatalf("Error initializing figctx: %v", err)
		}
		if closer != nil {
			defer closer()
		}

		ctx := cmd.Context()

		if asYAML || !tui.IsTerminal(os.Stdout) {
			out, err := svc.DesignYAML(ctx, fileKey, nodeID, depth)
			if err != nil {
				log.Fatalf("Error: %v", err)
			}
			fmt.Print(out)
			return
		}

		design, err := svc.Design(ctx, fileKey, nodeID, depth)
		if err != nil {
			log.Fatalf("Error: %v", err)
		}

		render := tui.NewRenderer()
		out, rerr := render(tui.DesignSummary(design))
		if rerr != nil {
			out = tui.DesignSummary(design)
		}
		fmt.Println(tui.Header("figctx inspect"))
		fmt.Print(out)
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().String("node-id", "", "Node id to fetch (defaults to the node-id URL param)")
	inspectCmd.Flags().Int("depth", 0, "Traversal depth limit (0 = full tree)")
	inspectCmd.Flags().Bool("yaml", false, "Print the full YAML document even on a terminal")
}

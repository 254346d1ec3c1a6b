/*
Package figctx turns Figma design files into compact, model-ready YAML.

It fetches documents from the Figma REST API, strips them down to the
properties that matter for implementing a layout (colors, typography,
auto-layout, effects), deduplicates repeated styles into a shared
lookup table, and prunes everything empty. The result is a fraction of
the raw API payload while staying faithful to the design.

# Concept

Figma's API returns every node with every property, visible or not,
meaningful or not. figctx walks the tree once, keeps only visible
nodes, rewrites paints and auto-layout into CSS-flavored values, and
interns any style worth sharing under a short id. Consumers read the
node tree top-down and resolve style ids against the table when they
need the details.

# Usage

Build a Service on top of a Figma client and ask for a design:

	package main

	import (
		"context"
		"fmt"
		"log"
		"os"

		"figctx"
		"figctx/pkg/figma"
	)

	func main() {
		client := figma.NewClient(os.Getenv("FIGMA_API_KEY"))
		svc := figctx.New(client)

		yaml, err := svc.DesignYAML(context.Background(), "FILE_KEY", "", 0)
		if err != nil {
			log.Fatal(err)
		}

		fmt.Println(yaml)
	}

The cmd/figctx binary wraps the same Service behind an MCP server
(stdio or SSE) plus an inspect command for humans.
*/
package figctx

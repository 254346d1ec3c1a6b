// Package tui renders inspect output for human terminals. Non-TTY
// destinations get plain YAML instead.
package tui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"figctx/pkg/simplify"
)

// NewRenderer returns a function that renders markdown using glamour,
// matching the terminal's light or dark background.
func NewRenderer() func(string) (string, error) {
	r, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
	)

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}

// Header colors a heading line when the terminal supports it.
func Header(text string) string {
	p := termenv.ColorProfile()
	return termenv.String(text).Foreground(p.Color("#818cf8")).Bold().String()
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// DesignSummary builds a markdown digest of a simplified design: file
// metadata, node and style counts, and one row per root frame.
func DesignSummary(d *simplify.Design) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", d.Name)
	if d.LastModified != "" {
		fmt.Fprintf(&b, "Last modified: %s\n\n", d.LastModified)
	}
	fmt.Fprintf(&b, "**%d** nodes, **%d** shared styles\n\n",
		countNodes(d.Nodes), len(d.GlobalVars.Styles))

	if len(d.Nodes) > 0 {
		b.WriteString("| Root | Type | Nodes |\n")
		b.WriteString("| --- | --- | --- |\n")
		for _, n := range d.Nodes {
			fmt.Fprintf(&b, "| %s | %s | %d |\n", n.Name, n.Type, 1+countNodes(n.Children))
		}
	}

	return b.String()
}

func countNodes(nodes []simplify.Node) int {
	total := len(nodes)
	for _, n := range nodes {
		total += countNodes(n.Children)
	}
	return total
}

package simplify

import (
	"figctx/pkg/figma"
)

// Layout captures a node's auto-layout behavior in CSS-flavored terms.
type Layout struct {
	Mode           string  `json:"mode"`
	JustifyContent string  `json:"justifyContent,omitempty"`
	AlignItems     string  `json:"alignItems,omitempty"`
	Gap            string  `json:"gap,omitempty"`
	Padding        string  `json:"padding,omitempty"`
	Sizing         *Sizing `json:"sizing,omitempty"`
	Position       string  `json:"position,omitempty"`
}

// Sizing maps Figma's layout sizing onto fixed/fill/hug per axis.
type Sizing struct {
	Horizontal string `json:"horizontal,omitempty"`
	Vertical   string `json:"vertical,omitempty"`
}

// IsTrivial reports whether the layout carries no information worth
// keeping on the node.
func (l Layout) IsTrivial() bool {
	return l.Mode == "none" && l.Position == ""
}

type shorthandConfig struct {
	suffix     string
	ignoreZero bool
}

// ShorthandOption adjusts CSSShorthand formatting.
type ShorthandOption func(*shorthandConfig)

// WithSuffix overrides the unit suffix appended to each value.
func WithSuffix(suffix string) ShorthandOption {
	return func(c *shorthandConfig) {
		c.suffix = suffix
	}
}

// WithZero keeps an all-zero box instead of collapsing it to "".
func WithZero() ShorthandOption {
	return func(c *shorthandConfig) {
		c.ignoreZero = false
	}
}

// CSSShorthand collapses four box values into the shortest CSS
// shorthand. An all-zero box collapses to "" unless WithZero is given.
// The two-value form requires both vertical and horizontal pairs to
// match; a lone top/bottom match still prints four values.
func CSSShorthand(top, right, bottom, left float64, opts ...ShorthandOption) string {
	cfg := shorthandConfig{suffix: "px", ignoreZero: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.ignoreZero && top == 0 && right == 0 && bottom == 0 && left == 0 {
		return ""
	}

	val := func(v float64) string { return formatNum(v) + cfg.suffix }

	switch {
	case top == right && right == bottom && bottom == left:
		return val(top)
	case right == left && top == bottom:
		return val(top) + " " + val(right)
	case right == left:
		return val(top) + " " + val(right) + " " + val(bottom)
	default:
		return val(top) + " " + val(right) + " " + val(bottom) + " " + val(left)
	}
}

// BuildLayout flattens a node's auto-layout fields. Callers drop
// trivial results instead of interning them.
func BuildLayout(n *figma.Node) Layout {
	layout := Layout{Mode: "none"}

	switch n.LayoutMode {
	case "HORIZONTAL":
		layout.Mode = "row"
	case "VERTICAL":
		layout.Mode = "column"
	}

	if layout.Mode != "none" {
		layout.JustifyContent = alignValue(n.PrimaryAxisAlignItems)
		layout.AlignItems = alignValue(n.CounterAxisAlignItems)
		if n.ItemSpacing > 0 {
			layout.Gap = formatPx(n.ItemSpacing)
		}
		layout.Padding = CSSShorthand(n.PaddingTop, n.PaddingRight, n.PaddingBottom, n.PaddingLeft)

		if h, v := sizingValue(n.LayoutSizingHorizontal), sizingValue(n.LayoutSizingVertical); h != "" || v != "" {
			layout.Sizing = &Sizing{Horizontal: h, Vertical: v}
		}
	}

	if n.LayoutPositioning == "ABSOLUTE" {
		layout.Position = "absolute"
	}

	return layout
}

func alignValue(v string) string {
	switch v {
	case "MIN":
		return "flex-start"
	case "MAX":
		return "flex-end"
	case "CENTER":
		return "center"
	case "SPACE_BETWEEN":
		return "space-between"
	case "BASELINE":
		return "baseline"
	}
	return ""
}

func sizingValue(v string) string {
	switch v {
	case "FIXED":
		return "fixed"
	case "FILL":
		return "fill"
	case "HUG":
		return "hug"
	}
	return ""
}

func formatPx(v float64) string {
	return formatNum(v) + "px"
}

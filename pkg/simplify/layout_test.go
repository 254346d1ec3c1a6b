package simplify_test

import (
	"testing"

	"figctx/pkg/figma"
	"figctx/pkg/simplify"
)

func TestCSSShorthand(t *testing.T) {
	cases := []struct {
		name                     string
		top, right, bottom, left float64
		want                     string
	}{
		{"all zero collapses to empty", 0, 0, 0, 0, ""},
		{"all equal", 10, 10, 10, 10, "10px"},
		{"vertical and horizontal pairs", 10, 20, 10, 20, "10px 20px"},
		{"distinct vertical", 10, 20, 30, 20, "10px 20px 30px"},
		{"fully distinct", 10, 20, 30, 40, "10px 20px 30px 40px"},
		{"matching vertical but not horizontal", 10, 20, 10, 40, "10px 20px 10px 40px"},
	}

	for _, tc := range cases {
		got := simplify.CSSShorthand(tc.top, tc.right, tc.bottom, tc.left)
		if got != tc.want {
			t.Errorf("%s: CSSShorthand(%v, %v, %v, %v) = %q, want %q",
				tc.name, tc.top, tc.right, tc.bottom, tc.left, got, tc.want)
		}
	}
}

func TestCSSShorthandOptions(t *testing.T) {
	if got := simplify.CSSShorthand(0, 0, 0, 0, simplify.WithZero()); got != "0px" {
		t.Errorf("WithZero: got %q, want %q", got, "0px")
	}
	if got := simplify.CSSShorthand(10, 10, 10, 10, simplify.WithSuffix("")); got != "10" {
		t.Errorf("WithSuffix: got %q, want %q", got, "10")
	}
	if got := simplify.CSSShorthand(1.5, 1.5, 1.5, 1.5); got != "1.5px" {
		t.Errorf("fractional: got %q, want %q", got, "1.5px")
	}
}

func TestBuildLayoutRow(t *testing.T) {
	layout := simplify.BuildLayout(&figma.Node{
		LayoutMode:            "HORIZONTAL",
		PrimaryAxisAlignItems: "SPACE_BETWEEN",
		CounterAxisAlignItems: "CENTER",
		ItemSpacing:           8,
		PaddingTop:            10,
		PaddingRight:          20,
		PaddingBottom:         10,
		PaddingLeft:           20,
	})

	if layout.Mode != "row" {
		t.Errorf("Mode = %q, want %q", layout.Mode, "row")
	}
	if layout.JustifyContent != "space-between" {
		t.Errorf("JustifyContent = %q, want %q", layout.JustifyContent, "space-between")
	}
	if layout.AlignItems != "center" {
		t.Errorf("AlignItems = %q, want %q", layout.AlignItems, "center")
	}
	if layout.Gap != "8px" {
		t.Errorf("Gap = %q, want %q", layout.Gap, "8px")
	}
	if layout.Padding != "10px 20px" {
		t.Errorf("Padding = %q, want %q", layout.Padding, "10px 20px")
	}
	if layout.IsTrivial() {
		t.Error("row layout reported trivial")
	}
}

func TestBuildLayoutColumnSizing(t *testing.T) {
	layout := simplify.BuildLayout(&figma.Node{
		LayoutMode:             "VERTICAL",
		LayoutSizingHorizontal: "FILL",
		LayoutSizingVertical:   "HUG",
	})

	if layout.Mode != "column" {
		t.Errorf("Mode = %q, want %q", layout.Mode, "column")
	}
	if layout.Sizing == nil {
		t.Fatal("expected sizing to be set")
	}
	if layout.Sizing.Horizontal != "fill" || layout.Sizing.Vertical != "hug" {
		t.Errorf("Sizing = %+v, want fill/hug", layout.Sizing)
	}
}

func TestBuildLayoutAbsolute(t *testing.T) {
	layout := simplify.BuildLayout(&figma.Node{LayoutPositioning: "ABSOLUTE"})
	if layout.Mode != "none" {
		t.Errorf("Mode = %q, want %q", layout.Mode, "none")
	}
	if layout.Position != "absolute" {
		t.Errorf("Position = %q, want %q", layout.Position, "absolute")
	}
	if layout.IsTrivial() {
		t.Error("absolute layout reported trivial")
	}
}

func TestBuildLayoutTrivial(t *testing.T) {
	layout := simplify.BuildLayout(&figma.Node{Type: "RECTANGLE"})
	if !layout.IsTrivial() {
		t.Errorf("expected trivial layout for plain node, got %+v", layout)
	}
}

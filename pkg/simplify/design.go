package simplify

import (
	"encoding/json"
	"fmt"

	"figctx/pkg/figma"
)

// StyleID identifies an interned style value. IDs are scoped to a
// single conversion run and are not stable across runs.
type StyleID string

// StyleRef is either a StyleID or, for trivial solid fills, an inline
// CSS color string such as "#FF0000".
type StyleRef string

// ColorValue pairs a hex color with its effective opacity.
type ColorValue struct {
	Hex     string  `json:"hex"`
	Opacity float64 `json:"opacity"`
}

// GradientStop is one stop of a simplified gradient. The stop color
// keeps its own alpha; paint-level opacity does not apply to stops.
type GradientStop struct {
	Position float64    `json:"position"`
	Color    ColorValue `json:"color"`
}

// Fill is one simplified paint. Solid paints collapse to a plain CSS
// color string; image and gradient paints keep a structured form.
type Fill struct {
	// CSS holds the color for solid paints ("#RRGGBB" or "rgba(...)").
	// When set, the fill serializes as that bare string.
	CSS string `json:"-"`

	Type string `json:"type,omitempty"`

	ImageRef  string `json:"imageRef,omitempty"`
	ScaleMode string `json:"scaleMode,omitempty"`

	GradientHandlePositions []figma.Vector `json:"gradientHandlePositions,omitempty"`
	GradientStops           []GradientStop `json:"gradientStops,omitempty"`
}

// MarshalJSON emits solid fills as bare strings and everything else as
// an object.
func (f Fill) MarshalJSON() ([]byte, error) {
	if f.CSS != "" {
		return json.Marshal(f.CSS)
	}
	type structured Fill
	return json.Marshal(structured(f))
}

// Strokes groups a node's stroke paints with their weight.
type Strokes struct {
	Colors       []Fill `json:"colors,omitempty"`
	StrokeWeight string `json:"strokeWeight,omitempty"`
}

// Effect is a simplified visual effect.
type Effect struct {
	Type   string        `json:"type"`
	Offset *figma.Vector `json:"offset,omitempty"`
	Radius float64       `json:"radius,omitempty"`
	Spread float64       `json:"spread,omitempty"`
	Color  string        `json:"color,omitempty"`
}

// TextStyle is the simplified typography of a TEXT node.
type TextStyle struct {
	FontFamily          string  `json:"fontFamily,omitempty"`
	FontWeight          float64 `json:"fontWeight,omitempty"`
	FontSize            float64 `json:"fontSize,omitempty"`
	LineHeight          string  `json:"lineHeight,omitempty"`
	LetterSpacing       string  `json:"letterSpacing,omitempty"`
	TextCase            string  `json:"textCase,omitempty"`
	TextAlignHorizontal string  `json:"textAlignHorizontal,omitempty"`
	TextAlignVertical   string  `json:"textAlignVertical,omitempty"`
}

// GlobalVars collects the style values shared across a design. Values
// are the concrete types this package interns ([]Fill, Strokes,
// []Effect, Layout, TextStyle); the table is write-only output and is
// never discriminated on read.
type GlobalVars struct {
	Styles map[StyleID]any `json:"styles"`
}

// Node is one simplified design node.
type Node struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`

	Text      string  `json:"text,omitempty"`
	TextStyle StyleID `json:"textStyle,omitempty"`

	Fills   StyleRef `json:"fills,omitempty"`
	Strokes StyleID  `json:"strokes,omitempty"`
	Effects StyleID  `json:"effects,omitempty"`
	Layout  StyleID  `json:"layout,omitempty"`

	// Opacity distinguishes absent from fully transparent; 0 must
	// survive encoding.
	Opacity      *float64    `json:"opacity,omitempty"`
	BorderRadius string      `json:"borderRadius,omitempty"`
	BoundingBox  *figma.Rect `json:"boundingBox,omitempty"`
	ComponentID  string      `json:"componentId,omitempty"`

	Children []Node `json:"children,omitempty"`
}

// Design is the simplified output of one conversion run.
type Design struct {
	Name         string     `json:"name"`
	LastModified string     `json:"lastModified"`
	ThumbnailURL string     `json:"thumbnailUrl"`
	Nodes        []Node     `json:"nodes"`
	GlobalVars   GlobalVars `json:"globalVars"`
}

// Document returns the design as a generic tree with every empty value
// pruned, ready for serialization.
func (d *Design) Document() (map[string]any, error) {
	raw, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("encode design: %w", err)
	}

	var tree map[string]any
	if err := json.Unmarshal(raw, &tree); err != nil {
		return nil, fmt.Errorf("decode design: %w", err)
	}

	pruned, _ := Compact(tree).(map[string]any)
	return pruned, nil
}

package figma

// Color is an RGBA color with all channels in the 0-1 range, as the
// Figma API encodes it.
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// Vector is a 2D point.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is an axis-aligned bounding box in absolute canvas coordinates.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// ColorStop is a single gradient stop.
type ColorStop struct {
	Position float64 `json:"position"`
	Color    *Color  `json:"color,omitempty"`
}

// Paint describes a fill or stroke. Which fields are set depends on Type.
type Paint struct {
	Type    string   `json:"type"`
	Visible *bool    `json:"visible,omitempty"`
	Opacity *float64 `json:"opacity,omitempty"`

	// SOLID
	Color *Color `json:"color,omitempty"`

	// IMAGE
	ImageRef  string `json:"imageRef,omitempty"`
	ScaleMode string `json:"scaleMode,omitempty"`

	// GRADIENT_*
	GradientHandlePositions []Vector    `json:"gradientHandlePositions,omitempty"`
	GradientStops           []ColorStop `json:"gradientStops,omitempty"`
}

// IsVisible reports the paint's effective visibility. The API omits the
// flag for visible paints.
func (p *Paint) IsVisible() bool {
	return p.Visible == nil || *p.Visible
}

// Effect is a visual effect such as a shadow or blur.
type Effect struct {
	Type    string  `json:"type"`
	Visible *bool   `json:"visible,omitempty"`
	Radius  float64 `json:"radius,omitempty"`
	Spread  float64 `json:"spread,omitempty"`
	Color   *Color  `json:"color,omitempty"`
	Offset  *Vector `json:"offset,omitempty"`
}

// IsVisible reports the effect's effective visibility.
func (e *Effect) IsVisible() bool {
	return e.Visible == nil || *e.Visible
}

// TypeStyle carries the typography attributes of a TEXT node.
type TypeStyle struct {
	FontFamily          string  `json:"fontFamily,omitempty"`
	FontWeight          float64 `json:"fontWeight,omitempty"`
	FontSize            float64 `json:"fontSize,omitempty"`
	LineHeightPx        float64 `json:"lineHeightPx,omitempty"`
	LetterSpacing       float64 `json:"letterSpacing,omitempty"`
	TextCase            string  `json:"textCase,omitempty"`
	TextAlignHorizontal string  `json:"textAlignHorizontal,omitempty"`
	TextAlignVertical   string  `json:"textAlignVertical,omitempty"`
}

// Node is one node of a Figma document tree. Only the fields figctx
// consumes are modeled; unknown fields are ignored on decode.
type Node struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Type     string   `json:"type"`
	Visible  *bool    `json:"visible,omitempty"`
	Opacity  *float64 `json:"opacity,omitempty"`
	Children []Node   `json:"children,omitempty"`

	Fills        []Paint  `json:"fills,omitempty"`
	Strokes      []Paint  `json:"strokes,omitempty"`
	StrokeWeight *float64 `json:"strokeWeight,omitempty"`
	Effects      []Effect `json:"effects,omitempty"`

	Characters string     `json:"characters,omitempty"`
	Style      *TypeStyle `json:"style,omitempty"`

	AbsoluteBoundingBox *Rect    `json:"absoluteBoundingBox,omitempty"`
	CornerRadius        *float64 `json:"cornerRadius,omitempty"`

	LayoutMode             string  `json:"layoutMode,omitempty"`
	LayoutPositioning      string  `json:"layoutPositioning,omitempty"`
	LayoutSizingHorizontal string  `json:"layoutSizingHorizontal,omitempty"`
	LayoutSizingVertical   string  `json:"layoutSizingVertical,omitempty"`
	PrimaryAxisAlignItems  string  `json:"primaryAxisAlignItems,omitempty"`
	CounterAxisAlignItems  string  `json:"counterAxisAlignItems,omitempty"`
	ItemSpacing            float64 `json:"itemSpacing,omitempty"`
	PaddingLeft            float64 `json:"paddingLeft,omitempty"`
	PaddingRight           float64 `json:"paddingRight,omitempty"`
	PaddingTop             float64 `json:"paddingTop,omitempty"`
	PaddingBottom          float64 `json:"paddingBottom,omitempty"`

	ComponentID string `json:"componentId,omitempty"`
}

// IsVisible reports the node's effective visibility. The API omits the
// flag for visible nodes.
func (n *Node) IsVisible() bool {
	return n.Visible == nil || *n.Visible
}

// FileResponse is the body of GET /v1/files/{key}.
type FileResponse struct {
	Name         string `json:"name"`
	LastModified string `json:"lastModified"`
	ThumbnailURL string `json:"thumbnailUrl"`
	Version      string `json:"version"`
	Document     Node   `json:"document"`
}

// NodesResponse is the body of GET /v1/files/{key}/nodes.
type NodesResponse struct {
	Name         string                 `json:"name"`
	LastModified string                 `json:"lastModified"`
	ThumbnailURL string                 `json:"thumbnailUrl"`
	Version      string                 `json:"version"`
	Nodes        map[string]NodeWrapper `json:"nodes"`
}

// NodeWrapper carries one requested subtree in a NodesResponse.
type NodeWrapper struct {
	Document Node `json:"document"`
}

// renderResponse is the body of GET /v1/images/{key}.
type renderResponse struct {
	Err    string            `json:"err,omitempty"`
	Images map[string]string `json:"images"`
}

// imageFillsResponse is the body of GET /v1/files/{key}/images.
type imageFillsResponse struct {
	Meta struct {
		Images map[string]string `json:"images"`
	} `json:"meta"`
}

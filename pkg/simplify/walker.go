package simplify

import (
	"fmt"
	"sort"
	"strings"

	"figctx/pkg/figma"
)

// ParseFile simplifies a whole-file response. The document's pages
// become the design's root nodes at depth 1. maxDepth limits traversal
// depth; zero means unlimited.
func ParseFile(resp *figma.FileResponse, maxDepth int) (*Design, error) {
	return parseRoots(resp.Name, resp.LastModified, resp.ThumbnailURL, resp.Document.Children, maxDepth)
}

// ParseNodes simplifies a nodes response, one root per requested id.
// Ids the API could not resolve come back as null wrappers and are
// skipped. The response map has no defined order, so roots are sorted
// by id to keep output stable.
func ParseNodes(resp *figma.NodesResponse, maxDepth int) (*Design, error) {
	roots := make([]figma.Node, 0, len(resp.Nodes))
	for _, wrapper := range resp.Nodes {
		if wrapper.Document.ID == "" {
			continue
		}
		roots = append(roots, wrapper.Document)
	}
	sort.Slice(roots, func(i, j int) bool { return roots[i].ID < roots[j].ID })

	return parseRoots(resp.Name, resp.LastModified, resp.ThumbnailURL, roots, maxDepth)
}

// parseRoots runs one conversion: a fresh intern table threaded through
// a depth-first walk over all visible roots. Any error aborts the whole
// conversion; no partial design is returned.
func parseRoots(name, lastModified, thumbnail string, roots []figma.Node, maxDepth int) (*Design, error) {
	in := newInterner()

	nodes := make([]Node, 0, len(roots))
	for i := range roots {
		root := &roots[i]
		if !root.IsVisible() {
			continue
		}
		parsed, err := parseNode(in, root, 1, maxDepth)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, *parsed)
	}

	return &Design{
		Name:         name,
		LastModified: lastModified,
		ThumbnailURL: thumbnail,
		Nodes:        nodes,
		GlobalVars:   in.globalVars(),
	}, nil
}

func parseNode(in *interner, raw *figma.Node, depth, maxDepth int) (*Node, error) {
	n := &Node{
		ID:   raw.ID,
		Name: raw.Name,
		Type: raw.Type,
	}

	if raw.Type == "TEXT" {
		n.Text = raw.Characters
		if raw.Style != nil {
			id, err := in.intern("style", buildTextStyle(raw.Style))
			if err != nil {
				return nil, err
			}
			n.TextStyle = id
		}
	}

	if err := applyFills(in, raw, n); err != nil {
		return nil, err
	}
	if err := applyStrokes(in, raw, n); err != nil {
		return nil, err
	}
	if err := applyEffects(in, raw, n); err != nil {
		return nil, err
	}

	if layout := BuildLayout(raw); !layout.IsTrivial() {
		id, err := in.intern("layout", layout)
		if err != nil {
			return nil, err
		}
		n.Layout = id
	}

	if raw.Opacity != nil && *raw.Opacity != 1 {
		opacity := *raw.Opacity
		n.Opacity = &opacity
	}
	if raw.CornerRadius != nil && *raw.CornerRadius > 0 {
		n.BorderRadius = formatPx(*raw.CornerRadius)
	}
	if raw.AbsoluteBoundingBox != nil {
		box := *raw.AbsoluteBoundingBox
		n.BoundingBox = &box
	}
	if raw.Type == "INSTANCE" && raw.ComponentID != "" {
		n.ComponentID = raw.ComponentID
	}

	if maxDepth > 0 && depth >= maxDepth {
		return n, nil
	}

	for i := range raw.Children {
		child := &raw.Children[i]
		if !child.IsVisible() {
			continue
		}
		parsed, err := parseNode(in, child, depth+1, maxDepth)
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, *parsed)
	}

	return n, nil
}

// applyFills simplifies the node's visible fills. A single solid fill
// that folded to full opacity is inlined on the node; anything else is
// interned.
func applyFills(in *interner, raw *figma.Node, n *Node) error {
	fills := make([]Fill, 0, len(raw.Fills))
	for i := range raw.Fills {
		paint := &raw.Fills[i]
		if !paint.IsVisible() {
			continue
		}
		fill, err := ParsePaint(paint)
		if err != nil {
			return fmt.Errorf("node %s: %w", raw.ID, err)
		}
		fills = append(fills, fill)
	}

	switch {
	case len(fills) == 0:
	case len(fills) == 1 && isInlineHex(fills[0]):
		n.Fills = StyleRef(fills[0].CSS)
	default:
		id, err := in.intern("fill", fills)
		if err != nil {
			return err
		}
		n.Fills = StyleRef(id)
	}
	return nil
}

func isInlineHex(f Fill) bool {
	return strings.HasPrefix(f.CSS, "#")
}

func applyStrokes(in *interner, raw *figma.Node, n *Node) error {
	var strokes Strokes
	for i := range raw.Strokes {
		paint := &raw.Strokes[i]
		if !paint.IsVisible() {
			continue
		}
		fill, err := ParsePaint(paint)
		if err != nil {
			return fmt.Errorf("node %s: %w", raw.ID, err)
		}
		strokes.Colors = append(strokes.Colors, fill)
	}
	if len(strokes.Colors) == 0 {
		return nil
	}

	if raw.StrokeWeight != nil && *raw.StrokeWeight > 0 {
		strokes.StrokeWeight = formatPx(*raw.StrokeWeight)
	}

	id, err := in.intern("stroke", strokes)
	if err != nil {
		return err
	}
	n.Strokes = id
	return nil
}

func applyEffects(in *interner, raw *figma.Node, n *Node) error {
	effects := make([]Effect, 0, len(raw.Effects))
	for i := range raw.Effects {
		src := &raw.Effects[i]
		if !src.IsVisible() {
			continue
		}
		effect := Effect{
			Type:   src.Type,
			Radius: src.Radius,
			Spread: src.Spread,
		}
		if src.Offset != nil {
			offset := *src.Offset
			effect.Offset = &offset
		}
		if src.Color != nil {
			effect.Color = cssColor(ConvertColor(*src.Color, 1))
		}
		effects = append(effects, effect)
	}
	if len(effects) == 0 {
		return nil
	}

	id, err := in.intern("effect", effects)
	if err != nil {
		return err
	}
	n.Effects = id
	return nil
}

func buildTextStyle(style *figma.TypeStyle) TextStyle {
	ts := TextStyle{
		FontFamily:          style.FontFamily,
		FontWeight:          style.FontWeight,
		FontSize:            style.FontSize,
		TextCase:            style.TextCase,
		TextAlignHorizontal: style.TextAlignHorizontal,
		TextAlignVertical:   style.TextAlignVertical,
	}
	if style.LineHeightPx > 0 {
		ts.LineHeight = formatPx(style.LineHeightPx)
	}
	if style.LetterSpacing != 0 {
		ts.LetterSpacing = formatPx(style.LetterSpacing)
	}
	return ts
}

package simplify_test

import (
	"encoding/json"
	"testing"

	"figctx/pkg/figma"
	"figctx/pkg/simplify"
)

func TestFillMarshalsInlineColorAsString(t *testing.T) {
	raw, err := json.Marshal(simplify.Fill{CSS: "rgba(255, 0, 0, 0.5)"})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(raw) != `"rgba(255, 0, 0, 0.5)"` {
		t.Errorf("expected bare string, got %s", raw)
	}
}

func TestFillMarshalsStructuredPaint(t *testing.T) {
	raw, err := json.Marshal(simplify.Fill{
		Type:      "IMAGE",
		ImageRef:  "ref-1",
		ScaleMode: "FILL",
	})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if decoded["type"] != "IMAGE" || decoded["imageRef"] != "ref-1" {
		t.Errorf("unexpected structured fill: %v", decoded)
	}
	if _, present := decoded["css"]; present {
		t.Error("css key must not leak into structured fills")
	}
}

func TestDesignDocument(t *testing.T) {
	resp := &figma.FileResponse{
		Name: "Landing",
		Document: figma.Node{
			ID:   "0:0",
			Type: "DOCUMENT",
			Children: []figma.Node{
				{
					ID:    "1:0",
					Name:  "Hero",
					Type:  "FRAME",
					Fills: solidFill(figma.Color{R: 1, G: 1, B: 1, A: 1}),
				},
			},
		},
	}

	design, err := simplify.ParseFile(resp, 0)
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}

	doc, err := design.Document()
	if err != nil {
		t.Fatalf("Document failed: %v", err)
	}

	if doc["name"] != "Landing" {
		t.Errorf("name = %v, want %q", doc["name"], "Landing")
	}
	if _, present := doc["globalVars"]; present {
		t.Error("empty globalVars must be compacted away")
	}

	nodes, ok := doc["nodes"].([]any)
	if !ok || len(nodes) != 1 {
		t.Fatalf("unexpected nodes: %#v", doc["nodes"])
	}
	hero := nodes[0].(map[string]any)
	if hero["fills"] != "#FFFFFF" {
		t.Errorf("fills = %v, want inline hex", hero["fills"])
	}
	if _, present := hero["children"]; present {
		t.Error("leaf node must not carry empty children")
	}
}

func TestDesignDocumentKeepsZeroOpacity(t *testing.T) {
	// A fully transparent node must stay distinguishable from an opaque
	// one after serialization.
	resp := &figma.FileResponse{
		Name: "Landing",
		Document: figma.Node{
			ID:   "0:0",
			Type: "DOCUMENT",
			Children: []figma.Node{
				{ID: "1:0", Name: "Overlay", Type: "FRAME", Opacity: floatPtr(0)},
			},
		},
	}

	design, err := simplify.ParseFile(resp, 0)
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}

	doc, err := design.Document()
	if err != nil {
		t.Fatalf("Document failed: %v", err)
	}

	nodes, ok := doc["nodes"].([]any)
	if !ok || len(nodes) != 1 {
		t.Fatalf("unexpected nodes: %#v", doc["nodes"])
	}
	overlay := nodes[0].(map[string]any)
	got, present := overlay["opacity"]
	if !present {
		t.Fatal("expected opacity key on a fully transparent node")
	}
	if got != float64(0) {
		t.Errorf("opacity = %v, want 0", got)
	}
}

package mcp

import (
	"testing"
)

func TestDecodeGetDataArgs(t *testing.T) {
	var args getDataArgs
	err := decodeArgs(map[string]any{
		"fileKey": "abc123",
		"nodeId":  "1:2",
		"depth":   float64(3),
	}, &args)
	if err != nil {
		t.Fatalf("decodeArgs failed: %v", err)
	}

	if args.FileKey != "abc123" || args.NodeID != "1:2" {
		t.Errorf("unexpected args: %+v", args)
	}
	if args.Depth != 3 {
		t.Errorf("Depth = %d, want 3 (float64 input must convert)", args.Depth)
	}
}

func TestDecodeDownloadArgs(t *testing.T) {
	var args downloadArgs
	err := decodeArgs(map[string]any{
		"fileKey":   "abc123",
		"localPath": "/tmp/out",
		"pngScale":  float64(1.5),
		"nodes": []any{
			map[string]any{"nodeId": "1:2", "fileName": "icon.svg"},
			map[string]any{"nodeId": "3:4", "fileName": "photo.png", "imageRef": "ref-9"},
		},
	}, &args)
	if err != nil {
		t.Fatalf("decodeArgs failed: %v", err)
	}

	if args.PNGScale != 1.5 {
		t.Errorf("PNGScale = %v, want 1.5", args.PNGScale)
	}
	if len(args.Nodes) != 2 {
		t.Fatalf("expected 2 nodes, got %d", len(args.Nodes))
	}
	if args.Nodes[1].ImageRef != "ref-9" {
		t.Errorf("ImageRef = %q, want %q", args.Nodes[1].ImageRef, "ref-9")
	}
}

func TestDecodeArgsIgnoresUnknownKeys(t *testing.T) {
	var args getDataArgs
	err := decodeArgs(map[string]any{
		"fileKey": "abc123",
		"extra":   true,
	}, &args)
	if err != nil {
		t.Fatalf("decodeArgs failed: %v", err)
	}
	if args.FileKey != "abc123" {
		t.Errorf("FileKey = %q, want %q", args.FileKey, "abc123")
	}
}

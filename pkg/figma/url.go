package figma

import (
	"fmt"
	"net/url"
	"strings"
)

// ExtractFileKey returns the file key from a figma.com URL. A string
// without slashes is assumed to already be a key and passes through.
func ExtractFileKey(raw string) (string, error) {
	if !strings.Contains(raw, "/") {
		return raw, nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse figma url: %w", err)
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i, part := range parts {
		switch part {
		case "file", "design", "board", "proto":
			if i+1 < len(parts) && parts[i+1] != "" {
				return parts[i+1], nil
			}
		}
	}
	return "", fmt.Errorf("no file key in url %q", raw)
}

// ExtractNodeID returns the node-id query parameter of a figma.com URL,
// normalized to the API's "1:2" form. Share links encode it as "1-2".
func ExtractNodeID(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	id := u.Query().Get("node-id")
	return strings.ReplaceAll(id, "-", ":")
}

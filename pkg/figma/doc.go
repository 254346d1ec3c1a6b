// Package figma is a minimal client for the Figma REST API.
//
// It covers the endpoints figctx consumes: file and node documents,
// node renders and image fill URLs. Responses are decoded into the raw
// document model in types.go; simplification lives in pkg/simplify.
package figma

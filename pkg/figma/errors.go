package figma

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// APIError is an error response from the Figma API. Status and Message
// carry the upstream values unmodified.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("figma api: %s (status %d)", e.Message, e.Status)
}

// decodeAPIError turns a non-2xx response body into an APIError. Figma
// encodes errors as {"status": N, "err": "..."}; anything else falls
// back to the HTTP status text.
func decodeAPIError(statusCode int, body []byte) error {
	var payload struct {
		Status int    `json:"status"`
		Err    string `json:"err"`
	}
	apiErr := &APIError{Status: statusCode, Message: http.StatusText(statusCode)}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Err != "" {
		apiErr.Message = payload.Err
		if payload.Status != 0 {
			apiErr.Status = payload.Status
		}
	} else if msg := strings.TrimSpace(string(body)); msg != "" && len(msg) < 200 {
		apiErr.Message = msg
	}
	return apiErr
}

package types

import "strings"

// ChatRequest is the body accepted by POST /chat.
type ChatRequest struct {
	Message string `json:"message"`
}

// Validate checks that a message was supplied.
func (r ChatRequest) Validate() error {
	if strings.TrimSpace(r.Message) == "" {
		return BadRequest("message is required")
	}
	return nil
}

// ChatResponse is the body returned by POST /chat.
type ChatResponse struct {
	Response string `json:"response"`
}

// Error is the body returned for every failed request.
type Error struct {
	Error string `json:"error"`
}

package models

import (
	"context"

	"github.com/flightdesk/types"
)

// CompletionRequest is one round of a provider conversation.
type CompletionRequest struct {
	Messages []types.Message
	Tools    []types.ToolDefinition
}

// Provider sends a conversation to an LLM and returns its single reply,
// which carries either final text or tool-call directives.
type Provider interface {
	Complete(ctx context.Context, req CompletionRequest) (*types.Message, error)
	Name() string
}

package types

import (
	"errors"
	"fmt"
)

var (
	// ErrConfig is fatal at startup.
	ErrConfig = errors.New("invalid configuration")
	// ErrBadRequest marks a missing or malformed chat request.
	ErrBadRequest = errors.New("bad request")
	// ErrUnknownTool marks a directive naming a tool outside the registry.
	ErrUnknownTool = errors.New("unknown tool")
	// ErrInvalidToolArguments marks directive arguments that are not JSON
	// matching the tool's declared parameters.
	ErrInvalidToolArguments = errors.New("invalid tool arguments")
	// ErrUpstreamProvider marks a failed call to the LLM provider.
	ErrUpstreamProvider = errors.New("llm provider error")
	// ErrUpstreamTool marks a failed call to the aviation data provider.
	// Tools turn it into a result string; it never reaches the caller.
	ErrUpstreamTool = errors.New("aviation provider error")
)

// BadRequest wraps ErrBadRequest with a detail message.
func BadRequest(detail string) error {
	return fmt.Errorf("%w: %s", ErrBadRequest, detail)
}

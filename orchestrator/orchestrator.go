// Package orchestrator runs the two-round exchange between a user message,
// the LLM provider and the tool registry.
package orchestrator

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/flightdesk/logger"
	"github.com/flightdesk/models"
	"github.com/flightdesk/tools"
	"github.com/flightdesk/types"
)

const maxConcurrentTools = 4

// Toolbox is the part of the tool registry the loop needs.
type Toolbox interface {
	Definitions() []types.ToolDefinition
	Decode(tc types.ToolCall) (tools.Call, error)
	Execute(ctx context.Context, call tools.Call) string
}

type Orchestrator struct {
	provider models.Provider
	tools    Toolbox
	log      *logger.Logger
}

func New(provider models.Provider, toolbox Toolbox) *Orchestrator {
	return &Orchestrator{
		provider: provider,
		tools:    toolbox,
		log:      logger.NewLogger("Orchestrator", uuid.NewString()),
	}
}

// Respond answers message. The first round offers every tool; if the model
// asks for any, all of them run before the second round reports their
// results, each correlated with its own directive id.
func (o *Orchestrator) Respond(ctx context.Context, message string) (string, error) {
	user := types.NewUserMessage(message)

	reply, err := o.provider.Complete(ctx, models.CompletionRequest{
		Messages: []types.Message{user},
		Tools:    o.tools.Definitions(),
	})
	if err != nil {
		return "", fmt.Errorf("first round: %w", err)
	}
	if !reply.HasToolCalls() {
		return reply.Content, nil
	}

	// Decode every directive first so a bad one aborts before any tool runs.
	calls := make([]tools.Call, len(reply.ToolCalls))
	for i, tc := range reply.ToolCalls {
		call, err := o.tools.Decode(tc)
		if err != nil {
			return "", fmt.Errorf("tool call %s: %w", tc.ID, err)
		}
		calls[i] = call
	}

	results := o.execute(ctx, calls)

	conversation := make([]types.Message, 0, len(results)+2)
	conversation = append(conversation, user, *reply)
	for i, tc := range reply.ToolCalls {
		conversation = append(conversation, types.NewToolResultMessage(tc.ID, results[i]))
	}

	final, err := o.provider.Complete(ctx, models.CompletionRequest{Messages: conversation})
	if err != nil {
		return "", fmt.Errorf("second round: %w", err)
	}
	if final.HasToolCalls() {
		o.log.Warn("ignoring tool calls requested in the final round", "count", len(final.ToolCalls))
	}
	return final.Content, nil
}

// execute runs calls concurrently and returns their results in call order.
func (o *Orchestrator) execute(ctx context.Context, calls []tools.Call) []string {
	results := make([]string, len(calls))

	var g errgroup.Group
	g.SetLimit(maxConcurrentTools)
	for i, call := range calls {
		i, call := i, call
		g.Go(func() error {
			results[i] = o.tools.Execute(ctx, call)
			return nil
		})
	}
	// tools report failures in their result strings
	_ = g.Wait()

	for i, call := range calls {
		o.log.Info("tool result", "tool", call.Kind().String(), "index", i, "bytes", len(results[i]))
	}
	return results
}

package models

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/flightdesk/config"
	"github.com/flightdesk/logger"
	"github.com/flightdesk/types"
)

// OpenAIClient talks to any OpenAI-compatible chat-completions endpoint,
// DeepSeek included.
type OpenAIClient struct {
	model      string
	apiKey     string
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

func NewOpenAIClient(cfg config.LLM) *OpenAIClient {
	return &OpenAIClient{
		model:   cfg.Model,
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		log: logger.NewLogger("OpenAIClient", uuid.NewString()),
	}
}

func (c *OpenAIClient) Name() string { return "openai-compatible:" + c.model }

// Complete implements Provider.
func (c *OpenAIClient) Complete(ctx context.Context, req CompletionRequest) (*types.Message, error) {
	body, err := json.Marshal(toOpenAIRequest(c.model, req))
	if err != nil {
		return nil, fmt.Errorf("%w: marshal request: %v", types.ErrUpstreamProvider, err)
	}

	headers := map[string]string{"Authorization": "Bearer " + c.apiKey}
	respBody, err := doJSONRequest(ctx, c.httpClient, c.baseURL+"/chat/completions", body, headers)
	if err != nil {
		return nil, err
	}

	var resp openaiResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("%w: unmarshal response: %v", types.ErrUpstreamProvider, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: response has no choices", types.ErrUpstreamProvider)
	}

	msg := fromOpenAIMessage(resp.Choices[0].Message)
	c.log.Debug("llm completion",
		"model", resp.Model,
		"tool_calls", len(msg.ToolCalls),
		"tokens", resp.Usage.TotalTokens,
	)
	return &msg, nil
}

// --- wire types ---

type openaiRequest struct {
	Model    string          `json:"model"`
	Messages []openaiMessage `json:"messages"`
	Tools    []openaiTool    `json:"tools,omitempty"`
}

type openaiMessage struct {
	Role       string           `json:"role"`
	Content    *string          `json:"content"`
	ToolCalls  []openaiToolCall `json:"tool_calls,omitempty"`
	ToolCallID string           `json:"tool_call_id,omitempty"`
}

type openaiTool struct {
	Type     string             `json:"type"`
	Function openaiToolFunction `json:"function"`
}

type openaiToolFunction struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters,omitempty"`
}

type openaiToolCall struct {
	ID       string                 `json:"id"`
	Type     string                 `json:"type"`
	Function openaiToolCallFunction `json:"function"`
}

type openaiToolCallFunction struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

type openaiResponse struct {
	ID      string         `json:"id"`
	Model   string         `json:"model"`
	Choices []openaiChoice `json:"choices"`
	Usage   openaiUsage    `json:"usage"`
}

type openaiChoice struct {
	Index        int           `json:"index"`
	Message      openaiMessage `json:"message"`
	FinishReason string        `json:"finish_reason"`
}

type openaiUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

func toOpenAIRequest(model string, req CompletionRequest) openaiRequest {
	msgs := make([]openaiMessage, 0, len(req.Messages))
	for _, m := range req.Messages {
		content := m.Content
		oaiMsg := openaiMessage{
			Role:       string(m.Role),
			Content:    &content,
			ToolCallID: m.ToolCallID,
		}
		// assistant turns that only request tools carry a null content
		if m.Role == types.RoleAssistant && m.Content == "" && m.HasToolCalls() {
			oaiMsg.Content = nil
		}
		for _, tc := range m.ToolCalls {
			oaiMsg.ToolCalls = append(oaiMsg.ToolCalls, openaiToolCall{
				ID:   tc.ID,
				Type: "function",
				Function: openaiToolCallFunction{
					Name:      tc.Name,
					Arguments: tc.Arguments,
				},
			})
		}
		msgs = append(msgs, oaiMsg)
	}

	oaiReq := openaiRequest{Model: model, Messages: msgs}
	for _, t := range req.Tools {
		oaiReq.Tools = append(oaiReq.Tools, openaiTool{
			Type: "function",
			Function: openaiToolFunction{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  t.Parameters,
			},
		})
	}
	return oaiReq
}

func fromOpenAIMessage(m openaiMessage) types.Message {
	msg := types.Message{Role: types.Role(m.Role)}
	if msg.Role == "" {
		msg.Role = types.RoleAssistant
	}
	if m.Content != nil {
		msg.Content = *m.Content
	}
	for _, tc := range m.ToolCalls {
		msg.ToolCalls = append(msg.ToolCalls, types.ToolCall{
			ID:        tc.ID,
			Name:      tc.Function.Name,
			Arguments: tc.Function.Arguments,
		})
	}
	return msg
}

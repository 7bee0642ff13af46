package model

import (
	"context"
	"fmt"

	"github.com/fina-ai/fina/core"
)

// Request captures the normalized model input produced by the chat handler:
// one composed system instruction plus the trailing conversational turns.
type Request struct {
	Instructions string         `json:"instructions"`
	Turns        []core.Message `json:"turns"`
}

// TokenUsage captures token usage statistics for a completion.
type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Response is the final completion returned by a provider. Text may be empty
// when the provider returned an unexpected shape (no choices, empty content);
// callers decide on a fallback reply in that case.
type Response struct {
	Text         string      `json:"text"`
	FinishReason string      `json:"finish_reason,omitempty"`
	Usage        *TokenUsage `json:"usage,omitempty"`
}

// Info contains metadata about a model implementation.
type Info struct {
	Name     string `json:"name"`
	Provider string `json:"provider"` // "openai", "anthropic", "mock"
}

// Model is the minimal interface the chat handler needs to drive generation.
type Model interface {
	Complete(ctx context.Context, req Request) (Response, error)

	// Info returns information about the model implementation.
	Info() Info
}

// MockModel is a lightweight in-memory Model useful for tests. It returns a
// canned completion per input message, a configurable error, or a default
// echo when neither applies.
type MockModel struct {
	info      Info
	responses map[string]string
	err       error
}

// NewMockModel constructs a MockModel.
func NewMockModel(name string) *MockModel {
	return &MockModel{
		info:      Info{Name: name, Provider: "mock"},
		responses: make(map[string]string),
	}
}

// AddResponse registers a deterministic canned completion for an input message.
func (m *MockModel) AddResponse(input, response string) { m.responses[input] = response }

// FailWith makes every subsequent Complete call return err.
func (m *MockModel) FailWith(err error) { m.err = err }

// Complete implements Model.
func (m *MockModel) Complete(_ context.Context, req Request) (Response, error) {
	if m.err != nil {
		return Response{}, m.err
	}
	var input string
	if len(req.Turns) > 0 {
		input = req.Turns[len(req.Turns)-1].Content
	}
	text, ok := m.responses[input]
	if !ok {
		text = fmt.Sprintf("Mock response to: %s", input)
	}
	return Response{
		Text:         text,
		FinishReason: "stop",
		Usage:        &TokenUsage{PromptTokens: len(req.Turns), CompletionTokens: 1, TotalTokens: len(req.Turns) + 1},
	}, nil
}

// Info implements Model.
func (m *MockModel) Info() Info { return m.info }

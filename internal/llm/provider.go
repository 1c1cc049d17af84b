package llm

import (
	"context"
	"encoding/json"
)

// Provider is the abstraction over the external language-model
// collaborators used for subjective grading. Consumers call Generate with
// a Request and receive structured JSON back.
type Provider interface {
	// Generate sends a prompt to the model and returns a structured
	// response. When the request carries a Schema, the provider uses its
	// native structured-output mechanism and the response Content is the
	// schema-validated JSON.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured
	// to use.
	ModelID() string
}

// Request describes one model call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation. Grading is single-turn, so this is
	// normally one user message.
	Messages []Message

	// Schema is the JSON Schema the response must conform to. When nil
	// the response Content is raw text.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature controls randomness, 0.0 - 1.0. Grading calls keep it
	// at 0 for reproducibility.
	Temperature float64
}

// Message is a single conversation message.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema defines the JSON structure expected from the model.
type Schema struct {
	// Name identifies the schema, kebab-case (e.g. "rubric-grade").
	Name string

	// Description guides the model about what the schema represents.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the model's output.
type Response struct {
	// Content is the generated output. Validated JSON when the request
	// carried a Schema.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens", or "error".
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

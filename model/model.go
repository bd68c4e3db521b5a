package model

import (
	"context"
	"encoding/json"

	"github.com/hupe1980/agentrun/core"
)

// ToolCall represents a tool invocation request surfaced by a model provider.
// Unified across vendors so downstream logic does not need per-provider branching.
type ToolCall struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Arguments string `json:"arguments"` // JSON string of arguments
}

// HandoffRequest asks for a transfer of control to another agent.
type HandoffRequest struct {
	Agent string `json:"agent"`           // Target agent name
	Input string `json:"input,omitempty"` // Optional transformed input for the target
}

// ToolDefinition declaratively exposes a callable function to the model.
type ToolDefinition struct {
	Type     string             `json:"type"` // "function"
	Function FunctionDefinition `json:"function"`
}

// FunctionDefinition describes an individual function (tool) exposed to the model.
// Parameters is a JSON Schema object (draft agnostic, minimal subset expected).
type FunctionDefinition struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"` // JSON Schema
}

// OutputSchema declares the structured-output contract of the active agent.
// Providers that support native schema-constrained decoding should use it;
// others may append a formatting instruction.
type OutputSchema struct {
	Name   string         `json:"name"`
	Schema map[string]any `json:"schema"`
}

// Request captures the normalized model input produced by the run loop: the
// active agent's resolved instructions and tool definitions plus the
// assembled input items (prior session history concatenated with this run's
// new items).
type Request struct {
	Instructions string           `json:"instructions"`
	Input        []core.Item      `json:"input"`
	Tools        []ToolDefinition `json:"tools,omitempty"`
	Output       *OutputSchema    `json:"output,omitempty"`
}

// Response is one model turn's output. Zero or more tool calls, zero or one
// hand-off request, and optionally a final content payload. The run loop
// classifies responses with an exhaustive switch; tool calls are executed
// before any hand-off takes effect.
type Response struct {
	ID        string          `json:"id"`
	Content   string          `json:"content,omitempty"`
	ToolCalls []ToolCall      `json:"tool_calls,omitempty"`
	Handoff   *HandoffRequest `json:"handoff,omitempty"`
	Usage     *core.Usage     `json:"usage,omitempty"`
}

// Info contains metadata about a model implementation.
type Info struct {
	Name          string `json:"name"`
	Provider      string `json:"provider"` // "openai", "anthropic", "stub", etc.
	SupportsTools bool   `json:"supports_tools"`
}

// Model is the capability interface required by the run loop to drive
// generation. Call blocks until the provider returns one full turn; the run
// loop itself decides nothing about retries (see the error kinds in Error).
type Model interface {
	Call(ctx context.Context, req Request) (*Response, error)

	// Info returns information about the model implementation.
	Info() Info
}

// RawOutput extracts the response content as raw JSON when an output schema
// was requested. Providers emit the structured payload as the content string.
func (r *Response) RawOutput() json.RawMessage { return json.RawMessage(r.Content) }

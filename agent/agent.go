package agent

import (
	"fmt"
	"time"

	"github.com/hupe1980/agentrun/core"
	"github.com/hupe1980/agentrun/guardrail"
	"github.com/hupe1980/agentrun/model"
	"github.com/hupe1980/agentrun/tool"
)

// Options configures an Agent instance.
//
// Use functional options with New to override defaults.
type Options struct {
	Description      string
	Instruction      Instruction
	Tools            []tool.Tool
	Handoffs         []*Agent
	Output           *OutputType
	InputGuardrails  []guardrail.Guardrail
	OutputGuardrails []guardrail.Guardrail
	ToolTimeout      time.Duration
	MaxParallelTools int
}

// Agent is the immutable configuration of one autonomous agent: instructions,
// callable tools, delegation targets and an optional structured-output
// contract. The run loop references an Agent, never copies it, and an Agent
// may be shared by many concurrent runs.
type Agent struct {
	name             string
	description      string
	llm              model.Model
	instruction      Instruction
	tools            []tool.Tool
	toolIndex        map[string]tool.Tool
	handoffs         []*Agent
	output           *OutputType
	inputGuardrails  []guardrail.Guardrail
	outputGuardrails []guardrail.Guardrail
	toolTimeout      time.Duration
	maxParallelTools int
}

// New creates an agent with sensible defaults: a generic assistant
// instruction, a 15 second per-tool-call timeout and unbounded tool
// parallelism within a batch.
//
// Parameters:
//   - name: unique agent name, also used in trace items and hand-off routing
//   - llm: language model implementation for text generation
func New(name string, llm model.Model, optFns ...func(o *Options)) *Agent {
	opts := Options{
		Instruction: NewInstructionFromText(fmt.Sprintf("You are %s, a helpful AI assistant.", name)),
		ToolTimeout: 15 * time.Second,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	a := &Agent{
		name:             name,
		description:      opts.Description,
		llm:              llm,
		instruction:      opts.Instruction,
		tools:            opts.Tools,
		toolIndex:        make(map[string]tool.Tool, len(opts.Tools)),
		handoffs:         opts.Handoffs,
		output:           opts.Output,
		inputGuardrails:  opts.InputGuardrails,
		outputGuardrails: opts.OutputGuardrails,
		toolTimeout:      opts.ToolTimeout,
		maxParallelTools: opts.MaxParallelTools,
	}

	if a.description == "" {
		a.description = fmt.Sprintf("Agent %s", name)
	}

	for _, t := range opts.Tools {
		a.toolIndex[t.Name()] = t
	}

	return a
}

// Name returns the agent's unique name.
func (a *Agent) Name() string { return a.name }

// Description returns a short description of the agent's purpose, exposed to
// peer agents when the agent is a hand-off target.
func (a *Agent) Description() string { return a.description }

// Model returns the language model backing the agent.
func (a *Agent) Model() model.Model { return a.llm }

// ResolveInstructions produces the final instruction string (system prompt)
// by resolving static or dynamic instruction sources.
func (a *Agent) ResolveInstructions(runCtx *core.RunContext) (string, error) {
	return a.instruction.Resolve(runCtx)
}

// Tools returns the agent's tools in declaration order.
func (a *Agent) Tools() []tool.Tool { return a.tools }

// Tool retrieves a registered tool by name.
func (a *Agent) Tool(name string) (tool.Tool, bool) {
	t, ok := a.toolIndex[name]
	return t, ok
}

// ToolDefinitions renders the agent's tools as model-facing definitions in
// declaration order.
func (a *Agent) ToolDefinitions() []model.ToolDefinition {
	if len(a.tools) == 0 {
		return nil
	}
	defs := make([]model.ToolDefinition, 0, len(a.tools))
	for _, t := range a.tools {
		defs = append(defs, model.ToolDefinition{
			Type: "function",
			Function: model.FunctionDefinition{
				Name:        t.Name(),
				Description: t.Description(),
				Parameters:  t.Parameters(),
			},
		})
	}
	return defs
}

// Handoffs returns the declared hand-off targets.
func (a *Agent) Handoffs() []*Agent { return a.handoffs }

// FindHandoff returns the hand-off target with the given name, or nil when the
// name is not in the agent's declared set.
func (a *Agent) FindHandoff(name string) *Agent {
	for _, h := range a.handoffs {
		if h.name == name {
			return h
		}
	}
	return nil
}

// Output returns the structured-output contract, or nil when the agent
// produces plain text.
func (a *Agent) Output() *OutputType { return a.output }

// InputGuardrails returns the ordered checks applied to run input items.
func (a *Agent) InputGuardrails() []guardrail.Guardrail { return a.inputGuardrails }

// OutputGuardrails returns the ordered checks applied to candidate final outputs.
func (a *Agent) OutputGuardrails() []guardrail.Guardrail { return a.outputGuardrails }

// ToolTimeout returns the per-call timeout for tool executions.
func (a *Agent) ToolTimeout() time.Duration { return a.toolTimeout }

// MaxParallelTools limits concurrent tool executions within one batch.
// Zero means no explicit limit.
func (a *Agent) MaxParallelTools() int { return a.maxParallelTools }

package runner

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hupe1980/agentrun/agent"
	"github.com/hupe1980/agentrun/model"
)

// transferToolName is the synthetic tool exposed to models whose agent
// declares hand-off targets. Providers without a native transfer concept
// express a hand-off as a call to this tool; the run loop intercepts it
// before regular tool dispatch.
const transferToolName = "transfer_to_agent"

type transferArgs struct {
	Agent string `json:"agent"`
	Input string `json:"input,omitempty"`
}

// transferToolDefinition builds the synthetic transfer tool for an agent's
// declared hand-off targets, enumerating them so the model can only pick
// from the declared set.
func transferToolDefinition(handoffs []*agent.Agent) model.ToolDefinition {
	names := make([]string, 0, len(handoffs))
	var desc strings.Builder
	desc.WriteString("Transfer the conversation to another agent. Available agents:")
	for _, h := range handoffs {
		names = append(names, h.Name())
		desc.WriteString(fmt.Sprintf("\n- %s: %s", h.Name(), h.Description()))
	}

	enum := make([]any, len(names))
	for i, n := range names {
		enum[i] = n
	}

	return model.ToolDefinition{
		Type: "function",
		Function: model.FunctionDefinition{
			Name:        transferToolName,
			Description: desc.String(),
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"agent": map[string]any{
						"type":        "string",
						"description": "Name of the agent to transfer to.",
						"enum":        enum,
					},
					"input": map[string]any{
						"type":        "string",
						"description": "Optional input to forward to the target agent.",
					},
				},
				"required": []string{"agent"},
			},
		},
	}
}

// extractHandoff separates a transfer request from the regular tool calls of
// one model turn. An explicit Response.Handoff wins; otherwise the first
// transfer_to_agent call is normalized into one and stripped from the batch.
// At most one hand-off per turn takes effect.
func extractHandoff(resp *model.Response) (*model.HandoffRequest, []model.ToolCall, error) {
	handoff := resp.Handoff

	toolCalls := make([]model.ToolCall, 0, len(resp.ToolCalls))
	for _, tc := range resp.ToolCalls {
		if tc.Name != transferToolName {
			toolCalls = append(toolCalls, tc)
			continue
		}
		if handoff != nil {
			continue // only the first transfer per turn takes effect
		}
		var args transferArgs
		if err := json.Unmarshal([]byte(tc.Arguments), &args); err != nil {
			return nil, nil, fmt.Errorf("malformed %s arguments: %w", transferToolName, err)
		}
		if args.Agent == "" {
			return nil, nil, fmt.Errorf("%s call names no target agent", transferToolName)
		}
		handoff = &model.HandoffRequest{Agent: args.Agent, Input: args.Input}
	}

	return handoff, toolCalls, nil
}

package runner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/agentrun/agent"
	"github.com/hupe1980/agentrun/model"
	"github.com/hupe1980/agentrun/model/stub"
)

func TestTransferToolDefinition(t *testing.T) {
	billing := agent.New("Billing", stub.New(""), func(o *agent.Options) {
		o.Description = "Handles invoices"
	})
	support := agent.New("Support", stub.New(""))

	def := transferToolDefinition([]*agent.Agent{billing, support})

	assert.Equal(t, transferToolName, def.Function.Name)
	assert.Contains(t, def.Function.Description, "Billing: Handles invoices")

	props := def.Function.Parameters["properties"].(map[string]any)
	enum := props["agent"].(map[string]any)["enum"].([]any)
	assert.Equal(t, []any{"Billing", "Support"}, enum)
}

func TestExtractHandoff_ExplicitFieldWins(t *testing.T) {
	resp := &model.Response{
		Handoff: &model.HandoffRequest{Agent: "Billing"},
		ToolCalls: []model.ToolCall{
			{ID: "c1", Name: transferToolName, Arguments: `{"agent":"Support"}`},
		},
	}

	handoff, toolCalls, err := extractHandoff(resp)
	require.NoError(t, err)
	require.NotNil(t, handoff)
	assert.Equal(t, "Billing", handoff.Agent)
	assert.Empty(t, toolCalls, "transfer calls never reach tool dispatch")
}

func TestExtractHandoff_NormalizesTransferCall(t *testing.T) {
	resp := &model.Response{ToolCalls: []model.ToolCall{
		{ID: "c1", Name: "lookup", Arguments: "{}"},
		{ID: "c2", Name: transferToolName, Arguments: `{"agent":"Billing","input":"invoice 42"}`},
		{ID: "c3", Name: transferToolName, Arguments: `{"agent":"Support"}`},
	}}

	handoff, toolCalls, err := extractHandoff(resp)
	require.NoError(t, err)
	require.NotNil(t, handoff)
	assert.Equal(t, "Billing", handoff.Agent, "first transfer call wins")
	assert.Equal(t, "invoice 42", handoff.Input)

	require.Len(t, toolCalls, 1)
	assert.Equal(t, "lookup", toolCalls[0].Name)
}

func TestExtractHandoff_MalformedArgs(t *testing.T) {
	resp := &model.Response{ToolCalls: []model.ToolCall{
		{ID: "c1", Name: transferToolName, Arguments: `{not json`},
	}}

	_, _, err := extractHandoff(resp)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed")

	resp = &model.Response{ToolCalls: []model.ToolCall{
		{ID: "c1", Name: transferToolName, Arguments: `{}`},
	}}

	_, _, err = extractHandoff(resp)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no target agent")
}

func TestExtractHandoff_NoHandoff(t *testing.T) {
	resp := &model.Response{Content: "done"}

	handoff, toolCalls, err := extractHandoff(resp)
	require.NoError(t, err)
	assert.Nil(t, handoff)
	assert.Empty(t, toolCalls)
}

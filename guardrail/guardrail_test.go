package guardrail

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/agentrun/core"
)

func newRunContext() *core.RunContext {
	return core.NewRunContext(context.Background(), "sess", "run", core.AgentInfo{Name: "A"}, 5, nil, nil)
}

func TestBannedTokens(t *testing.T) {
	g := NewBannedTokens("no-secrets", "password", "api key")

	res, err := g.Check(newRunContext(), core.NewUserMessageItem("what is the weather"))
	require.NoError(t, err)
	assert.False(t, res.Tripped)

	res, err = g.Check(newRunContext(), core.NewUserMessageItem("My PASSWORD is hunter2"))
	require.NoError(t, err)
	assert.True(t, res.Tripped)
	assert.Contains(t, res.Reason, "password")
}

func TestBannedTokens_IgnoresNonMessageItems(t *testing.T) {
	g := NewBannedTokens("no-secrets", "password")

	res, err := g.Check(newRunContext(), core.NewToolCallItem("A", "c1", "lookup", `{"q":"password"}`))
	require.NoError(t, err)
	assert.False(t, res.Tripped, "tool call items carry no message text")
}

func TestMaxLength(t *testing.T) {
	g := NewMaxLength("short-only", 10)

	res, err := g.Check(newRunContext(), core.NewAssistantMessageItem("A", "brief"))
	require.NoError(t, err)
	assert.False(t, res.Tripped)

	res, err = g.Check(newRunContext(), core.NewAssistantMessageItem("A", "this is definitely too long"))
	require.NoError(t, err)
	assert.True(t, res.Tripped)
}

func TestFuncAdapter(t *testing.T) {
	g := Func{
		CheckName: "always-fails",
		Fn: func(_ *core.RunContext, _ core.Item) (Result, error) {
			return Fail("nope"), nil
		},
	}

	assert.Equal(t, "always-fails", g.Name())

	res, err := g.Check(newRunContext(), core.NewUserMessageItem("x"))
	require.NoError(t, err)
	assert.True(t, res.Tripped)
	assert.Equal(t, "nope", res.Reason)
}

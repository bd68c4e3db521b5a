package agent

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/agentrun/core"
	"github.com/hupe1980/agentrun/tool"
)

func newRunContext(agentName string) *core.RunContext {
	return core.NewRunContext(context.Background(), "sess-1", "run-1", core.AgentInfo{Name: agentName}, 5, nil, nil)
}

func TestNew_Defaults(t *testing.T) {
	a := New("Helper", nil)

	assert.Equal(t, "Helper", a.Name())
	assert.Equal(t, "Agent Helper", a.Description())
	assert.Equal(t, 15*time.Second, a.ToolTimeout())
	assert.Zero(t, a.MaxParallelTools())
	assert.Nil(t, a.Output())

	instructions, err := a.ResolveInstructions(newRunContext("Helper"))
	require.NoError(t, err)
	assert.Contains(t, instructions, "Helper")
}

func TestAgent_ToolLookup(t *testing.T) {
	echo := tool.New("echo", "Echoes input", map[string]any{"type": "object"},
		func(tc *core.ToolContext, args map[string]any) (any, error) { return args, nil })

	a := New("Helper", nil, func(o *Options) {
		o.Tools = []tool.Tool{echo}
	})

	got, ok := a.Tool("echo")
	require.True(t, ok)
	assert.Equal(t, "echo", got.Name())

	_, ok = a.Tool("missing")
	assert.False(t, ok)

	defs := a.ToolDefinitions()
	require.Len(t, defs, 1)
	assert.Equal(t, "function", defs[0].Type)
	assert.Equal(t, "echo", defs[0].Function.Name)
}

func TestAgent_FindHandoff(t *testing.T) {
	specialist := New("Specialist", nil)
	router := New("Router", nil, func(o *Options) {
		o.Handoffs = []*Agent{specialist}
	})

	assert.Same(t, specialist, router.FindHandoff("Specialist"))
	assert.Nil(t, router.FindHandoff("Unknown"))
	assert.Nil(t, specialist.FindHandoff("Router"), "hand-offs are not symmetric")
}

func TestInstruction_TemplateRendering(t *testing.T) {
	instr := NewInstructionFromText("You are {{.Agent}} in session {{.SessionID}}.")

	text, err := instr.Resolve(newRunContext("Templated"))
	require.NoError(t, err)
	assert.Equal(t, "You are Templated in session sess-1.", text)
}

func TestInstruction_Provider(t *testing.T) {
	instr := NewInstructionFromFunc(func(rc *core.RunContext) (string, error) {
		return "dynamic for " + rc.AgentName(), nil
	})

	assert.False(t, instr.IsStatic())

	text, err := instr.Resolve(newRunContext("Dyn"))
	require.NoError(t, err)
	assert.Equal(t, "dynamic for Dyn", text)
}

func TestOutputType_Validate(t *testing.T) {
	ot, err := NewOutputType("answer", map[string]any{
		"type": "object",
		"properties": map[string]any{
			"value": map[string]any{"type": "number"},
		},
		"required": []string{"value"},
	})
	require.NoError(t, err)
	assert.Equal(t, "answer", ot.Name())

	assert.NoError(t, ot.Validate([]byte(`{"value": 42}`)))
	assert.Error(t, ot.Validate([]byte(`{"value": "not a number"}`)))
	assert.Error(t, ot.Validate([]byte(`{}`)), "missing required field")
	assert.Error(t, ot.Validate([]byte(`not json`)))
	assert.Error(t, ot.Validate(nil), "empty payload")
}

func TestNewOutputTypeFromStruct(t *testing.T) {
	type Answer struct {
		Value   float64 `json:"value"`
		Comment string  `json:"comment,omitempty"`
	}

	ot, err := NewOutputTypeFromStruct("answer", Answer{})
	require.NoError(t, err)

	assert.NoError(t, ot.Validate([]byte(`{"value": 1.5}`)))
	assert.Error(t, ot.Validate([]byte(`{"comment": "missing value"}`)))
}

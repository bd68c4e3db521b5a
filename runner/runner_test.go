package runner

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/agentrun/agent"
	"github.com/hupe1980/agentrun/core"
	"github.com/hupe1980/agentrun/guardrail"
	"github.com/hupe1980/agentrun/internal/testutil"
	"github.com/hupe1980/agentrun/model"
	"github.com/hupe1980/agentrun/model/stub"
	"github.com/hupe1980/agentrun/session"
	"github.com/hupe1980/agentrun/tool"
)

func noopTool(name string, result any) tool.Tool {
	return tool.New(name, "test tool "+name, map[string]any{"type": "object"},
		func(tc *core.ToolContext, args map[string]any) (any, error) {
			return result, nil
		})
}

func TestRun_FinalResponseFirstTurn(t *testing.T) {
	llm := stub.New("")
	llm.Enqueue(testutil.TextResponse("hello!"))

	assistant := agent.New("Assistant", llm)

	result, err := New().Run(context.Background(), assistant, "hi")
	require.NoError(t, err)

	assert.Equal(t, "hello!", result.FinalOutput)
	assert.Equal(t, "Assistant", result.LastAgent)
	assert.Equal(t, 1, result.Usage.Requests)

	require.Len(t, result.NewItems, 2)
	assert.IsType(t, core.UserMessageItem{}, result.NewItems[0])
	assert.IsType(t, core.AssistantMessageItem{}, result.NewItems[1])
}

func TestRun_ToolResultsKeepRequestOrder(t *testing.T) {
	llm := stub.New("")
	llm.Enqueue(
		testutil.ToolCallResponse(
			testutil.Call("c1", "slow", "{}"),
			testutil.Call("c2", "fast", "{}"),
		),
		testutil.TextResponse("done"),
	)

	slow := tool.New("slow", "slow tool", map[string]any{"type": "object"},
		func(tc *core.ToolContext, args map[string]any) (any, error) {
			time.Sleep(30 * time.Millisecond)
			return "slow-done", nil
		})

	assistant := agent.New("Assistant", llm, func(o *agent.Options) {
		o.Tools = []tool.Tool{slow, noopTool("fast", "fast-done")}
	})

	result, err := New().Run(context.Background(), assistant, "compute")
	require.NoError(t, err)
	assert.Equal(t, "done", result.FinalOutput)

	// user, call c1, call c2, result c1, result c2, assistant
	require.Len(t, result.NewItems, 6)

	r1, ok := result.NewItems[3].(core.ToolResultItem)
	require.True(t, ok)
	r2, ok := result.NewItems[4].(core.ToolResultItem)
	require.True(t, ok)

	assert.Equal(t, "c1", r1.CallID, "slower call still reported first")
	assert.Equal(t, "slow-done", r1.Result)
	assert.Equal(t, "c2", r2.CallID)
	assert.Equal(t, "fast-done", r2.Result)

	// The follow-up model call sees the results.
	reqs := llm.Requests()
	require.Len(t, reqs, 2)
	assert.IsType(t, core.ToolResultItem{}, reqs[1].Input[len(reqs[1].Input)-1])
}

func TestRun_UnknownToolYieldsErrorResult(t *testing.T) {
	llm := stub.New("")
	llm.Enqueue(
		testutil.ToolCallResponse(testutil.Call("c1", "missing", "{}")),
		testutil.TextResponse("recovered"),
	)

	assistant := agent.New("Assistant", llm)

	result, err := New().Run(context.Background(), assistant, "go")
	require.NoError(t, err, "an unknown tool must not abort the run")
	assert.Equal(t, "recovered", result.FinalOutput)

	var tr core.ToolResultItem
	for _, it := range result.NewItems {
		if v, ok := it.(core.ToolResultItem); ok {
			tr = v
		}
	}
	assert.Contains(t, tr.Error, "not found")
}

func TestRun_HandoffSwitchesActiveAgent(t *testing.T) {
	specialistLLM := stub.New("")
	specialistLLM.Enqueue(testutil.TextResponse("specialist answer"))
	specialist := agent.New("Specialist", specialistLLM)

	routerLLM := stub.New("")
	routerLLM.Enqueue(testutil.TransferResponse("Specialist", ""))
	router := agent.New("Router", routerLLM, func(o *agent.Options) {
		o.Handoffs = []*agent.Agent{specialist}
	})

	result, err := New().Run(context.Background(), router, "route me")
	require.NoError(t, err)

	assert.Equal(t, "specialist answer", result.FinalOutput)
	assert.Equal(t, "Specialist", result.LastAgent)

	var handoff core.HandoffItem
	found := false
	for _, it := range result.NewItems {
		if h, ok := it.(core.HandoffItem); ok {
			handoff, found = h, true
		}
	}
	require.True(t, found, "trace must contain the hand-off directive")
	assert.Equal(t, "Router", handoff.From)
	assert.Equal(t, "Specialist", handoff.To)

	require.Len(t, specialistLLM.Requests(), 1, "target agent drives the next turn")
}

func TestRun_ExplicitHandoffField(t *testing.T) {
	specialistLLM := stub.New("")
	specialistLLM.Enqueue(testutil.TextResponse("ok"))
	specialist := agent.New("Specialist", specialistLLM)

	routerLLM := stub.New("")
	routerLLM.Enqueue(testutil.HandoffResponse("Specialist", "forwarded input"))
	router := agent.New("Router", routerLLM, func(o *agent.Options) {
		o.Handoffs = []*agent.Agent{specialist}
	})

	result, err := New().Run(context.Background(), router, "route me")
	require.NoError(t, err)
	assert.Equal(t, "Specialist", result.LastAgent)
}

func TestRun_ToolCallsExecuteBeforeHandoff(t *testing.T) {
	specialistLLM := stub.New("")
	specialistLLM.Enqueue(testutil.TextResponse("after transfer"))
	specialist := agent.New("Specialist", specialistLLM)

	routerLLM := stub.New("")
	transfer := testutil.TransferResponse("Specialist", "")
	routerLLM.Enqueue(model.Response{
		ToolCalls: append([]model.ToolCall{testutil.Call("c1", "audit", "{}")}, transfer.ToolCalls...),
	})

	router := agent.New("Router", routerLLM, func(o *agent.Options) {
		o.Tools = []tool.Tool{noopTool("audit", "logged")}
		o.Handoffs = []*agent.Agent{specialist}
	})

	result, err := New().Run(context.Background(), router, "route me")
	require.NoError(t, err)

	resultIdx, handoffIdx := -1, -1
	for i, it := range result.NewItems {
		switch it.(type) {
		case core.ToolResultItem:
			resultIdx = i
		case core.HandoffItem:
			handoffIdx = i
		}
	}
	require.GreaterOrEqual(t, resultIdx, 0)
	require.GreaterOrEqual(t, handoffIdx, 0)
	assert.Less(t, resultIdx, handoffIdx, "tool results precede the hand-off directive")
}

func TestRun_UndeclaredHandoffTargetFails(t *testing.T) {
	llm := stub.New("")
	llm.Enqueue(testutil.TransferResponse("Ghost", ""))

	assistant := agent.New("Assistant", llm)

	_, err := New().Run(context.Background(), assistant, "go")
	require.Error(t, err)

	var runErr *RunError
	require.ErrorAs(t, err, &runErr)
	assert.Equal(t, KindConfig, runErr.Kind)
	assert.Equal(t, "Assistant", runErr.LastAgent)
	assert.NotEmpty(t, runErr.NewItems, "partial trace travels with the error")
}

func TestRun_MaxTurnsIsAHardBudget(t *testing.T) {
	llm := stub.New("")
	llm.Enqueue(
		testutil.ToolCallResponse(testutil.Call("c1", "noop", "{}")),
		testutil.ToolCallResponse(testutil.Call("c2", "noop", "{}")),
		testutil.ToolCallResponse(testutil.Call("c3", "noop", "{}")),
	)

	assistant := agent.New("Assistant", llm, func(o *agent.Options) {
		o.Tools = []tool.Tool{noopTool("noop", "ok")}
	})

	_, err := New().Run(context.Background(), assistant, "loop forever", func(o *RunOptions) {
		o.MaxTurns = 3
	})
	require.Error(t, err)

	var runErr *RunError
	require.ErrorAs(t, err, &runErr)
	assert.Equal(t, KindMaxTurns, runErr.Kind)
	assert.Len(t, llm.Requests(), 3, "exactly max-turns model calls")
	assert.NotEmpty(t, runErr.NewItems)
}

func TestRun_InputGuardrailAbortsBeforeModelCall(t *testing.T) {
	llm := stub.New("")

	assistant := agent.New("Assistant", llm, func(o *agent.Options) {
		o.InputGuardrails = []guardrail.Guardrail{guardrail.NewBannedTokens("no-secrets", "password")}
	})

	_, err := New().Run(context.Background(), assistant, "my password is hunter2")
	require.Error(t, err)

	var runErr *RunError
	require.ErrorAs(t, err, &runErr)
	assert.Equal(t, KindGuardrail, runErr.Kind)
	assert.Empty(t, llm.Requests(), "guardrail trips before any model call")
	require.Len(t, runErr.NewItems, 1, "input item remains in the partial trace")
}

func TestRun_OutputGuardrailAbortsRun(t *testing.T) {
	llm := stub.New("")
	llm.Enqueue(testutil.TextResponse("the password is hunter2"))

	assistant := agent.New("Assistant", llm, func(o *agent.Options) {
		o.OutputGuardrails = []guardrail.Guardrail{guardrail.NewBannedTokens("no-secrets", "password")}
	})

	_, err := New().Run(context.Background(), assistant, "hi")
	require.Error(t, err)

	var runErr *RunError
	require.ErrorAs(t, err, &runErr)
	assert.Equal(t, KindGuardrail, runErr.Kind)

	last := runErr.NewItems[len(runErr.NewItems)-1]
	assert.IsType(t, core.AssistantMessageItem{}, last, "offending item stays in the trace")
}

func TestRun_SessionResumption(t *testing.T) {
	store := session.NewInMemoryStore()
	r := New(func(o *Options) { o.SessionStore = store })

	llm := stub.New("")
	llm.Enqueue(testutil.TextResponse("first answer"), testutil.TextResponse("second answer"))
	assistant := agent.New("Assistant", llm)

	withSession := func(o *RunOptions) { o.SessionID = "sess-1" }

	first, err := r.Run(context.Background(), assistant, "X", withSession)
	require.NoError(t, err)
	require.Len(t, first.NewItems, 2)

	second, err := r.Run(context.Background(), assistant, "Y", withSession)
	require.NoError(t, err)
	assert.Equal(t, "second answer", second.FinalOutput)
	assert.Len(t, second.NewItems, 2, "NewItems excludes prior history")

	reqs := llm.Requests()
	require.Len(t, reqs, 2)
	// Second call sees the first run's items plus the new user message.
	require.Len(t, reqs[1].Input, 3)
	assert.Equal(t, "X", reqs[1].Input[0].(core.UserMessageItem).Content)
	assert.Equal(t, "first answer", reqs[1].Input[1].(core.AssistantMessageItem).Content)
	assert.Equal(t, "Y", reqs[1].Input[2].(core.UserMessageItem).Content)
}

func TestRun_OutputContractFeedbackTurn(t *testing.T) {
	llm := stub.New("")
	llm.Enqueue(
		testutil.OutputResponse(`{"wrong": true}`),
		testutil.OutputResponse(`{"value": 7}`),
	)

	output := agent.MustOutputType("answer", map[string]any{
		"type": "object",
		"properties": map[string]any{
			"value": map[string]any{"type": "number"},
		},
		"required": []string{"value"},
	})

	assistant := agent.New("Assistant", llm, func(o *agent.Options) {
		o.Output = output
	})

	result, err := New().Run(context.Background(), assistant, "answer me")
	require.NoError(t, err)

	assert.Equal(t, `{"value": 7}`, result.FinalOutput)
	assert.Equal(t, 2, result.Usage.Requests, "validation failure consumes a turn")

	var feedback string
	var sawOutput bool
	for _, it := range result.NewItems {
		switch v := it.(type) {
		case core.UserMessageItem:
			if v.Content != "answer me" {
				feedback = v.Content
			}
		case core.OutputItem:
			sawOutput = true
		}
	}
	assert.Contains(t, feedback, "output format", "violation is fed back to the model")
	assert.True(t, sawOutput, "validated payload is recorded as an output item")

	var decoded struct {
		Value float64 `json:"value"`
	}
	require.NoError(t, result.UnmarshalOutput(&decoded))
	assert.Equal(t, 7.0, decoded.Value)
}

func TestRun_ConfigErrors(t *testing.T) {
	r := New()

	_, err := r.Run(context.Background(), nil, "hi")
	var runErr *RunError
	require.ErrorAs(t, err, &runErr)
	assert.Equal(t, KindConfig, runErr.Kind)

	_, err = r.RunItems(context.Background(), agent.New("A", stub.New("")), nil)
	require.ErrorAs(t, err, &runErr)
	assert.Equal(t, KindConfig, runErr.Kind)
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	llm := stub.New("")
	assistant := agent.New("Assistant", llm)

	_, err := New().Run(ctx, assistant, "hi")
	require.Error(t, err)

	var runErr *RunError
	require.ErrorAs(t, err, &runErr)
	assert.Equal(t, KindBackend, runErr.Kind)
}

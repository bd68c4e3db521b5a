package runner

import (
	"context"
	"encoding/json"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"github.com/hupe1980/agentrun/agent"
	"github.com/hupe1980/agentrun/core"
	"github.com/hupe1980/agentrun/model"
)

// toolInvoker executes a batch of tool calls, possibly in parallel, and
// returns exactly one result item per call in the original request order.
// Guarantees:
//   - Respects runCtx.Context cancellation and the agent's per-call timeout
//   - Never panics (recovers internally and converts to an error result)
//   - An unknown tool name yields an error result, not a run failure
type toolInvoker struct{}

func (e toolInvoker) invoke(
	runCtx *core.RunContext,
	ag *agent.Agent,
	calls []model.ToolCall,
) []core.ToolResultItem {
	n := len(calls)
	if n == 0 {
		return nil
	}

	// Fast path: single call, execute inline.
	if n == 1 {
		return []core.ToolResultItem{e.executeSingle(runCtx, ag, calls[0])}
	}

	maxPar := ag.MaxParallelTools()
	if maxPar <= 0 || maxPar > n {
		maxPar = n
	}

	results := make([]core.ToolResultItem, n)
	var wg sync.WaitGroup

	sem := make(chan struct{}, maxPar)

	batchStart := time.Now()
	for i := range calls {
		if runCtx.Context.Err() != nil { // pre-check cancellation
			results[i] = resultItem(calls[i], nil, runCtx.Context.Err())
			continue
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(idx int, tc model.ToolCall) {
			defer wg.Done()
			defer func() { <-sem }()

			results[idx] = e.executeSingle(runCtx, ag, tc)
		}(i, calls[i])
	}

	wg.Wait()

	runCtx.LogDebug(
		"runner.tools.batch.complete",
		"agent", ag.Name(),
		"count", n,
		"parallelism", maxPar,
		"duration_ms", time.Since(batchStart).Milliseconds(),
	)

	return results
}

func (e toolInvoker) executeSingle(
	runCtx *core.RunContext,
	ag *agent.Agent,
	tc model.ToolCall,
) core.ToolResultItem {
	ctx := runCtx.Context
	if timeout := ag.ToolTimeout(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	toolCtx := core.NewToolContext(ctx, runCtx, tc.ID)

	runCtx.LogInfo(
		"runner.tool.start",
		"agent", ag.Name(),
		"tool", tc.Name,
		"call_id", tc.ID,
	)

	start := time.Now()
	var (
		result any
		err    error
	)
	func() { // panic safety
		defer func() {
			if r := recover(); r != nil {
				err = panicError(r)
				runCtx.LogError("runner.tool.panic", "agent", ag.Name(), "tool", tc.Name, "recover", r)
			}
		}()
		result, err = e.executeTool(toolCtx, ag, tc)
	}()
	dur := time.Since(start)

	runCtx.LogInfo(
		"runner.tool.executed",
		"agent", ag.Name(),
		"tool", tc.Name,
		"duration_ms", dur.Milliseconds(),
		"error", err != nil,
	)

	return resultItem(tc, result, err)
}

// executeTool centralizes tool lookup & execution against the agent's registry.
func (e toolInvoker) executeTool(
	toolCtx *core.ToolContext,
	ag *agent.Agent,
	tc model.ToolCall,
) (any, error) {
	impl, ok := ag.Tool(tc.Name)
	if !ok {
		return nil, fmt.Errorf("tool %s not found", tc.Name)
	}

	argMap := map[string]any{}
	if tc.Arguments != "" {
		if err := json.Unmarshal([]byte(tc.Arguments), &argMap); err != nil {
			return nil, fmt.Errorf("failed to unmarshal args: %w", err)
		}
	}

	result, err := impl.Call(toolCtx, argMap)
	if err == nil {
		if ctxErr := toolCtx.Context().Err(); ctxErr != nil {
			return nil, ctxErr
		}
	}
	return result, err
}

func resultItem(tc model.ToolCall, result any, err error) core.ToolResultItem {
	return core.NewToolResultItem(tc.ID, tc.Name, result, err)
}

// panicError converts a recovered panic value to an error without losing the stack.
func panicError(r any) error { return &panicErr{val: r, stack: debug.Stack()} }

type panicErr struct {
	val   any
	stack []byte
}

func (p *panicErr) Error() string { return fmt.Sprintf("tool panicked: %v", p.val) }

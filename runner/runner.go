package runner

import (
	"context"
	"fmt"

	"github.com/hupe1980/agentrun/agent"
	"github.com/hupe1980/agentrun/core"
	"github.com/hupe1980/agentrun/guardrail"
	"github.com/hupe1980/agentrun/logging"
	"github.com/hupe1980/agentrun/model"
	"github.com/hupe1980/agentrun/session"
)

// Options holds dependency + configuration overrides passed to New().
type Options struct {
	// MaxTurns bounds the number of model calls per run. A run that has not
	// produced a final response when the budget is exhausted fails with
	// KindMaxTurns.
	MaxTurns int
	// SessionStore persists the append-only item log per session.
	SessionStore core.SessionStore
	// Logging services.
	Logger logging.Logger
}

// RunOptions configure an individual run.
type RunOptions struct {
	// SessionID selects the conversation to resume. Empty starts a fresh
	// ephemeral session.
	SessionID string
	// MaxTurns overrides the runner-wide budget for this run when > 0.
	MaxTurns int
	// Data is an opaque value surfaced to tools and guardrails via their
	// contexts.
	Data any
}

// Runner drives the agent run loop: it assembles model input from session
// history, classifies each model turn (tool calls, hand-off, final response),
// fans tool calls out through the invoker, resolves hand-offs against the
// active agent's declared targets, and enforces guardrails, output contracts
// and the turn budget. Public methods are safe for concurrent use.
type Runner struct {
	maxTurns     int
	sessionStore core.SessionStore
	logger       logging.Logger
	invoker      toolInvoker
}

// New constructs a Runner with optional overrides.
func New(optFns ...func(o *Options)) *Runner {
	opts := Options{
		MaxTurns:     10,
		SessionStore: session.NewInMemoryStore(),
		Logger:       logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Runner{
		maxTurns:     opts.MaxTurns,
		sessionStore: opts.SessionStore,
		logger:       opts.Logger,
	}
}

// Run executes a run starting from a single user message.
func (r *Runner) Run(
	ctx context.Context,
	ag *agent.Agent,
	input string,
	optFns ...func(o *RunOptions),
) (*RunResult, error) {
	return r.RunItems(ctx, ag, []core.Item{core.NewUserMessageItem(input)}, optFns...)
}

// RunItems executes a run starting from pre-built input items. On success the
// returned RunResult carries the final output and the full trace of items this
// run generated; on failure the returned error is always a *RunError carrying
// the partial trace.
func (r *Runner) RunItems(
	ctx context.Context,
	ag *agent.Agent,
	input []core.Item,
	optFns ...func(o *RunOptions),
) (*RunResult, error) {
	opts := RunOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}

	if ag == nil {
		return nil, newRunError(KindConfig, "", nil, fmt.Errorf("agent must not be nil"))
	}
	if len(input) == 0 {
		return nil, newRunError(KindConfig, ag.Name(), nil, fmt.Errorf("run input must not be empty"))
	}

	maxTurns := r.maxTurns
	if opts.MaxTurns > 0 {
		maxTurns = opts.MaxTurns
	}
	if maxTurns <= 0 {
		return nil, newRunError(KindConfig, ag.Name(), nil, fmt.Errorf("max turns must be positive"))
	}

	sessionID := opts.SessionID
	if sessionID == "" {
		sessionID = core.NewID()
	}
	runID := core.NewID()

	rc := core.NewRunContext(ctx, sessionID, runID, core.AgentInfo{Name: ag.Name()}, maxTurns, opts.Data, r.logger)

	history, err := r.sessionStore.Items(sessionID, 0)
	if err != nil {
		return nil, newRunError(KindBackend, ag.Name(), nil, fmt.Errorf("load session: %w", err))
	}

	var newItems []core.Item
	appendItems := func(items ...core.Item) error {
		if err := r.sessionStore.AddItems(sessionID, items...); err != nil {
			return fmt.Errorf("persist items: %w", err)
		}
		newItems = append(newItems, items...)
		return nil
	}

	fail := func(kind ErrorKind, active *agent.Agent, err error) (*RunResult, error) {
		return nil, newRunError(kind, active.Name(), newItems, err)
	}

	if err := appendItems(input...); err != nil {
		return fail(KindBackend, ag, err)
	}

	// Input guardrails run once against the run's input, before the first
	// model call.
	if err := checkGuardrails(rc, ag.InputGuardrails(), input); err != nil {
		rc.LogWarn("runner.guardrail.input", "agent", ag.Name(), "error", err.Error())
		return fail(KindGuardrail, ag, err)
	}

	rc.LogInfo("runner.run.start", "agent", ag.Name(), "session_id", sessionID, "run_id", runID, "max_turns", maxTurns)

	active := ag

	for rc.NextTurn() {
		if err := rc.Err(); err != nil {
			return fail(KindBackend, active, err)
		}

		instructions, err := active.ResolveInstructions(rc)
		if err != nil {
			return fail(KindConfig, active, err)
		}

		req := model.Request{
			Instructions: instructions,
			Input:        append(append([]core.Item{}, history...), newItems...),
			Tools:        active.ToolDefinitions(),
		}
		if handoffs := active.Handoffs(); len(handoffs) > 0 {
			req.Tools = append(req.Tools, transferToolDefinition(handoffs))
		}
		if out := active.Output(); out != nil {
			req.Output = &model.OutputSchema{Name: out.Name(), Schema: out.Schema()}
		}

		rc.LogDebug("runner.turn.start", "agent", active.Name(), "turn", rc.Turn)

		resp, err := active.Model().Call(rc.Context, req)
		if err != nil {
			return fail(KindBackend, active, fmt.Errorf("model call: %w", err))
		}
		if resp.Usage != nil {
			rc.AddUsage(*resp.Usage)
		}

		handoff, toolCalls, err := extractHandoff(resp)
		if err != nil {
			return fail(KindConfig, active, err)
		}

		// Tool calls and hand-offs keep the run going; everything else is a
		// final-response candidate.
		if len(toolCalls) > 0 || handoff != nil {
			if resp.Content != "" {
				if err := appendItems(core.NewAssistantMessageItem(active.Name(), resp.Content)); err != nil {
					return fail(KindBackend, active, err)
				}
			}

			if len(toolCalls) > 0 {
				callItems := make([]core.Item, len(toolCalls))
				for i, tc := range toolCalls {
					callItems[i] = core.NewToolCallItem(active.Name(), tc.ID, tc.Name, tc.Arguments)
				}
				if err := appendItems(callItems...); err != nil {
					return fail(KindBackend, active, err)
				}

				// Tool calls of a turn always execute, even when the same
				// turn requested a hand-off.
				results := r.invoker.invoke(rc, active, toolCalls)
				resultItems := make([]core.Item, len(results))
				for i := range results {
					resultItems[i] = results[i]
				}
				if err := appendItems(resultItems...); err != nil {
					return fail(KindBackend, active, err)
				}
			}

			if handoff != nil {
				target := active.FindHandoff(handoff.Agent)
				if target == nil {
					return fail(KindConfig, active,
						fmt.Errorf("agent %s declares no hand-off to %q", active.Name(), handoff.Agent))
				}
				if err := appendItems(core.NewHandoffItem(active.Name(), target.Name(), handoff.Input)); err != nil {
					return fail(KindBackend, active, err)
				}

				rc.LogInfo("runner.handoff", "from", active.Name(), "to", target.Name(), "turn", rc.Turn)

				active = target
				rc.SetActiveAgent(target.Name())
			}

			continue
		}

		// Final-response candidate.
		if out := active.Output(); out != nil {
			raw := resp.RawOutput()
			if err := out.Validate(raw); err != nil {
				// Validation failures are intermediate: the violation is fed
				// back as a user turn and the loop continues.
				rc.LogWarn("runner.output.invalid", "agent", active.Name(), "turn", rc.Turn, "error", err.Error())

				feedback := fmt.Sprintf(
					"Your response did not satisfy the required output format: %v. Respond again with a single JSON object matching the schema.",
					err,
				)
				if err := appendItems(
					core.NewAssistantMessageItem(active.Name(), resp.Content),
					core.NewUserMessageItem(feedback),
				); err != nil {
					return fail(KindBackend, active, err)
				}

				continue
			}

			outputItem := core.NewOutputItem(active.Name(), raw)
			if err := appendItems(outputItem); err != nil {
				return fail(KindBackend, active, err)
			}
			if err := checkGuardrails(rc, active.OutputGuardrails(), []core.Item{outputItem}); err != nil {
				rc.LogWarn("runner.guardrail.output", "agent", active.Name(), "error", err.Error())
				return fail(KindGuardrail, active, err)
			}

			rc.LogInfo("runner.run.complete", "agent", active.Name(), "turns", rc.Turn, "requests", rc.Usage.Requests)

			return &RunResult{
				FinalOutput: string(raw),
				NewItems:    newItems,
				LastAgent:   active.Name(),
				Usage:       *rc.Usage,
			}, nil
		}

		finalItem := core.NewAssistantMessageItem(active.Name(), resp.Content)
		if err := appendItems(finalItem); err != nil {
			return fail(KindBackend, active, err)
		}
		if err := checkGuardrails(rc, active.OutputGuardrails(), []core.Item{finalItem}); err != nil {
			rc.LogWarn("runner.guardrail.output", "agent", active.Name(), "error", err.Error())
			return fail(KindGuardrail, active, err)
		}

		rc.LogInfo("runner.run.complete", "agent", active.Name(), "turns", rc.Turn, "requests", rc.Usage.Requests)

		return &RunResult{
			FinalOutput: resp.Content,
			NewItems:    newItems,
			LastAgent:   active.Name(),
			Usage:       *rc.Usage,
		}, nil
	}

	rc.LogWarn("runner.run.max_turns", "agent", active.Name(), "max_turns", maxTurns)

	return fail(KindMaxTurns, active, fmt.Errorf("no final response after %d turns", maxTurns))
}

// checkGuardrails evaluates every guardrail against every item, first
// violation wins.
func checkGuardrails(rc *core.RunContext, guards []guardrail.Guardrail, items []core.Item) error {
	for _, g := range guards {
		for _, it := range items {
			res, err := g.Check(rc, it)
			if err != nil {
				return fmt.Errorf("guardrail %s: %w", g.Name(), err)
			}
			if res.Tripped {
				return fmt.Errorf("guardrail %s tripped: %s", g.Name(), res.Reason)
			}
		}
	}
	return nil
}

package core

import (
	"context"

	"github.com/hupe1980/agentrun/logging"
)

// RunContext carries the mutable, run-scoped state threaded through every
// step of a run. It aggregates:
//
//   - The ambient cancellation Context
//   - Identifiers (SessionID, RunID) and the currently active agent
//   - The turn counter and per-run Usage accumulator
//   - A caller-supplied opaque Data value for tools and guardrails
//
// A RunContext is exclusively owned by one run loop execution; it is never
// shared across concurrent runs.
type RunContext struct {
	Context          context.Context
	SessionID, RunID string
	Agent            AgentInfo
	Turn             int
	MaxTurns         int
	Usage            *Usage
	Data             any

	*loggerAdapter
}

// NewRunContext constructs a RunContext at turn zero.
func NewRunContext(
	ctx context.Context,
	sessionID, runID string,
	agent AgentInfo,
	maxTurns int,
	data any,
	logger logging.Logger,
) *RunContext {
	return &RunContext{
		Context:       ctx,
		SessionID:     sessionID,
		RunID:         runID,
		Agent:         agent,
		MaxTurns:      maxTurns,
		Usage:         &Usage{},
		Data:          data,
		loggerAdapter: newLoggerAdapter(logger),
	}
}

// Done returns a channel closed when the underlying context is cancelled.
func (rc *RunContext) Done() <-chan struct{} { return rc.Context.Done() }

// Err returns the cancellation error (if any) from the underlying context.
func (rc *RunContext) Err() error { return rc.Context.Err() }

// AgentName returns the name of the currently active agent.
func (rc *RunContext) AgentName() string { return rc.Agent.Name }

// SetActiveAgent records a change of the active agent after a hand-off.
func (rc *RunContext) SetActiveAgent(name string) { rc.Agent = AgentInfo{Name: name} }

// NextTurn increments the turn counter and reports whether the turn budget
// still permits another model call. The counter is a hard bound: callers must
// not issue a model call when NextTurn returns false.
func (rc *RunContext) NextTurn() bool {
	rc.Turn++
	return rc.Turn <= rc.MaxTurns
}

// AddUsage merges a model call's token usage into the run accumulator.
func (rc *RunContext) AddUsage(u Usage) { rc.Usage.Add(u) }

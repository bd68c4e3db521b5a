package core

import (
	"context"
	"fmt"

	"github.com/hupe1980/agentrun/logging"
)

// ToolContext provides a constrained, auditable surface for tool
// implementations invoked by an agent during one call of a batch.
type ToolContext struct {
	ctx    context.Context
	runCtx *RunContext
	callID string

	*loggerAdapter
}

// NewToolContext constructs a tool context bound to a parent RunContext and
// unique tool call id. ctx governs the single invocation; the run loop derives
// it from the run context with the per-call timeout applied.
func NewToolContext(ctx context.Context, runCtx *RunContext, callID string) *ToolContext {
	return &ToolContext{
		ctx:           ctx,
		runCtx:        runCtx,
		callID:        callID,
		loggerAdapter: newLoggerAdapter(runCtx.Logger()),
	}
}

// Context returns the context governing the tool invocation.
func (tc *ToolContext) Context() context.Context { return tc.ctx }

// SessionID returns the session id associated with the tool invocation.
func (tc *ToolContext) SessionID() string { return tc.runCtx.SessionID }

// RunID returns the run id associated with the tool invocation.
func (tc *ToolContext) RunID() string { return tc.runCtx.RunID }

// CallID returns the tool call id correlating request and result items.
func (tc *ToolContext) CallID() string { return tc.callID }

// AgentName returns the agent that requested the tool call.
func (tc *ToolContext) AgentName() string { return tc.runCtx.AgentName() }

// Data returns the caller-supplied opaque run value.
func (tc *ToolContext) Data() any { return tc.runCtx.Data }

// Logger returns the logger associated with the tool invocation.
func (tc *ToolContext) Logger() logging.Logger { return tc.loggerAdapter.Logger() }

// Validate performs a structural sanity check of the context.
func (tc *ToolContext) Validate() error {
	if tc.runCtx == nil || tc.callID == "" {
		return fmt.Errorf("invalid ToolContext")
	}
	return nil
}

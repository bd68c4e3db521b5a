// Package agentrun provides a high-level façade over the run loop and its
// service abstractions (sessions & logging) for building tool-using,
// multi-agent applications. Most applications interact with this package by:
//  1. Creating an AgentRun via New() (optionally overriding the default
//     in-memory session store)
//  2. Building one or more agents with the agent package (tools, hand-offs,
//     output contracts, guardrails)
//  3. Executing runs synchronously via Run / RunItems
//
// The façade delegates orchestration to runner.Runner while keeping setup and
// usage ergonomics concise. All defaults are safe for local development and
// testing; production deployments typically supply a durable session store
// and a structured logger.
package agentrun

import (
	"context"

	"github.com/hupe1980/agentrun/agent"
	"github.com/hupe1980/agentrun/core"
	"github.com/hupe1980/agentrun/logging"
	"github.com/hupe1980/agentrun/runner"
	"github.com/hupe1980/agentrun/session"
)

// Options configures the AgentRun instance.
type Options struct {
	// MaxTurns bounds model calls per run. Runs that exhaust the budget fail
	// with runner.KindMaxTurns.
	MaxTurns int

	// SessionStore persists conversation history (defaults to an in-memory
	// implementation if not provided).
	SessionStore core.SessionStore

	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// AgentRun is the high-level façade aggregating the underlying runner and services.
type AgentRun struct {
	opts   Options
	runner *runner.Runner
}

// New creates a new AgentRun instance with optional overrides. Any unset
// service is initialized with an in-memory implementation.
func New(optFns ...func(o *Options)) *AgentRun {
	opts := Options{
		MaxTurns:     10,
		SessionStore: session.NewInMemoryStore(),
		Logger:       logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	r := runner.New(func(o *runner.Options) {
		o.MaxTurns = opts.MaxTurns
		o.SessionStore = opts.SessionStore
		o.Logger = opts.Logger
	})

	return &AgentRun{opts: opts, runner: r}
}

// Run executes a run from a single user message and blocks until the run
// completes or fails. Failures are *runner.RunError values carrying the
// partial item trace.
func (a *AgentRun) Run(
	ctx context.Context,
	ag *agent.Agent,
	input string,
	optFns ...func(o *runner.RunOptions),
) (*runner.RunResult, error) {
	return a.runner.Run(ctx, ag, input, optFns...)
}

// RunItems executes a run from pre-built input items.
func (a *AgentRun) RunItems(
	ctx context.Context,
	ag *agent.Agent,
	input []core.Item,
	optFns ...func(o *runner.RunOptions),
) (*runner.RunResult, error) {
	return a.runner.RunItems(ctx, ag, input, optFns...)
}

// Run is a package-level convenience that executes a single run with default
// services. Intended for examples and quick starts.
func Run(
	ctx context.Context,
	ag *agent.Agent,
	input string,
	optFns ...func(o *runner.RunOptions),
) (*runner.RunResult, error) {
	return New().Run(ctx, ag, input, optFns...)
}

// Package agent defines the immutable agent configuration consumed by the run
// loop: a name, instructions (static or derived from run context), a model,
// an ordered tool set, permissible hand-off targets, guardrails and an
// optional structured-output contract.
//
// Agents are constructed once by the caller with functional options and may be
// reused across many runs and sessions; the run loop references them, never
// copies or mutates them.
package agent

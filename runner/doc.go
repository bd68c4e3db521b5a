// Package runner implements the agent run loop.
//
// The Runner drives a run from entry input to final output: it assembles each
// model request from persisted session history plus the items the run has
// produced so far, classifies every model turn (tool calls, hand-off, final
// response), executes tool calls in parallel with order-preserved results,
// resolves hand-offs against the active agent's declared targets, validates
// output contracts, and enforces guardrails and the hard turn budget.
//
// # Responsibilities (abridged)
//   - Model input assembly (session history + in-run item trace)
//   - Turn classification and loop continuation
//   - Parallel tool fan-out with per-call timeouts and panic recovery
//   - Hand-off resolution and active-agent switching
//   - Output contract validation with model feedback on violations
//   - Append-only session persistence of every generated item
//
// Failures always surface as *RunError values carrying the partial item
// trace, so callers can inspect what the run produced before it failed.
package runner

package runner

import (
	"fmt"

	"github.com/hupe1980/agentrun/core"
)

// ErrorKind categorizes run failures so callers can branch on the cause
// without string matching.
type ErrorKind string

const (
	// KindConfig marks failures caused by invalid configuration or wiring:
	// a nil agent, a hand-off to an undeclared target, a broken instruction
	// template.
	KindConfig ErrorKind = "config"

	// KindBackend marks external backend failures: the model provider, the
	// session store, or run cancellation. The run loop does not retry these;
	// callers own the retry policy.
	KindBackend ErrorKind = "backend"

	// KindGuardrail marks a run aborted by a tripped input or output guardrail.
	KindGuardrail ErrorKind = "guardrail"

	// KindMaxTurns marks a run that exhausted its turn budget without
	// producing a final response.
	KindMaxTurns ErrorKind = "max_turns"
)

// RunError is the failure type returned by Runner.Run. It always carries the
// partial item trace accumulated before the failure so callers can inspect or
// persist what the run produced up to that point.
type RunError struct {
	Kind      ErrorKind
	LastAgent string
	NewItems  []core.Item
	Err       error
}

func (e *RunError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("run failed (%s): %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("run failed (%s)", e.Kind)
}

// Unwrap exposes the underlying cause for errors.Is / errors.As chains.
func (e *RunError) Unwrap() error { return e.Err }

func newRunError(kind ErrorKind, lastAgent string, items []core.Item, err error) *RunError {
	return &RunError{Kind: kind, LastAgent: lastAgent, NewItems: items, Err: err}
}

// Package guardrail defines the pass/fail safety check seam applied by the
// run loop to input and output items. Checks are synchronous and expected to
// be fast; a tripped check aborts the run.
package guardrail

import "github.com/hupe1980/agentrun/core"

// Result is the outcome of one check. Tripped results abort the run with a
// guardrail error; Reason is surfaced to the caller alongside the offending
// item.
type Result struct {
	Tripped bool   `json:"tripped"`
	Reason  string `json:"reason,omitempty"`
}

// Pass is the zero-value passing result.
var Pass = Result{}

// Fail constructs a tripped result with the given reason.
func Fail(reason string) Result { return Result{Tripped: true, Reason: reason} }

// Guardrail checks a single candidate item in the context of a run. A non-nil
// error reports an operational failure of the check itself and is distinct
// from a tripped result.
type Guardrail interface {
	// Name returns the check's identifier used in errors and logs.
	Name() string

	// Check inspects the candidate item.
	Check(runCtx *core.RunContext, item core.Item) (Result, error)
}

// Func adapts an ordinary function into a Guardrail.
type Func struct {
	CheckName string
	Fn        func(runCtx *core.RunContext, item core.Item) (Result, error)
}

// Name implements Guardrail.
func (f Func) Name() string { return f.CheckName }

// Check implements Guardrail.
func (f Func) Check(runCtx *core.RunContext, item core.Item) (Result, error) {
	return f.Fn(runCtx, item)
}

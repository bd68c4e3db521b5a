package runner

import (
	"encoding/json"
	"fmt"

	"github.com/hupe1980/agentrun/core"
)

// RunResult is the outcome of a completed run: the terminating agent's final
// output, every item the run generated (in append order), and the aggregated
// token usage. NewItems excludes prior session history; it is exactly the
// trace this run added.
type RunResult struct {
	// FinalOutput is the terminating agent's final text. When the agent
	// declares an output contract this is the validated JSON payload.
	FinalOutput string

	// NewItems is the ordered trace of items generated by this run.
	NewItems []core.Item

	// LastAgent names the agent that produced the final output. After
	// hand-offs this is the terminating agent, not the entry agent.
	LastAgent string

	// Usage aggregates token accounting across all model calls of the run.
	Usage core.Usage
}

// UnmarshalOutput decodes the final output into v. It requires that the
// terminating agent declared an output contract (FinalOutput is then the
// validated JSON payload).
func (r *RunResult) UnmarshalOutput(v any) error {
	if r.FinalOutput == "" {
		return fmt.Errorf("run produced no structured output")
	}
	if err := json.Unmarshal([]byte(r.FinalOutput), v); err != nil {
		return fmt.Errorf("decode final output: %w", err)
	}
	return nil
}

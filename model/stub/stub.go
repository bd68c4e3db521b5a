// Package stub provides a deterministic model.Model implementation that needs
// no API key. It serves two purposes: scripted responses for tests and
// examples, and canned profile-keyed answers so the training catalog can be
// demonstrated offline.
package stub

import (
	"context"
	"strings"
	"sync"

	"github.com/hupe1980/agentrun/core"
	"github.com/hupe1980/agentrun/model"
)

// Model is an in-process model.Model. When scripted responses are queued via
// Enqueue they are returned in FIFO order; otherwise a canned answer is picked
// by matching the request instructions against the training profile phrases.
//
// Safe for concurrent use; each Call pops at most one scripted response.
type Model struct {
	name string

	mu     sync.Mutex
	queue  []model.Response
	calls  []model.Request
	canned map[string]string
}

// New constructs a stub model. The default name is "stub-model".
func New(name string) *Model {
	if name == "" {
		name = "stub-model"
	}
	return &Model{name: name, canned: cannedResponses()}
}

// Enqueue appends scripted responses returned by subsequent Calls in order.
func (m *Model) Enqueue(responses ...model.Response) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append(m.queue, responses...)
}

// Requests returns a copy of every request the model has received, in call
// order. Tests use this to assert on the assembled input sequence.
func (m *Model) Requests() []model.Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.Request, len(m.calls))
	copy(out, m.calls)
	return out
}

// Call implements model.Model.
func (m *Model) Call(ctx context.Context, req model.Request) (*model.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, model.NewTransientError(err)
	}

	m.mu.Lock()
	m.calls = append(m.calls, req)
	if len(m.queue) > 0 {
		resp := m.queue[0]
		m.queue = m.queue[1:]
		m.mu.Unlock()
		if resp.ID == "" {
			resp.ID = core.NewID()
		}
		if resp.Usage == nil {
			resp.Usage = usageFor(req, resp.Content)
		}
		return &resp, nil
	}
	m.mu.Unlock()

	text := m.cannedFor(req.Instructions)
	return &model.Response{
		ID:      core.NewID(),
		Content: text,
		Usage:   usageFor(req, text),
	}, nil
}

// Info implements model.Model.
func (m *Model) Info() model.Info {
	return model.Info{Name: m.name, Provider: "stub", SupportsTools: true}
}

func (m *Model) cannedFor(instructions string) string {
	in := strings.ToLower(instructions)
	switch {
	case strings.Contains(in, "legendary sage"), strings.Contains(in, "master-level capabilities across all domains"):
		return m.canned["legendary_sage"]
	case strings.Contains(in, "analytical master"), strings.Contains(in, "exceptional analytical"):
		return m.canned["analytical_master"]
	case strings.Contains(in, "communication expert"), strings.Contains(in, "master communicator"):
		return m.canned["communication_expert"]
	case strings.Contains(in, "innovation genius"), strings.Contains(in, "creative problem-solver"):
		return m.canned["innovation_genius"]
	case strings.Contains(in, "legendary") && strings.Contains(in, "training"):
		return m.canned["legendary_generic"]
	default:
		return m.canned["default"]
	}
}

func usageFor(req model.Request, output string) *core.Usage {
	in := 0
	for _, it := range req.Input {
		switch v := it.(type) {
		case core.UserMessageItem:
			in += len(strings.Fields(v.Content))
		case core.AssistantMessageItem:
			in += len(strings.Fields(v.Content))
		}
	}
	out := len(strings.Fields(output))
	return &core.Usage{Requests: 1, InputTokens: in, OutputTokens: out, TotalTokens: in + out}
}

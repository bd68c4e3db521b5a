package stub

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/agentrun/model"
)

func TestScriptedResponsesAreFIFO(t *testing.T) {
	m := New("")
	m.Enqueue(
		model.Response{Content: "first"},
		model.Response{Content: "second"},
	)

	resp, err := m.Call(context.Background(), model.Request{})
	require.NoError(t, err)
	assert.Equal(t, "first", resp.Content)
	assert.NotEmpty(t, resp.ID, "missing ids are filled in")
	assert.NotNil(t, resp.Usage)

	resp, err = m.Call(context.Background(), model.Request{})
	require.NoError(t, err)
	assert.Equal(t, "second", resp.Content)
}

func TestRequestsAreRecorded(t *testing.T) {
	m := New("recorder")
	m.Enqueue(model.Response{Content: "ok"})

	_, err := m.Call(context.Background(), model.Request{Instructions: "be brief"})
	require.NoError(t, err)

	reqs := m.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "be brief", reqs[0].Instructions)

	// The returned slice is a copy.
	reqs[0].Instructions = "mutated"
	assert.Equal(t, "be brief", m.Requests()[0].Instructions)
}

func TestCannedAnswerKeyedByInstructions(t *testing.T) {
	m := New("")

	resp, err := m.Call(context.Background(), model.Request{
		Instructions: "You are the Legendary Sage, with master-level capabilities across all domains.",
	})
	require.NoError(t, err)

	fallback, err := m.Call(context.Background(), model.Request{Instructions: "plain"})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Content)
	assert.NotEmpty(t, fallback.Content)
	assert.NotEqual(t, fallback.Content, resp.Content, "profile phrasing selects a dedicated answer")
}

func TestCallHonorsCancellation(t *testing.T) {
	m := New("")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.Call(ctx, model.Request{})
	require.Error(t, err)

	var modelErr *model.Error
	require.ErrorAs(t, err, &modelErr)
	assert.Equal(t, model.KindTransient, modelErr.Kind)
}

func TestInfo(t *testing.T) {
	assert.Equal(t, "stub-model", New("").Info().Name)
	assert.Equal(t, "custom", New("custom").Info().Name)
	assert.True(t, New("").Info().SupportsTools)
}

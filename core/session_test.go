package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_AddItemsAndLimit(t *testing.T) {
	s := NewSession("s1")
	s.AddItems(
		NewUserMessageItem("one"),
		NewUserMessageItem("two"),
		NewUserMessageItem("three"),
	)

	require.Equal(t, 3, s.Len())

	all := s.Items(0)
	require.Len(t, all, 3)
	assert.Equal(t, "one", all[0].(UserMessageItem).Content)

	tail := s.Items(2)
	require.Len(t, tail, 2)
	assert.Equal(t, "two", tail[0].(UserMessageItem).Content)
	assert.Equal(t, "three", tail[1].(UserMessageItem).Content)
}

func TestSession_PopItem(t *testing.T) {
	s := NewSession("s2")
	assert.Nil(t, s.PopItem(), "pop on empty session returns nil")

	s.AddItems(NewUserMessageItem("first"), NewUserMessageItem("last"))

	popped := s.PopItem()
	require.NotNil(t, popped)
	assert.Equal(t, "last", popped.(UserMessageItem).Content)
	assert.Equal(t, 1, s.Len())
}

func TestSession_ItemsReturnsCopy(t *testing.T) {
	s := NewSession("s3")
	s.AddItems(NewUserMessageItem("original"))

	items := s.Items(0)
	items[0] = NewUserMessageItem("mutated")

	assert.Equal(t, "original", s.Items(0)[0].(UserMessageItem).Content)
}

func TestSession_ClearAndClone(t *testing.T) {
	s := NewSession("s4")
	s.AddItems(NewUserMessageItem("x"))

	clone := s.Clone()
	s.Clear()

	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 1, clone.Len(), "clone keeps its own items")
}

func TestRunContext_NextTurnEnforcesBudget(t *testing.T) {
	rc := NewRunContext(context.Background(), "sess", "run", AgentInfo{Name: "A"}, 3, nil, nil)

	for i := 1; i <= 3; i++ {
		assert.True(t, rc.NextTurn(), "turn %d should be within budget", i)
		assert.Equal(t, i, rc.Turn)
	}
	assert.False(t, rc.NextTurn(), "turn 4 exceeds a budget of 3")
}

func TestRunContext_SetActiveAgent(t *testing.T) {
	rc := NewRunContext(context.Background(), "sess", "run", AgentInfo{Name: "A"}, 1, nil, nil)
	assert.Equal(t, "A", rc.AgentName())

	rc.SetActiveAgent("B")
	assert.Equal(t, "B", rc.AgentName())
}

func TestUsage_Add(t *testing.T) {
	u := &Usage{}
	u.Add(Usage{Requests: 1, InputTokens: 10, OutputTokens: 5, TotalTokens: 15})
	u.Add(Usage{Requests: 1, InputTokens: 7, OutputTokens: 3, TotalTokens: 10})

	assert.Equal(t, 2, u.Requests)
	assert.Equal(t, 17, u.InputTokens)
	assert.Equal(t, 8, u.OutputTokens)
	assert.Equal(t, 25, u.TotalTokens)
}

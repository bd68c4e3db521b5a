package core

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalItem_RoundTripsEveryType(t *testing.T) {
	items := []Item{
		NewUserMessageItem("hello"),
		NewAssistantMessageItem("Helper", "hi there"),
		NewToolCallItem("Helper", "call-1", "calculate_sum", `{"a":1,"b":2}`),
		NewToolResultItem("call-1", "calculate_sum", 3.0, nil),
		NewHandoffItem("Router", "Specialist", "handle this"),
		NewOutputItem("Helper", json.RawMessage(`{"answer":42}`)),
	}

	for _, it := range items {
		tag, err := ItemTypeTag(it)
		require.NoError(t, err)

		data, err := MarshalItem(it)
		require.NoError(t, err, "marshal %s", tag)

		decoded, err := UnmarshalItem(data)
		require.NoError(t, err, "unmarshal %s", tag)

		decodedTag, err := ItemTypeTag(decoded)
		require.NoError(t, err)
		assert.Equal(t, tag, decodedTag)
	}
}

func TestUnmarshalItem_PreservesFields(t *testing.T) {
	orig := NewToolCallItem("MathAgent", "call-7", "square_root", `{"value":144}`)

	data, err := MarshalItem(orig)
	require.NoError(t, err)

	decoded, err := UnmarshalItem(data)
	require.NoError(t, err)

	tc, ok := decoded.(ToolCallItem)
	require.True(t, ok, "expected ToolCallItem, got %T", decoded)
	assert.Equal(t, orig.ID, tc.ID)
	assert.Equal(t, "MathAgent", tc.Agent)
	assert.Equal(t, "call-7", tc.CallID)
	assert.Equal(t, "square_root", tc.Name)
	assert.Equal(t, `{"value":144}`, tc.Arguments)
}

func TestUnmarshalItem_RejectsUnknownType(t *testing.T) {
	_, err := UnmarshalItem([]byte(`{"type":"bogus","item":{}}`))
	assert.Error(t, err)
}

func TestUnmarshalTypedItem(t *testing.T) {
	orig := NewHandoffItem("A", "B", "")
	payload, err := json.Marshal(orig)
	require.NoError(t, err)

	decoded, err := UnmarshalTypedItem("handoff", payload)
	require.NoError(t, err)

	h, ok := decoded.(HandoffItem)
	require.True(t, ok)
	assert.Equal(t, "A", h.From)
	assert.Equal(t, "B", h.To)
}

func TestNewToolResultItem_ErrorDropsResult(t *testing.T) {
	it := NewToolResultItem("c1", "lookup", "partial", assert.AnError)
	assert.Equal(t, assert.AnError.Error(), it.Error)
	assert.Nil(t, it.Result)
}

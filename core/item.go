package core

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Item represents one immutable entry of a conversation trace. Concrete item
// types implement the unexported isItem marker enabling a closed set: the run
// loop classifies items with exhaustive type switches rather than open-ended
// inspection.
//
// Items are immutable once appended to a session. Their ordering is the
// sequence of appension; no item is ever reordered or mutated in place.
type Item interface{ isItem() }

// ItemMeta carries the fields shared by every item type.
type ItemMeta struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

func newItemMeta() ItemMeta {
	return ItemMeta{ID: NewID(), CreatedAt: time.Now().UTC()}
}

// UserMessageItem is a message authored by the caller.
type UserMessageItem struct {
	ItemMeta
	Content string `json:"content"`
}

func (UserMessageItem) isItem() {}

// AssistantMessageItem is a message authored by an agent. Content may be empty
// when the model turn consisted solely of tool calls.
type AssistantMessageItem struct {
	ItemMeta
	Agent   string `json:"agent"`
	Content string `json:"content"`
}

func (AssistantMessageItem) isItem() {}

// ToolCallItem records a model-requested tool invocation.
type ToolCallItem struct {
	ItemMeta
	Agent     string `json:"agent"`
	CallID    string `json:"call_id"`
	Name      string `json:"name"`
	Arguments string `json:"arguments,omitempty"` // serialized JSON payload
}

func (ToolCallItem) isItem() {}

// ToolResultItem records the outcome of a previously appended ToolCallItem.
// Exactly one result exists per call id; Error is set when the call failed
// (unknown tool, validation, execution error, timeout).
type ToolResultItem struct {
	ItemMeta
	CallID string `json:"call_id"`
	Name   string `json:"name"`
	Result any    `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

func (ToolResultItem) isItem() {}

// HandoffItem is the control directive recording a transfer of the active
// agent. Input optionally carries filtered/transformed input handed to the
// target agent.
type HandoffItem struct {
	ItemMeta
	From  string `json:"from"`
	To    string `json:"to"`
	Input string `json:"input,omitempty"`
}

func (HandoffItem) isItem() {}

// OutputItem records a structured final output that validated against the
// producing agent's output contract.
type OutputItem struct {
	ItemMeta
	Agent  string          `json:"agent"`
	Output json.RawMessage `json:"output"`
}

func (OutputItem) isItem() {}

// NewUserMessageItem creates a user-authored message item.
func NewUserMessageItem(content string) UserMessageItem {
	return UserMessageItem{ItemMeta: newItemMeta(), Content: content}
}

// NewAssistantMessageItem creates an agent-authored message item.
func NewAssistantMessageItem(agent, content string) AssistantMessageItem {
	return AssistantMessageItem{ItemMeta: newItemMeta(), Agent: agent, Content: content}
}

// NewToolCallItem records a tool invocation request emitted by an agent.
func NewToolCallItem(agent, callID, name, arguments string) ToolCallItem {
	return ToolCallItem{ItemMeta: newItemMeta(), Agent: agent, CallID: callID, Name: name, Arguments: arguments}
}

// NewToolResultItem captures the outcome of a tool call. If err is non-nil its
// message is copied into the Error field and Result is dropped.
func NewToolResultItem(callID, name string, result any, err error) ToolResultItem {
	it := ToolResultItem{ItemMeta: newItemMeta(), CallID: callID, Name: name}
	if err != nil {
		it.Error = err.Error()
		return it
	}
	it.Result = result
	return it
}

// NewHandoffItem records a transfer of control between two agents.
func NewHandoffItem(from, to, input string) HandoffItem {
	return HandoffItem{ItemMeta: newItemMeta(), From: from, To: to, Input: input}
}

// NewOutputItem records a validated structured output produced by an agent.
func NewOutputItem(agent string, output json.RawMessage) OutputItem {
	return OutputItem{ItemMeta: newItemMeta(), Agent: agent, Output: output}
}

// NewID generates a new unique identifier for items, runs and tool calls.
func NewID() string { return uuid.NewString() }

// Item type tags used by the JSON envelope. The set is closed; stores must
// reject unknown tags rather than guessing.
const (
	itemTypeUserMessage      = "user_message"
	itemTypeAssistantMessage = "assistant_message"
	itemTypeToolCall         = "tool_call"
	itemTypeToolResult       = "tool_result"
	itemTypeHandoff          = "handoff"
	itemTypeOutput           = "output"
)

type itemEnvelope struct {
	Type string          `json:"type"`
	Item json.RawMessage `json:"item"`
}

// ItemTypeTag returns the envelope tag for an item. Stores that persist the
// tag in a dedicated column (e.g. SQLite) use this alongside the raw payload.
func ItemTypeTag(it Item) (string, error) {
	switch it.(type) {
	case UserMessageItem:
		return itemTypeUserMessage, nil
	case AssistantMessageItem:
		return itemTypeAssistantMessage, nil
	case ToolCallItem:
		return itemTypeToolCall, nil
	case ToolResultItem:
		return itemTypeToolResult, nil
	case HandoffItem:
		return itemTypeHandoff, nil
	case OutputItem:
		return itemTypeOutput, nil
	default:
		return "", fmt.Errorf("unknown item type %T", it)
	}
}

// MarshalItem encodes an item as a self-describing JSON envelope so that
// file-, database- and network-backed stores share one wire shape.
func MarshalItem(it Item) ([]byte, error) {
	tag, err := ItemTypeTag(it)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(it)
	if err != nil {
		return nil, fmt.Errorf("marshal %s item: %w", tag, err)
	}

	return json.Marshal(itemEnvelope{Type: tag, Item: payload})
}

// UnmarshalItem decodes a JSON envelope produced by MarshalItem.
func UnmarshalItem(data []byte) (Item, error) {
	var env itemEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decode item envelope: %w", err)
	}

	switch env.Type {
	case itemTypeUserMessage:
		return decodeItem[UserMessageItem](env.Item)
	case itemTypeAssistantMessage:
		return decodeItem[AssistantMessageItem](env.Item)
	case itemTypeToolCall:
		return decodeItem[ToolCallItem](env.Item)
	case itemTypeToolResult:
		return decodeItem[ToolResultItem](env.Item)
	case itemTypeHandoff:
		return decodeItem[HandoffItem](env.Item)
	case itemTypeOutput:
		return decodeItem[OutputItem](env.Item)
	default:
		return nil, fmt.Errorf("unknown item envelope type %q", env.Type)
	}
}

func decodeItem[T Item](payload json.RawMessage) (Item, error) {
	var it T
	if err := json.Unmarshal(payload, &it); err != nil {
		return nil, fmt.Errorf("decode item payload: %w", err)
	}
	return it, nil
}

// UnmarshalTypedItem decodes an item from a (type, payload) pair. Store
// implementations that persist the tag in a dedicated column decode rows
// through this helper.
func UnmarshalTypedItem(itemType string, payload []byte) (Item, error) {
	env, err := json.Marshal(itemEnvelope{Type: itemType, Item: payload})
	if err != nil {
		return nil, err
	}
	return UnmarshalItem(env)
}

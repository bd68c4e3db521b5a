// Package testutil provides builders for scripted model responses used by
// tests across the repository.
package testutil

import (
	"encoding/json"
	"fmt"

	"github.com/hupe1980/agentrun/model"
)

// TextResponse scripts a plain final response.
func TextResponse(content string) model.Response {
	return model.Response{Content: content}
}

// ToolCallResponse scripts a turn consisting solely of the given tool calls.
func ToolCallResponse(calls ...model.ToolCall) model.Response {
	return model.Response{ToolCalls: calls}
}

// Call builds one tool call with deterministic arguments.
func Call(id, name, arguments string) model.ToolCall {
	return model.ToolCall{ID: id, Name: name, Arguments: arguments}
}

// TransferResponse scripts a hand-off expressed as a transfer_to_agent tool
// call, the way providers without a native transfer concept emit it.
func TransferResponse(target, input string) model.Response {
	args := map[string]string{"agent": target}
	if input != "" {
		args["input"] = input
	}
	encoded, _ := json.Marshal(args)
	return model.Response{ToolCalls: []model.ToolCall{{
		ID:        fmt.Sprintf("transfer-%s", target),
		Name:      "transfer_to_agent",
		Arguments: string(encoded),
	}}}
}

// HandoffResponse scripts a hand-off expressed through the explicit response
// field, the way providers with a native transfer concept emit it.
func HandoffResponse(target, input string) model.Response {
	return model.Response{Handoff: &model.HandoffRequest{Agent: target, Input: input}}
}

// OutputResponse scripts a structured final response payload.
func OutputResponse(payload string) model.Response {
	return model.Response{Content: payload}
}

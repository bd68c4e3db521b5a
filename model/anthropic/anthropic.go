// Package anthropic provides a model wrapper for the Anthropic Claude API.
package anthropic

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/anthropics/anthropic-sdk-go/shared/constant"

	"github.com/hupe1980/agentrun/core"
	"github.com/hupe1980/agentrun/model"
)

// Options configures the Anthropic model adapter (temperature, model id,
// max tokens, API key). Extend via functional options to preserve stability.
type Options struct {
	Model       anthropic.Model
	Temperature float64
	MaxTokens   int64
	APIKey      string
}

// Model wraps the Anthropic Messages API behind the generic model.Model interface.
type Model struct {
	client *anthropic.Client
	opts   Options
}

// NewModel creates a new Anthropic model using the official client
func NewModel(optFns ...func(o *Options)) *Model {
	opts := Options{
		Model:       anthropic.ModelClaude3_5Sonnet20241022,
		Temperature: 0.7,
		MaxTokens:   4096,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	var clientOpts []option.RequestOption
	if opts.APIKey != "" {
		clientOpts = append(clientOpts, option.WithAPIKey(opts.APIKey))
	}

	client := anthropic.NewClient(clientOpts...)

	return &Model{
		client: &client,
		opts:   opts,
	}
}

// NewModelFromClient creates a new Anthropic model from an existing client
func NewModelFromClient(client *anthropic.Client, optFns ...func(o *Options)) *Model {
	opts := Options{
		Model:       anthropic.ModelClaude3_5Sonnet20241022,
		Temperature: 0.7,
		MaxTokens:   4096,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Model{
		client: client,
		opts:   opts,
	}
}

// Call performs one blocking Messages API turn.
func (m *Model) Call(ctx context.Context, req model.Request) (*model.Response, error) {
	params := anthropic.MessageNewParams{
		Model:       m.opts.Model,
		Messages:    buildMessages(req.Input),
		MaxTokens:   m.opts.MaxTokens,
		Temperature: anthropic.Float(m.opts.Temperature),
	}

	instructions := req.Instructions
	if req.Output != nil {
		// The Messages API has no schema-constrained decoding mode, so the
		// contract rides along as a system instruction. The run loop still
		// validates the payload against the schema before accepting it.
		instructions = instructions + "\n\n" + outputInstruction(req.Output)
	}
	if instructions != "" {
		params.System = []anthropic.TextBlockParam{{Text: instructions}}
	}

	if len(req.Tools) > 0 {
		params.Tools = buildTools(req.Tools)
	}

	resp, err := m.client.Messages.New(ctx, params)
	if err != nil {
		return nil, model.NewTransientError(fmt.Errorf("anthropic api error: %w", err))
	}

	var content strings.Builder
	var toolCalls []model.ToolCall

	for _, block := range resp.Content {
		switch block.Type {
		case "text":
			content.WriteString(block.AsText().Text)
		case "tool_use":
			toolBlock := block.AsToolUse()
			args := ""
			if toolBlock.Input != nil {
				if argsBytes, err := json.Marshal(toolBlock.Input); err == nil {
					args = string(argsBytes)
				}
			}
			toolCalls = append(toolCalls, model.ToolCall{
				ID:        toolBlock.ID,
				Name:      toolBlock.Name,
				Arguments: args,
			})
		}
	}

	return &model.Response{
		ID:        resp.ID,
		Content:   content.String(),
		ToolCalls: toolCalls,
		Usage: &core.Usage{
			Requests:     1,
			InputTokens:  int(resp.Usage.InputTokens),
			OutputTokens: int(resp.Usage.OutputTokens),
			TotalTokens:  int(resp.Usage.InputTokens + resp.Usage.OutputTokens),
		},
	}, nil
}

func outputInstruction(schema *model.OutputSchema) string {
	encoded, err := json.Marshal(schema.Schema)
	if err != nil {
		return "Respond with a single JSON object and no surrounding prose."
	}
	return fmt.Sprintf(
		"Respond with a single JSON object matching this JSON Schema (no surrounding prose): %s",
		encoded,
	)
}

// buildMessages converts the normalized item history to Anthropic message
// format. Tool calls become assistant tool_use blocks and their results
// become user tool_result blocks, matching the API's required pairing.
func buildMessages(items []core.Item) []anthropic.MessageParam {
	var messages []anthropic.MessageParam

	var assistantBlocks []anthropic.ContentBlockParamUnion
	var userBlocks []anthropic.ContentBlockParamUnion

	flushAssistant := func() {
		if len(assistantBlocks) > 0 {
			messages = append(messages, anthropic.NewAssistantMessage(assistantBlocks...))
			assistantBlocks = nil
		}
	}
	flushUser := func() {
		if len(userBlocks) > 0 {
			messages = append(messages, anthropic.NewUserMessage(userBlocks...))
			userBlocks = nil
		}
	}

	for _, item := range items {
		switch it := item.(type) {
		case core.UserMessageItem:
			flushAssistant()
			userBlocks = append(userBlocks, anthropic.NewTextBlock(it.Content))
		case core.AssistantMessageItem:
			flushUser()
			if it.Content != "" {
				assistantBlocks = append(assistantBlocks, anthropic.NewTextBlock(it.Content))
			}
		case core.ToolCallItem:
			flushUser()
			var input interface{}
			if it.Arguments != "" {
				if err := json.Unmarshal([]byte(it.Arguments), &input); err != nil {
					input = it.Arguments // fallback to string
				}
			}
			assistantBlocks = append(assistantBlocks, anthropic.NewToolUseBlock(it.CallID, input, it.Name))
		case core.ToolResultItem:
			flushAssistant()
			userBlocks = append(userBlocks, anthropic.NewToolResultBlock(it.CallID, toolResultText(it), it.Error != ""))
		case core.HandoffItem:
			flushAssistant()
			userBlocks = append(userBlocks, anthropic.NewTextBlock(
				fmt.Sprintf("Control transferred from %s to %s.", it.From, it.To)))
		case core.OutputItem:
			flushUser()
			assistantBlocks = append(assistantBlocks, anthropic.NewTextBlock(string(it.Output)))
		}
	}
	flushAssistant()
	flushUser()

	return messages
}

func toolResultText(it core.ToolResultItem) string {
	if it.Error != "" {
		return it.Error
	}
	if s, ok := it.Result.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", it.Result)
}

// buildTools converts the normalized tool definitions to Anthropic tool format
func buildTools(tools []model.ToolDefinition) []anthropic.ToolUnionParam {
	anthropicTools := make([]anthropic.ToolUnionParam, len(tools))

	for i, tool := range tools {
		inputSchema := anthropic.ToolInputSchemaParam{
			Type: constant.Object("object"),
		}

		if params := tool.Function.Parameters; params != nil {
			if properties, exists := params["properties"]; exists {
				inputSchema.Properties = properties
			}
			if required, exists := params["required"]; exists {
				switch req := required.(type) {
				case []string:
					inputSchema.Required = req
				case []interface{}:
					var reqStrings []string
					for _, r := range req {
						if s, ok := r.(string); ok {
							reqStrings = append(reqStrings, s)
						}
					}
					inputSchema.Required = reqStrings
				}
			}
		}

		anthropicTools[i] = anthropic.ToolUnionParamOfTool(inputSchema, tool.Function.Name)
	}

	return anthropicTools
}

// Info returns metadata describing this Anthropic model implementation.
func (m *Model) Info() model.Info {
	return model.Info{
		Name:          string(m.opts.Model),
		Provider:      "anthropic",
		SupportsTools: true,
	}
}

package guardrail

import (
	"fmt"
	"strings"

	"github.com/hupe1980/agentrun/core"
)

// bannedTokens trips when a message item contains any of the configured
// tokens (case insensitive).
type bannedTokens struct {
	name   string
	tokens []string
}

// NewBannedTokens constructs a guardrail rejecting items whose text contains
// any of the given tokens.
func NewBannedTokens(name string, tokens ...string) Guardrail {
	lowered := make([]string, len(tokens))
	for i, t := range tokens {
		lowered[i] = strings.ToLower(t)
	}
	return &bannedTokens{name: name, tokens: lowered}
}

func (g *bannedTokens) Name() string { return g.name }

func (g *bannedTokens) Check(_ *core.RunContext, item core.Item) (Result, error) {
	text := itemText(item)
	if text == "" {
		return Pass, nil
	}
	lowered := strings.ToLower(text)
	for _, token := range g.tokens {
		if strings.Contains(lowered, token) {
			return Fail(fmt.Sprintf("banned token %q", token)), nil
		}
	}
	return Pass, nil
}

// maxLength trips when a message item's text exceeds the configured rune count.
type maxLength struct {
	name  string
	limit int
}

// NewMaxLength constructs a guardrail rejecting message items longer than
// limit runes.
func NewMaxLength(name string, limit int) Guardrail {
	return &maxLength{name: name, limit: limit}
}

func (g *maxLength) Name() string { return g.name }

func (g *maxLength) Check(_ *core.RunContext, item core.Item) (Result, error) {
	text := itemText(item)
	if len([]rune(text)) > g.limit {
		return Fail(fmt.Sprintf("message exceeds %d characters", g.limit)), nil
	}
	return Pass, nil
}

func itemText(item core.Item) string {
	switch v := item.(type) {
	case core.UserMessageItem:
		return v.Content
	case core.AssistantMessageItem:
		return v.Content
	case core.OutputItem:
		return string(v.Output)
	default:
		return ""
	}
}

package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/dileep-u-k/restaurant-chatbot/internal/tools"
)

// KeywordGreeting is the free-text answer when no keyword matches.
const KeywordGreeting = "Hello! I can tell you about our menu, suggest a breakfast, lunch or dinner, share our opening hours and specialities, or recommend food when you're feeling unwell."

// keywordRule maps trigger words in a prompt to a tool call.
type keywordRule struct {
	tool     string
	keywords []string
	args     func(prompt string) map[string]any
}

// rules are checked in order; the first match wins.
var keywordRules = []keywordRule{
	{
		tool:     "healthFoodAdvice",
		keywords: []string{"cold", "stomach", "sick", "fever", "unwell", "health"},
		args:     func(prompt string) map[string]any { return map[string]any{"condition": prompt} },
	},
	{
		tool:     "getMenu",
		keywords: []string{"menu", "price", "cost"},
		args:     func(prompt string) map[string]any { return map[string]any{"category": detectCategory(prompt)} },
	},
	{tool: "openingHours", keywords: []string{"open", "hours", "close", "timing"}},
	{tool: "planBreakfast", keywords: []string{"breakfast"}},
	{tool: "planLunch", keywords: []string{"lunch"}},
	{tool: "planDinner", keywords: []string{"dinner", "supper"}},
	{tool: "speciality", keywords: []string{"special", "famous", "popular", "best dish", "recommend"}},
}

// KeywordClient is an offline LLMClient. It picks a tool with simple keyword
// checks on the last user message, so the service can run without a Gemini
// key and tests get a deterministic model.
type KeywordClient struct{}

var _ LLMClient = (*KeywordClient)(nil)

func NewKeywordClient() *KeywordClient {
	return &KeywordClient{}
}

// Generate only proposes tools that appear in availableTools.
func (kc *KeywordClient) Generate(
	ctx context.Context,
	messages []Message,
	_ *GenerationConfig,
	availableTools []tools.Tool,
) (*GenerationResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	_, conversation := splitSystem(messages)
	if len(conversation) == 0 {
		return nil, errors.New("keyword client needs at least one user message")
	}

	prompt := strings.ToLower(conversation[len(conversation)-1].Content)
	offered := make(map[string]bool, len(availableTools))
	for _, t := range availableTools {
		offered[t.Function.Name] = true
	}

	for _, rule := range keywordRules {
		if !offered[rule.tool] || !containsAny(prompt, rule.keywords) {
			continue
		}
		args := map[string]any{}
		if rule.args != nil {
			args = rule.args(prompt)
		}
		encoded, err := json.Marshal(args)
		if err != nil {
			return nil, fmt.Errorf("failed to encode keyword tool args: %w", err)
		}
		return &GenerationResult{
			ToolCalls: []*tools.ToolCall{{
				ID:   "keyword-toolcall-" + rule.tool,
				Type: tools.ToolTypeFunction,
				Function: tools.ToolCallFunction{
					Name:      rule.tool,
					Arguments: string(encoded),
				},
			}},
		}, nil
	}

	return &GenerationResult{Content: KeywordGreeting}, nil
}

// detectCategory returns the first meal category named in prompt, or the
// whole prompt so that the menu tool answers with its fallback.
func detectCategory(prompt string) string {
	for _, category := range []string{tools.Breakfast, tools.Lunch, tools.Dinner} {
		if strings.Contains(prompt, category) {
			return category
		}
	}
	return strings.TrimSpace(prompt)
}

func containsAny(s string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}

package tools

import (
	"encoding/json"
	"fmt"
	"strings"
)

const (
	adviceCold    = "Warm soups, tea and light food are best when you have a cold."
	adviceStomach = "Go for light meals like rice, curd and banana."
	adviceGeneral = "Try to eat light, fresh food and stay hydrated."
)

// HealthAdviceTool gives food advice for a health condition described in free text.
type HealthAdviceTool struct{}

var _ ToolExecutor = (*HealthAdviceTool)(nil)

func NewHealthAdviceTool() *HealthAdviceTool {
	return &HealthAdviceTool{}
}

func (ht *HealthAdviceTool) Definition() Tool {
	return NewFunctionTool(
		"healthFoodAdvice",
		"Food advice for health conditions",
		JSONSchema{
			Type: "object",
			Properties: map[string]*JSONSchema{
				"condition": {
					Type:        "string",
					Description: "The health condition in the guest's own words, e.g. 'a cold' or 'upset stomach'.",
				},
			},
			Required: []string{"condition"},
		},
	)
}

// Execute matches the condition case-insensitively; a cold takes precedence
// over a stomach complaint, and anything else gets general advice.
func (ht *HealthAdviceTool) Execute(arguments string) (string, error) {
	var args struct {
		Condition string `json:"condition"`
	}
	if err := json.Unmarshal([]byte(arguments), &args); err != nil {
		return "", fmt.Errorf("invalid arguments for health advice tool: %w", err)
	}

	condition := strings.ToLower(args.Condition)
	switch {
	case strings.Contains(condition, "cold"):
		return adviceCold, nil
	case strings.Contains(condition, "stomach"):
		return adviceStomach, nil
	default:
		return adviceGeneral, nil
	}
}

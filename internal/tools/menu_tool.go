package tools

import (
	"encoding/json"
	"fmt"
	"strings"
)

// MenuNotFound is returned by the menu tool for an unknown category.
const MenuNotFound = "Sorry, I don't have that menu."

// MenuTool lists the dishes and prices for one meal category.
type MenuTool struct{}

var _ ToolExecutor = (*MenuTool)(nil)

func NewMenuTool() *MenuTool {
	return &MenuTool{}
}

func (mt *MenuTool) Definition() Tool {
	return NewFunctionTool(
		"getMenu",
		"Get menu for breakfast, lunch or dinner",
		JSONSchema{
			Type: "object",
			Properties: map[string]*JSONSchema{
				"category": {
					Type:        "string",
					Description: "The meal category: breakfast, lunch or dinner.",
				},
			},
			Required: []string{"category"},
		},
	)
}

// Execute returns the listing in stored order, or MenuNotFound for an
// unrecognised category.
func (mt *MenuTool) Execute(arguments string) (string, error) {
	var args struct {
		Category string `json:"category"`
	}
	if err := json.Unmarshal([]byte(arguments), &args); err != nil {
		return "", fmt.Errorf("invalid arguments for menu tool: %w", err)
	}

	items, ok := Menu(strings.ToLower(strings.TrimSpace(args.Category)))
	if !ok {
		return MenuNotFound, nil
	}
	return formatListing(items), nil
}

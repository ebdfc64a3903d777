// Package tools defines the restaurant tools the model may call, the
// provider-agnostic structures used to describe them, and the registry that
// dispatches a model's tool call to the matching handler.
package tools

// ToolTypeFunction is the standard type for function-based tools.
const ToolTypeFunction = "function"

// Tool describes a callable function to the model.
type Tool struct {
	Type     string   `json:"type"`
	Function Function `json:"function"`
}

// Function holds the name, description and parameter schema of a tool.
// The description is what the model reads when deciding whether to call it.
type Function struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Parameters  JSONSchema `json:"parameters"`
}

// JSONSchema is the subset of JSON Schema used for tool parameters.
// For the top-level parameters object Type is always "object".
type JSONSchema struct {
	Type        string                 `json:"type"`
	Description string                 `json:"description,omitempty"`
	Properties  map[string]*JSONSchema `json:"properties,omitempty"`
	Required    []string               `json:"required,omitempty"`
}

// HasProperties reports whether the schema declares any parameters.
func (s JSONSchema) HasProperties() bool {
	return len(s.Properties) > 0
}

// ToolCall is a request from the model to run a tool with the given arguments.
type ToolCall struct {
	ID       string           `json:"id"`
	Type     string           `json:"type"`
	Function ToolCallFunction `json:"function"`
}

// ToolCallFunction holds the name and JSON-encoded arguments of a tool call.
type ToolCallFunction struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

// NewFunctionTool builds a Tool of type "function".
func NewFunctionTool(name, description string, parameters JSONSchema) Tool {
	return Tool{
		Type: ToolTypeFunction,
		Function: Function{
			Name:        name,
			Description: description,
			Parameters:  parameters,
		},
	}
}

// noParameters is the schema for tools that take no arguments.
func noParameters() JSONSchema {
	return JSONSchema{Type: "object"}
}

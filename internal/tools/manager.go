package tools

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

var (
	// ErrToolNotFound is returned when the model asks for a tool that is not registered.
	ErrToolNotFound = errors.New("tool not found")
	// ErrInvalidArguments is returned when a tool call's arguments fail schema validation.
	ErrInvalidArguments = errors.New("invalid tool arguments")
)

const schemaBaseURL = "https://restaurant-chatbot.local/tools/"

type registeredTool struct {
	executor ToolExecutor
	schema   *jsonschema.Schema
}

// ToolManager holds the fixed, ordered registry of tools offered to the model.
// It is built once at startup and only read afterwards.
type ToolManager struct {
	order []string
	tools map[string]registeredTool
}

func NewToolManager() *ToolManager {
	return &ToolManager{
		tools: make(map[string]registeredTool),
	}
}

// Register compiles the tool's parameter schema and adds it to the registry.
func (tm *ToolManager) Register(tool ToolExecutor) error {
	def := tool.Definition()
	name := def.Function.Name
	if name == "" {
		return errors.New("tool name cannot be empty")
	}
	if _, exists := tm.tools[name]; exists {
		return fmt.Errorf("tool '%s' is already registered", name)
	}

	schema, err := compileSchema(name, def.Function.Parameters)
	if err != nil {
		return fmt.Errorf("failed to compile schema for tool '%s': %w", name, err)
	}

	tm.tools[name] = registeredTool{executor: tool, schema: schema}
	tm.order = append(tm.order, name)
	return nil
}

// GetDefinitions returns all tool definitions in registration order.
func (tm *ToolManager) GetDefinitions() []Tool {
	defs := make([]Tool, 0, len(tm.order))
	for _, name := range tm.order {
		defs = append(defs, tm.tools[name].executor.Definition())
	}
	return defs
}

// Execute runs a tool by exact name after validating its arguments.
func (tm *ToolManager) Execute(name, arguments string) (string, error) {
	tool, ok := tm.tools[name]
	if !ok {
		return "", fmt.Errorf("%w: '%s'", ErrToolNotFound, name)
	}

	arguments = normalizeArguments(arguments)
	instance, err := jsonschema.UnmarshalJSON(strings.NewReader(arguments))
	if err != nil {
		return "", fmt.Errorf("%w for '%s': %v", ErrInvalidArguments, name, err)
	}
	if err := tool.schema.Validate(instance); err != nil {
		return "", fmt.Errorf("%w for '%s': %v", ErrInvalidArguments, name, err)
	}

	return tool.executor.Execute(arguments)
}

// ToolCount returns the number of registered tools.
func (tm *ToolManager) ToolCount() int {
	return len(tm.order)
}

// Names returns the registered tool names in registration order.
func (tm *ToolManager) Names() []string {
	names := make([]string, len(tm.order))
	copy(names, tm.order)
	return names
}

func compileSchema(name string, params JSONSchema) (*jsonschema.Schema, error) {
	raw, err := json.Marshal(params)
	if err != nil {
		return nil, err
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}

	url := schemaBaseURL + name + ".json"
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(url, doc); err != nil {
		return nil, err
	}
	return compiler.Compile(url)
}

// normalizeArguments maps the empty forms a provider may send for a
// parameterless call onto an empty object.
func normalizeArguments(arguments string) string {
	trimmed := strings.TrimSpace(arguments)
	if trimmed == "" || trimmed == "null" {
		return "{}"
	}
	return trimmed
}

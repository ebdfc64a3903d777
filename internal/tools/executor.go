package tools

// ToolExecutor is implemented by every tool the assistant can run.
type ToolExecutor interface {
	// Definition returns the schema shown to the model.
	Definition() Tool

	// Execute runs the tool. arguments is the JSON object produced by the
	// model, already validated against Definition's parameter schema.
	Execute(arguments string) (string, error)
}

package llm

import (
	"context"

	"github.com/dileep-u-k/restaurant-chatbot/internal/api"
	"github.com/dileep-u-k/restaurant-chatbot/internal/tools"
)

// =================================================================================
// Core Data Structures
// =================================================================================

// Role represents the originator of a message in a conversation.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// Message represents a single message sent to the model.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// GenerationConfig holds the parameters that control the model's generation.
type GenerationConfig struct {
	// The provider model name, e.g. "gemini-2.5-flash".
	Model string
	// Pointer so that 0.0 can be told apart from unset.
	Temperature *float32
	// Zero leaves the provider default in place.
	MaxTokens int
	TopP      *float32
}

// GenerationResult holds the complete output of one model call.
type GenerationResult struct {
	// Free-text answer, empty when the model only requested tools.
	Content string
	// Tool calls in the order the model produced them.
	ToolCalls []*tools.ToolCall
	Usage     api.Usage
}

// =================================================================================
// LLM Client Interface
// =================================================================================

// LLMClient sends a conversation plus the available tools to a model and
// returns either a text answer or the tools it wants run.
type LLMClient interface {
	Generate(
		ctx context.Context,
		messages []Message,
		config *GenerationConfig,
		availableTools []tools.Tool,
	) (*GenerationResult, error)
}

// splitSystem separates system messages from the rest of the conversation.
func splitSystem(messages []Message) (system []string, rest []Message) {
	for _, msg := range messages {
		if msg.Role == RoleSystem {
			system = append(system, msg.Content)
			continue
		}
		rest = append(rest, msg)
	}
	return system, rest
}

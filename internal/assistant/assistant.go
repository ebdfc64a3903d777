// Package assistant turns one guest message into one answer: it asks the
// model, and when the model wants a tool it runs that tool and returns the
// tool's output instead of the model's text.
package assistant

import (
	"context"
	"fmt"
	"time"

	"github.com/dileep-u-k/restaurant-chatbot/internal/api"
	"github.com/dileep-u-k/restaurant-chatbot/internal/llm"
	"github.com/dileep-u-k/restaurant-chatbot/internal/tools"

	"github.com/phuslu/log"
)

// DefaultSystemPrompt sets the waiter persona sent with every request.
const DefaultSystemPrompt = `You are a friendly, polite restaurant assistant.

Speak naturally like a real human waiter.
Be warm, helpful and conversational.
Do not mention tools or technical details.

Use tools ONLY when needed for:
- menu
- breakfast, lunch or dinner planning
- health-related food advice
- opening hours
- restaurant speciality

If asked about taste or personal experience, say:
"I can’t taste food, but I can help you choose."

Keep answers short, friendly and natural.`

// Options configures an Assistant.
type Options struct {
	// SystemPrompt overrides DefaultSystemPrompt when non-empty.
	SystemPrompt string
	// Generation is passed unchanged to the model client.
	Generation *llm.GenerationConfig
	// Timeout bounds the model call. Zero means no bound beyond the caller's context.
	Timeout time.Duration
}

// Assistant is safe for concurrent use; it holds only read-only state.
type Assistant struct {
	client       llm.LLMClient
	toolManager  *tools.ToolManager
	profiler     *llm.Profiler
	logger       *log.Logger
	systemPrompt string
	generation   *llm.GenerationConfig
	timeout      time.Duration
}

// New builds an Assistant. profiler may be nil.
func New(client llm.LLMClient, toolManager *tools.ToolManager, profiler *llm.Profiler, logger *log.Logger, opts Options) *Assistant {
	prompt := opts.SystemPrompt
	if prompt == "" {
		prompt = DefaultSystemPrompt
	}
	generation := opts.Generation
	if generation == nil {
		generation = &llm.GenerationConfig{}
	}
	return &Assistant{
		client:       client,
		toolManager:  toolManager,
		profiler:     profiler,
		logger:       logger,
		systemPrompt: prompt,
		generation:   generation,
		timeout:      opts.Timeout,
	}
}

// Reply answers a single message. It does not retry and has no fallback:
// any model or tool failure is returned to the caller.
func (a *Assistant) Reply(ctx context.Context, message string) (api.ChatResponse, error) {
	messages := []llm.Message{
		{Role: llm.RoleSystem, Content: a.systemPrompt},
		{Role: llm.RoleUser, Content: message},
	}

	result, err := a.generate(ctx, messages)
	if err != nil {
		return api.ChatResponse{}, err
	}

	if len(result.ToolCalls) == 0 {
		a.profiler.RecordAnswer(ctx, api.SourceGemini, "")
		return api.ChatResponse{Source: api.SourceGemini, Answer: result.Content}, nil
	}

	// Only the first tool call is honoured.
	call := result.ToolCalls[0]
	if extra := len(result.ToolCalls) - 1; extra > 0 {
		a.logger.Warn().Int("ignored", extra).Str("tool", call.Function.Name).Msg("model requested several tools, running only the first")
	}

	a.logger.Info().Str("tool", call.Function.Name).Str("args", call.Function.Arguments).Msg("executing tool")
	answer, err := a.toolManager.Execute(call.Function.Name, call.Function.Arguments)
	if err != nil {
		return api.ChatResponse{}, fmt.Errorf("tool %s failed: %w", call.Function.Name, err)
	}

	a.profiler.RecordAnswer(ctx, api.SourceTool, call.Function.Name)
	return api.ChatResponse{Source: api.SourceTool, Answer: answer}, nil
}

func (a *Assistant) generate(ctx context.Context, messages []llm.Message) (*llm.GenerationResult, error) {
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	start := time.Now()
	result, err := a.client.Generate(ctx, messages, a.generation, a.toolManager.GetDefinitions())
	if err != nil {
		a.profiler.RecordModelFailure(ctx, a.generation.Model)
		return nil, fmt.Errorf("model generation failed: %w", err)
	}
	a.profiler.RecordModelSuccess(ctx, a.generation.Model, time.Since(start), result.Usage)
	return result, nil
}

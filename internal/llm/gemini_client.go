package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/dileep-u-k/restaurant-chatbot/internal/tools"

	"github.com/google/generative-ai-go/genai"
	"github.com/phuslu/log"
	"google.golang.org/api/option"
)

// GeminiClient talks to Google's Gemini models through the generative-ai-go SDK.
type GeminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
	logger *log.Logger
}

var _ LLMClient = (*GeminiClient)(nil)

func NewGeminiClient(ctx context.Context, apiKey, modelID string, logger *log.Logger) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, errors.New("gemini API key cannot be empty")
	}
	if modelID == "" {
		return nil, errors.New("gemini model name cannot be empty")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiClient{
		client: client,
		model:  client.GenerativeModel(modelID),
		logger: logger,
	}, nil
}

// Close releases the underlying SDK client.
func (c *GeminiClient) Close() error {
	return c.client.Close()
}

// Generate sends the conversation to Gemini. The last non-system message is
// the prompt; earlier ones become chat history.
func (c *GeminiClient) Generate(
	ctx context.Context,
	messages []Message,
	config *GenerationConfig,
	availableTools []tools.Tool,
) (*GenerationResult, error) {
	system, conversation := splitSystem(messages)
	if len(conversation) == 0 {
		return nil, errors.New("gemini request needs at least one non-system message")
	}

	model := c.configuredModel(config, system, availableTools)
	chat := model.StartChat()
	chat.History = toGeminiContentHistory(conversation[:len(conversation)-1])

	last := conversation[len(conversation)-1]
	resp, err := chat.SendMessage(ctx, genai.Text(last.Content))
	if err != nil {
		return nil, fmt.Errorf("gemini API call failed: %w", err)
	}
	return parseGeminiResponse(resp, c.logger)
}

// configuredModel returns a per-call copy of the shared model so concurrent
// requests never race on its settings.
func (c *GeminiClient) configuredModel(config *GenerationConfig, system []string, availableTools []tools.Tool) *genai.GenerativeModel {
	model := *c.model

	if config != nil {
		if config.Temperature != nil {
			model.SetTemperature(*config.Temperature)
		}
		if config.TopP != nil {
			model.SetTopP(*config.TopP)
		}
		if config.MaxTokens > 0 {
			model.SetMaxOutputTokens(int32(config.MaxTokens))
		}
	}

	if len(system) > 0 {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(strings.Join(system, "\n\n"))},
		}
	}

	model.Tools = toGeminiTools(availableTools)
	return &model
}

// toGeminiTools converts tool definitions into a single Gemini tool holding
// one function declaration per tool.
func toGeminiTools(toolsToConvert []tools.Tool) []*genai.Tool {
	if len(toolsToConvert) == 0 {
		return nil
	}
	decls := make([]*genai.FunctionDeclaration, 0, len(toolsToConvert))
	for _, t := range toolsToConvert {
		decl := &genai.FunctionDeclaration{
			Name:        t.Function.Name,
			Description: t.Function.Description,
		}
		// Gemini rejects an object schema with no properties.
		if t.Function.Parameters.HasProperties() {
			decl.Parameters = convertSchema(t.Function.Parameters)
		}
		decls = append(decls, decl)
	}
	return []*genai.Tool{{FunctionDeclarations: decls}}
}

func convertSchema(s tools.JSONSchema) *genai.Schema {
	genaiSchema := &genai.Schema{
		Description: s.Description,
		Required:    s.Required,
	}
	switch s.Type {
	case "object":
		genaiSchema.Type = genai.TypeObject
	case "string":
		genaiSchema.Type = genai.TypeString
	case "number":
		genaiSchema.Type = genai.TypeNumber
	case "integer":
		genaiSchema.Type = genai.TypeInteger
	case "boolean":
		genaiSchema.Type = genai.TypeBoolean
	}
	if s.Properties != nil {
		genaiSchema.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for k, v := range s.Properties {
			genaiSchema.Properties[k] = convertSchema(*v)
		}
	}
	return genaiSchema
}

func toGeminiContentHistory(messages []Message) []*genai.Content {
	var history []*genai.Content
	for _, msg := range messages {
		role := "user"
		if msg.Role == RoleAssistant {
			role = "model"
		}
		history = append(history, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(msg.Content)},
		})
	}
	return history
}

// parseGeminiResponse reads the first candidate: text parts are concatenated,
// function-call parts become tool calls in the order they appear.
func parseGeminiResponse(resp *genai.GenerateContentResponse, logger *log.Logger) (*GenerationResult, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, errors.New("no candidates returned from Gemini")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil {
		return nil, fmt.Errorf("no content returned from Gemini (finish reason: %s)", candidate.FinishReason)
	}

	var contentBuilder strings.Builder
	var toolCalls []*tools.ToolCall

	for _, part := range candidate.Content.Parts {
		switch v := part.(type) {
		case genai.Text:
			contentBuilder.WriteString(string(v))
		case genai.FunctionCall:
			args, err := json.Marshal(v.Args)
			if err != nil {
				logger.Warn().Err(err).Str("tool", v.Name).Msg("could not marshal tool call args")
				continue
			}
			toolCalls = append(toolCalls, &tools.ToolCall{
				ID:   fmt.Sprintf("gemini-toolcall-%d-%s", len(toolCalls), v.Name),
				Type: tools.ToolTypeFunction,
				Function: tools.ToolCallFunction{
					Name:      v.Name,
					Arguments: string(args),
				},
			})
		}
	}

	result := &GenerationResult{
		Content:   strings.TrimSpace(contentBuilder.String()),
		ToolCalls: toolCalls,
	}
	if resp.UsageMetadata != nil {
		result.Usage.PromptTokens = int(resp.UsageMetadata.PromptTokenCount)
		result.Usage.CompletionTokens = int(resp.UsageMetadata.CandidatesTokenCount)
		result.Usage.TotalTokens = int(resp.UsageMetadata.TotalTokenCount)
	}
	return result, nil
}

// Package api holds the JSON shapes exchanged between the chat widget and the backend.
package api

// Source tells the widget where an answer came from.
type Source string

const (
	// SourceTool marks an answer produced by one of the restaurant tools.
	SourceTool Source = "tool"
	// SourceGemini marks free text written by the model itself.
	SourceGemini Source = "gemini"
)

// Fixed error strings returned to the browser. Internal detail is never exposed.
const (
	ErrMessageRequired = "Message is required"
	ErrServer          = "Server error"
)

// ChatRequest is the body of POST /chat.
//
// Message is decoded as `any` so that a non-string value can be rejected
// with the same validation error as a missing one.
type ChatRequest struct {
	Message any `json:"message"`
}

// ChatResponse is the success body of POST /chat.
type ChatResponse struct {
	Source Source `json:"source"`
	Answer string `json:"answer"`
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Usage holds token accounting reported by the model provider.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

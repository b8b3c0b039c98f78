// Package ai provides a provider-agnostic gateway to LLM backends with
// task-based routing and ordered fallback.
package ai

import "context"

// TaskType classifies a request for routing purposes.
type TaskType int

const (
	// TaskAdapt rewrites lesson content for a learning style.
	TaskAdapt TaskType = iota
	// TaskEvolve generates an advanced follow-up lesson after mastery.
	TaskEvolve
	// TaskQuestion generates the next interview question in a session.
	TaskQuestion
	// TaskScoring evaluates a full interview transcript.
	TaskScoring
)

func (t TaskType) String() string {
	switch t {
	case TaskAdapt:
		return "adapt"
	case TaskEvolve:
		return "evolve"
	case TaskQuestion:
		return "question"
	case TaskScoring:
		return "scoring"
	default:
		return "unknown"
	}
}

// Message is one turn of a model conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CompletionRequest is the input to a completion. When JSON is set the
// provider asks the backend for a JSON-only response where the API supports
// it; callers must still validate the payload.
type CompletionRequest struct {
	Messages    []Message `json:"messages"`
	System      string    `json:"system,omitempty"`
	Model       string    `json:"model,omitempty"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
	Temperature float64   `json:"temperature,omitempty"`
	Task        TaskType  `json:"task,omitempty"`
	JSON        bool      `json:"json,omitempty"`
}

// CompletionResponse is the output from a completion.
type CompletionResponse struct {
	Content      string `json:"content"`
	Model        string `json:"model"`
	InputTokens  int    `json:"input_tokens"`
	OutputTokens int    `json:"output_tokens"`
}

// TotalTokens returns the sum of input and output tokens.
func (r CompletionResponse) TotalTokens() int {
	return r.InputTokens + r.OutputTokens
}

// ModelInfo describes an available model.
type ModelInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	MaxTokens   int    `json:"max_tokens"`
	Description string `json:"description"`
}

// Provider is the interface all LLM providers implement.
type Provider interface {
	Complete(ctx context.Context, req CompletionRequest) (CompletionResponse, error)
	Models() []ModelInfo
	HealthCheck(ctx context.Context) error
}

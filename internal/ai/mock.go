package ai

import (
	"context"
	"sync"
)

// MockProvider is a test double for LLM providers. Responses are returned in
// order; the last one repeats once the list is exhausted.
type MockProvider struct {
	Responses   []string
	Err         error
	LastRequest *CompletionRequest

	mu    sync.Mutex
	calls int
}

// NewMockProvider creates a MockProvider that always returns response.
func NewMockProvider(response string) *MockProvider {
	return &MockProvider{Responses: []string{response}}
}

func (m *MockProvider) Complete(_ context.Context, req CompletionRequest) (CompletionResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.LastRequest = &req
	m.calls++
	if m.Err != nil {
		return CompletionResponse{}, m.Err
	}

	content := ""
	if len(m.Responses) > 0 {
		idx := m.calls - 1
		if idx >= len(m.Responses) {
			idx = len(m.Responses) - 1
		}
		content = m.Responses[idx]
	}
	return CompletionResponse{
		Content:      content,
		Model:        "mock",
		InputTokens:  10,
		OutputTokens: len(content),
	}, nil
}

// Calls reports how many completions have been requested.
func (m *MockProvider) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func (m *MockProvider) Models() []ModelInfo {
	return []ModelInfo{
		{ID: "mock", Name: "Mock Model", MaxTokens: 4096, Description: "Test mock"},
	}
}

func (m *MockProvider) HealthCheck(_ context.Context) error {
	return m.Err
}

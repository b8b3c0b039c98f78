package ai

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// Router selects a provider per request, preferring any per-task order set
// with Prefer and otherwise walking providers in registration order.
type Router struct {
	providers map[string]Provider
	fallback  []string // registration order, the default chain
	byTask    map[TaskType][]string
	mu        sync.RWMutex
}

// NewRouter creates an empty router.
func NewRouter() *Router {
	return &Router{
		providers: make(map[string]Provider),
		byTask:    make(map[TaskType][]string),
	}
}

// Register adds a provider to the default fallback chain.
func (r *Router) Register(name string, provider Provider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[name] = provider
	r.fallback = append(r.fallback, name)
}

// Prefer sets the provider order for one task type. Unknown names are
// ignored at request time.
func (r *Router) Prefer(task TaskType, names ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byTask[task] = names
}

// Complete routes a request through the chain for its task, falling through
// to the next provider on error.
func (r *Router) Complete(ctx context.Context, req CompletionRequest) (CompletionResponse, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	chain := r.byTask[req.Task]
	if len(chain) == 0 {
		chain = r.fallback
	}

	var lastErr error
	for _, name := range chain {
		provider, ok := r.providers[name]
		if !ok {
			continue
		}

		resp, err := provider.Complete(ctx, req)
		if err != nil {
			lastErr = err
			slog.Warn("AI provider failed, trying next",
				"provider", name,
				"task", req.Task.String(),
				"error", err,
			)
			continue
		}

		slog.Debug("AI request completed",
			"provider", name,
			"task", req.Task.String(),
			"model", resp.Model,
			"input_tokens", resp.InputTokens,
			"output_tokens", resp.OutputTokens,
		)
		return resp, nil
	}

	if lastErr != nil {
		return CompletionResponse{}, fmt.Errorf("all AI providers failed: %w", lastErr)
	}
	return CompletionResponse{}, fmt.Errorf("no AI provider available for task %s", req.Task)
}

// HasProvider returns true if at least one provider is registered.
func (r *Router) HasProvider() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.providers) > 0
}

package ai

import (
	"fmt"
	"sync"
)

// BudgetChecker checks and records token usage per student.
type BudgetChecker interface {
	// Check returns true if the student has budget remaining.
	Check(studentID string) (bool, error)
	// Record records token usage for a student.
	Record(studentID string, tokens int) error
	// Usage returns current usage and the configured limit for a student.
	Usage(studentID string) (used int64, budget int64, err error)
}

// InMemoryBudget tracks token usage per student in memory. A default limit
// applies to every student unless a per-student override is set; a limit of
// zero means unlimited.
type InMemoryBudget struct {
	mu           sync.RWMutex
	defaultLimit int64
	budgets      map[string]int64
	usage        map[string]int64
}

// NewInMemoryBudget creates a budget tracker with the given default
// per-student token limit. Zero means unlimited.
func NewInMemoryBudget(defaultLimit int64) *InMemoryBudget {
	return &InMemoryBudget{
		defaultLimit: defaultLimit,
		budgets:      make(map[string]int64),
		usage:        make(map[string]int64),
	}
}

// SetBudget overrides the token budget for one student.
func (b *InMemoryBudget) SetBudget(studentID string, tokens int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.budgets[studentID] = tokens
}

func (b *InMemoryBudget) Check(studentID string) (bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	limit := b.limitFor(studentID)
	if limit == 0 {
		return true, nil
	}
	return b.usage[studentID] < limit, nil
}

func (b *InMemoryBudget) Record(studentID string, tokens int) error {
	if tokens < 0 {
		return fmt.Errorf("tokens must be non-negative, got %d", tokens)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.usage[studentID] += int64(tokens)
	return nil
}

func (b *InMemoryBudget) Usage(studentID string) (int64, int64, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.usage[studentID], b.limitFor(studentID), nil
}

func (b *InMemoryBudget) limitFor(studentID string) int64 {
	if limit, ok := b.budgets[studentID]; ok {
		return limit
	}
	return b.defaultLimit
}

package profile

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrNotFound is returned when no profile matches the lookup.
var ErrNotFound = errors.New("profile not found")

// Store persists user profiles. Writes are last-write-wins; there is a single
// writer per profile (the session that owns it).
type Store interface {
	Create(ctx context.Context, p *Profile) (string, error)
	Get(ctx context.Context, id string) (*Profile, error)
	GetByName(ctx context.Context, name string) (*Profile, error)
	Save(ctx context.Context, p *Profile) error
	Delete(ctx context.Context, id string) error
}

// MemoryStore is an in-memory Store implementation.
type MemoryStore struct {
	profiles map[string]*Profile
	mu       sync.RWMutex
}

// NewMemoryStore creates a new in-memory profile store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		profiles: make(map[string]*Profile),
	}
}

func (s *MemoryStore) Create(_ context.Context, p *Profile) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.profiles {
		if existing.Name == p.Name {
			return "", fmt.Errorf("profile name already taken: %s", p.Name)
		}
	}

	stored := p.Clone()
	if stored.ID == "" {
		stored.ID = generateID()
	}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}
	stored.UpdatedAt = stored.CreatedAt
	s.profiles[stored.ID] = stored
	p.ID = stored.ID
	return stored.ID, nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.profiles[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return p.Clone(), nil
}

func (s *MemoryStore) GetByName(_ context.Context, name string) (*Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.profiles {
		if p.Name == name {
			return p.Clone(), nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
}

func (s *MemoryStore) Save(_ context.Context, p *Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.profiles[p.ID]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, p.ID)
	}
	stored := p.Clone()
	stored.UpdatedAt = time.Now()
	s.profiles[p.ID] = stored
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.profiles[id]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	delete(s.profiles, id)
	return nil
}

package curriculum

import (
	"context"
	"fmt"
	"time"
)

// overridesKey is the fixed storage key for the evolved-module override list.
const overridesKey = "curriculum:overrides"

// KV is the slice of a key-value store the override store needs.
type KV interface {
	GetJSON(ctx context.Context, key string, dest any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

// OverrideStore persists evolved module variants under a single fixed key so
// they survive restarts. Last write wins; there is a single writer.
type OverrideStore struct {
	kv KV
}

// NewOverrideStore creates an override store on top of a key-value backend.
func NewOverrideStore(kv KV) *OverrideStore {
	return &OverrideStore{kv: kv}
}

// Load returns the persisted evolved variants, or nil when none were saved.
func (s *OverrideStore) Load(ctx context.Context) ([]Module, error) {
	var mods []Module
	hit, err := s.kv.GetJSON(ctx, overridesKey, &mods)
	if err != nil {
		return nil, fmt.Errorf("loading curriculum overrides: %w", err)
	}
	if !hit {
		return nil, nil
	}
	return mods, nil
}

// Save replaces the persisted override list.
func (s *OverrideStore) Save(ctx context.Context, mods []Module) error {
	if err := s.kv.SetJSON(ctx, overridesKey, mods, 0); err != nil {
		return fmt.Errorf("saving curriculum overrides: %w", err)
	}
	return nil
}

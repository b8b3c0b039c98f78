package curriculum_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/skillsynth/skillsynth/internal/curriculum"
)

// fakeKV is an in-memory KV backend storing marshaled JSON, like the Redis
// wrapper does.
type fakeKV struct {
	data map[string][]byte
	err  error
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: make(map[string][]byte)}
}

func (f *fakeKV) GetJSON(_ context.Context, key string, dest any) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	raw, ok := f.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (f *fakeKV) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	if f.err != nil {
		return f.err
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.data[key] = raw
	return nil
}

func TestOverrideStoreRoundtrip(t *testing.T) {
	store := curriculum.NewOverrideStore(newFakeKV())
	ctx := context.Background()

	mods, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load() on empty store error = %v", err)
	}
	if mods != nil {
		t.Errorf("Load() on empty store = %v, want nil", mods)
	}

	saved := []curriculum.Module{
		{ID: "m1_v2", Week: 1, Title: "Communication Basics II"},
	}
	if err := store.Save(ctx, saved); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	mods, err = store.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(mods) != 1 || mods[0].ID != "m1_v2" {
		t.Errorf("Load() = %+v, want the saved variant", mods)
	}
}

func TestOverrideStoreBackendError(t *testing.T) {
	kv := newFakeKV()
	kv.err = errors.New("connection refused")
	store := curriculum.NewOverrideStore(kv)

	if _, err := store.Load(context.Background()); err == nil {
		t.Error("Load() should surface backend errors")
	}
	if err := store.Save(context.Background(), nil); err == nil {
		t.Error("Save() should surface backend errors")
	}
}

func TestCatalogOverridesRoundtrip(t *testing.T) {
	cat := curriculum.NewCatalog([]curriculum.Module{
		{ID: "m1", Week: 1, Title: "Communication Basics"},
		{ID: "m2", Week: 2, Title: "Team Roles"},
	}, nil)

	if got := cat.Overrides(); len(got) != 0 {
		t.Fatalf("fresh catalog Overrides() = %v, want none", got)
	}

	cat.ReplaceEvolved("m1", curriculum.Module{Title: "Communication Basics II"})
	overrides := cat.Overrides()
	if len(overrides) != 1 || overrides[0].ID != "m1_v2" {
		t.Fatalf("Overrides() = %+v, want [m1_v2]", overrides)
	}

	// A restarted catalog reinstalls the variants over the originals.
	fresh := curriculum.NewCatalog([]curriculum.Module{
		{ID: "m1", Week: 1, Title: "Communication Basics"},
		{ID: "m2", Week: 2, Title: "Team Roles"},
	}, nil)
	fresh.ApplyOverrides(overrides)

	if _, ok := fresh.Get("m1"); ok {
		t.Error("original m1 should be replaced after ApplyOverrides")
	}
	m, ok := fresh.Get("m1_v2")
	if !ok {
		t.Fatal("m1_v2 missing after ApplyOverrides")
	}
	if m.Title != "Communication Basics II" || m.Week != 1 {
		t.Errorf("reinstalled variant = %+v", m)
	}
	if fresh.Len() != 2 {
		t.Errorf("Len() = %d, want 2", fresh.Len())
	}
}

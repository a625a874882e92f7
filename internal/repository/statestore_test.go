package repository

import (
	"context"
	"testing"
	"time"

	"micoach/coaching-app/internal/domain"
)

type mapKV struct {
	data map[string][]byte
}

func (kv *mapKV) Get(_ context.Context, key string) ([]byte, error) {
	value, ok := kv.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return value, nil
}

func (kv *mapKV) Set(_ context.Context, key string, value []byte) error {
	kv.data[key] = value
	return nil
}

func (kv *mapKV) Remove(_ context.Context, key string) error {
	delete(kv.data, key)
	return nil
}

func newTestStateStore() (*StateStore, *mapKV) {
	kv := &mapKV{data: make(map[string][]byte)}
	return NewStateStore(kv), kv
}

func TestStateStoreRoundTrip(t *testing.T) {
	store, _ := newTestStateStore()
	ctx := context.Background()

	progress := domain.NewProgress("user-1", "plan-1", "progress-1", time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC))
	progress.MarkCompleted("task-1")

	if err := store.SaveProgress(ctx, progress); err != nil {
		t.Fatalf("SaveProgress: %v", err)
	}

	loaded, err := store.LoadProgress(ctx)
	if err != nil {
		t.Fatalf("LoadProgress: %v", err)
	}
	if loaded == nil {
		t.Fatal("expected a stored progress record")
	}
	if loaded.CurrentDay != 1 || !loaded.HasCompleted("task-1") {
		t.Errorf("loaded progress does not match saved state: %+v", loaded)
	}
}

func TestStateStoreAbsentLoadsAreSoft(t *testing.T) {
	store, _ := newTestStateStore()
	ctx := context.Background()

	user, err := store.LoadUser(ctx)
	if err != nil || user != nil {
		t.Errorf("LoadUser on empty store = (%v, %v), want (nil, nil)", user, err)
	}
	plan, err := store.LoadPlan(ctx)
	if err != nil || plan != nil {
		t.Errorf("LoadPlan on empty store = (%v, %v), want (nil, nil)", plan, err)
	}
}

func TestStateStoreRecoversFromCorruptBlob(t *testing.T) {
	store, kv := newTestStateStore()
	ctx := context.Background()

	kv.data[KeyCurrentPlan] = []byte("definitely not json")

	plan, err := store.LoadPlan(ctx)
	if err != nil {
		t.Fatalf("decode failure must not surface, got %v", err)
	}
	if plan != nil {
		t.Errorf("corrupt blob should read as absent, got %+v", plan)
	}
}

func TestStateStorePurgeAll(t *testing.T) {
	store, kv := newTestStateStore()
	ctx := context.Background()

	if err := store.SaveUser(ctx, &domain.User{ID: "u1", Email: "u@example.com"}); err != nil {
		t.Fatalf("SaveUser: %v", err)
	}
	if err := store.SavePlan(ctx, &domain.Plan{ID: "p1", Timeframe: "30 dias"}); err != nil {
		t.Fatalf("SavePlan: %v", err)
	}

	if err := store.PurgeAll(ctx); err != nil {
		t.Fatalf("PurgeAll: %v", err)
	}
	if len(kv.data) != 0 {
		t.Errorf("blobs remain after PurgeAll: %v", kv.data)
	}
}

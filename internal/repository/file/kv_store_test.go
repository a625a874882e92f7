package file

import (
	"context"
	"errors"
	"testing"

	"micoach/coaching-app/internal/repository"
)

func TestFileKeyValueStore(t *testing.T) {
	store, err := NewFileKeyValueStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileKeyValueStore: %v", err)
	}
	ctx := context.Background()

	t.Run("GetAbsent", func(t *testing.T) {
		_, err := store.Get(ctx, repository.KeyCurrentUser)
		if !errors.Is(err, repository.ErrNotFound) {
			t.Errorf("Get absent key = %v, want ErrNotFound", err)
		}
	})

	t.Run("SetAndGet", func(t *testing.T) {
		want := []byte(`{"id":"u1"}`)
		if err := store.Set(ctx, repository.KeyCurrentUser, want); err != nil {
			t.Fatalf("Set: %v", err)
		}
		got, err := store.Get(ctx, repository.KeyCurrentUser)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if string(got) != string(want) {
			t.Errorf("Get = %s, want %s", got, want)
		}
	})

	t.Run("Overwrite", func(t *testing.T) {
		if err := store.Set(ctx, repository.KeyCurrentUser, []byte(`{"id":"u2"}`)); err != nil {
			t.Fatalf("Set: %v", err)
		}
		got, err := store.Get(ctx, repository.KeyCurrentUser)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if string(got) != `{"id":"u2"}` {
			t.Errorf("last write should win, got %s", got)
		}
	})

	t.Run("Remove", func(t *testing.T) {
		if err := store.Remove(ctx, repository.KeyCurrentUser); err != nil {
			t.Fatalf("Remove: %v", err)
		}
		if _, err := store.Get(ctx, repository.KeyCurrentUser); !errors.Is(err, repository.ErrNotFound) {
			t.Errorf("Get after Remove = %v, want ErrNotFound", err)
		}
	})

	t.Run("RemoveAbsentIsNoop", func(t *testing.T) {
		if err := store.Remove(ctx, "neverStored"); err != nil {
			t.Errorf("Remove of absent key = %v, want nil", err)
		}
	})
}

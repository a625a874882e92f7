package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"micoach/coaching-app/internal/repository"
)

// fakeSnapshotStorage records uploads and presigns deterministic URLs.
type fakeSnapshotStorage struct {
	uploads map[string][]byte
}

func newFakeSnapshotStorage() *fakeSnapshotStorage {
	return &fakeSnapshotStorage{uploads: make(map[string][]byte)}
}

func (f *fakeSnapshotStorage) Upload(_ context.Context, objectKey, _ string, data []byte) error {
	f.uploads[objectKey] = data
	return nil
}

func (f *fakeSnapshotStorage) GeneratePresignedDownloadURL(_ context.Context, objectKey string, _ time.Duration) (string, error) {
	return "https://backups.example.com/" + objectKey, nil
}

func (f *fakeSnapshotStorage) DeleteObject(_ context.Context, objectKey string) error {
	delete(f.uploads, objectKey)
	return nil
}

func TestBackupWithoutStateIsRejected(t *testing.T) {
	kv := newInMemoryKV()
	svc := NewBackupService(repository.NewStateStore(kv), newFakeSnapshotStorage())

	_, err := svc.Backup(context.Background())
	if !errors.Is(err, ErrNothingToBackup) {
		t.Errorf("Backup on empty state = %v, want ErrNothingToBackup", err)
	}
}

func TestBackupUploadsSnapshotBundle(t *testing.T) {
	kv := newInMemoryKV()
	store := repository.NewStateStore(kv)
	ctx := context.Background()

	coaching := NewCoachingService(store).(*coachingService)
	coaching.now = func() time.Time { return serviceNow }
	if _, err := coaching.CreatePlan(ctx, saludInput()); err != nil {
		t.Fatalf("CreatePlan: %v", err)
	}

	fake := newFakeSnapshotStorage()
	result, err := NewBackupService(store, fake).Backup(ctx)
	if err != nil {
		t.Fatalf("Backup: %v", err)
	}

	if !strings.HasPrefix(result.ObjectKey, "backups/") {
		t.Errorf("object key = %q, want backups/ prefix", result.ObjectKey)
	}
	if !strings.Contains(result.DownloadURL, result.ObjectKey) {
		t.Errorf("download URL %q does not reference the object key", result.DownloadURL)
	}

	data, ok := fake.uploads[result.ObjectKey]
	if !ok {
		t.Fatalf("no snapshot uploaded under %q", result.ObjectKey)
	}

	var snapshot StateSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		t.Fatalf("snapshot is not valid JSON: %v", err)
	}
	if snapshot.Plan == nil || snapshot.Progress == nil || snapshot.Assessment == nil {
		t.Errorf("snapshot missing records: %+v", snapshot)
	}
}

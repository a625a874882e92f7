package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"micoach/coaching-app/internal/domain"
	"micoach/coaching-app/internal/repository"
	"micoach/coaching-app/internal/storage"

	"github.com/google/uuid"
)

// --- Error Definitions ---
var (
	ErrNothingToBackup = errors.New("no stored state to back up")
	ErrBackupFailed    = errors.New("failed to upload state snapshot")
)

// StateSnapshot is the exported bundle of the four stored records.
type StateSnapshot struct {
	User       *domain.User       `json:"user,omitempty"`
	Assessment *domain.Assessment `json:"assessment,omitempty"`
	Plan       *domain.Plan       `json:"plan,omitempty"`
	Progress   *domain.Progress   `json:"progress,omitempty"`
	ExportedAt time.Time          `json:"exportedAt"`
}

// BackupResult carries the uploaded object key and its temporary download
// link.
type BackupResult struct {
	ObjectKey   string `json:"objectKey"`
	DownloadURL string `json:"downloadUrl"`
}

// BackupService exports the current state bundle to object storage and
// returns a presigned download URL.
type BackupService interface {
	Backup(ctx context.Context) (*BackupResult, error)
}

type backupService struct {
	store       *repository.StateStore
	fileStorage storage.SnapshotStorage
	now         func() time.Time
}

// NewBackupService creates a new instance of backupService.
func NewBackupService(store *repository.StateStore, fileStorage storage.SnapshotStorage) BackupService {
	return &backupService{
		store:       store,
		fileStorage: fileStorage,
		now:         time.Now,
	}
}

// Backup reads the stored records (soft loads — absent ones are skipped),
// uploads them as a single JSON object and presigns a download link.
func (s *backupService) Backup(ctx context.Context) (*BackupResult, error) {
	snapshot := StateSnapshot{ExportedAt: s.now().UTC()}

	var err error
	if snapshot.User, err = s.store.LoadUser(ctx); err != nil {
		return nil, err
	}
	if snapshot.Assessment, err = s.store.LoadAssessment(ctx); err != nil {
		return nil, err
	}
	if snapshot.Plan, err = s.store.LoadPlan(ctx); err != nil {
		return nil, err
	}
	if snapshot.Progress, err = s.store.LoadProgress(ctx); err != nil {
		return nil, err
	}

	if snapshot.User == nil && snapshot.Assessment == nil && snapshot.Plan == nil && snapshot.Progress == nil {
		return nil, ErrNothingToBackup
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		return nil, err
	}

	objectKey := fmt.Sprintf("backups/%s/%s.json", snapshot.ExportedAt.Format("2006-01-02"), uuid.NewString())
	if err := s.fileStorage.Upload(ctx, objectKey, "application/json", data); err != nil {
		return nil, ErrBackupFailed
	}

	url, err := s.fileStorage.GeneratePresignedDownloadURL(ctx, objectKey, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return nil, err
	}

	return &BackupResult{ObjectKey: objectKey, DownloadURL: url}, nil
}

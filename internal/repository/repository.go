package repository

import (
	"context"
)

// Error constants for the persistence layer.
var (
	ErrNotFound    = RepositoryError("not found")
	ErrWriteFailed = RepositoryError("write failed")
)

// RepositoryError helps distinguish persistence errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// Role keys of the persisted state blobs. The adapter never interprets the
// values — each is an opaque serialized record.
const (
	KeyCurrentUser       = "currentUser"
	KeyCurrentPlan       = "currentPlan"
	KeyCurrentProgress   = "currentProgress"
	KeyCurrentAssessment = "currentAssessment"
)

// StateKeys lists every role key, in purge order.
var StateKeys = []string{KeyCurrentUser, KeyCurrentPlan, KeyCurrentProgress, KeyCurrentAssessment}

// KeyValueStore is the persistence adapter: serialized records by string key,
// last-write-wins, no transactional guarantees. Get returns ErrNotFound when
// the key is absent. Remove of an absent key is a no-op.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}

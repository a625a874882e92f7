package storage

import (
	"context"
	"time"
)

// Default expiry duration for presigned URLs.
const DefaultPresignedURLExpiry = 15 * time.Minute

// SnapshotStorage defines the object-storage operations used by the state
// backup flow: the server uploads a serialized snapshot and hands back a
// temporary download link.
type SnapshotStorage interface {
	// Upload writes the snapshot bytes under the given object key.
	Upload(ctx context.Context, objectKey, contentType string, data []byte) error

	// GeneratePresignedDownloadURL creates a temporary URL that allows GET
	// requests for the object directly from the storage provider.
	GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error)

	// DeleteObject removes an object, used to replace stale snapshots.
	DeleteObject(ctx context.Context, objectKey string) error
}

package repository

import (
	"context"
	"time"
)

// ObjectStorage defines the interface for media object storage.
// Implementations should be provided by the infrastructure layer (e.g., MinIO, S3).
// Binary upload happens directly between the client and the store via
// presigned URLs; this application never streams media itself.
type ObjectStorage interface {
	// GeneratePresignedUploadURL creates a presigned URL for direct client upload.
	// key is the object path within the bucket (e.g., "videos/{video_id}/original.mp4").
	GeneratePresignedUploadURL(ctx context.Context, key string, expiry time.Duration) (string, error)

	// GeneratePresignedDownloadURL creates a presigned URL for fetching an object.
	GeneratePresignedDownloadURL(ctx context.Context, key string, expiry time.Duration) (string, error)

	// Delete removes an object from the storage.
	Delete(ctx context.Context, key string) error
}

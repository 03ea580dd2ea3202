// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client to provide a simplified interface for common
// operations like checking bucket existence, uploading local files, and listing
// objects. This abstraction supports both AWS S3 and self-hosted MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (as seen in core/storage/mocks).
//
// # Operations
//
//   - BucketExists / MakeBucket: Bucket provisioning.
//   - FPutObject / FGetObject: File-based upload and download.
//   - StatObject: Metadata retrieval.
//   - RemoveObject: Single object deletion.
//   - GetObjectTagging: Tag retrieval.
//   - ListObjects: Prefix listing (supports recursive traversal).
//
// # Not-Found Handling
//
// IsNotFound distinguishes the store's "NoSuchKey" sentinel from genuine
// failures. Higher layers model not-found as an absent result, not an error.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	exists, err := client.BucketExists(ctx, "docs")
package storage

// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so the reference set can be kept as a document
// in AWS S3 or a self-hosted MinIO bucket instead of on local disk.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Operations
//
//   - BucketExists: Verifies access to the target bucket.
//   - PutObject: Uploads content (used by "reference push").
//   - GetObject: Retrieves content as a stream.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	data, err := storage.ReadObject(ctx, client, "mnp", "reference/mnp.json")
package storage

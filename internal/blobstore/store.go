// Package blobstore provides the blob store adapter capability: storing,
// fetching, listing and bulk-deleting named binary objects in bucket/key
// namespaces. Blobs have no knowledge of which resources reference them;
// reference accounting is the lifecycle service's job.
package blobstore

import (
	"context"
	"time"
)

// ObjectInfo describes a stored blob.
type ObjectInfo struct {
	Key          string
	Size         int64
	LastModified time.Time
}

// Store is the blob store adapter capability consumed by the lifecycle
// service. Bucket namespaces are flat: keys are object names, no hierarchy
// beyond an optional listing prefix.
type Store interface {
	// Put stores data under bucket/key, overwriting any existing object.
	Put(ctx context.Context, bucket, key string, data []byte, contentType string) error

	// Get returns the object's bytes, or an error carrying
	// errors.RecordNotFound when absent.
	Get(ctx context.Context, bucket, key string) ([]byte, error)

	// List returns the objects in the bucket whose keys start with prefix,
	// in key order. An empty prefix lists the whole bucket. The result is
	// never nil.
	List(ctx context.Context, bucket, prefix string) ([]ObjectInfo, error)

	// DeleteOne removes a single object. Removing an absent object is not an
	// error.
	DeleteOne(ctx context.Context, bucket, key string) error

	// DeleteMany removes the given objects, continuing past per-key failures
	// and returning them aggregated. Absent keys are skipped silently.
	DeleteMany(ctx context.Context, bucket string, keys []string) error
}

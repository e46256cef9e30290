// Package models defines the closed set of resource variants managed by the
// datastore. Variants share the Resource capability surface (id, name,
// ownership, soft-disable, timestamps, blob references) and are dispatched by
// the lifecycle service through a per-variant strategy table, not duck typing.
package models

import (
	"time"

	"github.com/spatialtx/datastore/internal/types/resource"
)

// Resource declares the shared behavior of datastore resources.
type Resource interface {
	// GetPublicId is the server-assigned id used to access the resource.
	// Empty until the document store assigns one at insert.
	GetPublicId() string

	// SetPublicId sets the server-assigned id. Only the document store may
	// call this.
	SetPublicId(id string)

	// GetName is the name of the resource, unique within the variant's
	// collection. Variants without a name return "".
	GetName() string

	// GetOwnerAccountId is the account that owns the resource, or "" for
	// ownerless/global variants.
	GetOwnerAccountId() string

	// GetEnabled reports whether the resource is enabled. Variants without
	// soft-disable always return true.
	GetEnabled() bool

	// GetCreateTime is the time the resource was persisted, set once.
	GetCreateTime() time.Time

	// SetCreateTime sets the creation timestamp. Only the document store may
	// call this.
	SetCreateTime(t time.Time)

	// GetLastModified is the time of the last successful mutation.
	GetLastModified() time.Time

	// SetLastModified refreshes the last-modified timestamp. Only the
	// document store may call this.
	SetLastModified(t time.Time)

	// ResourceType is the variant of the resource.
	ResourceType() resource.Type

	// BlobKeys are the blob store keys the resource references. The
	// relationship is not owning; multiple resources may reference the same
	// key.
	BlobKeys() []string

	// Clone returns a deep copy of the resource.
	Clone() Resource
}

// Alloc returns a zero value of the variant's concrete type, or nil for a
// variant with no document collection.
func Alloc(t resource.Type) Resource {
	switch t {
	case resource.Dataset:
		return &Dataset{}
	case resource.Selection:
		return &Selection{}
	case resource.ImageAlignment:
		return &ImageAlignment{}
	case resource.PipelineExperiment:
		return &PipelineExperiment{}
	case resource.Chip:
		return &Chip{}
	case resource.DatasetInfo:
		return &DatasetInfo{}
	case resource.Features:
		return &Features{}
	}
	return nil
}

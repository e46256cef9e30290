// Package docstore provides the document repository capability: CRUD and
// filtered-query access to resource records keyed by server-assigned ids, one
// collection per resource variant. The backing store guarantees atomic
// single-document writes only; there are no cross-collection transactions and
// callers must treat every call as an independent fallible step.
package docstore

import (
	"context"

	"github.com/spatialtx/datastore/internal/models"
	"github.com/spatialtx/datastore/internal/types/resource"
)

// Predicate filters records during queries. A nil Predicate matches all
// records.
type Predicate func(models.Resource) bool

// Store is the document repository capability consumed by the lifecycle
// service.
type Store interface {
	// FindById returns the record with the given id, or an error carrying
	// errors.RecordNotFound.
	FindById(ctx context.Context, typ resource.Type, id string) (models.Resource, error)

	// FindOne returns the first record matching pred, or nil when no record
	// matches. Unlike FindById, no match is not an error.
	FindOne(ctx context.Context, typ resource.Type, pred Predicate) (models.Resource, error)

	// FindAll returns all records matching pred, in stable key order. The
	// result is never nil.
	FindAll(ctx context.Context, typ resource.Type, pred Predicate) ([]models.Resource, error)

	// Insert persists a new record, assigning its public id and timestamps.
	// The record's id must be empty; ids are assigned exactly once, here, and
	// are never reused.
	Insert(ctx context.Context, r models.Resource, opt ...Option) (models.Resource, error)

	// Save overwrites an existing record and refreshes its last-modified
	// timestamp. Fails with errors.RecordNotFound when no record exists at
	// the record's id.
	Save(ctx context.Context, r models.Resource) error

	// Remove deletes the record with the given id. Fails with
	// errors.RecordNotFound when absent. The id does not become reusable.
	Remove(ctx context.Context, typ resource.Type, id string) error
}

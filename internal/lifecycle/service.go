// Package lifecycle orchestrates add/update/delete/read operations across the
// resource variants and their blob dependents. It authorizes through the
// permissions engine, reads and writes through the document store, and on
// cascading deletes garbage-collects shared blobs that no surviving resource
// references.
package lifecycle

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/spatialtx/datastore/internal/blobstore"
	"github.com/spatialtx/datastore/internal/docstore"
	"github.com/spatialtx/datastore/internal/errors"
	"github.com/spatialtx/datastore/internal/models"
	"github.com/spatialtx/datastore/internal/types/resource"
)

const (
	defaultImageBucket    = "images"
	defaultPipelineBucket = "pipeline"

	// experimentsPrefix scopes a pipeline experiment's blobs within the
	// pipeline bucket.
	experimentsPrefix = "experiments/"
)

// Service implements the resource lifecycle operations. All durable state
// lives behind the document and blob stores; a Service holds no mutable state
// of its own and is safe for concurrent use.
type Service struct {
	docs           docstore.Store
	blobs          blobstore.Store
	logger         hclog.Logger
	imageBucket    string
	pipelineBucket string

	// foldDenied marks the variants whose mutation-authorization failures
	// are reported as "not found" instead of "forbidden", so existence of
	// other accounts' resources doesn't leak through error codes.
	foldDenied map[resource.Type]bool
}

// NewService creates a lifecycle service over the given stores. Supports
// WithLogger, WithImageBucket, WithPipelineBucket and WithDeniedFolding.
func NewService(docs docstore.Store, blobs blobstore.Store, opt ...Option) (*Service, error) {
	const op = "lifecycle.NewService"
	if docs == nil {
		return nil, errors.New(errors.InvalidParameter, op, "missing document store")
	}
	if blobs == nil {
		return nil, errors.New(errors.InvalidParameter, op, "missing blob store")
	}
	opts := getOpts(opt...)
	logger := opts.withLogger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	imageBucket := opts.withImageBucket
	if imageBucket == "" {
		imageBucket = defaultImageBucket
	}
	pipelineBucket := opts.withPipelineBucket
	if pipelineBucket == "" {
		pipelineBucket = defaultPipelineBucket
	}
	foldDenied := opts.withDeniedFolding
	if foldDenied == nil {
		// account-scoped variants hide existence on denied mutations; global
		// variants report the denial directly
		foldDenied = map[resource.Type]bool{
			resource.Dataset:            true,
			resource.Selection:          true,
			resource.PipelineExperiment: true,
			resource.DatasetInfo:        true,
		}
	}
	return &Service{
		docs:           docs,
		blobs:          blobs,
		logger:         logger.Named("lifecycle"),
		imageBucket:    imageBucket,
		pipelineBucket: pipelineBucket,
		foldDenied:     foldDenied,
	}, nil
}

// denied builds the error for a failed mutation authorization, folding it
// into a not-found condition for variants configured to hide existence.
func (s *Service) denied(typ resource.Type, op errors.Op, id string) error {
	if s.foldDenied[typ] {
		return errors.New(errors.RecordNotFound, op, notFoundMsg(typ, id))
	}
	return errors.New(errors.Forbidden, op, "you are not allowed to modify this "+typ.String())
}

func notFoundMsg(typ resource.Type, id string) string {
	return fmt.Sprintf("a %s with id %q doesn't exist or you don't have permissions to access it", typ, id)
}

// collectionOf validates that the variant has a document collection.
func collectionOf(typ resource.Type, op errors.Op) error {
	if typ.Collection() == "" {
		return errors.New(errors.InvalidParameter, op, fmt.Sprintf("variant %q has no document collection", typ))
	}
	return nil
}

// datasetIdOf returns the parent dataset id of record variants scoped to a
// dataset, or "".
func datasetIdOf(r models.Resource) string {
	switch t := r.(type) {
	case *models.Selection:
		return t.DatasetId
	case *models.DatasetInfo:
		return t.DatasetId
	case *models.Features:
		return t.DatasetId
	}
	return ""
}

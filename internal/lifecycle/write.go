package lifecycle

import (
	"context"
	"fmt"

	"github.com/spatialtx/datastore/internal/auth"
	"github.com/spatialtx/datastore/internal/docstore"
	"github.com/spatialtx/datastore/internal/errors"
	"github.com/spatialtx/datastore/internal/models"
	"github.com/spatialtx/datastore/internal/perms"
	"github.com/spatialtx/datastore/internal/types/action"
	"github.com/spatialtx/datastore/internal/types/resource"
)

// Add persists a new record. The record's public id must be empty; the store
// assigns it along with the create and last-modified timestamps. Names must
// be unique within the variant's collection. Dataset grants are derived state
// and are reset on create regardless of what the caller supplied.
func (s *Service) Add(ctx context.Context, r models.Resource, opt ...Option) (models.Resource, error) {
	const op = "lifecycle.(Service).Add"
	p, err := auth.CurrentPrincipal(ctx)
	if err != nil {
		return nil, errors.Wrap(err, op)
	}
	if r == nil {
		return nil, errors.New(errors.InvalidParameter, op, "missing resource")
	}
	typ := r.ResourceType()
	if err := collectionOf(typ, op); err != nil {
		return nil, err
	}
	if r.GetPublicId() != "" {
		return nil, errors.New(errors.InvalidPublicId, op, "public id must be empty, ids are assigned by the store")
	}
	if !perms.Allowed(p, r, action.Create) {
		return nil, s.denied(typ, op, r.GetPublicId())
	}
	if err := s.checkParentDataset(ctx, p, r, op); err != nil {
		return nil, err
	}
	if name := r.GetName(); name != "" {
		dup, err := s.docs.FindOne(ctx, typ, func(c models.Resource) bool { return c.GetName() == name })
		if err != nil {
			return nil, errors.Wrap(err, op)
		}
		if dup != nil {
			return nil, errors.New(errors.NotUnique, op, fmt.Sprintf("a %s named %q already exists", typ, name))
		}
	}
	if ds, ok := r.(*models.Dataset); ok {
		ds.GrantedAccounts = nil
	}
	opts := getOpts(opt...)
	var insOpts []docstore.Option
	if opts.withPrngValues != nil {
		insOpts = append(insOpts, docstore.WithPrngValues(opts.withPrngValues))
	}
	created, err := s.docs.Insert(ctx, r, insOpts...)
	if err != nil {
		return nil, errors.Wrap(err, op)
	}
	if info, ok := created.(*models.DatasetInfo); ok {
		if err := s.refreshGrantedAccounts(ctx, info.DatasetId); err != nil {
			return nil, errors.Wrap(err, op)
		}
	}
	return created, nil
}

// Update overwrites an existing record. The candidate must carry the id of
// the record it replaces; timestamps are store-managed and the stored values
// win. Dataset grants are derived state: the stored grant set is carried over
// and the caller's value ignored.
func (s *Service) Update(ctx context.Context, r models.Resource) (models.Resource, error) {
	const op = "lifecycle.(Service).Update"
	p, err := auth.CurrentPrincipal(ctx)
	if err != nil {
		return nil, errors.Wrap(err, op)
	}
	if r == nil {
		return nil, errors.New(errors.InvalidParameter, op, "missing resource")
	}
	typ := r.ResourceType()
	if err := collectionOf(typ, op); err != nil {
		return nil, err
	}
	id := r.GetPublicId()
	if id == "" {
		return nil, errors.New(errors.InvalidPublicId, op, "missing public id")
	}
	existing, err := s.docs.FindById(ctx, typ, id)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.New(errors.RecordNotFound, op, notFoundMsg(typ, id))
		}
		return nil, errors.Wrap(err, op)
	}
	// A record the principal can't even see is reported as absent; a visible
	// record the principal can't modify surfaces the denial per variant.
	if !perms.CanRead(p, existing) && !perms.CanWrite(p, existing) {
		return nil, errors.New(errors.RecordNotFound, op, notFoundMsg(typ, id))
	}
	if !perms.Allowed(p, existing, action.Update) || !perms.Allowed(p, r, action.Update) {
		return nil, s.denied(typ, op, id)
	}
	// moving a record under a different dataset gets the same parent check as
	// creating it there
	if datasetIdOf(r) != datasetIdOf(existing) {
		if err := s.checkParentDataset(ctx, p, r, op); err != nil {
			return nil, err
		}
	}
	if name := r.GetName(); name != "" && name != existing.GetName() {
		dup, err := s.docs.FindOne(ctx, typ, func(c models.Resource) bool { return c.GetName() == name })
		if err != nil {
			return nil, errors.Wrap(err, op)
		}
		if dup != nil && dup.GetPublicId() != id {
			return nil, errors.New(errors.NotUnique, op, fmt.Sprintf("a %s named %q already exists", typ, name))
		}
	}
	if ds, ok := r.(*models.Dataset); ok {
		ds.GrantedAccounts = append([]string(nil), existing.(*models.Dataset).GrantedAccounts...)
	}
	var priorDatasetId string
	if info, ok := existing.(*models.DatasetInfo); ok {
		priorDatasetId = info.DatasetId
	}
	if err := s.docs.Save(ctx, r); err != nil {
		return nil, errors.Wrap(err, op)
	}
	if info, ok := r.(*models.DatasetInfo); ok {
		if priorDatasetId != "" && priorDatasetId != info.DatasetId {
			if err := s.refreshGrantedAccounts(ctx, priorDatasetId); err != nil {
				return nil, errors.Wrap(err, op)
			}
		}
		if err := s.refreshGrantedAccounts(ctx, info.DatasetId); err != nil {
			return nil, errors.Wrap(err, op)
		}
	}
	return r, nil
}

// checkParentDataset enforces that dataset-scoped records are created under a
// dataset the principal can see. Selections require the dataset to also be
// enabled when created by a plain user.
func (s *Service) checkParentDataset(ctx context.Context, p auth.Principal, r models.Resource, op errors.Op) error {
	datasetId := datasetIdOf(r)
	if r.ResourceType() == resource.Features {
		// feature records ride along in the dataset cascade but are written by
		// the pipeline with no per-dataset authorization
		return nil
	}
	if datasetId == "" {
		if r.ResourceType() == resource.Selection || r.ResourceType() == resource.DatasetInfo {
			return errors.New(errors.InvalidParameter, op, "missing dataset id")
		}
		return nil
	}
	ds, err := s.docs.FindById(ctx, resource.Dataset, datasetId)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return errors.New(errors.RecordNotFound, op, notFoundMsg(resource.Dataset, datasetId))
		}
		return errors.Wrap(err, op)
	}
	if !perms.CanRead(p, ds) {
		return errors.New(errors.RecordNotFound, op, notFoundMsg(resource.Dataset, datasetId))
	}
	if r.ResourceType() == resource.Selection && p.IsUser() && !ds.GetEnabled() {
		return errors.New(errors.RecordNotFound, op, notFoundMsg(resource.Dataset, datasetId))
	}
	return nil
}

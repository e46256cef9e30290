package lifecycle

import (
	"context"

	"github.com/spatialtx/datastore/internal/auth"
	"github.com/spatialtx/datastore/internal/conditional"
	"github.com/spatialtx/datastore/internal/docstore"
	"github.com/spatialtx/datastore/internal/errors"
	"github.com/spatialtx/datastore/internal/models"
	"github.com/spatialtx/datastore/internal/perms"
	"github.com/spatialtx/datastore/internal/types/action"
	"github.com/spatialtx/datastore/internal/types/resource"
)

// List returns the records of the variant visible to the current principal,
// in stable id order. Supports WithAccountId, WithDatasetId and WithChipId to
// pre-scope the listing, and WithOnlyEnabled to drop disabled records after
// role scoping. Selections listed by a plain user additionally require the
// parent dataset to be enabled.
func (s *Service) List(ctx context.Context, typ resource.Type, opt ...Option) ([]models.Resource, error) {
	const op = "lifecycle.(Service).List"
	p, err := auth.CurrentPrincipal(ctx)
	if err != nil {
		return nil, errors.Wrap(err, op)
	}
	if err := collectionOf(typ, op); err != nil {
		return nil, err
	}
	opts := getOpts(opt...)
	pred := scopePredicate(opts)
	all, err := s.docs.FindAll(ctx, typ, pred)
	if err != nil {
		return nil, errors.Wrap(err, op)
	}
	var permOpts []perms.Option
	if opts.withOnlyEnabled {
		permOpts = append(permOpts, perms.WithOnlyEnabled())
	}
	visible := perms.VisibleSubset(p, all, permOpts...)
	if typ == resource.Selection && p.IsUser() {
		visible, err = s.dropOrphanedSelections(ctx, p, visible)
		if err != nil {
			return nil, errors.Wrap(err, op)
		}
	}
	return visible, nil
}

// Get returns the record along with its canonical last-modified string.
// Records the principal may not read are reported as not found, so existence
// never leaks through read errors. With WithIfModifiedSince, a record not
// modified since the client's timestamp yields an error carrying
// errors.NotModified and the last-modified string is still returned.
func (s *Service) Get(ctx context.Context, typ resource.Type, id string, opt ...Option) (models.Resource, string, error) {
	const op = "lifecycle.(Service).Get"
	p, err := auth.CurrentPrincipal(ctx)
	if err != nil {
		return nil, "", errors.Wrap(err, op)
	}
	if err := collectionOf(typ, op); err != nil {
		return nil, "", err
	}
	if id == "" {
		return nil, "", errors.New(errors.InvalidPublicId, op, "missing public id")
	}
	opts := getOpts(opt...)
	r, err := s.docs.FindById(ctx, typ, id)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, "", errors.New(errors.RecordNotFound, op, notFoundMsg(typ, id))
		}
		return nil, "", errors.Wrap(err, op)
	}
	if !perms.Allowed(p, r, action.Read) {
		return nil, "", errors.New(errors.RecordNotFound, op, notFoundMsg(typ, id))
	}
	if opts.withOnlyEnabled && !r.GetEnabled() {
		return nil, "", errors.New(errors.RecordNotFound, op, notFoundMsg(typ, id))
	}
	lastModified := conditional.FormatHTTPDate(r.GetLastModified())
	if since, ok := conditional.ParseHTTPDate(opts.withIfModifiedSince); ok {
		if !conditional.Stale(r.GetLastModified(), since) {
			return nil, lastModified, errors.New(errors.NotModified, op, "resource not modified")
		}
	}
	return r, lastModified, nil
}

// GetLastModified returns the canonical last-modified string of a record,
// applying the same visibility rules as Get.
func (s *Service) GetLastModified(ctx context.Context, typ resource.Type, id string) (string, error) {
	const op = "lifecycle.(Service).GetLastModified"
	r, _, err := s.Get(ctx, typ, id)
	if err != nil {
		return "", errors.Wrap(err, op)
	}
	return conditional.FormatHTTPDate(r.GetLastModified()), nil
}

// scopePredicate builds the document-store predicate for a listing's scope
// options, or nil when unscoped.
func scopePredicate(opts options) docstore.Predicate {
	if opts.withAccountId == "" && opts.withDatasetId == "" && opts.withChipId == "" {
		return nil
	}
	return func(r models.Resource) bool {
		if opts.withAccountId != "" && r.GetOwnerAccountId() != opts.withAccountId {
			return false
		}
		if opts.withDatasetId != "" && datasetIdOf(r) != opts.withDatasetId {
			return false
		}
		if opts.withChipId != "" {
			a, ok := r.(*models.ImageAlignment)
			if !ok || a.ChipId != opts.withChipId {
				return false
			}
		}
		return true
	}
}

// dropOrphanedSelections removes selections whose parent dataset a plain user
// can no longer read as enabled. A selection may itself be enabled while its
// dataset has been disabled; such selections stay hidden until the dataset
// comes back.
func (s *Service) dropOrphanedSelections(ctx context.Context, p auth.Principal, sels []models.Resource) ([]models.Resource, error) {
	visible := make(map[string]bool)
	checked := make(map[string]bool)
	out := make([]models.Resource, 0, len(sels))
	for _, r := range sels {
		sel, ok := r.(*models.Selection)
		if !ok {
			continue
		}
		if !checked[sel.DatasetId] {
			checked[sel.DatasetId] = true
			ds, err := s.docs.FindById(ctx, resource.Dataset, sel.DatasetId)
			switch {
			case err == nil:
				visible[sel.DatasetId] = perms.CanRead(p, ds) && ds.GetEnabled()
			case errors.IsNotFoundError(err):
				visible[sel.DatasetId] = false
			default:
				return nil, err
			}
		}
		if visible[sel.DatasetId] {
			out = append(out, r)
		}
	}
	return out, nil
}

package lifecycle

import (
	"context"

	"github.com/spatialtx/datastore/internal/auth"
	"github.com/spatialtx/datastore/internal/errors"
	"github.com/spatialtx/datastore/internal/models"
	"github.com/spatialtx/datastore/internal/perms"
	"github.com/spatialtx/datastore/internal/types/action"
	"github.com/spatialtx/datastore/internal/types/resource"
)

// Delete removes a record and, by default, cascades to its dependents:
//
//   - Dataset: removes the dataset's DatasetInfo, Features and Selection
//     records before the dataset row.
//   - ImageAlignment: removes the row, disables any dataset still referencing
//     the alignment, then deletes the figure blobs no surviving alignment
//     references.
//   - PipelineExperiment: removes the row, then deletes the experiment's
//     blobs in the pipeline bucket.
//   - DatasetInfo: removes the row, then recomputes the dataset's grants.
//
// The record removal is the authoritative step. A blob sweep failure after it
// is logged and swallowed: the worst case is an orphaned blob, never a
// dangling reference. WithCascade(false) removes only the record.
func (s *Service) Delete(ctx context.Context, typ resource.Type, id string, opt ...Option) error {
	const op = "lifecycle.(Service).Delete"
	p, err := auth.CurrentPrincipal(ctx)
	if err != nil {
		return errors.Wrap(err, op)
	}
	if err := collectionOf(typ, op); err != nil {
		return err
	}
	if id == "" {
		return errors.New(errors.InvalidPublicId, op, "missing public id")
	}
	r, err := s.docs.FindById(ctx, typ, id)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return errors.New(errors.RecordNotFound, op, notFoundMsg(typ, id))
		}
		return errors.Wrap(err, op)
	}
	if !perms.CanRead(p, r) && !perms.CanWrite(p, r) {
		return errors.New(errors.RecordNotFound, op, notFoundMsg(typ, id))
	}
	if !perms.Allowed(p, r, action.Delete) {
		return s.denied(typ, op, id)
	}
	opts := getOpts(opt...)
	if !opts.withCascade {
		if err := s.docs.Remove(ctx, typ, id); err != nil {
			return errors.Wrap(err, op)
		}
		return nil
	}
	switch typ {
	case resource.Dataset:
		return s.deleteDatasetCascade(ctx, id)
	case resource.ImageAlignment:
		return s.deleteAlignmentCascade(ctx, r.(*models.ImageAlignment))
	case resource.PipelineExperiment:
		return s.deleteExperimentCascade(ctx, id)
	case resource.DatasetInfo:
		info := r.(*models.DatasetInfo)
		if err := s.docs.Remove(ctx, typ, id); err != nil {
			return errors.Wrap(err, op)
		}
		if err := s.refreshGrantedAccounts(ctx, info.DatasetId); err != nil {
			return errors.Wrap(err, op)
		}
		return nil
	default:
		if err := s.docs.Remove(ctx, typ, id); err != nil {
			return errors.Wrap(err, op)
		}
		return nil
	}
}

// deleteDatasetCascade removes a dataset and its dependent records. The
// dependents go first so a failure mid-cascade leaves the dataset row behind
// as the retry handle; a re-run resumes where the last attempt stopped. Grant
// recomputation is skipped since the dataset itself is going away.
func (s *Service) deleteDatasetCascade(ctx context.Context, datasetId string) error {
	const op = "lifecycle.(Service).deleteDatasetCascade"
	for _, depTyp := range []resource.Type{resource.DatasetInfo, resource.Features, resource.Selection} {
		deps, err := s.docs.FindAll(ctx, depTyp, func(r models.Resource) bool {
			return datasetIdOf(r) == datasetId
		})
		if err != nil {
			return errors.Wrap(err, op)
		}
		for _, dep := range deps {
			if err := s.docs.Remove(ctx, depTyp, dep.GetPublicId()); err != nil {
				return errors.Wrap(err, op)
			}
		}
	}
	if err := s.docs.Remove(ctx, resource.Dataset, datasetId); err != nil {
		return errors.Wrap(err, op)
	}
	return nil
}

// deleteAlignmentCascade removes an image alignment, disables the datasets
// that referenced it, then garbage-collects its figure blobs. The candidate
// keys are collected before the row is removed; after removal the surviving
// alignments are rescanned and any candidate still referenced is pruned, so a
// figure shared between alignments outlives the one being deleted.
func (s *Service) deleteAlignmentCascade(ctx context.Context, a *models.ImageAlignment) error {
	const op = "lifecycle.(Service).deleteAlignmentCascade"
	doomed := a.BlobKeys()
	if err := s.docs.Remove(ctx, resource.ImageAlignment, a.PublicId); err != nil {
		return errors.Wrap(err, op)
	}
	if err := s.disableDatasetsReferencing(ctx, a.PublicId); err != nil {
		return errors.Wrap(err, op)
	}
	if len(doomed) == 0 {
		return nil
	}
	survivors, err := s.docs.FindAll(ctx, resource.ImageAlignment, nil)
	if err != nil {
		// the row is gone; the unswept figures are orphans, not corruption
		s.logger.Error("figure sweep skipped, blobs orphaned", "alignment_id", a.PublicId, "keys", doomed, "error", err)
		return nil
	}
	referenced := make(map[string]bool)
	for _, sv := range survivors {
		for _, k := range sv.BlobKeys() {
			referenced[k] = true
		}
	}
	var orphans []string
	for _, k := range doomed {
		if !referenced[k] {
			orphans = append(orphans, k)
		}
	}
	if len(orphans) == 0 {
		return nil
	}
	if err := s.blobs.DeleteMany(ctx, s.imageBucket, orphans); err != nil {
		s.logger.Error("figure sweep failed, blobs orphaned", "alignment_id", a.PublicId, "keys", orphans, "error", err)
	}
	return nil
}

// disableDatasetsReferencing soft-disables every dataset whose alignment was
// just removed. The dangling alignment id is cleared so the dataset can be
// re-aligned and re-enabled later.
func (s *Service) disableDatasetsReferencing(ctx context.Context, alignmentId string) error {
	const op = "lifecycle.(Service).disableDatasetsReferencing"
	affected, err := s.docs.FindAll(ctx, resource.Dataset, func(r models.Resource) bool {
		return r.(*models.Dataset).ImageAlignmentId == alignmentId
	})
	if err != nil {
		return errors.Wrap(err, op)
	}
	for _, r := range affected {
		ds := r.(*models.Dataset)
		ds.Enabled = false
		ds.ImageAlignmentId = ""
		if err := s.docs.Save(ctx, ds); err != nil {
			return errors.Wrap(err, op)
		}
	}
	return nil
}

// deleteExperimentCascade removes a pipeline experiment row, then sweeps the
// experiment's blobs out of the pipeline bucket.
func (s *Service) deleteExperimentCascade(ctx context.Context, experimentId string) error {
	const op = "lifecycle.(Service).deleteExperimentCascade"
	if err := s.docs.Remove(ctx, resource.PipelineExperiment, experimentId); err != nil {
		return errors.Wrap(err, op)
	}
	prefix := experimentsPrefix + experimentId + "/"
	objs, err := s.blobs.List(ctx, s.pipelineBucket, prefix)
	if err != nil {
		s.logger.Error("experiment sweep skipped, blobs orphaned", "experiment_id", experimentId, "error", err)
		return nil
	}
	if len(objs) == 0 {
		return nil
	}
	keys := make([]string, 0, len(objs))
	for _, o := range objs {
		keys = append(keys, o.Key)
	}
	if err := s.blobs.DeleteMany(ctx, s.pipelineBucket, keys); err != nil {
		s.logger.Error("experiment sweep failed, blobs orphaned", "experiment_id", experimentId, "keys", keys, "error", err)
	}
	return nil
}

package lifecycle

import (
	"context"

	"github.com/spatialtx/datastore/internal/auth"
	"github.com/spatialtx/datastore/internal/errors"
	"github.com/spatialtx/datastore/internal/models"
	"github.com/spatialtx/datastore/internal/types/resource"
)

// ClearAccount scrubs an account out of the store when the account itself is
// deleted upstream. Admin only. DatasetInfo grants for the account are
// removed (recomputing the affected datasets' grant sets) and pipeline
// experiments are detached from the account rather than deleted, so run
// history survives account turnover. Datasets the account created are kept;
// ownership transfer is a separate curation step.
func (s *Service) ClearAccount(ctx context.Context, accountId string) error {
	const op = "lifecycle.(Service).ClearAccount"
	p, err := auth.CurrentPrincipal(ctx)
	if err != nil {
		return errors.Wrap(err, op)
	}
	if !p.IsAdmin() {
		return errors.New(errors.Forbidden, op, "you are not allowed to clear accounts")
	}
	if accountId == "" {
		return errors.New(errors.InvalidParameter, op, "missing account id")
	}

	infos, err := s.docs.FindAll(ctx, resource.DatasetInfo, func(r models.Resource) bool {
		return r.(*models.DatasetInfo).AccountId == accountId
	})
	if err != nil {
		return errors.Wrap(err, op)
	}
	touched := make(map[string]bool)
	for _, r := range infos {
		info := r.(*models.DatasetInfo)
		if err := s.docs.Remove(ctx, resource.DatasetInfo, info.PublicId); err != nil {
			return errors.Wrap(err, op)
		}
		touched[info.DatasetId] = true
	}
	for datasetId := range touched {
		if err := s.refreshGrantedAccounts(ctx, datasetId); err != nil {
			return errors.Wrap(err, op)
		}
	}

	exps, err := s.docs.FindAll(ctx, resource.PipelineExperiment, func(r models.Resource) bool {
		return r.(*models.PipelineExperiment).AccountId == accountId
	})
	if err != nil {
		return errors.Wrap(err, op)
	}
	for _, r := range exps {
		exp := r.(*models.PipelineExperiment)
		exp.AccountId = ""
		if err := s.docs.Save(ctx, exp); err != nil {
			return errors.Wrap(err, op)
		}
	}
	return nil
}

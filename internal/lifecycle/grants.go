package lifecycle

import (
	"context"
	"sort"

	"github.com/spatialtx/datastore/internal/errors"
	"github.com/spatialtx/datastore/internal/models"
	"github.com/spatialtx/datastore/internal/types/resource"
)

// refreshGrantedAccounts recomputes a dataset's derived grant set from the
// surviving DatasetInfo records and saves the dataset when the set changed.
// Saving bumps the dataset's last-modified timestamp, so clients holding a
// cached copy refetch it and observe the new grants. A missing dataset is not
// an error: the info may reference a dataset that is mid-cascade.
func (s *Service) refreshGrantedAccounts(ctx context.Context, datasetId string) error {
	const op = "lifecycle.(Service).refreshGrantedAccounts"
	if datasetId == "" {
		return nil
	}
	dsr, err := s.docs.FindById(ctx, resource.Dataset, datasetId)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil
		}
		return errors.Wrap(err, op)
	}
	ds := dsr.(*models.Dataset)
	infos, err := s.docs.FindAll(ctx, resource.DatasetInfo, func(r models.Resource) bool {
		return r.(*models.DatasetInfo).DatasetId == datasetId
	})
	if err != nil {
		return errors.Wrap(err, op)
	}
	granted := distinctAccounts(infos)
	if equalStrings(granted, ds.GrantedAccounts) {
		return nil
	}
	ds.GrantedAccounts = granted
	if err := s.docs.Save(ctx, ds); err != nil {
		return errors.Wrap(err, op)
	}
	return nil
}

func distinctAccounts(infos []models.Resource) []string {
	seen := make(map[string]bool, len(infos))
	out := make([]string, 0, len(infos))
	for _, r := range infos {
		id := r.(*models.DatasetInfo).AccountId
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

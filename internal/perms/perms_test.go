package perms_test

import (
	"testing"

	"github.com/spatialtx/datastore/internal/auth"
	"github.com/spatialtx/datastore/internal/models"
	"github.com/spatialtx/datastore/internal/perms"
	"github.com/spatialtx/datastore/internal/types/action"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	ownerAccount   = "acct_owner"
	grantedAccount = "acct_granted"
	otherAccount   = "acct_other"
)

func testDataset(enabled bool) *models.Dataset {
	return &models.Dataset{
		PublicId:         "ds_1",
		Name:             "mouse brain",
		Enabled:          enabled,
		CreatedByAccount: ownerAccount,
		GrantedAccounts:  []string{grantedAccount},
	}
}

func testSelection(enabled bool) *models.Selection {
	return &models.Selection{
		PublicId:  "sel_1",
		Name:      "hippocampus hits",
		Enabled:   enabled,
		DatasetId: "ds_1",
		AccountId: ownerAccount,
	}
}

func testAlignment() *models.ImageAlignment {
	return &models.ImageAlignment{PublicId: "imal_1", Name: "chip a"}
}

func testExperiment() *models.PipelineExperiment {
	return &models.PipelineExperiment{PublicId: "pexp_1", Name: "run 42", AccountId: ownerAccount}
}

func TestCanRead(t *testing.T) {
	t.Parallel()
	admin := auth.NewPrincipal("acct_admin", auth.RoleAdmin)
	cmOwner := auth.NewPrincipal(ownerAccount, auth.RoleContentManager)
	cmOther := auth.NewPrincipal(otherAccount, auth.RoleContentManager)
	userOwner := auth.NewPrincipal(ownerAccount, auth.RoleUser)
	userGranted := auth.NewPrincipal(grantedAccount, auth.RoleUser)
	userOther := auth.NewPrincipal(otherAccount, auth.RoleUser)

	tests := []struct {
		name      string
		principal auth.Principal
		resource  models.Resource
		want      bool
	}{
		{"nil-resource", admin, nil, false},

		{"admin-reads-anything", admin, testDataset(false), true},
		{"admin-reads-experiment", admin, testExperiment(), true},

		{"cm-owner-reads-own-dataset", cmOwner, testDataset(true), true},
		{"cm-owner-reads-own-disabled-dataset", cmOwner, testDataset(false), true},
		{"cm-other-denied-foreign-dataset", cmOther, testDataset(true), false},
		{"cm-granted-reads-granted-dataset", auth.NewPrincipal(grantedAccount, auth.RoleContentManager), testDataset(true), true},
		{"cm-reads-global-alignment", cmOther, testAlignment(), true},
		{"cm-other-denied-foreign-experiment", cmOther, testExperiment(), false},
		{"cm-owner-reads-own-experiment", cmOwner, testExperiment(), true},

		{"user-owner-reads-enabled-dataset", userOwner, testDataset(true), true},
		{"user-owner-denied-disabled-dataset", userOwner, testDataset(false), false},
		{"user-granted-reads-enabled-dataset", userGranted, testDataset(true), true},
		{"user-granted-denied-disabled-dataset", userGranted, testDataset(false), false},
		{"user-other-denied-dataset", userOther, testDataset(true), false},
		{"user-reads-global-alignment", userOther, testAlignment(), true},
		{"user-denied-experiment-even-if-owner", userOwner, testExperiment(), false},
		{"user-owner-reads-own-selection", userOwner, testSelection(true), true},
		{"user-owner-denied-disabled-selection", userOwner, testSelection(false), false},
		{"user-other-denied-selection", userOther, testSelection(true), false},

		{"unknown-role-denied", auth.Principal{AccountId: ownerAccount}, testDataset(true), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, perms.CanRead(tt.principal, tt.resource))
		})
	}
}

func TestCanWrite(t *testing.T) {
	t.Parallel()
	admin := auth.NewPrincipal("acct_admin", auth.RoleAdmin)
	cmOwner := auth.NewPrincipal(ownerAccount, auth.RoleContentManager)
	cmOther := auth.NewPrincipal(otherAccount, auth.RoleContentManager)
	cmGranted := auth.NewPrincipal(grantedAccount, auth.RoleContentManager)
	userOwner := auth.NewPrincipal(ownerAccount, auth.RoleUser)
	userOther := auth.NewPrincipal(otherAccount, auth.RoleUser)

	tests := []struct {
		name      string
		principal auth.Principal
		resource  models.Resource
		want      bool
	}{
		{"nil-resource", admin, nil, false},

		{"admin-writes-anything", admin, testDataset(false), true},

		{"cm-owner-writes-own-dataset", cmOwner, testDataset(true), true},
		{"cm-other-denied-foreign-dataset", cmOther, testDataset(true), false},
		{"cm-granted-cannot-write-granted-dataset", cmGranted, testDataset(true), false},
		{"cm-writes-global-alignment", cmOther, testAlignment(), true},
		{"cm-writes-global-chip", cmOther, &models.Chip{PublicId: "chip_1", Name: "1k"}, true},
		{"cm-owner-writes-own-experiment", cmOwner, testExperiment(), true},

		{"user-writes-own-selection", userOwner, testSelection(true), true},
		{"user-denied-foreign-selection", userOther, testSelection(true), false},
		{"user-denied-own-dataset", userOwner, testDataset(true), false},
		{"user-denied-global-alignment", userOwner, testAlignment(), false},
		{"user-denied-experiment", userOwner, testExperiment(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, perms.CanWrite(tt.principal, tt.resource))
			assert.Equal(t, tt.want, perms.CanDelete(tt.principal, tt.resource))
		})
	}
}

func TestVisibleSubset(t *testing.T) {
	t.Parallel()
	enabled := testDataset(true)
	disabled := testDataset(false)
	disabled.PublicId, disabled.Name = "ds_2", "rat liver"
	foreign := &models.Dataset{PublicId: "ds_3", Name: "zebrafish", Enabled: true, CreatedByAccount: otherAccount}
	all := []models.Resource{enabled, disabled, foreign}

	tests := []struct {
		name      string
		principal auth.Principal
		opt       []perms.Option
		wantIds   []string
	}{
		{"admin-sees-all", auth.NewPrincipal("acct_admin", auth.RoleAdmin), nil, []string{"ds_1", "ds_2", "ds_3"}},
		{"admin-only-enabled", auth.NewPrincipal("acct_admin", auth.RoleAdmin), []perms.Option{perms.WithOnlyEnabled()}, []string{"ds_1", "ds_3"}},
		{"cm-sees-owned-including-disabled", auth.NewPrincipal(ownerAccount, auth.RoleContentManager), nil, []string{"ds_1", "ds_2"}},
		{"cm-only-enabled", auth.NewPrincipal(ownerAccount, auth.RoleContentManager), []perms.Option{perms.WithOnlyEnabled()}, []string{"ds_1"}},
		{"user-sees-enabled-owned", auth.NewPrincipal(ownerAccount, auth.RoleUser), nil, []string{"ds_1"}},
		{"user-granted", auth.NewPrincipal(grantedAccount, auth.RoleUser), nil, []string{"ds_1"}},
		{"stranger-sees-nothing", auth.NewPrincipal("acct_stranger", auth.RoleUser), nil, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := perms.VisibleSubset(tt.principal, all, tt.opt...)
			require.NotNil(t, got)
			ids := make([]string, 0, len(got))
			for _, r := range got {
				ids = append(ids, r.GetPublicId())
			}
			assert.Equal(t, tt.wantIds, ids)
		})
	}
}

func TestVisibleSubset_DoesNotMutateInput(t *testing.T) {
	t.Parallel()
	all := []models.Resource{testDataset(true), testDataset(false)}
	_ = perms.VisibleSubset(auth.NewPrincipal("acct_stranger", auth.RoleUser), all)
	assert.Len(t, all, 2)
	assert.Equal(t, "ds_1", all[0].GetPublicId())
}

func TestAllowed(t *testing.T) {
	t.Parallel()
	cmOwner := auth.NewPrincipal(ownerAccount, auth.RoleContentManager)
	userGranted := auth.NewPrincipal(grantedAccount, auth.RoleUser)

	tests := []struct {
		name      string
		principal auth.Principal
		resource  models.Resource
		action    action.Type
		want      bool
	}{
		{"read-dispatches-to-can-read", userGranted, testDataset(true), action.Read, true},
		{"list-dispatches-to-can-read", userGranted, testDataset(true), action.List, true},
		{"create-dispatches-to-can-write", userGranted, testDataset(true), action.Create, false},
		{"update-dispatches-to-can-write", cmOwner, testDataset(true), action.Update, true},
		{"delete-dispatches-to-can-delete", cmOwner, testDataset(true), action.Delete, true},
		{"all-requires-everything", cmOwner, testDataset(true), action.All, true},
		{"all-denied-when-any-missing", userGranted, testDataset(true), action.All, false},
		{"unknown-action-denied", cmOwner, testDataset(true), action.Unknown, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, perms.Allowed(tt.principal, tt.resource, tt.action))
		})
	}
}

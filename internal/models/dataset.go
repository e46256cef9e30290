package models

import (
	"time"

	"github.com/spatialtx/datastore/internal/types/resource"
)

// Dataset is an experiment dataset. Visibility for non-owning accounts is
// driven by GrantedAccounts, a derived set recomputed from the surviving
// DatasetInfo records whenever that collection mutates.
type Dataset struct {
	PublicId         string    `json:"id"`
	Name             string    `json:"name"`
	Enabled          bool      `json:"enabled"`
	ImageAlignmentId string    `json:"image_alignment_id"`
	Tissue           string    `json:"tissue"`
	Species          string    `json:"species"`
	Comment          string    `json:"comment"`
	CreatedByAccount string    `json:"created_by_account_id"`
	GrantedAccounts  []string  `json:"granted_accounts"`
	CreateTime       time.Time `json:"created_at"`
	LastModified     time.Time `json:"last_modified"`
}

func (d *Dataset) GetPublicId() string            { return d.PublicId }
func (d *Dataset) SetPublicId(id string)          { d.PublicId = id }
func (d *Dataset) GetName() string                { return d.Name }
func (d *Dataset) GetOwnerAccountId() string      { return d.CreatedByAccount }
func (d *Dataset) GetEnabled() bool               { return d.Enabled }
func (d *Dataset) GetCreateTime() time.Time       { return d.CreateTime }
func (d *Dataset) SetCreateTime(t time.Time)      { d.CreateTime = t }
func (d *Dataset) GetLastModified() time.Time     { return d.LastModified }
func (d *Dataset) SetLastModified(t time.Time)    { d.LastModified = t }
func (d *Dataset) ResourceType() resource.Type    { return resource.Dataset }
func (d *Dataset) BlobKeys() []string             { return nil }

// GrantedTo reports whether the account has been granted access to the
// dataset.
func (d *Dataset) GrantedTo(accountId string) bool {
	for _, id := range d.GrantedAccounts {
		if id == accountId {
			return true
		}
	}
	return false
}

func (d *Dataset) Clone() Resource {
	cp := *d
	cp.GrantedAccounts = append([]string(nil), d.GrantedAccounts...)
	return &cp
}

package models

import (
	"time"

	"github.com/spatialtx/datastore/internal/types/resource"
)

// DatasetInfo grants an account access to a dataset. The dataset's derived
// granted-accounts set is recomputed from the surviving DatasetInfo records
// whenever this collection mutates. DatasetInfo records have no name.
type DatasetInfo struct {
	PublicId     string    `json:"id"`
	AccountId    string    `json:"account_id"`
	DatasetId    string    `json:"dataset_id"`
	Comment      string    `json:"comment"`
	CreateTime   time.Time `json:"created_at"`
	LastModified time.Time `json:"last_modified"`
}

func (i *DatasetInfo) GetPublicId() string         { return i.PublicId }
func (i *DatasetInfo) SetPublicId(id string)       { i.PublicId = id }
func (i *DatasetInfo) GetName() string             { return "" }
func (i *DatasetInfo) GetOwnerAccountId() string   { return i.AccountId }
func (i *DatasetInfo) GetEnabled() bool            { return true }
func (i *DatasetInfo) GetCreateTime() time.Time    { return i.CreateTime }
func (i *DatasetInfo) SetCreateTime(t time.Time)   { i.CreateTime = t }
func (i *DatasetInfo) GetLastModified() time.Time  { return i.LastModified }
func (i *DatasetInfo) SetLastModified(t time.Time) { i.LastModified = t }
func (i *DatasetInfo) ResourceType() resource.Type { return resource.DatasetInfo }
func (i *DatasetInfo) BlobKeys() []string          { return nil }

func (i *DatasetInfo) Clone() Resource {
	cp := *i
	return &cp
}

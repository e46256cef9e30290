package models

import (
	"time"

	"github.com/spatialtx/datastore/internal/types/resource"
)

// Features is the metadata record for a dataset's feature file. It is removed
// in the dataset's cascade, before the dataset row itself.
type Features struct {
	PublicId     string    `json:"id"`
	DatasetId    string    `json:"dataset_id"`
	Filename     string    `json:"filename"`
	Size         int64     `json:"size"`
	CreateTime   time.Time `json:"created_at"`
	LastModified time.Time `json:"last_modified"`
}

func (f *Features) GetPublicId() string         { return f.PublicId }
func (f *Features) SetPublicId(id string)       { f.PublicId = id }
func (f *Features) GetName() string             { return "" }
func (f *Features) GetOwnerAccountId() string   { return "" }
func (f *Features) GetEnabled() bool            { return true }
func (f *Features) GetCreateTime() time.Time    { return f.CreateTime }
func (f *Features) SetCreateTime(t time.Time)   { f.CreateTime = t }
func (f *Features) GetLastModified() time.Time  { return f.LastModified }
func (f *Features) SetLastModified(t time.Time) { f.LastModified = t }
func (f *Features) ResourceType() resource.Type { return resource.Features }
func (f *Features) BlobKeys() []string          { return nil }

func (f *Features) Clone() Resource {
	cp := *f
	return &cp
}

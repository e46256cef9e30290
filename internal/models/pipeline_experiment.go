package models

import (
	"time"

	"github.com/spatialtx/datastore/internal/types/resource"
)

// PipelineExperiment is the computational part of an experiment, in which a
// raw dataset is mapped and annotated by a pipeline run. Administrative
// variant: plain users have no access at all.
type PipelineExperiment struct {
	PublicId     string    `json:"id"`
	Name         string    `json:"name"`
	AccountId    string    `json:"account_id"`
	JobflowId    string    `json:"jobflow_id"`
	State        string    `json:"state"`
	CreateTime   time.Time `json:"created_at"`
	LastModified time.Time `json:"last_modified"`
}

func (e *PipelineExperiment) GetPublicId() string         { return e.PublicId }
func (e *PipelineExperiment) SetPublicId(id string)       { e.PublicId = id }
func (e *PipelineExperiment) GetName() string             { return e.Name }
func (e *PipelineExperiment) GetOwnerAccountId() string   { return e.AccountId }
func (e *PipelineExperiment) GetEnabled() bool            { return true }
func (e *PipelineExperiment) GetCreateTime() time.Time    { return e.CreateTime }
func (e *PipelineExperiment) SetCreateTime(t time.Time)   { e.CreateTime = t }
func (e *PipelineExperiment) GetLastModified() time.Time  { return e.LastModified }
func (e *PipelineExperiment) SetLastModified(t time.Time) { e.LastModified = t }
func (e *PipelineExperiment) ResourceType() resource.Type { return resource.PipelineExperiment }
func (e *PipelineExperiment) BlobKeys() []string          { return nil }

func (e *PipelineExperiment) Clone() Resource {
	cp := *e
	return &cp
}

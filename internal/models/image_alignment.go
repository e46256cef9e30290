package models

import (
	"time"

	"github.com/spatialtx/datastore/internal/types/resource"
)

// ImageAlignment aligns two figure images against a chip layout. The figure
// keys reference blobs in the shared image bucket; several alignments may
// reference the same figure, so deleting an alignment must not delete a
// figure another surviving alignment still references.
type ImageAlignment struct {
	PublicId        string    `json:"id"`
	Name            string    `json:"name"`
	ChipId          string    `json:"chip_id"`
	FigureRed       string    `json:"figure_red"`
	FigureBlue      string    `json:"figure_blue"`
	AlignmentMatrix []float64 `json:"alignment_matrix"`
	CreateTime      time.Time `json:"created_at"`
	LastModified    time.Time `json:"last_modified"`
}

func (a *ImageAlignment) GetPublicId() string         { return a.PublicId }
func (a *ImageAlignment) SetPublicId(id string)       { a.PublicId = id }
func (a *ImageAlignment) GetName() string             { return a.Name }
func (a *ImageAlignment) GetOwnerAccountId() string   { return "" }
func (a *ImageAlignment) GetEnabled() bool            { return true }
func (a *ImageAlignment) GetCreateTime() time.Time    { return a.CreateTime }
func (a *ImageAlignment) SetCreateTime(t time.Time)   { a.CreateTime = t }
func (a *ImageAlignment) GetLastModified() time.Time  { return a.LastModified }
func (a *ImageAlignment) SetLastModified(t time.Time) { a.LastModified = t }
func (a *ImageAlignment) ResourceType() resource.Type { return resource.ImageAlignment }

func (a *ImageAlignment) BlobKeys() []string {
	var keys []string
	if a.FigureRed != "" {
		keys = append(keys, a.FigureRed)
	}
	if a.FigureBlue != "" {
		keys = append(keys, a.FigureBlue)
	}
	return keys
}

func (a *ImageAlignment) Clone() Resource {
	cp := *a
	cp.AlignmentMatrix = append([]float64(nil), a.AlignmentMatrix...)
	return &cp
}

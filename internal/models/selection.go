package models

import (
	"time"

	"github.com/spatialtx/datastore/internal/types/resource"
)

// Selection is a user-curated set of gene hits scoped to a dataset. It is the
// one variant that permits user-level mutation.
type Selection struct {
	PublicId       string     `json:"id"`
	Name           string     `json:"name"`
	Enabled        bool       `json:"enabled"`
	DatasetId      string     `json:"dataset_id"`
	AccountId      string     `json:"account_id"`
	Type           string     `json:"type"`
	Status         string     `json:"status"`
	Comment        string     `json:"comment"`
	GeneHits       [][]string `json:"gene_hits"`
	TissueSnapshot string     `json:"tissue_snapshot"`
	CreateTime     time.Time  `json:"created_at"`
	LastModified   time.Time  `json:"last_modified"`
}

func (s *Selection) GetPublicId() string         { return s.PublicId }
func (s *Selection) SetPublicId(id string)       { s.PublicId = id }
func (s *Selection) GetName() string             { return s.Name }
func (s *Selection) GetOwnerAccountId() string   { return s.AccountId }
func (s *Selection) GetEnabled() bool            { return s.Enabled }
func (s *Selection) GetCreateTime() time.Time    { return s.CreateTime }
func (s *Selection) SetCreateTime(t time.Time)   { s.CreateTime = t }
func (s *Selection) GetLastModified() time.Time  { return s.LastModified }
func (s *Selection) SetLastModified(t time.Time) { s.LastModified = t }
func (s *Selection) ResourceType() resource.Type { return resource.Selection }
func (s *Selection) BlobKeys() []string          { return nil }

func (s *Selection) Clone() Resource {
	cp := *s
	if s.GeneHits != nil {
		cp.GeneHits = make([][]string, len(s.GeneHits))
		for i, h := range s.GeneHits {
			cp.GeneHits[i] = append([]string(nil), h...)
		}
	}
	return &cp
}

package models

import (
	"time"

	"github.com/spatialtx/datastore/internal/types/resource"
)

// Chip describes an array chip layout. Chips are global records: readable by
// every role, mutable by content managers and administrators.
type Chip struct {
	PublicId     string    `json:"id"`
	Name         string    `json:"name"`
	Barcodes     int       `json:"barcodes"`
	Comment      string    `json:"comment"`
	CreateTime   time.Time `json:"created_at"`
	LastModified time.Time `json:"last_modified"`
}

func (c *Chip) GetPublicId() string         { return c.PublicId }
func (c *Chip) SetPublicId(id string)       { c.PublicId = id }
func (c *Chip) GetName() string             { return c.Name }
func (c *Chip) GetOwnerAccountId() string   { return "" }
func (c *Chip) GetEnabled() bool            { return true }
func (c *Chip) GetCreateTime() time.Time    { return c.CreateTime }
func (c *Chip) SetCreateTime(t time.Time)   { c.CreateTime = t }
func (c *Chip) GetLastModified() time.Time  { return c.LastModified }
func (c *Chip) SetLastModified(t time.Time) { c.LastModified = t }
func (c *Chip) ResourceType() resource.Type { return resource.Chip }
func (c *Chip) BlobKeys() []string          { return nil }

func (c *Chip) Clone() Resource {
	cp := *c
	return &cp
}

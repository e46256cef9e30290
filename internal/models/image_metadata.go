package models

import "time"

// ImageMetadata describes an image blob in the image bucket. Images are not
// document records; metadata is derived from the blob store listing.
type ImageMetadata struct {
	Filename     string    `json:"filename"`
	ImageType    string    `json:"image_type"`
	Size         int64     `json:"size"`
	CreateTime   time.Time `json:"created_at"`
	LastModified time.Time `json:"last_modified"`
}

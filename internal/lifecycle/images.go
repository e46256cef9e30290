package lifecycle

import (
	"context"
	"path"
	"strings"

	"github.com/spatialtx/datastore/internal/auth"
	"github.com/spatialtx/datastore/internal/errors"
	"github.com/spatialtx/datastore/internal/models"
)

// ListImages returns metadata for the images in the image bucket. Listing is
// a curation operation, restricted to content managers and admins; plain
// users only ever reach figures through the alignments that reference them.
func (s *Service) ListImages(ctx context.Context) ([]models.ImageMetadata, error) {
	const op = "lifecycle.(Service).ListImages"
	p, err := auth.CurrentPrincipal(ctx)
	if err != nil {
		return nil, errors.Wrap(err, op)
	}
	if !p.IsAdmin() && !p.IsContentManager() {
		return nil, errors.New(errors.Forbidden, op, "you are not allowed to list images")
	}
	objs, err := s.blobs.List(ctx, s.imageBucket, "")
	if err != nil {
		return nil, errors.Wrap(err, op)
	}
	out := make([]models.ImageMetadata, 0, len(objs))
	for _, o := range objs {
		out = append(out, models.ImageMetadata{
			Filename:     o.Key,
			ImageType:    imageTypeOf(o.Key),
			Size:         o.Size,
			CreateTime:   o.LastModified,
			LastModified: o.LastModified,
		})
	}
	return out, nil
}

// GetImage returns the raw bytes of an image. Any authenticated principal may
// fetch an image by key; keys are unguessable and reach clients only through
// records they were already allowed to read.
func (s *Service) GetImage(ctx context.Context, key string) ([]byte, error) {
	const op = "lifecycle.(Service).GetImage"
	if _, err := auth.CurrentPrincipal(ctx); err != nil {
		return nil, errors.Wrap(err, op)
	}
	if key == "" {
		return nil, errors.New(errors.InvalidParameter, op, "missing image key")
	}
	data, err := s.blobs.Get(ctx, s.imageBucket, key)
	if err != nil {
		return nil, errors.Wrap(err, op)
	}
	return data, nil
}

// PutImage stores an image under the given key, overwriting any existing
// object. Restricted to content managers and admins.
func (s *Service) PutImage(ctx context.Context, key string, data []byte, contentType string) error {
	const op = "lifecycle.(Service).PutImage"
	p, err := auth.CurrentPrincipal(ctx)
	if err != nil {
		return errors.Wrap(err, op)
	}
	if !p.IsAdmin() && !p.IsContentManager() {
		return errors.New(errors.Forbidden, op, "you are not allowed to add images")
	}
	if key == "" {
		return errors.New(errors.InvalidParameter, op, "missing image key")
	}
	if err := s.blobs.Put(ctx, s.imageBucket, key, data, contentType); err != nil {
		return errors.Wrap(err, op)
	}
	return nil
}

// DeleteImage removes an image regardless of whether any alignment still
// references it. Restricted to content managers and admins; the caller is
// trusted to have checked references, this is the manual override the
// automatic sweep in alignment deletion doesn't cover.
func (s *Service) DeleteImage(ctx context.Context, key string) error {
	const op = "lifecycle.(Service).DeleteImage"
	p, err := auth.CurrentPrincipal(ctx)
	if err != nil {
		return errors.Wrap(err, op)
	}
	if !p.IsAdmin() && !p.IsContentManager() {
		return errors.New(errors.Forbidden, op, "you are not allowed to delete images")
	}
	if key == "" {
		return errors.New(errors.InvalidParameter, op, "missing image key")
	}
	if err := s.blobs.DeleteOne(ctx, s.imageBucket, key); err != nil {
		return errors.Wrap(err, op)
	}
	return nil
}

// imageTypeOf derives a coarse image type from the key's extension.
func imageTypeOf(key string) string {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(key), "."))
	if ext == "" {
		return "unknown"
	}
	return ext
}

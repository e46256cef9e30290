package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spatialtx/datastore/internal/config"
	"github.com/spatialtx/datastore/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		raw     string
		want    *config.Config
		wantErr bool
	}{
		{
			name: "full",
			raw: `
doc_store_path: /var/lib/datastore/docs
blob_store_path: /var/lib/datastore/blobs
image_bucket: figures
pipeline_bucket: runs
log_level: debug
`,
			want: &config.Config{
				DocStorePath:   "/var/lib/datastore/docs",
				BlobStorePath:  "/var/lib/datastore/blobs",
				ImageBucket:    "figures",
				PipelineBucket: "runs",
				LogLevel:       "debug",
			},
		},
		{
			name: "defaults-applied",
			raw:  `doc_store_path: /data/docs`,
			want: &config.Config{
				DocStorePath:   "/data/docs",
				ImageBucket:    "images",
				PipelineBucket: "pipeline",
				LogLevel:       "info",
			},
		},
		{
			name:    "invalid-yaml",
			raw:     "doc_store_path: [unclosed",
			wantErr: true,
		},
		{
			name:    "bad-log-level",
			raw:     `log_level: loud`,
			wantErr: true,
		},
		{
			name: "colliding-buckets",
			raw: `
image_bucket: shared
pipeline_bucket: shared
`,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert, require := assert.New(t), require.New(t)
			got, err := config.Parse([]byte(tt.raw))
			if tt.wantErr {
				require.Error(err)
				assert.True(errors.IsInvalidParameterError(err))
				return
			}
			require.NoError(err)
			assert.Equal(tt.want, got)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()
	t.Run("reads-file", func(t *testing.T) {
		assert, require := assert.New(t), require.New(t)
		path := filepath.Join(t.TempDir(), "datastore.yml")
		require.NoError(os.WriteFile(path, []byte("image_bucket: figures\n"), 0o600))
		got, err := config.Load(path)
		require.NoError(err)
		assert.Equal("figures", got.ImageBucket)
		assert.Equal("pipeline", got.PipelineBucket)
	})
	t.Run("missing-file", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "nope.yml"))
		require.Error(t, err)
	})
	t.Run("missing-path", func(t *testing.T) {
		_, err := config.Load("")
		require.Error(t, err)
		assert.True(t, errors.IsInvalidParameterError(err))
	})
}

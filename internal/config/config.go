// Package config loads the datastore configuration from a YAML file and
// applies defaults for anything left unset.
package config

import (
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spatialtx/datastore/internal/errors"
	"gopkg.in/yaml.v3"
)

const (
	defaultImageBucket    = "images"
	defaultPipelineBucket = "pipeline"
	defaultLogLevel       = "info"
)

// Config is the top-level configuration of a datastore process.
type Config struct {
	// DocStorePath is the directory holding the document store. Empty means
	// in-memory, which only makes sense for tests.
	DocStorePath string `yaml:"doc_store_path"`

	// BlobStorePath is the directory holding the blob store. Empty means
	// in-memory.
	BlobStorePath string `yaml:"blob_store_path"`

	// ImageBucket is the blob bucket holding figure images.
	ImageBucket string `yaml:"image_bucket"`

	// PipelineBucket is the blob bucket holding pipeline experiment output.
	PipelineBucket string `yaml:"pipeline_bucket"`

	// LogLevel is one of trace, debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Default returns a Config with every field at its default.
func Default() *Config {
	return &Config{
		ImageBucket:    defaultImageBucket,
		PipelineBucket: defaultPipelineBucket,
		LogLevel:       defaultLogLevel,
	}
}

// Load reads and parses the YAML config at path, applying defaults for unset
// fields.
func Load(path string) (*Config, error) {
	const op = "config.Load"
	if path == "" {
		return nil, errors.New(errors.InvalidParameter, op, "missing config path")
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New(errors.Io, op, "failed to read config file", errors.WithWrap(err))
	}
	return Parse(raw)
}

// Parse parses YAML config bytes, applying defaults for unset fields.
func Parse(raw []byte) (*Config, error) {
	const op = "config.Parse"
	c := Default()
	if err := yaml.Unmarshal(raw, c); err != nil {
		return nil, errors.New(errors.InvalidParameter, op, "failed to parse config", errors.WithWrap(err))
	}
	if err := c.Validate(); err != nil {
		return nil, errors.Wrap(err, op)
	}
	return c, nil
}

// Validate checks the config for values that would fail later in confusing
// ways.
func (c *Config) Validate() error {
	const op = "config.(Config).Validate"
	if c.ImageBucket == "" {
		return errors.New(errors.InvalidParameter, op, "missing image bucket")
	}
	if c.PipelineBucket == "" {
		return errors.New(errors.InvalidParameter, op, "missing pipeline bucket")
	}
	if c.ImageBucket == c.PipelineBucket {
		return errors.New(errors.InvalidParameter, op, "image and pipeline buckets must differ")
	}
	if hclog.LevelFromString(c.LogLevel) == hclog.NoLevel {
		return errors.New(errors.InvalidParameter, op, "unknown log level "+c.LogLevel)
	}
	return nil
}

// Logger builds the process logger the config describes.
func (c *Config) Logger(name string) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:  name,
		Level: hclog.LevelFromString(c.LogLevel),
	})
}

package lifecycle

import (
	"github.com/hashicorp/go-hclog"
	"github.com/spatialtx/datastore/internal/types/resource"
)

// getOpts - iterate the inbound Options and return a struct
func getOpts(opt ...Option) options {
	opts := getDefaultOptions()
	for _, o := range opt {
		o(&opts)
	}
	return opts
}

// Option - how Options are passed as arguments
type Option func(*options)

// options = how options are represented
type options struct {
	withLogger          hclog.Logger
	withImageBucket     string
	withPipelineBucket  string
	withDeniedFolding   map[resource.Type]bool
	withOnlyEnabled     bool
	withIfModifiedSince string
	withCascade         bool
	withAccountId       string
	withDatasetId       string
	withChipId          string
	withPrngValues      []string
}

func getDefaultOptions() options {
	return options{
		withCascade: true,
	}
}

// WithLogger provides an optional logger for the service.
func WithLogger(l hclog.Logger) Option {
	return func(o *options) {
		o.withLogger = l
	}
}

// WithImageBucket provides an optional blob bucket name for image data.
func WithImageBucket(bucket string) Option {
	return func(o *options) {
		o.withImageBucket = bucket
	}
}

// WithPipelineBucket provides an optional blob bucket name for pipeline
// experiment data.
func WithPipelineBucket(bucket string) Option {
	return func(o *options) {
		o.withPipelineBucket = bucket
	}
}

// WithDeniedFolding overrides, per variant, whether mutation-authorization
// failures are reported as "not found" rather than "forbidden".
func WithDeniedFolding(fold map[resource.Type]bool) Option {
	return func(o *options) {
		o.withDeniedFolding = fold
	}
}

// WithOnlyEnabled provides an option to restrict reads and listings to
// enabled resources.
func WithOnlyEnabled() Option {
	return func(o *options) {
		o.withOnlyEnabled = true
	}
}

// WithIfModifiedSince provides the client's conditional-read timestamp, in
// HTTP date format. Empty or unparseable values disable the conditional
// check.
func WithIfModifiedSince(httpDate string) Option {
	return func(o *options) {
		o.withIfModifiedSince = httpDate
	}
}

// WithCascade provides an option to control cascading cleanup on delete.
// Cascading is on by default; turning it off deletes only the record, leaving
// dependents and blobs for reuse.
func WithCascade(cascade bool) Option {
	return func(o *options) {
		o.withCascade = cascade
	}
}

// WithAccountId provides an option to pre-scope a listing to an account.
func WithAccountId(accountId string) Option {
	return func(o *options) {
		o.withAccountId = accountId
	}
}

// WithDatasetId provides an option to pre-scope a listing to a parent
// dataset.
func WithDatasetId(datasetId string) Option {
	return func(o *options) {
		o.withDatasetId = datasetId
	}
}

// WithChipId provides an option to pre-scope an image alignment listing to a
// chip.
func WithChipId(chipId string) Option {
	return func(o *options) {
		o.withChipId = chipId
	}
}

// WithPrngValues provides values to seed id generation, which tests use to
// get deterministic ids.
func WithPrngValues(values []string) Option {
	return func(o *options) {
		o.withPrngValues = values
	}
}

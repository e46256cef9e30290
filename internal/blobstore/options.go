package blobstore

import (
	"time"

	"github.com/hashicorp/go-hclog"
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
	withLogger   hclog.Logger
	withClock    func() time.Time
	withInMemory bool
}

func getDefaultOptions() options {
	return options{
		withClock: time.Now,
	}
}

// WithLogger provides an optional logger for the store.
func WithLogger(l hclog.Logger) Option {
	return func(o *options) {
		o.withLogger = l
	}
}

// WithClock provides an optional clock, which tests use to control object
// timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.withClock = now
	}
}

// WithInMemory provides an option to keep the store in memory rather than on
// disk.
func WithInMemory() Option {
	return func(o *options) {
		o.withInMemory = true
	}
}

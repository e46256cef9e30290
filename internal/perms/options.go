package perms

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
	withOnlyEnabled bool
}

func getDefaultOptions() options {
	return options{}
}

// WithOnlyEnabled provides an option to drop disabled resources from a
// visible subset.
func WithOnlyEnabled() Option {
	return func(o *options) {
		o.withOnlyEnabled = true
	}
}

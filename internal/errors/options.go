package errors

// GetOpts - iterate the inbound Options and return a struct
func GetOpts(opt ...Option) Options {
	opts := getDefaultOptions()
	for _, o := range opt {
		if o != nil {
			o(&opts)
		}
	}
	return opts
}

// Option - how Options are passed as arguments
type Option func(*Options)

// Options - how Options are represented
type Options struct {
	withErrWrapped error
	withErrMsg     string
	withCode       Code
}

func getDefaultOptions() Options {
	return Options{}
}

// WithWrap provides an error to wrap
func WithWrap(e error) Option {
	return func(o *Options) {
		o.withErrWrapped = e
	}
}

// WithMsg provides an option to provide a message when wrapping an error
func WithMsg(msg string) Option {
	return func(o *Options) {
		o.withErrMsg = msg
	}
}

// WithCode provides an option to override the Code inherited from a wrapped
// error
func WithCode(code Code) Option {
	return func(o *Options) {
		o.withCode = code
	}
}

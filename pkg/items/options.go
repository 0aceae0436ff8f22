package items

import "log/slog"

// options holds the configuration shared by every node of a tree.
type options struct {
	logger *slog.Logger
}

// Option defines a functional option for creating or loading items.
type Option func(*options)

func defaultOptions() *options {
	return &options{
		logger: nil,
	}
}

func buildOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithLogger sets the logger used for debug records. Nil disables logging.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func (o *options) debug(msg string, args ...any) {
	if o.logger != nil {
		o.logger.Debug(msg, args...)
	}
}

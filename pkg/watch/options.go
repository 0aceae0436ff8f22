package watch

import (
	"log/slog"
	"time"

	"github.com/aretw0/jot/pkg/items"
)

// DefaultDebounce is how long the vault must stay quiet before a reload.
const DefaultDebounce = 50 * time.Millisecond

type options struct {
	logger       *slog.Logger
	errorHandler func(error)
	debounce     time.Duration
}

// Option configures a Watcher.
type Option func(*options)

func buildOptions(opts []Option) *options {
	o := &options{debounce: DefaultDebounce}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithLogger sets the logger for the watcher and the vaults it reloads.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithErrorHandler registers a callback for failures inside the watch loop
// (reload errors, fsnotify errors) which are otherwise only logged.
func WithErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.errorHandler = fn
	}
}

// WithDebounce overrides DefaultDebounce.
func WithDebounce(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.debounce = d
		}
	}
}

func (o *options) itemOptions() []items.Option {
	return []items.Option{items.WithLogger(o.logger)}
}

func (o *options) debug(msg string, args ...any) {
	if o.logger != nil {
		o.logger.Debug(msg, args...)
	}
}

func (o *options) fail(err error) {
	if o.logger != nil {
		o.logger.Error("watch failure", "error", err)
	}
	if o.errorHandler != nil {
		o.errorHandler(err)
	}
}

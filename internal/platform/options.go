package platform

import (
	"log/slog"
)

// options holds the configuration used when resolving and opening a vault.
type options struct {
	logger   *slog.Logger
	config   *Config
	workDir  string
	autoInit bool
}

// Option defines a functional option for opening a vault.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		logger:   nil,
		config:   nil,
		workDir:  "",
		autoInit: false,
	}
}

func buildOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.config == nil {
		o.config = DefaultConfig()
	}
	return o
}

// WithLogger sets the logger handed down to the vault.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithConfig supplies the application config used to resolve vault names.
// Defaults to DefaultConfig().
func WithConfig(cfg *Config) Option {
	return func(o *options) {
		o.config = cfg
	}
}

// WithWorkDir sets the directory searched upward for a vault.
// Defaults to the process working directory.
func WithWorkDir(dir string) Option {
	return func(o *options) {
		o.workDir = dir
	}
}

// WithAutoInit creates the vault when the resolved path does not exist yet.
func WithAutoInit(auto bool) Option {
	return func(o *options) {
		o.autoInit = auto
	}
}

func (o *options) debug(msg string, args ...any) {
	if o.logger != nil {
		o.logger.Debug(msg, args...)
	}
}

package jot

import (
	"log/slog"

	"github.com/aretw0/jot/internal/platform"
	"github.com/aretw0/jot/pkg/core"
	"github.com/aretw0/jot/pkg/items"
)

// --- Types ---

// Vault is a public alias for items.Vault.
type Vault = items.Vault

// Folder is a public alias for items.Folder.
type Folder = items.Folder

// Note is a public alias for items.Note.
type Note = items.Note

// Config is a public alias for the application configuration.
type Config = platform.Config

// --- Errors ---

var (
	ErrInvalidPath   = core.ErrInvalidPath
	ErrAlreadyExists = core.ErrAlreadyExists
	ErrPathNotFound  = core.ErrPathNotFound
	ErrOutOfBounds   = core.ErrOutOfBounds
	ErrIO            = core.ErrIO
	ErrNoVault       = platform.ErrNoVault
)

// --- Configuration ---

// Option defines a functional option for opening a vault.
type Option = platform.Option

// WithLogger sets the logger handed down to the vault.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithConfig supplies the configuration used to resolve vault names.
func WithConfig(cfg *Config) Option {
	return platform.WithConfig(cfg)
}

// WithWorkDir sets the directory searched upward for a vault.
func WithWorkDir(dir string) Option {
	return platform.WithWorkDir(dir)
}

// WithAutoInit creates the vault when it does not exist yet.
func WithAutoInit(auto bool) Option {
	return platform.WithAutoInit(auto)
}

// LoadConfig reads the user configuration (defaults, config file, JOT_VAULT).
func LoadConfig(logger *slog.Logger) (*Config, error) {
	return platform.NewLoader(logger).Load()
}

// --- Factories ---

// Open resolves ref (a vault name, a path, or "" for the vault above the
// working directory or the configured default) and loads it.
func Open(ref string, opts ...Option) (*Vault, error) {
	return platform.OpenVault(ref, opts...)
}

// CreateVault makes a new empty vault at absolutePath.
func CreateVault(absolutePath string, logger *slog.Logger) (*Vault, error) {
	return items.CreateVault(absolutePath, items.WithLogger(logger))
}

// LoadVault opens the existing vault at absolutePath.
func LoadVault(absolutePath string, logger *slog.Logger) (*Vault, error) {
	return items.LoadVault(absolutePath, items.WithLogger(logger))
}

// FindVaultRoot looks upwards from startDir for a vault root.
func FindVaultRoot(startDir string) (string, error) {
	return platform.FindRoot(startDir)
}

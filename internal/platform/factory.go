package platform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aretw0/jot/pkg/items"
)

// ErrNoVault is returned when no vault reference was given, none was found
// above the working directory and no default is configured.
var ErrNoVault = errors.New("no vault selected: pass --vault, run inside a vault, or set default_vault")

// ResolveVault returns the absolute path of the vault to work on.
// The first match wins: ref itself, the vault above the working directory,
// then the configured default vault.
func ResolveVault(ref string, opts ...Option) (string, error) {
	o := buildOptions(opts)
	return resolve(ref, o)
}

func resolve(ref string, o *options) (string, error) {
	if ref != "" {
		o.debug("using explicit vault", "ref", ref)
		return filepath.Abs(o.config.VaultPath(ref))
	}

	dir := o.workDir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		dir = wd
	}
	if root, err := FindRoot(dir); err == nil {
		o.debug("found vault above working directory", "path", root)
		return root, nil
	}

	if o.config.DefaultVault != "" {
		o.debug("using default vault", "ref", o.config.DefaultVault)
		return filepath.Abs(o.config.VaultPath(o.config.DefaultVault))
	}

	return "", ErrNoVault
}

// OpenVault resolves ref like ResolveVault and loads the vault found there.
// With WithAutoInit(true) a missing vault is created first.
func OpenVault(ref string, opts ...Option) (*items.Vault, error) {
	o := buildOptions(opts)
	path, err := resolve(ref, o)
	if err != nil {
		return nil, err
	}

	vaultOpts := []items.Option{items.WithLogger(o.logger)}

	if o.autoInit {
		if _, statErr := os.Stat(path); errors.Is(statErr, os.ErrNotExist) {
			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return nil, fmt.Errorf("failed to create vaults directory: %w", err)
			}
			o.debug("auto-initializing vault", "path", path)
			return items.CreateVault(path, vaultOpts...)
		}
	}

	return items.LoadVault(path, vaultOpts...)
}

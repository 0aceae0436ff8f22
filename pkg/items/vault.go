package items

import (
	"errors"
	"fmt"
	"os"

	"github.com/aretw0/jot/pkg/core"
	"github.com/aretw0/jot/pkg/jotpath"
)

// ErrStoreStale is returned when a vault directory moved but its store
// could not be rewritten to match.
var ErrStoreStale = errors.New("vault store not updated after move")

// Vault is the root of a tree of folders and notes. It is a Folder plus the
// store that tracks navigation state and aliases.
type Vault struct {
	*Folder
	store *VaultStore
}

// IsValidVaultPath reports whether path may hold a vault.
// TODO: reject vaults nested inside another vault once vaults are registered globally.
func IsValidVaultPath(path string) bool {
	return !isRegularFile(path) && !isReserved(path)
}

// CreateVault makes a new vault directory at absolutePath.
// It fails with core.ErrAlreadyExists if anything already exists there.
func CreateVault(absolutePath string, opts ...Option) (*Vault, error) {
	path, err := jotpath.New(absolutePath)
	if err != nil {
		return nil, core.InvalidPath("vault", absolutePath)
	}
	if path.Exists() {
		return nil, fmt.Errorf("%w: %s", core.ErrAlreadyExists, path)
	}
	if !IsValidVaultPath(path.String()) {
		return nil, core.InvalidPath("vault", path.String())
	}

	if err := os.Mkdir(path.String(), dirPerm); err != nil {
		return nil, core.IOFailure("create vault", path.String(), err)
	}

	o := buildOptions(opts)
	t, id := newTree(path.String(), o)
	v := &Vault{
		Folder: &Folder{t: t, id: id},
		store:  newVaultStore(o),
	}
	if err := v.store.SetAbsolutePath(path.String()); err != nil {
		return nil, err
	}

	o.debug("vault created", "path", path.String())
	return v, nil
}

// LoadVault opens the existing vault at absolutePath, loading its store and
// its folders and notes recursively.
func LoadVault(absolutePath string, opts ...Option) (*Vault, error) {
	path, err := jotpath.New(absolutePath)
	if err != nil || !IsValidVaultPath(path.String()) {
		return nil, core.InvalidPath("vault", absolutePath)
	}
	if !path.IsDir() {
		return nil, fmt.Errorf("%w: vault %s", core.ErrPathNotFound, path)
	}

	o := buildOptions(opts)
	store, err := loadVaultStore(path.String(), o)
	if err != nil {
		return nil, err
	}
	// The directory may have been moved by hand since the store was written.
	// Persisting the fix is best-effort so read-only vaults still load.
	if loc, ok := store.Location(); !ok || loc != path.String() {
		if err := store.SetAbsolutePath(path.String()); err != nil {
			o.debug("could not persist vault location", "path", path.String(), "error", err)
			store.bind(path.String())
		}
	}

	t, id := newTree(path.String(), o)
	if err := t.loadContents(id); err != nil {
		return nil, err
	}

	o.debug("vault loaded", "path", path.String())
	return &Vault{
		Folder: &Folder{t: t, id: id},
		store:  store,
	}, nil
}

// Store returns the vault's sidecar record.
func (v *Vault) Store() *VaultStore {
	return v.store
}

// DataPath returns the path of the persisted store.
func (v *Vault) DataPath() string {
	return StorePath(v.Location().String())
}

// Relocate moves the vault to newAbsolutePath and rebinds its store.
// An error matching ErrStoreStale means the move itself succeeded.
func (v *Vault) Relocate(newAbsolutePath string) error {
	path, err := jotpath.New(newAbsolutePath)
	if err != nil || !IsValidVaultPath(path.String()) {
		return core.InvalidPath("vault", newAbsolutePath)
	}
	return v.moveTo(path.String())
}

// Rename moves the vault to a sibling directory called newName and rebinds its store.
func (v *Vault) Rename(newName string) error {
	if !isPlainName(newName) {
		return core.InvalidPath("vault", newName)
	}
	path := GenerateAbsPath(v.Location().Parent().String(), newName)
	if !IsValidVaultPath(path) {
		return core.InvalidPath("vault", path)
	}
	return v.moveTo(path)
}

// moveTo moves the directory and then rebinds the store. When only the
// second step fails the vault has moved (and the tree follows it) but
// .jot/data still names the old location; the error then matches
// ErrStoreStale as well as the cause. The next LoadVault repairs it.
func (v *Vault) moveTo(dst string) error {
	if err := v.Folder.moveTo(dst); err != nil {
		return err
	}
	if err := v.store.SetAbsolutePath(dst); err != nil {
		v.store.bind(dst)
		v.t.opts.debug("vault moved but store not updated", "path", dst, "error", err)
		return fmt.Errorf("vault moved to %s: %w: %w", dst, ErrStoreStale, err)
	}
	return nil
}

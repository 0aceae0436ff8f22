package items

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"slices"
	"syscall"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/jot/pkg/core"
	"github.com/aretw0/jot/pkg/jotpath"
)

// ErrStoreUnbound is returned when a store is persisted before it knows which vault it belongs to.
var ErrStoreUnbound = errors.New("vault store has no location")

// storeRecord is the on-disk form of a VaultStore.
type storeRecord struct {
	CurrentFolder *string           `yaml:"current_folder,omitempty"`
	Location      *string           `yaml:"location,omitempty"`
	Aliases       map[string]string `yaml:"aliases"`
}

// VaultStore is the sidecar record of a vault, kept in <vault>/.jot/data.
// Every mutator persists the whole record before returning.
type VaultStore struct {
	currentFolder *string
	location      *string
	aliases       map[string]string
	opts          *options
}

// NewVaultStore returns a store with no active folder, no aliases and no location.
func NewVaultStore(opts ...Option) *VaultStore {
	return newVaultStore(buildOptions(opts))
}

func newVaultStore(o *options) *VaultStore {
	return &VaultStore{
		aliases: make(map[string]string),
		opts:    o,
	}
}

// StorePath returns the location of the data file for the vault at vaultPath.
func StorePath(vaultPath string) string {
	return jotpath.Join(vaultPath, MetadataDir, DataFile)
}

// LoadVaultStore reads the store of the vault at vaultPath.
// A missing file yields the defaults.
func LoadVaultStore(vaultPath string, opts ...Option) (*VaultStore, error) {
	return loadVaultStore(vaultPath, buildOptions(opts))
}

func loadVaultStore(vaultPath string, o *options) (*VaultStore, error) {
	s := newVaultStore(o)
	path := StorePath(vaultPath)

	data, err := os.ReadFile(path)
	// A stray file named like the metadata dir means there is no store either.
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
		o.debug("no vault store found, using defaults", "path", path)
		return s, nil
	}
	if err != nil {
		return nil, core.IOFailure("read vault store", path, err)
	}

	var rec storeRecord
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to parse vault store %s: %w", path, err)
	}

	s.currentFolder = rec.CurrentFolder
	s.location = rec.Location
	if rec.Aliases != nil {
		s.aliases = rec.Aliases
	}
	return s, nil
}

// Path returns the data file location, or "" while the store is unbound.
func (s *VaultStore) Path() string {
	if s.location == nil {
		return ""
	}
	return StorePath(*s.location)
}

// Store persists the record. The location must have been set.
func (s *VaultStore) Store() error {
	if s.location == nil {
		return ErrStoreUnbound
	}

	data, err := yaml.Marshal(storeRecord{
		CurrentFolder: s.currentFolder,
		Location:      s.location,
		Aliases:       s.aliases,
	})
	if err != nil {
		return fmt.Errorf("failed to serialize vault store: %w", err)
	}

	path := s.Path()
	if err := writeFileAtomic(path, data); err != nil {
		return err
	}

	s.opts.debug("vault store persisted", "path", path)
	return nil
}

// Location returns the vault path the store belongs to.
func (s *VaultStore) Location() (string, bool) {
	if s.location == nil {
		return "", false
	}
	return *s.location, true
}

// SetAbsolutePath binds the store to the vault at vaultPath and persists it there.
func (s *VaultStore) SetAbsolutePath(vaultPath string) error {
	prev := s.location
	s.location = &vaultPath
	if err := s.Store(); err != nil {
		s.location = prev
		return err
	}
	return nil
}

// bind points the store at vaultPath in memory only.
func (s *VaultStore) bind(vaultPath string) {
	s.location = &vaultPath
}

// FolderPath returns the active folder relative to the vault root
// (slash separated). ok is false when the vault root itself is active.
func (s *VaultStore) FolderPath() (string, bool) {
	if s.currentFolder == nil {
		return "", false
	}
	return *s.currentFolder, true
}

// SetFolderPath records the active folder and persists. Nil means the vault root.
func (s *VaultStore) SetFolderPath(folderPath *string) error {
	prev := s.currentFolder
	s.currentFolder = folderPath
	if err := s.Store(); err != nil {
		s.currentFolder = prev
		return err
	}
	return nil
}

// Alias returns the note an alias points to.
func (s *VaultStore) Alias(name string) (string, bool) {
	note, ok := s.aliases[name]
	return note, ok
}

// Aliases returns a copy of the alias table.
func (s *VaultStore) Aliases() map[string]string {
	return maps.Clone(s.aliases)
}

// AliasNames returns the alias names in sorted order.
func (s *VaultStore) AliasNames() []string {
	return slices.Sorted(maps.Keys(s.aliases))
}

// SetAlias points name at note and persists.
func (s *VaultStore) SetAlias(name, note string) error {
	if name == "" {
		return fmt.Errorf("alias name cannot be empty")
	}
	prev, had := s.aliases[name]
	s.aliases[name] = note
	if err := s.Store(); err != nil {
		if had {
			s.aliases[name] = prev
		} else {
			delete(s.aliases, name)
		}
		return err
	}
	return nil
}

// RemoveAlias deletes name and persists. Removing an unknown alias is a no-op.
func (s *VaultStore) RemoveAlias(name string) error {
	prev, had := s.aliases[name]
	if !had {
		return nil
	}
	delete(s.aliases, name)
	if err := s.Store(); err != nil {
		s.aliases[name] = prev
		return err
	}
	return nil
}

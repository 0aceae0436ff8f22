package items

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/aretw0/jot/pkg/jotpath"
)

const (
	// MetadataDir is the reserved directory holding vault-private data.
	// Entries with this name are never part of the folder/note tree.
	MetadataDir = ".jot"

	// DataFile is the store file inside MetadataDir.
	DataFile = "data"

	dirPerm  = 0755
	filePerm = 0644
)

// Item is the capability shared by folders and vaults: something that owns a
// directory on disk and can be moved or removed.
//
// Construction is variant-specific: see CreateFolder/LoadFolder and
// CreateVault/LoadVault, with IsValidFolderPath and IsValidVaultPath as the
// matching path predicates.
type Item interface {
	// Location returns the absolute path of the item's directory.
	Location() jotpath.JotPath

	// Relocate moves the directory to newAbsolutePath.
	Relocate(newAbsolutePath string) error

	// Rename moves the directory to a sibling named newName.
	Rename(newName string) error

	// Delete removes the directory and everything beneath it.
	Delete() error
}

// Collection is the capability of listing contained folders and notes.
// Order follows the on-disk directory listing at load time (by filename).
type Collection interface {
	Folders() []*Folder
	Notes() []Note
}

var (
	_ Item       = (*Folder)(nil)
	_ Item       = (*Vault)(nil)
	_ Collection = (*Folder)(nil)
	_ Collection = (*Vault)(nil)
)

// GenerateAbsPath joins name onto parentDir. No I/O, no validation.
func GenerateAbsPath(parentDir, name string) string {
	return jotpath.Join(parentDir, name)
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// isPlainName reports whether name is a single path segment.
func isPlainName(name string) bool {
	return name != "" && name != "." && name != ".." && !strings.ContainsAny(name, `/\`)
}

func isReserved(path string) bool {
	return filepath.Base(path) == MetadataDir
}

// ThroughMetadata reports whether target, taken relative to root, has the
// metadata directory as any of its segments. Such paths are never part of
// the tree.
func ThroughMetadata(root, target string) bool {
	rel, ok := jotpath.RelativeTo(root, target)
	if !ok {
		return false
	}
	return slices.Contains(strings.Split(rel, string(filepath.Separator)), MetadataDir)
}

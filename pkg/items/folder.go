package items

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/aretw0/jot/pkg/core"
	"github.com/aretw0/jot/pkg/jotpath"
)

// Folder is a directory inside a vault. It is a handle into the tree that
// loaded or created it, so renaming a folder obtained from Vault.Folders
// keeps the vault's in-memory tree in step with the disk.
type Folder struct {
	t  *tree
	id nodeID
}

// IsValidFolderPath reports whether path may be used as a folder: its final
// segment is not the metadata directory and it is not a regular file.
func IsValidFolderPath(path string) bool {
	return !isReserved(path) && !isRegularFile(path)
}

// CreateFolder makes a new directory at absolutePath and returns an empty folder for it.
func CreateFolder(absolutePath string, opts ...Option) (*Folder, error) {
	path, err := jotpath.New(absolutePath)
	if err != nil || !IsValidFolderPath(path.String()) {
		return nil, core.InvalidPath("folder", absolutePath)
	}

	if err := os.Mkdir(path.String(), dirPerm); err != nil {
		return nil, core.IOFailure("create folder", path.String(), err)
	}

	o := buildOptions(opts)
	o.debug("folder created", "path", path.String())

	t, id := newTree(path.String(), o)
	return &Folder{t: t, id: id}, nil
}

// LoadFolder attaches to the existing directory at absolutePath and loads
// its folders and notes recursively.
func LoadFolder(absolutePath string, opts ...Option) (*Folder, error) {
	path, err := jotpath.New(absolutePath)
	if err != nil || !IsValidFolderPath(path.String()) {
		return nil, core.InvalidPath("folder", absolutePath)
	}

	t, id := newTree(path.String(), buildOptions(opts))
	if err := t.loadContents(id); err != nil {
		return nil, err
	}
	return &Folder{t: t, id: id}, nil
}

// loadContents reads the directory of id and appends every child that is a
// folder or a note, descending into folders. Anything else is skipped.
func (t *tree) loadContents(id nodeID) error {
	dir := t.pathOf(id)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return core.IOFailure("read folder", dir, err)
	}

	for _, entry := range entries {
		child := filepath.Join(dir, entry.Name())

		switch {
		case IsValidFolderPath(child) && isDir(child):
			folder := t.addFolder(id, entry.Name())
			if err := t.loadContents(folder); err != nil {
				return err
			}
		case IsValidNotePath(child):
			note, err := LoadNote(child)
			if err != nil {
				return err
			}
			t.addNote(id, entry.Name(), note)
		}
	}

	t.opts.debug("folder loaded", "path", dir,
		"folders", len(t.nodes[id].folders), "notes", len(t.nodes[id].notes))
	return nil
}

// Location returns the absolute path of the folder.
func (f *Folder) Location() jotpath.JotPath {
	return jotpath.MustNew(f.t.pathOf(f.id))
}

// Name returns the final segment of the folder's path.
func (f *Folder) Name() string {
	return f.Location().FileName()
}

// Folders returns the child folders.
func (f *Folder) Folders() []*Folder {
	return f.t.folderHandles(f.t.nodes[f.id].folders)
}

// Notes returns the child notes.
func (f *Folder) Notes() []Note {
	return f.t.noteValues(f.t.nodes[f.id].notes)
}

// SortedFolders returns the child folders ordered by name.
func (f *Folder) SortedFolders() []*Folder {
	out := f.Folders()
	slices.SortFunc(out, func(a, b *Folder) int {
		return strings.Compare(a.Name(), b.Name())
	})
	return out
}

// SortedNotes returns the child notes ordered by name.
func (f *Folder) SortedNotes() []Note {
	out := f.Notes()
	slices.SortFunc(out, func(a, b Note) int {
		return strings.Compare(a.Name(), b.Name())
	})
	return out
}

// AddFolder creates a child directory named name and attaches it to the tree.
func (f *Folder) AddFolder(name string) (*Folder, error) {
	if !isPlainName(name) {
		return nil, core.InvalidPath("folder", name)
	}
	path := GenerateAbsPath(f.t.pathOf(f.id), name)
	if !IsValidFolderPath(path) {
		return nil, core.InvalidPath("folder", path)
	}

	if err := os.Mkdir(path, dirPerm); err != nil {
		return nil, core.IOFailure("create folder", path, err)
	}
	f.t.opts.debug("folder created", "path", path)

	return &Folder{t: f.t, id: f.t.addFolder(f.id, name)}, nil
}

// Relocate moves the folder to newAbsolutePath.
func (f *Folder) Relocate(newAbsolutePath string) error {
	path, err := jotpath.New(newAbsolutePath)
	if err != nil || !IsValidFolderPath(path.String()) {
		return core.InvalidPath("folder", newAbsolutePath)
	}
	return f.moveTo(path.String())
}

// Rename moves the folder to a sibling directory called newName.
func (f *Folder) Rename(newName string) error {
	if !isPlainName(newName) {
		return core.InvalidPath("folder", newName)
	}
	path := GenerateAbsPath(f.Location().Parent().String(), newName)
	if !IsValidFolderPath(path) {
		return core.InvalidPath("folder", path)
	}
	return f.moveTo(path)
}

// moveTo renames the directory on disk and, only once that succeeded,
// updates the tree.
func (f *Folder) moveTo(dst string) error {
	src := f.t.pathOf(f.id)
	if err := os.Rename(src, dst); err != nil {
		return core.IOFailure("move folder", src, err)
	}
	f.t.relink(f.id, dst)
	f.t.opts.debug("folder moved", "from", src, "to", dst)
	return nil
}

// Delete removes the folder and all of its contents from disk.
// The handle, and every handle beneath it, is invalid afterwards.
func (f *Folder) Delete() error {
	path := f.t.pathOf(f.id)
	if err := os.RemoveAll(path); err != nil {
		return core.IOFailure("delete folder", path, err)
	}
	f.t.remove(f.id)
	f.t.opts.debug("folder deleted", "path", path)
	return nil
}

package items

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/aretw0/jot/pkg/core"
	"github.com/aretw0/jot/pkg/jotpath"
)

// ActiveFolderPath returns the absolute path of the active folder.
func (v *Vault) ActiveFolderPath() jotpath.JotPath {
	root := v.Location()
	if rel, ok := v.store.FolderPath(); ok {
		return root.Join(jotpath.FromSlash(rel))
	}
	return root
}

// ActiveFolder returns the tree handle of the active folder.
func (v *Vault) ActiveFolder() (*Folder, error) {
	path := v.ActiveFolderPath()
	id, ok := v.t.resolve(v.id, path.String())
	if !ok {
		return nil, fmt.Errorf("%w: active folder %s", core.ErrPathNotFound, path)
	}
	return &Folder{t: v.t, id: id}, nil
}

// ResolvePath anchors rel at the active folder and normalizes the result.
// Leading separators in rel do not reset the anchor.
func (v *Vault) ResolvePath(rel string) string {
	return jotpath.Normalize(jotpath.Join(v.ActiveFolderPath().String(), rel))
}

// ChangeFolder moves the active folder to path, interpreted relative to the
// current active folder. It fails with core.ErrPathNotFound if the target is
// missing and with core.ErrOutOfBounds if it escapes the vault. The in-memory
// tree is left untouched.
func (v *Vault) ChangeFolder(path string) error {
	root := v.Location().String()
	target := v.ResolvePath(path)

	if _, err := os.Stat(target); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", core.ErrPathNotFound, path)
		}
		return core.IOFailure("stat", target, err)
	}

	rel, ok := jotpath.RelativeTo(root, target)
	if !ok {
		return fmt.Errorf("%w: %s", core.ErrOutOfBounds, path)
	}

	if !IsValidFolderPath(target) || !isDir(target) || ThroughMetadata(root, target) {
		return core.InvalidPath("folder", target)
	}

	var next *string
	if rel != "" {
		slashed := jotpath.ToSlash(rel)
		next = &slashed
	}

	if err := v.store.SetFolderPath(next); err != nil {
		return err
	}
	v.t.opts.debug("active folder changed", "path", target)
	return nil
}

// FolderAt returns the tree handle of the folder at path, interpreted
// relative to the active folder.
func (v *Vault) FolderAt(path string) (*Folder, error) {
	target := v.ResolvePath(path)
	if !jotpath.IsWithin(v.Location().String(), target) {
		return nil, fmt.Errorf("%w: %s", core.ErrOutOfBounds, path)
	}
	id, ok := v.t.resolve(v.id, target)
	if !ok {
		return nil, fmt.Errorf("%w: folder %s", core.ErrPathNotFound, path)
	}
	return &Folder{t: v.t, id: id}, nil
}

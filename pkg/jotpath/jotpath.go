package jotpath

import (
	"fmt"
	"os"
	"path/filepath"
)

// JotPath is an absolute, cleaned filesystem path.
// The zero value is not valid; build one with New or MustNew.
type JotPath struct {
	path string
}

// New resolves p against the working directory and returns it as a JotPath.
func New(p string) (JotPath, error) {
	if p == "" {
		return JotPath{}, fmt.Errorf("empty path")
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return JotPath{}, fmt.Errorf("failed to resolve %s: %w", p, err)
	}
	return JotPath{path: abs}, nil
}

// MustNew is like New but panics on error. Intended for paths that are
// already known to be absolute.
func MustNew(p string) JotPath {
	jp, err := New(p)
	if err != nil {
		panic(err)
	}
	return jp
}

// FromParent joins name onto parent.
func FromParent(parent JotPath, name string) JotPath {
	return JotPath{path: Join(parent.path, name)}
}

// String returns the absolute path.
func (p JotPath) String() string {
	return p.path
}

// IsZero reports whether p was never initialised.
func (p JotPath) IsZero() bool {
	return p.path == ""
}

// Parent returns the containing directory. The parent of the filesystem root is itself.
func (p JotPath) Parent() JotPath {
	return JotPath{path: filepath.Dir(p.path)}
}

// FileName returns the final path segment.
func (p JotPath) FileName() string {
	return filepath.Base(p.path)
}

// Join appends elem to p.
func (p JotPath) Join(elem ...string) JotPath {
	return JotPath{path: Join(append([]string{p.path}, elem...)...)}
}

// Exists reports whether anything exists at p.
func (p JotPath) Exists() bool {
	_, err := os.Stat(p.path)
	return err == nil
}

// IsDir reports whether p is an existing directory.
func (p JotPath) IsDir() bool {
	info, err := os.Stat(p.path)
	return err == nil && info.IsDir()
}

// IsFile reports whether p is an existing regular file.
func (p JotPath) IsFile() bool {
	info, err := os.Stat(p.path)
	return err == nil && info.Mode().IsRegular()
}

// ReadDir lists the direct children of p, sorted by filename.
func (p JotPath) ReadDir() ([]os.DirEntry, error) {
	return os.ReadDir(p.path)
}

// Contains reports whether other is p itself or lies beneath it.
func (p JotPath) Contains(other JotPath) bool {
	return IsWithin(p.path, other.path)
}

package jotpath

import (
	"path/filepath"
	"strings"
)

// Join joins path elements and cleans the result. An absolute element after
// the first is appended, not substituted.
func Join(elem ...string) string {
	return filepath.Join(elem...)
}

// Normalize collapses "." and ".." segments and redundant separators.
func Normalize(p string) string {
	return filepath.Clean(p)
}

// IsWithin reports whether target is root or a descendant of root.
// Both paths are normalized first; comparison is segment-wise, so
// "/vault2" is not within "/vault".
func IsWithin(root, target string) bool {
	rel, err := filepath.Rel(Normalize(root), Normalize(target))
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// RelativeTo strips the root prefix from target and returns the remainder
// without a leading separator. It returns "" when target equals root and
// false when target is not within root.
func RelativeTo(root, target string) (string, bool) {
	if !IsWithin(root, target) {
		return "", false
	}
	rel, err := filepath.Rel(Normalize(root), Normalize(target))
	if err != nil {
		return "", false
	}
	if rel == "." {
		return "", true
	}
	return strings.TrimPrefix(rel, string(filepath.Separator)), true
}

// ToSlash converts a relative path to the slash-separated form that is persisted.
func ToSlash(p string) string {
	return filepath.ToSlash(p)
}

// FromSlash is the inverse of ToSlash.
func FromSlash(p string) string {
	return filepath.FromSlash(p)
}

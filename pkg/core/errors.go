package core

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	// ErrInvalidPath is returned when a path fails the item's path predicate
	// (e.g. its final segment is the reserved metadata directory).
	ErrInvalidPath = errors.New("invalid path")

	// ErrAlreadyExists is returned when a vault is created on top of an existing path.
	ErrAlreadyExists = errors.New("vault already exists")

	// ErrPathNotFound is returned when a navigation target does not exist.
	ErrPathNotFound = errors.New("path not found")

	// ErrOutOfBounds is returned when a navigation target resolves outside the vault root.
	ErrOutOfBounds = errors.New("path is outside of the vault")

	// ErrIO marks failures of the underlying filesystem operation.
	ErrIO = errors.New("i/o failure")
)

// Kind identifies the category of an error so callers can render distinct messages.
type Kind string

const (
	KindInvalidPath   Kind = "INVALID_PATH"
	KindAlreadyExists Kind = "ALREADY_EXISTS"
	KindPathNotFound  Kind = "PATH_NOT_FOUND"
	KindOutOfBounds   Kind = "OUT_OF_BOUNDS"
	KindIO            Kind = "IO_FAILURE"
	KindUnknown       Kind = "UNKNOWN"
)

// KindOf classifies err. A nil error has an empty kind.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidPath):
		return KindInvalidPath
	case errors.Is(err, ErrAlreadyExists):
		return KindAlreadyExists
	case errors.Is(err, ErrPathNotFound):
		return KindPathNotFound
	case errors.Is(err, ErrOutOfBounds):
		return KindOutOfBounds
	case errors.Is(err, ErrIO):
		return KindIO
	default:
		return KindUnknown
	}
}

// IOFailure wraps a filesystem error so that it matches both ErrIO and the
// original cause (fs.ErrNotExist, fs.ErrPermission, ...).
func IOFailure(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s %s: %w: %w", op, path, ErrIO, err)
}

// InvalidPath reports a path that failed validation for the named item type.
func InvalidPath(itemType, path string) error {
	return fmt.Errorf("%w for %s: %s", ErrInvalidPath, itemType, path)
}

// Package core holds the error kinds shared by every jot component.
//
// Each failure surfaced by the item layer matches exactly one sentinel
// (ErrInvalidPath, ErrAlreadyExists, ErrPathNotFound, ErrOutOfBounds, ErrIO)
// through errors.Is, and KindOf maps it to a stable code for rendering.
package core

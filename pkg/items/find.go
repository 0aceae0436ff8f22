package items

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/aretw0/jot/pkg/jotpath"
)

// Find returns the notes of the collection whose slash-separated path,
// relative to the folder, matches pattern. Patterns support "**".
func (f *Folder) Find(pattern string) ([]Note, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, doublestar.ErrBadPattern)
	}

	root := f.t.pathOf(f.id)
	var matches []Note
	f.t.walk(f.id, func(id nodeID) {
		n := f.t.nodes[id]
		if n.kind != kindNote || n.removed {
			return
		}
		rel, ok := jotpath.RelativeTo(root, f.t.pathOf(id))
		if !ok {
			return
		}
		// ValidatePattern already passed, so Match cannot fail here.
		if hit, _ := doublestar.Match(pattern, jotpath.ToSlash(rel)); hit {
			matches = append(matches, f.t.noteValues([]nodeID{id})...)
		}
	})
	return matches, nil
}

// Count returns the number of folders and notes beneath f, at any depth.
func (f *Folder) Count() (folders, notes int) {
	f.t.walk(f.id, func(id nodeID) {
		if id == f.id {
			return
		}
		if f.t.nodes[id].kind == kindNote {
			notes++
		} else {
			folders++
		}
	})
	return folders, notes
}

package items

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/aretw0/jot/pkg/jotpath"
)

// nodeID addresses a node inside a tree arena.
type nodeID int

const (
	noParent nodeID = -1
	// primaryRoot is the node the tree was created for (the vault or loaded folder).
	primaryRoot nodeID = 0
)

type nodeKind int

const (
	kindFolder nodeKind = iota
	kindNote
)

// node is one arena slot. Attached nodes only know their own name; the
// absolute path is rebuilt from the parent chain, so moving a subtree only
// touches the moved node. Detached nodes (tree roots) store their absolute
// location instead.
type node struct {
	kind    nodeKind
	name    string
	root    string
	parent  nodeID
	folders []nodeID
	notes   []nodeID
	note    Note
	removed bool
}

// tree is an arena of folder and note nodes. Folder and Vault values are
// handles into it.
type tree struct {
	nodes []node
	opts  *options
}

func newTree(rootPath string, opts *options) (*tree, nodeID) {
	t := &tree{opts: opts}
	id := t.alloc(node{kind: kindFolder, root: rootPath, parent: noParent})
	return t, id
}

func (t *tree) alloc(n node) nodeID {
	t.nodes = append(t.nodes, n)
	return nodeID(len(t.nodes) - 1)
}

func (t *tree) addFolder(parent nodeID, name string) nodeID {
	id := t.alloc(node{kind: kindFolder, name: name, parent: parent})
	t.nodes[parent].folders = append(t.nodes[parent].folders, id)
	return id
}

func (t *tree) addNote(parent nodeID, name string, n Note) nodeID {
	id := t.alloc(node{kind: kindNote, name: name, parent: parent, note: n})
	t.nodes[parent].notes = append(t.nodes[parent].notes, id)
	return id
}

// pathOf rebuilds the absolute path of id from its parent chain.
func (t *tree) pathOf(id nodeID) string {
	var segments []string
	for {
		n := &t.nodes[id]
		if n.parent == noParent {
			segments = append(segments, n.root)
			break
		}
		segments = append(segments, n.name)
		id = n.parent
	}
	slices.Reverse(segments)
	return jotpath.Join(segments...)
}

// top returns the root of the subtree id currently belongs to.
func (t *tree) top(id nodeID) nodeID {
	for t.nodes[id].parent != noParent {
		id = t.nodes[id].parent
	}
	return id
}

// detach unlinks id from its parent, turning it into a root at its current path.
func (t *tree) detach(id nodeID) {
	n := &t.nodes[id]
	if n.parent == noParent {
		return
	}
	n.root = t.pathOf(id)
	p := &t.nodes[n.parent]
	if n.kind == kindFolder {
		p.folders = slices.DeleteFunc(p.folders, func(c nodeID) bool { return c == id })
	} else {
		p.notes = slices.DeleteFunc(p.notes, func(c nodeID) bool { return c == id })
	}
	n.parent = noParent
}

func (t *tree) attach(id, parent nodeID, name string) {
	n := &t.nodes[id]
	n.parent = parent
	n.name = name
	n.root = ""
	t.nodes[parent].folders = append(t.nodes[parent].folders, id)
}

// relink updates the tree after the directory of id moved to dst on disk.
// If dst lands inside a folder of the subtree id belonged to, or of the
// tree's primary root, id is (re-)parented there; otherwise it becomes a
// standalone root. The primary root itself only changes location.
func (t *tree) relink(id nodeID, dst string) {
	if id == primaryRoot {
		t.nodes[id].root = dst
		return
	}

	top := t.top(id)
	t.detach(id)
	for _, anchor := range []nodeID{top, primaryRoot} {
		if anchor == id || t.nodes[anchor].removed {
			continue
		}
		if parent, ok := t.resolve(anchor, filepath.Dir(dst)); ok {
			t.attach(id, parent, filepath.Base(dst))
			return
		}
	}
	t.nodes[id].root = dst
}

// remove detaches id and invalidates it together with all descendants.
func (t *tree) remove(id nodeID) {
	t.detach(id)
	t.walk(id, func(c nodeID) {
		n := &t.nodes[c]
		n.removed = true
		n.folders = nil
		n.notes = nil
	})
}

// walk visits id and every live descendant, parents before children.
func (t *tree) walk(id nodeID, fn func(nodeID)) {
	n := t.nodes[id]
	fn(id)
	for _, c := range n.notes {
		fn(c)
	}
	for _, c := range n.folders {
		t.walk(c, fn)
	}
}

// resolve finds the live folder of the subtree rooted at from whose path is target.
func (t *tree) resolve(from nodeID, target string) (nodeID, bool) {
	rel, ok := jotpath.RelativeTo(t.pathOf(from), target)
	if !ok {
		return noParent, false
	}

	id := from
	if rel == "" {
		return id, !t.nodes[id].removed
	}
	for _, segment := range strings.Split(rel, string(filepath.Separator)) {
		next := noParent
		for _, c := range t.nodes[id].folders {
			if t.nodes[c].name == segment {
				next = c
				break
			}
		}
		if next == noParent {
			return noParent, false
		}
		id = next
	}
	return id, true
}

func (t *tree) folderHandles(ids []nodeID) []*Folder {
	out := make([]*Folder, 0, len(ids))
	for _, id := range ids {
		out = append(out, &Folder{t: t, id: id})
	}
	return out
}

func (t *tree) noteValues(ids []nodeID) []Note {
	out := make([]Note, 0, len(ids))
	for _, id := range ids {
		n := t.nodes[id].note
		n.location = jotpath.MustNew(t.pathOf(id))
		out = append(out, n)
	}
	return out
}

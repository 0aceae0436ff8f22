package items

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/jot/pkg/core"
	"github.com/aretw0/jot/pkg/jotpath"
)

// NoteExt is the extension that marks a file as a note.
const NoteExt = ".md"

// Metadata holds the parsed YAML frontmatter of a note.
type Metadata map[string]any

// Note is a leaf of the tree: a Markdown file with optional YAML frontmatter.
type Note struct {
	location jotpath.JotPath
	metadata Metadata
	content  string
}

// IsValidNotePath reports whether path is an existing regular file with the note extension.
func IsValidNotePath(path string) bool {
	return filepath.Ext(path) == NoteExt && !isReserved(path) && isRegularFile(path)
}

// LoadNote reads the note at absolutePath.
func LoadNote(absolutePath string) (Note, error) {
	path, err := jotpath.New(absolutePath)
	if err != nil {
		return Note{}, core.InvalidPath("note", absolutePath)
	}
	if !IsValidNotePath(path.String()) {
		return Note{}, core.InvalidPath("note", path.String())
	}

	data, err := os.ReadFile(path.String())
	if err != nil {
		return Note{}, core.IOFailure("read note", path.String(), err)
	}

	n := parseNote(data)
	n.location = path
	return n, nil
}

// parseNote splits an optional "---" fenced frontmatter block from the body.
// A file whose frontmatter cannot be parsed is kept whole as content.
func parseNote(data []byte) Note {
	n := Note{metadata: make(Metadata)}

	if !bytes.HasPrefix(data, []byte("---\n")) && !bytes.HasPrefix(data, []byte("---\r\n")) {
		n.content = string(data)
		return n
	}

	parts := bytes.SplitN(data[3:], []byte("\n---"), 2)
	if len(parts) == 1 {
		n.content = string(data)
		return n
	}

	meta := make(Metadata)
	if err := yaml.Unmarshal(parts[0], &meta); err != nil {
		n.content = string(data)
		return n
	}
	n.metadata = meta

	body := string(parts[1])
	body = strings.TrimPrefix(body, "\r\n")
	body = strings.TrimPrefix(body, "\n")
	n.content = body
	return n
}

// Name is the note identifier: its file name without extension.
func (n Note) Name() string {
	return strings.TrimSuffix(n.location.FileName(), NoteExt)
}

// String returns the display name.
func (n Note) String() string {
	return n.Name()
}

// Location returns the absolute path of the note file.
func (n Note) Location() jotpath.JotPath {
	return n.location
}

// Metadata returns a copy of the frontmatter.
func (n Note) Metadata() Metadata {
	out := make(Metadata, len(n.metadata))
	for k, v := range n.metadata {
		out[k] = v
	}
	return out
}

// Content returns the body after the frontmatter.
func (n Note) Content() string {
	return n.content
}

// Title returns the "title" frontmatter field, falling back to Name.
func (n Note) Title() string {
	if t, ok := n.metadata["title"].(string); ok && t != "" {
		return t
	}
	return n.Name()
}

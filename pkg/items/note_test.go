package items

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/jot/pkg/core"
)

func TestParseNote(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantContent string
		wantMeta    Metadata
	}{
		{
			name:        "Plain Markdown",
			input:       "# Hello\n\nbody",
			wantContent: "# Hello\n\nbody",
			wantMeta:    Metadata{},
		},
		{
			name:        "With Frontmatter",
			input:       "---\ntitle: Groceries\ntags: [home]\n---\n- milk\n",
			wantContent: "- milk\n",
			wantMeta:    Metadata{"title": "Groceries", "tags": []any{"home"}},
		},
		{
			name:        "Windows Line Endings",
			input:       "---\r\ntitle: Win\r\n---\r\nbody",
			wantContent: "body",
			wantMeta:    Metadata{"title": "Win"},
		},
		{
			name:        "Unclosed Frontmatter Is Content",
			input:       "---\ntitle: x\nno closing fence",
			wantContent: "---\ntitle: x\nno closing fence",
			wantMeta:    Metadata{},
		},
		{
			name:        "Broken YAML Is Content",
			input:       "---\ntitle: [unclosed\n---\nbody",
			wantContent: "---\ntitle: [unclosed\n---\nbody",
			wantMeta:    Metadata{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := parseNote([]byte(tt.input))
			assert.Equal(t, tt.wantContent, n.Content())
			assert.Equal(t, tt.wantMeta, n.Metadata())
		})
	}
}

func TestLoadNote(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"groceries.md": "---\ntitle: Weekly groceries\n---\neggs",
		"plain.md":     "no frontmatter",
		"image.png":    "",
		"sub/":         "",
	})

	t.Run("Reads Name Title And Body", func(t *testing.T) {
		n, err := LoadNote(filepath.Join(dir, "groceries.md"))
		require.NoError(t, err)

		assert.Equal(t, "groceries", n.Name())
		assert.Equal(t, "groceries", n.String())
		assert.Equal(t, "Weekly groceries", n.Title())
		assert.Equal(t, "eggs", n.Content())
		assert.Equal(t, filepath.Join(dir, "groceries.md"), n.Location().String())
	})

	t.Run("Title Falls Back To Name", func(t *testing.T) {
		n, err := LoadNote(filepath.Join(dir, "plain.md"))
		require.NoError(t, err)
		assert.Equal(t, "plain", n.Title())
	})

	t.Run("Rejects Non Notes", func(t *testing.T) {
		for _, name := range []string{"image.png", "sub", "missing.md"} {
			_, err := LoadNote(filepath.Join(dir, name))
			assert.ErrorIs(t, err, core.ErrInvalidPath, name)
		}
	})

	t.Run("Metadata Is A Copy", func(t *testing.T) {
		n, err := LoadNote(filepath.Join(dir, "groceries.md"))
		require.NoError(t, err)

		m := n.Metadata()
		m["title"] = "changed"
		assert.Equal(t, "Weekly groceries", n.Title())
	})
}

func TestIsValidNotePath(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"a.md": "", "b.txt": "", "dir.md/": ""})

	assert.True(t, IsValidNotePath(filepath.Join(dir, "a.md")))
	assert.False(t, IsValidNotePath(filepath.Join(dir, "b.txt")))
	assert.False(t, IsValidNotePath(filepath.Join(dir, "dir.md")))
	assert.False(t, IsValidNotePath(filepath.Join(dir, "nope.md")))
}

package items

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/jot/pkg/core"
)

func setupVault(t *testing.T, layout map[string]string) *Vault {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vault")
	_, err := CreateVault(path)
	require.NoError(t, err)
	writeTree(t, path, layout)

	v, err := LoadVault(path)
	require.NoError(t, err)
	return v
}

func activeFolder(t *testing.T, v *Vault) *string {
	t.Helper()
	rel, ok := v.Store().FolderPath()
	if !ok {
		return nil
	}
	return &rel
}

func TestChangeFolder(t *testing.T) {
	layout := map[string]string{
		"sub/inner/n.md": "",
		"other/":         "",
		"file.md":        "",
	}

	t.Run("Parent Of Root Is Out Of Bounds", func(t *testing.T) {
		v := setupVault(t, layout)

		err := v.ChangeFolder("..")
		assert.ErrorIs(t, err, core.ErrOutOfBounds)
		assert.Nil(t, activeFolder(t, v))
	})

	t.Run("Into Child And Back To Root", func(t *testing.T) {
		v := setupVault(t, layout)

		require.NoError(t, v.ChangeFolder("sub"))
		require.NotNil(t, activeFolder(t, v))
		assert.Equal(t, "sub", *activeFolder(t, v))

		require.NoError(t, v.ChangeFolder(".."))
		assert.Nil(t, activeFolder(t, v))
	})

	t.Run("Relative To Active Folder", func(t *testing.T) {
		v := setupVault(t, layout)

		require.NoError(t, v.ChangeFolder("sub"))
		require.NoError(t, v.ChangeFolder("inner"))
		assert.Equal(t, "sub/inner", *activeFolder(t, v))

		require.NoError(t, v.ChangeFolder("../../other"))
		assert.Equal(t, "other", *activeFolder(t, v))
	})

	t.Run("Multi Segment Input", func(t *testing.T) {
		v := setupVault(t, layout)

		require.NoError(t, v.ChangeFolder("sub/./inner/"))
		assert.Equal(t, "sub/inner", *activeFolder(t, v))
	})

	t.Run("Missing Target Leaves State Unchanged", func(t *testing.T) {
		v := setupVault(t, layout)
		require.NoError(t, v.ChangeFolder("sub"))

		err := v.ChangeFolder("missing")
		assert.ErrorIs(t, err, core.ErrPathNotFound)
		assert.Equal(t, "sub", *activeFolder(t, v))

		stored, err := LoadVaultStore(v.Location().String())
		require.NoError(t, err)
		rel, _ := stored.FolderPath()
		assert.Equal(t, "sub", rel)
	})

	t.Run("Deep Escape Is Out Of Bounds", func(t *testing.T) {
		v := setupVault(t, layout)
		require.NoError(t, v.ChangeFolder("sub/inner"))

		assert.ErrorIs(t, v.ChangeFolder("../../.."), core.ErrOutOfBounds)
		assert.Equal(t, "sub/inner", *activeFolder(t, v))
	})

	t.Run("Files And Metadata Dir Are Not Folders", func(t *testing.T) {
		v := setupVault(t, layout)

		assert.ErrorIs(t, v.ChangeFolder("file.md"), core.ErrInvalidPath)
		assert.ErrorIs(t, v.ChangeFolder(MetadataDir), core.ErrInvalidPath)
		assert.Nil(t, activeFolder(t, v))
	})

	t.Run("Persists Across Loads", func(t *testing.T) {
		v := setupVault(t, layout)
		require.NoError(t, v.ChangeFolder("sub/inner"))

		reloaded, err := LoadVault(v.Location().String())
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(v.Location().String(), "sub", "inner"), reloaded.ActiveFolderPath().String())
	})

	t.Run("Does Not Touch The Tree", func(t *testing.T) {
		v := setupVault(t, layout)
		before, notesBefore := v.Count()

		require.NoError(t, v.ChangeFolder("sub"))

		after, notesAfter := v.Count()
		assert.Equal(t, before, after)
		assert.Equal(t, notesBefore, notesAfter)
	})
}

func TestActiveFolder(t *testing.T) {
	v := setupVault(t, map[string]string{"sub/inner/n.md": ""})

	f, err := v.ActiveFolder()
	require.NoError(t, err)
	assert.Equal(t, v.Location().String(), f.Location().String())

	require.NoError(t, v.ChangeFolder("sub/inner"))
	f, err = v.ActiveFolder()
	require.NoError(t, err)
	assert.Equal(t, "inner", f.Name())
	assert.Equal(t, []string{"n"}, noteNames(f.Notes()))

	assert.Equal(t, filepath.Join(v.Location().String(), "sub", "x"), v.ResolvePath("../x"))

	t.Run("Active Folder Deleted Behind Our Back", func(t *testing.T) {
		require.NoError(t, f.Delete())
		_, err := v.ActiveFolder()
		assert.ErrorIs(t, err, core.ErrPathNotFound)
	})
}

func TestFolderAt(t *testing.T) {
	v := setupVault(t, map[string]string{
		"sub/inner/n.md": "",
		"other/":         "",
	})
	require.NoError(t, v.ChangeFolder("sub"))

	t.Run("Relative To Active Folder", func(t *testing.T) {
		f, err := v.FolderAt("inner")
		require.NoError(t, err)
		assert.Equal(t, "inner", f.Name())
		assert.Equal(t, []string{"n"}, noteNames(f.Notes()))
	})

	t.Run("Climbs To Siblings", func(t *testing.T) {
		f, err := v.FolderAt("../other")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(v.Location().String(), "other"), f.Location().String())
	})

	t.Run("Vault Root", func(t *testing.T) {
		f, err := v.FolderAt("..")
		require.NoError(t, err)
		assert.Equal(t, v.Location().String(), f.Location().String())
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := v.FolderAt("nope")
		assert.ErrorIs(t, err, core.ErrPathNotFound)
	})

	t.Run("Outside", func(t *testing.T) {
		_, err := v.FolderAt("../..")
		assert.ErrorIs(t, err, core.ErrOutOfBounds)
	})
}

func TestThroughMetadata(t *testing.T) {
	root := filepath.Join("/", "vault")

	tests := []struct {
		name   string
		target string
		want   bool
	}{
		{"Vault Root", root, false},
		{"Plain Folder", filepath.Join(root, "a", "b"), false},
		{"Metadata Dir Itself", filepath.Join(root, MetadataDir), true},
		{"Inside Metadata Dir", filepath.Join(root, MetadataDir, "a"), true},
		{"Nested Metadata Segment", filepath.Join(root, "a", MetadataDir, "b"), true},
		{"Similar Name", filepath.Join(root, MetadataDir+"x"), false},
		{"Outside The Vault", filepath.Join("/", "elsewhere", MetadataDir), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ThroughMetadata(root, tt.target))
		})
	}
}

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/jot/pkg/core"
	"github.com/aretw0/jot/pkg/items"
)

// run executes the CLI with args and returns what it printed on stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("JOT_VAULT", "")

	deleteYes, rmdirYes, statusJSON, statusDiagram = false, false, false, false
	listGlob, vaultRef = "", ""

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), err
}

func newVault(t *testing.T, layout ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vault")
	_, err := items.CreateVault(path)
	require.NoError(t, err)
	for _, p := range layout {
		full := filepath.Join(path, filepath.FromSlash(p))
		if strings.HasSuffix(p, "/") {
			require.NoError(t, os.MkdirAll(full, 0755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
		require.NoError(t, os.WriteFile(full, []byte(p), 0644))
	}
	return path
}

func TestVaultCommands(t *testing.T) {
	t.Run("Create", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "deep", "fresh")

		out, err := run(t, "vault", "create", path)
		require.NoError(t, err)
		assert.Contains(t, out, "Created vault fresh")
		assert.FileExists(t, items.StorePath(path))

		_, err = run(t, "vault", "create", path)
		assert.ErrorIs(t, err, core.ErrAlreadyExists)
	})

	t.Run("Delete Needs Confirmation", func(t *testing.T) {
		path := newVault(t)

		_, err := run(t, "--vault", path, "vault", "delete")
		assert.ErrorIs(t, err, errNeedsConfirmation)
		assert.DirExists(t, path)

		_, err = run(t, "--vault", path, "vault", "delete", "--yes")
		require.NoError(t, err)
		assert.NoDirExists(t, path)
	})

	t.Run("Rename And Move", func(t *testing.T) {
		path := newVault(t, "a/n.md")
		renamed := filepath.Join(filepath.Dir(path), "renamed")

		_, err := run(t, "--vault", path, "vault", "rename", "renamed")
		require.NoError(t, err)
		assert.FileExists(t, filepath.Join(renamed, "a", "n.md"))

		moved := filepath.Join(t.TempDir(), "moved")
		_, err = run(t, "--vault", renamed, "vault", "move", moved)
		require.NoError(t, err)
		assert.FileExists(t, filepath.Join(moved, "a", "n.md"))

		store, err := items.LoadVaultStore(moved)
		require.NoError(t, err)
		loc, _ := store.Location()
		assert.Equal(t, moved, loc)
	})

	t.Run("Status JSON", func(t *testing.T) {
		path := newVault(t, "a/n.md", "b/")

		out, err := run(t, "--vault", path, "vault", "status", "--json")
		require.NoError(t, err)

		var state items.VaultState
		require.NoError(t, json.Unmarshal([]byte(out), &state))
		assert.Equal(t, "vault", state.Name)
		assert.Equal(t, 2, state.Folders)
		assert.Equal(t, 1, state.Notes)
	})
}

func TestFolderCommands(t *testing.T) {
	path := newVault(t, "inbox/todo.md", "archive/")

	out, err := run(t, "--vault", path, "mkdir", "inbox/later")
	require.NoError(t, err)
	assert.Contains(t, out, "/inbox/later")
	assert.DirExists(t, filepath.Join(path, "inbox", "later"))

	_, err = run(t, "--vault", path, "cd", "inbox/later")
	require.NoError(t, err)

	_, err = run(t, "--vault", path, "mvdir", "/inbox", "/archive")
	assert.ErrorIs(t, err, core.ErrPathNotFound, "leading separators stay relative to the active folder")

	_, err = run(t, "--vault", path, "mvdir", "../../inbox", "../../archive")
	require.NoError(t, err)
	assert.DirExists(t, filepath.Join(path, "archive", "inbox", "later"))

	out, err = run(t, "--vault", path, "pwd")
	require.NoError(t, err)
	assert.Equal(t, "/archive/inbox/later\n", out)

	_, err = run(t, "--vault", path, "rmdir", "..")
	assert.ErrorIs(t, err, errNeedsConfirmation)

	_, err = run(t, "--vault", path, "rmdir", "..", "--yes")
	require.NoError(t, err)
	assert.NoDirExists(t, filepath.Join(path, "archive", "inbox"))

	out, err = run(t, "--vault", path, "pwd")
	require.NoError(t, err)
	assert.Equal(t, "/\n", out)

	_, err = run(t, "--vault", path, "rmdir", ".", "--yes")
	assert.ErrorIs(t, err, core.ErrInvalidPath)
}

func TestFolderCommandsKeepOutOfMetadata(t *testing.T) {
	path := newVault(t, "a/n.md")

	_, err := run(t, "--vault", path, "mvdir", "a", ".jot")
	assert.ErrorIs(t, err, core.ErrInvalidPath)
	assert.DirExists(t, filepath.Join(path, "a"))
	assert.NoDirExists(t, filepath.Join(path, ".jot", "a"))

	_, err = run(t, "--vault", path, "mvdir", "a", ".jot/inner")
	assert.ErrorIs(t, err, core.ErrInvalidPath)

	_, err = run(t, "--vault", path, "mkdir", ".jot/x")
	assert.ErrorIs(t, err, core.ErrInvalidPath)
	assert.NoDirExists(t, filepath.Join(path, ".jot", "x"))

	out, err := run(t, "--vault", path, "vault", "status", "--json")
	require.NoError(t, err)
	var state items.VaultState
	require.NoError(t, json.Unmarshal([]byte(out), &state))
	assert.Equal(t, 1, state.Folders)
	assert.Equal(t, 1, state.Notes)
}

func TestNavigationCommands(t *testing.T) {
	path := newVault(t, "sub/n.md")

	out, err := run(t, "--vault", path, "cd", "sub")
	require.NoError(t, err)
	assert.Equal(t, "/sub\n", out)

	_, err = run(t, "--vault", path, "cd", "../..")
	assert.ErrorIs(t, err, core.ErrOutOfBounds)

	_, err = run(t, "--vault", path, "cd", "missing")
	assert.ErrorIs(t, err, core.ErrPathNotFound)

	out, err = run(t, "--vault", path, "cd")
	require.NoError(t, err)
	assert.Equal(t, "/\n", out)
}

func TestListCommand(t *testing.T) {
	path := newVault(t, "b.md", "a/x.md", "a/deep/y.md", "c/")

	out, err := run(t, "--vault", path, "ls")
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"/",
		"├── a/",
		"│   ├── deep/",
		"│   │   └── y.md",
		"│   └── x.md",
		"├── c/",
		"└── b.md",
		"",
	}, "\n"), out)

	out, err = run(t, "--vault", path, "ls", "--glob", "**/y.md")
	require.NoError(t, err)
	assert.Equal(t, "/a/deep/y.md\n", out)
}

func TestAliasCommands(t *testing.T) {
	path := newVault(t)

	_, err := run(t, "--vault", path, "alias", "set", "today", "journal/2026-10-19")
	require.NoError(t, err)
	_, err = run(t, "--vault", path, "alias", "set", "inbox", "inbox/todo")
	require.NoError(t, err)

	out, err := run(t, "--vault", path, "alias", "ls")
	require.NoError(t, err)
	assert.Equal(t, "inbox -> inbox/todo\ntoday -> journal/2026-10-19\n", out)

	_, err = run(t, "--vault", path, "alias", "rm", "today")
	require.NoError(t, err)
	_, err = run(t, "--vault", path, "alias", "rm", "today")
	assert.Error(t, err)
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		err  error
		hint string
		code int
	}{
		{core.InvalidPath("folder", ".jot"), "names may not be empty", 2},
		{core.ErrOutOfBounds, "cannot leave the vault", 2},
		{core.ErrPathNotFound, "jot ls", 3},
		{core.ErrAlreadyExists, "choose another name", 3},
		{core.IOFailure("mkdir", "/x", os.ErrPermission), "filesystem operation failed", 4},
		{errNeedsConfirmation, "--yes", 1},
	}

	for _, tt := range tests {
		t.Run(string(core.KindOf(tt.err)), func(t *testing.T) {
			assert.Contains(t, describe(tt.err), tt.hint)
			assert.Equal(t, tt.code, exitCode(tt.err))
		})
	}
}

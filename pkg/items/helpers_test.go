package items

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeTree materializes a layout under root. Keys ending in "/" are
// directories; everything else is a file with the given content.
func writeTree(t *testing.T, root string, layout map[string]string) {
	t.Helper()
	for rel, content := range layout {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if rel[len(rel)-1] == '/' {
			require.NoError(t, os.MkdirAll(path, 0755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

func folderNames(folders []*Folder) []string {
	names := make([]string, 0, len(folders))
	for _, f := range folders {
		names = append(names, f.Name())
	}
	return names
}

func noteNames(notes []Note) []string {
	names := make([]string, 0, len(notes))
	for _, n := range notes {
		names = append(names, n.Name())
	}
	return names
}

package platform

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aretw0/jot/pkg/items"
)

// FindRoot looks upwards from startDir for a directory holding a vault
// metadata directory and returns its absolute path.
func FindRoot(startDir string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	dir := abs
	for {
		if hasDir(dir, items.MetadataDir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("no vault found in %s or any parent directory", abs)
}

func hasDir(dir, name string) bool {
	info, err := os.Stat(filepath.Join(dir, name))
	return err == nil && info.IsDir()
}

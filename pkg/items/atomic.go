package items

import (
	"os"
	"path/filepath"

	"github.com/aretw0/jot/pkg/core"
)

// tempFilePrefix marks in-flight writes inside the metadata directory.
const tempFilePrefix = "jot-tmp-"

// writeFileAtomic replaces path with data so that a reader of the store sees
// either the previous record or the new one, never a torn write. The parent
// directory is created when missing. Failures match core.ErrIO.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return core.IOFailure("create metadata dir", dir, err)
	}

	tmp, err := os.CreateTemp(dir, tempFilePrefix+"*")
	if err != nil {
		return core.IOFailure("create temp file", dir, err)
	}
	tmpName := tmp.Name()
	// After a successful rename this is a no-op.
	defer os.Remove(tmpName)

	_, err = tmp.Write(data)
	if err == nil {
		err = tmp.Sync()
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return core.IOFailure("write temp file", tmpName, err)
	}

	if err := os.Chmod(tmpName, filePerm); err != nil {
		return core.IOFailure("chmod temp file", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return core.IOFailure("replace", path, err)
	}
	return nil
}

package fs

import (
	"os"
	"path/filepath"
)

// WriteFileWithParents creates every missing parent directory of path and
// then truncates and rewrites path in place. perm applies only when the file
// is created.
func WriteFileWithParents(fsys FS, path string, data []byte, perm os.FileMode) error {
	if err := fsys.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return fsys.WriteFile(path, data, perm)
}

package filesystem

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/renameio"
)

// WriteFileAtomic replaces the file at path so readers see either the old
// or the new content, never a truncated file. The data is written to a
// temporary file in the same directory and renamed over the target.
func WriteFileAtomic(path string, data []byte, perm fs.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return renameio.WriteFile(path, data, perm)
}

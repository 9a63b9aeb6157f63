package filesystem

import (
	"io/fs"
	"os"

	"github.com/arthur-debert/awesome-copilot/pkg/types"
	"github.com/google/renameio"
)

// diskFS is the real filesystem. Writes go through renameio, so a synced
// item is either the previous copy or the new one.
type diskFS struct{}

// NewOS returns the filesystem backed by the operating system.
func NewOS() types.FS {
	return diskFS{}
}

func (diskFS) Stat(name string) (fs.FileInfo, error) { return os.Stat(name) }

func (diskFS) ReadFile(name string) ([]byte, error) { return os.ReadFile(name) }

func (diskFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return renameio.WriteFile(name, data, perm)
}

func (diskFS) MkdirAll(path string, perm fs.FileMode) error { return os.MkdirAll(path, perm) }

func (diskFS) ReadDir(name string) ([]fs.DirEntry, error) { return os.ReadDir(name) }

func (diskFS) Remove(name string) error { return os.Remove(name) }

package filesystem

import (
	"io/fs"

	"github.com/arthur-debert/awesome-copilot/pkg/types"
	"github.com/spf13/afero"
)

// memoryFS keeps a catalog and its output directories in memory.
type memoryFS struct {
	fs afero.Fs
}

// NewMemory returns an empty in-memory filesystem, mostly useful for tests.
func NewMemory() types.FS {
	return &memoryFS{fs: afero.NewMemMapFs()}
}

func (m *memoryFS) Stat(name string) (fs.FileInfo, error) {
	return m.fs.Stat(name)
}

// ReadFile rejects directories the way os.ReadFile does; MemMapFs would
// return an empty slice.
func (m *memoryFS) ReadFile(name string) ([]byte, error) {
	info, err := m.fs.Stat(name)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrInvalid}
	}
	return afero.ReadFile(m.fs, name)
}

func (m *memoryFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return afero.WriteFile(m.fs, name, data, perm)
}

func (m *memoryFS) MkdirAll(path string, perm fs.FileMode) error {
	return m.fs.MkdirAll(path, perm)
}

func (m *memoryFS) ReadDir(name string) ([]fs.DirEntry, error) {
	infos, err := afero.ReadDir(m.fs, name)
	if err != nil {
		return nil, err
	}
	entries := make([]fs.DirEntry, 0, len(infos))
	for _, info := range infos {
		entries = append(entries, fs.FileInfoToDirEntry(info))
	}
	return entries, nil
}

func (m *memoryFS) Remove(name string) error {
	return m.fs.Remove(name)
}

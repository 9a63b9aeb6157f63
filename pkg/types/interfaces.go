package types

import "io/fs"

// FS is the filesystem seen by the catalog scanner, the syncer and the
// sync-state cache. Paths are absolute or relative to the process working
// directory.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	// WriteFile replaces the whole file; parent directories must exist
	WriteFile(name string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
	// ReadDir lists a directory sorted by file name
	ReadDir(name string) ([]fs.DirEntry, error)
	Remove(name string) error
}

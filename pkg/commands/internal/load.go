// Package internal holds the loading steps shared by the commands.
package internal

import (
	"github.com/arthur-debert/awesome-copilot/pkg/catalog"
	"github.com/arthur-debert/awesome-copilot/pkg/errors"
	"github.com/arthur-debert/awesome-copilot/pkg/filesystem"
	"github.com/arthur-debert/awesome-copilot/pkg/types"
)

// OrOS returns fs, or the OS filesystem when fs is nil.
func OrOS(fs types.FS) types.FS {
	if fs == nil {
		return filesystem.NewOS()
	}
	return fs
}

// LoadCatalog scans the catalog at root.
func LoadCatalog(fs types.FS, root string) (*catalog.Catalog, error) {
	if root == "" {
		return nil, errors.New(errors.ErrInvalidInput, "catalog root is required")
	}
	return catalog.Scan(fs, root)
}

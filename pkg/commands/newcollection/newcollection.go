package newcollection

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/awesome-copilot/pkg/catalog"
	"github.com/arthur-debert/awesome-copilot/pkg/commands/internal"
	"github.com/arthur-debert/awesome-copilot/pkg/errors"
	"github.com/arthur-debert/awesome-copilot/pkg/logging"
	"github.com/arthur-debert/awesome-copilot/pkg/paths"
	"github.com/arthur-debert/awesome-copilot/pkg/types"
	"gopkg.in/yaml.v3"
)

// NewCollectionOptions defines the options for the NewCollection command.
type NewCollectionOptions struct {
	FS          types.FS
	CatalogRoot string
	ID          string
}

// NewCollectionResult is the outcome of the NewCollection command.
type NewCollectionResult struct {
	ID   string
	Name string
	Path string
}

// NewCollection writes a starter manifest for a collection id.
func NewCollection(opts NewCollectionOptions) (*NewCollectionResult, error) {
	log := logging.GetLogger("commands.newcollection")
	log.Debug().Str("command", "NewCollection").Str("id", opts.ID).Msg("Executing command")

	if err := catalog.ValidateID(opts.ID); err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid collection id '%s'", opts.ID)
	}
	if opts.CatalogRoot == "" {
		return nil, errors.New(errors.ErrInvalidInput, "catalog root is required")
	}

	fs := internal.OrOS(opts.FS)
	dir := filepath.Join(opts.CatalogRoot, paths.CollectionsDir)
	path := filepath.Join(dir, opts.ID+paths.CollectionExt)

	if _, err := fs.Stat(path); err == nil {
		return nil, errors.Newf(errors.ErrAlreadyExists, "collection '%s' already exists at %s", opts.ID, path)
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to check %s", path)
	}

	content := catalog.Template(opts.ID)
	var parsed map[string]interface{}
	if err := yaml.Unmarshal([]byte(content), &parsed); err != nil {
		return nil, errors.Wrapf(err, errors.ErrInternal, "collection template for '%s' is not valid YAML", opts.ID)
	}

	if err := fs.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", dir)
	}
	if err := fs.WriteFile(path, []byte(content), 0644); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path)
	}

	log.Info().Str("command", "NewCollection").Str("path", path).Msg("Command finished")
	return &NewCollectionResult{ID: opts.ID, Name: catalog.FriendlyName(opts.ID), Path: path}, nil
}

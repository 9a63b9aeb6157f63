package show

import (
	"github.com/arthur-debert/awesome-copilot/pkg/catalog"
	"github.com/arthur-debert/awesome-copilot/pkg/commands/internal"
	"github.com/arthur-debert/awesome-copilot/pkg/errors"
	"github.com/arthur-debert/awesome-copilot/pkg/logging"
	"github.com/arthur-debert/awesome-copilot/pkg/types"
)

// ShowOptions defines the options for the Show command.
type ShowOptions struct {
	FS          types.FS
	CatalogRoot string
	Ref         types.ItemRef
}

// ShowResult is an item file read from the catalog.
type ShowResult struct {
	Ref      types.ItemRef
	Path     string
	Document *catalog.Document

	// Collections are the collections containing the item
	Collections []string
}

// Show reads an item of the catalog.
func Show(opts ShowOptions) (*ShowResult, error) {
	log := logging.GetLogger("commands.show")
	log.Debug().Str("command", "Show").Str("item", opts.Ref.String()).Msg("Executing command")

	fs := internal.OrOS(opts.FS)
	cat, err := internal.LoadCatalog(fs, opts.CatalogRoot)
	if err != nil {
		return nil, err
	}
	if !cat.HasItem(opts.Ref) {
		return nil, cat.UnknownItem(opts.Ref)
	}

	path := cat.SourcePath(opts.Ref)
	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", path)
	}

	return &ShowResult{
		Ref:         opts.Ref,
		Path:        path,
		Document:    catalog.ParseDocument(string(data)),
		Collections: cat.CollectionsOf(opts.Ref),
	}, nil
}

package validate

import (
	"github.com/arthur-debert/awesome-copilot/pkg/catalog"
	"github.com/arthur-debert/awesome-copilot/pkg/commands/internal"
	"github.com/arthur-debert/awesome-copilot/pkg/errors"
	"github.com/arthur-debert/awesome-copilot/pkg/logging"
	"github.com/arthur-debert/awesome-copilot/pkg/types"
)

// ValidateOptions defines the options for the Validate command.
type ValidateOptions struct {
	FS          types.FS
	CatalogRoot string
}

// Validate checks every collection manifest of the catalog. An invalid
// catalog returns the report along with a COLLECTION_INVALID error.
func Validate(opts ValidateOptions) (*catalog.Report, error) {
	log := logging.GetLogger("commands.validate")
	log.Debug().Str("command", "Validate").Msg("Executing command")

	fs := internal.OrOS(opts.FS)
	cat, err := internal.LoadCatalog(fs, opts.CatalogRoot)
	if err != nil {
		return nil, err
	}

	report := catalog.Validate(fs, cat)
	log.Info().
		Str("command", "Validate").
		Int("checked", report.Checked).
		Int("issues", len(report.Issues)).
		Msg("Command finished")

	if !report.Valid() {
		return report, errors.Newf(errors.ErrCollectionInvalid, "%d issue(s) found in collection manifests", len(report.Issues)).
			WithDetail("issues", len(report.Issues))
	}
	return report, nil
}

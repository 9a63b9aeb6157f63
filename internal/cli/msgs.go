package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort          = "Manage the GitHub Copilot customizations of a project"
	MsgInitShort          = "Create a configuration and prepare the project"
	MsgApplyShort         = "Copy enabled items into the output directory"
	MsgListShort          = "List items and collections with their state"
	MsgToggleShort        = "Switch a collection or an item on or off"
	MsgShowShort          = "Show a catalog item"
	MsgValidateShort      = "Validate the collection manifests of the catalog"
	MsgNewCollectionShort = "Create a collection manifest from a template"
	MsgInstructionsShort  = "Generate the repository Copilot instructions file"
	MsgTopicsShort        = "Display available documentation topics"
	MsgTopicsLong         = "Display a list of all available help topics that provide additional documentation beyond command help."
	MsgVersionShort       = "Print version information"
	MsgCompletionShort    = "Generate shell completion script"

	// Status messages
	MsgDryRunNotice = "DRY RUN MODE - No changes were made"

	// Error messages
	MsgErrInitPaths    = "failed to initialize paths: %w"
	MsgErrSettings     = "failed to load settings: %w"
	MsgErrNoCommand    = "no command specified"
	MsgErrInvalidColor = "invalid --color %q: expected auto, always or never"

	// Flag descriptions
	MsgFlagVerbose      = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun       = "Preview changes without writing anything"
	MsgFlagForce        = "Synchronize even when the output looks up to date"
	MsgFlagConfig       = "Configuration file (default from settings: awesome-copilot.config.yml)"
	MsgFlagCatalog      = "Catalog root (default: $AWESOME_COPILOT_CATALOG_ROOT, the git repository or the current directory)"
	MsgFlagColor        = "Colorize output: auto, always or never"
	MsgFlagOutput       = "File to write (default .github/copilot-instructions.md)"
	MsgFlagLayout       = "Layout: repository, consolidated or basic"
	MsgFlagNoHeader     = "Leave out the generated header"
	MsgFlagVersionShort = "Print only the version number"

	// Output formats
	MsgVersionLine = "awesome-copilot version %s\n"
	MsgCommitLine  = "  commit: %s\n"
	MsgDateLine    = "  built:  %s\n"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)

	//go:embed msgs/init-long.txt
	msgInitLongRaw string
	MsgInitLong    = strings.TrimSpace(msgInitLongRaw)

	//go:embed msgs/init-example.txt
	msgInitExampleRaw string
	MsgInitExample    = strings.TrimRight(msgInitExampleRaw, "\n")

	//go:embed msgs/apply-long.txt
	msgApplyLongRaw string
	MsgApplyLong    = strings.TrimSpace(msgApplyLongRaw)

	//go:embed msgs/apply-example.txt
	msgApplyExampleRaw string
	MsgApplyExample    = strings.TrimRight(msgApplyExampleRaw, "\n")

	//go:embed msgs/list-long.txt
	msgListLongRaw string
	MsgListLong    = strings.TrimSpace(msgListLongRaw)

	//go:embed msgs/list-example.txt
	msgListExampleRaw string
	MsgListExample    = strings.TrimRight(msgListExampleRaw, "\n")

	//go:embed msgs/toggle-long.txt
	msgToggleLongRaw string
	MsgToggleLong    = strings.TrimSpace(msgToggleLongRaw)

	//go:embed msgs/toggle-example.txt
	msgToggleExampleRaw string
	MsgToggleExample    = strings.TrimRight(msgToggleExampleRaw, "\n")

	//go:embed msgs/show-long.txt
	msgShowLongRaw string
	MsgShowLong    = strings.TrimSpace(msgShowLongRaw)

	//go:embed msgs/validate-long.txt
	msgValidateLongRaw string
	MsgValidateLong    = strings.TrimSpace(msgValidateLongRaw)

	//go:embed msgs/new-collection-long.txt
	msgNewCollectionLongRaw string
	MsgNewCollectionLong    = strings.TrimSpace(msgNewCollectionLongRaw)

	//go:embed msgs/instructions-long.txt
	msgInstructionsLongRaw string
	MsgInstructionsLong    = strings.TrimSpace(msgInstructionsLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/fallback-warning.txt
	msgFallbackWarningRaw string
	MsgFallbackWarning    = strings.TrimSpace(msgFallbackWarningRaw) + "\n"
)

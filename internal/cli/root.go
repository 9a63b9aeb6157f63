package cli

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/arthur-debert/awesome-copilot/internal/version"
	"github.com/arthur-debert/awesome-copilot/pkg/cobrax/topics"
	"github.com/arthur-debert/awesome-copilot/pkg/config"
	"github.com/arthur-debert/awesome-copilot/pkg/errors"
	"github.com/arthur-debert/awesome-copilot/pkg/logging"
	"github.com/arthur-debert/awesome-copilot/pkg/paths"
	"github.com/arthur-debert/awesome-copilot/pkg/style"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics/*.md
var topicFiles embed.FS

// globalOptions holds the persistent flags.
type globalOptions struct {
	verbosity   int
	dryRun      bool
	force       bool
	configPath  string
	catalogRoot string
	color       string
}

// runtime is what commands need once flags and settings are resolved.
type runtime struct {
	paths    paths.Paths
	settings *config.Settings

	// configPath is the --config flag, else the config.file setting
	configPath string
	color      bool

	warnedFallback bool
}

// resolve layers the flags over the settings.
func (o *globalOptions) resolve() (*runtime, error) {
	p, err := paths.New(o.catalogRoot)
	if err != nil {
		return nil, fmt.Errorf(MsgErrInitPaths, err)
	}

	overrides := map[string]interface{}{}
	if o.color != "" {
		switch o.color {
		case config.ColorAuto, config.ColorAlways, config.ColorNever:
			overrides["output.color"] = o.color
		default:
			return nil, fmt.Errorf(MsgErrInvalidColor, o.color)
		}
	}
	if o.configPath != "" {
		overrides["config.file"] = o.configPath
	}

	settings, err := config.LoadSettings(p.SettingsPath(), overrides)
	if err != nil {
		return nil, fmt.Errorf(MsgErrSettings, err)
	}

	if o.catalogRoot == "" && settings.Catalog.Root != "" {
		if p, err = paths.New(settings.Catalog.Root); err != nil {
			return nil, fmt.Errorf(MsgErrInitPaths, err)
		}
	}

	rt := &runtime{paths: p, settings: settings, configPath: settings.Config.File}
	rt.color = style.ColorEnabled(settings.Output.Color, style.IsTerminal(os.Stdout))
	return rt, nil
}

// catalogRoot returns the catalog to read, warning once when it is only
// the working directory.
func (rt *runtime) catalogRoot(cmd *cobra.Command) string {
	if rt.paths.UsedFallback() && !rt.warnedFallback {
		rt.warnedFallback = true
		fmt.Fprintf(cmd.ErrOrStderr(), MsgFallbackWarning, rt.paths.CatalogRoot())
	}
	return rt.paths.CatalogRoot()
}

// configFor returns the configuration file named by args, else the default.
func (rt *runtime) configFor(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return rt.configPath
}

func (rt *runtime) renderer() *style.TerminalRenderer {
	return style.NewTerminalRenderer(rt.color)
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	opts := &globalOptions{}
	rt := &runtime{}

	rootCmd := &cobra.Command{
		Use:     "awesome-copilot",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Resolved(),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			resolved, err := opts.resolve()
			if err != nil {
				return err
			}
			*rt = *resolved

			logging.Setup(logging.Options{
				Verbosity: opts.verbosity,
				LogFile:   rt.paths.LogFilePath(),
				Color:     style.ColorEnabled(rt.settings.Output.Color, style.IsTerminal(os.Stderr)),
			})
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			style.Setup(rt.settings.Output.Color, os.Stdout)

			log.Debug().
				Str("catalog", rt.paths.CatalogRoot()).
				Str("config", rt.configPath).
				Bool("color", rt.color).
				Msg("Settings resolved")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.BoolVar(&opts.dryRun, "dry-run", false, MsgFlagDryRun)
	flags.BoolVar(&opts.force, "force", false, MsgFlagForce)
	flags.StringVarP(&opts.configPath, "config", "c", "", MsgFlagConfig)
	flags.StringVar(&opts.catalogRoot, "catalog", "", MsgFlagCatalog)
	flags.StringVar(&opts.color, "color", "", MsgFlagColor)
	_ = rootCmd.RegisterFlagCompletionFunc("color", cobra.FixedCompletions(
		[]string{config.ColorAuto, config.ColorAlways, config.ColorNever}, cobra.ShellCompDirectiveNoFileComp))

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "catalog",
		Title: "CATALOG:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newInitCmd(rt))
	rootCmd.AddCommand(newApplyCmd(opts, rt))
	rootCmd.AddCommand(newListCmd(rt))
	rootCmd.AddCommand(newToggleCmd(opts, rt))
	rootCmd.AddCommand(newShowCmd(rt))
	rootCmd.AddCommand(newInstructionsCmd(opts, rt))
	rootCmd.AddCommand(newValidateCmd(rt))
	rootCmd.AddCommand(newNewCollectionCmd(rt))
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	files, err := fs.Sub(topicFiles, "topics")
	if err == nil {
		color := style.ColorEnabled(config.ColorAuto, style.IsTerminal(os.Stdout))
		if _, err := topics.Install(rootCmd, files, topics.Options{
			Extensions: []string{".md"},
			Renderer:   topics.NewGlamourRenderer(color),
		}); err != nil {
			log.Warn().Err(err).Msg("Help topics unavailable")
		}
	}
	rootCmd.SetHelpCommandGroupID("misc")

	return rootCmd
}

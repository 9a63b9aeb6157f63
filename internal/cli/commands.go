package cli

import (
	"fmt"

	"github.com/arthur-debert/awesome-copilot/internal/version"
	"github.com/arthur-debert/awesome-copilot/pkg/commands"
	"github.com/arthur-debert/awesome-copilot/pkg/commands/newcollection"
	"github.com/arthur-debert/awesome-copilot/pkg/commands/show"
	"github.com/arthur-debert/awesome-copilot/pkg/commands/validate"
	"github.com/arthur-debert/awesome-copilot/pkg/errors"
	"github.com/arthur-debert/awesome-copilot/pkg/logging"
	"github.com/arthur-debert/awesome-copilot/pkg/types"
	"github.com/spf13/cobra"
)

func newInitCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:     "init [config-file]",
		Short:   MsgInitShort,
		Long:    MsgInitLong,
		Example: MsgInitExample,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := commands.Init(commands.InitOptions{
				CatalogRoot: rt.catalogRoot(cmd),
				ConfigPath:  rt.configFor(args),
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), rt.renderer().RenderInit(result))
			return nil
		},
	}
}

func newApplyCmd(opts *globalOptions, rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:     "apply [config-file]",
		Short:   MsgApplyShort,
		Long:    MsgApplyLong,
		Example: MsgApplyExample,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cli.apply")
			logger.Info().
				Bool("dryRun", opts.dryRun).
				Bool("force", opts.force).
				Msg("Starting apply")

			result, err := commands.Apply(commands.ApplyOptions{
				CatalogRoot: rt.catalogRoot(cmd),
				ConfigPath:  rt.configFor(args),
				Paths:       rt.paths,
				DryRun:      opts.dryRun,
				Force:       opts.force,
			})
			if result != nil {
				if opts.dryRun {
					fmt.Fprintln(cmd.OutOrStdout(), MsgDryRunNotice)
				}
				fmt.Fprintln(cmd.OutOrStdout(), rt.renderer().RenderApply(result))
			}
			return err
		},
	}
}

func newListCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:               "list [section...]",
		Short:             MsgListShort,
		Long:              MsgListLong,
		Example:           MsgListExample,
		GroupID:           "core",
		ValidArgsFunction: sectionCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			targets, err := parseTargets(args)
			if err != nil {
				return err
			}

			result, err := commands.List(commands.ListOptions{
				CatalogRoot: rt.catalogRoot(cmd),
				ConfigPath:  rt.configPath,
				Targets:     targets,
				Settings:    rt.settings,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), rt.renderer().RenderList(result))
			return nil
		},
	}
}

func newToggleCmd(opts *globalOptions, rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:               "toggle <section> <name|all> [on|off|reset]",
		Short:             MsgToggleShort,
		Long:              MsgToggleLong,
		Example:           MsgToggleExample,
		GroupID:           "core",
		Args:              cobra.RangeArgs(2, 3),
		ValidArgsFunction: toggleCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := commands.ParseTarget(args[0])
			if err != nil {
				return err
			}
			state := ""
			if len(args) == 3 {
				state = args[2]
			}

			result, err := commands.Toggle(commands.ToggleOptions{
				CatalogRoot: rt.catalogRoot(cmd),
				ConfigPath:  rt.configPath,
				Target:      target,
				Name:        args[1],
				State:       state,
				Settings:    rt.settings,
				DryRun:      opts.dryRun,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), rt.renderer().RenderToggle(result))
			return nil
		},
	}
}

func newShowCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:               "show <section> <name>",
		Short:             MsgShowShort,
		Long:              MsgShowLong,
		GroupID:           "catalog",
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: showCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := commands.ParseTarget(args[0])
			if err != nil {
				return err
			}
			if target.Collections {
				return errors.New(errors.ErrInvalidInput, "show works on prompts, instructions and chatmodes")
			}

			result, err := show.Show(show.ShowOptions{
				CatalogRoot: rt.catalogRoot(cmd),
				Ref:         types.ItemRef{Section: target.Section, Name: args[1]},
			})
			if err != nil {
				return err
			}

			out, err := rt.renderer().RenderShow(result)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func newInstructionsCmd(opts *globalOptions, rt *runtime) *cobra.Command {
	var (
		output   string
		layout   string
		noHeader bool
	)

	cmd := &cobra.Command{
		Use:     "instructions",
		Short:   MsgInstructionsShort,
		Long:    MsgInstructionsLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := commands.Instructions(commands.InstructionsOptions{
				CatalogRoot: rt.catalogRoot(cmd),
				ConfigPath:  rt.configPath,
				OutputFile:  output,
				Layout:      layout,
				NoHeader:    noHeader,
				DryRun:      opts.dryRun,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), rt.renderer().RenderInstructions(result))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", MsgFlagOutput)
	cmd.Flags().StringVar(&layout, "layout", commands.LayoutRepository, MsgFlagLayout)
	cmd.Flags().BoolVar(&noHeader, "no-header", false, MsgFlagNoHeader)
	_ = cmd.RegisterFlagCompletionFunc("layout", cobra.FixedCompletions(
		[]string{commands.LayoutRepository, commands.LayoutConsolidated, commands.LayoutBasic}, cobra.ShellCompDirectiveNoFileComp))
	return cmd
}

func newValidateCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:     "validate",
		Short:   MsgValidateShort,
		Long:    MsgValidateLong,
		GroupID: "catalog",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := validate.Validate(validate.ValidateOptions{CatalogRoot: rt.catalogRoot(cmd)})
			if report != nil {
				fmt.Fprintln(cmd.OutOrStdout(), rt.renderer().RenderValidate(report))
			}
			return err
		},
	}
}

func newNewCollectionCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:     "new-collection <id>",
		Short:   MsgNewCollectionShort,
		Long:    MsgNewCollectionLong,
		GroupID: "catalog",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := newcollection.NewCollection(newcollection.NewCollectionOptions{
				CatalogRoot: rt.catalogRoot(cmd),
				ID:          args[0],
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), rt.renderer().RenderNewCollection(result))
			return nil
		},
	}
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgTopicsShort,
		Long:    MsgTopicsLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			helpCmd, _, err := cmd.Root().Find([]string{"help"})
			if err != nil || helpCmd == nil || helpCmd.Name() != "help" {
				return fmt.Errorf("help command not found")
			}
			helpCmd.Run(helpCmd, []string{"topics"})
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			if short {
				fmt.Fprintln(out, version.Resolved())
				return
			}
			fmt.Fprintf(out, MsgVersionLine, version.Resolved())
			fmt.Fprintf(out, MsgCommitLine, version.Commit)
			fmt.Fprintf(out, MsgDateLine, version.Date)
		},
	}
	cmd.Flags().BoolVarP(&short, "short", "s", false, MsgFlagVersionShort)
	return cmd
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

func parseTargets(args []string) ([]commands.Target, error) {
	targets := make([]commands.Target, 0, len(args))
	for _, arg := range args {
		target, err := commands.ParseTarget(arg)
		if err != nil {
			return nil, err
		}
		targets = append(targets, target)
	}
	return targets, nil
}

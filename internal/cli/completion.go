package cli

import (
	"strings"

	"github.com/arthur-debert/awesome-copilot/pkg/catalog"
	"github.com/arthur-debert/awesome-copilot/pkg/commands"
	"github.com/arthur-debert/awesome-copilot/pkg/filesystem"
	"github.com/arthur-debert/awesome-copilot/pkg/types"
	"github.com/spf13/cobra"
)

// stateTokens are the states offered for toggle.
var stateTokens = []string{"on", "off", "reset"}

func sectionNames() []string {
	names := make([]string, 0, types.SectionCount+1)
	for _, s := range types.Sections {
		names = append(names, s.String())
	}
	return append(names, commands.CollectionsTarget)
}

// sectionCompletion offers the section names not given yet.
func sectionCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return without(sectionNames(), args), cobra.ShellCompDirectiveNoFileComp
}

// catalogNames scans the catalog the flags point at. Completion runs
// without the root pre-run, so flags are resolved here.
func catalogNames(cmd *cobra.Command, section string) []string {
	opts := &globalOptions{}
	if f := cmd.Flag("catalog"); f != nil {
		opts.catalogRoot = f.Value.String()
	}
	rt, err := opts.resolve()
	if err != nil {
		return nil
	}
	cat, err := catalog.Scan(filesystem.NewOS(), rt.paths.CatalogRoot())
	if err != nil {
		return nil
	}

	target, err := commands.ParseTarget(section)
	if err != nil {
		return nil
	}
	if target.Collections {
		return cat.CollectionNames()
	}
	return cat.Items(target.Section)
}

func toggleCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	switch len(args) {
	case 0:
		return sectionNames(), cobra.ShellCompDirectiveNoFileComp
	case 1:
		names := catalogNames(cmd, args[0])
		if !strings.EqualFold(args[0], commands.CollectionsTarget) {
			names = append(names, commands.AllItems)
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	case 2:
		return stateTokens, cobra.ShellCompDirectiveNoFileComp
	}
	return nil, cobra.ShellCompDirectiveNoFileComp
}

func showCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	switch len(args) {
	case 0:
		names := make([]string, 0, types.SectionCount)
		for _, s := range types.Sections {
			names = append(names, s.String())
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	case 1:
		return catalogNames(cmd, args[0]), cobra.ShellCompDirectiveNoFileComp
	}
	return nil, cobra.ShellCompDirectiveNoFileComp
}

func without(all, given []string) []string {
	seen := make(map[string]bool, len(given))
	for _, g := range given {
		seen[strings.ToLower(g)] = true
	}
	var out []string
	for _, name := range all {
		if !seen[name] {
			out = append(out, name)
		}
	}
	return out
}

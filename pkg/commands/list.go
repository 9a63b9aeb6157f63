package commands

import (
	"github.com/arthur-debert/awesome-copilot/pkg/config"
	"github.com/arthur-debert/awesome-copilot/pkg/logging"
	"github.com/arthur-debert/awesome-copilot/pkg/resolver"
	"github.com/arthur-debert/awesome-copilot/pkg/types"
)

// ListOptions defines the options for the List command.
type ListOptions struct {
	FS          types.FS
	CatalogRoot string
	ConfigPath  string

	// Targets restricts the listing; empty lists every section and the
	// collections
	Targets []Target

	// Settings provides the footprint limits; nil disables the warnings
	Settings *config.Settings
}

// ItemListing is one item with its effective state.
type ItemListing struct {
	Name    string
	Enabled bool
	Reason  types.Reason
	Flag    types.Flag

	// Collections are the collections containing the item
	Collections []string
}

// SectionListing is the listing of one item section.
type SectionListing struct {
	Section   types.Section
	Items     []ItemListing
	Enabled   int
	Footprint Footprint
}

// CollectionListing is one collection with its configuration flag.
type CollectionListing struct {
	Name    string
	Title   string
	Enabled bool
	Members int
	LoadErr error
}

// ListResult is the outcome of the List command.
type ListResult struct {
	ConfigPath string
	Sections   []SectionListing

	// ShowCollections is false when the targets left collections out
	ShowCollections bool
	Collections     []CollectionListing
	// EnabledCollections counts the enabled collections present in the catalog
	EnabledCollections int
}

// List reports every catalog item with its effective state and the reason
// for it, per section, along with the collections and their flags.
func List(opts ListOptions) (*ListResult, error) {
	log := logging.GetLogger("commands.list")
	log.Debug().Str("command", "List").Msg("Executing command")

	ws, err := loadWorkspace(opts.FS, opts.CatalogRoot, opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	effective := resolver.Resolve(ws.cfg, ws.cat)

	result := &ListResult{ConfigPath: ws.configPath}
	sections, showCollections := expandTargets(opts.Targets)

	for _, s := range sections {
		listing := SectionListing{Section: s}
		for _, name := range effective.Names(s) {
			ref := types.ItemRef{Section: s, Name: name}
			st, _ := effective.Get(ref)
			listing.Items = append(listing.Items, ItemListing{
				Name:        name,
				Enabled:     st.Enabled,
				Reason:      st.Reason,
				Flag:        ws.cfg.Flag(ref),
				Collections: ws.cat.CollectionsOf(ref),
			})
			if st.Enabled {
				listing.Enabled++
			}
		}
		listing.Footprint = computeFootprint(ws.fs, ws.cat, effective, s, opts.Settings)
		result.Sections = append(result.Sections, listing)
	}

	if showCollections {
		result.ShowCollections = true
		for _, name := range ws.cat.CollectionNames() {
			coll, _ := ws.cat.Collection(name)
			entry := CollectionListing{
				Name:    name,
				Title:   coll.Title,
				Enabled: ws.cfg.CollectionEnabled(name),
				Members: len(coll.Refs()),
				LoadErr: coll.LoadErr,
			}
			if entry.Enabled {
				result.EnabledCollections++
			}
			result.Collections = append(result.Collections, entry)
		}
	}

	log.Info().
		Str("command", "List").
		Int("sections", len(result.Sections)).
		Int("collections", len(result.Collections)).
		Msg("Command finished")
	return result, nil
}

func expandTargets(targets []Target) ([]types.Section, bool) {
	if len(targets) == 0 {
		return types.Sections[:], true
	}

	var sections []types.Section
	seen := make(map[types.Section]bool)
	collections := false
	for _, t := range targets {
		if t.Collections {
			collections = true
			continue
		}
		if !seen[t.Section] {
			seen[t.Section] = true
			sections = append(sections, t.Section)
		}
	}
	return sections, collections
}

// Package toggle holds the mutations of the user configuration: flipping
// a collection flag and setting item overrides. Each reports how the
// effective state changed.
package toggle

import (
	"strings"

	"github.com/arthur-debert/awesome-copilot/pkg/catalog"
	"github.com/arthur-debert/awesome-copilot/pkg/config"
	"github.com/arthur-debert/awesome-copilot/pkg/errors"
	"github.com/arthur-debert/awesome-copilot/pkg/logging"
	"github.com/arthur-debert/awesome-copilot/pkg/resolver"
	"github.com/arthur-debert/awesome-copilot/pkg/types"
)

// CollectionResult reports a collection toggle.
type CollectionResult struct {
	Name     string
	Previous bool
	Current  bool
	Changed  bool
	Delta    types.Delta
}

// Collection sets the flag of a collection to desired. Only
// cfg.Collections[name] is written; item overrides are never touched, so
// an item the user switched off stays off whatever its collections do.
//
// Invalid input and unknown collections are rejected before any mutation.
// Setting a collection to its current value is a no-op with an empty delta.
func Collection(cfg *config.Config, cat *catalog.Catalog, name string, desired bool) (*CollectionResult, error) {
	if cfg == nil {
		return nil, errors.New(errors.ErrInvalidInput, "configuration is required")
	}
	if cat == nil {
		return nil, errors.New(errors.ErrInvalidInput, "catalog is required")
	}
	if name == "" {
		return nil, errors.New(errors.ErrInvalidInput, "collection name is required")
	}
	if !cat.HasCollection(name) {
		return nil, cat.UnknownCollection(name)
	}

	current := cfg.Collections[name]
	result := &CollectionResult{Name: name, Previous: current, Current: desired}
	if current == desired {
		return result, nil
	}

	before := resolver.Resolve(cfg, cat)
	cfg.Collections[name] = desired
	after := resolver.Resolve(cfg, cat)

	result.Changed = true
	result.Delta = resolver.Delta(before, after)

	logger := logging.GetLogger("toggle")
	logger.Debug().
		Str("collection", name).
		Bool("enabled", desired).
		Int("enabled_items", len(result.Delta.Enabled)).
		Int("disabled_items", len(result.Delta.Disabled)).
		Msg("Toggled collection")
	return result, nil
}

// ItemResult reports an item override change.
type ItemResult struct {
	Ref      types.ItemRef
	Previous types.Flag
	Current  types.Flag
	Changed  bool
	Delta    types.Delta
}

// Item sets the explicit flag of one item. FlagUnset clears the override
// so the item follows its collections again.
func Item(cfg *config.Config, cat *catalog.Catalog, ref types.ItemRef, flag types.Flag) (*ItemResult, error) {
	if cfg == nil {
		return nil, errors.New(errors.ErrInvalidInput, "configuration is required")
	}
	if cat == nil {
		return nil, errors.New(errors.ErrInvalidInput, "catalog is required")
	}
	if ref.Name == "" || !ref.Section.Valid() {
		return nil, errors.New(errors.ErrInvalidInput, "item section and name are required")
	}
	if !cat.HasItem(ref) {
		return nil, cat.UnknownItem(ref)
	}

	result := &ItemResult{Ref: ref, Previous: cfg.Flag(ref), Current: flag}
	if result.Previous == flag {
		return result, nil
	}

	before := resolver.Resolve(cfg, cat)
	cfg.SetFlag(ref, flag)
	after := resolver.Resolve(cfg, cat)

	result.Changed = true
	result.Delta = resolver.Delta(before, after)
	return result, nil
}

// AllResult reports a section-wide override change.
type AllResult struct {
	Section types.Section
	Flag    types.Flag
	// Updated counts the items whose flag changed
	Updated int
	Delta   types.Delta
}

// All sets the same flag on every catalog item of a section. FlagUnset
// clears every override of the section.
func All(cfg *config.Config, cat *catalog.Catalog, section types.Section, flag types.Flag) (*AllResult, error) {
	if cfg == nil {
		return nil, errors.New(errors.ErrInvalidInput, "configuration is required")
	}
	if cat == nil {
		return nil, errors.New(errors.ErrInvalidInput, "catalog is required")
	}
	if !section.Valid() {
		return nil, errors.New(errors.ErrInvalidInput, "unknown section")
	}
	items := cat.Items(section)
	if len(items) == 0 {
		return nil, errors.Newf(errors.ErrNotFound, "no %s available to toggle", strings.ToLower(section.Info().Label))
	}

	result := &AllResult{Section: section, Flag: flag}
	before := resolver.Resolve(cfg, cat)
	for _, name := range items {
		ref := types.ItemRef{Section: section, Name: name}
		if cfg.Flag(ref) != flag {
			cfg.SetFlag(ref, flag)
			result.Updated++
		}
	}
	after := resolver.Resolve(cfg, cat)
	result.Delta = resolver.Delta(before, after)
	return result, nil
}

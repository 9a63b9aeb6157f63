// Package resolver computes the effective state of every catalog item and
// the difference between two such states.
package resolver

import (
	"github.com/arthur-debert/awesome-copilot/pkg/catalog"
	"github.com/arthur-debert/awesome-copilot/pkg/config"
	"github.com/arthur-debert/awesome-copilot/pkg/types"
)

// Resolve decides, for every item the catalog knows, whether it is enabled
// and why. Precedence, highest first:
//
//  1. explicit true: enabled (explicit)
//  2. explicit false: disabled (explicit)
//  3. unset and a member of an enabled collection: enabled (collection)
//  4. otherwise: disabled
//
// Configuration keys naming items the catalog does not have are ignored.
// Resolve is pure: identical inputs give identical states.
func Resolve(cfg *config.Config, cat *catalog.Catalog) *types.EffectiveState {
	state := types.NewEffectiveState()
	viaCollection := collectionMembers(cfg, cat)

	for _, ref := range cat.Refs() {
		state.Set(ref, resolveItem(cfg.Flag(ref), viaCollection[ref]))
	}
	return state
}

func resolveItem(flag types.Flag, inEnabledCollection bool) types.ItemState {
	if value, ok := flag.Bool(); ok {
		return types.ItemState{Enabled: value, Reason: types.ReasonExplicit}
	}
	if inEnabledCollection {
		return types.ItemState{Enabled: true, Reason: types.ReasonCollection}
	}
	return types.ItemState{Enabled: false, Reason: types.ReasonDisabled}
}

// collectionMembers is the union of the members of every enabled
// collection. Enabled names without a manifest contribute nothing.
func collectionMembers(cfg *config.Config, cat *catalog.Catalog) map[types.ItemRef]bool {
	members := make(map[types.ItemRef]bool)
	for _, name := range cfg.EnabledCollections() {
		for _, ref := range cat.Members(name) {
			members[ref] = true
		}
	}
	return members
}

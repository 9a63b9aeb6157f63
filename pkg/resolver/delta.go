package resolver

import "github.com/arthur-debert/awesome-copilot/pkg/types"

// Delta lists the items that flipped between two states: false to true in
// Enabled, true to false in Disabled. An item missing from one snapshot
// counts as disabled there. Both lists are ordered by section, then name.
func Delta(before, after *types.EffectiveState) types.Delta {
	var d types.Delta

	seen := make(map[types.ItemRef]bool)
	var refs []types.ItemRef
	for _, state := range []*types.EffectiveState{before, after} {
		if state == nil {
			continue
		}
		for _, ref := range state.Refs() {
			if !seen[ref] {
				seen[ref] = true
				refs = append(refs, ref)
			}
		}
	}
	types.SortRefs(refs)

	for _, ref := range refs {
		was, is := before.IsEnabled(ref), after.IsEnabled(ref)
		switch {
		case !was && is:
			d.Enabled = append(d.Enabled, ref)
		case was && !is:
			d.Disabled = append(d.Disabled, ref)
		}
	}
	return d
}

package types

import "sort"

// Reason explains why an item ended up enabled or disabled.
type Reason string

const (
	// ReasonExplicit means the configuration carries an explicit flag for the item
	ReasonExplicit Reason = "explicit"

	// ReasonCollection means an enabled collection reaches the unset item
	ReasonCollection Reason = "collection"

	// ReasonDisabled means nothing enables the item
	ReasonDisabled Reason = "disabled"
)

// ItemState is the resolved state of a single item.
type ItemState struct {
	Enabled bool
	Reason  Reason
}

// EffectiveState maps every catalog item to its resolved state.
// It is computed, never persisted.
type EffectiveState struct {
	sections [SectionCount]map[string]ItemState
}

// NewEffectiveState creates an empty state.
func NewEffectiveState() *EffectiveState {
	e := &EffectiveState{}
	for _, s := range Sections {
		e.sections[s] = make(map[string]ItemState)
	}
	return e
}

// Set records the state of an item.
func (e *EffectiveState) Set(ref ItemRef, state ItemState) {
	e.sections[ref.Section][ref.Name] = state
}

// Get returns the state of an item and whether the item is known.
func (e *EffectiveState) Get(ref ItemRef) (ItemState, bool) {
	if e == nil || !ref.Section.Valid() {
		return ItemState{}, false
	}
	state, ok := e.sections[ref.Section][ref.Name]
	return state, ok
}

// IsEnabled reports whether the item is known and enabled.
func (e *EffectiveState) IsEnabled(ref ItemRef) bool {
	state, ok := e.Get(ref)
	return ok && state.Enabled
}

// Section returns a copy of the states of one section.
func (e *EffectiveState) Section(s Section) map[string]ItemState {
	out := make(map[string]ItemState, len(e.sections[s]))
	for name, state := range e.sections[s] {
		out[name] = state
	}
	return out
}

// Names returns the item names of a section in alphabetical order.
func (e *EffectiveState) Names(s Section) []string {
	names := make([]string, 0, len(e.sections[s]))
	for name := range e.sections[s] {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Enabled returns the enabled item names of a section in alphabetical order.
func (e *EffectiveState) Enabled(s Section) []string {
	var names []string
	for _, name := range e.Names(s) {
		if e.sections[s][name].Enabled {
			names = append(names, name)
		}
	}
	return names
}

// Refs returns every known item, sorted by section then name.
func (e *EffectiveState) Refs() []ItemRef {
	var refs []ItemRef
	for _, s := range Sections {
		for _, name := range e.Names(s) {
			refs = append(refs, ItemRef{Section: s, Name: name})
		}
	}
	return refs
}

// EnabledRefs returns every enabled item, sorted by section then name.
func (e *EffectiveState) EnabledRefs() []ItemRef {
	var refs []ItemRef
	for _, s := range Sections {
		for _, name := range e.Enabled(s) {
			refs = append(refs, ItemRef{Section: s, Name: name})
		}
	}
	return refs
}

// Len returns the number of known items across all sections.
func (e *EffectiveState) Len() int {
	n := 0
	for _, s := range Sections {
		n += len(e.sections[s])
	}
	return n
}

// Delta lists the items whose effective state changed between two snapshots.
type Delta struct {
	Enabled  []ItemRef
	Disabled []ItemRef
}

// Empty reports whether nothing changed.
func (d Delta) Empty() bool {
	return len(d.Enabled) == 0 && len(d.Disabled) == 0
}

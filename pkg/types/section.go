package types

import (
	"sort"
	"strings"
)

// Section identifies one of the item sections of the catalog.
type Section int

const (
	SectionPrompts Section = iota
	SectionInstructions
	SectionChatModes
)

// SectionCount is the number of item sections. Tables indexed by Section
// are sized with it.
const SectionCount = 3

// Sections lists every section in display and processing order.
var Sections = [SectionCount]Section{SectionPrompts, SectionInstructions, SectionChatModes}

// CollectionsKey is the configuration key holding collection flags.
const CollectionsKey = "collections"

// SectionInfo describes how a section is laid out on disk and in the
// configuration file.
type SectionInfo struct {
	// Key is the configuration section name (and output sub-directory)
	Key string
	// Dir is the catalog directory holding the section's items
	Dir string
	// Ext is the file extension every item of the section carries
	Ext string
	// Kind is the tag used by collection manifests
	Kind string
	// Label is the human readable plural name
	Label string
	// Singular is the human readable singular name
	Singular string
}

var sectionInfo = [SectionCount]SectionInfo{
	SectionPrompts: {
		Key: "prompts", Dir: "prompts", Ext: ".prompt.md",
		Kind: "prompt", Label: "Prompts", Singular: "prompt",
	},
	SectionInstructions: {
		Key: "instructions", Dir: "instructions", Ext: ".instructions.md",
		Kind: "instruction", Label: "Instructions", Singular: "instruction",
	},
	SectionChatModes: {
		Key: "chatmodes", Dir: "chatmodes", Ext: ".chatmode.md",
		Kind: "chat-mode", Label: "Chat Modes", Singular: "chat mode",
	},
}

// Valid reports whether s is one of the known sections.
func (s Section) Valid() bool {
	return s >= 0 && s < SectionCount
}

// Info returns the metadata of the section. It panics on an invalid section.
func (s Section) Info() SectionInfo {
	return sectionInfo[s]
}

func (s Section) String() string {
	if !s.Valid() {
		return "unknown"
	}
	return sectionInfo[s].Key
}

// FileName returns the file name an item of this section is stored under.
func (s Section) FileName(name string) string {
	return name + sectionInfo[s].Ext
}

// ItemName strips the section extension from a file name. The second
// return value is false when the file does not belong to the section.
func (s Section) ItemName(fileName string) (string, bool) {
	ext := sectionInfo[s].Ext
	if !strings.HasSuffix(fileName, ext) || len(fileName) == len(ext) {
		return "", false
	}
	return strings.TrimSuffix(fileName, ext), true
}

// ParseSection accepts a section key, its singular form or its collection
// kind, case-insensitively.
func ParseSection(input string) (Section, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	for _, s := range Sections {
		info := sectionInfo[s]
		if normalized == info.Key || normalized == info.Kind ||
			normalized == strings.ReplaceAll(info.Singular, " ", "") {
			return s, true
		}
	}
	return 0, false
}

// SectionForKind maps a collection manifest kind tag to its section.
func SectionForKind(kind string) (Section, bool) {
	for _, s := range Sections {
		if sectionInfo[s].Kind == kind {
			return s, true
		}
	}
	return 0, false
}

// SectionForFile finds the section whose extension the file name carries
// and returns the item name.
func SectionForFile(fileName string) (Section, string, bool) {
	for _, s := range Sections {
		if name, ok := s.ItemName(fileName); ok {
			return s, name, true
		}
	}
	return 0, "", false
}

// ItemRef identifies an item. Names are only unique within a section.
type ItemRef struct {
	Section Section
	Name    string
}

func (r ItemRef) String() string {
	return r.Section.String() + "/" + r.Name
}

// Less orders refs by section order, then by name.
func (r ItemRef) Less(other ItemRef) bool {
	if r.Section != other.Section {
		return r.Section < other.Section
	}
	return r.Name < other.Name
}

// SortRefs sorts refs in place by section order, then by name.
func SortRefs(refs []ItemRef) {
	sort.Slice(refs, func(i, j int) bool { return refs[i].Less(refs[j]) })
}

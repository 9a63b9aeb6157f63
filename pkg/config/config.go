package config

import (
	"sort"

	"github.com/arthur-debert/awesome-copilot/pkg/types"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigFile is the configuration file name used when none is given
	DefaultConfigFile = "awesome-copilot.config.yml"

	// DefaultVersion is written when the file carries no version
	DefaultVersion = "1.0"

	// DefaultOutputDirectory is used when project.output_directory is missing
	DefaultOutputDirectory = ".awesome-copilot"

	keyVersion         = "version"
	keyProject         = "project"
	keyOutputDirectory = "output_directory"
)

// Config is the in-memory user configuration.
//
// Item flags are tri-state: a name missing from its section is FlagUnset.
// Collections holds the collection flags; a missing entry means disabled.
// Everything else in the file is kept as opaque YAML and written back
// unchanged.
type Config struct {
	// Collections maps collection names to their explicit flag
	Collections map[string]bool

	header string
	items  [types.SectionCount]map[string]types.Flag
	opaque []keyValue
}

// keyValue is a top-level entry the engine does not interpret.
type keyValue struct {
	key   *yaml.Node
	value *yaml.Node
}

// New returns an empty configuration carrying the default version and
// project metadata.
func New() *Config {
	c := newEmpty()
	c.ensureDefaults()
	return c
}

func newEmpty() *Config {
	c := &Config{Collections: make(map[string]bool)}
	for _, s := range types.Sections {
		c.items[s] = make(map[string]types.Flag)
	}
	return c
}

// Flag returns the explicit flag of an item, FlagUnset when there is none.
func (c *Config) Flag(ref types.ItemRef) types.Flag {
	if !ref.Section.Valid() {
		return types.FlagUnset
	}
	return c.items[ref.Section][ref.Name]
}

// SetFlag records an explicit flag. FlagUnset removes the entry so the item
// inherits from its collections again.
func (c *Config) SetFlag(ref types.ItemRef, flag types.Flag) {
	if !ref.Section.Valid() {
		return
	}
	if !flag.IsSet() {
		delete(c.items[ref.Section], ref.Name)
		return
	}
	c.items[ref.Section][ref.Name] = flag
}

// Items returns a copy of the explicit flags of a section, stale names
// included.
func (c *Config) Items(section types.Section) map[string]types.Flag {
	out := make(map[string]types.Flag, len(c.items[section]))
	for name, flag := range c.items[section] {
		out[name] = flag
	}
	return out
}

// CollectionEnabled reports whether a collection is explicitly enabled.
func (c *Config) CollectionEnabled(name string) bool {
	return c.Collections[name]
}

// EnabledCollections returns the enabled collection names, sorted.
func (c *Config) EnabledCollections() []string {
	var names []string
	for name, on := range c.Collections {
		if on {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Header returns the leading comment block of the file.
func (c *Config) Header() string {
	return c.header
}

// SetHeader replaces the leading comment block.
func (c *Config) SetHeader(header string) {
	c.header = header
}

// Version returns the configuration format version.
func (c *Config) Version() string {
	if v := c.lookup(keyVersion); v != nil && v.Kind == yaml.ScalarNode && v.Value != "" {
		return v.Value
	}
	return DefaultVersion
}

// OutputDirectory returns project.output_directory, or the default when
// the file does not set it.
func (c *Config) OutputDirectory() string {
	project := c.lookup(keyProject)
	if project == nil || project.Kind != yaml.MappingNode {
		return DefaultOutputDirectory
	}
	if v := mappingValue(project, keyOutputDirectory); v != nil && v.Kind == yaml.ScalarNode && v.Value != "" {
		return v.Value
	}
	return DefaultOutputDirectory
}

// SetProject sets a scalar key of the project block.
func (c *Config) SetProject(key, value string) {
	project := c.lookup(keyProject)
	if project == nil || project.Kind != yaml.MappingNode {
		project = &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		c.setOpaque(keyProject, project)
	}
	if v := mappingValue(project, key); v != nil {
		*v = *stringNode(value)
		return
	}
	project.Content = append(project.Content, stringNode(key), stringNode(value))
}

// Clone returns a deep copy.
func (c *Config) Clone() *Config {
	out := newEmpty()
	out.header = c.header
	for _, s := range types.Sections {
		for name, flag := range c.items[s] {
			out.items[s][name] = flag
		}
	}
	for name, on := range c.Collections {
		out.Collections[name] = on
	}
	for _, kv := range c.opaque {
		out.opaque = append(out.opaque, keyValue{key: copyNode(kv.key), value: copyNode(kv.value)})
	}
	return out
}

func copyNode(n *yaml.Node) *yaml.Node {
	if n == nil {
		return nil
	}
	out := *n
	if len(n.Content) > 0 {
		out.Content = make([]*yaml.Node, len(n.Content))
		for i, child := range n.Content {
			out.Content[i] = copyNode(child)
		}
	}
	return &out
}

func (c *Config) lookup(key string) *yaml.Node {
	for _, kv := range c.opaque {
		if kv.key.Value == key {
			return kv.value
		}
	}
	return nil
}

func (c *Config) setOpaque(key string, value *yaml.Node) {
	for i, kv := range c.opaque {
		if kv.key.Value == key {
			c.opaque[i].value = value
			return
		}
	}
	c.opaque = append(c.opaque, keyValue{key: stringNode(key), value: value})
}

// ensureDefaults adds version and project.output_directory when missing.
// Missing entries go in front of the other opaque keys.
func (c *Config) ensureDefaults() {
	var front []keyValue

	if v := c.lookup(keyVersion); v == nil || (v.Kind == yaml.ScalarNode && v.Value == "") {
		if v != nil {
			*v = *quotedNode(DefaultVersion)
		} else {
			front = append(front, keyValue{key: stringNode(keyVersion), value: quotedNode(DefaultVersion)})
		}
	}

	project := c.lookup(keyProject)
	switch {
	case project == nil:
		project = &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		front = append(front, keyValue{key: stringNode(keyProject), value: project})
	case project.Kind != yaml.MappingNode:
		*project = yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	}
	if mappingValue(project, keyOutputDirectory) == nil {
		project.Content = append(project.Content, stringNode(keyOutputDirectory), quotedNode(DefaultOutputDirectory))
	}

	if len(front) > 0 {
		c.opaque = append(front, c.opaque...)
	}
}

func mappingValue(mapping *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i+1]
		}
	}
	return nil
}

func stringNode(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}

func quotedNode(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value, Style: yaml.DoubleQuotedStyle}
}

func boolNode(value bool) *yaml.Node {
	v := "false"
	if value {
		v = "true"
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: v}
}

package config

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/arthur-debert/awesome-copilot/pkg/errors"
	"github.com/arthur-debert/awesome-copilot/pkg/filesystem"
	"github.com/arthur-debert/awesome-copilot/pkg/logging"
	"github.com/arthur-debert/awesome-copilot/pkg/types"
	"gopkg.in/yaml.v3"
)

// Load reads and parses the configuration file at path.
func Load(path string) (*Config, error) {
	logger := logging.GetLogger("config")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Newf(errors.ErrConfigLoad, "configuration file not found: %s", path).
				WithDetail("path", path)
		}
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read configuration file %s", path)
	}

	cfg, err := Parse(data)
	if err != nil {
		if ce, ok := err.(*errors.CopilotError); ok {
			return nil, ce.WithDetail("path", path)
		}
		return nil, err
	}

	logger.Debug().
		Str("path", path).
		Int("collections", len(cfg.Collections)).
		Msg("Loaded configuration")
	return cfg, nil
}

// Parse builds a Config from the file content. The leading comment block is
// kept as the header; top-level keys other than the item and collection
// sections are kept verbatim.
func Parse(data []byte) (*Config, error) {
	header, body := splitHeader(string(data))

	cfg := newEmpty()
	cfg.header = header

	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(body), &doc); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigValid, "configuration is not valid YAML")
	}

	if len(doc.Content) > 0 {
		root := resolveAlias(doc.Content[0])
		switch {
		case isNull(root):
		case root.Kind != yaml.MappingNode:
			return nil, errors.New(errors.ErrConfigValid, "configuration must be a mapping of sections")
		default:
			if err := cfg.parseRoot(root); err != nil {
				return nil, err
			}
		}
	}

	cfg.ensureDefaults()
	return cfg, nil
}

func (c *Config) parseRoot(root *yaml.Node) error {
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]

		if key.Value == types.CollectionsKey {
			if err := c.parseCollections(value); err != nil {
				return err
			}
			continue
		}

		if section, ok := sectionForKey(key.Value); ok {
			if err := c.parseSection(section, value); err != nil {
				return err
			}
			continue
		}

		c.opaque = append(c.opaque, keyValue{key: key, value: value})
	}
	return nil
}

func (c *Config) parseSection(section types.Section, node *yaml.Node) error {
	return eachEntry(section.String(), node, func(name string, value *yaml.Node) error {
		flag, err := parseFlag(section.String(), name, value)
		if err != nil {
			return err
		}
		c.SetFlag(types.ItemRef{Section: section, Name: name}, flag)
		return nil
	})
}

func (c *Config) parseCollections(node *yaml.Node) error {
	return eachEntry(types.CollectionsKey, node, func(name string, value *yaml.Node) error {
		flag, err := parseFlag(types.CollectionsKey, name, value)
		if err != nil {
			return err
		}
		if on, ok := flag.Bool(); ok {
			c.Collections[name] = on
		}
		return nil
	})
}

// eachEntry walks a section mapping. A null section is empty.
func eachEntry(section string, node *yaml.Node, fn func(name string, value *yaml.Node) error) error {
	node = resolveAlias(node)
	if isNull(node) {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return errors.Newf(errors.ErrConfigValid, "section %q must be a mapping of names to true/false", section).
			WithDetail("line", node.Line)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if err := fn(node.Content[i].Value, node.Content[i+1]); err != nil {
			return err
		}
	}
	return nil
}

// parseFlag accepts booleans and the strings "true"/"false" in any case.
// Null and the empty string mean unset; any other value is an error.
func parseFlag(section, name string, node *yaml.Node) (types.Flag, error) {
	node = resolveAlias(node)
	if isNull(node) {
		return types.FlagUnset, nil
	}

	if node.Kind == yaml.ScalarNode {
		switch node.Tag {
		case "!!bool":
			var b bool
			if err := node.Decode(&b); err == nil {
				return types.FlagFromBool(b), nil
			}
		case "!!str":
			switch strings.ToLower(strings.TrimSpace(node.Value)) {
			case "":
				return types.FlagUnset, nil
			case "true":
				return types.FlagOn, nil
			case "false":
				return types.FlagOff, nil
			}
		}
	}

	return types.FlagUnset, errors.Newf(errors.ErrConfigValid,
		"invalid value for %s.%s at line %d: expected true or false", section, name, node.Line).
		WithDetail("section", section).
		WithDetail("name", name).
		WithDetail("line", node.Line)
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node != nil && node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}

func isNull(node *yaml.Node) bool {
	return node == nil || (node.Kind == yaml.ScalarNode && node.Tag == "!!null")
}

func sectionForKey(key string) (types.Section, bool) {
	for _, s := range types.Sections {
		if s.String() == key {
			return s, true
		}
	}
	return 0, false
}

// splitHeader separates the leading run of comment and blank lines from
// the YAML body.
func splitHeader(content string) (header, body string) {
	lines := strings.Split(content, "\n")
	first := len(lines)
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" && !strings.HasPrefix(trimmed, "#") {
			first = i
			break
		}
	}
	return strings.Join(lines[:first], "\n"), strings.Join(lines[first:], "\n")
}

// Marshal renders the configuration: header, opaque keys in their original
// order, then the item sections and collections with sorted keys.
func (c *Config) Marshal() ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, kv := range c.opaque {
		root.Content = append(root.Content, kv.key, kv.value)
	}

	for _, s := range types.Sections {
		flags := make(map[string]bool, len(c.items[s]))
		for name, flag := range c.items[s] {
			if on, ok := flag.Bool(); ok {
				flags[name] = on
			}
		}
		root.Content = append(root.Content, stringNode(s.String()), boolMapping(flags))
	}
	root.Content = append(root.Content, stringNode(types.CollectionsKey), boolMapping(c.Collections))

	var buf bytes.Buffer
	buf.WriteString(formatHeader(c.header))

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{root}}); err != nil {
		return nil, errors.Wrap(err, errors.ErrPersist, "failed to encode configuration")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Wrap(err, errors.ErrPersist, "failed to encode configuration")
	}
	return buf.Bytes(), nil
}

// Save writes the configuration atomically.
func (c *Config) Save(path string) error {
	data, err := c.Marshal()
	if err != nil {
		return err
	}
	if err := filesystem.WriteFileAtomic(path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrPersist, "failed to write configuration file %s", path).
			WithDetail("path", path)
	}
	logger := logging.GetLogger("config")
	logger.Debug().Str("path", path).Msg("Saved configuration")
	return nil
}

func boolMapping(values map[string]bool) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	if len(values) == 0 {
		node.Style = yaml.FlowStyle
		return node
	}
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		node.Content = append(node.Content, stringNode(name), boolNode(values[name]))
	}
	return node
}

// formatHeader falls back to the generated header when the file had none
// and makes sure one blank line separates it from the body.
func formatHeader(header string) string {
	if strings.TrimSpace(header) == "" {
		header = GenerateHeader(time.Now())
	}
	if !strings.HasSuffix(header, "\n") {
		header += "\n"
	}
	if !strings.HasSuffix(header, "\n\n") {
		header += "\n"
	}
	return header
}

// GenerateHeader returns the comment block written at the top of new
// configuration files.
func GenerateHeader(now time.Time) string {
	return fmt.Sprintf(`# Awesome Copilot Configuration File
# Generated on %s
#
# This file uses effective state precedence:
# 1. Explicit item settings (true/false) override everything
# 2. Items not listed inherit from enabled collections
# 3. Otherwise items are disabled
#
# To use:
# - Enable collections for curated sets of related items
# - Explicitly set individual items to true/false to override collections
# - Items not mentioned will follow collection settings
#
# After configuring, run: awesome-copilot apply
#

`, now.UTC().Format(time.RFC3339))
}

// NewWithCollections returns a fresh configuration for init: generated
// header, project metadata, every known collection listed as disabled and
// empty item sections.
func NewWithCollections(collections []string, now time.Time) *Config {
	cfg := New()
	cfg.header = GenerateHeader(now)
	cfg.SetProject("name", "My Project")
	cfg.SetProject("description", "A project using awesome-copilot customizations")
	for _, name := range collections {
		cfg.Collections[name] = false
	}
	return cfg
}

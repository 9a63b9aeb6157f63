package catalog

import (
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/awesome-copilot/pkg/errors"
	"github.com/arthur-debert/awesome-copilot/pkg/logging"
	"github.com/arthur-debert/awesome-copilot/pkg/paths"
	"github.com/arthur-debert/awesome-copilot/pkg/types"
	"gopkg.in/yaml.v3"
)

// Member is one entry of a collection manifest.
type Member struct {
	Path string
	Kind string

	// Ref is the item the entry points at; only meaningful when Resolved
	Ref      types.ItemRef
	Resolved bool
}

// Display holds the presentation hints of a collection.
type Display struct {
	Ordering  string `yaml:"ordering"`
	ShowBadge bool   `yaml:"show_badge"`
}

// Collection is a named, ordered bundle of item references.
type Collection struct {
	// Name is the manifest base name and the key used in the configuration
	Name string
	Path string

	ID          string
	Title       string
	Description string
	Tags        []string
	Members     []Member
	Display     Display

	// LoadErr is set when the manifest could not be read or parsed
	LoadErr error
}

// Refs returns the resolved member refs in manifest order, without
// duplicates.
func (c *Collection) Refs() []types.ItemRef {
	seen := make(map[types.ItemRef]bool, len(c.Members))
	var refs []types.ItemRef
	for _, m := range c.Members {
		if !m.Resolved || seen[m.Ref] {
			continue
		}
		seen[m.Ref] = true
		refs = append(refs, m.Ref)
	}
	return refs
}

// Catalog is the read-only view of the items and collections under a root.
type Catalog struct {
	root        string
	items       [types.SectionCount][]string
	known       [types.SectionCount]map[string]bool
	collections map[string]*Collection
}

// New creates an empty catalog rooted at root.
func New(root string) *Catalog {
	c := &Catalog{root: root, collections: make(map[string]*Collection)}
	for _, s := range types.Sections {
		c.known[s] = make(map[string]bool)
	}
	return c
}

// AddItem registers an item, keeping each section sorted.
func (c *Catalog) AddItem(ref types.ItemRef) {
	if !ref.Section.Valid() || ref.Name == "" || c.known[ref.Section][ref.Name] {
		return
	}
	c.known[ref.Section][ref.Name] = true
	names := append(c.items[ref.Section], ref.Name)
	sort.Strings(names)
	c.items[ref.Section] = names
}

// AddCollection registers a collection whose members point at refs.
func (c *Catalog) AddCollection(name string, refs ...types.ItemRef) *Collection {
	coll := &Collection{Name: name, ID: name, Path: filepath.Join(c.root, paths.CollectionsDir, name+paths.CollectionExt)}
	for _, ref := range refs {
		info := ref.Section.Info()
		coll.Members = append(coll.Members, Member{
			Path:     path.Join(info.Dir, ref.Section.FileName(ref.Name)),
			Kind:     info.Kind,
			Ref:      ref,
			Resolved: true,
		})
	}
	c.collections[name] = coll
	return coll
}

// Root returns the catalog directory.
func (c *Catalog) Root() string {
	return c.root
}

// Items returns the item names of a section, sorted.
func (c *Catalog) Items(section types.Section) []string {
	return append([]string(nil), c.items[section]...)
}

// Refs returns every item, sorted by section then name.
func (c *Catalog) Refs() []types.ItemRef {
	var refs []types.ItemRef
	for _, s := range types.Sections {
		for _, name := range c.items[s] {
			refs = append(refs, types.ItemRef{Section: s, Name: name})
		}
	}
	return refs
}

// HasItem reports whether the scanner found the item.
func (c *Catalog) HasItem(ref types.ItemRef) bool {
	return ref.Section.Valid() && c.known[ref.Section][ref.Name]
}

// SourcePath returns the catalog file of an item.
func (c *Catalog) SourcePath(ref types.ItemRef) string {
	return filepath.Join(c.root, ref.Section.Info().Dir, ref.Section.FileName(ref.Name))
}

// CollectionNames returns every collection name, sorted.
func (c *Catalog) CollectionNames() []string {
	names := make([]string, 0, len(c.collections))
	for name := range c.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Collection looks up a collection by name.
func (c *Catalog) Collection(name string) (*Collection, bool) {
	coll, ok := c.collections[name]
	return coll, ok
}

// HasCollection reports whether a manifest exists for name.
func (c *Catalog) HasCollection(name string) bool {
	_, ok := c.collections[name]
	return ok
}

// Members returns the item refs of a collection. Unknown collections have
// no members.
func (c *Catalog) Members(name string) []types.ItemRef {
	coll, ok := c.collections[name]
	if !ok {
		return nil
	}
	return coll.Refs()
}

// CollectionsOf returns the names of the collections containing ref, sorted.
func (c *Catalog) CollectionsOf(ref types.ItemRef) []string {
	var names []string
	for _, name := range c.CollectionNames() {
		for _, member := range c.collections[name].Refs() {
			if member == ref {
				names = append(names, name)
				break
			}
		}
	}
	return names
}

// Scan lists the items of every section and loads the collection
// manifests under root. Missing directories are empty.
func Scan(fs types.FS, root string) (*Catalog, error) {
	logger := logging.GetLogger("catalog")
	c := New(root)

	for _, s := range types.Sections {
		dir := filepath.Join(root, s.Info().Dir)
		entries, err := readDir(fs, dir)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			if name, ok := s.ItemName(entry.Name()); ok {
				c.AddItem(types.ItemRef{Section: s, Name: name})
			}
		}
		logger.Trace().Str("section", s.String()).Int("items", len(c.items[s])).Msg("Scanned section")
	}

	dir := filepath.Join(root, paths.CollectionsDir)
	entries, err := readDir(fs, dir)
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), paths.CollectionExt) {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), paths.CollectionExt)
		if name == "" {
			continue
		}
		coll := loadCollection(fs, name, filepath.Join(dir, entry.Name()))
		if coll.LoadErr != nil {
			logger.Warn().Err(coll.LoadErr).Str("collection", name).Msg("Collection manifest could not be loaded, treating it as empty")
		}
		c.collections[name] = coll
	}

	logger.Debug().
		Str("root", root).
		Int("items", len(c.Refs())).
		Int("collections", len(c.collections)).
		Msg("Catalog scanned")
	return c, nil
}

func readDir(fs types.FS, dir string) ([]os.DirEntry, error) {
	entries, err := fs.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, errors.ErrCatalogScan, "failed to read catalog directory %s", dir)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	return entries, nil
}

type manifest struct {
	ID          string         `yaml:"id"`
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Tags        []string       `yaml:"tags"`
	Items       []manifestItem `yaml:"items"`
	Display     *Display       `yaml:"display"`
}

type manifestItem struct {
	Path string `yaml:"path"`
	Kind string `yaml:"kind"`
}

func loadCollection(fs types.FS, name, file string) *Collection {
	coll := &Collection{Name: name, Path: file}

	data, err := fs.ReadFile(file)
	if err != nil {
		coll.LoadErr = errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", file)
		return coll
	}

	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		coll.LoadErr = errors.Wrapf(err, errors.ErrCollectionInvalid, "failed to parse %s", file)
		return coll
	}

	coll.ID = m.ID
	coll.Title = m.Name
	coll.Description = m.Description
	coll.Tags = m.Tags
	if m.Display != nil {
		coll.Display = *m.Display
	}
	for _, item := range m.Items {
		member := Member{Path: item.Path, Kind: item.Kind}
		member.Ref, member.Resolved = resolveMember(item.Path, item.Kind)
		coll.Members = append(coll.Members, member)
	}
	return coll
}

// resolveMember maps a manifest entry to an item. The kind decides the
// section; an unknown kind falls back to the file extension.
func resolveMember(memberPath, kind string) (types.ItemRef, bool) {
	base := path.Base(filepath.ToSlash(memberPath))
	if s, ok := types.SectionForKind(kind); ok {
		if name, ok := s.ItemName(base); ok {
			return types.ItemRef{Section: s, Name: name}, true
		}
	}
	if s, name, ok := types.SectionForFile(base); ok {
		return types.ItemRef{Section: s, Name: name}, true
	}
	return types.ItemRef{}, false
}

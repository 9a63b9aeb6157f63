package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/awesome-copilot/pkg/types"
	"github.com/stretchr/testify/require"
)

// TestCatalog is a catalog laid out on disk under a temporary directory.
type TestCatalog struct {
	Root string
}

// NewTestCatalog creates an empty catalog directory.
func NewTestCatalog(t *testing.T) *TestCatalog {
	t.Helper()

	root := filepath.Join(t.TempDir(), "catalog")
	require.NoError(t, os.MkdirAll(root, 0755))
	return &TestCatalog{Root: root}
}

// Ref is a shorthand for building item refs in tests.
func Ref(section types.Section, name string) types.ItemRef {
	return types.ItemRef{Section: section, Name: name}
}

// AddItem writes an item file and returns its path. An empty content gets
// a small default body.
func (c *TestCatalog) AddItem(t *testing.T, ref types.ItemRef, content string) string {
	t.Helper()

	if content == "" {
		content = fmt.Sprintf("---\ndescription: %s\n---\n\n# %s\n", ref.Name, ref.Name)
	}
	dir := filepath.Join(c.Root, ref.Section.Info().Dir)
	require.NoError(t, os.MkdirAll(dir, 0755))

	path := filepath.Join(dir, ref.Section.FileName(ref.Name))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// AddItems writes default files for several items of one section.
func (c *TestCatalog) AddItems(t *testing.T, section types.Section, names ...string) {
	t.Helper()
	for _, name := range names {
		c.AddItem(t, Ref(section, name), "")
	}
}

// AddManifest writes a raw collection manifest.
func (c *TestCatalog) AddManifest(t *testing.T, name, content string) string {
	t.Helper()

	dir := filepath.Join(c.Root, "collections")
	require.NoError(t, os.MkdirAll(dir, 0755))

	path := filepath.Join(dir, name+".collection.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// AddCollection writes a valid manifest listing refs, creating the member
// files that do not exist yet.
func (c *TestCatalog) AddCollection(t *testing.T, name string, refs ...types.ItemRef) string {
	t.Helper()

	var b strings.Builder
	fmt.Fprintf(&b, "id: %s\nname: %s collection\ndescription: Items for %s\ntags: [%s]\nitems:\n", name, name, name, name)
	for _, ref := range refs {
		info := ref.Section.Info()
		fmt.Fprintf(&b, "  - path: %s/%s\n    kind: %s\n", info.Dir, ref.Section.FileName(ref.Name), info.Kind)

		if _, err := os.Stat(filepath.Join(c.Root, info.Dir, ref.Section.FileName(ref.Name))); os.IsNotExist(err) {
			c.AddItem(t, ref, "")
		}
	}
	b.WriteString("display:\n  ordering: alpha\n  show_badge: false\n")

	return c.AddManifest(t, name, b.String())
}

// WriteFile writes a file relative to dir, creating parents.
func WriteFile(t *testing.T, dir, rel, content string) string {
	t.Helper()

	path := filepath.Join(dir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// ListDir returns the names of the regular files in dir, sorted. A missing
// directory is empty.
func ListDir(t *testing.T, dir string) []string {
	t.Helper()

	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil
	}
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names
}

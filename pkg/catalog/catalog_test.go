// pkg/catalog/catalog_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: Temporary directory
// PURPOSE: Test catalog scanning and collection manifest loading

package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/awesome-copilot/pkg/catalog"
	"github.com/arthur-debert/awesome-copilot/pkg/filesystem"
	"github.com/arthur-debert/awesome-copilot/pkg/testutil"
	"github.com/arthur-debert/awesome-copilot/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	prompts      = types.SectionPrompts
	instructions = types.SectionInstructions
	chatmodes    = types.SectionChatModes
)

func TestScan_ListsItemsPerSection(t *testing.T) {
	tc := testutil.NewTestCatalog(t)
	tc.AddItems(t, prompts, "zeta", "alpha")
	tc.AddItems(t, instructions, "go")
	tc.AddItems(t, chatmodes, "planner")
	testutil.WriteFile(t, tc.Root, "prompts/README.md", "not an item")
	testutil.WriteFile(t, tc.Root, "prompts/nested/deep.prompt.md", "ignored")
	testutil.WriteFile(t, tc.Root, "prompts/misfiled.instructions.md", "wrong section")

	cat, err := catalog.Scan(filesystem.NewOS(), tc.Root)
	require.NoError(t, err)

	assert.Equal(t, []string{"alpha", "zeta"}, cat.Items(prompts))
	assert.Equal(t, []string{"go"}, cat.Items(instructions))
	assert.Equal(t, []string{"planner"}, cat.Items(chatmodes))
	assert.True(t, cat.HasItem(testutil.Ref(prompts, "alpha")))
	assert.False(t, cat.HasItem(testutil.Ref(instructions, "alpha")))
	assert.Equal(t, filepath.Join(tc.Root, "chatmodes", "planner.chatmode.md"),
		cat.SourcePath(testutil.Ref(chatmodes, "planner")))
	assert.Len(t, cat.Refs(), 4)
}

func TestScan_MissingDirectoriesAreEmpty(t *testing.T) {
	cat, err := catalog.Scan(filesystem.NewOS(), filepath.Join(t.TempDir(), "nothing"))
	require.NoError(t, err)

	for _, s := range types.Sections {
		assert.Empty(t, cat.Items(s))
	}
	assert.Empty(t, cat.CollectionNames())
}

func TestScan_Collections(t *testing.T) {
	tc := testutil.NewTestCatalog(t)
	tc.AddCollection(t, "testing",
		testutil.Ref(prompts, "itemA"),
		testutil.Ref(prompts, "itemB"),
		testutil.Ref(instructions, "itemA"),
	)
	tc.AddManifest(t, "mixed", `id: mixed
name: Mixed
description: Kinds and extensions
items:
  - path: prompts/x.prompt.md
    kind: prompt
  - path: chatmodes/y.chatmode.md
    kind: chatmode
  - path: docs/readme.md
    kind: doc
  - path: prompts/x.prompt.md
    kind: prompt
`)

	cat, err := catalog.Scan(filesystem.NewOS(), tc.Root)
	require.NoError(t, err)

	assert.Equal(t, []string{"mixed", "testing"}, cat.CollectionNames())
	assert.True(t, cat.HasCollection("testing"))
	assert.Equal(t, []types.ItemRef{
		testutil.Ref(prompts, "itemA"),
		testutil.Ref(prompts, "itemB"),
		testutil.Ref(instructions, "itemA"),
	}, cat.Members("testing"))

	// unknown kind falls back to the extension, unresolvable entries and
	// duplicates are dropped
	assert.Equal(t, []types.ItemRef{
		testutil.Ref(prompts, "x"),
		testutil.Ref(chatmodes, "y"),
	}, cat.Members("mixed"))

	coll, ok := cat.Collection("testing")
	require.True(t, ok)
	assert.Equal(t, "testing", coll.ID)
	assert.Equal(t, "alpha", coll.Display.Ordering)
	assert.Equal(t, []string{"testing"}, coll.Tags)

	assert.Nil(t, cat.Members("absent"))
	assert.Equal(t, []string{"testing"}, cat.CollectionsOf(testutil.Ref(prompts, "itemB")))
	assert.Empty(t, cat.CollectionsOf(testutil.Ref(chatmodes, "itemB")))
}

func TestScan_BrokenManifestHasNoMembers(t *testing.T) {
	tc := testutil.NewTestCatalog(t)
	tc.AddManifest(t, "broken", "items: [\n")
	tc.AddManifest(t, "badtype", "id: badtype\ndisplay:\n  show_badge: sometimes\n")

	cat, err := catalog.Scan(filesystem.NewOS(), tc.Root)
	require.NoError(t, err)

	for _, name := range []string{"broken", "badtype"} {
		coll, ok := cat.Collection(name)
		require.True(t, ok, name)
		assert.Error(t, coll.LoadErr, name)
		assert.Empty(t, cat.Members(name), name)
	}
}

func TestScan_UnreadableSectionFails(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}
	tc := testutil.NewTestCatalog(t)
	tc.AddItems(t, prompts, "a")
	dir := filepath.Join(tc.Root, "prompts")
	require.NoError(t, os.Chmod(dir, 0000))
	t.Cleanup(func() { _ = os.Chmod(dir, 0755) })

	_, err := catalog.Scan(filesystem.NewOS(), tc.Root)
	assert.Error(t, err)
}

func TestNew_InMemoryCatalog(t *testing.T) {
	cat := catalog.New("/catalog")
	cat.AddItem(testutil.Ref(prompts, "b"))
	cat.AddItem(testutil.Ref(prompts, "a"))
	cat.AddItem(testutil.Ref(prompts, "a"))
	coll := cat.AddCollection("c", testutil.Ref(prompts, "a"))

	assert.Equal(t, []string{"a", "b"}, cat.Items(prompts))
	assert.Equal(t, []types.ItemRef{testutil.Ref(prompts, "a")}, cat.Members("c"))
	assert.Equal(t, "prompts/a.prompt.md", coll.Members[0].Path)
	assert.Equal(t, "prompt", coll.Members[0].Kind)
}

// pkg/style/renderer_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test rendering of command results without colors

package style

import (
	"errors"
	"testing"

	"github.com/arthur-debert/awesome-copilot/pkg/catalog"
	"github.com/arthur-debert/awesome-copilot/pkg/commands"
	"github.com/arthur-debert/awesome-copilot/pkg/commands/newcollection"
	"github.com/arthur-debert/awesome-copilot/pkg/commands/show"
	apperrors "github.com/arthur-debert/awesome-copilot/pkg/errors"
	"github.com/arthur-debert/awesome-copilot/pkg/toggle"
	"github.com/arthur-debert/awesome-copilot/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ref(s types.Section, name string) types.ItemRef {
	return types.ItemRef{Section: s, Name: name}
}

func TestRenderList(t *testing.T) {
	plain(t)
	r := NewTerminalRenderer(false)

	out := r.RenderList(&commands.ListResult{
		ConfigPath: "/work/awesome-copilot.yml",
		Sections: []commands.SectionListing{
			{
				Section: types.SectionPrompts,
				Enabled: 2,
				Items: []commands.ItemListing{
					{Name: "itemA", Enabled: true, Reason: types.ReasonCollection, Collections: []string{"testing"}},
					{Name: "itemB", Enabled: true, Reason: types.ReasonExplicit, Flag: types.FlagOn},
					{Name: "loner", Enabled: false, Reason: types.ReasonDisabled},
				},
				Footprint: commands.Footprint{Section: types.SectionPrompts, Characters: 46000, Limit: 45000, Level: commands.FootprintExceeded},
			},
			{Section: types.SectionChatModes},
		},
		ShowCollections:    true,
		EnabledCollections: 1,
		Collections: []commands.CollectionListing{
			{Name: "testing", Title: "Testing Tools", Enabled: true, Members: 3},
			{Name: "broken", LoadErr: errors.New("bad yaml")},
		},
	})

	assert.Contains(t, out, "Configuration: /work/awesome-copilot.yml")
	assert.Contains(t, out, "Prompts (2/3 enabled, ~46,000 characters)")
	assert.Contains(t, out, "  ✓ itemA (via testing)")
	assert.Contains(t, out, "  ✓ itemB (explicitly enabled)")
	assert.Contains(t, out, "  ✗ loner")
	assert.NotContains(t, out, "loner (")
	assert.Contains(t, out, "above the 45,000 limit")
	assert.Contains(t, out, "Chat Modes (0/0 enabled)")
	assert.Contains(t, out, "No items in the catalog")
	assert.Contains(t, out, "Collections (1/2 enabled)")
	assert.Contains(t, out, "✓ testing (Testing Tools, 3 items)")
	assert.Contains(t, out, "✗ broken (failed to load: bad yaml)")
}

func TestRenderList_WithoutCollections(t *testing.T) {
	plain(t)
	out := NewTerminalRenderer(false).RenderList(&commands.ListResult{
		ConfigPath: "c.yml",
		Sections:   []commands.SectionListing{{Section: types.SectionInstructions}},
	})
	assert.Contains(t, out, "Instructions (0/0 enabled)")
	assert.NotContains(t, out, "Collections")
}

func TestRenderFootprint(t *testing.T) {
	plain(t)
	r := NewTerminalRenderer(false)

	assert.Empty(t, r.RenderFootprint(commands.Footprint{Section: types.SectionPrompts, Characters: 10, Limit: 100}))
	assert.Contains(t,
		r.RenderFootprint(commands.Footprint{Section: types.SectionInstructions, Characters: 85000, Limit: 90000, Level: commands.FootprintApproaching}),
		"Enabled instructions total ~85,000 characters, approaching the 90,000 limit.")
}

func TestRenderToggle(t *testing.T) {
	plain(t)
	r := NewTerminalRenderer(false)
	prompts := commands.Target{Section: types.SectionPrompts}

	tests := []struct {
		name     string
		result   *commands.ToggleResult
		contains []string
		excludes []string
	}{
		{
			name: "collection enabled",
			result: &commands.ToggleResult{
				Target: commands.Target{Collections: true}, Name: "testing",
				Collection: &toggle.CollectionResult{Name: "testing", Current: true, Changed: true,
					Delta: types.Delta{Enabled: []types.ItemRef{ref(types.SectionPrompts, "itemA")}}},
				Enabled: 1, Available: 2, Saved: true,
			},
			contains: []string{"Enabled collection testing", "+ prompts/itemA", "Collections: 1/2 enabled", "awesome-copilot apply"},
		},
		{
			name: "collection unchanged",
			result: &commands.ToggleResult{
				Target: commands.Target{Collections: true}, Name: "testing",
				Collection: &toggle.CollectionResult{Name: "testing", Current: false},
			},
			contains: []string{"Collection testing is already disabled"},
			excludes: []string{"awesome-copilot apply", "Dry run"},
		},
		{
			name: "item disabled",
			result: &commands.ToggleResult{
				Target: prompts, Name: "itemA",
				Item: &toggle.ItemResult{Ref: ref(types.SectionPrompts, "itemA"), Previous: types.FlagUnset, Current: types.FlagOff, Changed: true,
					Delta: types.Delta{Disabled: []types.ItemRef{ref(types.SectionPrompts, "itemA")}}},
			},
			contains: []string{"Disabled prompt itemA", "- prompts/itemA", "Dry run, configuration not saved"},
		},
		{
			name: "item reset",
			result: &commands.ToggleResult{
				Target: prompts, Name: "itemA",
				Item:  &toggle.ItemResult{Previous: types.FlagOff, Current: types.FlagUnset, Changed: true},
				Saved: true,
			},
			contains: []string{"Reset prompt itemA, it follows its collections again"},
		},
		{
			name: "item unchanged",
			result: &commands.ToggleResult{
				Target: prompts, Name: "itemA",
				Item: &toggle.ItemResult{Previous: types.FlagOn, Current: types.FlagOn},
			},
			contains: []string{"Prompt itemA is already on"},
		},
		{
			name: "all instructions",
			result: &commands.ToggleResult{
				Target: commands.Target{Section: types.SectionInstructions}, Name: commands.AllItems,
				All:              &toggle.AllResult{Section: types.SectionInstructions, Flag: types.FlagOn, Updated: 2},
				WideInstructions: true, Saved: true,
			},
			contains: []string{"Enabled 2 instructions", "Every instruction is now enabled"},
		},
		{
			name: "all unchanged",
			result: &commands.ToggleResult{
				Target: prompts, Name: commands.AllItems,
				All: &toggle.AllResult{Section: types.SectionPrompts, Flag: types.FlagOff},
			},
			contains: []string{"All prompts are already off"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := r.RenderToggle(tt.result)
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func applyResult(sync *types.SyncResult) *commands.ApplyResult {
	effective := types.NewEffectiveState()
	effective.Set(ref(types.SectionPrompts, "itemA"), types.ItemState{Enabled: true, Reason: types.ReasonCollection})
	effective.Set(ref(types.SectionPrompts, "loner"), types.ItemState{Reason: types.ReasonDisabled})
	return &commands.ApplyResult{
		OutputDir:   "/work/.awesome-copilot",
		Effective:   effective,
		Collections: []string{"testing"},
		Sync:        sync,
	}
}

func TestRenderApply(t *testing.T) {
	plain(t)
	r := NewTerminalRenderer(false)

	out := r.RenderApply(applyResult(&types.SyncResult{
		Copied:  []types.ItemRef{ref(types.SectionPrompts, "itemA")},
		Removed: []types.ItemRef{ref(types.SectionChatModes, "old")},
	}))
	assert.Contains(t, out, "Output: /work/.awesome-copilot")
	assert.Contains(t, out, "+ prompts/itemA")
	assert.Contains(t, out, "- chatmodes/old")
	assert.Contains(t, out, "Enabled: 1 prompts, 0 instructions, 0 chat modes")
	assert.Contains(t, out, "Collections: testing")
	assert.Contains(t, out, "1 copied, 0 unchanged, 1 removed")
}

func TestRenderApply_CachedAndFailures(t *testing.T) {
	plain(t)
	r := NewTerminalRenderer(false)

	out := r.RenderApply(applyResult(&types.SyncResult{
		Cached:  true,
		Skipped: []types.ItemRef{ref(types.SectionPrompts, "itemA")},
	}))
	assert.Contains(t, out, "Up to date, 1 items unchanged since the last apply")

	out = r.RenderApply(applyResult(&types.SyncResult{
		Failures: []types.SyncFailure{{Ref: ref(types.SectionPrompts, "itemA"), Err: errors.New("permission denied")}},
	}))
	assert.Contains(t, out, "✗ prompts/itemA permission denied")
	assert.Contains(t, out, "0 copied, 0 unchanged, 0 removed, 1 failed")
}

func TestRenderValidate(t *testing.T) {
	plain(t)
	r := NewTerminalRenderer(false)

	assert.Contains(t, r.RenderValidate(&catalog.Report{Checked: 3}), "3 collections checked, no issues found")

	out := r.RenderValidate(&catalog.Report{
		Checked: 2,
		Issues: []catalog.Issue{
			{Collection: "broken", File: "collections/broken.collection.yml", Field: "id", Message: "must match ^[a-z0-9-]+$"},
			{Collection: "broken", File: "collections/broken.collection.yml", Field: "items", Message: "missing file"},
		},
	})
	assert.Contains(t, out, "broken collections/broken.collection.yml")
	assert.Contains(t, out, "✗ id: must match ^[a-z0-9-]+$")
	assert.Contains(t, out, "2 issues in 2 collections checked")
}

func TestRenderNewCollection(t *testing.T) {
	plain(t)
	out := NewTerminalRenderer(false).RenderNewCollection(&newcollection.NewCollectionResult{
		ID: "go-apis", Name: "Go Apis", Path: "collections/go-apis.collection.yml",
	})
	assert.Contains(t, out, "Created collection go-apis (Go Apis)")
	assert.Contains(t, out, "collections/go-apis.collection.yml")
}

func TestRenderInit(t *testing.T) {
	plain(t)
	r := NewTerminalRenderer(false)
	res := &commands.InitResult{
		ConfigPath:     "/work/awesome-copilot.yml",
		Collections:    []string{"testing"},
		VSCodeSettings: "/work/.vscode/settings.json",
		VSCodeUpdated:  true,
	}

	out := r.RenderInit(res)
	assert.Contains(t, out, "Created /work/awesome-copilot.yml")
	assert.Contains(t, out, "1 collections listed, all disabled")
	assert.Contains(t, out, "+ Updated /work/.vscode/settings.json")
	assert.NotContains(t, out, "previous settings were replaced")

	res.VSCodeWarning = "/work/.vscode/settings.json is not valid JSON; previous settings were replaced"
	out = r.RenderInit(res)
	assert.Contains(t, out, res.VSCodeWarning)
}

func TestRenderInstructions_DryRun(t *testing.T) {
	plain(t)
	out := NewTerminalRenderer(false).RenderInstructions(&commands.InstructionsResult{
		File:    ".github/copilot-instructions.md",
		Content: "# Instructions\n",
	})
	assert.Contains(t, out, "# Instructions\n")
	assert.Contains(t, out, "Dry run, .github/copilot-instructions.md not written")
}

func TestRenderShow(t *testing.T) {
	plain(t)
	out, err := NewTerminalRenderer(false).RenderShow(&show.ShowResult{
		Ref:         ref(types.SectionInstructions, "go"),
		Path:        "/catalog/instructions/go.instructions.md",
		Document:    catalog.ParseDocument("---\ntitle: Go Style\napplyTo: '**/*.go'\n---\nUse gofmt before committing.\n"),
		Collections: []string{"testing"},
	})
	require.NoError(t, err)
	assert.Contains(t, out, "Go Style instructions/go")
	assert.Contains(t, out, "Apply to: **/*.go")
	assert.Contains(t, out, "Collections: testing")
	assert.Contains(t, out, "Use gofmt before committing.")
}

func TestRenderMarkdown(t *testing.T) {
	out, err := RenderMarkdown("# Heading\n\nSome *text*.", false, 0)
	require.NoError(t, err)
	assert.Contains(t, out, "Heading")
	assert.Contains(t, out, "text")
}

func TestRenderError(t *testing.T) {
	plain(t)
	r := NewTerminalRenderer(false)

	assert.Equal(t, "Error: boom", r.RenderError(errors.New("boom")))
	assert.Equal(t, "Error: unknown prompt 'x'",
		r.RenderError(apperrors.New(apperrors.ErrNotFound, "unknown prompt 'x'")))
	assert.Equal(t, "Error: failed to save: disk full",
		r.RenderError(apperrors.Wrap(errors.New("disk full"), apperrors.ErrPersist, "failed to save")))
}

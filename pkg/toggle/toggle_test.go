// pkg/toggle/toggle_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test collection and item toggles, isolation of item overrides

package toggle

import (
	"testing"

	"github.com/arthur-debert/awesome-copilot/pkg/catalog"
	"github.com/arthur-debert/awesome-copilot/pkg/config"
	"github.com/arthur-debert/awesome-copilot/pkg/errors"
	"github.com/arthur-debert/awesome-copilot/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func p(name string) types.ItemRef {
	return types.ItemRef{Section: types.SectionPrompts, Name: name}
}

func newCatalog() *catalog.Catalog {
	cat := catalog.New("/catalog")
	for _, name := range []string{"itemA", "itemB", "loner"} {
		cat.AddItem(p(name))
	}
	cat.AddItem(types.ItemRef{Section: types.SectionInstructions, Name: "go"})
	cat.AddCollection("testing", p("itemA"), p("itemB"))
	cat.AddCollection("empty")
	return cat
}

func parse(t *testing.T, content string) *config.Config {
	t.Helper()
	cfg, err := config.Parse([]byte(content))
	require.NoError(t, err)
	return cfg
}

func snapshot(cfg *config.Config) [types.SectionCount]map[string]types.Flag {
	var out [types.SectionCount]map[string]types.Flag
	for _, s := range types.Sections {
		out[s] = cfg.Items(s)
	}
	return out
}

func TestCollection_DisableKeepsExplicitOff(t *testing.T) {
	cfg := parse(t, "collections:\n  testing: true\nprompts:\n  itemA: false\n")

	result, err := Collection(cfg, newCatalog(), "testing", false)
	require.NoError(t, err)

	assert.True(t, result.Changed)
	assert.True(t, result.Previous)
	assert.False(t, result.Current)
	assert.Equal(t, []types.ItemRef{p("itemB")}, result.Delta.Disabled)
	assert.NotContains(t, result.Delta.Disabled, p("itemA"))
	assert.Empty(t, result.Delta.Enabled)
	assert.False(t, cfg.Collections["testing"])
}

func TestCollection_Isolation(t *testing.T) {
	configs := []string{
		"",
		"prompts:\n  itemA: false\n  loner: true\n",
		"collections:\n  testing: true\nprompts:\n  itemB: true\ninstructions:\n  go: false\n",
		"prompts:\n  stale: true\nchatmodes:\n  other: false\n",
	}

	for _, content := range configs {
		for _, desired := range []bool{true, false} {
			cfg := parse(t, content)
			before := snapshot(cfg)

			_, err := Collection(cfg, newCatalog(), "testing", desired)
			require.NoError(t, err)

			assert.Equal(t, before, snapshot(cfg), "item flags changed for config %q", content)
			assert.Equal(t, desired, cfg.Collections["testing"])
		}
	}
}

func TestCollection_NoOp(t *testing.T) {
	tests := []struct {
		name    string
		config  string
		desired bool
	}{
		{"already enabled", "collections:\n  testing: true\n", true},
		{"already disabled", "collections:\n  testing: false\n", false},
		{"absent means disabled", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := parse(t, tt.config)
			before := cfg.Clone()

			result, err := Collection(cfg, newCatalog(), "testing", tt.desired)
			require.NoError(t, err)

			assert.False(t, result.Changed)
			assert.True(t, result.Delta.Empty())
			assert.Equal(t, before.Collections, cfg.Collections)
		})
	}
}

func TestCollection_EnableWithNoEffect(t *testing.T) {
	cfg := parse(t, "prompts:\n  itemA: false\n  itemB: false\n")

	result, err := Collection(cfg, newCatalog(), "testing", true)
	require.NoError(t, err)

	assert.True(t, result.Changed)
	assert.True(t, result.Delta.Empty(), "explicit overrides absorb the whole collection")
}

func TestCollection_Errors(t *testing.T) {
	cat := newCatalog()

	_, err := Collection(nil, cat, "testing", true)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	cfg := parse(t, "")
	_, err = Collection(cfg, cat, "", true)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	_, err = Collection(cfg, cat, "testin", true)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	assert.Equal(t, "testing", errors.Suggestion(err))
	assert.Empty(t, cfg.Collections, "failed toggles leave the config untouched")
}

func TestItem(t *testing.T) {
	cat := newCatalog()
	cfg := parse(t, "collections:\n  testing: true\n")

	result, err := Item(cfg, cat, p("itemA"), types.FlagOff)
	require.NoError(t, err)
	assert.True(t, result.Changed)
	assert.Equal(t, types.FlagUnset, result.Previous)
	assert.Equal(t, []types.ItemRef{p("itemA")}, result.Delta.Disabled)
	assert.Equal(t, types.FlagOff, cfg.Flag(p("itemA")))

	result, err = Item(cfg, cat, p("itemA"), types.FlagOff)
	require.NoError(t, err)
	assert.False(t, result.Changed)

	result, err = Item(cfg, cat, p("itemA"), types.FlagUnset)
	require.NoError(t, err)
	assert.True(t, result.Changed)
	assert.Equal(t, []types.ItemRef{p("itemA")}, result.Delta.Enabled, "reset lets the collection reach the item again")
	assert.Equal(t, types.FlagUnset, cfg.Flag(p("itemA")))
	assert.True(t, cfg.Collections["testing"], "item toggles never touch collections")
}

func TestItem_Errors(t *testing.T) {
	cat := newCatalog()
	cfg := parse(t, "")

	_, err := Item(nil, cat, p("itemA"), types.FlagOn)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	_, err = Item(cfg, cat, p(""), types.FlagOn)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	_, err = Item(cfg, cat, p("itemC"), types.FlagOn)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	assert.NotEmpty(t, errors.Suggestion(err))

	_, err = Item(cfg, cat, types.ItemRef{Section: types.SectionInstructions, Name: "itemA"}, types.FlagOn)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound), "names are scoped by section")
}

func TestAll(t *testing.T) {
	cat := newCatalog()
	cfg := parse(t, "prompts:\n  loner: true\n  stale: false\ninstructions:\n  go: true\n")

	result, err := All(cfg, cat, types.SectionPrompts, types.FlagOn)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Updated)
	assert.Equal(t, []types.ItemRef{p("itemA"), p("itemB")}, result.Delta.Enabled)
	assert.Equal(t, map[string]types.Flag{
		"itemA": types.FlagOn, "itemB": types.FlagOn, "loner": types.FlagOn, "stale": types.FlagOff,
	}, cfg.Items(types.SectionPrompts))
	assert.Equal(t, types.FlagOn, cfg.Flag(types.ItemRef{Section: types.SectionInstructions, Name: "go"}))

	result, err = All(cfg, cat, types.SectionPrompts, types.FlagUnset)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Updated)
	assert.Equal(t, map[string]types.Flag{"stale": types.FlagOff}, cfg.Items(types.SectionPrompts))

	_, err = All(cfg, cat, types.SectionChatModes, types.FlagOn)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

// pkg/paths/paths_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test catalog root discovery and XDG path derivation

package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/awesome-copilot/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name        string
		catalogRoot string
		envSetup    map[string]string
		validate    func(t *testing.T, p Paths)
	}{
		{
			name:        "explicit catalog root",
			catalogRoot: "/tmp/catalog",
			validate: func(t *testing.T, p Paths) {
				assert.Equal(t, "/tmp/catalog", p.CatalogRoot())
				assert.False(t, p.UsedFallback())
			},
		},
		{
			name:     "catalog root from env",
			envSetup: map[string]string{EnvCatalogRoot: "/env/catalog"},
			validate: func(t *testing.T, p Paths) {
				assert.Equal(t, "/env/catalog", p.CatalogRoot())
			},
		},
		{
			name:        "expand tilde in explicit path",
			catalogRoot: "~/awesome",
			validate: func(t *testing.T, p Paths) {
				home, _ := os.UserHomeDir()
				assert.Equal(t, filepath.Join(home, "awesome"), p.CatalogRoot())
			},
		},
		{
			name: "auto-detected root is absolute",
			validate: func(t *testing.T, p Paths) {
				assert.NotEmpty(t, p.CatalogRoot())
				assert.True(t, filepath.IsAbs(p.CatalogRoot()))
			},
		},
		{
			name: "directory overrides",
			envSetup: map[string]string{
				EnvConfigDir: "/custom/config",
				EnvStateDir:  "/custom/state",
			},
			catalogRoot: "/tmp/catalog",
			validate: func(t *testing.T, p Paths) {
				assert.Equal(t, "/custom/config", p.ConfigDir())
				assert.Equal(t, "/custom/config/settings.toml", p.SettingsPath())
				assert.Equal(t, "/custom/state", p.StateDir())
				assert.Equal(t, "/custom/state/awesome-copilot.log", p.LogFilePath())
			},
		},
		{
			name:        "state dir follows XDG_STATE_HOME",
			envSetup:    map[string]string{"XDG_STATE_HOME": "/xdg/state"},
			catalogRoot: "/tmp/catalog",
			validate: func(t *testing.T, p Paths) {
				assert.Equal(t, "/xdg/state/awesome-copilot", p.StateDir())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvCatalogRoot, "")
			t.Setenv(EnvConfigDir, "")
			t.Setenv(EnvStateDir, "")
			for k, v := range tt.envSetup {
				t.Setenv(k, v)
			}

			p, err := New(tt.catalogRoot)
			require.NoError(t, err)
			tt.validate(t, p)
		})
	}
}

func TestCatalogLayout(t *testing.T) {
	p, err := New("/catalog")
	require.NoError(t, err)

	assert.Equal(t, "/catalog/prompts", p.SectionDir(types.SectionPrompts))
	assert.Equal(t, "/catalog/chatmodes", p.SectionDir(types.SectionChatModes))
	assert.Equal(t, "/catalog/instructions/go.instructions.md",
		p.ItemPath(types.ItemRef{Section: types.SectionInstructions, Name: "go"}))
	assert.Equal(t, "/catalog/collections", p.CollectionsDir())
	assert.Equal(t, "/catalog/collections/testing.collection.yml", p.CollectionPath("testing"))
}

func TestSyncStatePath(t *testing.T) {
	t.Setenv(EnvStateDir, "/state")
	p, err := New("/catalog")
	require.NoError(t, err)

	a := p.SyncStatePath("/project/.awesome-copilot")
	b := p.SyncStatePath("/project/.awesome-copilot/")
	c := p.SyncStatePath("/other/.awesome-copilot")

	assert.Equal(t, a, b, "trailing separators must not change the key")
	assert.NotEqual(t, a, c)
	assert.Equal(t, "/state/sync", filepath.Dir(a))
	assert.Equal(t, ".toml", filepath.Ext(a))
}

func TestNormalizePath(t *testing.T) {
	p, err := New("/catalog")
	require.NoError(t, err)

	_, err = p.NormalizePath("")
	assert.Error(t, err)

	got, err := p.NormalizePath("/a/b/../c")
	require.NoError(t, err)
	assert.Equal(t, "/a/c", got)
}

// Package paths provides centralized path handling for awesome-copilot.
//
// It resolves the catalog root (the directory holding prompts/,
// instructions/, chatmodes/ and collections/) and the XDG directories the
// tool writes to:
//
//   - Config: $XDG_CONFIG_HOME/awesome-copilot (settings.toml)
//   - State: $XDG_STATE_HOME/awesome-copilot (log file, sync-state cache)
//
// # Environment Variables
//
//   - AWESOME_COPILOT_CATALOG_ROOT: catalog location
//   - AWESOME_COPILOT_CONFIG_DIR: override the config directory
//   - AWESOME_COPILOT_STATE_DIR: override the state directory
//
// # Usage
//
//	p, err := paths.New("") // auto-detect the catalog root
//	if err != nil {
//	    log.Fatal(err)
//	}
//	src := p.ItemPath(types.ItemRef{Section: types.SectionPrompts, Name: "review"})
package paths

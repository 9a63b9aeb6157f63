// Package commands implements the operations behind the CLI that work on a
// project configuration. Each command takes an XxxOptions struct and
// returns an XxxResult describing what happened; printing is left to the
// caller. Commands that only read or author the catalog live in the
// sub-packages.
package commands

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/awesome-copilot/pkg/catalog"
	"github.com/arthur-debert/awesome-copilot/pkg/commands/internal"
	"github.com/arthur-debert/awesome-copilot/pkg/config"
	"github.com/arthur-debert/awesome-copilot/pkg/errors"
	"github.com/arthur-debert/awesome-copilot/pkg/types"
)

// CollectionsTarget is the section argument naming collections.
const CollectionsTarget = "collections"

// Target is a section argument: one of the item sections or collections.
type Target struct {
	Section     types.Section
	Collections bool
}

func (t Target) String() string {
	if t.Collections {
		return CollectionsTarget
	}
	return t.Section.String()
}

// Label is the display name of the target.
func (t Target) Label() string {
	if t.Collections {
		return "Collections"
	}
	return t.Section.Info().Label
}

// Singular names one element of the target.
func (t Target) Singular() string {
	if t.Collections {
		return "collection"
	}
	return t.Section.Info().Singular
}

// ParseTarget reads a section argument, case-insensitively.
func ParseTarget(input string) (Target, error) {
	if strings.EqualFold(strings.TrimSpace(input), CollectionsTarget) {
		return Target{Collections: true}, nil
	}
	if s, ok := types.ParseSection(input); ok {
		return Target{Section: s}, nil
	}

	names := make([]string, 0, len(types.Sections)+1)
	for _, s := range types.Sections {
		names = append(names, s.String())
	}
	names = append(names, CollectionsTarget)
	return Target{}, errors.Newf(errors.ErrInvalidInput, "unknown section '%s', expected one of: %s", input, strings.Join(names, ", ")).
		WithDetail("section", input)
}

// workspace is what most commands load before doing anything.
type workspace struct {
	fs         types.FS
	configPath string
	cfg        *config.Config
	cat        *catalog.Catalog
}

func loadWorkspace(fs types.FS, catalogRoot, configPath string) (*workspace, error) {
	fs = internal.OrOS(fs)
	if configPath == "" {
		configPath = config.DefaultConfigFile
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	cat, err := internal.LoadCatalog(fs, catalogRoot)
	if err != nil {
		return nil, err
	}
	return &workspace{fs: fs, configPath: configPath, cfg: cfg, cat: cat}, nil
}

// projectDir is the directory holding the configuration file. Relative
// paths found in the configuration are resolved against it.
func projectDir(configPath string) string {
	if abs, err := filepath.Abs(configPath); err == nil {
		return filepath.Dir(abs)
	}
	return filepath.Dir(configPath)
}

func resolveProjectPath(configPath, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(projectDir(configPath), p)
}

// OutputDir returns the output directory of a configuration loaded from
// configPath.
func OutputDir(cfg *config.Config, configPath string) string {
	return resolveProjectPath(configPath, cfg.OutputDirectory())
}

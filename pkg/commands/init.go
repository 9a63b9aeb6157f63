package commands

import (
	"os"
	"path/filepath"
	"time"

	"github.com/arthur-debert/awesome-copilot/pkg/commands/internal"
	"github.com/arthur-debert/awesome-copilot/pkg/config"
	"github.com/arthur-debert/awesome-copilot/pkg/errors"
	"github.com/arthur-debert/awesome-copilot/pkg/logging"
	"github.com/arthur-debert/awesome-copilot/pkg/syncer"
	"github.com/arthur-debert/awesome-copilot/pkg/types"
)

// OutputReadme is written at the root of a new output directory.
const OutputReadme = `# Awesome Copilot Configuration

This directory contains your project's GitHub Copilot customizations.

## Directory Structure

- ` + "`prompts/`" + ` - Custom prompts for Copilot Chat
- ` + "`instructions/`" + ` - Instructions that auto-apply to your coding
- ` + "`chatmodes/`" + ` - Chat modes for enhanced conversations

## Usage

1. Edit the awesome-copilot configuration file in your project root
2. Run ` + "`awesome-copilot apply`" + ` to update files
3. VS Code automatically detects changes

Files in the sub-directories are managed by awesome-copilot: anything not
enabled in the configuration is removed on the next apply.
`

// InitOptions defines the options for the Init command.
type InitOptions struct {
	FS          types.FS
	CatalogRoot string
	ConfigPath  string

	// Now stamps the generated header; defaults to time.Now
	Now func() time.Time
}

// InitResult is the outcome of the Init command.
type InitResult struct {
	ConfigPath  string
	OutputDir   string
	Collections []string

	VSCodeSettings string
	// VSCodeUpdated is true when an existing settings file was merged into
	VSCodeUpdated bool
	// VSCodeWarning is set when an existing settings file could not be
	// parsed and was replaced
	VSCodeWarning string

	CreatedDirs []string
	Readme      string
}

// Init writes a new configuration listing every collection as disabled,
// prepares the output directory and points VS Code at it. An existing
// configuration file is never overwritten.
func Init(opts InitOptions) (*InitResult, error) {
	log := logging.GetLogger("commands.init")
	log.Debug().Str("command", "Init").Str("config", opts.ConfigPath).Msg("Executing command")

	fs := internal.OrOS(opts.FS)
	configPath := opts.ConfigPath
	if configPath == "" {
		configPath = config.DefaultConfigFile
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	if _, err := fs.Stat(configPath); err == nil {
		return nil, errors.Newf(errors.ErrAlreadyExists, "configuration file %s already exists", configPath).
			WithDetail("path", configPath)
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to check %s", configPath)
	}

	cat, err := internal.LoadCatalog(fs, opts.CatalogRoot)
	if err != nil {
		return nil, err
	}

	cfg := config.NewWithCollections(cat.CollectionNames(), now())
	if err := cfg.Save(configPath); err != nil {
		return nil, err
	}

	result := &InitResult{
		ConfigPath:  configPath,
		OutputDir:   OutputDir(cfg, configPath),
		Collections: cat.CollectionNames(),
	}

	dirs := []string{result.OutputDir}
	for _, s := range types.Sections {
		dirs = append(dirs, syncer.SectionDir(result.OutputDir, s))
	}
	for _, dir := range dirs {
		if _, err := fs.Stat(dir); err == nil {
			continue
		}
		if err := fs.MkdirAll(dir, 0755); err != nil {
			return nil, errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", dir)
		}
		result.CreatedDirs = append(result.CreatedDirs, dir)
	}

	readme := filepath.Join(result.OutputDir, "README.md")
	if _, err := fs.Stat(readme); os.IsNotExist(err) {
		if err := fs.WriteFile(readme, []byte(OutputReadme), 0644); err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", readme)
		}
		result.Readme = readme
	}

	project := projectDir(configPath)
	var locations [types.SectionCount]string
	for _, s := range types.Sections {
		locations[s] = relativeLocation(project, syncer.SectionDir(result.OutputDir, s))
	}
	result.VSCodeSettings = filepath.Join(project, VSCodeSettingsFile)
	result.VSCodeUpdated, result.VSCodeWarning, err = mergeVSCodeSettings(fs, result.VSCodeSettings, locations)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("command", "Init").
		Str("config", configPath).
		Int("collections", len(result.Collections)).
		Msg("Command finished")
	return result, nil
}

// relativeLocation expresses dir relative to the project, with forward
// slashes, as VS Code expects.
func relativeLocation(project, dir string) string {
	rel, err := filepath.Rel(project, dir)
	if err != nil {
		return filepath.ToSlash(dir)
	}
	return filepath.ToSlash(rel)
}

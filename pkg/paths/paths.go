package paths

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/awesome-copilot/pkg/errors"
	"github.com/arthur-debert/awesome-copilot/pkg/types"
)

// Environment variable names
const (
	// EnvCatalogRoot points at the catalog directory
	EnvCatalogRoot = "AWESOME_COPILOT_CATALOG_ROOT"

	// EnvConfigDir overrides the XDG config directory
	EnvConfigDir = "AWESOME_COPILOT_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory
	EnvStateDir = "AWESOME_COPILOT_STATE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Fixed names inside the catalog and the XDG directories.
const (
	// AppDirName is the directory name used under the XDG base directories
	AppDirName = "awesome-copilot"

	// CollectionsDir is the catalog directory holding collection manifests
	CollectionsDir = "collections"

	// CollectionExt is the extension of a collection manifest
	CollectionExt = ".collection.yml"

	// SettingsFileName is the tool settings file under the config directory
	SettingsFileName = "settings.toml"

	// SyncStateDir is the subdirectory of the state directory for sync caches
	SyncStateDir = "sync"

	// LogFileName is the name of the log file
	LogFileName = "awesome-copilot.log"
)

// Paths provides centralized path management for awesome-copilot
type Paths interface {
	CatalogRoot() string
	UsedFallback() bool
	SectionDir(section types.Section) string
	ItemPath(ref types.ItemRef) string
	CollectionsDir() string
	CollectionPath(name string) string
	ConfigDir() string
	SettingsPath() string
	StateDir() string
	SyncStatePath(outputDir string) string
	LogFilePath() string
	NormalizePath(path string) (string, error)
}

type paths struct {
	catalogRoot  string
	usedFallback bool
	configDir    string
	stateDir     string
}

// New creates a Paths instance. An empty catalogRoot is resolved from
// AWESOME_COPILOT_CATALOG_ROOT, then the enclosing git repository, then the
// current working directory.
func New(catalogRoot string) (Paths, error) {
	p := &paths{}

	root, fallback, err := findCatalogRoot(catalogRoot)
	if err != nil {
		return nil, err
	}
	p.catalogRoot = root
	p.usedFallback = fallback

	p.configDir = dirFromEnv(EnvConfigDir, filepath.Join(xdg.ConfigHome, AppDirName))
	p.stateDir = dirFromEnv(EnvStateDir, filepath.Join(stateHome(), AppDirName))

	return p, nil
}

func findCatalogRoot(explicit string) (string, bool, error) {
	if explicit != "" {
		root, err := normalize(explicit)
		return root, false, err
	}

	if env := os.Getenv(EnvCatalogRoot); env != "" {
		root, err := normalize(env)
		return root, false, err
	}

	if gitRoot, err := findGitRoot(); err == nil && gitRoot != "" {
		return gitRoot, false, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", false, errors.Wrap(err, errors.ErrFileAccess, "failed to get current directory")
	}
	return cwd, true, nil
}

func findGitRoot() (string, error) {
	out, err := exec.Command("git", "rev-parse", "--show-toplevel").Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

func dirFromEnv(envVar, fallback string) string {
	if v := os.Getenv(envVar); v != "" {
		return expandHome(v)
	}
	return fallback
}

// stateHome honours XDG_STATE_HOME set after process start, which the xdg
// package only reads once at init.
func stateHome() string {
	if v := os.Getenv("XDG_STATE_HOME"); v != "" {
		return v
	}
	return xdg.StateHome
}

func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}
	return path
}

func normalize(path string) (string, error) {
	if path == "" {
		return "", errors.New(errors.ErrInvalidInput, "empty path")
	}
	abs, err := filepath.Abs(expandHome(path))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path")
	}
	return filepath.Clean(abs), nil
}

func (p *paths) CatalogRoot() string {
	return p.catalogRoot
}

// UsedFallback returns true if the current working directory was used as fallback
func (p *paths) UsedFallback() bool {
	return p.usedFallback
}

// SectionDir returns the catalog directory holding a section's items
func (p *paths) SectionDir(section types.Section) string {
	return filepath.Join(p.catalogRoot, section.Info().Dir)
}

// ItemPath returns the source file of an item
func (p *paths) ItemPath(ref types.ItemRef) string {
	return filepath.Join(p.SectionDir(ref.Section), ref.Section.FileName(ref.Name))
}

func (p *paths) CollectionsDir() string {
	return filepath.Join(p.catalogRoot, CollectionsDir)
}

// CollectionPath returns the manifest path of a collection
func (p *paths) CollectionPath(name string) string {
	return filepath.Join(p.CollectionsDir(), name+CollectionExt)
}

func (p *paths) ConfigDir() string {
	return p.configDir
}

// SettingsPath returns the user settings file
func (p *paths) SettingsPath() string {
	return filepath.Join(p.configDir, SettingsFileName)
}

func (p *paths) StateDir() string {
	return p.stateDir
}

// SyncStatePath returns the cache file recording the last sync into
// outputDir. Each output directory gets its own file, keyed by a hash of
// its absolute path.
func (p *paths) SyncStatePath(outputDir string) string {
	abs, err := filepath.Abs(outputDir)
	if err != nil {
		abs = outputDir
	}
	sum := sha256.Sum256([]byte(filepath.Clean(abs)))
	return filepath.Join(p.stateDir, SyncStateDir, hex.EncodeToString(sum[:8])+".toml")
}

func (p *paths) LogFilePath() string {
	return filepath.Join(p.stateDir, LogFileName)
}

// NormalizePath expands ~, makes the path absolute and cleans it
func (p *paths) NormalizePath(path string) (string, error) {
	return normalize(path)
}

// ExpandHome expands a leading ~ to the home directory
func ExpandHome(path string) string {
	return expandHome(path)
}

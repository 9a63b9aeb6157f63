package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/awesome-copilot/pkg/types"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

//go:embed embedded/defaults.toml
var defaultSettings []byte

// EnvPrefix is the prefix of environment variables mapped onto settings.
// AWESOME_COPILOT_CATALOG_ROOT sets catalog.root.
const EnvPrefix = "AWESOME_COPILOT_"

// Color modes accepted by output.color
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Settings are the tool's own settings, as opposed to the user
// configuration file.
type Settings struct {
	Catalog CatalogSettings `koanf:"catalog"`
	Config  FileSettings    `koanf:"config"`
	Context ContextSettings `koanf:"context"`
	Output  OutputSettings  `koanf:"output"`
}

type CatalogSettings struct {
	Root string `koanf:"root"`
}

type FileSettings struct {
	File string `koanf:"file"`
}

type ContextSettings struct {
	// Limits are per-section character budgets for enabled items
	Limits map[string]int `koanf:"limits"`
}

type OutputSettings struct {
	Color string `koanf:"color"`
}

// Limit returns the character budget of a section, 0 when none is set.
func (s *Settings) Limit(section types.Section) int {
	return s.Context.Limits[section.String()]
}

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// LoadSettings layers the embedded defaults, the settings file at
// settingsPath (when it exists), AWESOME_COPILOT_* variables and finally
// overrides, keyed by setting path ("output.color"), usually built from
// command line flags.
func LoadSettings(settingsPath string, overrides map[string]interface{}) (*Settings, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultSettings}, toml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load default settings: %w", err)
	}

	// 2. User settings file
	if path := findSettingsFile(settingsPath); path != "" {
		if err := k.Load(file.Provider(path), settingsParser(path)); err != nil {
			return nil, fmt.Errorf("failed to load settings from %s: %w", path, err)
		}
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load settings from environment: %w", err)
	}

	// 4. Overrides
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, fmt.Errorf("failed to apply setting overrides: %w", err)
		}
	}

	var s Settings
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &s,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
				mapstructure.TextUnmarshallerHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &s, unmarshalConf); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}

	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// findSettingsFile returns the settings file to read. A missing TOML file
// falls back to a YAML file of the same name.
func findSettingsFile(settingsPath string) string {
	if settingsPath == "" {
		return ""
	}
	candidates := []string{settingsPath}
	if ext := filepath.Ext(settingsPath); ext == ".toml" {
		base := strings.TrimSuffix(settingsPath, ext)
		candidates = append(candidates, base+".yaml", base+".yml")
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

func settingsParser(path string) koanf.Parser {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

// envKey maps AWESOME_COPILOT_CONTEXT_LIMITS_PROMPTS to context.limits.prompts.
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
}

func (s *Settings) validate() error {
	switch s.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	case "":
		s.Output.Color = ColorAuto
	default:
		return fmt.Errorf("invalid output.color %q: expected auto, always or never", s.Output.Color)
	}
	if s.Config.File == "" {
		s.Config.File = DefaultConfigFile
	}
	for key, limit := range s.Context.Limits {
		if limit < 0 {
			return fmt.Errorf("invalid context.limits.%s: %d is negative", key, limit)
		}
	}
	return nil
}

// Package config holds the two kinds of configuration awesome-copilot reads.
//
// Config is the user configuration file (awesome-copilot.config.yml): the
// tri-state item flags, the collection flags and opaque project metadata.
// It is parsed and written with a yaml.v3 node tree so comments and unknown
// keys survive a read-modify-write cycle.
//
// Settings are the tool's own settings, layered with koanf: embedded
// defaults, the user settings file (TOML, or YAML when no TOML file
// exists), AWESOME_COPILOT_* variables, then command line overrides.
package config

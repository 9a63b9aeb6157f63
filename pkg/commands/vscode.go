package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arthur-debert/awesome-copilot/pkg/errors"
	"github.com/arthur-debert/awesome-copilot/pkg/logging"
	"github.com/arthur-debert/awesome-copilot/pkg/types"
	"github.com/ohler55/ojg"
	"github.com/ohler55/ojg/oj"
	"github.com/ohler55/ojg/sen"
)

// VSCodeSettingsFile is the workspace settings file, relative to the
// project directory.
var VSCodeSettingsFile = filepath.Join(".vscode", "settings.json")

// vscodeLocationKeys are the chat settings listing the directories VS Code
// loads each section from.
var vscodeLocationKeys = [types.SectionCount]string{
	types.SectionPrompts:      "chat.promptFilesLocations",
	types.SectionInstructions: "chat.instructionsFilesLocations",
	types.SectionChatModes:    "chat.modeFilesLocations",
}

// mergeVSCodeSettings points the chat location settings at the output
// sub-directories, keeping every other setting and location. Settings
// files with comments are accepted; the comments are not written back.
// It reports whether the file existed, and a warning when an existing
// file could not be read as a settings object and was replaced.
func mergeVSCodeSettings(fs types.FS, path string, locations [types.SectionCount]string) (bool, string, error) {
	settings := map[string]interface{}{}
	existed := false
	warning := ""

	data, err := fs.ReadFile(path)
	switch {
	case err == nil:
		existed = true
		parsed, perr := sen.Parse(data)
		m, ok := parsed.(map[string]interface{})
		switch {
		case perr != nil:
			warning = fmt.Sprintf("%s is not valid JSON (%v); previous settings were replaced", path, perr)
		case !ok:
			warning = fmt.Sprintf("%s does not hold a settings object; previous settings were replaced", path)
		default:
			settings = m
		}
		if warning != "" {
			logger := logging.GetLogger("commands.vscode")
			logger.Warn().Str("path", path).AnErr("parse_error", perr).Msg("Replacing unreadable VS Code settings")
		}
	case !os.IsNotExist(err):
		return false, "", errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", path)
	}

	for _, s := range types.Sections {
		key := vscodeLocationKeys[s]
		entry, ok := settings[key].(map[string]interface{})
		if !ok {
			entry = map[string]interface{}{}
		}
		entry[locations[s]] = true
		settings[key] = entry
	}

	out := oj.JSON(settings, &ojg.Options{Indent: 2, Sort: true})
	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return existed, warning, errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", filepath.Dir(path))
	}
	if err := fs.WriteFile(path, []byte(out+"\n"), 0644); err != nil {
		return existed, warning, errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path)
	}
	return existed, warning, nil
}

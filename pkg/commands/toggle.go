package commands

import (
	"github.com/arthur-debert/awesome-copilot/pkg/config"
	"github.com/arthur-debert/awesome-copilot/pkg/errors"
	"github.com/arthur-debert/awesome-copilot/pkg/logging"
	"github.com/arthur-debert/awesome-copilot/pkg/resolver"
	"github.com/arthur-debert/awesome-copilot/pkg/toggle"
	"github.com/arthur-debert/awesome-copilot/pkg/types"
)

// AllItems is the name argument addressing every item of a section.
const AllItems = "all"

// ToggleOptions defines the options for the Toggle command.
type ToggleOptions struct {
	FS          types.FS
	CatalogRoot string
	ConfigPath  string

	Target Target
	// Name is an item, a collection or AllItems
	Name string
	// State is an on/off/reset token; empty flips the current state
	State string

	Settings *config.Settings

	// DryRun computes the result without writing the configuration
	DryRun bool
}

// ToggleResult is the outcome of the Toggle command. Exactly one of
// Collection, Item and All is set.
type ToggleResult struct {
	ConfigPath string
	Target     Target
	Name       string

	Collection *toggle.CollectionResult
	Item       *toggle.ItemResult
	All        *toggle.AllResult

	// Enabled and Available count the target after the change
	Enabled   int
	Available int
	Footprint Footprint

	// WideInstructions is set when every instruction was just enabled
	WideInstructions bool
	Saved            bool
}

// Changed reports whether the configuration was modified.
func (r *ToggleResult) Changed() bool {
	switch {
	case r.Collection != nil:
		return r.Collection.Changed
	case r.Item != nil:
		return r.Item.Changed
	case r.All != nil:
		return r.All.Updated > 0
	}
	return false
}

// Delta returns the effective changes caused by the toggle.
func (r *ToggleResult) Delta() types.Delta {
	switch {
	case r.Collection != nil:
		return r.Collection.Delta
	case r.Item != nil:
		return r.Item.Delta
	case r.All != nil:
		return r.All.Delta
	}
	return types.Delta{}
}

// Toggle sets the state of a collection, an item or every item of a
// section and saves the configuration when it changed.
func Toggle(opts ToggleOptions) (*ToggleResult, error) {
	log := logging.GetLogger("commands.toggle")
	log.Debug().
		Str("command", "Toggle").
		Str("target", opts.Target.String()).
		Str("name", opts.Name).
		Str("state", opts.State).
		Msg("Executing command")

	if opts.Name == "" {
		return nil, errors.Newf(errors.ErrInvalidInput, "%s name is required", opts.Target.Singular())
	}

	var (
		flag     types.Flag
		hasState bool
	)
	if opts.State != "" {
		var ok bool
		if flag, ok = types.ParseFlag(opts.State); !ok {
			return nil, errors.Newf(errors.ErrInvalidInput, "state must be 'on', 'off' or 'reset', got '%s'", opts.State)
		}
		hasState = true
	}

	ws, err := loadWorkspace(opts.FS, opts.CatalogRoot, opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	result := &ToggleResult{ConfigPath: ws.configPath, Target: opts.Target, Name: opts.Name}

	switch {
	case opts.Target.Collections:
		err = toggleCollection(ws, result, flag, hasState)
	case opts.Name == AllItems:
		err = toggleAll(ws, result, flag, hasState)
	default:
		err = toggleItem(ws, result, flag, hasState)
	}
	if err != nil {
		return nil, err
	}

	effective := resolver.Resolve(ws.cfg, ws.cat)
	if opts.Target.Collections {
		result.Enabled = len(ws.cfg.EnabledCollections())
		result.Available = len(ws.cat.CollectionNames())
	} else {
		s := opts.Target.Section
		result.Enabled = len(effective.Enabled(s))
		result.Available = len(ws.cat.Items(s))
		result.Footprint = computeFootprint(ws.fs, ws.cat, effective, s, opts.Settings)
	}

	if result.Changed() && !opts.DryRun {
		if err := ws.cfg.Save(ws.configPath); err != nil {
			return nil, err
		}
		result.Saved = true
	}

	log.Info().
		Str("command", "Toggle").
		Bool("changed", result.Changed()).
		Bool("saved", result.Saved).
		Int("enabled", len(result.Delta().Enabled)).
		Int("disabled", len(result.Delta().Disabled)).
		Msg("Command finished")
	return result, nil
}

func toggleCollection(ws *workspace, result *ToggleResult, flag types.Flag, hasState bool) error {
	desired := !ws.cfg.CollectionEnabled(result.Name)
	if hasState {
		value, ok := flag.Bool()
		if !ok {
			return errors.New(errors.ErrInvalidInput, "collections can only be turned 'on' or 'off'")
		}
		desired = value
	}

	res, err := toggle.Collection(ws.cfg, ws.cat, result.Name, desired)
	if err != nil {
		return err
	}
	result.Collection = res
	return nil
}

func toggleAll(ws *workspace, result *ToggleResult, flag types.Flag, hasState bool) error {
	if !hasState {
		return errors.New(errors.ErrInvalidInput, "specify 'on', 'off' or 'reset' when toggling all items")
	}

	res, err := toggle.All(ws.cfg, ws.cat, result.Target.Section, flag)
	if err != nil {
		return err
	}
	result.All = res
	result.WideInstructions = result.Target.Section == types.SectionInstructions && flag == types.FlagOn
	return nil
}

func toggleItem(ws *workspace, result *ToggleResult, flag types.Flag, hasState bool) error {
	ref := types.ItemRef{Section: result.Target.Section, Name: result.Name}
	if !hasState {
		// flipping acts on what the user sees, the effective state
		flag = types.FlagFromBool(!resolver.Resolve(ws.cfg, ws.cat).IsEnabled(ref))
	}

	res, err := toggle.Item(ws.cfg, ws.cat, ref, flag)
	if err != nil {
		return err
	}
	result.Item = res
	return nil
}

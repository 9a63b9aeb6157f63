package commands

import (
	"time"

	"github.com/arthur-debert/awesome-copilot/pkg/errors"
	"github.com/arthur-debert/awesome-copilot/pkg/logging"
	"github.com/arthur-debert/awesome-copilot/pkg/paths"
	"github.com/arthur-debert/awesome-copilot/pkg/resolver"
	"github.com/arthur-debert/awesome-copilot/pkg/state"
	"github.com/arthur-debert/awesome-copilot/pkg/syncer"
	"github.com/arthur-debert/awesome-copilot/pkg/types"
)

// ApplyOptions defines the options for the Apply command.
type ApplyOptions struct {
	FS          types.FS
	CatalogRoot string
	ConfigPath  string

	// Paths locates the sync-state cache; nil disables the cache
	Paths paths.Paths

	DryRun bool
	// Force ignores the sync-state cache
	Force bool

	// Now stamps the cache record; defaults to time.Now
	Now func() time.Time
}

// ApplyResult is the outcome of the Apply command.
type ApplyResult struct {
	ConfigPath string
	OutputDir  string

	Effective   *types.EffectiveState
	Collections []string
	Sync        *types.SyncResult

	// CacheErr is a non-fatal failure to read or write the sync-state cache
	CacheErr error
}

// Enabled returns the number of enabled items of a section.
func (r *ApplyResult) Enabled(s types.Section) int {
	return len(r.Effective.Enabled(s))
}

// Apply resolves the configuration and synchronizes the output directory
// with it. When the output still matches the last successful run, nothing
// is copied. Per-file failures are reported in the result and turn into a
// SYNC_FAILED error returned along with it.
func Apply(opts ApplyOptions) (*ApplyResult, error) {
	log := logging.GetLogger("commands.apply")
	log.Debug().Str("command", "Apply").Bool("dry_run", opts.DryRun).Bool("force", opts.Force).Msg("Executing command")

	ws, err := loadWorkspace(opts.FS, opts.CatalogRoot, opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	effective := resolver.Resolve(ws.cfg, ws.cat)
	result := &ApplyResult{
		ConfigPath:  ws.configPath,
		OutputDir:   OutputDir(ws.cfg, ws.configPath),
		Effective:   effective,
		Collections: ws.cfg.EnabledCollections(),
	}

	var (
		store       *state.Store
		sums        map[types.ItemRef]string
		fingerprint string
	)
	if opts.Paths != nil && !opts.DryRun {
		store = state.NewStore(ws.fs, opts.Paths.SyncStatePath(result.OutputDir))
		sums, err = state.Checksums(ws.fs, ws.cat, effective)
		if err != nil {
			log.Debug().Err(err).Msg("Could not fingerprint enabled items, cache disabled")
			store = nil
		}
		fingerprint = state.FingerprintOf(sums)
	}

	if store != nil && !opts.Force {
		if upToDate(ws, store, fingerprint, sums, result, effective) {
			result.Sync = &types.SyncResult{
				OutputDir: result.OutputDir,
				Cached:    true,
				Skipped:   effective.EnabledRefs(),
			}
			log.Info().Str("command", "Apply").Str("output", result.OutputDir).Msg("Output up to date, nothing to sync")
			return result, nil
		}
	}

	result.Sync, err = syncer.Sync(syncer.Options{
		FS:        ws.fs,
		Effective: effective,
		Catalog:   ws.cat,
		OutputDir: result.OutputDir,
		DryRun:    opts.DryRun,
	})
	if err != nil {
		return nil, err
	}

	if store != nil {
		if result.Sync.HasFailures() {
			result.CacheErr = store.Clear()
		} else {
			result.CacheErr = store.Save(state.New(result.OutputDir, fingerprint, effective, now()))
		}
		if result.CacheErr != nil {
			log.Warn().Err(result.CacheErr).Str("path", store.Path()).Msg("Sync state cache not updated")
		}
	}

	log.Info().
		Str("command", "Apply").
		Int("copied", len(result.Sync.Copied)).
		Int("removed", len(result.Sync.Removed)).
		Int("failures", len(result.Sync.Failures)).
		Msg("Command finished")

	if result.Sync.HasFailures() {
		return result, errors.Newf(errors.ErrSyncFailed, "%d file operation(s) failed while syncing %s", len(result.Sync.Failures), result.OutputDir).
			WithDetail("failures", len(result.Sync.Failures))
	}
	return result, nil
}

// upToDate reports whether the last successful sync had the same items and
// sources, and the output still holds them byte for byte.
func upToDate(ws *workspace, store *state.Store, fingerprint string, sums map[types.ItemRef]string, result *ApplyResult, effective *types.EffectiveState) bool {
	log := logging.GetLogger("commands.apply")

	prev, err := store.Load()
	if err != nil {
		result.CacheErr = err
		log.Warn().Err(err).Msg("Ignoring unreadable sync state")
		return false
	}
	if prev == nil || prev.Fingerprint != fingerprint {
		return false
	}
	return syncer.MatchesOutput(ws.fs, result.OutputDir, effective, sums)
}

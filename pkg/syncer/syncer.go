// Package syncer reconciles the output directory with the effective state.
//
// Each section has its own sub-directory under the output directory. After
// a run without failures the files of a sub-directory are exactly the
// enabled items of that section. Files with identical content are left
// untouched, so a second run in a row copies and removes nothing.
package syncer

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"

	"github.com/arthur-debert/awesome-copilot/pkg/catalog"
	"github.com/arthur-debert/awesome-copilot/pkg/errors"
	"github.com/arthur-debert/awesome-copilot/pkg/internal/hashutil"
	"github.com/arthur-debert/awesome-copilot/pkg/logging"
	"github.com/arthur-debert/awesome-copilot/pkg/types"
	"github.com/rs/zerolog"
)

// Options configures a synchronization run.
type Options struct {
	FS        types.FS
	Effective *types.EffectiveState
	Catalog   *catalog.Catalog
	OutputDir string

	// DryRun plans the run without touching the filesystem
	DryRun bool
}

// Sync copies enabled items missing or different in the output directory
// and removes every other file of the section sub-directories. Per-file
// failures are recorded in the result and do not stop the run; the error
// return is reserved for invalid options.
func Sync(opts Options) (*types.SyncResult, error) {
	if opts.FS == nil || opts.Effective == nil || opts.Catalog == nil {
		return nil, errors.New(errors.ErrInvalidInput, "sync requires a filesystem, an effective state and a catalog")
	}
	if opts.OutputDir == "" {
		return nil, errors.New(errors.ErrInvalidInput, "output directory is required")
	}

	logger := logging.GetLogger("syncer")
	defer logging.LogOperationStart(logger, "sync")()

	s := &syncer{opts: opts, logger: logger, result: &types.SyncResult{
		OutputDir: opts.OutputDir,
		DryRun:    opts.DryRun,
	}}
	for _, section := range types.Sections {
		s.syncSection(section)
	}

	logger.Info().
		Str("output", opts.OutputDir).
		Bool("dry_run", opts.DryRun).
		Int("copied", len(s.result.Copied)).
		Int("skipped", len(s.result.Skipped)).
		Int("removed", len(s.result.Removed)).
		Int("failures", len(s.result.Failures)).
		Msg("Sync finished")
	return s.result, nil
}

type syncer struct {
	opts   Options
	logger zerolog.Logger
	result *types.SyncResult
}

// SectionDir returns the output sub-directory of a section.
func SectionDir(outputDir string, section types.Section) string {
	return filepath.Join(outputDir, section.String())
}

func (s *syncer) syncSection(section types.Section) {
	dir := SectionDir(s.opts.OutputDir, section)
	enabled := s.opts.Effective.Enabled(section)

	if !s.opts.DryRun {
		if err := s.opts.FS.MkdirAll(dir, 0755); err != nil {
			wrapped := errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", dir)
			for _, name := range enabled {
				s.fail(types.ItemRef{Section: section, Name: name}, dir, wrapped)
			}
			return
		}
	}

	expected := make(map[string]bool, len(enabled))
	for _, name := range enabled {
		expected[section.FileName(name)] = true
		s.syncItem(types.ItemRef{Section: section, Name: name}, dir)
	}

	existing, err := s.opts.FS.ReadDir(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			s.fail(types.ItemRef{Section: section}, dir, errors.Wrapf(err, errors.ErrFileAccess, "failed to list %s", dir))
		}
		return
	}
	sort.Slice(existing, func(i, j int) bool { return existing[i].Name() < existing[j].Name() })

	for _, entry := range existing {
		if entry.IsDir() || expected[entry.Name()] {
			continue
		}
		s.removeFile(section, dir, entry.Name())
	}
}

func (s *syncer) syncItem(ref types.ItemRef, dir string) {
	src := s.opts.Catalog.SourcePath(ref)
	dst := filepath.Join(dir, ref.Section.FileName(ref.Name))

	data, err := s.opts.FS.ReadFile(src)
	if err != nil {
		s.fail(ref, src, errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", src))
		return
	}

	current, err := s.opts.FS.ReadFile(dst)
	switch {
	case err == nil && bytes.Equal(current, data):
		s.result.Skipped = append(s.result.Skipped, ref)
		s.logger.Trace().Str("item", ref.String()).Msg("Unchanged")
		return
	case err != nil && !os.IsNotExist(err):
		s.fail(ref, dst, errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", dst))
		return
	}

	if !s.opts.DryRun {
		if err := s.opts.FS.WriteFile(dst, data, 0644); err != nil {
			s.fail(ref, dst, errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", dst))
			return
		}
	}
	s.result.Copied = append(s.result.Copied, ref)
	s.logger.Debug().Str("item", ref.String()).Str("dest", dst).Bool("dry_run", s.opts.DryRun).Msg("Copied")
}

// removeFile deletes a file that no enabled item accounts for. Files that
// are not items of the section at all are removed too.
func (s *syncer) removeFile(section types.Section, dir, fileName string) {
	ref := types.ItemRef{Section: section, Name: fileName}
	if name, ok := section.ItemName(fileName); ok {
		ref.Name = name
	}
	path := filepath.Join(dir, fileName)

	if !s.opts.DryRun {
		if err := s.opts.FS.Remove(path); err != nil && !os.IsNotExist(err) {
			s.fail(ref, path, errors.Wrapf(err, errors.ErrFileRemove, "failed to remove %s", path))
			return
		}
	}
	s.result.Removed = append(s.result.Removed, ref)
	s.logger.Debug().Str("item", ref.String()).Bool("dry_run", s.opts.DryRun).Msg("Removed")
}

func (s *syncer) fail(ref types.ItemRef, path string, err error) {
	s.logger.Warn().Err(err).Str("item", ref.String()).Str("path", path).Msg("Sync failure")
	s.result.Failures = append(s.result.Failures, types.SyncFailure{Ref: ref, Path: path, Err: err})
}

// ExpectedFiles returns, per section, the file names an up-to-date output
// directory holds.
func ExpectedFiles(effective *types.EffectiveState) [types.SectionCount][]string {
	var out [types.SectionCount][]string
	for _, section := range types.Sections {
		for _, name := range effective.Enabled(section) {
			out[section] = append(out[section], section.FileName(name))
		}
	}
	return out
}

// MatchesOutput reports whether the section sub-directories hold exactly the
// expected files and each file's content has the checksum in sums, keyed by
// item. An item missing from sums never matches.
func MatchesOutput(fs types.FS, outputDir string, effective *types.EffectiveState, sums map[types.ItemRef]string) bool {
	expected := ExpectedFiles(effective)
	for _, section := range types.Sections {
		entries, err := fs.ReadDir(SectionDir(outputDir, section))
		if err != nil && !os.IsNotExist(err) {
			return false
		}
		var files []string
		for _, e := range entries {
			if !e.IsDir() {
				files = append(files, e.Name())
			}
		}
		want := append([]string(nil), expected[section]...)
		sort.Strings(files)
		sort.Strings(want)
		if len(files) != len(want) {
			return false
		}
		for i := range files {
			if files[i] != want[i] {
				return false
			}
		}
	}
	for _, ref := range effective.EnabledRefs() {
		want, ok := sums[ref]
		if !ok {
			return false
		}
		data, err := fs.ReadFile(filepath.Join(SectionDir(outputDir, ref.Section), ref.Section.FileName(ref.Name)))
		if err != nil || hashutil.CalculateChecksum(data) != want {
			return false
		}
	}
	return true
}

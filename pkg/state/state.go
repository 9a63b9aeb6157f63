package state

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/arthur-debert/awesome-copilot/pkg/catalog"
	"github.com/arthur-debert/awesome-copilot/pkg/errors"
	"github.com/arthur-debert/awesome-copilot/pkg/internal/hashutil"
	"github.com/arthur-debert/awesome-copilot/pkg/types"
	"github.com/pelletier/go-toml/v2"
)

// FormatVersion is bumped whenever the fingerprint inputs change.
const FormatVersion = 1

// SyncState is the record of the last successful sync into an output
// directory.
type SyncState struct {
	Version     int       `toml:"version"`
	OutputDir   string    `toml:"output_dir"`
	Fingerprint string    `toml:"fingerprint"`
	AppliedAt   time.Time `toml:"applied_at"`
	Items       []string  `toml:"items"`
}

// Store reads and writes one cache file.
type Store struct {
	fs   types.FS
	path string
}

// NewStore creates a store for the cache file at path.
func NewStore(fs types.FS, path string) *Store {
	return &Store{fs: fs, path: path}
}

// Path returns the cache file location.
func (s *Store) Path() string {
	return s.path
}

// Load returns the cached state. A missing file yields nil without error.
func (s *Store) Load() (*SyncState, error) {
	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to read sync state %s", s.path)
	}

	var st SyncState
	if err := toml.Unmarshal(data, &st); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "corrupt sync state %s", s.path)
	}
	if st.Version != FormatVersion {
		return nil, errors.Newf(errors.ErrFileAccess, "sync state %s has version %d, expected %d", s.path, st.Version, FormatVersion)
	}
	return &st, nil
}

// Save writes the state, creating the cache directory when needed.
func (s *Store) Save(st *SyncState) error {
	st.Version = FormatVersion
	data, err := toml.Marshal(st)
	if err != nil {
		return errors.Wrap(err, errors.ErrFileWrite, "failed to encode sync state")
	}
	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", filepath.Dir(s.path))
	}
	if err := s.fs.WriteFile(s.path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write sync state %s", s.path)
	}
	return nil
}

// Clear removes the cache file.
func (s *Store) Clear() error {
	if err := s.fs.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, errors.ErrFileRemove, "failed to remove sync state %s", s.path)
	}
	return nil
}

// Checksums returns the checksum of the source file of every enabled item.
func Checksums(fs types.FS, cat *catalog.Catalog, effective *types.EffectiveState) (map[types.ItemRef]string, error) {
	sums := make(map[types.ItemRef]string)
	for _, ref := range effective.EnabledRefs() {
		data, err := fs.ReadFile(cat.SourcePath(ref))
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", cat.SourcePath(ref))
		}
		sums[ref] = hashutil.CalculateChecksum(data)
	}
	return sums, nil
}

// FingerprintOf hashes the items and their checksums in section then name
// order.
func FingerprintOf(sums map[types.ItemRef]string) string {
	refs := make([]types.ItemRef, 0, len(sums))
	for ref := range sums {
		refs = append(refs, ref)
	}
	types.SortRefs(refs)

	lines := make([]string, 0, len(refs))
	for _, ref := range refs {
		lines = append(lines, fmt.Sprintf("%s\t%s", ref, sums[ref]))
	}
	return hashutil.Fingerprint(lines)
}

// Fingerprint hashes the enabled items together with the checksum of their
// source files, so editing a catalog file invalidates the cache.
func Fingerprint(fs types.FS, cat *catalog.Catalog, effective *types.EffectiveState) (string, error) {
	sums, err := Checksums(fs, cat, effective)
	if err != nil {
		return "", err
	}
	return FingerprintOf(sums), nil
}

// New builds the record of a sync that just completed.
func New(outputDir, fingerprint string, effective *types.EffectiveState, now time.Time) *SyncState {
	st := &SyncState{
		Version:     FormatVersion,
		OutputDir:   outputDir,
		Fingerprint: fingerprint,
		AppliedAt:   now.UTC(),
	}
	for _, ref := range effective.EnabledRefs() {
		st.Items = append(st.Items, ref.String())
	}
	return st
}

// pkg/syncer/syncer_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: In-memory filesystem
// PURPOSE: Test reconciliation of the output directory with the effective state

package syncer

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/arthur-debert/awesome-copilot/pkg/catalog"
	"github.com/arthur-debert/awesome-copilot/pkg/errors"
	"github.com/arthur-debert/awesome-copilot/pkg/filesystem"
	"github.com/arthur-debert/awesome-copilot/pkg/internal/hashutil"
	"github.com/arthur-debert/awesome-copilot/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const outputDir = "/project/.awesome-copilot"

func ref(s types.Section, name string) types.ItemRef {
	return types.ItemRef{Section: s, Name: name}
}

type fixture struct {
	fs  types.FS
	cat *catalog.Catalog
}

func newFixture(t *testing.T, items ...types.ItemRef) *fixture {
	t.Helper()
	f := &fixture{fs: filesystem.NewMemory(), cat: catalog.New("/catalog")}
	for _, r := range items {
		f.cat.AddItem(r)
		f.writeSource(t, r, "# "+r.Name+"\n")
	}
	return f
}

func (f *fixture) writeSource(t *testing.T, r types.ItemRef, content string) {
	t.Helper()
	src := f.cat.SourcePath(r)
	require.NoError(t, f.fs.MkdirAll(filepath.Dir(src), 0755))
	require.NoError(t, f.fs.WriteFile(src, []byte(content), 0644))
}

func (f *fixture) writeOutput(t *testing.T, section types.Section, fileName, content string) {
	t.Helper()
	dir := SectionDir(outputDir, section)
	require.NoError(t, f.fs.MkdirAll(dir, 0755))
	require.NoError(t, f.fs.WriteFile(filepath.Join(dir, fileName), []byte(content), 0644))
}

func (f *fixture) listOutput(t *testing.T, section types.Section) []string {
	t.Helper()
	entries, err := f.fs.ReadDir(SectionDir(outputDir, section))
	if os.IsNotExist(err) {
		return nil
	}
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names
}

// sourceSums checksums the source file of every enabled item.
func (f *fixture) sourceSums(t *testing.T, state *types.EffectiveState) map[types.ItemRef]string {
	t.Helper()
	sums := make(map[types.ItemRef]string)
	for _, r := range state.EnabledRefs() {
		data, err := f.fs.ReadFile(f.cat.SourcePath(r))
		require.NoError(t, err)
		sums[r] = hashutil.CalculateChecksum(data)
	}
	return sums
}

func enabledState(refs ...types.ItemRef) *types.EffectiveState {
	state := types.NewEffectiveState()
	for _, r := range refs {
		state.Set(r, types.ItemState{Enabled: true, Reason: types.ReasonExplicit})
	}
	return state
}

func (f *fixture) sync(t *testing.T, state *types.EffectiveState, dryRun bool) *types.SyncResult {
	t.Helper()
	result, err := Sync(Options{FS: f.fs, Effective: state, Catalog: f.cat, OutputDir: outputDir, DryRun: dryRun})
	require.NoError(t, err)
	return result
}

func TestSync_CopiesEnabledItems(t *testing.T) {
	a, b := ref(types.SectionPrompts, "a"), ref(types.SectionChatModes, "b")
	f := newFixture(t, a, b, ref(types.SectionPrompts, "off"))

	state := enabledState(a, b)
	state.Set(ref(types.SectionPrompts, "off"), types.ItemState{Reason: types.ReasonDisabled})

	result := f.sync(t, state, false)

	assert.Equal(t, []types.ItemRef{a, b}, result.Copied)
	assert.Empty(t, result.Removed)
	assert.Empty(t, result.Failures)
	assert.Equal(t, []string{"a.prompt.md"}, f.listOutput(t, types.SectionPrompts))
	assert.Equal(t, []string{"b.chatmode.md"}, f.listOutput(t, types.SectionChatModes))
	assert.Empty(t, f.listOutput(t, types.SectionInstructions))

	content, err := f.fs.ReadFile(filepath.Join(outputDir, "prompts", "a.prompt.md"))
	require.NoError(t, err)
	assert.Equal(t, "# a\n", string(content))
}

func TestSync_IsIdempotent(t *testing.T) {
	a, b := ref(types.SectionPrompts, "a"), ref(types.SectionInstructions, "b")
	f := newFixture(t, a, b)
	state := enabledState(a, b)

	first := f.sync(t, state, false)
	require.Len(t, first.Copied, 2)

	second := f.sync(t, state, false)
	assert.Empty(t, second.Copied)
	assert.Empty(t, second.Removed)
	assert.Equal(t, []types.ItemRef{a, b}, second.Skipped)
	assert.False(t, second.Changed())
}

func TestSync_OverwritesChangedContent(t *testing.T) {
	a := ref(types.SectionPrompts, "a")
	f := newFixture(t, a)
	f.writeOutput(t, types.SectionPrompts, "a.prompt.md", "stale copy")

	result := f.sync(t, enabledState(a), false)

	assert.Equal(t, []types.ItemRef{a}, result.Copied)
	content, err := f.fs.ReadFile(filepath.Join(outputDir, "prompts", "a.prompt.md"))
	require.NoError(t, err)
	assert.Equal(t, "# a\n", string(content))
}

func TestSync_RemovesDisabledAndOrphans(t *testing.T) {
	a, gone := ref(types.SectionPrompts, "a"), ref(types.SectionPrompts, "gone")
	f := newFixture(t, a, gone)
	f.writeOutput(t, types.SectionPrompts, "gone.prompt.md", "# gone\n")
	f.writeOutput(t, types.SectionPrompts, "orphan.prompt.md", "no longer in catalog")
	f.writeOutput(t, types.SectionPrompts, "README.md", "stray file")
	require.NoError(t, f.fs.MkdirAll(filepath.Join(outputDir, "prompts", "nested"), 0755))

	state := enabledState(a)
	state.Set(gone, types.ItemState{Reason: types.ReasonDisabled})

	result := f.sync(t, state, false)

	assert.Equal(t, []types.ItemRef{a}, result.Copied)
	assert.Equal(t, []types.ItemRef{
		ref(types.SectionPrompts, "README.md"),
		gone,
		ref(types.SectionPrompts, "orphan"),
	}, result.Removed)
	assert.Equal(t, []string{"a.prompt.md"}, f.listOutput(t, types.SectionPrompts))

	_, err := f.fs.Stat(filepath.Join(outputDir, "prompts", "nested"))
	assert.NoError(t, err, "sub-directories are left alone")
}

func TestSync_FileSetMatchesEnabledItems(t *testing.T) {
	items := []types.ItemRef{
		ref(types.SectionPrompts, "a"), ref(types.SectionPrompts, "a-b"),
		ref(types.SectionInstructions, "go"), ref(types.SectionInstructions, "py"),
		ref(types.SectionChatModes, "plan"),
	}
	f := newFixture(t, items...)
	f.writeOutput(t, types.SectionInstructions, "py.instructions.md", "# py\n")

	steps := [][]types.ItemRef{
		{items[0], items[1], items[2]},
		{items[3], items[4]},
		{},
		items,
	}
	for _, enabled := range steps {
		state := types.NewEffectiveState()
		for _, r := range items {
			state.Set(r, types.ItemState{Reason: types.ReasonDisabled})
		}
		for _, r := range enabled {
			state.Set(r, types.ItemState{Enabled: true, Reason: types.ReasonExplicit})
		}

		result := f.sync(t, state, false)
		require.Empty(t, result.Failures)

		expected := ExpectedFiles(state)
		for _, s := range types.Sections {
			want := append([]string(nil), expected[s]...)
			sort.Strings(want)
			if len(want) == 0 {
				want = nil
			}
			assert.Equal(t, want, f.listOutput(t, s))
		}
		assert.True(t, MatchesOutput(f.fs, outputDir, state, f.sourceSums(t, state)))
	}
}

func TestSync_DryRunTouchesNothing(t *testing.T) {
	a, old := ref(types.SectionPrompts, "a"), ref(types.SectionPrompts, "old")
	f := newFixture(t, a)
	f.writeOutput(t, types.SectionPrompts, "old.prompt.md", "# old\n")

	result := f.sync(t, enabledState(a), true)

	assert.True(t, result.DryRun)
	assert.Equal(t, []types.ItemRef{a}, result.Copied)
	assert.Equal(t, []types.ItemRef{old}, result.Removed)
	assert.Equal(t, []string{"old.prompt.md"}, f.listOutput(t, types.SectionPrompts))
	_, err := f.fs.Stat(SectionDir(outputDir, types.SectionInstructions))
	assert.True(t, os.IsNotExist(err))
}

// failingFS fails writes and removals of selected paths.
type failingFS struct {
	types.FS
	failWrite  map[string]bool
	failRemove map[string]bool
}

func (f *failingFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if f.failWrite[name] {
		return &fs.PathError{Op: "write", Path: name, Err: fs.ErrPermission}
	}
	return f.FS.WriteFile(name, data, perm)
}

func (f *failingFS) Remove(name string) error {
	if f.failRemove[name] {
		return &fs.PathError{Op: "remove", Path: name, Err: fs.ErrPermission}
	}
	return f.FS.Remove(name)
}

func TestSync_FailuresAreAccumulated(t *testing.T) {
	a, b, c := ref(types.SectionPrompts, "a"), ref(types.SectionPrompts, "b"), ref(types.SectionPrompts, "c")
	missing := ref(types.SectionInstructions, "missing-source")
	f := newFixture(t, a, b, c)
	f.cat.AddItem(missing)
	f.writeOutput(t, types.SectionPrompts, "stuck.prompt.md", "x")

	promptsDir := SectionDir(outputDir, types.SectionPrompts)
	f.fs = &failingFS{
		FS:         f.fs,
		failWrite:  map[string]bool{filepath.Join(promptsDir, "b.prompt.md"): true},
		failRemove: map[string]bool{filepath.Join(promptsDir, "stuck.prompt.md"): true},
	}

	result := f.sync(t, enabledState(a, b, c, missing), false)

	assert.Equal(t, []types.ItemRef{a, c}, result.Copied, "the run continues past failures")
	require.Len(t, result.Failures, 3)
	assert.True(t, result.HasFailures())

	byRef := make(map[types.ItemRef]error)
	for _, failure := range result.Failures {
		byRef[failure.Ref] = failure.Err
	}
	assert.True(t, errors.IsErrorCode(byRef[b], errors.ErrFileWrite))
	assert.True(t, errors.IsErrorCode(byRef[ref(types.SectionPrompts, "stuck")], errors.ErrFileRemove))
	assert.True(t, errors.IsErrorCode(byRef[missing], errors.ErrFileAccess))
}

func TestSync_InvalidOptions(t *testing.T) {
	_, err := Sync(Options{})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	_, err = Sync(Options{FS: filesystem.NewMemory(), Effective: types.NewEffectiveState(), Catalog: catalog.New("/c")})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestMatchesOutput(t *testing.T) {
	a := ref(types.SectionPrompts, "a")
	f := newFixture(t, a)
	state := enabledState(a)
	sums := f.sourceSums(t, state)

	assert.False(t, MatchesOutput(f.fs, outputDir, state, sums))
	f.sync(t, state, false)
	assert.True(t, MatchesOutput(f.fs, outputDir, state, sums))
	assert.False(t, MatchesOutput(f.fs, outputDir, state, nil), "items without a checksum never match")

	f.writeOutput(t, types.SectionChatModes, "extra.chatmode.md", "x")
	assert.False(t, MatchesOutput(f.fs, outputDir, state, sums))
}

func TestMatchesOutput_EditedFile(t *testing.T) {
	a := ref(types.SectionPrompts, "a")
	f := newFixture(t, a)
	state := enabledState(a)
	sums := f.sourceSums(t, state)

	f.sync(t, state, false)
	require.True(t, MatchesOutput(f.fs, outputDir, state, sums))

	f.writeOutput(t, types.SectionPrompts, "a.prompt.md", "hand edited\n")
	assert.False(t, MatchesOutput(f.fs, outputDir, state, sums), "same names, different content")
}

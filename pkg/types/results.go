package types

// SyncFailure records an item whose copy, comparison or removal failed.
type SyncFailure struct {
	Ref  ItemRef
	Path string
	Err  error
}

// SyncResult reports what a synchronization run did, item by item.
type SyncResult struct {
	OutputDir string
	DryRun    bool

	// Cached is true when the run was short-circuited by the sync-state cache
	Cached bool

	Copied   []ItemRef
	Skipped  []ItemRef
	Removed  []ItemRef
	Failures []SyncFailure
}

// HasFailures reports whether any per-file operation failed.
func (r *SyncResult) HasFailures() bool {
	return len(r.Failures) > 0
}

// Changed reports whether the run copied or removed anything.
func (r *SyncResult) Changed() bool {
	return len(r.Copied) > 0 || len(r.Removed) > 0
}

// Count returns the number of items recorded in the run.
func (r *SyncResult) Count() int {
	return len(r.Copied) + len(r.Skipped) + len(r.Removed) + len(r.Failures)
}

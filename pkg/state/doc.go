// Package state keeps the sync-state cache: a small TOML file per output
// directory recording the fingerprint of the last successful apply.
//
// The cache is an optimization only. A missing, unreadable or corrupt file
// means "unknown" and the caller runs a full sync.
package state

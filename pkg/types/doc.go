// Package types defines the core types shared by the awesome-copilot engine.
// This includes the Section enumeration and its per-section metadata, the
// tri-state Flag used for explicit item overrides, item references, the
// computed EffectiveState, the Delta between two states and the result of a
// synchronization run.
package types

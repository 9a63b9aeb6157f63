// Package filesystem provides the types.FS implementations: the disk,
// where every write replaces the file atomically through renameio, and an
// afero memory filesystem for tests. WriteFileAtomic persists
// configuration files outside of types.FS.
package filesystem

// Package catalog discovers the items and collections available to a
// project.
//
// The scanner lists <root>/prompts, <root>/instructions and <root>/chatmodes
// once per invocation; those names are the only items the engine knows.
// Collections are read from <root>/collections/<name>.collection.yml. A
// manifest that cannot be parsed is kept as a collection with no members
// and its load error attached, so resolution never fails because of one
// broken manifest.
package catalog

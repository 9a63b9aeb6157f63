// Package testutil provides fixtures for testing awesome-copilot
// components.
//
// TestCatalog writes a catalog (sections, collection manifests) into a
// temporary directory so tests exercise the real scanner and loaders.
// All test data is defined inline by the tests themselves.
package testutil

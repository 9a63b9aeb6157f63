// pkg/commands/newcollection/newcollection_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: Temporary directories, OS filesystem
// PURPOSE: Test writing starter collection manifests

package newcollection

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/awesome-copilot/pkg/catalog"
	"github.com/arthur-debert/awesome-copilot/pkg/errors"
	"github.com/arthur-debert/awesome-copilot/pkg/filesystem"
	"github.com/arthur-debert/awesome-copilot/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCollection(t *testing.T) {
	tc := testutil.NewTestCatalog(t)

	result, err := NewCollection(NewCollectionOptions{CatalogRoot: tc.Root, ID: "go-web-apis"})
	require.NoError(t, err)
	assert.Equal(t, "go-web-apis", result.ID)
	assert.Equal(t, "Go Web Apis", result.Name)
	assert.Equal(t, filepath.Join(tc.Root, "collections", "go-web-apis.collection.yml"), result.Path)

	cat, err := catalog.Scan(filesystem.NewOS(), tc.Root)
	require.NoError(t, err)
	coll, ok := cat.Collection("go-web-apis")
	require.True(t, ok)
	assert.NoError(t, coll.LoadErr)
	assert.Equal(t, "go-web-apis", coll.ID)
	assert.Equal(t, []string{"go", "web", "apis"}, coll.Tags)
	assert.Empty(t, coll.Members)

	_, err = NewCollection(NewCollectionOptions{CatalogRoot: tc.Root, ID: "go-web-apis"})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))
}

func TestNewCollection_InvalidInput(t *testing.T) {
	tc := testutil.NewTestCatalog(t)

	tests := []struct {
		name string
		root string
		id   string
	}{
		{"empty id", tc.Root, ""},
		{"spaces", tc.Root, "Has Spaces"},
		{"underscore", tc.Root, "under_score"},
		{"too long", tc.Root, strings.Repeat("a", 51)},
		{"no catalog root", "", "valid-id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCollection(NewCollectionOptions{CatalogRoot: tt.root, ID: tt.id})
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
		})
	}
}

// pkg/commands/internal/load_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Memory filesystem
// PURPOSE: Test the loading steps shared by the commands

package internal

import (
	"testing"

	"github.com/arthur-debert/awesome-copilot/pkg/errors"
	"github.com/arthur-debert/awesome-copilot/pkg/filesystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrOS(t *testing.T) {
	assert.NotNil(t, OrOS(nil))

	mem := filesystem.NewMemory()
	assert.Same(t, mem, OrOS(mem))
}

func TestLoadCatalog(t *testing.T) {
	_, err := LoadCatalog(filesystem.NewMemory(), "")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

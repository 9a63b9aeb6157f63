// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/arthur-debert/awesome-copilot/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "not_found_error",
			code:    errors.ErrNotFound,
			message: "collection not found",
			wantStr: "[NOT_FOUND] collection not found",
		},
		{
			name:    "config_invalid_error",
			code:    errors.ErrConfigValid,
			message: "prompts must be a mapping",
			wantStr: "[CONFIG_INVALID] prompts must be a mapping",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrInvalidInput, "unknown section '%s'", "agents")
	assert.Equal(t, "unknown section 'agents'", err.Message)
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrPersist, "failed to save configuration")

		assert.Equal(t, errors.ErrPersist, err.Code)
		assert.Same(t, baseErr, err.Wrapped)
		assert.Equal(t, "[PERSIST] failed to save configuration: base error", err.Error())
		assert.True(t, stderrors.Is(err, baseErr))
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "internal error"))
		assert.Nil(t, errors.Wrapf(nil, errors.ErrInternal, "internal %s", "error"))
	})
}

func TestWithDetails(t *testing.T) {
	err := errors.New(errors.ErrFileWrite, "cannot write file").
		WithDetail("path", "/out/prompts/a.prompt.md").
		WithDetails(map[string]interface{}{"size": 12})

	assert.Equal(t, "/out/prompts/a.prompt.md", err.Details["path"])
	assert.Equal(t, 12, err.Details["size"])
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrNotFound, "error 1")
	err2 := errors.New(errors.ErrNotFound, "error 2")
	err3 := errors.New(errors.ErrInternal, "error 3")

	assert.True(t, err1.Is(err2))
	assert.False(t, err1.Is(err3))
	assert.True(t, stderrors.Is(err1, err2))
}

func TestErrorCodeHelpers(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", errors.New(errors.ErrSyncFailed, "2 files failed"))

	assert.True(t, errors.IsErrorCode(wrapped, errors.ErrSyncFailed))
	assert.False(t, errors.IsErrorCode(wrapped, errors.ErrNotFound))
	assert.Equal(t, errors.ErrSyncFailed, errors.GetErrorCode(wrapped))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("plain")))
	assert.Nil(t, errors.GetErrorDetails(stderrors.New("plain")))
}

func TestSuggestion(t *testing.T) {
	err := errors.New(errors.ErrNotFound, "unknown collection 'testing'").
		WithDetail(errors.DetailSuggestion, "testing-automation")

	require.Error(t, err)
	assert.Equal(t, "testing-automation", errors.Suggestion(err))
	assert.Equal(t, "", errors.Suggestion(errors.New(errors.ErrNotFound, "no hint")))
	assert.Equal(t, "", errors.Suggestion(stderrors.New("plain")))
}

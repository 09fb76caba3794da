// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/arthur-debert/relayout/pkg/errors"
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
			message: "file not found",
			wantStr: "[NOT_FOUND] file not found",
		},
		{
			name:    "conflict_error",
			code:    errors.ErrDestinationConflict,
			message: "two files share a destination",
			wantStr: "[DESTINATION_CONFLICT] two files share a destination",
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
	err := errors.Newf(errors.ErrRuleInvalid, "rule %d has empty pattern", 3)
	assert.Equal(t, "[RULE_INVALID] rule 3 has empty pattern", err.Error())
}

func TestWrap(t *testing.T) {
	t.Run("nil_error", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrFileRead, "read"))
		assert.Nil(t, errors.Wrapf(nil, errors.ErrFileRead, "read %s", "x"))
	})

	t.Run("keeps_cause", func(t *testing.T) {
		cause := stderrors.New("permission denied")
		err := errors.Wrapf(cause, errors.ErrFileWrite, "failed to write %s", "src/main.js")

		assert.Equal(t, "[FILE_WRITE] failed to write src/main.js: permission denied", err.Error())
		assert.True(t, stderrors.Is(err, cause))
		assert.Equal(t, cause, stderrors.Unwrap(err))
	})
}

func TestIs(t *testing.T) {
	err := errors.New(errors.ErrDestinationExists, "exists")
	wrapped := fmt.Errorf("outer: %w", err)

	assert.True(t, stderrors.Is(wrapped, errors.New(errors.ErrDestinationExists, "")))
	assert.False(t, stderrors.Is(wrapped, errors.New(errors.ErrDestinationConflict, "")))
}

func TestDetails(t *testing.T) {
	err := errors.New(errors.ErrDestinationConflict, "conflict").
		WithDetail("destination", "src/ui/globals/foo/component.js").
		WithDetails(map[string]interface{}{"sources": []string{"a", "b"}})

	details := errors.GetErrorDetails(fmt.Errorf("wrap: %w", err))
	require.NotNil(t, details)
	assert.Equal(t, "src/ui/globals/foo/component.js", details["destination"])
	assert.Equal(t, []string{"a", "b"}, details["sources"])

	assert.Nil(t, errors.GetErrorDetails(stderrors.New("plain")))
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, errors.ErrCanceled, errors.GetErrorCode(errors.New(errors.ErrCanceled, "stop")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("plain")))
	assert.True(t, errors.IsErrorCode(errors.New(errors.ErrFileRead, "x"), errors.ErrFileRead))
	assert.False(t, errors.IsErrorCode(nil, errors.ErrFileRead))
}

func TestDetailLines(t *testing.T) {
	err := errors.New(errors.ErrDestinationConflict, "2 files share a destination").
		WithDetail("conflicts", map[string][]string{
			"src/main.js":   {"app/app.js", "app/app.ts"},
			"src/init/a.js": {"app/a.js", "app/a.ts"},
		}).
		WithDetail("count", 2).
		WithDetail("destinations", []string{"src/x.js", "src/y.js"})

	assert.Equal(t, []string{
		"conflicts: src/init/a.js <- app/a.js, app/a.ts; src/main.js <- app/app.js, app/app.ts",
		"count: 2",
		"destinations: src/x.js, src/y.js",
	}, errors.DetailLines(fmt.Errorf("migration failed: %w", err)))

	assert.Nil(t, errors.DetailLines(errors.New(errors.ErrInternal, "no details")))
	assert.Nil(t, errors.DetailLines(stderrors.New("plain")))
}

func TestHint(t *testing.T) {
	assert.Contains(t, errors.Hint(errors.New(errors.ErrDestinationExists, "exists")), "--force")
	assert.Contains(t, errors.Hint(fmt.Errorf("wrap: %w", errors.New(errors.ErrSourceNotFound, "x"))), "source_dir")
	assert.Empty(t, errors.Hint(errors.New(errors.ErrFileRead, "read")))
	assert.Empty(t, errors.Hint(stderrors.New("plain")))
}

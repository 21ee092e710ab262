package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifiedError(t *testing.T) {
	t.Run("Basic error creation", func(t *testing.T) {
		err := NewError(CategoryConfig, "invalid definition").
			WithSeverity(SeverityFatal).
			WithContext("file", "navconfig.yaml").
			Build()

		assert.Equal(t, CategoryConfig, err.Category())
		assert.Equal(t, SeverityFatal, err.Severity())
		assert.Equal(t, "invalid definition", err.Message())

		file, ok := err.Context().GetString("file")
		require.True(t, ok)
		assert.Equal(t, "navconfig.yaml", file)
		assert.Equal(t, "[config:fatal] invalid definition", err.Error())
	})

	t.Run("Validation errors are fatal and not retryable", func(t *testing.T) {
		err := ValidationError("unknown social icon").Build()

		assert.True(t, IsClassified(err))
		assert.True(t, HasCategory(err, CategoryValidation))
		assert.True(t, err.IsFatal())
		assert.False(t, err.CanRetry())
	})

	t.Run("Wrapped chain is still classified", func(t *testing.T) {
		cause := stderrors.New("permission denied")
		inner := FileSystemError("cannot read package.json").WithCause(cause).Build()
		outer := fmt.Errorf("build: %w", inner)

		got, ok := AsClassified(outer)
		require.True(t, ok)
		assert.Equal(t, CategoryFileSystem, got.Category())
		assert.ErrorIs(t, outer, cause)
		assert.True(t, got.CanRetry())
		assert.Equal(t, CategoryInternal, GetCategory(stderrors.New("plain")))
	})

	t.Run("WithContext does not mutate original", func(t *testing.T) {
		base := ConfigError("bad").Build()
		extended := base.WithContext("line", 4)

		_, ok := base.Context().Get("line")
		assert.False(t, ok)
		v, ok := extended.Context().Get("line")
		require.True(t, ok)
		assert.Equal(t, 4, v)
	})
}

func TestWrapError(t *testing.T) {
	cause := stderrors.New("object not found")
	err := WrapError(cause, CategoryGit, "failed to open repository").Build()

	assert.Equal(t, CategoryGit, err.Category())
	assert.Equal(t, SeverityError, err.Severity())
	assert.Same(t, cause, err.Cause())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "[git:error] failed to open repository: object not found", err.Error())
}

func TestErrorContextMerge(t *testing.T) {
	a := ErrorContext{"a": 1, "b": 1}
	b := ErrorContext{"b": 2}

	merged := a.Merge(b)
	assert.Equal(t, ErrorContext{"a": 1, "b": 2}, merged)
	assert.Equal(t, 1, a["b"])

	var empty ErrorContext
	assert.Equal(t, b, empty.Merge(b))
}

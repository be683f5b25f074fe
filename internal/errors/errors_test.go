package errors_test

import (
	"errors"
	"fmt"
	"testing"

	apperrors "ensemble-backend/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Message", func(t *testing.T) {
		assert.Equal(t, "team not found", apperrors.ErrTeamNotFound.Error())
	})

	t.Run("IsMatchesSameEntity", func(t *testing.T) {
		err := apperrors.NewNotFoundError("team")
		assert.True(t, errors.Is(err, apperrors.ErrTeamNotFound))
	})

	t.Run("IsRejectsOtherEntity", func(t *testing.T) {
		assert.False(t, errors.Is(apperrors.ErrLinkNotFound, apperrors.ErrTeamNotFound))
	})

	t.Run("IsMatchesThroughWrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("failed to load scope: %w", apperrors.ErrDraftNotFound)
		assert.True(t, errors.Is(wrapped, apperrors.ErrDraftNotFound))
		assert.True(t, apperrors.IsNotFound(wrapped))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("MessageWithContext", func(t *testing.T) {
		assert.Equal(t, "team already exists with this name", apperrors.ErrTeamExists.Error())
	})

	t.Run("MessageWithoutContext", func(t *testing.T) {
		err := apperrors.NewAlreadyExistsError("link tag", "")
		assert.Equal(t, "link tag already exists", err.Error())
	})

	t.Run("IsComparesEntityOnly", func(t *testing.T) {
		err := apperrors.NewAlreadyExistsError("team", "somewhere else")
		assert.True(t, errors.Is(err, apperrors.ErrTeamExists))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("MessageWithField", func(t *testing.T) {
		err := apperrors.NewValidationError("tla", "must be exactly 3 characters")
		assert.Equal(t, "validation error: tla - must be exactly 3 characters", err.Error())
	})

	t.Run("MessageWithoutField", func(t *testing.T) {
		err := apperrors.NewValidationError("", "entries are required")
		assert.Equal(t, "validation error: entries are required", err.Error())
	})
}

func TestExternalError(t *testing.T) {
	t.Run("MessageIncludesSystem", func(t *testing.T) {
		err := apperrors.NewExternalError("central api", "unexpected status 502")
		assert.Equal(t, "central api: unexpected status 502", err.Error())
	})
}

func TestClassificationHelpers(t *testing.T) {
	wrap := func(err error) error { return fmt.Errorf("outer: %w", err) }

	t.Run("IsNotFound", func(t *testing.T) {
		assert.True(t, apperrors.IsNotFound(wrap(apperrors.ErrSnapshotNotFound)))
		assert.False(t, apperrors.IsNotFound(apperrors.ErrSnapshotExists))
		assert.False(t, apperrors.IsNotFound(nil))
	})

	t.Run("IsAlreadyExists", func(t *testing.T) {
		assert.True(t, apperrors.IsAlreadyExists(wrap(apperrors.ErrTLAExists)))
		assert.False(t, apperrors.IsAlreadyExists(apperrors.ErrTeamNotFound))
	})

	t.Run("IsValidation", func(t *testing.T) {
		assert.True(t, apperrors.IsValidation(wrap(apperrors.NewValidationError("page", "out of range"))))
		assert.False(t, apperrors.IsValidation(errors.New("unrelated")))
	})

	t.Run("IsConflict", func(t *testing.T) {
		assert.True(t, apperrors.IsConflict(wrap(apperrors.ErrRequestNotPending)))
		assert.False(t, apperrors.IsConflict(apperrors.ErrInvalidStatus))
	})

	t.Run("IsExternal", func(t *testing.T) {
		assert.True(t, apperrors.IsExternal(wrap(apperrors.ErrCentralAPIUnavailable)))
		assert.False(t, apperrors.IsExternal(apperrors.ErrTeamNotFound))
	})
}

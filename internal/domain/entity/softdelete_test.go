package entity

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolveDeleted(t *testing.T) {
	deletedErr := errors.New("deleted")
	missingErr := errors.New("missing")
	deletedAt := time.Now()

	t.Run("active record resolves to nil", func(t *testing.T) {
		assert.NoError(t, ResolveDeleted(nil, DistinguishDeleted, deletedErr, missingErr))
		assert.NoError(t, ResolveDeleted(nil, MergeDeleted, deletedErr, missingErr))
	})

	t.Run("distinguish reports the deleted error", func(t *testing.T) {
		err := ResolveDeleted(&deletedAt, DistinguishDeleted, deletedErr, missingErr)
		assert.ErrorIs(t, err, deletedErr)
	})

	t.Run("merge reports the missing error", func(t *testing.T) {
		err := ResolveDeleted(&deletedAt, MergeDeleted, deletedErr, missingErr)
		assert.ErrorIs(t, err, missingErr)
	})
}

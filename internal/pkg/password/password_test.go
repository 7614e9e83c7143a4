//go:build unit

package password_test

import (
	"testing"

	"flashsale-scheduler/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecker(t *testing.T) {
	t.Run("without hash any non-empty password passes", func(t *testing.T) {
		c := password.NewChecker("")
		assert.NoError(t, c.Check("anything"))
		assert.ErrorIs(t, c.Check(""), password.ErrInvalidPassword)
	})

	t.Run("with hash only the matching password passes", func(t *testing.T) {
		hash, err := password.HashPassword("s3cret")
		require.NoError(t, err)

		c := password.NewChecker(hash)
		assert.NoError(t, c.Check("s3cret"))
		assert.ErrorIs(t, c.Check("wrong"), password.ErrComparisonFailed)
	})
}

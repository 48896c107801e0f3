package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserError(t *testing.T) {
	t.Run("wraps an underlying cause", func(t *testing.T) {
		err := NewUserError("set OPENROUTER_API_KEY in the environment", ErrMissingConfig)
		assert.Equal(t, "set OPENROUTER_API_KEY in the environment: missing configuration", err.Error())
		require.ErrorIs(t, err, ErrMissingConfig)

		var userErr *UserError
		require.ErrorAs(t, err, &userErr)
		assert.Equal(t, ErrMissingConfig, userErr.Unwrap())
	})

	t.Run("message only", func(t *testing.T) {
		err := NewUserError("nothing to do", nil)
		assert.Equal(t, "nothing to do", err.Error())
		assert.False(t, errors.Is(err, ErrMissingConfig))
	})
}

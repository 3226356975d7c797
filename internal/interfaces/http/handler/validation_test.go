package handler

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindingErrorMessage(t *testing.T) {
	t.Run("plain errors pass through", func(t *testing.T) {
		err := errors.New("unexpected EOF")
		assert.Equal(t, "unexpected EOF", bindingErrorMessage(err))
	})

	t.Run("validator errors are flattened per field", func(t *testing.T) {
		type form struct {
			Name  string `validate:"required"`
			Email string `validate:"omitempty,email"`
		}

		validate := validator.New()
		err := validate.Struct(form{Email: "not-an-email"})
		require.Error(t, err)

		msg := bindingErrorMessage(err)
		assert.Contains(t, msg, "Name is required")
		assert.Contains(t, msg, "Email must be a valid email address")
	})
}

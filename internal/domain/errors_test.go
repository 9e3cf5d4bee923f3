package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_EsInvalidInput(t *testing.T) {
	ve := NewValidationError("name", "requerido")
	ve.Add("price", "inválido")
	ve.Add("name", "otro")

	wrapped := fmt.Errorf("crear producto: %w", ve)
	assert.True(t, errors.Is(wrapped, ErrInvalidInput))
	assert.Equal(t, map[string]string{"name": "requerido", "price": "inválido"}, FieldErrors(wrapped))
	assert.Equal(t, "validación: name: requerido; price: inválido", ve.Error())
}

func TestValidationError_OrNil(t *testing.T) {
	var ve ValidationError
	assert.NoError(t, ve.OrNil())
	ve.Add("x", "y")
	assert.Error(t, ve.OrNil())
	assert.Nil(t, FieldErrors(ErrNotFound))
}

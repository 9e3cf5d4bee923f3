package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalog-admin/internal/domain"
)

func TestUserForm_AltaValida(t *testing.T) {
	f := UserForm{Username: " ana ", Email: "ana@shop.test", Age: "30", Password1: "secreto123", Password2: "secreto123"}
	require.NoError(t, f.Validate(true))
	assert.Equal(t, "ana", f.Username)
	require.NotNil(t, f.ParsedAge())
	assert.Equal(t, 30, *f.ParsedAge())
}

func TestUserForm_ErroresPorCampo(t *testing.T) {
	f := UserForm{Username: "ana lópez!", Email: "no-es-email", Age: "abc", Password1: "corta", Password2: "otra"}
	err := f.Validate(true)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	fields := domain.FieldErrors(err)
	assert.Contains(t, fields, "username")
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "age")
	assert.Equal(t, "mínimo 8 caracteres", fields["password1"])
	assert.Equal(t, "las contraseñas no coinciden", fields["password2"])
}

func TestUserForm_EdicionSinPassword(t *testing.T) {
	f := UserForm{Username: "ana"}
	assert.NoError(t, f.Validate(false))

	f = UserForm{Username: "ana"}
	err := f.Validate(true)
	assert.Equal(t, "este campo es obligatorio", domain.FieldErrors(err)["password1"])
}

func TestCategoryForm_Descuento(t *testing.T) {
	f := CategoryForm{Name: "Sofás", Discount: "10"}
	require.NoError(t, f.Validate())
	assert.Equal(t, "10", f.DiscountPercent().String())

	f = CategoryForm{Name: "Sofás", Discount: "150"}
	assert.Contains(t, domain.FieldErrors(f.Validate()), "discount")

	f = CategoryForm{Name: "Sofás", Discount: "diez"}
	assert.Contains(t, domain.FieldErrors(f.Validate()), "discount")

	f = CategoryForm{Name: "Sofás"}
	require.NoError(t, f.Validate())
	assert.True(t, f.DiscountPercent().IsZero())
}

func TestCategoryForm_NombreObligatorio(t *testing.T) {
	f := CategoryForm{Name: "   "}
	assert.Equal(t, "este campo es obligatorio", domain.FieldErrors(f.Validate())["name"])
}

func TestProductForm_Precio(t *testing.T) {
	f := ProductForm{CategoryID: "c1", Name: "Lámpara", Price: "19.90"}
	require.NoError(t, f.Validate())
	assert.Equal(t, "19.9", f.ParsedPrice().String())

	for _, bad := range []string{"-1", "1.999", "abc", ""} {
		f := ProductForm{CategoryID: "c1", Name: "Lámpara", Price: bad}
		assert.Contains(t, domain.FieldErrors(f.Validate()), "price", "precio %q debe ser inválido", bad)
	}
}

func TestProductForm_CamposObligatorios(t *testing.T) {
	f := ProductForm{Price: "1"}
	fields := domain.FieldErrors(f.Validate())
	assert.Contains(t, fields, "category")
	assert.Contains(t, fields, "name")
}

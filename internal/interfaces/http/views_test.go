package http

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "1.234.567,50", FormatMoney(decimal.RequireFromString("1234567.5")))
	assert.Equal(t, "0,99", FormatMoney(decimal.RequireFromString("0.99")))
}

func TestNewViews_CargaPlantillas(t *testing.T) {
	views, err := NewViews()
	require.NoError(t, err)
	require.NoError(t, views.Load())
}

func TestSafeNext(t *testing.T) {
	tests := []struct {
		name string
		next string
		want string
	}{
		{"ruta local", "/categories", "/categories"},
		{"ruta con query", "/products/category/1?x=1", "/products/category/1?x=1"},
		{"vacío", "", "/users"},
		{"absoluta", "https://evil.example.com", "/users"},
		{"relativa sin barra", "evil.example.com", "/users"},
		{"protocol-relative", "//evil.example.com", "/users"},
		{"barra invertida", "/\\evil.example.com", "/users"},
		{"barra invertida interior", "/users\\..\\evil", "/users"},
		{"tab", "/\t/evil.example", "/users"},
		{"salto de línea", "/\n/evil.example", "/users"},
		{"retorno de carro", "/\r/evil.example", "/users"},
		{"DEL", "/\x7f/evil.example", "/users"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, safeNext(tt.next))
		})
	}
}

package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/catalog-admin/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func TestGenerateAndParse_ConFlags(t *testing.T) {
	tok, claims, err := pkgjwt.Generate(testSecret, "catalog-admin-test", 60, pkgjwt.Identity{
		UserID: "u-1", Username: "root", IsStaff: true, IsSuperuser: true,
	})
	require.NoError(t, err)
	require.NotEmpty(t, tok)
	require.NotEmpty(t, claims.ID, "el token debe llevar jti")

	parsed, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, claims.ID, parsed.ID)
	assert.Equal(t, pkgjwt.Identity{UserID: "u-1", Username: "root", IsStaff: true, IsSuperuser: true}, parsed.Identity())
}

func TestParse_TokenExpirado_RetornaError(t *testing.T) {
	tok, _, err := pkgjwt.Generate(testSecret, "iss", -1, pkgjwt.Identity{UserID: "u-1"})
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestParse_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, _, err := pkgjwt.Generate(testSecret, "iss", 60, pkgjwt.Identity{UserID: "u-1"})
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err)
}

func TestGenerate_SinSecret(t *testing.T) {
	_, _, err := pkgjwt.Generate("", "iss", 60, pkgjwt.Identity{UserID: "u-1"})
	assert.Error(t, err)
}

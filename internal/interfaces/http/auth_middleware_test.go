package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/catalog-admin/pkg/jwt"
)

// fakeRevoker revocador en memoria.
type fakeRevoker struct {
	revoked map[string]bool
}

func (f *fakeRevoker) Revoke(_ context.Context, tokenID string, _ time.Duration) error {
	f.revoked[tokenID] = true
	return nil
}

func (f *fakeRevoker) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	return f.revoked[tokenID], nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: sin cookie → 303 a /login con la ruta original en next.
func TestAuthMiddleware_SinSesionRedirigeALogin(t *testing.T) {
	env := newTestEnv(t)
	resp := env.get(t, "/users", "")

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login?next=%2Fusers", resp.Header.Get("Location"))
}

// Caso 2: token inválido → 303 a /login.
func TestAuthMiddleware_TokenInvalido(t *testing.T) {
	env := newTestEnv(t)
	resp := env.get(t, "/users", "token.invalido.aqui")

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
}

// Caso 3: el token también se acepta como Bearer.
func TestAuthMiddleware_BearerHeader(t *testing.T) {
	env := newTestEnv(t)
	staff := env.createUser(t, "ana", true, false)

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, staff))
	resp := env.do(t, req, "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Caso 4: usuario autenticado sin staff ni superusuario → 403.
func TestRequireStaff_UsuarioDeTiendaBloqueado(t *testing.T) {
	env := newTestEnv(t)
	customer := env.createUser(t, "cliente", false, false)

	resp := env.get(t, "/users", tokenFor(t, customer))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// Caso 5: un usuario dado de baja pierde la sesión aunque el token siga vigente.
func TestAuthMiddleware_UsuarioDesactivado(t *testing.T) {
	env := newTestEnv(t)
	root := env.createUser(t, "root", true, true)
	staff := env.createUser(t, "ana", true, false)
	_, err := env.users.Deactivate(context.Background(), root.ID, staff.ID)
	require.NoError(t, err)

	resp := env.get(t, "/users", tokenFor(t, staff))
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
}

// Caso 6: los flags se leen del usuario persistido, no del token.
func TestRequireSuperuser_TokenConFlagFalsificado(t *testing.T) {
	env := newTestEnv(t)
	staff := env.createUser(t, "ana", true, false)
	forged := *staff
	forged.IsSuperuser = true

	resp := env.get(t, "/categories", tokenFor(t, &forged))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// Caso 7: token revocado (logout) → 303 a /login.
func TestAuthMiddleware_TokenRevocado(t *testing.T) {
	rev := &fakeRevoker{revoked: map[string]bool{}}
	env := newTestEnv(t, withRevoker(rev))
	staff := env.createUser(t, "ana", true, false)

	tok := tokenFor(t, staff)
	claims, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, env.get(t, "/users", tok).StatusCode)

	rev.revoked[claims.ID] = true
	resp := env.get(t, "/users", tok)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login?next="+url.QueryEscape("/users"), resp.Header.Get("Location"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireSuperuser: rutas de categorías
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireSuperuser_StaffBloqueadoEnCategorias(t *testing.T) {
	env := newTestEnv(t)
	staff := env.createUser(t, "ana", true, false)
	tok := tokenFor(t, staff)
	category := env.createCategory(t, "Sofás")

	for _, path := range []string{
		"/categories",
		"/categories/create",
		"/categories/" + category.ID + "/edit",
		"/categories/" + category.ID + "/delete",
		"/categories/" + category.ID + "/products",
	} {
		resp := env.get(t, path, tok)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode, "GET %s", path)
	}

	resp := env.post(t, "/categories/create", url.Values{"name": {"Lámparas"}}, tok)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	list, err := env.categories.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 1, "el handler no debe ejecutarse")

	resp = env.post(t, "/categories/"+category.ID+"/delete", nil, tok)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	got, err := env.categories.GetByID(context.Background(), category.ID)
	require.NoError(t, err)
	assert.True(t, got.IsActive)
}

func TestRequireSuperuser_SuperusuarioAccede(t *testing.T) {
	env := newTestEnv(t)
	root := env.createUser(t, "root", false, true)
	env.createCategory(t, "Sofás")

	resp := env.get(t, "/categories", tokenFor(t, root))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "Sofás")
}

// El staff sí puede crear productos bajo una categoría (ruta fuera del grupo de superusuario).
func TestRequireStaff_StaffCreaProductos(t *testing.T) {
	env := newTestEnv(t)
	staff := env.createUser(t, "ana", true, false)
	category := env.createCategory(t, "Sofás")

	resp := env.get(t, "/categories/"+category.ID+"/products/create", tokenFor(t, staff))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

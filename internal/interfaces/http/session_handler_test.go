package http_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionCookie(resp *http.Response) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == testCookie {
			return c
		}
	}
	return nil
}

func TestLogin_CredencialesValidasFijaCookieYRedirige(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "root", true, true)

	resp := env.post(t, "/login", url.Values{
		"username": {"root"},
		"password": {testPassword},
		"next":     {"/categories"},
	}, "")
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/categories", resp.Header.Get("Location"))

	cookie := sessionCookie(resp)
	require.NotNil(t, cookie, "debe fijarse la cookie de sesión")
	assert.True(t, cookie.HttpOnly)

	resp = env.get(t, "/categories", cookie.Value)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestLogin_NextExternoSeIgnora(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "ana", true, false)

	for _, next := range []string{"//evil.example.com", "/\t/evil.example", "/\n/evil.example", "/\\evil.example"} {
		resp := env.post(t, "/login", url.Values{
			"username": {"ana"},
			"password": {testPassword},
			"next":     {next},
		}, "")
		require.Equal(t, http.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "/users", resp.Header.Get("Location"), "next=%q", next)
	}
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "ana", true, false)

	resp := env.post(t, "/login", url.Values{"username": {"ana"}, "password": {"otra-cosa"}}, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Nil(t, sessionCookie(resp))
	assert.Contains(t, readBody(t, resp), "Usuario o contraseña incorrectos")
}

func TestLogin_UsuarioSinAccesoAdmin(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "cliente", false, false)

	resp := env.post(t, "/login", url.Values{"username": {"cliente"}, "password": {testPassword}}, "")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Nil(t, sessionCookie(resp))
}

func TestLogin_FormularioVacio422(t *testing.T) {
	env := newTestEnv(t)
	resp := env.post(t, "/login", url.Values{}, "")
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestLoginForm_ConservaNext(t *testing.T) {
	env := newTestEnv(t)
	resp := env.get(t, "/login?next=%2Fusers%2Fcreate", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), `value="/users/create"`)
}

func TestLogout_RevocaYBorraCookie(t *testing.T) {
	rev := &fakeRevoker{revoked: map[string]bool{}}
	env := newTestEnv(t, withRevoker(rev))
	staff := env.createUser(t, "ana", true, false)
	tok := tokenFor(t, staff)

	resp := env.post(t, "/logout", nil, tok)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
	cookie := sessionCookie(resp)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)

	assert.Len(t, rev.revoked, 1)
	resp = env.get(t, "/users", tok)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode, "el token revocado ya no abre sesión")
}

func TestCSRF_PostSinTokenRechazado(t *testing.T) {
	env := newTestEnv(t, withCSRF())
	env.createUser(t, "ana", true, false)

	resp := env.post(t, "/login", url.Values{"username": {"ana"}, "password": {testPassword}}, "")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)
	resp := env.get(t, "/health", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), `"status":"ok"`)
}

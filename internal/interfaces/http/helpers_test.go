package http_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalog-admin/internal/application/auth"
	"github.com/jhoicas/catalog-admin/internal/application/dto"
	"github.com/jhoicas/catalog-admin/internal/application/usecase"
	"github.com/jhoicas/catalog-admin/internal/infrastructure/media"
	"github.com/jhoicas/catalog-admin/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/catalog-admin/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/catalog-admin/pkg/jwt"
	"github.com/jhoicas/catalog-admin/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "catalog-admin-test"
	testCookie    = "admin_session"
	testPassword  = "secreto123"
	testExpMin    = 60
)

// testEnv app completa sobre el store en memoria.
type testEnv struct {
	app        *fiber.App
	store      *memory.Store
	users      *usecase.UserUseCase
	categories *usecase.CategoryUseCase
	products   *usecase.ProductUseCase
	mediaDir   string
}

type envConfig struct {
	csrf    bool
	revoker auth.SessionRevoker
}

type envOption func(*envConfig)

func withCSRF() envOption {
	return func(c *envConfig) { c.csrf = true }
}

func withRevoker(r auth.SessionRevoker) envOption {
	return func(c *envConfig) { c.revoker = r }
}

func newTestEnv(t *testing.T, opts ...envOption) *testEnv {
	t.Helper()
	var cfg envConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	log := logger.Nop()
	store := memory.NewStore()
	env := &testEnv{
		store:      store,
		users:      usecase.NewUserUseCase(store.Users(), log),
		categories: usecase.NewCategoryUseCase(store.Categories(), store.TxRunner(), log),
		products:   usecase.NewProductUseCase(store.Products(), store.Categories()),
		mediaDir:   t.TempDir(),
	}
	authUC := auth.NewAuthUseCase(store.Users(), cfg.revoker, auth.JWTConfig{
		Secret:     testJWTSecret,
		ExpMinutes: testExpMin,
		Issuer:     testIssuer,
	}, log)

	app, err := apphttp.NewApp(apphttp.ServerOptions{
		AppName:     "catalog-admin-test",
		CSRFEnabled: cfg.csrf,
	}, apphttp.RouterDeps{
		AuthUC:     authUC,
		UserUC:     env.users,
		CategoryUC: env.categories,
		ProductUC:  env.products,
		Images:     media.NewImageStore(env.mediaDir),
		Revoker:    cfg.revoker,
		Session:    apphttp.SessionConfig{JWTSecret: testJWTSecret, CookieName: testCookie},
	}, log)
	require.NoError(t, err)
	env.app = app
	return env
}

// createUser da de alta un usuario con la contraseña de test.
func (e *testEnv) createUser(t *testing.T, username string, staff, superuser bool) *dto.UserResponse {
	t.Helper()
	u, err := e.users.Create(context.Background(), dto.UserForm{
		Username:    username,
		Password1:   testPassword,
		Password2:   testPassword,
		IsStaff:     staff,
		IsSuperuser: superuser,
	})
	require.NoError(t, err)
	return u
}

func (e *testEnv) createCategory(t *testing.T, name string) *dto.CategoryResponse {
	t.Helper()
	c, err := e.categories.Create(context.Background(), dto.CategoryForm{Name: name})
	require.NoError(t, err)
	return c
}

func (e *testEnv) createProduct(t *testing.T, categoryID, name, price string) *dto.ProductResponse {
	t.Helper()
	p, err := e.products.Create(context.Background(), categoryID, dto.ProductForm{
		CategoryID: categoryID,
		Name:       name,
		Price:      price,
	})
	require.NoError(t, err)
	return p
}

// tokenFor genera un token de sesión para el usuario.
func tokenFor(t *testing.T, u *dto.UserResponse) string {
	t.Helper()
	tok, _, err := pkgjwt.Generate(testJWTSecret, testIssuer, testExpMin, pkgjwt.Identity{
		UserID:      u.ID,
		Username:    u.Username,
		IsStaff:     u.IsStaff,
		IsSuperuser: u.IsSuperuser,
	})
	require.NoError(t, err, "debe generarse un token JWT válido")
	return tok
}

// get lanza un GET con la cookie de sesión (si token no está vacío).
func (e *testEnv) get(t *testing.T, path, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	return e.do(t, req, token)
}

// post lanza un POST de formulario urlencoded.
func (e *testEnv) post(t *testing.T, path string, form url.Values, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return e.do(t, req, token)
}

func (e *testEnv) do(t *testing.T, req *http.Request, token string) *http.Response {
	t.Helper()
	if token != "" {
		req.AddCookie(&http.Cookie{Name: testCookie, Value: token})
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

package http_test

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategories_CrearActiva(t *testing.T) {
	env := newTestEnv(t)
	root := env.createUser(t, "root", false, true)

	resp := env.post(t, "/categories/create", url.Values{"name": {"Lámparas"}, "description": {"Iluminación"}}, tokenFor(t, root))
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/categories", resp.Header.Get("Location"))

	list, err := env.categories.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Lámparas", list[0].Name)
	assert.True(t, list[0].IsActive)
}

func TestCategories_ListadoPorNombre(t *testing.T) {
	env := newTestEnv(t)
	root := env.createUser(t, "root", false, true)
	env.createCategory(t, "Sofás")
	env.createCategory(t, "Alfombras")

	body := readBody(t, env.get(t, "/categories", tokenFor(t, root)))
	assert.Less(t, strings.Index(body, "Alfombras"), strings.Index(body, "Sofás"))
}

func TestCategories_DescuentoRebajaPrecios(t *testing.T) {
	env := newTestEnv(t)
	root := env.createUser(t, "root", false, true)
	category := env.createCategory(t, "Sofás")
	a := env.createProduct(t, category.ID, "Sofá A", "100")
	b := env.createProduct(t, category.ID, "Sofá B", "200")
	other := env.createCategory(t, "Lámparas")
	lamp := env.createProduct(t, other.ID, "Lámpara", "50")

	resp := env.post(t, "/categories/"+category.ID+"/edit", url.Values{
		"name":      {"Sofás"},
		"is_active": {"true"},
		"discount":  {"10"},
	}, tokenFor(t, root))
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/categories", resp.Header.Get("Location"))

	ctx := context.Background()
	gotA, err := env.products.GetByID(ctx, a.ID)
	require.NoError(t, err)
	gotB, err := env.products.GetByID(ctx, b.ID)
	require.NoError(t, err)
	gotLamp, err := env.products.GetByID(ctx, lamp.ID)
	require.NoError(t, err)

	assert.True(t, gotA.Price.Equal(decimal.NewFromInt(90)), "100 con 10%% = 90, obtenido %s", gotA.Price)
	assert.True(t, gotB.Price.Equal(decimal.NewFromInt(180)), "200 con 10%% = 180, obtenido %s", gotB.Price)
	assert.True(t, gotLamp.Price.Equal(decimal.NewFromInt(50)), "otras categorías no cambian")
}

func TestCategories_DescuentoInvalidoNoEscribe(t *testing.T) {
	env := newTestEnv(t)
	root := env.createUser(t, "root", false, true)
	category := env.createCategory(t, "Sofás")
	p := env.createProduct(t, category.ID, "Sofá A", "100")

	resp := env.post(t, "/categories/"+category.ID+"/edit", url.Values{
		"name":     {"Sofás renombrados"},
		"discount": {"150"},
	}, tokenFor(t, root))
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	got, err := env.products.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.True(t, got.Price.Equal(decimal.NewFromInt(100)))
	cat, err := env.categories.GetByID(context.Background(), category.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sofás", cat.Name)
}

func TestCategories_BorrarDesactiva(t *testing.T) {
	env := newTestEnv(t)
	root := env.createUser(t, "root", false, true)
	category := env.createCategory(t, "Sofás")
	tok := tokenFor(t, root)

	resp := env.get(t, "/categories/"+category.ID+"/delete", tok)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = env.post(t, "/categories/"+category.ID+"/delete", nil, tok)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/categories", resp.Header.Get("Location"))

	got, err := env.categories.GetByID(context.Background(), category.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
}

func TestCategories_ProductosDeLaCategoria(t *testing.T) {
	env := newTestEnv(t)
	root := env.createUser(t, "root", false, true)
	category := env.createCategory(t, "Sofás")
	env.createProduct(t, category.ID, "Zeta", "10")
	inactive := env.createProduct(t, category.ID, "Alfa", "20")
	_, err := env.products.ToggleActive(context.Background(), inactive.ID)
	require.NoError(t, err)

	resp := env.get(t, "/categories/"+category.ID+"/products", tokenFor(t, root))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := readBody(t, resp)
	require.Contains(t, body, "Alfa", "se listan también los inactivos")
	assert.Less(t, strings.Index(body, "Alfa"), strings.Index(body, "Zeta"))
}

func TestCategories_IDInexistente404(t *testing.T) {
	env := newTestEnv(t)
	root := env.createUser(t, "root", false, true)
	tok := tokenFor(t, root)

	for _, path := range []string{
		"/categories/" + uuid.NewString() + "/edit",
		"/categories/" + uuid.NewString() + "/delete",
		"/categories/" + uuid.NewString() + "/products",
	} {
		resp := env.get(t, path, tok)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, "GET %s", path)
	}
}

package routes

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gabrielborzinocontato-debug/SITEBAUTY/app/cart"
	"github.com/gabrielborzinocontato-debug/SITEBAUTY/app/middlewares"
	"github.com/gabrielborzinocontato-debug/SITEBAUTY/app/models"
	"github.com/gabrielborzinocontato-debug/SITEBAUTY/app/utils/sessions"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// O router é testado com a troca de método por fora, como em NewRouter, mas
// sem a camada CSRF para os formulários de teste passarem.
func testHandler(deps Deps) http.Handler {
	return middlewares.MethodOverrideMiddleware(newRouter(deps))
}

func testDeps(t *testing.T) (Deps, sessions.SessionStore) {
	t.Helper()
	store := sessions.NewCookieSessionStore(
		[]byte("0123456789abcdef0123456789abcdef"),
		[]byte("abcdef0123456789abcdef0123456789"),
	)
	return Deps{
		SessionStore: store,
		Carts:        cart.NewStore(),
	}, store
}

// seedSessionCart cria a sessão, devolve o cookie dela e o carrinho associado.
func seedSessionCart(t *testing.T, store sessions.SessionStore, carts *cart.Store) (*http.Cookie, *cart.Cart) {
	t.Helper()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	cartID, err := store.GetOrCreateCartID(rec, req)
	require.NoError(t, err)

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	return cookies[0], carts.GetOrCreate(cartID)
}

func postForm(handler http.Handler, path string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestFormOverrideReachesCartUpdate(t *testing.T) {
	deps, store := testDeps(t)
	handler := testHandler(deps)

	cookie, c := seedSessionCart(t, store, deps.Carts)
	c.AddItem(&models.Product{ID: "p1", Name: "Sérum Vitamina C Radiance", Price: decimal.NewFromFloat(159.90)}, "")

	rec := postForm(handler, "/carrinho/item", url.Values{
		"_method":  {"PUT"},
		"line_key": {"p1"},
		"qty":      {"5"},
	}, cookie)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Contains(t, rec.Header().Get("Location"), "/carrinho")

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Qty)
}

func TestFormOverrideReachesCartDelete(t *testing.T) {
	deps, store := testDeps(t)
	handler := testHandler(deps)

	cookie, c := seedSessionCart(t, store, deps.Carts)
	c.AddItem(&models.Product{ID: "p1", Name: "Batom Matte Velvet Rouge", Price: decimal.NewFromFloat(89.90)}, "")

	rec := postForm(handler, "/carrinho/item", url.Values{
		"_method":  {"DELETE"},
		"line_key": {"p1"},
	}, cookie)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Empty(t, c.Items())
}

func TestProtectedRoutesRedirectAnonymousToLogin(t *testing.T) {
	deps, _ := testDeps(t)
	handler := testHandler(deps)

	for _, path := range []string{"/checkout", "/minha-conta"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusSeeOther, rec.Code, path)
		assert.Contains(t, rec.Header().Get("Location"), "/login", path)
	}
}

func TestCartCountWithoutSessionIsZero(t *testing.T) {
	deps, _ := testDeps(t)
	handler := testHandler(deps)

	req := httptest.NewRequest(http.MethodGet, "/carrinho/count", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "0", rec.Body.String())
}

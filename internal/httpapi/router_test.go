package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/dwikikusuma/shopfront/internal/auth"
	cartapp "github.com/dwikikusuma/shopfront/internal/cart/app"
	catalogapp "github.com/dwikikusuma/shopfront/internal/catalog/app"
	checkoutapp "github.com/dwikikusuma/shopfront/internal/checkout/app"
	"github.com/dwikikusuma/shopfront/internal/checkout/infra/adapter"
	"github.com/dwikikusuma/shopfront/internal/messaging"
	orderapp "github.com/dwikikusuma/shopfront/internal/order/app"
	"github.com/dwikikusuma/shopfront/internal/store/memory"
	userapp "github.com/dwikikusuma/shopfront/internal/user/app"
	"github.com/dwikikusuma/shopfront/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type testAPI struct {
	t      *testing.T
	router *gin.Engine
	store  *memory.Store
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	ctx := context.Background()
	log := logger.Discard()

	store := memory.New()
	catalogSvc := catalogapp.NewService(store.Products())
	_, err := catalogSvc.Seed(ctx, catalogapp.DemoProducts())
	require.NoError(t, err)

	cartSvc := cartapp.NewService(store.Carts(), store.Products())
	checkoutSvc := checkoutapp.NewService(
		adapter.NewCartServiceReader(cartSvc),
		adapter.NewCatalogServiceReader(catalogSvc),
		store,
		messaging.NewLogPublisher(log),
		log,
		checkoutapp.Options{Currency: "USD", Scale: 2, OrdersTopic: "orders.placed"},
	)
	tokens := auth.NewJWT("test-secret", time.Hour)

	router := NewRouter(Deps{
		Catalog:     catalogSvc,
		Cart:        cartSvc,
		Checkout:    checkoutSvc,
		Orders:      orderapp.NewService(store.Orders()),
		Users:       userapp.NewService(store.Users(), cartSvc, tokens, bcrypt.MinCost),
		Tokens:      tokens,
		Log:         log,
		CORSOrigins: []string{"http://localhost:3000"},
	})
	return &testAPI{t: t, router: router, store: store}
}

func (a *testAPI) do(method, path, token string, body any) *httptest.ResponseRecorder {
	a.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(a.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func (a *testAPI) register(email string) string {
	a.t.Helper()
	rec := a.do(http.MethodPost, "/api/auth/register", "", map[string]string{
		"email": email, "password": "secret1", "name": "Test User",
	})
	require.Equal(a.t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(a.t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(a.t, resp.Token)
	return resp.Token
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func TestHealth(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(headerRequestID))
}

func TestProducts(t *testing.T) {
	api := newTestAPI(t)

	t.Run("list filtered by category", func(t *testing.T) {
		rec := api.do(http.MethodGet, "/api/products?category=Sports", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var products []map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
		assert.Len(t, products, 2)
	})

	t.Run("bad price filter", func(t *testing.T) {
		rec := api.do(http.MethodGet, "/api/products?minPrice=cheap", "", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_ARGUMENT", decode(t, rec)["code"])
	})

	t.Run("get unknown", func(t *testing.T) {
		rec := api.do(http.MethodGet, "/api/products/999", "", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("categories", func(t *testing.T) {
		rec := api.do(http.MethodGet, "/api/categories", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var cats []string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cats))
		assert.Equal(t, []string{"Electronics", "Sports", "Home"}, cats)
	})

	t.Run("search requires q", func(t *testing.T) {
		rec := api.do(http.MethodGet, "/api/search", "", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAuthRequired(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodGet, "/api/cart", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = api.do(http.MethodGet, "/api/cart", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHENTICATED", decode(t, rec)["code"])
}

func TestRegisterConflictAndLogin(t *testing.T) {
	api := newTestAPI(t)
	api.register("ann@example.com")

	rec := api.do(http.MethodPost, "/api/auth/register", "", map[string]string{
		"email": "ANN@example.com", "password": "secret1", "name": "Ann",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = api.do(http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "ann@example.com", "password": "wrong-pass",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = api.do(http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "ann@example.com", "password": "secret1",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, decode(t, rec)["token"])
}

func TestCartAndCheckoutFlow(t *testing.T) {
	api := newTestAPI(t)
	token := api.register("bob@example.com")

	rec := api.do(http.MethodPost, "/api/cart/add", token, map[string]any{"productId": "5"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	item := decode(t, rec)["item"].(map[string]any)
	assert.EqualValues(t, 1, item["quantity"])

	rec = api.do(http.MethodPut, fmt.Sprintf("/api/cart/update/%s", item["id"]), token, map[string]any{"quantity": 2})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = api.do(http.MethodGet, "/api/cart/quote", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	total := decode(t, rec)["total"].(map[string]any)
	assert.Equal(t, "179.98", fmt.Sprint(total["amount"]))

	rec = api.do(http.MethodPost, "/api/orders", token, map[string]any{})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	placed := decode(t, rec)["order"].(map[string]any)
	assert.Equal(t, "179.98", fmt.Sprint(placed["total"]))
	assert.Equal(t, "pending", placed["status"])
	assert.Equal(t, "123 Main St, City, State, ZIP", placed["shippingAddress"])
	assert.Equal(t, "credit_card", placed["paymentMethod"])

	p, err := api.store.Products().Get(context.Background(), "5")
	require.NoError(t, err)
	assert.Equal(t, 38, p.Stock)

	rec = api.do(http.MethodGet, "/api/cart", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode(t, rec)["items"])

	rec = api.do(http.MethodGet, "/api/orders", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var orders []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
	require.Len(t, orders, 1)

	rec = api.do(http.MethodGet, "/api/orders/"+placed["id"].(string), token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	other := api.register("eve@example.com")
	rec = api.do(http.MethodGet, "/api/orders/"+placed["id"].(string), other, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCheckoutErrors(t *testing.T) {
	api := newTestAPI(t)
	token := api.register("carl@example.com")

	t.Run("empty cart", func(t *testing.T) {
		rec := api.do(http.MethodPost, "/api/orders", token, map[string]any{})
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "FAILED_PRECONDITION", decode(t, rec)["code"])
	})

	t.Run("unknown product", func(t *testing.T) {
		rec := api.do(http.MethodPost, "/api/cart/add", token, map[string]any{"productId": "nope", "quantity": 1})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("zero quantity", func(t *testing.T) {
		rec := api.do(http.MethodPost, "/api/cart/add", token, map[string]any{"productId": "1", "quantity": 0})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("insufficient stock reports availability", func(t *testing.T) {
		rec := api.do(http.MethodPost, "/api/cart/add", token, map[string]any{"productId": "4", "quantity": 16})
		require.Equal(t, http.StatusConflict, rec.Code)

		details := decode(t, rec)["details"].(map[string]any)
		assert.Equal(t, "4", details["productId"])
		assert.EqualValues(t, 15, details["available"])
	})

	t.Run("update beyond the per-line limit", func(t *testing.T) {
		rec := api.do(http.MethodPost, "/api/cart/add", token, map[string]any{"productId": "1", "quantity": 1})
		require.Equal(t, http.StatusOK, rec.Code)
		item := decode(t, rec)["item"].(map[string]any)

		rec = api.do(http.MethodPut, fmt.Sprintf("/api/cart/update/%s", item["id"]), token, map[string]any{"quantity": 1<<32 + 3})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "invalid input: quantity must be at most 10000", decode(t, rec)["message"])
	})

	t.Run("update without quantity", func(t *testing.T) {
		rec := api.do(http.MethodPut, "/api/cart/update/x", token, map[string]any{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLogoutClearsCart(t *testing.T) {
	api := newTestAPI(t)
	token := api.register("dora@example.com")

	rec := api.do(http.MethodPost, "/api/cart/add", token, map[string]any{"productId": "1", "quantity": 2})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = api.do(http.MethodPost, "/api/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = api.do(http.MethodGet, "/api/cart", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode(t, rec)["items"])
}

func TestCORS(t *testing.T) {
	api := newTestAPI(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/products", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	api.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/products", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec = httptest.NewRecorder()
	api.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestOrderTotalsKeepCurrencyScale(t *testing.T) {
	api := newTestAPI(t)
	token := api.register("fay@example.com")

	rec := api.do(http.MethodPost, "/api/cart/add", token, map[string]any{"productId": "1", "quantity": 1})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = api.do(http.MethodGet, "/api/cart/quote", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":{"currency":"USD","amount":"348.00"}`)

	rec = api.do(http.MethodPost, "/api/orders", token, map[string]any{})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":"348.00"`)

	rec = api.do(http.MethodGet, "/api/orders", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":"348.00"`)
}

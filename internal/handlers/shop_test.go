package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/prudhivi99/Distributed-Systems/minishop-go/internal/catalog"
	"github.com/prudhivi99/Distributed-Systems/minishop-go/internal/customer"
	"github.com/prudhivi99/Distributed-Systems/minishop-go/internal/models"
	"github.com/prudhivi99/Distributed-Systems/minishop-go/internal/shop"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	s := shop.New(catalog.Default(), customer.New(1, "John Doe", "johndoe@example.com", "123 Main St"))
	router := gin.New()
	NewShopHandler(s, zap.NewNop()).Register(router)
	return router
}

func do(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeCart(t *testing.T, w *httptest.ResponseRecorder) CartResponse {
	t.Helper()
	var resp CartResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHealthCheck(t *testing.T) {
	w := do(t, setupRouter(), http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestListProducts(t *testing.T) {
	w := do(t, setupRouter(), http.MethodGet, "/products", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var products []models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	require.Len(t, products, 5)
	assert.Equal(t, "ABC1", products[0].ProductID)
}

func TestGetProduct(t *testing.T) {
	router := setupRouter()

	w := do(t, router, http.MethodGet, "/products/ABCPRO", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "AirPodsPro")
	assert.Contains(t, w.Body.String(), `Price: $15000.000000`)

	w = do(t, router, http.MethodGet, "/products/ZZZ", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddToCart_Merges(t *testing.T) {
	router := setupRouter()

	w := do(t, router, http.MethodPost, "/cart/items", models.AddToCartRequest{ProductID: "ABC1", Quantity: 2})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 16000.0, decodeCart(t, w).Total)

	w = do(t, router, http.MethodPost, "/cart/items", models.AddToCartRequest{ProductID: "ABC1", Quantity: 3})
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeCart(t, do(t, router, http.MethodGet, "/cart", nil))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 5, resp.Items[0].Quantity)
	assert.Equal(t, 40000.0, resp.Items[0].Subtotal)
	assert.Equal(t, 40000.0, resp.Total)
}

func TestAddToCart_UnknownProduct(t *testing.T) {
	router := setupRouter()

	w := do(t, router, http.MethodPost, "/cart/items", models.AddToCartRequest{ProductID: "ZZZ", Quantity: 1})
	assert.Equal(t, http.StatusNotFound, w.Code)

	resp := decodeCart(t, do(t, router, http.MethodGet, "/cart", nil))
	assert.Empty(t, resp.Items)
}

func TestAddToCart_BadRequest(t *testing.T) {
	w := do(t, setupRouter(), http.MethodPost, "/cart/items", map[string]int{"quantity": 1})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClearCart(t *testing.T) {
	router := setupRouter()
	do(t, router, http.MethodPost, "/cart/items", models.AddToCartRequest{ProductID: "ABC2", Quantity: 1})

	w := do(t, router, http.MethodDelete, "/cart", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	resp := decodeCart(t, do(t, router, http.MethodGet, "/cart", nil))
	assert.Empty(t, resp.Items)
	assert.Equal(t, 0.0, resp.Total)
}

func TestCheckout(t *testing.T) {
	router := setupRouter()

	w := do(t, router, http.MethodPost, "/checkout", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	do(t, router, http.MethodPost, "/cart/items", models.AddToCartRequest{ProductID: "ABCMAX", Quantity: 2})
	w = do(t, router, http.MethodPost, "/checkout", nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var order models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.Equal(t, 60000.0, order.TotalAmount)
	assert.NotEmpty(t, order.ID)

	resp := decodeCart(t, do(t, router, http.MethodGet, "/cart", nil))
	assert.Empty(t, resp.Items)
}

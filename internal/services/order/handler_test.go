package order

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spice-and-soul/internal/logger"
)

func newTestHandler(store *fakeStore) *Handler {
	service := newTestService(store, &fakePublisher{})
	return NewHandler(service, logger.New("order-service-test"))
}

func postCheckout(t *testing.T, handler *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.SetupRoutes().ServeHTTP(rec, req)
	return rec
}

const validCheckoutBody = `{
	"cart": [
		{"id": "butter-chicken", "name": "Butter Chicken Masala", "price": 24.99, "quantity": 2}
	],
	"customer": {
		"name": "Priya Sharma",
		"email": "priya@example.com",
		"phone": "555-0134",
		"address": "42 Curry Lane, Portland, OR 97201"
	}
}`

func TestCheckout_Success(t *testing.T) {
	store := &fakeStore{}
	rec := postCheckout(t, newTestHandler(store), validCheckoutBody)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Status  string `json:"status"`
		OrderID string `json:"order_id"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.NotEmpty(t, resp.OrderID)
	assert.Equal(t, "Order placed successfully", resp.Message)

	require.Len(t, store.orders, 1)
	assert.Equal(t, "55.97", store.orders[0].Total.StringFixed(2))
}

func TestCheckout_EmptyCart(t *testing.T) {
	body := `{"cart": [], "customer": {"name": "A", "phone": "1", "address": "x"}}`
	rec := postCheckout(t, newTestHandler(&fakeStore{}), body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Cart is required and must not be empty")
}

func TestCheckout_MissingCustomer(t *testing.T) {
	body := `{"cart": [{"id": "naan", "name": "Naan", "price": 8.99, "quantity": 1}], "customer": {"name": "", "phone": "", "address": ""}}`
	rec := postCheckout(t, newTestHandler(&fakeStore{}), body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Customer information is required")
}

func TestCheckout_MalformedBody(t *testing.T) {
	rec := postCheckout(t, newTestHandler(&fakeStore{}), `{"cart": [`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid JSON format")
}

func TestCheckout_UnknownField(t *testing.T) {
	store := &fakeStore{}
	body := `{
		"cart": [
			{"id": "butter-chicken", "name": "Butter Chicken Masala", "price": 24.99, "quantity": 2}
		],
		"customer": {
			"name": "Priya Sharma",
			"phone": "555-0134",
			"address": "42 Curry Lane, Portland, OR 97201"
		},
		"coupon": "FREEFOOD"
	}`
	rec := postCheckout(t, newTestHandler(store), body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid JSON format")
	// The request never reaches the store.
	assert.Empty(t, store.orders)
}

func TestCheckout_MethodNotAllowed(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/checkout", nil)
	rec := httptest.NewRecorder()
	newTestHandler(&fakeStore{}).SetupRoutes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Contains(t, rec.Body.String(), "Method not allowed")
}

func TestCheckout_WrongContentType(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader(validCheckoutBody))
	req.Header.Set("Content-Type", "text/plain")
	rec := httptest.NewRecorder()
	newTestHandler(&fakeStore{}).SetupRoutes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckout_PersistenceFailure(t *testing.T) {
	store := &fakeStore{createErr: errors.New("insert failed: disk full")}
	rec := postCheckout(t, newTestHandler(store), validCheckoutBody)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to create order")
	// Store detail stays out of the response.
	assert.NotContains(t, rec.Body.String(), "disk full")
}

func TestHealth(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	newTestHandler(&fakeStore{}).SetupRoutes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestHealth_Unhealthy(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	newTestHandler(&fakeStore{pingErr: errors.New("down")}).SetupRoutes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "unhealthy")
}

package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syntriq/cart-service/internal/cart"
	"github.com/syntriq/cart-service/internal/catalog"
	"github.com/syntriq/cart-service/internal/domain/dto"
	"github.com/syntriq/cart-service/internal/middleware"
	"github.com/syntriq/cart-service/internal/mocks"
	"github.com/syntriq/cart-service/internal/service"
)

// newTestRouter builds a full router over an in-memory store and the
// built-in catalog, with rate limiting disabled.
func newTestRouter(t *testing.T) (*gin.Engine, *mocks.CartStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := mocks.NewCartStore()
	carts := cart.NewService(store)

	cfg := DefaultRouterConfig()
	cfg.RateLimit = 0
	cfg.CartService = carts
	cfg.Catalog = catalog.NewDefaultCatalog()
	cfg.CheckoutService = service.NewCheckoutService(carts, nil)

	return NewRouter(NewHealthHandler(), cfg), store
}

// doRequest performs a JSON request against the router, tagging it with
// the given cart key when one is provided.
func doRequest(router *gin.Engine, method, path, cartID string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if cartID != "" {
		req.Header.Set(middleware.CartIDHeader, cartID)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// doRequestWithHeaders performs a body-less request with extra headers.
func doRequestWithHeaders(router *gin.Engine, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Data json.RawMessage `json:"data"`
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.NoError(t, json.Unmarshal(env.Data, v))
}

func decodeCart(t *testing.T, w *httptest.ResponseRecorder) dto.CartResponse {
	t.Helper()
	var resp dto.CartResponse
	decodeData(t, w, &resp)
	return resp
}

func TestGetCart_AssignsCartKey(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/cart", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.CartIDHeader))

	resp := decodeCart(t, w)
	assert.Empty(t, resp.Items)
	assert.Zero(t, resp.Breakdown.Total)
}

func TestAddItem_MergesSameIdentity(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, http.MethodPost, "/api/cart/items", "cart-1", dto.AddItemRequest{
		ProductID: "zcad", Variant: "Professional", Quantity: 2,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodPost, "/api/cart/items", "cart-1", dto.AddItemRequest{
		ProductID: "zcad", Variant: "Professional", Quantity: 3,
	})
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeCart(t, w)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 5, resp.Items[0].Quantity)
	assert.Equal(t, "Professional", resp.Items[0].Variant.Name)

	// 5 x $49/month seats, below the free shipping threshold.
	assert.InDelta(t, 245.0, resp.Breakdown.Subtotal, 0.001)
	assert.InDelta(t, 500.0, resp.Breakdown.Shipping, 0.001)
	assert.Equal(t, 5, resp.Breakdown.ItemCount)
}

func TestAddItem_UnknownProduct(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, http.MethodPost, "/api/cart/items", "cart-1", dto.AddItemRequest{
		ProductID: "hologram-printer",
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), dto.ErrCodeNotFound)
}

func TestAddItem_UnknownVariant(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, http.MethodPost, "/api/cart/items", "cart-1", dto.AddItemRequest{
		ProductID: "3d-printers", Variant: "Quantum",
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddItem_MissingProductID(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, http.MethodPost, "/api/cart/items", "cart-1", map[string]interface{}{
		"quantity": 2,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateQuantity_ZeroRemovesItem(t *testing.T) {
	router, _ := newTestRouter(t)

	doRequest(router, http.MethodPost, "/api/cart/items", "cart-1", dto.AddItemRequest{
		ProductID: "3d-printers", Variant: "Standard",
	})

	w := doRequest(router, http.MethodPatch, "/api/cart/items", "cart-1", dto.UpdateQuantityRequest{
		ProductID: "3d-printers", Variant: "Standard", Quantity: 0,
	})

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeCart(t, w)
	assert.Empty(t, resp.Items)
}

func TestRemoveItem_AbsentIsNoOp(t *testing.T) {
	router, _ := newTestRouter(t)

	doRequest(router, http.MethodPost, "/api/cart/items", "cart-1", dto.AddItemRequest{
		ProductID: "cnc-machines",
	})

	w := doRequest(router, http.MethodDelete, "/api/cart/items", "cart-1", dto.RemoveItemRequest{
		ProductID: "pick-and-place",
	})

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeCart(t, w)
	assert.Len(t, resp.Items, 1)
}

func TestClearCart_DropsDiscount(t *testing.T) {
	router, _ := newTestRouter(t)

	doRequest(router, http.MethodPost, "/api/cart/items", "cart-1", dto.AddItemRequest{
		ProductID: "3d-printers",
	})
	doRequest(router, http.MethodPost, "/api/cart/discount", "cart-1", dto.ApplyDiscountRequest{
		Code: "SYNTRIQ10",
	})

	w := doRequest(router, http.MethodDelete, "/api/cart", "cart-1", nil)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeCart(t, w)
	assert.Empty(t, resp.Items)
	assert.Nil(t, resp.Discount)
}

func TestApplyDiscount(t *testing.T) {
	t.Run("known code is applied", func(t *testing.T) {
		router, _ := newTestRouter(t)

		doRequest(router, http.MethodPost, "/api/cart/items", "cart-1", dto.AddItemRequest{
			ProductID: "3d-printers",
		})

		w := doRequest(router, http.MethodPost, "/api/cart/discount", "cart-1", dto.ApplyDiscountRequest{
			Code: "syntriq10",
		})

		require.Equal(t, http.StatusOK, w.Code)
		var resp dto.DiscountResponse
		decodeData(t, w, &resp)
		assert.True(t, resp.Valid)
		require.NotNil(t, resp.Cart.Discount)
		assert.Equal(t, "SYNTRIQ10", resp.Cart.Discount.Code)
		assert.InDelta(t, 1299.9, resp.Cart.Breakdown.DiscountAmount, 0.001)
	})

	t.Run("unknown code keeps previous discount", func(t *testing.T) {
		router, _ := newTestRouter(t)

		doRequest(router, http.MethodPost, "/api/cart/discount", "cart-1", dto.ApplyDiscountRequest{
			Code: "SAVE50",
		})

		w := doRequest(router, http.MethodPost, "/api/cart/discount", "cart-1", dto.ApplyDiscountRequest{
			Code: "BOGUS99",
		})

		require.Equal(t, http.StatusOK, w.Code, "unknown codes are reported, not errored")
		var resp dto.DiscountResponse
		decodeData(t, w, &resp)
		assert.False(t, resp.Valid)
		require.NotNil(t, resp.Cart.Discount)
		assert.Equal(t, "SAVE50", resp.Cart.Discount.Code)
	})

	t.Run("remove clears the active discount", func(t *testing.T) {
		router, _ := newTestRouter(t)

		doRequest(router, http.MethodPost, "/api/cart/discount", "cart-1", dto.ApplyDiscountRequest{
			Code: "FREESHIP",
		})

		w := doRequest(router, http.MethodDelete, "/api/cart/discount", "cart-1", nil)

		require.Equal(t, http.StatusOK, w.Code)
		resp := decodeCart(t, w)
		assert.Nil(t, resp.Discount)
	})
}

func TestCartsAreIsolated(t *testing.T) {
	router, _ := newTestRouter(t)

	doRequest(router, http.MethodPost, "/api/cart/items", "cart-a", dto.AddItemRequest{
		ProductID: "3d-printers",
	})

	w := doRequest(router, http.MethodGet, "/api/cart", "cart-b", nil)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeCart(t, w)
	assert.Empty(t, resp.Items)
	assert.Equal(t, "cart-b", resp.CartID)
}

func TestMutationsAreWrittenThrough(t *testing.T) {
	router, store := newTestRouter(t)

	doRequest(router, http.MethodPost, "/api/cart/items", "cart-1", dto.AddItemRequest{
		ProductID: "cnc-machines", Variant: "5-Axis",
	})

	record := store.Record("cart-1")
	require.NotNil(t, record)
	require.Len(t, record.Items, 1)
	assert.Equal(t, "cnc-machines", record.Items[0].Product.ID)
}

package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"storefront-gateway/checkout"
	"storefront-gateway/models"
	"storefront-gateway/store"
	"storefront-gateway/upstream"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testEnv wires the state containers against an optional fake backend.
func testEnv(t *testing.T, backend http.HandlerFunc) (*Env, *gin.Engine) {
	t.Helper()

	var api *upstream.Client
	if backend != nil {
		srv := httptest.NewServer(backend)
		t.Cleanup(srv.Close)
		api = upstream.New(srv.URL, 5*time.Second, func() string { return "" }, nil)
	}

	cart := store.NewCart()
	session := store.NewSession(nil)
	location := store.NewLocation(nil)
	service := store.NewServiceability()
	env := &Env{
		API:      api,
		Cart:     cart,
		Session:  session,
		Location: location,
		Service:  service,
		Composer: checkout.NewComposer(api, cart, session, location, service, nil),
		Log:      zap.NewNop(),
	}

	r := gin.New()
	r.GET("/api/cart", env.GetCart)
	r.POST("/api/cart/items", env.AddCartItem)
	r.PATCH("/api/cart/items/:lineId", env.UpdateCartItem)
	r.DELETE("/api/cart/items/:lineId", env.RemoveCartItem)
	r.GET("/api/checkout/quote", env.GetQuote)
	r.POST("/api/checkout", env.SubmitOrder)
	r.POST("/api/vendor/orders/:id/status", env.UpdateVendorOrderStatus)
	return env, r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func menuSnapshot() *models.ServiceabilityResult {
	return &models.ServiceabilityResult{
		IsServiceable:     true,
		DeliveryType:      models.DeliveryInZone,
		DeliveryFeeAmount: 30000,
		Vendor:            &models.Vendor{ID: 3},
		MenuProducts: []models.Product{
			{
				ID: 42, Vendor: 3, Name: "برگر ویژه", BasePrice: 240000,
				OptionGroups: []models.OptionGroup{
					{
						ID: 1, Name: "سس", IsRequired: true, MaxSelect: 2,
						Items: []models.OptionItem{
							{ID: 10, Name: "سس قارچ", PriceDelta: 15000},
							{ID: 12, Name: "بدون سس"},
						},
					},
				},
			},
		},
	}
}

func TestAddCartItemRequiresMenuProduct(t *testing.T) {
	_, r := testEnv(t, nil)
	w := doJSON(t, r, http.MethodPost, "/api/cart/items", gin.H{"product_id": 42})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddCartItemEnforcesRequiredGroup(t *testing.T) {
	env, r := testEnv(t, nil)
	env.Service.Set(menuSnapshot())

	w := doJSON(t, r, http.MethodPost, "/api/cart/items", gin.H{"product_id": 42})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "required")
	assert.Equal(t, 0, env.Cart.Len())
}

func TestAddCartItemPricesLine(t *testing.T) {
	env, r := testEnv(t, nil)
	env.Service.Set(menuSnapshot())

	w := doJSON(t, r, http.MethodPost, "/api/cart/items", gin.H{
		"product_id": 42,
		"quantity":   2,
		"selections": []gin.H{
			{"group_id": 1, "items": []gin.H{{"item_id": 10}}},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Item     models.CartItem `json:"item"`
		Subtotal int64           `json:"subtotal"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(255000), resp.Item.UnitPrice)
	assert.Equal(t, 2, resp.Item.Quantity)
	assert.NotEmpty(t, resp.Item.LineID)
	assert.Equal(t, int64(510000), resp.Subtotal)
}

func TestUpdateCartItemRejectsBadQuantity(t *testing.T) {
	env, r := testEnv(t, nil)
	line := env.Cart.Add(models.CartItem{ProductID: 1, UnitPrice: 100, Quantity: 1})

	w := doJSON(t, r, http.MethodPatch, "/api/cart/items/"+line.LineID, gin.H{"quantity": 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPatch, "/api/cart/items/missing", gin.H{"quantity": 2})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodPatch, "/api/cart/items/"+line.LineID, gin.H{"quantity": 3})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(300), env.Cart.Subtotal())
}

func TestRemoveCartItem(t *testing.T) {
	env, r := testEnv(t, nil)
	line := env.Cart.Add(models.CartItem{ProductID: 1, UnitPrice: 100, Quantity: 1})

	w := doJSON(t, r, http.MethodDelete, "/api/cart/items/"+line.LineID, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, env.Cart.Len())
}

func TestSubmitOrderMapsPreconditionsTo400(t *testing.T) {
	_, r := testEnv(t, nil)
	w := doJSON(t, r, http.MethodPost, "/api/checkout", gin.H{
		"address_id":   1,
		"phone":        "0912",
		"accept_terms": true,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "cart is empty")
}

func TestSubmitOrderHappyPath(t *testing.T) {
	env, r := testEnv(t, func(w http.ResponseWriter, req *http.Request) {
		require.Equal(t, "/orders/orders/", req.URL.Path)
		json.NewEncoder(w).Encode(gin.H{
			"id":          "ord-1",
			"short_code":  "AB12",
			"status":      "PENDING_PAYMENT",
			"payment_url": "https://pay.example/ord-1",
		})
	})
	env.Service.Set(menuSnapshot())
	env.Cart.Add(models.CartItem{ProductID: 42, Vendor: 3, UnitPrice: 280000, Quantity: 1})

	w := doJSON(t, r, http.MethodPost, "/api/checkout", gin.H{
		"address_id":   5,
		"phone":        "09120000000",
		"accept_terms": true,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "https://pay.example/ord-1")
	assert.Equal(t, 0, env.Cart.Len())
	require.NotNil(t, env.Session.ActiveOrder())
	assert.Equal(t, "ord-1", env.Session.ActiveOrder().ID)
}

func TestSubmitOrderUpstreamRejectionKeepsCart(t *testing.T) {
	env, r := testEnv(t, func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(gin.H{"detail": "vendor is closed"})
	})
	env.Service.Set(menuSnapshot())
	env.Cart.Add(models.CartItem{ProductID: 42, Vendor: 3, UnitPrice: 280000, Quantity: 1})

	w := doJSON(t, r, http.MethodPost, "/api/checkout", gin.H{
		"address_id":   5,
		"phone":        "09120000000",
		"accept_terms": true,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "vendor is closed")
	assert.Equal(t, 1, env.Cart.Len())
}

func TestVendorStatusUpdateValidatesTransition(t *testing.T) {
	_, r := testEnv(t, func(w http.ResponseWriter, req *http.Request) {
		// the handler fetches the current order before deciding
		require.Equal(t, http.MethodGet, req.Method)
		json.NewEncoder(w).Encode(gin.H{"id": "ord-9", "status": "PLACED"})
	})

	w := doJSON(t, r, http.MethodPost, "/api/vendor/orders/ord-9/status", gin.H{"status": "DELIVERED"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "invalid transition")
}

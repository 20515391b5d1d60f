package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront-service/internal/cart"
	"storefront-service/internal/checkout"
	"storefront-service/internal/middleware"
	"storefront-service/internal/store"
	"storefront-service/pkg/config"
	"storefront-service/pkg/jwtutil"
	"storefront-service/prometheus"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testConfig = &config.Config{
	ServiceName: "storefront-service",
	Metrics:     config.MetricsConfig{Prefix: "storefront_test"},
	JWT:         config.JWTConfig{SigningKey: "test-signing-key", ExpirationHours: 1},
	Store: config.StoreConfig{
		AdminEmail:     "admin@shop.com",
		AdminPassword:  "admin123",
		DocumentKey:    "main_store",
		WhatsAppNumber: "962790999512",
	},
}

func TestMain(m *testing.M) {
	prometheus.InitMetrics(testConfig)
	jwtutil.Initialize(&testConfig.JWT)
	m.Run()
}

// newTestEnv wires the handler package to fresh in-memory services and
// returns an echo instance with the production routing.
func newTestEnv(t *testing.T) *echo.Echo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	st, err := store.New(db, testConfig.Store.DocumentKey, zap.NewNop())
	require.NoError(t, err)
	carts, err := cart.NewService(db, zap.NewNop())
	require.NoError(t, err)
	co := checkout.NewService(st, carts, testConfig.Store.WhatsAppNumber, zap.NewNop())

	Setup(st, carts, co, nil, testConfig)

	e := echo.New()
	e.GET("/api/state", GetState)
	e.GET("/api/view", ResolveView)
	e.POST("/api/login", Login)
	e.POST("/api/cart", CreateCart)
	e.GET("/api/cart/:key", GetCart)
	e.POST("/api/cart/:key/items", AddCartItem)
	e.PATCH("/api/cart/:key/items/:productId", UpdateCartItem)
	e.DELETE("/api/cart/:key/items/:productId", RemoveCartItem)
	e.DELETE("/api/cart/:key", ClearCart)
	e.POST("/api/cart/:key/checkout", Checkout)
	adminAPI := e.Group("/api/admin", middleware.AuthMiddleware)
	adminAPI.GET("/orders", ListOrders)
	adminAPI.POST("/:collection", AddAdminItem)
	adminAPI.PUT("/:collection/:id", UpdateAdminItem)
	adminAPI.DELETE("/:collection/:id", DeleteAdminItem)
	return e
}

func doJSON(e *echo.Echo, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := jwtutil.GenerateToken(testConfig.Store.AdminEmail)
	require.NoError(t, err)
	return "Bearer " + token
}

func TestLoginIssuesToken(t *testing.T) {
	e := newTestEnv(t)

	rec := doJSON(e, http.MethodPost, "/api/login", `{"email":"admin@shop.com","password":"admin123"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["token"])

	claims, err := jwtutil.ValidateToken(resp["token"])
	require.NoError(t, err)
	assert.Equal(t, "admin@shop.com", claims.Email)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	e := newTestEnv(t)

	rec := doJSON(e, http.MethodPost, "/api/login", `{"email":"admin@shop.com","password":"wrong"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(e, http.MethodPost, "/api/login", `{"email":"someone@else.com","password":"admin123"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetStateETag(t *testing.T) {
	e := newTestEnv(t)

	rec := doJSON(e, http.MethodGet, "/api/state", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	etag := rec.Header().Get("ETag")
	require.NotEmpty(t, etag)
	assert.Equal(t, "1", rec.Header().Get("X-Revision"))

	rec = doJSON(e, http.MethodGet, "/api/state", "", map[string]string{"If-None-Match": etag})
	assert.Equal(t, http.StatusNotModified, rec.Code)
}

func TestResolveViewFallsThroughToHome(t *testing.T) {
	e := newTestEnv(t)

	rec := doJSON(e, http.MethodGet, "/api/view?path=/product/does-not-exist", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var v map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	assert.Equal(t, "home", v["type"])
}

func TestAdminRoutesRequireToken(t *testing.T) {
	e := newTestEnv(t)

	rec := doJSON(e, http.MethodGet, "/api/admin/orders", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/admin/orders", "", map[string]string{"Authorization": "Bearer not-a-token"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/admin/orders", "", map[string]string{"Authorization": adminToken(t)})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCartFlow(t *testing.T) {
	e := newTestEnv(t)

	// Seed the document so p1 exists
	rec := doJSON(e, http.MethodGet, "/api/state", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodPost, "/api/cart", "", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created struct {
		Key string `json:"key"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEmpty(t, created.Key)

	rec = doJSON(e, http.MethodPost, "/api/cart/"+created.Key+"/items", `{"productId":"p1"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var cartResp struct {
		Items []struct {
			Quantity int `json:"quantity"`
		} `json:"items"`
		Total float64 `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cartResp))
	require.Len(t, cartResp.Items, 1)
	assert.Equal(t, 120.0, cartResp.Total)

	// Unknown products can't be added
	rec = doJSON(e, http.MethodPost, "/api/cart/"+created.Key+"/items", `{"productId":"ghost"}`, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(e, http.MethodPatch, "/api/cart/"+created.Key+"/items/p1", `{"delta":2}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cartResp))
	assert.Equal(t, 3, cartResp.Items[0].Quantity)

	rec = doJSON(e, http.MethodDelete, "/api/cart/"+created.Key+"/items/p1", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cartResp))
	assert.Empty(t, cartResp.Items)
}

func TestCheckoutHandlerValidation(t *testing.T) {
	e := newTestEnv(t)

	// Empty fields are rejected before any state changes
	rec := doJSON(e, http.MethodPost, "/api/cart/k1/checkout", `{"customerName":"","phoneNumber":""}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// An empty cart can't check out either
	rec = doJSON(e, http.MethodPost, "/api/cart/k1/checkout", `{"customerName":"Ahmad","phoneNumber":"079"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckoutHandlerHappyPath(t *testing.T) {
	e := newTestEnv(t)

	doJSON(e, http.MethodGet, "/api/state", "", nil)
	rec := doJSON(e, http.MethodPost, "/api/cart/k1/items", `{"productId":"p2"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodPost, "/api/cart/k1/checkout", `{"customerName":"Ahmad","phoneNumber":"0790000000"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var result struct {
		Order struct {
			ID    string  `json:"id"`
			Total float64 `json:"total"`
		} `json:"order"`
		WhatsAppURL string `json:"whatsappUrl"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 85.0, result.Order.Total)
	assert.Contains(t, result.WhatsAppURL, "https://wa.me/962790999512?text=")

	// The order shows up for the admin, newest first
	rec = doJSON(e, http.MethodGet, "/api/admin/orders", "", map[string]string{"Authorization": adminToken(t)})
	require.Equal(t, http.StatusOK, rec.Code)
	var orders []struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
	require.NotEmpty(t, orders)
	assert.Equal(t, result.Order.ID, orders[0].ID)
}

func TestAdminCRUDFlow(t *testing.T) {
	e := newTestEnv(t)
	auth := map[string]string{"Authorization": adminToken(t)}

	// Create
	rec := doJSON(e, http.MethodPost, "/api/admin/products", "", auth)
	require.Equal(t, http.StatusCreated, rec.Code)
	var createResp struct {
		ID       string `json:"id"`
		Revision int64  `json:"revision"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &createResp))
	require.NotEmpty(t, createResp.ID)

	// Update with a shallow partial
	rec = doJSON(e, http.MethodPut, "/api/admin/products/"+createResp.ID, `{"name":"Updated","price":99}`, auth)
	require.Equal(t, http.StatusOK, rec.Code)

	// The state document reflects the edit
	rec = doJSON(e, http.MethodGet, "/api/state", "", nil)
	var state struct {
		Products []struct {
			ID    string  `json:"id"`
			Name  string  `json:"name"`
			Price float64 `json:"price"`
		} `json:"products"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	assert.Equal(t, createResp.ID, state.Products[0].ID)
	assert.Equal(t, "Updated", state.Products[0].Name)
	assert.Equal(t, 99.0, state.Products[0].Price)

	// Delete
	rec = doJSON(e, http.MethodDelete, "/api/admin/products/"+createResp.ID, "", auth)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodDelete, "/api/admin/products/"+createResp.ID, "", auth)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminUnknownCollection(t *testing.T) {
	e := newTestEnv(t)
	auth := map[string]string{"Authorization": adminToken(t)}

	rec := doJSON(e, http.MethodPost, "/api/admin/widgets", "", auth)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminRevisionConflict(t *testing.T) {
	e := newTestEnv(t)
	auth := adminToken(t)

	// Seed and capture the current revision
	rec := doJSON(e, http.MethodGet, "/api/state", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	stale := rec.Header().Get("X-Revision")

	// A write bumps the revision past the one we captured
	rec = doJSON(e, http.MethodPost, "/api/admin/categories", "", map[string]string{"Authorization": auth})
	require.Equal(t, http.StatusCreated, rec.Code)

	// Writing with the stale revision is rejected
	rec = doJSON(e, http.MethodPost, "/api/admin/categories", "", map[string]string{
		"Authorization": auth,
		"X-Revision":    stale,
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

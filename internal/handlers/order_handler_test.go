package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/hitteshkharyal/Analytics-Dashboard/internal/cart"
	"github.com/hitteshkharyal/Analytics-Dashboard/internal/config"
	"github.com/hitteshkharyal/Analytics-Dashboard/internal/models"
	"github.com/hitteshkharyal/Analytics-Dashboard/internal/repository"
	"github.com/hitteshkharyal/Analytics-Dashboard/internal/services"
	"github.com/hitteshkharyal/Analytics-Dashboard/internal/session"
)

type testEnv struct {
	router   *gin.Engine
	products repository.ProductRepository
	orders   repository.OrderRepository
}

// newTestEnv wires the full handler stack against an in-memory database and
// cart store, with the same routes the server registers.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Product{}, &models.Order{}, &models.OrderItem{}))

	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	carts := session.NewMemoryStore(time.Minute)

	inventoryService := services.NewInventoryService(productRepo)
	orderService := services.NewOrderService(orderRepo, productRepo)
	reportService := services.NewReportService(productRepo, orderRepo, 2)

	cfg := &config.Config{
		Site:  config.SiteConfig{Name: "Test Shop", Tagline: "Testing", Currency: "₹"},
		Embed: config.EmbedConfig{Title: "Report", URL: "https://example.com/report", Height: 600},
	}

	inventoryHandler := NewInventoryHandler(inventoryService)
	orderHandler := NewOrderHandler(orderService, carts)
	reportHandler := NewReportHandler(reportService)
	siteHandler := NewSiteHandler(cfg)

	router := gin.New()
	api := router.Group("/api")
	{
		api.GET("/products", inventoryHandler.ListProducts)
		api.POST("/products", inventoryHandler.CreateProduct)
		api.POST("/products/:id/stock", inventoryHandler.AddStock)

		api.GET("/cart", orderHandler.GetCart)
		api.POST("/cart/items", orderHandler.AddCartItem)
		api.DELETE("/cart", orderHandler.ClearCart)
		api.POST("/orders", orderHandler.FinalizeOrder)
		api.GET("/orders", orderHandler.ListOrders)
		api.GET("/orders/:id", orderHandler.GetOrder)

		api.GET("/reports/dashboard", reportHandler.Dashboard)
		api.GET("/reports/best-sellers", reportHandler.BestSellers)
		api.GET("/reports/top-profit", reportHandler.TopProfit)
		api.GET("/reports/customers-per-hour", reportHandler.CustomersPerHour)
		api.GET("/reports/low-stock", reportHandler.LowStock)
		api.GET("/reports/summary", reportHandler.Summary)

		api.GET("/site", siteHandler.SiteInfo)
		api.GET("/dashboard/embed", siteHandler.EmbedConfig)
	}

	return &testEnv{router: router, products: productRepo, orders: orderRepo}
}

func (e *testEnv) seedProduct(t *testing.T, name string, cost, sell float64, stock int) *models.Product {
	t.Helper()

	p := &models.Product{Name: name, CostPrice: cost, SellingPrice: sell, StockQty: stock}
	require.NoError(t, e.products.Create(p))
	return p
}

// request marshals body (nil for none) and replays it through the router.
// sessionID, when set, rides the cart session header.
func (e *testEnv) request(t *testing.T, method, path string, body any, sessionID string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if sessionID != "" {
		req.Header.Set(SessionHeader, sessionID)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, target any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), target), "body: %s", w.Body.String())
}

type cartPreview struct {
	SessionID   string                `json:"session_id"`
	Items       []services.PricedLine `json:"items"`
	TotalAmount float64               `json:"total_amount"`
}

func TestCartCheckoutFlow(t *testing.T) {
	env := newTestEnv(t)
	milk := env.seedProduct(t, "Milk 1L", 20, 25, 50)
	bread := env.seedProduct(t, "Bread Loaf", 15, 20, 30)

	// First add without a session header mints one.
	w := env.request(t, http.MethodPost, "/api/cart/items", gin.H{"product_id": milk.ID, "qty": 2}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var added struct {
		SessionID string `json:"session_id"`
		Items     int    `json:"items"`
	}
	decode(t, w, &added)
	require.NotEmpty(t, added.SessionID)
	assert.Equal(t, 1, added.Items)
	sid := added.SessionID

	w = env.request(t, http.MethodPost, "/api/cart/items", gin.H{"product_id": bread.ID, "qty": 1}, sid)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Preview prices against the current catalog.
	w = env.request(t, http.MethodGet, "/api/cart", nil, sid)
	require.Equal(t, http.StatusOK, w.Code)

	var preview cartPreview
	decode(t, w, &preview)
	assert.Equal(t, sid, preview.SessionID)
	require.Len(t, preview.Items, 2)
	assert.InDelta(t, 70.0, preview.TotalAmount, 1e-9)

	w = env.request(t, http.MethodPost, "/api/orders", gin.H{"customer_name": "Amit"}, sid)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var saved struct {
		OrderID     uint    `json:"order_id"`
		TotalAmount float64 `json:"total_amount"`
	}
	decode(t, w, &saved)
	require.NotZero(t, saved.OrderID)
	assert.InDelta(t, 70.0, saved.TotalAmount, 1e-9)

	// Checkout consumed the session's cart.
	w = env.request(t, http.MethodGet, "/api/cart", nil, sid)
	require.Equal(t, http.StatusOK, w.Code)
	preview = cartPreview{}
	decode(t, w, &preview)
	assert.Empty(t, preview.Items)

	w = env.request(t, http.MethodPost, "/api/orders", nil, sid)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// The saved order is readable with its lines.
	w = env.request(t, http.MethodGet, fmt.Sprintf("/api/orders/%d", saved.OrderID), nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var order models.Order
	decode(t, w, &order)
	assert.Equal(t, "Amit", order.CustomerName)
	assert.Len(t, order.Items, 2)

	// Stock reflects the sale.
	updated, err := env.products.GetByID(milk.ID)
	require.NoError(t, err)
	assert.Equal(t, 48, updated.StockQty)
}

func TestFinalizeWithoutBodyUsesWalkIn(t *testing.T) {
	env := newTestEnv(t)
	soap := env.seedProduct(t, "Soap", 10, 20, 5)

	w := env.request(t, http.MethodPost, "/api/cart/items", gin.H{"product_id": soap.ID, "qty": 1}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var added struct {
		SessionID string `json:"session_id"`
	}
	decode(t, w, &added)

	w = env.request(t, http.MethodPost, "/api/orders", nil, added.SessionID)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var saved struct {
		OrderID uint `json:"order_id"`
	}
	decode(t, w, &saved)

	order, err := env.orders.GetByID(saved.OrderID)
	require.NoError(t, err)
	assert.Equal(t, services.DefaultCustomerName, order.CustomerName)
}

func TestAddCartItemRejectsBadRequests(t *testing.T) {
	env := newTestEnv(t)
	env.seedProduct(t, "Milk 1L", 20, 25, 50)

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"unknown product", `{"product_id": 999, "qty": 1}`, http.StatusNotFound},
		{"zero qty", `{"product_id": 1, "qty": 0}`, http.StatusBadRequest},
		{"missing product", `{"qty": 2}`, http.StatusBadRequest},
		{"malformed json", `{"product_id":`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/cart/items", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			env.router.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code, w.Body.String())
		})
	}
}

func TestClearCart(t *testing.T) {
	env := newTestEnv(t)
	soap := env.seedProduct(t, "Soap", 10, 20, 5)

	w := env.request(t, http.MethodPost, "/api/cart/items", gin.H{"product_id": soap.ID, "qty": 3}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var added struct {
		SessionID string `json:"session_id"`
	}
	decode(t, w, &added)

	w = env.request(t, http.MethodDelete, "/api/cart", nil, added.SessionID)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.request(t, http.MethodGet, "/api/cart", nil, added.SessionID)
	require.Equal(t, http.StatusOK, w.Code)

	var preview cartPreview
	decode(t, w, &preview)
	assert.Empty(t, preview.Items)
	assert.Zero(t, preview.TotalAmount)
}

func TestGetOrderErrors(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodGet, "/api/orders/abc", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.request(t, http.MethodGet, "/api/orders/424242", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListOrdersHonorsLimit(t *testing.T) {
	env := newTestEnv(t)
	soap := env.seedProduct(t, "Soap", 10, 20, 50)

	now := time.Now()
	for i := 0; i < 3; i++ {
		_, err := env.orders.CreateWithItems("Walk-in", now.Add(-time.Duration(i)*time.Hour), []cart.Line{{ProductID: soap.ID, Qty: 1}})
		require.NoError(t, err)
	}

	w := env.request(t, http.MethodGet, "/api/orders?limit=2", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Orders []models.Order `json:"orders"`
		Count  int            `json:"count"`
	}
	decode(t, w, &resp)
	require.Equal(t, 2, resp.Count)
	assert.True(t, resp.Orders[0].OrderTime.After(resp.Orders[1].OrderTime), "newest order first")
}

package router_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/guilhermehba/estoque-ferro-velho/internal/config"
	"github.com/guilhermehba/estoque-ferro-velho/internal/dto"
	"github.com/guilhermehba/estoque-ferro-velho/internal/repository/memory"
	"github.com/guilhermehba/estoque-ferro-velho/internal/router"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memory.NewStore()
	store.Seed()
	cfg := &config.Config{
		Env:                "test",
		StorageMode:        "memory",
		JWTSecret:          "test-secret",
		JWTExpirationHours: 1,
		JWTRefreshHours:    24,
	}
	repos := router.Repos{
		Stock:     store.Stock(),
		Purchases: store.Purchases(),
		Sales:     store.Sales(),
		Users:     store.Users(),
	}
	return router.New(cfg, nil, nil, repos, nil)
}

func login(t *testing.T, r *gin.Engine) string {
	t.Helper()
	body, _ := json.Marshal(dto.LoginRequest{Email: memory.DemoEmail, Password: memory.DemoPassword})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp dto.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

func authedGet(r *gin.Engine, token, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"db":"memory"`)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/stock", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestStockListWithToken(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r)

	w := authedGet(r, token, "/v1/stock")
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.StockListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 4) // seeded demo aggregates
}

func TestDashboardWithToken(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r)

	w := authedGet(r, token, "/v1/dashboard")
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.DashboardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 4, resp.StockItemCount)
}

func TestCashflowExportStreamsPDF(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r)

	w := authedGet(r, token, "/v1/cashflow/export")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF"))
}

func TestCashflowAsyncExportWithoutQueue(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/cashflow/export", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	// no dispatcher wired: the async path degrades to 503
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestMeEndpoint(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r)

	w := authedGet(r, token, "/v1/auth/me")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), memory.DemoEmail)
}

func TestSaleRoundTripOverHTTP(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r)

	// find the seeded Iron aggregate
	w := authedGet(r, token, "/v1/stock")
	require.Equal(t, http.StatusOK, w.Code)
	var stock dto.StockListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stock))

	var ironID string
	for _, item := range stock.Data {
		if item.Name == "Iron" {
			ironID = item.ID
		}
	}
	require.NotEmpty(t, ironID)

	body := `{"date":"2025-03-12","payment_type":"cash","stock_item_id":"` + ironID + `","weight":"10","price_per_kg":"4"}`
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/sales", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var sale dto.SaleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sale))
	assert.Equal(t, "Iron", sale.ItemName)
	assert.Equal(t, "40", sale.TotalValue.String())
}

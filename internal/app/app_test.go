package app

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syntriq/cart-service/config"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	cfg := config.Load()
	cfg.Store.Dir = t.TempDir()
	cfg.Database.Enabled = false
	cfg.Auth.Enabled = false
	return cfg
}

func TestInitializeServices_FileStoreFallback(t *testing.T) {
	components := InitializeServices(config.StoreConfig{Dir: t.TempDir()}, nil)

	require.NotNil(t, components)
	assert.NotNil(t, components.CartStore)
	assert.NotNil(t, components.Carts)
	assert.NotNil(t, components.Catalog)
	assert.NotNil(t, components.Checkout)
}

func TestInitializeDatabase_Disabled(t *testing.T) {
	assert.Nil(t, InitializeDatabase(config.DatabaseConfig{Enabled: false}))
}

func TestInitializeRouter_WithoutDatabase(t *testing.T) {
	cfg := testConfig(t)
	services := InitializeServices(cfg.Store, nil)

	components := InitializeRouter(services, nil, cfg)

	require.NotNil(t, components)
	assert.NotNil(t, components.HealthHandler)
	assert.Nil(t, components.Config.AuthService, "no sessions without a database")
	assert.NotNil(t, components.Config.CartService)
}

func TestInitializeApp(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := InitializeApp(testConfig(t))
	require.NotNil(t, router)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/cart", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

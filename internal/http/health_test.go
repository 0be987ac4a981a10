package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestLiveness(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewHealthHandler().Register(router)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ok"`)
}

func TestReadiness(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("no checkers", func(t *testing.T) {
		router := gin.New()
		NewHealthHandler().Register(router)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("failing checker degrades", func(t *testing.T) {
		router := gin.New()
		handler := NewHealthHandler()
		handler.RegisterChecker("store", HealthCheckFunc(func() error {
			return errors.New("connection refused")
		}))
		handler.Register(router)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), "degraded")
		assert.Contains(t, w.Body.String(), "connection refused")
	})
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoggerTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(LoggerMiddleware())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return router
}

func TestLoggerMiddlewareGeneratesRequestID(t *testing.T) {
	router := newLoggerTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestLoggerMiddlewareAcceptsShortRequestID(t *testing.T) {
	router := newLoggerTestRouter()

	for _, id := range []string{"abc", "a", "1234567", "12345678"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Request-ID", id)

		require.NotPanics(t, func() {
			router.ServeHTTP(w, req)
		}, id)
		assert.Equal(t, http.StatusOK, w.Code, id)
		assert.Equal(t, id, w.Header().Get("X-Request-ID"), id)
	}
}

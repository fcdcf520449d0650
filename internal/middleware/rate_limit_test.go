package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go-leave/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimitByIP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/login", middleware.RateLimitByIP(0.001, 2), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimitByUser(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limiter := middleware.RateLimitByUser(0.001, 1)
	serve := func(userID string) int {
		r := gin.New()
		r.GET("/me", func(c *gin.Context) {
			if userID != "" {
				c.Set(middleware.ContextUserID, userID)
			}
			c.Next()
		}, limiter, func(c *gin.Context) { c.Status(http.StatusOK) })
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
		return w.Code
	}

	assert.Equal(t, http.StatusOK, serve("u1"))
	assert.Equal(t, http.StatusTooManyRequests, serve("u1"))
	assert.Equal(t, http.StatusOK, serve("u2"))
	assert.Equal(t, http.StatusOK, serve(""))
	assert.Equal(t, http.StatusOK, serve(""))
}

func TestKeyRateLimiter_ReusesLimiterPerKey(t *testing.T) {
	l := middleware.NewKeyRateLimiter(1, 1)
	assert.Same(t, l.GetLimiter("a"), l.GetLimiter("a"))
	assert.NotSame(t, l.GetLimiter("a"), l.GetLimiter("b"))
}

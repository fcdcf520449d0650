package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-leave/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

const (
	idempCacheKey = "idemp:/leaves:user-1:abc"
	idempLockKey  = idempCacheKey + ":lock"
)

func newIdempotencyRouter(rdb *redis.Client, handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/leaves", func(c *gin.Context) {
		c.Set(middleware.ContextUserID, "user-1")
		c.Next()
	}, middleware.Idempotency(rdb), handler)
	return r
}

func postWithKey(r *gin.Engine, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/leaves", nil)
	if key != "" {
		req.Header.Set(middleware.HeaderIdempotencyKey, key)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIdempotency_FirstRequestCachesResponse(t *testing.T) {
	rdb, mock := redismock.NewClientMock()

	mock.ExpectGet(idempCacheKey).RedisNil()
	mock.ExpectSetNX(idempLockKey, "locked", 30*time.Second).SetVal(true)
	mock.ExpectSet(idempCacheKey, []byte(`{"id":"1"}`), 24*time.Hour).SetVal("OK")
	mock.ExpectDel(idempLockKey).SetVal(1)

	r := newIdempotencyRouter(rdb, func(c *gin.Context) {
		defer middleware.ReleaseIdempotency(c, rdb)
		middleware.StoreIdempotentResponse(c, rdb, map[string]string{"id": "1"})
		c.Status(http.StatusCreated)
	})

	w := postWithKey(r, "abc")
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotency_ReplaysCachedResponse(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	mock.ExpectGet(idempCacheKey).SetVal(`{"id":"1"}`)

	called := false
	r := newIdempotencyRouter(rdb, func(c *gin.Context) { called = true })

	w := postWithKey(r, "abc")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "true", w.Header().Get("Idempotent-Replayed"))
	assert.Contains(t, w.Body.String(), `"id":"1"`)
	assert.False(t, called)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotency_InFlightDuplicateConflicts(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	mock.ExpectGet(idempCacheKey).RedisNil()
	mock.ExpectSetNX(idempLockKey, "locked", 30*time.Second).SetVal(false)

	r := newIdempotencyRouter(rdb, func(c *gin.Context) { c.Status(http.StatusCreated) })

	w := postWithKey(r, "abc")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "PROCESSING")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotency_RedisDownPassesThrough(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	mock.ExpectGet(idempCacheKey).RedisNil()
	mock.ExpectSetNX(idempLockKey, "locked", 30*time.Second).SetErr(errors.New("connection refused"))

	r := newIdempotencyRouter(rdb, func(c *gin.Context) { c.Status(http.StatusCreated) })

	w := postWithKey(r, "abc")
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestIdempotency_WithoutHeader(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	r := newIdempotencyRouter(rdb, func(c *gin.Context) { c.Status(http.StatusCreated) })

	w := postWithKey(r, "")
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

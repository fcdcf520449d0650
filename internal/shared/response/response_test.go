package response_test

import (
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-leave/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestNewPaginationMeta(t *testing.T) {
	meta := response.NewPaginationMeta(11, 2, 5)
	assert.Equal(t, int64(11), meta.Total)
	assert.Equal(t, 3, meta.TotalPages)
	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 5, meta.PageSize)

	assert.Equal(t, 0, response.NewPaginationMeta(3, 1, 0).TotalPages)
}

func TestPageParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("defaults", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/leaves", nil)
		page, size := response.PageParams(c, 10)
		assert.Equal(t, 1, page)
		assert.Equal(t, 10, size)
	})

	t.Run("invalid values fall back", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/leaves?page=-3&page_size=abc", nil)
		page, size := response.PageParams(c, 20)
		assert.Equal(t, 1, page)
		assert.Equal(t, 20, size)
	})
}

func TestPageBounds(t *testing.T) {
	start, end := response.PageBounds(7, 2, 5)
	assert.Equal(t, 5, start)
	assert.Equal(t, 7, end)

	start, end = response.PageBounds(7, 4, 5)
	assert.Equal(t, 7, start)
	assert.Equal(t, 7, end)

	t.Run("huge page does not overflow", func(t *testing.T) {
		start, end := response.PageBounds(6, 4611686018427387904, 10)
		assert.Equal(t, 6, start)
		assert.Equal(t, 6, end)
	})

	t.Run("huge page size", func(t *testing.T) {
		start, end := response.PageBounds(6, 2, math.MaxInt)
		assert.Equal(t, 6, start)
		assert.Equal(t, 6, end)

		start, end = response.PageBounds(6, 1, math.MaxInt)
		assert.Equal(t, 0, start)
		assert.Equal(t, 6, end)
	})

	t.Run("empty list", func(t *testing.T) {
		start, end := response.PageBounds(0, 1, 10)
		assert.Equal(t, 0, start)
		assert.Equal(t, 0, end)
	})
}

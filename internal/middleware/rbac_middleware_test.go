package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-leave/internal/domain"
	"go-leave/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeRBAC struct {
	enforceFn func(req domain.EnforceRequest) (bool, error)
}

func (f *fakeRBAC) Enforce(req domain.EnforceRequest) (bool, error) {
	return f.enforceFn(req)
}

func TestRBACAuthorize(t *testing.T) {
	gin.SetMode(gin.TestMode)

	serve := func(svc middleware.RBACService, role string) *httptest.ResponseRecorder {
		r := gin.New()
		r.POST("/leaves/:id/approve", func(c *gin.Context) {
			if role != "" {
				c.Set(middleware.ContextRole, role)
			}
			c.Next()
		}, middleware.RBACAuthorize(svc, "leave", "approve"), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/leaves/1/approve", nil))
		return w
	}

	t.Run("allowed", func(t *testing.T) {
		var got domain.EnforceRequest
		svc := &fakeRBAC{enforceFn: func(req domain.EnforceRequest) (bool, error) {
			got = req
			return true, nil
		}}
		w := serve(svc, "admin")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, domain.EnforceRequest{Role: "admin", Resource: "leave", Action: "approve"}, got)
	})

	t.Run("denied", func(t *testing.T) {
		svc := &fakeRBAC{enforceFn: func(domain.EnforceRequest) (bool, error) { return false, nil }}
		w := serve(svc, "user")
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "leave:approve")
	})

	t.Run("enforcer error", func(t *testing.T) {
		svc := &fakeRBAC{enforceFn: func(domain.EnforceRequest) (bool, error) { return false, errors.New("boom") }}
		w := serve(svc, "admin")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("no role in context", func(t *testing.T) {
		svc := &fakeRBAC{enforceFn: func(domain.EnforceRequest) (bool, error) { return true, nil }}
		w := serve(svc, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

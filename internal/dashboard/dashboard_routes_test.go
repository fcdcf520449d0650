package dashboard_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-leave/internal/dashboard"
	"go-leave/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

const routesSecret = "routes-secret"

type allowAll struct{}

func (allowAll) Enforce(domain.EnforceRequest) (bool, error) { return true, nil }

func serveAs(t *testing.T, svc dashboard.Service, role, path string) *httptest.ResponseRecorder {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "user-1",
		"email":   "someone@example.com",
		"name":    "Someone",
		"role":    role,
		"exp":     time.Now().Add(time.Minute).Unix(),
	}).SignedString([]byte(routesSecret))
	assert.NoError(t, err)

	r := gin.New()
	dashboard.RegisterRoutes(r.Group("/api/v1"), dashboard.NewHandler(svc), allowAll{}, routesSecret)

	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterRoutes_AdminRoleGate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeDashboardService{
		employeeFn: func(ctx context.Context, viewer dashboard.Viewer) (dashboard.EmployeeDashboard, error) {
			return dashboard.EmployeeDashboard{Name: viewer.Name, Email: viewer.Email}, nil
		},
		adminFn: func(ctx context.Context) (dashboard.AdminDashboard, error) {
			return dashboard.AdminDashboard{TotalEmployees: 3}, nil
		},
	}

	t.Run("user is forbidden from admin dashboard even when policy allows", func(t *testing.T) {
		w := serveAs(t, svc, domain.RoleUser, "/api/v1/admin/dashboard")
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("user still reaches own dashboard", func(t *testing.T) {
		w := serveAs(t, svc, domain.RoleUser, "/api/v1/dashboard")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("admin reaches admin dashboard", func(t *testing.T) {
		w := serveAs(t, svc, domain.RoleAdmin, "/api/v1/admin/dashboard")
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

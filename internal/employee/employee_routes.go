package employee

import (
	"go-leave/internal/domain"
	"go-leave/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService, secret string) {
	employees := r.Group("/admin/employees")
	employees.Use(middleware.AuthMiddleware(secret), middleware.ExtractUserID(), middleware.RoleMiddleware(domain.RoleAdmin))
	{
		employees.GET("", middleware.RBACAuthorize(rbacService, "employee", "read"), handler.List)
	}
}

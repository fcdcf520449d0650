package dashboard

import (
	"go-leave/internal/domain"
	"go-leave/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService, secret string) {
	authed := r.Group("")
	authed.Use(middleware.AuthMiddleware(secret), middleware.ExtractUserID())
	{
		authed.GET("/dashboard", middleware.RBACAuthorize(rbacService, "dashboard", "read"), handler.Employee)
	}

	admin := authed.Group("/admin")
	admin.Use(middleware.RoleMiddleware(domain.RoleAdmin))
	{
		admin.GET("/dashboard", middleware.RBACAuthorize(rbacService, "dashboard", "admin"), handler.Admin)
	}
}

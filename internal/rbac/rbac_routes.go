package rbac

import (
	"go-leave/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, secret string) {
	g := r.Group("/rbac")
	g.Use(middleware.AuthMiddleware(secret))
	{
		g.GET("/permissions", handler.Permissions)
		g.POST("/enforce", handler.Enforce)
	}
}

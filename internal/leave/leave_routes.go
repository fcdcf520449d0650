package leave

import (
	"go-leave/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RegisterRoutes mounts the leave endpoints. stream serves the storage
// event feed and may be nil.
func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	rdb *redis.Client,
	secret string,
	stream gin.HandlerFunc,
) {
	leaves := r.Group("/leaves")
	leaves.Use(middleware.AuthMiddleware(secret), middleware.ExtractUserID())
	{
		leaves.POST("",
			middleware.RBACAuthorize(rbacService, "leave", "create"),
			middleware.RateLimitByUser(1, 5),
			middleware.Idempotency(rdb),
			handler.Submit,
		)
		leaves.GET("/history", middleware.RBACAuthorize(rbacService, "leave", "read_own"), handler.GetHistory)
		if stream != nil {
			leaves.GET("/events", stream)
		}

		leaves.GET("", middleware.RBACAuthorize(rbacService, "leave", "read_all"), handler.GetAll)
		leaves.GET("/export", middleware.RBACAuthorize(rbacService, "leave", "export"), handler.Export)
		leaves.GET("/:id", middleware.RBACAuthorize(rbacService, "leave", "read_all"), handler.GetByID)
		leaves.POST("/:id/approve", middleware.RBACAuthorize(rbacService, "leave", "approve"), handler.Approve)
		leaves.POST("/:id/reject", middleware.RBACAuthorize(rbacService, "leave", "approve"), handler.Reject)
	}
}

package middleware

import (
	"go-leave/internal/domain"
	"go-leave/internal/shared/apperror"
	"go-leave/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// RBACService is satisfied by rbac.Service; declared here so middleware does
// not import the rbac package.
type RBACService interface {
	Enforce(req domain.EnforceRequest) (bool, error)
}

func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ContextRole)
		if role == "" {
			abortWithError(c, apperror.ErrUnauthorized)
			return
		}

		allowed, err := service.Enforce(domain.EnforceRequest{
			Role:     role,
			Resource: resource,
			Action:   action,
		})
		if err != nil {
			abortWithError(c, apperror.ErrInternal)
			return
		}

		if !allowed {
			c.AbortWithStatusJSON(apperror.ErrForbidden.HTTPStatus, response.ApiEnvelope{
				Ok: false,
				Error: map[string]any{
					"code":    apperror.ErrForbidden.Code,
					"message": apperror.ErrForbidden.Message,
					"details": gin.H{"required": resource + ":" + action},
				},
			})
			return
		}
		c.Next()
	}
}

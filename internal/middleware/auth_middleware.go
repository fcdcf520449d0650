package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	autherrors "go-leave/internal/auth/errors"
	"go-leave/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Keys the auth middleware stores on the gin context.
const (
	ContextUserID = "user_id"
	ContextEmail  = "email"
	ContextName   = "name"
	ContextRole   = "role"
)

// tokenFromRequest looks at the Authorization header, then the access_token
// cookie, then the token query parameter. EventSource clients cannot set
// headers, so the query fallback is what the SSE stream relies on.
func tokenFromRequest(c *gin.Context) string {
	if token, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer "); found && token != "" {
		return token
	}
	if cookie, err := c.Cookie("access_token"); err == nil && cookie != "" {
		return cookie
	}
	return c.Query("token")
}

func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := tokenFromRequest(c)
		if tokenString == "" {
			abortWithError(c, autherrors.ErrUnauthorized)
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(secret), nil
		})

		if err != nil || !token.Valid {
			errObj := autherrors.ErrInvalidToken
			if errors.Is(err, jwt.ErrTokenExpired) {
				errObj = autherrors.ErrTokenExpired
			}
			abortWithError(c, errObj)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Abort(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid token claims")
			return
		}

		if typ, _ := claims["typ"].(string); typ == "refresh" {
			response.Abort(c, http.StatusUnauthorized, "INVALID_TOKEN", "Refresh token cannot be used for access")
			return
		}

		userID, ok := claims["user_id"].(string)
		if !ok || userID == "" {
			response.Abort(c, http.StatusUnauthorized, "INVALID_TOKEN", "User ID not found in token")
			return
		}

		email, ok := claims["email"].(string)
		if !ok || email == "" {
			response.Abort(c, http.StatusUnauthorized, "INVALID_TOKEN", "Email not found in token")
			return
		}

		name, _ := claims["name"].(string)
		role, _ := claims["role"].(string)

		c.Set(ContextUserID, userID)
		c.Set(ContextEmail, email)
		c.Set(ContextName, name)
		c.Set(ContextRole, role)

		c.Next()
	}
}

func RoleMiddleware(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole := c.GetString(ContextRole)
		if userRole == "" {
			abortWithError(c, autherrors.ErrForbidden)
			return
		}

		for _, role := range allowedRoles {
			if strings.EqualFold(userRole, role) {
				c.Next()
				return
			}
		}

		abortWithError(c, autherrors.ErrForbidden)
	}
}

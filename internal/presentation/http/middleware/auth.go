package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/karibugroceries/karibu-api/internal/domain/entity"
	"github.com/karibugroceries/karibu-api/internal/domain/enum"
	"github.com/karibugroceries/karibu-api/internal/presentation/http/dto/response"
	"github.com/karibugroceries/karibu-api/pkg/utils"
)

// sessionUserKey is the Gin context key holding the session user
const sessionUserKey = "session_user"

// AuthMiddleware validates the session token and places the session user in
// the request context. The user is carried explicitly from here on; nothing
// reads ambient global session state.
func AuthMiddleware(jwtManager *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header is required")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateSessionToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(sessionUserKey, &entity.User{
			ID:     claims.Subject,
			Name:   claims.Name,
			Role:   claims.Role,
			Branch: claims.Branch,
		})

		c.Next()
	}
}

// SessionUser extracts the session user from the Gin context
func SessionUser(c *gin.Context) *entity.User {
	val, exists := c.Get(sessionUserKey)
	if !exists {
		return nil
	}
	user, ok := val.(*entity.User)
	if !ok {
		return nil
	}
	return user
}

// RequireRole creates a middleware that requires one of the given roles
func RequireRole(roles ...enum.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := SessionUser(c)
		if user == nil {
			response.Forbidden(c, "Access denied")
			c.Abort()
			return
		}

		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}

		response.Forbidden(c, "You do not have permission to perform this action")
		c.Abort()
	}
}

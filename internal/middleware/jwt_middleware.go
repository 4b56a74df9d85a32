package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/AppariLavanya/inventory-management-system/internal/cache"
	"github.com/AppariLavanya/inventory-management-system/internal/utils"
)

// JWTMiddleware guards routes with Bearer token authentication. Tokens
// revoked through logout are rejected until they expire.
type JWTMiddleware struct {
	tokens *cache.TokenCache
}

// NewJWTMiddleware constructs a JWTMiddleware backed by the given
// revocation store.
func NewJWTMiddleware(tokens *cache.TokenCache) *JWTMiddleware {
	return &JWTMiddleware{tokens: tokens}
}

func (m *JWTMiddleware) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.Error(c, 401, "UNAUTHORIZED", "Missing authorization header")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.Error(c, 401, "UNAUTHORIZED", "Invalid authorization header")
			c.Abort()
			return
		}

		claims, err := utils.ValidateJWT(parts[1])
		if err != nil {
			utils.Error(c, 401, "INVALID_TOKEN", "Invalid or expired token")
			c.Abort()
			return
		}

		if revoked, err := m.tokens.IsRevoked(c.Request.Context(), claims.ID); err == nil && revoked {
			utils.Error(c, 401, "INVALID_TOKEN", "Token has been revoked")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("role", claims.Role)
		c.Set("token_id", claims.ID)
		c.Set("token_expires_at", claims.ExpiresAt.Time)
		c.Next()
	}
}

// internal/middleware/auth.go
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/curioshop/curios-backend/internal/permissions"
	"github.com/curioshop/curios-backend/internal/utils"
)

const identityKey = "identity"

// GetIdentity returns the caller's identity, or nil for anonymous requests.
func GetIdentity(c *gin.Context) *permissions.Identity {
	if value, exists := c.Get(identityKey); exists {
		if identity, ok := value.(*permissions.Identity); ok {
			return identity
		}
	}
	return nil
}

func identityFromClaims(claims *utils.JWTClaims) *permissions.Identity {
	return &permissions.Identity{
		UserID:     claims.UserID,
		Username:   claims.Username,
		IsStaff:    claims.IsStaff,
		IsMerchant: claims.IsMerchant,
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}

	// Extract token from "Bearer <token>"
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	return parts[1], true
}

func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			utils.UnauthorizedResponse(c, "")
			c.Abort()
			return
		}

		claims, err := utils.ValidateJWT(token)
		if err != nil {
			utils.UnauthorizedResponse(c, "Given token not valid for any token type.")
			c.Abort()
			return
		}

		identity := identityFromClaims(claims)
		c.Set(identityKey, identity)
		c.Set("user_id", identity.UserID)
		c.Next()
	}
}

// OptionalAuth attaches an identity when a valid token is present but never
// rejects the request. Used on endpoints open to anonymous readers.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.Next()
			return
		}

		claims, err := utils.ValidateJWT(token)
		if err != nil {
			c.Next()
			return
		}

		identity := identityFromClaims(claims)
		c.Set(identityKey, identity)
		c.Set("user_id", identity.UserID)
		c.Next()
	}
}

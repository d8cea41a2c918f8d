package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const claimsKey = "auth_claims"

// BearerAuth parses an Authorization bearer token when present and stores
// its claims on the context. Requests without a token pass through; the
// handlers that need an identity use RequireAuth instead.
func BearerAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c)
		if raw == "" {
			c.Next()
			return
		}
		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return secret, nil
		})
		if err == nil && token.Valid {
			c.Set(claimsKey, claims)
		}
		c.Next()
	}
}

// RequireAuth aborts with 401 unless BearerAuth stored valid claims.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := c.Get(claimsKey); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "auth_required", "message": "Missing Bearer token"})
			return
		}
		c.Next()
	}
}

// GetClaims returns the parsed JWT claims, nil when unauthenticated.
func GetClaims(c *gin.Context) jwt.MapClaims {
	if v, ok := c.Get(claimsKey); ok {
		if claims, ok := v.(jwt.MapClaims); ok {
			return claims
		}
	}
	return nil
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

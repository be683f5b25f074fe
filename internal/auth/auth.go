package auth

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Claims are the token claims the portal cares about. The SSO in front of
// Ensemble is mocked: tokens are signed with a shared secret and claims are
// trusted as-is, there is no user store behind them.
type Claims struct {
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Groups   []string `json:"groups,omitempty"`
	jwt.RegisteredClaims
}

// Middleware validates bearer tokens on API routes
type Middleware struct {
	secret []byte
}

// NewMiddleware creates a new auth middleware with the shared signing secret
func NewMiddleware(secret string) *Middleware {
	return &Middleware{secret: []byte(secret)}
}

// ParseToken validates a signed token string and returns its claims
func (m *Middleware) ParseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// RequireAuth rejects requests without a valid bearer token and places the
// caller's identity into the gin context for handlers and logging
func (m *Middleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "missing bearer token",
			})
			return
		}

		claims, err := m.ParseToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "invalid token",
			})
			return
		}

		c.Set("username", claims.Username)
		c.Set("email", claims.Email)
		c.Next()
	}
}

// CurrentUser returns the best available identity for audit fields
func CurrentUser(c *gin.Context) string {
	if username := c.GetString("username"); username != "" {
		return username
	}
	if email := c.GetString("email"); email != "" {
		return email
	}
	return "anonymous"
}

package admin

import (
	"net/http"
	"strings"

	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
)

const (
	// ContextClaims is the key used to store operator claims in the Gin context.
	ContextClaims = "operatorClaims"

	// RoleClaim names the claim that must hold RoleAdmin.
	RoleClaim = "role"
	RoleAdmin = "admin"
)

// Authorize rejects requests without a valid bearer token carrying the admin role.
func Authorize(ts i.Tokenizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		// Split the "Bearer" prefix from the token.
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		claims, err := ts.Decode(parts[1])
		if err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		if role, _ := claims[RoleClaim].(string); role != RoleAdmin {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}

		c.Set(ContextClaims, claims)
		c.Next()
	}
}

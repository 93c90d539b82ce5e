// middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	"serenia/models"
	"serenia/utils"

	"github.com/gin-gonic/gin"
)

// PrincipalKey is the gin context key the authenticated principal is stored
// under.
const PrincipalKey = "principal"

// PrincipalAuthMiddleware extracts the caller's identity and role from the
// Bearer token. Token issuance belongs to the identity collaborator; this
// layer only trusts and unpacks it.
func PrincipalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		principal, err := utils.PrincipalFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(PrincipalKey, principal)
		c.Next()
	}
}

// GetPrincipal pulls the authenticated principal out of the gin context.
func GetPrincipal(c *gin.Context) (models.Principal, bool) {
	value, exists := c.Get(PrincipalKey)
	if !exists {
		return models.Principal{}, false
	}
	principal, ok := value.(models.Principal)
	return principal, ok
}

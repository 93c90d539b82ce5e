package middleware

import (
	"net/http"

	"serenia/models"

	"github.com/gin-gonic/gin"
)

// RequireAdmin guards endpoints only an admin may call, such as managing the
// associate directory.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}
		if principal.Role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}

// RequireCalendarAccess guards calendar-mutating endpoints: a doctor may only
// touch their own calendar (the :associateID path param), an admin any.
func RequireCalendarAccess() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}

		associateID := c.Param("associateID")
		if associateID == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Missing associate ID in path"})
			return
		}

		if !principal.CanManage(associateID) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Not allowed to manage this associate's calendar"})
			return
		}
		c.Next()
	}
}

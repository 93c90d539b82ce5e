package middleware

import (
	"net"
	"strings"

	"serenia/config"

	"github.com/gin-gonic/gin"
)

// getClientIP resolves the address rate limiting keys on. Forwarded headers
// are only honored when TRUST_PROXY_HEADERS is set; a directly exposed
// instance must not let callers pick their own rate-limit bucket.
func getClientIP(c *gin.Context) string {
	if config.AppConfig.TrustProxyHeaders {
		// X-Forwarded-For may carry a chain; the first hop is the client.
		if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
			if first, _, found := strings.Cut(xff, ","); found || first != "" {
				return strings.TrimSpace(first)
			}
		}
		if xri := c.GetHeader("X-Real-IP"); xri != "" {
			return strings.TrimSpace(xri)
		}
	}

	if host, _, err := net.SplitHostPort(c.Request.RemoteAddr); err == nil {
		return host
	}
	return c.Request.RemoteAddr
}

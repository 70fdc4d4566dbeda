package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// getClientIP resolves the caller's address for per-IP rate limiting. Proxy
// headers win over the socket address; otherwise every client behind the
// load balancer would share one bucket.
func getClientIP(c *gin.Context) string {
	// X-Forwarded-For carries the whole proxy chain; the first hop is the
	// original client.
	if chain := c.GetHeader("X-Forwarded-For"); chain != "" {
		if first := strings.TrimSpace(strings.SplitN(chain, ",", 2)[0]); first != "" {
			return first
		}
	}

	if real := strings.TrimSpace(c.GetHeader("X-Real-IP")); real != "" {
		return real
	}

	// RemoteAddr is usually "host:port"; keep the raw value when it is not.
	if host, _, err := net.SplitHostPort(c.Request.RemoteAddr); err == nil {
		return host
	}
	return c.Request.RemoteAddr
}

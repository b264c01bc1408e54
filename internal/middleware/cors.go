package middleware

import (
	"net/http"
	"slices"

	"github.com/wb-go/wbf/ginext"
)

// CORS allows browser calls from the listed origins. A "*" entry allows any
// origin. Preflight requests are answered directly.
func CORS(allowedOrigins []string) ginext.HandlerFunc {
	allowAll := slices.Contains(allowedOrigins, "*")

	return func(c *ginext.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && (allowAll || slices.Contains(allowedOrigins, origin)) {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Vary", "Origin")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-ID")
			c.Header("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			c.Header("Access-Control-Expose-Headers", RequestIDHeader)
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Logging records one line per request with method, path, status, and
// latency. Health probes are skipped to keep the log readable.
func (mw Middleware) Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if path == "/health" || path == "/ready" || path == "/live" {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		mw.l.Infof(c.Request.Context(), "%s %s -> %d (%s)",
			c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}

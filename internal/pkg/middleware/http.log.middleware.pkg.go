package middleware

import (
	"time"
	"timeservice/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// HTTPLog writes one line per request, keyed by the RequestInit id. Must be
// registered after RequestInit.
func HTTPLog(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		start, _ := c.MustGet("start-time").(time.Time)
		log.HTTP.Printf("request_id=%s method=%s path=%s status=%d duration=%s",
			c.GetString("requestId"),
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start),
		)
	}
}

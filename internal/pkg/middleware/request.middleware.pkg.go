package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestInit mints the request id that correlates one logical request across
// both services' logs. It is established here, once, and never regenerated.
func RequestInit() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("requestId", uuid.New().String())
		c.Set("start-time", time.Now())
		c.Next()
	}
}

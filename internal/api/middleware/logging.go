package middleware

import (
	"time"

	"github.com/webfolio/portfolio-backend/internal/logging"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs every served request through the singleton logger
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		logging.GetLogger().LogHTTPRequest(
			c.Request.Method,
			path,
			c.ClientIP(),
			c.Writer.Status(),
			time.Since(start).String(),
		)
	}
}

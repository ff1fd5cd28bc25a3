package middleware

import (
	"time"

	"restavo/internal/logger"

	"github.com/gin-gonic/gin"
)

// RequestLogging logs one structured line per request
func RequestLogging(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		uri := c.Request.RequestURI
		method := c.Request.Method

		c.Next()

		log.Info().
			Str("uri", uri).
			Str("method", method).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Int("size", c.Writer.Size()).
			Send()
	}
}

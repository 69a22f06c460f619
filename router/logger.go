package router

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/segmentio/ksuid"
)

const REQUEST_ID_HEADER = "X-Request-Id"

// Logger logs method, path, status and latency under a request id,
// reusing the caller's X-Request-Id when present.
func Logger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := c.GetHeader(REQUEST_ID_HEADER)
		if requestID == "" {
			requestID = ksuid.New().String()
		}
		c.Header(REQUEST_ID_HEADER, requestID)

		c.Next()

		duration := time.Since(start)
		log.InfoContext(
			c.Request.Context(),
			fmt.Sprintf("%s %s -> %d (%s)", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), duration),
			"request_id", requestID,
		)
	}
}

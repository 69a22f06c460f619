package router

import (
	"log/slog"
	"net/http"

	"eventex/controllers"

	"github.com/gin-gonic/gin"
)

// ServerError logs errors attached by handlers and, if nothing was written
// yet, answers with the generic 500 page.
func ServerError(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if len(c.Errors) == 0 {
			return
		}
		for _, e := range c.Errors {
			log.ErrorContext(c.Request.Context(), "request failed", "method", c.Request.Method, "path", c.Request.URL.Path, "error", e.Err)
		}
		if !c.Writer.Written() {
			controllers.RespondError(c, http.StatusInternalServerError)
		}
	}
}

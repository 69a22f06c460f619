package middleware

import "github.com/gin-gonic/gin"

// SecurityHeaders impede o site de ser embutido em frames de terceiros
// e desliga o sniffing de content-type.
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.Writer.Header()
		header.Set("X-Frame-Options", "DENY")
		header.Set("X-Content-Type-Options", "nosniff")
		header.Set("Referrer-Policy", "same-origin")
		c.Next()
	}
}

package controllers

import (
	"net/http"

	dbpkg "eventex/db"

	"github.com/gin-gonic/gin"
)

// GET /health
func Health(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	if db == nil || db.DB().PingContext(c.Request.Context()) != nil {
		c.String(http.StatusServiceUnavailable, "unavailable")
		return
	}
	c.String(http.StatusOK, "ok")
}

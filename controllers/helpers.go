package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// ParamID reads a positive numeric path parameter.
func ParamID(c *gin.Context, name string) (int64, bool) {
	v := c.Param(name)
	if v == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

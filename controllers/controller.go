package controllers

import (
	"net/http"

	"eventex/config"

	"github.com/gin-gonic/gin"
)

var conf config.Configuration

func SetConfigurations(configuration config.Configuration) {
	conf = configuration
}

var errorPages = map[int]struct {
	template string
	title    string
}{
	http.StatusForbidden:           {"403.html", "Acesso proibido"},
	http.StatusNotFound:            {"404.html", "Página não encontrada"},
	http.StatusInternalServerError: {"500.html", "Erro no servidor"},
}

// RespondError renders the error page for code.
func RespondError(c *gin.Context, code int) {
	page, ok := errorPages[code]
	if !ok {
		c.String(code, http.StatusText(code))
		return
	}
	c.HTML(code, page.template, gin.H{"title": page.title})
}

// AbortWithServerError records err and stops the chain; the response is
// written by the router's error middleware.
func AbortWithServerError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

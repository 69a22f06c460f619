package middleware

import (
	"net/http"

	"eventex/config"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	csrf "github.com/utrack/gin-csrf"
)

const SESSION_NAME = "eventex_session"
const CSRF_FIELD = "csrfmiddlewaretoken"
const CSRF_HEADER = "X-CSRFToken"

// Sessions guarda a sessão (e o salt do token CSRF) num cookie assinado.
func Sessions(cfg config.Configuration) gin.HandlerFunc {
	store := cookie.NewStore([]byte(cfg.Security.SecretKey))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   60 * 60 * 24 * 7,
		Secure:   cfg.Security.SecureCookies,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sessions.Sessions(SESSION_NAME, store)
}

// CSRF must run after Sessions. Unsafe methods without a matching token
// are answered with the 403 page.
func CSRF(cfg config.Configuration) gin.HandlerFunc {
	return csrf.Middleware(csrf.Options{
		Secret:      cfg.Security.SecretKey,
		ErrorFunc:   csrfFailure,
		TokenGetter: submittedToken,
	})
}

// CSRFToken returns the token to embed in forms for the current session.
func CSRFToken(c *gin.Context) string {
	return csrf.GetToken(c)
}

func submittedToken(c *gin.Context) string {
	if token := c.PostForm(CSRF_FIELD); token != "" {
		return token
	}
	return c.GetHeader(CSRF_HEADER)
}

func csrfFailure(c *gin.Context) {
	c.HTML(http.StatusForbidden, "403.html", gin.H{"title": "Acesso proibido"})
	c.Abort()
}

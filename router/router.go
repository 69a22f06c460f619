package router

import (
	"fmt"
	"log/slog"
	"net/http"

	"eventex/config"
	"eventex/controllers"
	dbpkg "eventex/db"
	"eventex/mail"
	"eventex/middleware"
	"eventex/templates"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
)

// Initialize wires templates, middlewares and routes.
// database and sender are handed to the controllers through the gin context.
func Initialize(r *gin.Engine, cfg config.Configuration, log *slog.Logger, database *gorm.DB, sender mail.Sender) error {
	tmpl, err := templates.HTML()
	if err != nil {
		return fmt.Errorf("loading templates: %w", err)
	}
	r.SetHTMLTemplate(tmpl)
	controllers.SetConfigurations(cfg)

	r.Use(gin.Recovery())
	r.Use(middleware.SecurityHeaders())
	r.Use(ServerError(log))
	r.Use(dbpkg.SetDBtoContext(database))
	r.Use(mail.SetSenderToContext(sender))

	r.GET("/health", controllers.Health)

	// Inscrições: sessão + CSRF em todo o grupo
	subscriptions := r.Group("/inscricao")
	subscriptions.Use(Logger(log), middleware.Sessions(cfg), middleware.CSRF(cfg))
	subscriptions.GET("/", controllers.NewSubscription)
	subscriptions.POST("/", controllers.CreateSubscription)
	subscriptions.GET("/:id/", controllers.GetSubscription)

	r.NoRoute(Logger(log), func(c *gin.Context) {
		controllers.RespondError(c, http.StatusNotFound)
	})

	log.Info("Routes initialized")
	return nil
}

package controllers

import (
	"errors"
	"fmt"
	"net/http"

	dbpkg "eventex/db"
	"eventex/mail"
	"eventex/middleware"
	"eventex/models"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
)

var errNoDB = errors.New("db não configurado no contexto")
var errNoSender = errors.New("mail sender não configurado no contexto")

const subscriptionFormTemplate = "subscription_form.html"

// SubscriptionPath is where a stored subscription is shown.
func SubscriptionPath(id int64) string {
	return fmt.Sprintf("/inscricao/%d/", id)
}

// GET /inscricao/
func NewSubscription(c *gin.Context) {
	renderSubscriptionForm(c, SubscriptionForm{}, FormErrors{})
}

// POST /inscricao/
// Formulário inválido volta com status 200 e os erros de cada campo;
// nada é gravado e nenhum e-mail sai.
func CreateSubscription(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		RespondError(c, http.StatusBadRequest)
		return
	}

	form := NewSubscriptionForm(c.Request.PostForm)
	if errs := form.Validate(); len(errs) > 0 {
		renderSubscriptionForm(c, form, errs)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		AbortWithServerError(c, errNoDB)
		return
	}
	sender := mail.SenderInstance(c)
	if sender == nil {
		AbortWithServerError(c, errNoSender)
		return
	}

	subscription := form.Subscription()

	tx := db.Begin()
	if err := tx.Create(&subscription).Error; err != nil {
		tx.Rollback()
		AbortWithServerError(c, fmt.Errorf("creating subscription: %w", err))
		return
	}
	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		AbortWithServerError(c, fmt.Errorf("committing subscription: %w", err))
		return
	}

	// o e-mail só sai depois do commit
	if err := mail.SendConfirmation(c.Request.Context(), sender, conf.Mail.From, subscription); err != nil {
		AbortWithServerError(c, fmt.Errorf("subscription %d: %w", subscription.ID, err))
		return
	}

	c.Redirect(http.StatusFound, SubscriptionPath(subscription.ID))
}

// GET /inscricao/:id/
func GetSubscription(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		RespondError(c, http.StatusNotFound)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		AbortWithServerError(c, errNoDB)
		return
	}

	var subscription models.Subscription
	if err := db.First(&subscription, id).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			RespondError(c, http.StatusNotFound)
			return
		}
		AbortWithServerError(c, fmt.Errorf("loading subscription %d: %w", id, err))
		return
	}

	c.HTML(http.StatusOK, "subscription_detail.html", gin.H{
		"title":        "Inscrição confirmada",
		"subscription": subscription,
	})
}

func renderSubscriptionForm(c *gin.Context, form SubscriptionForm, errs FormErrors) {
	c.HTML(http.StatusOK, subscriptionFormTemplate, gin.H{
		"title":     "Inscrição",
		"form":      form,
		"errors":    errs,
		"limits":    FormLimits(),
		"csrfToken": middleware.CSRFToken(c),
	})
}

package controllers

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"unicode/utf8"

	"eventex/models"
	"eventex/tools"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const NON_FIELD_ERRORS = "__all__"

// SubscriptionForm holds the cleaned values of the subscription page.
// The max values follow the models.SUBSCRIPTION_* limits.
type SubscriptionForm struct {
	Name  string `form:"name" binding:"required,max=100"`
	CPF   string `form:"cpf" binding:"required,cpf"`
	Email string `form:"email" binding:"required,email,max=254"`
	Phone string `form:"phone" binding:"required,max=20"`
}

// FormErrors maps a form field to its messages.
type FormErrors map[string][]string

func (e FormErrors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

var formFields = map[string]string{
	"Name":  "name",
	"CPF":   "cpf",
	"Email": "email",
	"Phone": "phone",
}

var registerOnce sync.Once

func registerValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("cpf", func(fl validator.FieldLevel) bool {
			return tools.IsCpfValid(fl.Field().String())
		})
	}
}

// NewSubscriptionForm trims the submitted values; name and phone are free
// text and lose any markup.
func NewSubscriptionForm(values url.Values) SubscriptionForm {
	return SubscriptionForm{
		Name:  tools.StripTags(values.Get("name")),
		CPF:   strings.TrimSpace(values.Get("cpf")),
		Email: strings.TrimSpace(values.Get("email")),
		Phone: tools.StripTags(values.Get("phone")),
	}
}

// Validate returns an empty FormErrors when the form can be saved.
func (form *SubscriptionForm) Validate() FormErrors {
	registerOnce.Do(registerValidators)

	errs := FormErrors{}
	err := binding.Validator.ValidateStruct(form)
	if err == nil {
		return errs
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		errs.Add(NON_FIELD_ERRORS, err.Error())
		return errs
	}
	for _, fe := range fieldErrs {
		errs.Add(formFields[fe.StructField()], fieldMessage(fe))
	}
	return errs
}

func (form SubscriptionForm) Subscription() models.Subscription {
	return models.Subscription{
		Name:  form.Name,
		CPF:   form.CPF,
		Email: form.Email,
		Phone: form.Phone,
	}
}

// FormLimits feeds the maxlength attributes of the subscription page.
func FormLimits() map[string]int {
	return map[string]int{
		"name":  models.SUBSCRIPTION_NAME_MAX,
		"cpf":   models.SUBSCRIPTION_CPF_LEN,
		"email": models.SUBSCRIPTION_EMAIL_MAX,
		"phone": models.SUBSCRIPTION_PHONE_MAX,
	}
}

func fieldMessage(fe validator.FieldError) string {
	value, _ := fe.Value().(string)
	switch fe.Tag() {
	case "required":
		return "Este campo é obrigatório."
	case "max":
		return fmt.Sprintf("Certifique-se de que o valor tenha no máximo %s caracteres (ele possui %d).", fe.Param(), utf8.RuneCountInString(value))
	case "email":
		return "Informe um endereço de email válido."
	case "cpf":
		if !tools.IsDigits(value) {
			return "CPF deve conter apenas números."
		}
		return fmt.Sprintf("CPF deve ter %d números.", models.SUBSCRIPTION_CPF_LEN)
	}
	return "Valor inválido."
}

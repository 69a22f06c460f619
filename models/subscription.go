package models

import (
	"errors"
	"fmt"
	"time"

	"eventex/tools"
)

var ErrMissingField = errors.New("subscription field missing")

/************************************************
/**** MARK: FIELD LIMITS ****/
/************************************************/
// Mirrored by the gorm column sizes and the form's binding tags.
const SUBSCRIPTION_NAME_MAX = 100
const SUBSCRIPTION_CPF_LEN = tools.CPF_LENGTH
const SUBSCRIPTION_EMAIL_MAX = 254
const SUBSCRIPTION_PHONE_MAX = 20

// Subscription representa uma inscrição feita pelo formulário público.
// Nunca é alterada depois de criada.
type Subscription struct {
	ID        int64     `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name" form:"name"`
	CPF       string    `gorm:"column:cpf;type:varchar(11);not null" json:"cpf" form:"cpf"`
	Email     string    `gorm:"type:varchar(254);not null" json:"email" form:"email"`
	Phone     string    `gorm:"type:varchar(20);not null" json:"phone" form:"phone"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}

func (subscription Subscription) MissingFields() string {
	if subscription.Name == "" {
		return "name"
	} else if subscription.CPF == "" {
		return "cpf"
	} else if subscription.Email == "" {
		return "email"
	} else if subscription.Phone == "" {
		return "phone"
	}
	return ""
}

// BeforeCreate é chamado pelo gorm antes do INSERT.
func (subscription *Subscription) BeforeCreate() error {
	if missing := subscription.MissingFields(); missing != "" {
		return fmt.Errorf("%w: %s", ErrMissingField, missing)
	}
	return nil
}

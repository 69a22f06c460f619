package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubscription_MissingFields(t *testing.T) {
	full := Subscription{
		Name:  "Henrique Bastos",
		CPF:   "12345678901",
		Email: "henrique@bastos.net",
		Phone: "21-99618-6180",
	}
	assert.Equal(t, "", full.MissingFields())

	noCpf := full
	noCpf.CPF = ""
	assert.Equal(t, "cpf", noCpf.MissingFields())

	assert.Equal(t, "name", Subscription{}.MissingFields())
}

func TestSubscription_TableName(t *testing.T) {
	assert.Equal(t, "subscriptions", Subscription{}.TableName())
}

func TestSubscription_BeforeCreate(t *testing.T) {
	s := &Subscription{Name: "Henrique Bastos"}
	assert.ErrorIs(t, s.BeforeCreate(), ErrMissingField)
}

package entity

import (
	"github.com/gofrs/uuid/v5"
)

type User struct {
	ID                uuid.UUID
	Username          string
	PasswordHash      string
	IsAdmin           bool
	RoleID            uuid.NullUUID
	SecurityProfileID uuid.NullUUID
	Language          string
	Timezone          string
	Country           string
	Currency          string
}

// UserSettings are the per-user preferences editable on the settings page.
type UserSettings struct {
	Language string
	Timezone string
	Country  string
	Currency string
}

const (
	DefaultLanguage = "en"
	DefaultTimezone = "UTC"
	DefaultCurrency = "USD"
)

// SupportedCurrencies mirrors the settings form choices.
var SupportedCurrencies = []string{"USD", "EUR"}

func CurrencySupported(c string) bool {
	for _, s := range SupportedCurrencies {
		if s == c {
			return true
		}
	}

	return false
}

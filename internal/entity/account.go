package entity

import (
	"github.com/gofrs/uuid/v5"
)

type Account struct {
	ID       uuid.UUID     `json:"id"`
	Name     string        `json:"name"`
	Industry string        `json:"industry"`
	Email    string        `json:"email"`
	Phone    string        `json:"phone"`
	Address  string        `json:"address"`
	Notes    string        `json:"notes"`
	OwnerID  uuid.NullUUID `json:"owner_id"`
}

type Contact struct {
	ID        uuid.UUID     `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Phone     string        `json:"phone"`
	Title     string        `json:"title"`
	AccountID uuid.NullUUID `json:"account_id"`
	OwnerID   uuid.NullUUID `json:"owner_id"`
}

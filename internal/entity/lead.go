package entity

import (
	"github.com/gofrs/uuid/v5"
)

type Lead struct {
	ID      uuid.UUID     `json:"id"`
	Name    string        `json:"name"`
	Email   string        `json:"email"`
	Phone   string        `json:"phone"`
	Company string        `json:"company"`
	Notes   string        `json:"notes"`
	Status  string        `json:"status"`
	OwnerID uuid.NullUUID `json:"owner_id"`
}

package entity

import (
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type Deal struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
	Stage     string          `json:"stage"`
	CloseDate string          `json:"close_date"`
	AccountID uuid.NullUUID   `json:"account_id"`
	OwnerID   uuid.NullUUID   `json:"owner_id"`
}

package entity

import (
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type Quote struct {
	ID             uuid.UUID       `json:"id"`
	DealID         uuid.NullUUID   `json:"deal_id"`
	Total          decimal.Decimal `json:"total"`
	ExpirationDate string          `json:"expiration_date"`
	OwnerID        uuid.NullUUID   `json:"owner_id"`
}

type QuoteLineItem struct {
	ID        uuid.UUID       `json:"id"`
	QuoteID   uuid.NullUUID   `json:"quote_id"`
	ProductID uuid.NullUUID   `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	OwnerID   uuid.NullUUID   `json:"owner_id"`
}

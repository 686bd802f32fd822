package entity

import (
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type Product struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	OwnerID     uuid.NullUUID   `json:"owner_id"`
}

type Pricebook struct {
	ID          uuid.UUID     `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	OwnerID     uuid.NullUUID `json:"owner_id"`
}

type PricebookEntry struct {
	ID          uuid.UUID       `json:"id"`
	ProductID   uuid.NullUUID   `json:"product_id"`
	PricebookID uuid.NullUUID   `json:"pricebook_id"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	OwnerID     uuid.NullUUID   `json:"owner_id"`
}

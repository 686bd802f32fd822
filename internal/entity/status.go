package entity

import (
	"github.com/gofrs/uuid/v5"
)

// StatusOption is an admin-managed (model, value) pair. Statuses are a
// free-form vocabulary, not a closed enum, so new pipeline stages can be
// added at runtime.
type StatusOption struct {
	ID    uuid.UUID `json:"id"`
	Model Model     `json:"model"`
	Value string    `json:"value"`
}

// DefaultStatusOptions seed the board columns on first start.
var DefaultStatusOptions = map[Model][]string{
	ModelLead: {"New", "Contacted", "Qualified"},
	ModelTask: {"Open", "In Progress", "Closed"},
	ModelDeal: {"Prospecting", "Negotiation", "Won", "Lost"},
}

package entity

import (
	"fmt"

	"github.com/gofrs/uuid/v5"
)

// Model identifies a business record type. Anything carrying a
// (model, record id) pair — tasks, messages, notifications, shares,
// status options — uses these values, and route building is a closed
// dispatch over them: an unknown model is an error, never a fallback.
type Model string

const (
	ModelLead           Model = "leads"
	ModelAccount        Model = "accounts"
	ModelContact        Model = "contacts"
	ModelDeal           Model = "deals"
	ModelProduct        Model = "products"
	ModelPricebook      Model = "pricebooks"
	ModelPricebookEntry Model = "pricebook_entries"
	ModelQuote          Model = "quotes"
	ModelQuoteLineItem  Model = "quote_line_items"
	ModelTask           Model = "tasks"
)

var models = map[Model]struct{}{
	ModelLead:           {},
	ModelAccount:        {},
	ModelContact:        {},
	ModelDeal:           {},
	ModelProduct:        {},
	ModelPricebook:      {},
	ModelPricebookEntry: {},
	ModelQuote:          {},
	ModelQuoteLineItem:  {},
	ModelTask:           {},
}

func ParseModel(s string) (Model, error) {
	m := Model(s)
	if _, ok := models[m]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownModel, s)
	}

	return m, nil
}

func (m Model) String() string {
	return string(m)
}

// RoutePath returns the detail page path for a record of this model.
func (m Model) RoutePath(id uuid.UUID) (string, error) {
	if _, ok := models[m]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownModel, m)
	}

	return fmt.Sprintf("/%s/%s", m, id), nil
}

// KanbanModels are the models with a status-grouped board view.
var KanbanModels = []Model{ModelLead, ModelDeal, ModelTask}

func (m Model) HasKanban() bool {
	for _, k := range KanbanModels {
		if m == k {
			return true
		}
	}

	return false
}

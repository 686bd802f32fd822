package repository

import (
	"context"

	"github.com/samandr77/crm/internal/entity"
)

// countedModels are the entity tables surfaced on the dashboard.
var countedModels = map[entity.Model]string{
	entity.ModelLead:      "leads",
	entity.ModelAccount:   "accounts",
	entity.ModelContact:   "contacts",
	entity.ModelDeal:      "deals",
	entity.ModelProduct:   "products",
	entity.ModelPricebook: "pricebooks",
	entity.ModelQuote:     "quotes",
}

func (r *Repository) RecordCounts(ctx context.Context) (map[entity.Model]int, error) {
	counts := make(map[entity.Model]int, len(countedModels))

	for model, table := range countedModels {
		var count int

		err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM `+table).Scan(&count)
		if err != nil {
			return nil, err
		}

		counts[model] = count
	}

	return counts, nil
}

func (r *Repository) HasStatusOptions(ctx context.Context) (bool, error) {
	var exists bool

	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM status_options)`).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}

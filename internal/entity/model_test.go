package entity_test

import (
	"errors"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/crm/internal/entity"
)

func TestParseModel(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{
		"leads", "accounts", "contacts", "deals", "products",
		"pricebooks", "pricebook_entries", "quotes", "quote_line_items", "tasks",
	} {
		model, err := entity.ParseModel(raw)
		require.NoError(t, err)
		require.Equal(t, raw, model.String())
	}

	for _, raw := range []string{"", "lead", "Leads", "users", "unknown"} {
		_, err := entity.ParseModel(raw)
		require.Error(t, err)
		require.True(t, errors.Is(err, entity.ErrUnknownModel))
	}
}

func TestModel_RoutePath(t *testing.T) {
	t.Parallel()

	id := uuid.Must(uuid.NewV4())

	path, err := entity.ModelLead.RoutePath(id)
	require.NoError(t, err)
	require.Equal(t, "/leads/"+id.String(), path)

	_, err = entity.Model("bogus").RoutePath(id)
	require.Error(t, err)
	require.True(t, errors.Is(err, entity.ErrUnknownModel))
}

func TestModel_HasKanban(t *testing.T) {
	t.Parallel()

	require.True(t, entity.ModelLead.HasKanban())
	require.True(t, entity.ModelDeal.HasKanban())
	require.True(t, entity.ModelTask.HasKanban())
	require.False(t, entity.ModelAccount.HasKanban())
	require.False(t, entity.ModelQuote.HasKanban())
}

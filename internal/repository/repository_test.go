package repository_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/crm/internal/entity"
	"github.com/samandr77/crm/internal/repository"
	"github.com/samandr77/crm/pkg/postgres"
)

func newRepository(t *testing.T) *repository.Repository {
	t.Helper()

	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN is not set")
	}

	err := postgres.UpMigrations(dsn)
	require.NoError(t, err)

	pool, err := postgres.Connect(context.Background(), dsn, 10)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return repository.New(pool)
}

func TestRepository_LeadLifecycle(t *testing.T) {
	t.Parallel()

	repo := newRepository(t)
	ctx := context.Background()

	lead := entity.Lead{
		ID:      uuid.Must(uuid.NewV4()),
		Name:    "Jane " + uuid.Must(uuid.NewV4()).String(),
		Email:   "jane@example.com",
		Phone:   "555-0101",
		Company: "Acme",
		Status:  "New",
	}

	err := repo.CreateLead(ctx, lead)
	require.NoError(t, err)

	got, err := repo.Lead(ctx, lead.ID)
	require.NoError(t, err)
	require.Equal(t, lead, got)

	lead.Status = "Contacted"
	lead.Notes = "called twice"

	err = repo.UpdateLead(ctx, lead)
	require.NoError(t, err)

	got, err = repo.Lead(ctx, lead.ID)
	require.NoError(t, err)
	require.Equal(t, lead, got)

	err = repo.DeleteLead(ctx, lead.ID)
	require.NoError(t, err)

	_, err = repo.Lead(ctx, lead.ID)
	require.True(t, errors.Is(err, entity.ErrNotFound))

	err = repo.DeleteLead(ctx, lead.ID)
	require.True(t, errors.Is(err, entity.ErrNotFound))
}

func TestRepository_LeadsFilter(t *testing.T) {
	t.Parallel()

	repo := newRepository(t)
	ctx := context.Background()

	marker := uuid.Must(uuid.NewV4()).String()

	lead := entity.Lead{
		ID:     uuid.Must(uuid.NewV4()),
		Name:   "JANEDOE-" + marker,
		Status: "New",
	}

	err := repo.CreateLead(ctx, lead)
	require.NoError(t, err)

	// Case-insensitive substring match.
	leads, err := repo.Leads(ctx, "janedoe-"+marker)
	require.NoError(t, err)
	require.Len(t, leads, 1)
	require.Equal(t, lead.ID, leads[0].ID)

	leads, err = repo.Leads(ctx, marker+"-no-match")
	require.NoError(t, err)
	require.Empty(t, leads)
}

func TestRepository_UpdateMissingRecord(t *testing.T) {
	t.Parallel()

	repo := newRepository(t)
	ctx := context.Background()

	err := repo.UpdateLead(ctx, entity.Lead{ID: uuid.Must(uuid.NewV4()), Name: "ghost"})
	require.True(t, errors.Is(err, entity.ErrNotFound))

	err = repo.UpdateDeal(ctx, entity.Deal{ID: uuid.Must(uuid.NewV4()), Name: "ghost"})
	require.True(t, errors.Is(err, entity.ErrNotFound))
}

func TestRepository_InTxRollsBack(t *testing.T) {
	t.Parallel()

	repo := newRepository(t)
	ctx := context.Background()

	lead := entity.Lead{
		ID:     uuid.Must(uuid.NewV4()),
		Name:   "rollback " + uuid.Must(uuid.NewV4()).String(),
		Status: "New",
	}

	boom := errors.New("boom")

	err := repo.InTx(ctx, func(r *repository.Repository) error {
		err := r.CreateLead(ctx, lead)
		require.NoError(t, err)

		return boom
	})
	require.True(t, errors.Is(err, boom))

	_, err = repo.Lead(ctx, lead.ID)
	require.True(t, errors.Is(err, entity.ErrNotFound))
}

func TestRepository_Notifications(t *testing.T) {
	t.Parallel()

	repo := newRepository(t)
	ctx := context.Background()

	user := entity.User{
		ID:           uuid.Must(uuid.NewV4()),
		Username:     "notify-" + uuid.Must(uuid.NewV4()).String(),
		PasswordHash: "x",
		Language:     entity.DefaultLanguage,
		Timezone:     entity.DefaultTimezone,
		Currency:     entity.DefaultCurrency,
	}

	err := repo.CreateUser(ctx, user)
	require.NoError(t, err)

	lead := entity.Lead{ID: uuid.Must(uuid.NewV4()), Name: "n", Status: "New"}
	err = repo.CreateLead(ctx, lead)
	require.NoError(t, err)

	message := entity.Message{
		ID:        uuid.Must(uuid.NewV4()),
		UserID:    user.ID,
		Model:     entity.ModelLead,
		RecordID:  lead.ID,
		Content:   "hello @" + user.Username,
		CreatedAt: time.Now().Truncate(time.Millisecond),
	}

	err = repo.CreateMessage(ctx, message)
	require.NoError(t, err)

	notification := entity.Notification{
		ID:        uuid.Must(uuid.NewV4()),
		UserID:    user.ID,
		MessageID: message.ID,
		Model:     entity.ModelLead,
		RecordID:  lead.ID,
		CreatedAt: message.CreatedAt,
	}

	err = repo.CreateNotification(ctx, notification)
	require.NoError(t, err)

	count, err := repo.CountUnreadNotifications(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, 1, count)

	// Marking read is idempotent.
	for i := 0; i < 2; i++ {
		err = repo.MarkNotificationRead(ctx, notification.ID)
		require.NoError(t, err)
	}

	count, err = repo.CountUnreadNotifications(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, 0, count)

	got, err := repo.NotificationsForUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.True(t, got[0].IsRead)
}

func TestRepository_DealAmountRoundTrip(t *testing.T) {
	t.Parallel()

	repo := newRepository(t)
	ctx := context.Background()

	deal := entity.Deal{
		ID:     uuid.Must(uuid.NewV4()),
		Name:   "big deal",
		Amount: decimal.RequireFromString("12500.50"),
		Stage:  "Prospecting",
	}

	err := repo.CreateDeal(ctx, deal)
	require.NoError(t, err)

	got, err := repo.Deal(ctx, deal.ID)
	require.NoError(t, err)
	require.True(t, deal.Amount.Equal(got.Amount))
}

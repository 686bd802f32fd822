package service_test

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/crm/internal/entity"
	"github.com/samandr77/crm/internal/repository"
	"github.com/samandr77/crm/internal/service"
	"github.com/samandr77/crm/pkg/i18n"
	"github.com/samandr77/crm/pkg/postgres"
)

// recordingProducer captures the notification events a flow emits.
type recordingProducer struct {
	mu     sync.Mutex
	events []uuid.UUID
}

func (p *recordingProducer) SendNotificationCreated(
	_ context.Context,
	notificationID, _, _ uuid.UUID,
	_ string,
	_ uuid.UUID,
) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, notificationID)
}

func newService(t *testing.T) (*service.Service, *repository.Repository, *recordingProducer) {
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

	repo := repository.New(pool)

	langs, err := i18n.New("en")
	require.NoError(t, err)

	producer := &recordingProducer{}
	sessions := service.NewSessionManager("test-secret", time.Hour)

	return service.New(repo, sessions, producer, nil, langs), repo, producer
}

func createTestUser(t *testing.T, repo *repository.Repository, isAdmin bool) entity.User {
	t.Helper()

	user := entity.User{
		ID:           uuid.Must(uuid.NewV4()),
		Username:     "u-" + uuid.Must(uuid.NewV4()).String(),
		PasswordHash: "x",
		IsAdmin:      isAdmin,
		Language:     entity.DefaultLanguage,
		Timezone:     entity.DefaultTimezone,
		Currency:     entity.DefaultCurrency,
	}

	err := repo.CreateUser(context.Background(), user)
	require.NoError(t, err)

	return user
}

func TestService_ConvertLead(t *testing.T) {
	t.Parallel()

	s, repo, _ := newService(t)

	user := createTestUser(t, repo, false)
	ctx := entity.CtxWithUser(context.Background(), user)

	lead, err := s.CreateLead(ctx, entity.Lead{
		Name:    "Jane Roe",
		Email:   "jane@example.com",
		Phone:   "555-0102",
		Company: "Acme",
		Notes:   "met at the expo",
		Status:  "Qualified",
	})
	require.NoError(t, err)

	accountID, err := s.ConvertLead(ctx, lead.ID)
	require.NoError(t, err)

	// The account copies contact details, industry stays blank, the
	// notes are gone.
	account, err := repo.Account(ctx, accountID)
	require.NoError(t, err)
	require.Equal(t, "Jane Roe", account.Name)
	require.Equal(t, "jane@example.com", account.Email)
	require.Equal(t, "555-0102", account.Phone)
	require.Empty(t, account.Industry)
	require.Empty(t, account.Notes)

	// A contact linked to the new account exists.
	contacts, err := repo.Contacts(ctx, "Jane Roe")
	require.NoError(t, err)

	found := false
	for _, c := range contacts {
		if c.AccountID.Valid && c.AccountID.UUID == accountID {
			found = true
		}
	}
	require.True(t, found)

	// The lead is gone.
	_, err = repo.Lead(ctx, lead.ID)
	require.True(t, errors.Is(err, entity.ErrNotFound))
}

func TestService_ConvertLead_MissingLeadLeavesNothing(t *testing.T) {
	t.Parallel()

	s, repo, _ := newService(t)

	user := createTestUser(t, repo, false)
	ctx := entity.CtxWithUser(context.Background(), user)

	_, err := s.ConvertLead(ctx, uuid.Must(uuid.NewV4()))
	require.True(t, errors.Is(err, entity.ErrNotFound))
}

func TestService_CreateMessage_MentionFanOut(t *testing.T) {
	t.Parallel()

	s, repo, producer := newService(t)

	author := createTestUser(t, repo, false)
	alice := createTestUser(t, repo, false)
	bob := createTestUser(t, repo, false)

	ctx := entity.CtxWithUser(context.Background(), author)

	lead, err := s.CreateLead(ctx, entity.Lead{Name: "mention target", Status: "New"})
	require.NoError(t, err)

	content := "hello @" + alice.Username + " @" + alice.Username + " @" + bob.Username + " @nobody_here"

	redirect, err := s.CreateMessage(ctx, entity.ModelLead, lead.ID, content)
	require.NoError(t, err)
	require.Equal(t, "/leads/"+lead.ID.String(), redirect)

	// One notification per distinct known user; the unknown name is
	// skipped silently.
	aliceCtx := entity.CtxWithUser(context.Background(), alice)
	aliceNotifications, err := s.Notifications(aliceCtx)
	require.NoError(t, err)
	require.Len(t, aliceNotifications, 1)

	bobCtx := entity.CtxWithUser(context.Background(), bob)
	bobNotifications, err := s.Notifications(bobCtx)
	require.NoError(t, err)
	require.Len(t, bobNotifications, 1)

	require.Len(t, producer.events, 2)
}

func TestService_OpenNotification(t *testing.T) {
	t.Parallel()

	s, repo, _ := newService(t)

	author := createTestUser(t, repo, false)
	recipient := createTestUser(t, repo, false)
	stranger := createTestUser(t, repo, false)

	authorCtx := entity.CtxWithUser(context.Background(), author)

	lead, err := s.CreateLead(authorCtx, entity.Lead{Name: "note target", Status: "New"})
	require.NoError(t, err)

	_, err = s.CreateMessage(authorCtx, entity.ModelLead, lead.ID, "fyi @"+recipient.Username)
	require.NoError(t, err)

	recipientCtx := entity.CtxWithUser(context.Background(), recipient)

	notifications, err := s.Notifications(recipientCtx)
	require.NoError(t, err)
	require.Len(t, notifications, 1)

	// Only the recipient may open it.
	strangerCtx := entity.CtxWithUser(context.Background(), stranger)
	_, err = s.OpenNotification(strangerCtx, notifications[0].ID)
	require.True(t, errors.Is(err, entity.ErrForbidden))

	// Opening marks it read; a second open is a no-op.
	for i := 0; i < 2; i++ {
		redirect, err := s.OpenNotification(recipientCtx, notifications[0].ID)
		require.NoError(t, err)
		require.Equal(t, "/leads/"+lead.ID.String(), redirect)
	}

	count, err := s.UnreadNotificationCount(recipientCtx)
	require.NoError(t, err)
	require.Equal(t, 0, count)
}

func TestService_CreateMessage_EmptyContent(t *testing.T) {
	t.Parallel()

	s, repo, _ := newService(t)

	user := createTestUser(t, repo, false)
	ctx := entity.CtxWithUser(context.Background(), user)

	_, err := s.CreateMessage(ctx, entity.ModelLead, uuid.Must(uuid.NewV4()), "")
	require.True(t, errors.Is(err, entity.ErrInvalidArgument))
}

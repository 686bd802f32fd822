package service_test

import (
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/crm/internal/entity"
	"github.com/samandr77/crm/internal/service"
)

func TestSessionManager_RoundTrip(t *testing.T) {
	t.Parallel()

	m := service.NewSessionManager("test-secret", time.Hour)
	userID := uuid.Must(uuid.NewV4())

	token, err := m.Mint(userID, time.Now())
	require.NoError(t, err)

	got, err := m.Verify(token)
	require.NoError(t, err)
	require.Equal(t, userID, got)
}

func TestSessionManager_WrongSecret(t *testing.T) {
	t.Parallel()

	token, err := service.NewSessionManager("secret-a", time.Hour).
		Mint(uuid.Must(uuid.NewV4()), time.Now())
	require.NoError(t, err)

	_, err = service.NewSessionManager("secret-b", time.Hour).Verify(token)
	require.Error(t, err)
	require.True(t, errors.Is(err, entity.ErrUnauthenticated))
}

func TestSessionManager_Expired(t *testing.T) {
	t.Parallel()

	m := service.NewSessionManager("test-secret", time.Minute)

	token, err := m.Mint(uuid.Must(uuid.NewV4()), time.Now().Add(-2*time.Minute))
	require.NoError(t, err)

	_, err = m.Verify(token)
	require.Error(t, err)
	require.True(t, errors.Is(err, entity.ErrUnauthenticated))
}

func TestSessionManager_Garbage(t *testing.T) {
	t.Parallel()

	_, err := service.NewSessionManager("test-secret", time.Hour).Verify("not-a-token")
	require.Error(t, err)
	require.True(t, errors.Is(err, entity.ErrUnauthenticated))
}

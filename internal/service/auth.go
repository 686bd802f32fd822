package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	jwt "github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/samandr77/crm/internal/entity"
)

// SessionManager mints and verifies the signed tokens carried by the
// session cookie.
type SessionManager struct {
	secret []byte
	ttl    time.Duration
}

func NewSessionManager(secret string, ttl time.Duration) *SessionManager {
	return &SessionManager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

func (m *SessionManager) TTL() time.Duration {
	return m.ttl
}

func (m *SessionManager) Mint(userID uuid.UUID, now time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}

	return signed, nil
}

func (m *SessionManager) Verify(token string) (uuid.UUID, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}

		return m.secret, nil
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", entity.ErrUnauthenticated, err)
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return uuid.Nil, entity.ErrUnauthenticated
	}

	userID, err := uuid.FromString(claims.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: bad subject: %w", entity.ErrUnauthenticated, err)
	}

	return userID, nil
}

// Login verifies credentials and returns the user with a fresh session
// token. A bad username and a bad password are indistinguishable to the
// caller.
func (s *Service) Login(ctx context.Context, username, password string) (entity.User, string, error) {
	user, err := s.repo.UserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.User{}, "", entity.ErrUnauthenticated
		}

		return entity.User{}, "", fmt.Errorf("load user %q: %w", username, err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		return entity.User{}, "", entity.ErrUnauthenticated
	}

	token, err := s.sessions.Mint(user.ID, time.Now())
	if err != nil {
		return entity.User{}, "", err
	}

	return user, token, nil
}

// UserFromToken resolves a session token to its user.
func (s *Service) UserFromToken(ctx context.Context, token string) (entity.User, error) {
	userID, err := s.sessions.Verify(token)
	if err != nil {
		return entity.User{}, err
	}

	user, err := s.repo.User(ctx, userID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.User{}, entity.ErrUnauthenticated
		}

		return entity.User{}, fmt.Errorf("load user %s: %w", userID, err)
	}

	return user, nil
}

func (s *Service) SessionTTL() time.Duration {
	return s.sessions.TTL()
}

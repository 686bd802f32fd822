package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/crm/internal/entity"
	"github.com/samandr77/crm/internal/repository"
)

var mentionRegexp = regexp.MustCompile(`@(\w+)`)

// ExtractMentions returns the distinct usernames mentioned as @name
// tokens in content, sorted for deterministic fan-out order.
func ExtractMentions(content string) []string {
	seen := make(map[string]struct{})

	for _, m := range mentionRegexp.FindAllStringSubmatch(content, -1) {
		seen[m[1]] = struct{}{}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// CreateMessage stores the message and fans out one notification per
// distinct mentioned user, all in a single transaction. Unknown usernames
// are skipped silently. Returns the path of the record the message is
// attached to.
func (s *Service) CreateMessage(ctx context.Context, model entity.Model, recordID uuid.UUID, content string) (string, error) {
	author, err := entity.UserFromCtx(ctx)
	if err != nil {
		return "", err
	}

	if content == "" {
		return "", fmt.Errorf("%w: empty content", entity.ErrInvalidArgument)
	}

	now := time.Now()

	message := entity.Message{
		ID:        uuid.Must(uuid.NewV4()),
		UserID:    author.ID,
		Model:     model,
		RecordID:  recordID,
		Content:   content,
		CreatedAt: now,
	}

	var notifications []entity.Notification

	err = s.repo.InTx(ctx, func(r *repository.Repository) error {
		err := r.CreateMessage(ctx, message)
		if err != nil {
			return fmt.Errorf("create message: %w", err)
		}

		notifications, err = fanOutMentions(ctx, r, message)
		if err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		return "", err
	}

	for _, n := range notifications {
		s.producer.SendNotificationCreated(ctx, n.ID, n.UserID, n.MessageID, n.Model.String(), n.RecordID)
		s.mailMention(ctx, n, author, content)
	}

	return model.RoutePath(recordID)
}

func fanOutMentions(ctx context.Context, r *repository.Repository, m entity.Message) ([]entity.Notification, error) {
	var notifications []entity.Notification

	for _, username := range ExtractMentions(m.Content) {
		user, err := r.UserByUsername(ctx, username)
		if err != nil {
			if errors.Is(err, entity.ErrNotFound) {
				continue
			}

			return nil, fmt.Errorf("look up mention @%s: %w", username, err)
		}

		n := entity.Notification{
			ID:        uuid.Must(uuid.NewV4()),
			UserID:    user.ID,
			MessageID: m.ID,
			Model:     m.Model,
			RecordID:  m.RecordID,
			IsRead:    false,
			CreatedAt: m.CreatedAt,
		}

		err = r.CreateNotification(ctx, n)
		if err != nil {
			return nil, fmt.Errorf("create notification for @%s: %w", username, err)
		}

		notifications = append(notifications, n)
	}

	return notifications, nil
}

// mailMention sends a best-effort email to the mentioned user. Failures
// are logged, never surfaced: mail must not fail the request.
func (s *Service) mailMention(ctx context.Context, n entity.Notification, author entity.User, content string) {
	if s.mailer == nil {
		return
	}

	recipient, err := s.repo.User(ctx, n.UserID)
	if err != nil {
		slog.ErrorContext(ctx, "load mention recipient", "user_id", n.UserID, "error", err)
		return
	}

	subject := fmt.Sprintf("%s mentioned you", author.Username)
	body := fmt.Sprintf("%s mentioned you in a message:\n\n%s", author.Username, content)

	// Usernames double as mail addresses when the directory has no
	// separate email column.
	err = s.mailer.SendMessage(subject, body, []string{recipient.Username})
	if err != nil {
		slog.ErrorContext(ctx, "send mention email", "user_id", n.UserID, "error", err)
	}
}

// Notifications returns the current user's notifications, newest first.
func (s *Service) Notifications(ctx context.Context) ([]entity.Notification, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	return s.repo.NotificationsForUser(ctx, user.ID)
}

func (s *Service) UnreadNotificationCount(ctx context.Context) (int, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return 0, err
	}

	return s.repo.CountUnreadNotifications(ctx, user.ID)
}

// OpenNotification marks a notification read and returns the path of the
// record it points at. Only the notification's recipient may open it;
// repeat visits are no-ops.
func (s *Service) OpenNotification(ctx context.Context, id uuid.UUID) (string, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return "", err
	}

	n, err := s.repo.Notification(ctx, id)
	if err != nil {
		return "", err
	}

	if n.UserID != user.ID {
		return "", entity.ErrForbidden
	}

	err = s.repo.MarkNotificationRead(ctx, n.ID)
	if err != nil {
		return "", err
	}

	return n.Model.RoutePath(n.RecordID)
}

package repository

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/samandr77/crm/internal/entity"
)

const (
	selectMessage      = `SELECT id, user_id, model, record_id, content, created_at FROM messages`
	selectNotification = `SELECT id, user_id, message_id, model, record_id, is_read, created_at FROM notifications`
)

func scanMessage(row pgx.Row) (m entity.Message, err error) {
	err = row.Scan(&m.ID, &m.UserID, &m.Model, &m.RecordID, &m.Content, &m.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return entity.Message{}, entity.ErrNotFound
	}

	return m, err
}

func scanNotification(row pgx.Row) (n entity.Notification, err error) {
	err = row.Scan(&n.ID, &n.UserID, &n.MessageID, &n.Model, &n.RecordID, &n.IsRead, &n.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return entity.Notification{}, entity.ErrNotFound
	}

	return n, err
}

func (r *Repository) CreateMessage(ctx context.Context, m entity.Message) error {
	const q = `
	INSERT INTO messages (id, user_id, model, record_id, content, created_at)
	VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(ctx, q, m.ID, m.UserID, m.Model, m.RecordID, m.Content, m.CreatedAt)

	return err
}

// MessagesFor returns a record's messages, newest first.
func (r *Repository) MessagesFor(ctx context.Context, model entity.Model, recordID uuid.UUID) ([]entity.Message, error) {
	const q = ` WHERE model = $1 AND record_id = $2 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, selectMessage+q, model, recordID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []entity.Message

	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}

		messages = append(messages, m)
	}

	return messages, rows.Err()
}

func (r *Repository) CreateNotification(ctx context.Context, n entity.Notification) error {
	const q = `
	INSERT INTO notifications (id, user_id, message_id, model, record_id, is_read, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(ctx, q, n.ID, n.UserID, n.MessageID, n.Model, n.RecordID, n.IsRead, n.CreatedAt)

	return err
}

func (r *Repository) Notification(ctx context.Context, id uuid.UUID) (entity.Notification, error) {
	return scanNotification(r.db.QueryRow(ctx, selectNotification+` WHERE id = $1`, id))
}

// NotificationsForUser returns a user's notifications, newest first.
func (r *Repository) NotificationsForUser(ctx context.Context, userID uuid.UUID) ([]entity.Notification, error) {
	rows, err := r.db.Query(ctx, selectNotification+` WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []entity.Notification

	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}

		notifications = append(notifications, n)
	}

	return notifications, rows.Err()
}

// MarkNotificationRead sets is_read. Marking an already read notification
// is a no-op, which keeps the detail route idempotent.
func (r *Repository) MarkNotificationRead(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `UPDATE notifications SET is_read = TRUE WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) CountUnreadNotifications(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int

	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND is_read = FALSE`, userID).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

type Message struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Model     Model     `json:"model"`
	RecordID  uuid.UUID `json:"record_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type Notification struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	MessageID uuid.UUID `json:"message_id"`
	Model     Model     `json:"model"`
	RecordID  uuid.UUID `json:"record_id"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

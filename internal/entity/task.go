package entity

import (
	"github.com/gofrs/uuid/v5"
)

// Task is attached to a record via the (Model, RecordID) pair. Due dates
// are stored as submitted; the handlers do not coerce them.
type Task struct {
	ID          uuid.UUID     `json:"id"`
	Description string        `json:"description"`
	DueDate     string        `json:"due_date"`
	Status      string        `json:"status"`
	Model       Model         `json:"model"`
	RecordID    uuid.NullUUID `json:"record_id"`
	OwnerID     uuid.NullUUID `json:"owner_id"`
}

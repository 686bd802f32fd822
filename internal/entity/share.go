package entity

import (
	"github.com/gofrs/uuid/v5"
)

// Share is an explicit per-record grant to a single user, independent of
// the role hierarchy. can_write is stored but update handlers do not
// consult it; see the access evaluator.
type Share struct {
	ID       uuid.UUID
	Model    Model
	RecordID uuid.UUID
	UserID   uuid.UUID
	CanRead  bool
	CanWrite bool
}

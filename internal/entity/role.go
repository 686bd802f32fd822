package entity

import (
	"github.com/gofrs/uuid/v5"
)

// Role is a node in the organizational hierarchy. The parent link forms a
// tree by convention only: the schema does not forbid cycles, so any
// traversal must carry a visited set.
type Role struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	ParentID uuid.NullUUID `json:"parent_id"`
}

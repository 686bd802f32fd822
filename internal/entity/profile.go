package entity

import (
	"github.com/gofrs/uuid/v5"
)

// SecurityProfile bundles coarse per-model CRUD flags. Profiles are
// administrable and assignable to users but largely declarative: record
// handlers gate on ownership, shares and roles, not on these flags.
type SecurityProfile struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type ObjectPermission struct {
	ID        uuid.UUID `json:"id"`
	ProfileID uuid.UUID `json:"profile_id"`
	Model     Model     `json:"model"`
	CanCreate bool      `json:"can_create"`
	CanRead   bool      `json:"can_read"`
	CanUpdate bool      `json:"can_update"`
	CanDelete bool      `json:"can_delete"`
}

type FieldPermission struct {
	ID        uuid.UUID `json:"id"`
	ProfileID uuid.UUID `json:"profile_id"`
	Model     Model     `json:"model"`
	Field     string    `json:"field"`
	CanRead   bool      `json:"can_read"`
	CanEdit   bool      `json:"can_edit"`
}

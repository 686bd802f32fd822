package repository

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/samandr77/crm/internal/entity"
)

const selectRole = `SELECT id, name, parent_id FROM roles`

func scanRole(row pgx.Row) (role entity.Role, err error) {
	err = row.Scan(&role.ID, &role.Name, &role.ParentID)
	if errors.Is(err, pgx.ErrNoRows) {
		return entity.Role{}, entity.ErrNotFound
	}

	return role, err
}

func (r *Repository) CreateRole(ctx context.Context, role entity.Role) error {
	const q = `INSERT INTO roles (id, name, parent_id) VALUES ($1, $2, $3)`

	_, err := r.db.Exec(ctx, q, role.ID, role.Name, role.ParentID)

	return err
}

func (r *Repository) Role(ctx context.Context, id uuid.UUID) (entity.Role, error) {
	return scanRole(r.db.QueryRow(ctx, selectRole+` WHERE id = $1`, id))
}

func (r *Repository) Roles(ctx context.Context) ([]entity.Role, error) {
	return r.rolesWhere(ctx, selectRole+` ORDER BY name`)
}

// RolesByParent returns the direct children of a role. The access
// evaluator walks the hierarchy by calling this repeatedly.
func (r *Repository) RolesByParent(ctx context.Context, parentID uuid.UUID) ([]entity.Role, error) {
	return r.rolesWhere(ctx, selectRole+` WHERE parent_id = $1`, parentID)
}

func (r *Repository) DeleteRole(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM roles WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) rolesWhere(ctx context.Context, q string, args ...any) ([]entity.Role, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []entity.Role

	for rows.Next() {
		role, err := scanRole(rows)
		if err != nil {
			return nil, err
		}

		roles = append(roles, role)
	}

	return roles, rows.Err()
}

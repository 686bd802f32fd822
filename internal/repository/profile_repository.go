package repository

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/samandr77/crm/internal/entity"
)

func (r *Repository) CreateSecurityProfile(ctx context.Context, p entity.SecurityProfile) error {
	const q = `INSERT INTO security_profiles (id, name) VALUES ($1, $2)`

	_, err := r.db.Exec(ctx, q, p.ID, p.Name)

	return err
}

func (r *Repository) SecurityProfile(ctx context.Context, id uuid.UUID) (entity.SecurityProfile, error) {
	var p entity.SecurityProfile

	err := r.db.QueryRow(ctx, `SELECT id, name FROM security_profiles WHERE id = $1`, id).Scan(&p.ID, &p.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return entity.SecurityProfile{}, entity.ErrNotFound
	}

	return p, err
}

func (r *Repository) SecurityProfiles(ctx context.Context) ([]entity.SecurityProfile, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM security_profiles ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []entity.SecurityProfile

	for rows.Next() {
		var p entity.SecurityProfile

		err = rows.Scan(&p.ID, &p.Name)
		if err != nil {
			return nil, err
		}

		profiles = append(profiles, p)
	}

	return profiles, rows.Err()
}

func (r *Repository) CreateObjectPermission(ctx context.Context, p entity.ObjectPermission) error {
	const q = `
	INSERT INTO object_permissions (id, profile_id, model, can_create, can_read, can_update, can_delete)
	VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(ctx, q, p.ID, p.ProfileID, p.Model, p.CanCreate, p.CanRead, p.CanUpdate, p.CanDelete)

	return err
}

func (r *Repository) ObjectPermissionsForProfile(ctx context.Context, profileID uuid.UUID) ([]entity.ObjectPermission, error) {
	const q = `
	SELECT id, profile_id, model, can_create, can_read, can_update, can_delete
	FROM object_permissions
	WHERE profile_id = $1
	ORDER BY model`

	rows, err := r.db.Query(ctx, q, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var perms []entity.ObjectPermission

	for rows.Next() {
		var p entity.ObjectPermission

		err = rows.Scan(&p.ID, &p.ProfileID, &p.Model, &p.CanCreate, &p.CanRead, &p.CanUpdate, &p.CanDelete)
		if err != nil {
			return nil, err
		}

		perms = append(perms, p)
	}

	return perms, rows.Err()
}

func (r *Repository) CreateFieldPermission(ctx context.Context, p entity.FieldPermission) error {
	const q = `
	INSERT INTO field_permissions (id, profile_id, model, field, can_read, can_edit)
	VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(ctx, q, p.ID, p.ProfileID, p.Model, p.Field, p.CanRead, p.CanEdit)

	return err
}

func (r *Repository) FieldPermissionsForProfile(ctx context.Context, profileID uuid.UUID) ([]entity.FieldPermission, error) {
	const q = `
	SELECT id, profile_id, model, field, can_read, can_edit
	FROM field_permissions
	WHERE profile_id = $1
	ORDER BY model, field`

	rows, err := r.db.Query(ctx, q, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var perms []entity.FieldPermission

	for rows.Next() {
		var p entity.FieldPermission

		err = rows.Scan(&p.ID, &p.ProfileID, &p.Model, &p.Field, &p.CanRead, &p.CanEdit)
		if err != nil {
			return nil, err
		}

		perms = append(perms, p)
	}

	return perms, rows.Err()
}

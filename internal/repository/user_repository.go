package repository

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/samandr77/crm/internal/entity"
)

const selectUser = `
SELECT id, username, password_hash, is_admin, role_id, security_profile_id, language, timezone, country, currency
FROM users`

func scanUser(row pgx.Row) (u entity.User, err error) {
	err = row.Scan(
		&u.ID,
		&u.Username,
		&u.PasswordHash,
		&u.IsAdmin,
		&u.RoleID,
		&u.SecurityProfileID,
		&u.Language,
		&u.Timezone,
		&u.Country,
		&u.Currency,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return entity.User{}, entity.ErrNotFound
	}

	return u, err
}

func (r *Repository) CreateUser(ctx context.Context, u entity.User) error {
	const q = `
	INSERT INTO users (id, username, password_hash, is_admin, role_id, security_profile_id, language, timezone, country, currency)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.Exec(ctx, q,
		u.ID,
		u.Username,
		u.PasswordHash,
		u.IsAdmin,
		u.RoleID,
		u.SecurityProfileID,
		u.Language,
		u.Timezone,
		u.Country,
		u.Currency,
	)

	return err
}

func (r *Repository) User(ctx context.Context, id uuid.UUID) (entity.User, error) {
	return scanUser(r.db.QueryRow(ctx, selectUser+` WHERE id = $1`, id))
}

func (r *Repository) UserByUsername(ctx context.Context, username string) (entity.User, error) {
	return scanUser(r.db.QueryRow(ctx, selectUser+` WHERE username = $1`, username))
}

func (r *Repository) Users(ctx context.Context) ([]entity.User, error) {
	rows, err := r.db.Query(ctx, selectUser+` ORDER BY username`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []entity.User

	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}

		users = append(users, u)
	}

	return users, rows.Err()
}

func (r *Repository) DeleteUser(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) UpdateUserSettings(ctx context.Context, id uuid.UUID, s entity.UserSettings) error {
	const q = `UPDATE users SET language = $1, timezone = $2, country = $3, currency = $4 WHERE id = $5`

	result, err := r.db.Exec(ctx, q, s.Language, s.Timezone, s.Country, s.Currency, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

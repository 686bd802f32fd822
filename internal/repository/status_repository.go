package repository

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/samandr77/crm/internal/entity"
)

const selectStatusOption = `SELECT id, model, value FROM status_options`

func scanStatusOption(row pgx.Row) (s entity.StatusOption, err error) {
	err = row.Scan(&s.ID, &s.Model, &s.Value)
	if errors.Is(err, pgx.ErrNoRows) {
		return entity.StatusOption{}, entity.ErrNotFound
	}

	return s, err
}

func (r *Repository) CreateStatusOption(ctx context.Context, s entity.StatusOption) error {
	const q = `INSERT INTO status_options (id, model, value) VALUES ($1, $2, $3)`

	_, err := r.db.Exec(ctx, q, s.ID, s.Model, s.Value)

	return err
}

func (r *Repository) StatusOption(ctx context.Context, id uuid.UUID) (entity.StatusOption, error) {
	return scanStatusOption(r.db.QueryRow(ctx, selectStatusOption+` WHERE id = $1`, id))
}

func (r *Repository) StatusOptions(ctx context.Context, model entity.Model) ([]entity.StatusOption, error) {
	return r.statusOptionsWhere(ctx, selectStatusOption+` WHERE model = $1 ORDER BY value`, model)
}

func (r *Repository) AllStatusOptions(ctx context.Context) ([]entity.StatusOption, error) {
	return r.statusOptionsWhere(ctx, selectStatusOption+` ORDER BY model, value`)
}

func (r *Repository) UpdateStatusOption(ctx context.Context, id uuid.UUID, value string) error {
	result, err := r.db.Exec(ctx, `UPDATE status_options SET value = $1 WHERE id = $2`, value, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) DeleteStatusOption(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM status_options WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) statusOptionsWhere(ctx context.Context, q string, args ...any) ([]entity.StatusOption, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var options []entity.StatusOption

	for rows.Next() {
		s, err := scanStatusOption(rows)
		if err != nil {
			return nil, err
		}

		options = append(options, s)
	}

	return options, rows.Err()
}

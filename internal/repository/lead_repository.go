package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/samandr77/crm/internal/entity"
)

const selectLead = `SELECT id, name, email, phone, company, notes, status, owner_id FROM leads`

func scanLead(row pgx.Row) (l entity.Lead, err error) {
	err = row.Scan(&l.ID, &l.Name, &l.Email, &l.Phone, &l.Company, &l.Notes, &l.Status, &l.OwnerID)
	if errors.Is(err, pgx.ErrNoRows) {
		return entity.Lead{}, entity.ErrNotFound
	}

	return l, err
}

func (r *Repository) CreateLead(ctx context.Context, l entity.Lead) error {
	const q = `
	INSERT INTO leads (id, name, email, phone, company, notes, status, owner_id)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(ctx, q, l.ID, l.Name, l.Email, l.Phone, l.Company, l.Notes, l.Status, l.OwnerID)

	return err
}

func (r *Repository) Lead(ctx context.Context, id uuid.UUID) (entity.Lead, error) {
	return scanLead(r.db.QueryRow(ctx, selectLead+` WHERE id = $1`, id))
}

func (r *Repository) UpdateLead(ctx context.Context, l entity.Lead) error {
	const q = `
	UPDATE leads SET name = $1, email = $2, phone = $3, company = $4, notes = $5, status = $6
	WHERE id = $7`

	result, err := r.db.Exec(ctx, q, l.Name, l.Email, l.Phone, l.Company, l.Notes, l.Status, l.ID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) UpdateLeadStatus(ctx context.Context, id uuid.UUID, status string) error {
	result, err := r.db.Exec(ctx, `UPDATE leads SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) DeleteLead(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

// Leads lists leads, optionally filtered by a case-insensitive name
// substring.
func (r *Repository) Leads(ctx context.Context, q string) ([]entity.Lead, error) {
	stmt := sq.Select("id", "name", "email", "phone", "company", "notes", "status", "owner_id").
		From("leads").
		OrderBy("name").
		PlaceholderFormat(sq.Dollar)

	if q != "" {
		stmt = stmt.Where(sq.ILike{"name": "%" + q + "%"})
	}

	sql, args, err := stmt.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leads []entity.Lead

	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, err
		}

		leads = append(leads, l)
	}

	return leads, rows.Err()
}

func (r *Repository) LeadsByStatus(ctx context.Context, status string) ([]entity.Lead, error) {
	rows, err := r.db.Query(ctx, selectLead+` WHERE status = $1 ORDER BY name`, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leads []entity.Lead

	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, err
		}

		leads = append(leads, l)
	}

	return leads, rows.Err()
}

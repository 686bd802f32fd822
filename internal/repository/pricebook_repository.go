package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/samandr77/crm/internal/entity"
)

const (
	selectPricebook      = `SELECT id, name, description, owner_id FROM pricebooks`
	selectPricebookEntry = `SELECT id, product_id, pricebook_id, unit_price, owner_id FROM pricebook_entries`
)

func scanPricebook(row pgx.Row) (p entity.Pricebook, err error) {
	err = row.Scan(&p.ID, &p.Name, &p.Description, &p.OwnerID)
	if errors.Is(err, pgx.ErrNoRows) {
		return entity.Pricebook{}, entity.ErrNotFound
	}

	return p, err
}

func scanPricebookEntry(row pgx.Row) (e entity.PricebookEntry, err error) {
	err = row.Scan(&e.ID, &e.ProductID, &e.PricebookID, &e.UnitPrice, &e.OwnerID)
	if errors.Is(err, pgx.ErrNoRows) {
		return entity.PricebookEntry{}, entity.ErrNotFound
	}

	return e, err
}

func (r *Repository) CreatePricebook(ctx context.Context, p entity.Pricebook) error {
	const q = `INSERT INTO pricebooks (id, name, description, owner_id) VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(ctx, q, p.ID, p.Name, p.Description, p.OwnerID)

	return err
}

func (r *Repository) Pricebook(ctx context.Context, id uuid.UUID) (entity.Pricebook, error) {
	return scanPricebook(r.db.QueryRow(ctx, selectPricebook+` WHERE id = $1`, id))
}

func (r *Repository) UpdatePricebook(ctx context.Context, p entity.Pricebook) error {
	const q = `UPDATE pricebooks SET name = $1, description = $2 WHERE id = $3`

	result, err := r.db.Exec(ctx, q, p.Name, p.Description, p.ID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) Pricebooks(ctx context.Context, q string) ([]entity.Pricebook, error) {
	stmt := sq.Select("id", "name", "description", "owner_id").
		From("pricebooks").
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

	var pricebooks []entity.Pricebook

	for rows.Next() {
		p, err := scanPricebook(rows)
		if err != nil {
			return nil, err
		}

		pricebooks = append(pricebooks, p)
	}

	return pricebooks, rows.Err()
}

func (r *Repository) CreatePricebookEntry(ctx context.Context, e entity.PricebookEntry) error {
	const q = `
	INSERT INTO pricebook_entries (id, product_id, pricebook_id, unit_price, owner_id)
	VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(ctx, q, e.ID, e.ProductID, e.PricebookID, e.UnitPrice, e.OwnerID)

	return err
}

func (r *Repository) PricebookEntry(ctx context.Context, id uuid.UUID) (entity.PricebookEntry, error) {
	return scanPricebookEntry(r.db.QueryRow(ctx, selectPricebookEntry+` WHERE id = $1`, id))
}

func (r *Repository) UpdatePricebookEntry(ctx context.Context, e entity.PricebookEntry) error {
	const q = `UPDATE pricebook_entries SET product_id = $1, pricebook_id = $2, unit_price = $3 WHERE id = $4`

	result, err := r.db.Exec(ctx, q, e.ProductID, e.PricebookID, e.UnitPrice, e.ID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

// PricebookEntries lists entries. The filter matches the original UI: a
// non-empty q must parse as an entry id, otherwise no rows match.
func (r *Repository) PricebookEntries(ctx context.Context, q string) ([]entity.PricebookEntry, error) {
	stmt := sq.Select("id", "product_id", "pricebook_id", "unit_price", "owner_id").
		From("pricebook_entries").
		PlaceholderFormat(sq.Dollar)

	if q != "" {
		id, err := uuid.FromString(q)
		if err != nil {
			return nil, nil
		}

		stmt = stmt.Where(sq.Eq{"id": id})
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

	var entries []entity.PricebookEntry

	for rows.Next() {
		e, err := scanPricebookEntry(rows)
		if err != nil {
			return nil, err
		}

		entries = append(entries, e)
	}

	return entries, rows.Err()
}

package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/samandr77/crm/internal/entity"
)

const selectContact = `SELECT id, name, email, phone, title, account_id, owner_id FROM contacts`

func scanContact(row pgx.Row) (c entity.Contact, err error) {
	err = row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Title, &c.AccountID, &c.OwnerID)
	if errors.Is(err, pgx.ErrNoRows) {
		return entity.Contact{}, entity.ErrNotFound
	}

	return c, err
}

func (r *Repository) CreateContact(ctx context.Context, c entity.Contact) error {
	const q = `
	INSERT INTO contacts (id, name, email, phone, title, account_id, owner_id)
	VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(ctx, q, c.ID, c.Name, c.Email, c.Phone, c.Title, c.AccountID, c.OwnerID)

	return err
}

func (r *Repository) Contact(ctx context.Context, id uuid.UUID) (entity.Contact, error) {
	return scanContact(r.db.QueryRow(ctx, selectContact+` WHERE id = $1`, id))
}

func (r *Repository) UpdateContact(ctx context.Context, c entity.Contact) error {
	const q = `
	UPDATE contacts SET name = $1, email = $2, phone = $3, title = $4, account_id = $5
	WHERE id = $6`

	result, err := r.db.Exec(ctx, q, c.Name, c.Email, c.Phone, c.Title, c.AccountID, c.ID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) Contacts(ctx context.Context, q string) ([]entity.Contact, error) {
	stmt := sq.Select("id", "name", "email", "phone", "title", "account_id", "owner_id").
		From("contacts").
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

	var contacts []entity.Contact

	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, err
		}

		contacts = append(contacts, c)
	}

	return contacts, rows.Err()
}

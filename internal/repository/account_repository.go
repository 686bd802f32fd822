package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/samandr77/crm/internal/entity"
)

const selectAccount = `SELECT id, name, industry, email, phone, address, notes, owner_id FROM accounts`

func scanAccount(row pgx.Row) (a entity.Account, err error) {
	err = row.Scan(&a.ID, &a.Name, &a.Industry, &a.Email, &a.Phone, &a.Address, &a.Notes, &a.OwnerID)
	if errors.Is(err, pgx.ErrNoRows) {
		return entity.Account{}, entity.ErrNotFound
	}

	return a, err
}

func (r *Repository) CreateAccount(ctx context.Context, a entity.Account) error {
	const q = `
	INSERT INTO accounts (id, name, industry, email, phone, address, notes, owner_id)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(ctx, q, a.ID, a.Name, a.Industry, a.Email, a.Phone, a.Address, a.Notes, a.OwnerID)

	return err
}

func (r *Repository) Account(ctx context.Context, id uuid.UUID) (entity.Account, error) {
	return scanAccount(r.db.QueryRow(ctx, selectAccount+` WHERE id = $1`, id))
}

func (r *Repository) UpdateAccount(ctx context.Context, a entity.Account) error {
	const q = `
	UPDATE accounts SET name = $1, industry = $2, email = $3, phone = $4, address = $5, notes = $6
	WHERE id = $7`

	result, err := r.db.Exec(ctx, q, a.Name, a.Industry, a.Email, a.Phone, a.Address, a.Notes, a.ID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) Accounts(ctx context.Context, q string) ([]entity.Account, error) {
	stmt := sq.Select("id", "name", "industry", "email", "phone", "address", "notes", "owner_id").
		From("accounts").
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

	var accounts []entity.Account

	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}

		accounts = append(accounts, a)
	}

	return accounts, rows.Err()
}

package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/samandr77/crm/internal/entity"
)

const selectDeal = `SELECT id, name, amount, stage, close_date, account_id, owner_id FROM deals`

func scanDeal(row pgx.Row) (d entity.Deal, err error) {
	err = row.Scan(&d.ID, &d.Name, &d.Amount, &d.Stage, &d.CloseDate, &d.AccountID, &d.OwnerID)
	if errors.Is(err, pgx.ErrNoRows) {
		return entity.Deal{}, entity.ErrNotFound
	}

	return d, err
}

func (r *Repository) CreateDeal(ctx context.Context, d entity.Deal) error {
	const q = `
	INSERT INTO deals (id, name, amount, stage, close_date, account_id, owner_id)
	VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(ctx, q, d.ID, d.Name, d.Amount, d.Stage, d.CloseDate, d.AccountID, d.OwnerID)

	return err
}

func (r *Repository) Deal(ctx context.Context, id uuid.UUID) (entity.Deal, error) {
	return scanDeal(r.db.QueryRow(ctx, selectDeal+` WHERE id = $1`, id))
}

func (r *Repository) UpdateDeal(ctx context.Context, d entity.Deal) error {
	const q = `
	UPDATE deals SET name = $1, amount = $2, stage = $3, close_date = $4, account_id = $5
	WHERE id = $6`

	result, err := r.db.Exec(ctx, q, d.Name, d.Amount, d.Stage, d.CloseDate, d.AccountID, d.ID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) UpdateDealStage(ctx context.Context, id uuid.UUID, stage string) error {
	result, err := r.db.Exec(ctx, `UPDATE deals SET stage = $1 WHERE id = $2`, stage, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) Deals(ctx context.Context, q string) ([]entity.Deal, error) {
	stmt := sq.Select("id", "name", "amount", "stage", "close_date", "account_id", "owner_id").
		From("deals").
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

	var deals []entity.Deal

	for rows.Next() {
		d, err := scanDeal(rows)
		if err != nil {
			return nil, err
		}

		deals = append(deals, d)
	}

	return deals, rows.Err()
}

func (r *Repository) DealsByStage(ctx context.Context, stage string) ([]entity.Deal, error) {
	rows, err := r.db.Query(ctx, selectDeal+` WHERE stage = $1 ORDER BY name`, stage)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var deals []entity.Deal

	for rows.Next() {
		d, err := scanDeal(rows)
		if err != nil {
			return nil, err
		}

		deals = append(deals, d)
	}

	return deals, rows.Err()
}

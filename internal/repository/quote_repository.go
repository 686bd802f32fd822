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
	selectQuote         = `SELECT id, deal_id, total, expiration_date, owner_id FROM quotes`
	selectQuoteLineItem = `SELECT id, quote_id, product_id, quantity, price, owner_id FROM quote_line_items`
)

func scanQuote(row pgx.Row) (q entity.Quote, err error) {
	err = row.Scan(&q.ID, &q.DealID, &q.Total, &q.ExpirationDate, &q.OwnerID)
	if errors.Is(err, pgx.ErrNoRows) {
		return entity.Quote{}, entity.ErrNotFound
	}

	return q, err
}

func scanQuoteLineItem(row pgx.Row) (i entity.QuoteLineItem, err error) {
	err = row.Scan(&i.ID, &i.QuoteID, &i.ProductID, &i.Quantity, &i.Price, &i.OwnerID)
	if errors.Is(err, pgx.ErrNoRows) {
		return entity.QuoteLineItem{}, entity.ErrNotFound
	}

	return i, err
}

func (r *Repository) CreateQuote(ctx context.Context, q entity.Quote) error {
	const stmt = `INSERT INTO quotes (id, deal_id, total, expiration_date, owner_id) VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(ctx, stmt, q.ID, q.DealID, q.Total, q.ExpirationDate, q.OwnerID)

	return err
}

func (r *Repository) Quote(ctx context.Context, id uuid.UUID) (entity.Quote, error) {
	return scanQuote(r.db.QueryRow(ctx, selectQuote+` WHERE id = $1`, id))
}

func (r *Repository) UpdateQuote(ctx context.Context, q entity.Quote) error {
	const stmt = `UPDATE quotes SET deal_id = $1, total = $2, expiration_date = $3 WHERE id = $4`

	result, err := r.db.Exec(ctx, stmt, q.DealID, q.Total, q.ExpirationDate, q.ID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

// Quotes lists quotes; a non-empty q filters by exact quote id.
func (r *Repository) Quotes(ctx context.Context, q string) ([]entity.Quote, error) {
	stmt := sq.Select("id", "deal_id", "total", "expiration_date", "owner_id").
		From("quotes").
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

	var quotes []entity.Quote

	for rows.Next() {
		quote, err := scanQuote(rows)
		if err != nil {
			return nil, err
		}

		quotes = append(quotes, quote)
	}

	return quotes, rows.Err()
}

func (r *Repository) CreateQuoteLineItem(ctx context.Context, i entity.QuoteLineItem) error {
	const stmt = `
	INSERT INTO quote_line_items (id, quote_id, product_id, quantity, price, owner_id)
	VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(ctx, stmt, i.ID, i.QuoteID, i.ProductID, i.Quantity, i.Price, i.OwnerID)

	return err
}

func (r *Repository) QuoteLineItem(ctx context.Context, id uuid.UUID) (entity.QuoteLineItem, error) {
	return scanQuoteLineItem(r.db.QueryRow(ctx, selectQuoteLineItem+` WHERE id = $1`, id))
}

func (r *Repository) UpdateQuoteLineItem(ctx context.Context, i entity.QuoteLineItem) error {
	const stmt = `
	UPDATE quote_line_items SET quote_id = $1, product_id = $2, quantity = $3, price = $4
	WHERE id = $5`

	result, err := r.db.Exec(ctx, stmt, i.QuoteID, i.ProductID, i.Quantity, i.Price, i.ID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

// QuoteLineItems lists line items; a non-empty q filters by exact item id.
func (r *Repository) QuoteLineItems(ctx context.Context, q string) ([]entity.QuoteLineItem, error) {
	stmt := sq.Select("id", "quote_id", "product_id", "quantity", "price", "owner_id").
		From("quote_line_items").
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

	var items []entity.QuoteLineItem

	for rows.Next() {
		i, err := scanQuoteLineItem(rows)
		if err != nil {
			return nil, err
		}

		items = append(items, i)
	}

	return items, rows.Err()
}

package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/samandr77/crm/internal/entity"
)

const selectProduct = `SELECT id, name, price, description, owner_id FROM products`

func scanProduct(row pgx.Row) (p entity.Product, err error) {
	err = row.Scan(&p.ID, &p.Name, &p.Price, &p.Description, &p.OwnerID)
	if errors.Is(err, pgx.ErrNoRows) {
		return entity.Product{}, entity.ErrNotFound
	}

	return p, err
}

func (r *Repository) CreateProduct(ctx context.Context, p entity.Product) error {
	const q = `INSERT INTO products (id, name, price, description, owner_id) VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(ctx, q, p.ID, p.Name, p.Price, p.Description, p.OwnerID)

	return err
}

func (r *Repository) Product(ctx context.Context, id uuid.UUID) (entity.Product, error) {
	return scanProduct(r.db.QueryRow(ctx, selectProduct+` WHERE id = $1`, id))
}

func (r *Repository) UpdateProduct(ctx context.Context, p entity.Product) error {
	const q = `UPDATE products SET name = $1, price = $2, description = $3 WHERE id = $4`

	result, err := r.db.Exec(ctx, q, p.Name, p.Price, p.Description, p.ID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) Products(ctx context.Context, q string) ([]entity.Product, error) {
	stmt := sq.Select("id", "name", "price", "description", "owner_id").
		From("products").
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

	var products []entity.Product

	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}

		products = append(products, p)
	}

	return products, rows.Err()
}

package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/crm/internal/entity"
)

func (r *Repository) CreateShare(ctx context.Context, s entity.Share) error {
	const q = `
	INSERT INTO record_shares (id, model, record_id, user_id, can_read, can_write)
	VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(ctx, q, s.ID, s.Model, s.RecordID, s.UserID, s.CanRead, s.CanWrite)

	return err
}

// SharesFor returns all grants on one record.
func (r *Repository) SharesFor(ctx context.Context, model entity.Model, recordID uuid.UUID) ([]entity.Share, error) {
	const q = `
	SELECT id, model, record_id, user_id, can_read, can_write
	FROM record_shares
	WHERE model = $1 AND record_id = $2`

	rows, err := r.db.Query(ctx, q, model, recordID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shares []entity.Share

	for rows.Next() {
		var s entity.Share

		err = rows.Scan(&s.ID, &s.Model, &s.RecordID, &s.UserID, &s.CanRead, &s.CanWrite)
		if err != nil {
			return nil, err
		}

		shares = append(shares, s)
	}

	return shares, rows.Err()
}

func (r *Repository) DeleteShare(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM record_shares WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

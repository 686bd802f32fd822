package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/samandr77/crm/internal/entity"
)

const selectTask = `SELECT id, description, due_date, status, model, record_id, owner_id FROM tasks`

func scanTask(row pgx.Row) (t entity.Task, err error) {
	err = row.Scan(&t.ID, &t.Description, &t.DueDate, &t.Status, &t.Model, &t.RecordID, &t.OwnerID)
	if errors.Is(err, pgx.ErrNoRows) {
		return entity.Task{}, entity.ErrNotFound
	}

	return t, err
}

func (r *Repository) CreateTask(ctx context.Context, t entity.Task) error {
	const q = `
	INSERT INTO tasks (id, description, due_date, status, model, record_id, owner_id)
	VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(ctx, q, t.ID, t.Description, t.DueDate, t.Status, t.Model, t.RecordID, t.OwnerID)

	return err
}

func (r *Repository) Task(ctx context.Context, id uuid.UUID) (entity.Task, error) {
	return scanTask(r.db.QueryRow(ctx, selectTask+` WHERE id = $1`, id))
}

func (r *Repository) UpdateTask(ctx context.Context, t entity.Task) error {
	const q = `UPDATE tasks SET description = $1, due_date = $2, status = $3 WHERE id = $4`

	result, err := r.db.Exec(ctx, q, t.Description, t.DueDate, t.Status, t.ID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) UpdateTaskStatus(ctx context.Context, id uuid.UUID, status string) error {
	result, err := r.db.Exec(ctx, `UPDATE tasks SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

// Tasks lists tasks, optionally filtered by a case-insensitive description
// substring.
func (r *Repository) Tasks(ctx context.Context, q string) ([]entity.Task, error) {
	stmt := sq.Select("id", "description", "due_date", "status", "model", "record_id", "owner_id").
		From("tasks").
		OrderBy("description").
		PlaceholderFormat(sq.Dollar)

	if q != "" {
		stmt = stmt.Where(sq.ILike{"description": "%" + q + "%"})
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

	var tasks []entity.Task

	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}

		tasks = append(tasks, t)
	}

	return tasks, rows.Err()
}

func (r *Repository) TasksByStatus(ctx context.Context, status string) ([]entity.Task, error) {
	return r.tasksWhere(ctx, selectTask+` WHERE status = $1 ORDER BY description`, status)
}

// TasksFor returns the tasks attached to one record.
func (r *Repository) TasksFor(ctx context.Context, model entity.Model, recordID uuid.UUID) ([]entity.Task, error) {
	return r.tasksWhere(ctx, selectTask+` WHERE model = $1 AND record_id = $2`, model, recordID)
}

func (r *Repository) tasksWhere(ctx context.Context, q string, args ...any) ([]entity.Task, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []entity.Task

	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}

		tasks = append(tasks, t)
	}

	return tasks, rows.Err()
}

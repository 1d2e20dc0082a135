package repository

import (
	"context"
	"database/sql"

	"tasktracker/internal/model"
)

// PostgresTaskRepository implements TaskRepository on database/sql.
type PostgresTaskRepository struct {
	DB *sql.DB
}

// NewPostgresTaskRepository creates a task repository over a PostgreSQL pool.
func NewPostgresTaskRepository(db *sql.DB) *PostgresTaskRepository {
	return &PostgresTaskRepository{DB: db}
}

var _ TaskRepository = (*PostgresTaskRepository)(nil)

// Create inserts task and fills in its id.
func (r *PostgresTaskRepository) Create(ctx context.Context, task *model.Task) error {
	err := r.DB.QueryRowContext(
		ctx,
		`INSERT INTO tasks (title, content, status, priority, user_id, created_at) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		task.Title, task.Content, task.Status, task.Priority, task.UserID, task.CreatedAt,
	).Scan(&task.ID)
	return translateSQLError(err)
}

// ListByUser returns the user's tasks in insertion order.
func (r *PostgresTaskRepository) ListByUser(ctx context.Context, userID int64) ([]model.Task, error) {
	rows, err := r.DB.QueryContext(
		ctx,
		`SELECT id, title, content, status, priority, user_id, created_at FROM tasks WHERE user_id = $1 ORDER BY id`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		var t model.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Content, &t.Status, &t.Priority, &t.UserID, &t.CreatedAt); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// FindByIDAndUser finds a task by id owned by userID.
func (r *PostgresTaskRepository) FindByIDAndUser(ctx context.Context, id, userID int64) (*model.Task, error) {
	var t model.Task
	err := r.DB.QueryRowContext(
		ctx,
		`SELECT id, title, content, status, priority, user_id, created_at FROM tasks WHERE id = $1 AND user_id = $2`,
		id, userID,
	).Scan(&t.ID, &t.Title, &t.Content, &t.Status, &t.Priority, &t.UserID, &t.CreatedAt)
	if err != nil {
		return nil, translateSQLError(err)
	}
	return &t, nil
}

// Update replaces the editable fields of the stored task.
func (r *PostgresTaskRepository) Update(ctx context.Context, task *model.Task) error {
	_, err := r.DB.ExecContext(
		ctx,
		`UPDATE tasks SET title = $1, content = $2, status = $3, priority = $4 WHERE id = $5 AND user_id = $6`,
		task.Title, task.Content, task.Status, task.Priority, task.ID, task.UserID,
	)
	return err
}

// Delete removes the task if it belongs to userID.
func (r *PostgresTaskRepository) Delete(ctx context.Context, id, userID int64) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1 AND user_id = $2`, id, userID)
	return err
}

package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/astroplan/internal/db"
	"github.com/alexanderramin/astroplan/internal/domain"
)

// SQLiteTaskRepo implements TaskRepo using a SQLite database.
type SQLiteTaskRepo struct {
	db db.DBTX
}

// NewSQLiteTaskRepo creates a new SQLiteTaskRepo.
func NewSQLiteTaskRepo(conn db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: conn}
}

const taskColumns = `id, user_id, text, date, completed, category, priority, created_at, updated_at`

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	query := `INSERT INTO tasks (` + taskColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.UserID,
		t.Text,
		t.Date,
		boolToInt(t.Completed),
		string(t.Category),
		string(t.Priority),
		t.CreatedAt.Format(time.RFC3339),
		t.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	t, err := scanTaskRow(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("task: %w", ErrNotFound)
	}
	return t, err
}

// ListByUser returns the user's tasks in insertion order.
func (r *SQLiteTaskRepo) ListByUser(ctx context.Context, userID string) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE user_id = ? ORDER BY created_at, rowid`
	return r.listTasks(ctx, query, userID)
}

func (r *SQLiteTaskRepo) ListByUserAndDate(ctx context.Context, userID, date string) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE user_id = ? AND date = ? ORDER BY created_at, rowid`
	return r.listTasks(ctx, query, userID, date)
}

func (r *SQLiteTaskRepo) Update(ctx context.Context, t *domain.Task) error {
	query := `UPDATE tasks SET text = ?, date = ?, completed = ?, category = ?, priority = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		t.Text,
		t.Date,
		boolToInt(t.Completed),
		string(t.Category),
		string(t.Priority),
		t.UpdatedAt.Format(time.RFC3339),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("task %s: %w", t.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteTaskRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("task %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteTaskRepo) listTasks(ctx context.Context, query string, args ...any) ([]*domain.Task, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*domain.Task
	for rows.Next() {
		t, err := scanTaskRow(rows.Scan)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func scanTaskRow(scan func(dest ...any) error) (*domain.Task, error) {
	var t domain.Task
	var completed int
	var category, priority, createdAt, updatedAt string

	err := scan(&t.ID, &t.UserID, &t.Text, &t.Date, &completed, &category, &priority, &createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning task: %w", err)
	}

	t.Completed = intToBool(completed)
	t.Category = domain.Category(category)
	t.Priority = domain.Priority(priority)
	if ts, err := time.Parse(time.RFC3339, createdAt); err == nil {
		t.CreatedAt = ts
	}
	if ts, err := time.Parse(time.RFC3339, updatedAt); err == nil {
		t.UpdatedAt = ts
	}
	return &t, nil
}

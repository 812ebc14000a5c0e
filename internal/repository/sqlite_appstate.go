package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/astroplan/internal/db"
)

// SQLiteAppStateRepo implements AppStateRepo using a SQLite database.
type SQLiteAppStateRepo struct {
	db db.DBTX
}

// NewSQLiteAppStateRepo creates a new SQLiteAppStateRepo.
func NewSQLiteAppStateRepo(conn db.DBTX) *SQLiteAppStateRepo {
	return &SQLiteAppStateRepo{db: conn}
}

func (r *SQLiteAppStateRepo) GetCurrentUserID(ctx context.Context) (string, error) {
	query := `SELECT current_user_id FROM app_state WHERE id = 'default'`
	var userID sql.NullString
	err := r.db.QueryRowContext(ctx, query).Scan(&userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", fmt.Errorf("current user: %w", ErrNotFound)
		}
		return "", fmt.Errorf("scanning current user: %w", err)
	}
	if !userID.Valid || userID.String == "" {
		return "", fmt.Errorf("current user: %w", ErrNotFound)
	}
	return userID.String, nil
}

func (r *SQLiteAppStateRepo) SetCurrentUserID(ctx context.Context, userID string) error {
	query := `INSERT OR REPLACE INTO app_state (id, current_user_id, updated_at) VALUES ('default', ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, userID, nowUTC()); err != nil {
		return fmt.Errorf("setting current user: %w", err)
	}
	return nil
}

func (r *SQLiteAppStateRepo) ClearCurrentUser(ctx context.Context) error {
	query := `INSERT OR REPLACE INTO app_state (id, current_user_id, updated_at) VALUES ('default', NULL, ?)`
	if _, err := r.db.ExecContext(ctx, query, nowUTC()); err != nil {
		return fmt.Errorf("clearing current user: %w", err)
	}
	return nil
}

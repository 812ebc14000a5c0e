package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/astroplan/internal/db"
	"github.com/alexanderramin/astroplan/internal/domain"
)

// SQLiteUserRepo implements UserRepo using a SQLite database.
type SQLiteUserRepo struct {
	db db.DBTX
}

// NewSQLiteUserRepo creates a new SQLiteUserRepo.
func NewSQLiteUserRepo(conn db.DBTX) *SQLiteUserRepo {
	return &SQLiteUserRepo{db: conn}
}

const userColumns = `id, username, birth_name, birth_date, birth_time, birth_place, created_at, updated_at`

func (r *SQLiteUserRepo) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (` + userColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	name, birthDate, birthTime, place := birthFields(u.BirthData)
	_, err := r.db.ExecContext(ctx, query,
		u.ID,
		u.Username,
		name,
		birthDate,
		birthTime,
		place,
		u.CreatedAt.Format(time.RFC3339),
		u.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting user: %w", err)
	}
	return nil
}

func (r *SQLiteUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = ?`
	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

// GetByUsername looks up a user by exact username. The match is
// case-sensitive: BINARY collation is SQLite's default for TEXT.
func (r *SQLiteUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = ?`
	return r.scanUser(r.db.QueryRowContext(ctx, query, username))
}

func (r *SQLiteUserRepo) List(ctx context.Context) ([]*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		u, err := scanUserFromRows(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *SQLiteUserRepo) Update(ctx context.Context, u *domain.User) error {
	query := `UPDATE users SET username = ?, birth_name = ?, birth_date = ?, birth_time = ?, birth_place = ?, updated_at = ?
		WHERE id = ?`
	name, birthDate, birthTime, place := birthFields(u.BirthData)
	res, err := r.db.ExecContext(ctx, query,
		u.Username,
		name,
		birthDate,
		birthTime,
		place,
		u.UpdatedAt.Format(time.RFC3339),
		u.ID,
	)
	if err != nil {
		return fmt.Errorf("updating user: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("user %s: %w", u.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteUserRepo) scanUser(row *sql.Row) (*domain.User, error) {
	u, err := scanUserRow(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("user: %w", ErrNotFound)
	}
	return u, err
}

func scanUserFromRows(rows *sql.Rows) (*domain.User, error) {
	return scanUserRow(rows.Scan)
}

func scanUserRow(scan func(dest ...any) error) (*domain.User, error) {
	var u domain.User
	var name, birthDate, birthTime, place sql.NullString
	var createdAt, updatedAt string

	err := scan(&u.ID, &u.Username, &name, &birthDate, &birthTime, &place, &createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning user: %w", err)
	}

	if t := parseNullableTime(birthDate, dateLayout); t != nil {
		u.BirthData = &domain.BirthData{
			Name:         name.String,
			DateOfBirth:  *t,
			TimeOfBirth:  birthTime.String,
			PlaceOfBirth: place.String,
		}
	}
	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		u.CreatedAt = t
	}
	if t, err := time.Parse(time.RFC3339, updatedAt); err == nil {
		u.UpdatedAt = t
	}
	return &u, nil
}

// birthFields flattens optional birth data into nullable column values.
func birthFields(b *domain.BirthData) (name, date, timeOfBirth, place any) {
	if b == nil {
		return nil, nil, nil, nil
	}
	return b.Name, b.DateOfBirth.Format(dateLayout), b.TimeOfBirth, b.PlaceOfBirth
}

package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dpetrovs/userreg/internal/common"
	"github.com/dpetrovs/userreg/internal/dbx"
	"github.com/google/uuid"
	"modernc.org/sqlite"
	sqlitelib "modernc.org/sqlite/lib"
)

// created_at layouts accepted on read-back: SQLite's CURRENT_TIMESTAMP
// writes whole seconds, other writers may include a fraction.
const (
	sqliteTimeFracLayout = "2006-01-02 15:04:05.999999999"
	sqliteTimeLayout     = "2006-01-02 15:04:05"
)

// SQLiteRepository stores the row id as a canonical uuid string and
// created_at as formatted text; TEXT is all SQLite offers for either.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// wrapSQLiteError translates a driver error into the shared taxonomy.
// Constraint violations (unique username/email) are still ErrDatabase,
// with the constraint named in the wrapped detail.
func wrapSQLiteError(err error) error {
	var se *sqlite.Error
	if errors.As(err, &se) && se.Code()&0xff == sqlitelib.SQLITE_CONSTRAINT {
		return fmt.Errorf("%w: constraint violated: %v", common.ErrDatabase, err)
	}
	return fmt.Errorf("%w: %v", common.ErrDatabase, err)
}

// sqliteUserRow is the raw stored representation before decoding.
type sqliteUserRow struct {
	id        string
	username  string
	email     string
	hash      string
	createdAt string
}

// toUser decodes the stored strings into the User entity. A malformed
// id or timestamp is reported as a data-integrity failure; it is never
// silently replaced with a synthetic value.
func (row *sqliteUserRow) toUser() (*User, error) {
	id, err := uuid.Parse(row.id)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed user id %q: %v", common.ErrDatabase, row.id, err)
	}

	createdAt, err := time.Parse(sqliteTimeFracLayout, row.createdAt)
	if err != nil {
		createdAt, err = time.Parse(sqliteTimeLayout, row.createdAt)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: malformed created_at %q for user %s", common.ErrDatabase, row.createdAt, id)
	}

	return &User{
		ID:           id,
		Username:     row.username,
		Email:        row.email,
		PasswordHash: row.hash,
		CreatedAt:    createdAt,
	}, nil
}

func (r *SQLiteRepository) Create(ctx context.Context, username, email, passwordHash string) error {
	query := `INSERT INTO users (id, username, email, password_hash) VALUES (?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query, uuid.New().String(), username, email, passwordHash)
	if err != nil {
		return wrapSQLiteError(err)
	}

	return nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	query := `SELECT id, username, email, password_hash, created_at FROM users WHERE id = ?`
	return scanSQLiteUser(r.db.QueryRowContext(ctx, query, id.String()))
}

func (r *SQLiteRepository) GetByUsername(ctx context.Context, username string) (*User, error) {
	query := `SELECT id, username, email, password_hash, created_at FROM users WHERE username = ?`
	return scanSQLiteUser(r.db.QueryRowContext(ctx, query, username))
}

func scanSQLiteUser(row *sql.Row) (*User, error) {
	raw := &sqliteUserRow{}
	err := row.Scan(&raw.id, &raw.username, &raw.email, &raw.hash, &raw.createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, wrapSQLiteError(err)
	}
	return raw.toUser()
}

func (r *SQLiteRepository) Update(ctx context.Context, id uuid.UUID, username, email string) error {
	query := `UPDATE users SET username = ?, email = ? WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query, username, email, id.String())
	if err != nil {
		return wrapSQLiteError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return wrapSQLiteError(err)
	}
	if n == 0 {
		return fmt.Errorf("%w: user %s", common.ErrNotFound, id)
	}

	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id.String())
	if err != nil {
		return false, wrapSQLiteError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, wrapSQLiteError(err)
	}

	return n > 0, nil
}

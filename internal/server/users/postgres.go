package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dpetrovs/userreg/internal/common"
	"github.com/dpetrovs/userreg/internal/dbx"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgresRepository stores users with native uuid and timestamp
// column types. Parameters are bound positionally.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// wrapPgError translates a driver error into the shared taxonomy. The
// raw diagnostic stays in the wrapped message for boundary logging.
func wrapPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return fmt.Errorf("%w: unique constraint %q violated", common.ErrDatabase, pgErr.ConstraintName)
	}
	return fmt.Errorf("%w: %v", common.ErrDatabase, err)
}

func (r *PostgresRepository) Create(ctx context.Context, username, email, passwordHash string) error {
	query := `INSERT INTO users (id, username, email, password_hash) VALUES ($1, $2, $3, $4)`

	_, err := r.db.ExecContext(ctx, query, uuid.New().String(), username, email, passwordHash)
	if err != nil {
		return wrapPgError(err)
	}

	return nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	query := `SELECT id, username, email, password_hash, created_at FROM users WHERE id = $1`
	return scanPgUser(r.db.QueryRowContext(ctx, query, id.String()))
}

func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*User, error) {
	query := `SELECT id, username, email, password_hash, created_at FROM users WHERE username = $1`
	return scanPgUser(r.db.QueryRowContext(ctx, query, username))
}

func scanPgUser(row *sql.Row) (*User, error) {
	user := &User{}
	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, wrapPgError(err)
	}
	return user, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id uuid.UUID, username, email string) error {
	query := `UPDATE users SET username = $1, email = $2 WHERE id = $3`

	res, err := r.db.ExecContext(ctx, query, username, email, id.String())
	if err != nil {
		return wrapPgError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return wrapPgError(err)
	}
	if n == 0 {
		return fmt.Errorf("%w: user %s", common.ErrNotFound, id)
	}

	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id.String())
	if err != nil {
		return false, wrapPgError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, wrapPgError(err)
	}

	return n > 0, nil
}

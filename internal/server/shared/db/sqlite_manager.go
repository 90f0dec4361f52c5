package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dpetrovs/userreg/internal/server/config"
	sqlitemigrations "github.com/dpetrovs/userreg/internal/server/migrations/sqlite"
	"github.com/dpetrovs/userreg/internal/server/users"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

type SQLiteRepositoryManager struct {
	db    *sql.DB
	users users.Repository
}

func (m *SQLiteRepositoryManager) Conn() *sql.DB {
	return m.db
}

func (m *SQLiteRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *SQLiteRepositoryManager) Close() error {
	return m.db.Close()
}

func (m *SQLiteRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(sqlitemigrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	return goose.UpContext(ctx, m.db, ".")
}

// NewSQLiteRepositoryManager opens (creating if needed) the SQLite
// database and brings the schema up to date. The DSN is a file path
// or ":memory:".
func NewSQLiteRepositoryManager(ctx context.Context, cfg *config.Config) (RepositoryManager, error) {
	db, err := sql.Open("sqlite", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	db.SetMaxOpenConns(cfg.MaxConnections)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db connect error: %w", err)
	}

	m := &SQLiteRepositoryManager{
		db:    db,
		users: users.NewSQLiteRepository(db),
	}

	if err := m.RunMigrations(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return m, nil
}

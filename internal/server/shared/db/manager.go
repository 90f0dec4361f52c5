// Package db owns the storage backend selection. Exactly one backend
// (PostgreSQL or SQLite) is opened per process, chosen once from
// configuration; everything downstream sees only the backend-agnostic
// RepositoryManager and users.Repository interfaces and never branches
// on backend type again.
package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dpetrovs/userreg/internal/server/config"
	"github.com/dpetrovs/userreg/internal/server/users"
)

// RepositoryManager holds the live connection pool and the
// repositories bound to it. The pool is safe for concurrent use; its
// size bound caps in-flight storage operations.
type RepositoryManager interface {
	RunMigrations(ctx context.Context) error
	Conn() *sql.DB
	Users() users.Repository
	Close() error
}

// NewRepositoryManager opens the backend named by cfg.DatabaseType,
// applies the pool bound, and runs migrations. The config is expected
// to be normalized (config.NormalizeBackend) before this call.
func NewRepositoryManager(ctx context.Context, cfg *config.Config) (RepositoryManager, error) {
	switch cfg.DatabaseType {
	case config.BackendPostgres:
		return NewPostgresRepositoryManager(ctx, cfg)
	case config.BackendSQLite:
		return NewSQLiteRepositoryManager(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown database type %q", cfg.DatabaseType)
	}
}

package db

import (
	"context"
	"fmt"
	"testing"

	"github.com/dpetrovs/userreg/internal/server/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sqliteConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		DatabaseType:   config.BackendSQLite,
		DatabaseDSN:    fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()),
		MaxConnections: 5,
	}
}

func TestNewRepositoryManager_SQLite(t *testing.T) {
	ctx := context.Background()

	m, err := NewRepositoryManager(ctx, sqliteConfig(t))
	require.NoError(t, err)
	defer m.Close()

	assert.IsType(t, &SQLiteRepositoryManager{}, m)
	assert.NotNil(t, m.Conn())
	assert.NotNil(t, m.Users())
}

func TestNewRepositoryManager_MigrationsCreateSchema(t *testing.T) {
	ctx := context.Background()

	m, err := NewRepositoryManager(ctx, sqliteConfig(t))
	require.NoError(t, err)
	defer m.Close()

	// migrations ran during construction; the users table exists
	err = m.Users().Create(ctx, "alice", "alice@example.com", "$argon2id$...")
	require.NoError(t, err)

	u, err := m.Users().GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", u.Email)
	assert.False(t, u.CreatedAt.IsZero())
}

func TestNewRepositoryManager_MigrationsIdempotent(t *testing.T) {
	ctx := context.Background()

	m, err := NewRepositoryManager(ctx, sqliteConfig(t))
	require.NoError(t, err)
	defer m.Close()

	require.NoError(t, m.RunMigrations(ctx))
	require.NoError(t, m.RunMigrations(ctx))
}

func TestNewRepositoryManager_UnknownBackend(t *testing.T) {
	cfg := &config.Config{DatabaseType: "oracle", DatabaseDSN: "x", MaxConnections: 1}

	m, err := NewRepositoryManager(context.Background(), cfg)
	require.Error(t, err)
	assert.Nil(t, m)
	assert.Contains(t, err.Error(), "unknown database type")
}

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	os.Args = append([]string{"server"}, args...)
	t.Cleanup(func() { os.Args = orig })
}

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, ":3001", cfg.EndpointAddr)
	assert.Equal(t, BackendSQLite, cfg.DatabaseType)
	assert.Equal(t, "userreg.db", cfg.DatabaseDSN)
	assert.Equal(t, 5, cfg.MaxConnections)
}

func TestLoadConfig_FlagsOverrideDefaults(t *testing.T) {
	resetArgs(t, "-a", ":9999", "-t", "postgres", "-d", "postgres://u:p@db/users", "-m", "10")

	cfg := LoadConfig()

	assert.Equal(t, ":9999", cfg.EndpointAddr)
	assert.Equal(t, BackendPostgres, cfg.DatabaseType)
	assert.Equal(t, "postgres://u:p@db/users", cfg.DatabaseDSN)
	assert.Equal(t, 10, cfg.MaxConnections)
}

func TestLoadConfig_EnvOverridesDefaults(t *testing.T) {
	resetArgs(t)
	t.Setenv("DATABASE_TYPE", "postgres")
	t.Setenv("DATABASE_URL", "postgres://env/db")
	t.Setenv("MAX_CONNECTIONS", "7")

	cfg := LoadConfig()

	assert.Equal(t, "postgres", cfg.DatabaseType)
	assert.Equal(t, "postgres://env/db", cfg.DatabaseDSN)
	assert.Equal(t, 7, cfg.MaxConnections)
}

func TestLoadConfig_FlagsBeatEnv(t *testing.T) {
	resetArgs(t, "-d", "flag.db")
	t.Setenv("DATABASE_URL", "env.db")

	cfg := LoadConfig()

	assert.Equal(t, "flag.db", cfg.DatabaseDSN)
}

func TestLoadConfig_JsonOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	payload, err := json.Marshal(JsonConfig{
		EndpointAddr: ":4000",
		DatabaseType: "postgres",
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, payload, 0o600))

	resetArgs(t, "-c", path)

	cfg := LoadConfig()

	assert.Equal(t, ":4000", cfg.EndpointAddr)
	assert.Equal(t, "postgres", cfg.DatabaseType)
	// fields absent from the file keep their defaults
	assert.Equal(t, "userreg.db", cfg.DatabaseDSN)
	assert.Equal(t, 5, cfg.MaxConnections)
}

func TestNormalizeBackend(t *testing.T) {
	tests := []struct {
		in    string
		want  string
		known bool
	}{
		{"postgres", BackendPostgres, true},
		{"POSTGRESQL", BackendPostgres, true},
		{"sqlite", BackendSQLite, true},
		{"SQLite", BackendSQLite, true},
		{"oracle", BackendSQLite, false},
		{"", BackendSQLite, false},
	}
	for _, tc := range tests {
		cfg := &Config{DatabaseType: tc.in}
		known := cfg.NormalizeBackend()
		assert.Equal(t, tc.want, cfg.DatabaseType, "in=%q", tc.in)
		assert.Equal(t, tc.known, known, "in=%q", tc.in)
	}
}

func TestLoadConfig_BadJsonPanics(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	resetArgs(t, "-c", path)

	assert.Panics(t, func() { LoadConfig() })
}

func TestLoadConfig_BadMaxConnectionsPanics(t *testing.T) {
	resetArgs(t)
	t.Setenv("MAX_CONNECTIONS", "many")

	assert.Panics(t, func() { LoadConfig() })
}

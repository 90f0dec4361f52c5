// Package config resolves the server configuration once at process
// start. Precedence, lowest to highest: built-in defaults, JSON file
// (-c/-config), environment variables, command-line flags. The core
// receives the resolved struct and performs no environment access.
package config

import "strings"

// Backend selector values for DatabaseType.
const (
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
)

// Config holds runtime settings for the registration server.
//
// Fields:
//   - EndpointAddr: bind address for the HTTP endpoint.
//   - DatabaseType: storage backend, "postgres" or "sqlite".
//   - DatabaseDSN: pgx DSN or SQLite file path / ":memory:".
//   - MaxConnections: connection-pool bound; this is the implicit
//     admission-control knob for concurrent registrations.
type Config struct {
	EndpointAddr   string
	DatabaseType   string
	DatabaseDSN    string
	MaxConnections int
}

// LoadDefaults populates Config with development defaults.
// NOTE: override these in any real deployment.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":3001"
	c.DatabaseType = BackendSQLite
	c.DatabaseDSN = "userreg.db"
	c.MaxConnections = 5
}

// NormalizeBackend canonicalizes DatabaseType in place ("postgresql"
// is accepted for "postgres"). It returns false when the value was
// unrecognized; the selector then falls back to SQLite and the caller
// should log a warning.
func (c *Config) NormalizeBackend() bool {
	switch strings.ToLower(c.DatabaseType) {
	case BackendPostgres, "postgresql":
		c.DatabaseType = BackendPostgres
		return true
	case BackendSQLite:
		c.DatabaseType = BackendSQLite
		return true
	default:
		c.DatabaseType = BackendSQLite
		return false
	}
}

// LoadConfig builds a Config by applying defaults, then overlaying an
// optional JSON file, environment variables, and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

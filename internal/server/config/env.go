package config

import (
	"os"
	"strconv"
)

// parseEnv overlays values from the environment. Variable names follow
// the deployment contract: ADDRESS, DATABASE_TYPE, DATABASE_URL,
// MAX_CONNECTIONS. Unset variables leave earlier layers untouched.
func parseEnv(config *Config) {
	if v, ok := os.LookupEnv("ADDRESS"); ok {
		config.EndpointAddr = v
	}
	if v, ok := os.LookupEnv("DATABASE_TYPE"); ok {
		config.DatabaseType = v
	}
	if v, ok := os.LookupEnv("DATABASE_URL"); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("MAX_CONNECTIONS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			panic("MAX_CONNECTIONS must be a number: " + v)
		}
		config.MaxConnections = n
	}
}

package config

import (
	"encoding/json"
	"os"

	"github.com/dpetrovs/userreg/internal/flagx"
)

// JsonConfig mirrors Config for JSON unmarshalling. Absent fields keep
// their zero value and do not override earlier layers.
type JsonConfig struct {
	EndpointAddr   string `json:"endpoint_addr"`
	DatabaseType   string `json:"database_type"`
	DatabaseDSN    string `json:"database_dsn"`
	MaxConnections int    `json:"max_connections"`
}

// parseJson overlays values from the JSON file named by -c/-config.
// No flag, no file loaded. An unreadable or invalid file panics:
// a present but broken config file is a deployment error.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddr != "" {
		config.EndpointAddr = c.EndpointAddr
	}
	if c.DatabaseType != "" {
		config.DatabaseType = c.DatabaseType
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.MaxConnections != 0 {
		config.MaxConnections = c.MaxConnections
	}
}

package config

import (
	"flag"
	"os"

	"github.com/dpetrovs/userreg/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   HTTP bind address (e.g., ":3001")
//	-t string   database backend: "postgres" or "sqlite"
//	-d string   database DSN
//	-m int      connection-pool size bound
//
// Args are first filtered to the flags handled here so the flag set
// does not collide with flags owned by other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-d", "-m"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseType, "t", config.DatabaseType, "database backend (postgres|sqlite)")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.IntVar(&config.MaxConnections, "m", config.MaxConnections, "max open database connections")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}

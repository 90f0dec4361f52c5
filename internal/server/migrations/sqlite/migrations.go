// Package sqlite embeds the goose migrations for the SQLite backend.
// SQLite has no native UUID or timestamp types; both are stored as TEXT.
package sqlite

import "embed"

//go:embed *.sql
var Migrations embed.FS

package migrations

import "embed"

// FS embeds the SQL migrations of every supported dialect. Each dialect lives
// in its own directory and is read by golang-migrate through the iofs driver.
//
//go:embed postgres/*.sql sqlite/*.sql
var FS embed.FS

// Dialect directories inside FS.
const (
	Postgres = "postgres"
	SQLite   = "sqlite"
)

const Version = 1

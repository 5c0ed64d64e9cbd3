// Package migrations embeds the SQL schema of mesa-judge. Files follow the
// golang-migrate naming scheme NNNNNN_name.{up,down}.sql.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

// Version is the schema version the service expects.
const Version uint = 1

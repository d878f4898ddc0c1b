// Package migrations holds the numbered schema changes for the kalk history
// database. Files are named NNN_name.up.sql and applied in order by
// sqlite.Store; the matching .down.sql files are kept for manual rollback.
package migrations

import "embed"

// FS holds the history schema migrations.
//
//go:embed *.sql
var FS embed.FS

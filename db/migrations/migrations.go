// Package migrations ships the creative-hub schema as embedded SQL so the
// binary can migrate a database without files on disk.
package migrations

import "embed"

// FS holds the numbered up/down pairs, e.g. 000001_creatives.up.sql.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version Migrate targets. Bump it together with
// every new migration pair; it must name the highest file in FS.
const Version uint = 1

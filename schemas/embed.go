// Package schemas ships the SQL migrations applied at startup.
package schemas

import "embed"

// Migrations holds the learning-item schema migration files.
//
//go:embed migrations/*.sql
var Migrations embed.FS

// Package migrations embeds the schema migration files applied by goose.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS

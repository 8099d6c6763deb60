// Package migrations embeds the backend schema applied by nutrioctl migrate.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS

// Package migrations embute os arquivos SQL de migração do schema,
// aplicados via goose na subida da aplicação.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS

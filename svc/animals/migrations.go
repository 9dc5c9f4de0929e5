package animals

import "embed"

// Migrations holds the goose SQL migrations for PostgresStore.
//
//go:embed migrations/*.sql
var Migrations embed.FS

// MigrationsDir is the directory inside Migrations that goose reads.
const MigrationsDir = "migrations"

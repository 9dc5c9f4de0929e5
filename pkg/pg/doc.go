// Package pg connects to PostgreSQL through a pgx/v5 pool and applies goose
// migrations from an fs.FS.
//
// Connect retries with a growing delay so the service survives a database
// that starts slower than it does. Migrate bridges the pool to database/sql
// for goose. Healthcheck produces a readiness probe for httpserver.
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, cfg, animals.Migrations, animals.MigrationsDir, log); err != nil {
//		return err
//	}
package pg

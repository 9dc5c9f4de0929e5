package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/petadopt/modules/shelter"
	"github.com/dmitrymomot/petadopt/pkg/config"
	"github.com/dmitrymomot/petadopt/pkg/httpserver"
	"github.com/dmitrymomot/petadopt/pkg/i18n"
	"github.com/dmitrymomot/petadopt/pkg/logger"
	"github.com/dmitrymomot/petadopt/pkg/pg"
	"github.com/dmitrymomot/petadopt/pkg/redis"
	"github.com/dmitrymomot/petadopt/pkg/requestid"
	"github.com/dmitrymomot/petadopt/svc/animals"
	"github.com/dmitrymomot/petadopt/svc/suggestions"
)

type appConfig struct {
	Env              string        `env:"APP_ENV" envDefault:"development"`
	Name             string        `env:"APP_NAME" envDefault:"petadopt"`
	LogLevel         string        `env:"LOG_LEVEL" envDefault:"info"`
	SeedDemoData     bool          `env:"SEED_DEMO_DATA" envDefault:"true"`
	CacheSize        int           `env:"CACHE_SIZE" envDefault:"256"`
	PageSize         int           `env:"PAGE_SIZE" envDefault:"12"`
	ReadinessTimeout time.Duration `env:"READINESS_TIMEOUT" envDefault:"2s"`
}

func main() {
	if err := run(context.Background()); err != nil {
		slog.Error("petadopt stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	appCfg, err := config.Load[appConfig]()
	if err != nil {
		return err
	}

	log := logger.New(
		logger.WithEnvironment(appCfg.Env, appCfg.Name),
		logger.WithLevelName(appCfg.LogLevel),
		logger.WithContextExtractors(requestid.LogExtractor()),
	)
	logger.SetAsDefault(log)

	pgCfg, err := config.Load[pg.Config]()
	if err != nil {
		return err
	}
	redisCfg, err := config.Load[redis.Config]()
	if err != nil {
		return err
	}
	suggestCfg, err := config.Load[suggestions.Config]()
	if err != nil {
		return err
	}
	serverCfg, err := config.Load[httpserver.Config]()
	if err != nil {
		return err
	}

	var (
		store  animals.Store
		checks []httpserver.Check
	)
	if pgCfg.Enabled() {
		pool, err := pg.Connect(ctx, pgCfg)
		if err != nil {
			return err
		}
		defer pool.Close()

		if err := pg.Migrate(ctx, pool, pgCfg, animals.Migrations, animals.MigrationsDir, log); err != nil {
			return err
		}
		store = animals.NewPostgresStore(pool)
		checks = append(checks, httpserver.Check{Name: "postgres", Fn: pg.Healthcheck(pool)})
	} else {
		log.InfoContext(ctx, "PG_CONN_URL not set, using in-memory store", logger.Component("main"))
		store = animals.NewMemoryStore()
	}

	if appCfg.SeedDemoData {
		n, err := animals.SeedIfEmpty(ctx, store, animals.SeedAnimals())
		if err != nil {
			return err
		}
		if n > 0 {
			log.InfoContext(ctx, "demo listings seeded", logger.Component("main"), logger.Count(n))
		}
	}

	var cache animals.Cache = animals.NewLRUCache(appCfg.CacheSize)
	if redisCfg.Enabled() {
		client, err := redis.Connect(ctx, redisCfg)
		if err != nil {
			return err
		}
		defer client.Close()

		cache = animals.NewRedisCache(client, redisCfg.CacheTTL, log)
		checks = append(checks, httpserver.Check{Name: "redis", Fn: redis.Healthcheck(client)})
	}

	svc := animals.NewService(
		animals.NewCachedStore(store, cache), nil,
		animals.WithPerPage(appCfg.PageSize),
		animals.WithLogger(log),
	)

	tr, err := shelter.NewTranslator()
	if err != nil {
		return err
	}
	module := shelter.New(svc, suggestions.NewClient(suggestCfg, log), tr, shelter.WithLogger(log))

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestid.Middleware)
	r.Get("/health/live", httpserver.LivenessHandler())
	r.Get("/health/ready", httpserver.ReadinessHandler(log, appCfg.ReadinessTimeout, checks...))
	r.With(i18n.Middleware(tr)).Mount("/", module.Handle())

	return httpserver.NewFromConfig(serverCfg, httpserver.WithLogger(log)).Run(ctx, r)
}

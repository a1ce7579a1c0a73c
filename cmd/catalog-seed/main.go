package main

import (
	"context"
	"flag"
	"log/slog"

	"lowkey/config"
	"lowkey/internal/domain/repository"
	"lowkey/internal/errors"
	logs "lowkey/internal/infra/log"
	"lowkey/internal/infra/persistence/postgres"
	"lowkey/internal/infra/seed"

	"go.uber.org/fx"
)

type seedFlags struct {
	url    string
	prefix string
}

type runParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Config  *config.Config
	Catalog repository.CatalogRepository
	Logger  *slog.Logger
	Flags   seedFlags
}

func main() {
	var flags seedFlags
	flag.StringVar(&flags.url, "url", "", "blob bucket URL holding seed objects (defaults to catalog.seedUrl)")
	flag.StringVar(&flags.prefix, "prefix", "", "key prefix to load (defaults to catalog.seedPrefix)")
	flag.Parse()

	fx.New(
		fx.NopLogger,
		fx.Supply(flags),
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
			postgres.NewCatalogRepository,
		),
		fx.Invoke(run),
	).Run()
}

// run loads the seed once the database is migrated, then stops the app.
func run(params runParams) {
	url := params.Flags.url
	if url == "" {
		url = params.Config.Catalog.SeedURL
	}
	prefix := params.Flags.prefix
	if prefix == "" {
		prefix = params.Config.Catalog.SeedPrefix
	}

	loader := seed.NewLoader(params.Catalog, params.Config.Catalog, params.Logger)

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if url == "" {
				return errors.New("seed url is required: pass -url or set catalog.seedUrl")
			}

			stats, err := loader.LoadURL(ctx, url, prefix)
			if err != nil {
				return errors.Wrap(err, "failed to seed catalog")
			}
			params.Logger.Info("Catalog seed finished",
				slog.String("url", url),
				slog.Int("offers", stats.Offers),
				slog.Int("rejected", stats.Rejected),
			)

			return params.Shutdown()
		},
	})
}

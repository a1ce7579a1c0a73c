package main

import (
	"context"
	"log/slog"
	"os"

	"lowkey/config"
	"lowkey/internal/delivery"
	"lowkey/internal/delivery/http"
	"lowkey/internal/delivery/http/middleware"
	"lowkey/internal/delivery/http/router/handler"
	"lowkey/internal/domain/repository"
	"lowkey/internal/errors"
	"lowkey/internal/infra/auth"
	"lowkey/internal/infra/clock"
	logs "lowkey/internal/infra/log"
	"lowkey/internal/infra/persistence/memory"
	"lowkey/internal/infra/persistence/postgres"
	"lowkey/internal/infra/pubsub"
	"lowkey/internal/infra/qrcode"
	"lowkey/internal/infra/seed"
	"lowkey/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

// catalogStores exposes the configured catalog under every interface the
// use cases consume.
type catalogStores struct {
	fx.Out

	Catalog   repository.CatalogRepository
	Reader    repository.CatalogReader
	Writer    repository.CatalogWriter
	TxManager repository.TransactionManager
}

type catalogParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			seedCatalog,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		clock.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newCatalog,
		),
	)
}

// newCatalog picks the catalog store named by catalog.driver.
func newCatalog(params catalogParams) (catalogStores, error) {
	switch params.Config.Catalog.Driver {
	case config.CatalogDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return catalogStores{}, err
		}
		catalog := postgres.NewCatalogRepository(db)

		return catalogStores{
			Catalog:   catalog,
			Reader:    catalog,
			Writer:    catalog,
			TxManager: postgres.NewTransactionManager(db),
		}, nil

	case config.CatalogDriverMemory:
		catalog, txManager := memory.NewRepository(memory.NewCatalog())

		return catalogStores{
			Catalog:   catalog,
			Reader:    catalog,
			Writer:    catalog,
			TxManager: txManager,
		}, nil
	}

	return catalogStores{}, errors.Errorf("unknown catalog driver %q", params.Config.Catalog.Driver)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			qrcode.NewQRCodeService,
			pubsub.NewEventPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewRanker,
			impl.NewDealService,
			impl.NewOfferService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewDealHandler,
			handler.NewOfferHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// seedCatalog loads catalog.seedUrl into the in-memory store before the
// servers start. A Postgres catalog is seeded with cmd/catalog-seed instead,
// so restarts never overwrite ratings or seller edits.
func seedCatalog(lc fx.Lifecycle, cfg *config.Config, writer repository.CatalogWriter, logger *slog.Logger) {
	if cfg.Catalog.SeedURL == "" {
		return
	}
	if cfg.Catalog.Driver != config.CatalogDriverMemory {
		logger.Info("Skipping startup seed for persistent catalog",
			slog.String("driver", cfg.Catalog.Driver),
		)

		return
	}

	loader := seed.NewLoader(writer, cfg.Catalog, logger)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if _, err := loader.LoadURL(ctx, cfg.Catalog.SeedURL, cfg.Catalog.SeedPrefix); err != nil {
				return errors.Wrap(err, "failed to seed catalog")
			}

			return nil
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}

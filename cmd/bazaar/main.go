package main

import (
	"context"
	"log/slog"
	"os"

	"bazaar/config"
	"bazaar/internal/delivery"
	"bazaar/internal/delivery/http"
	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/router/handler"
	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/errors"
	"bazaar/internal/infra/idgen"
	logs "bazaar/internal/infra/log"
	"bazaar/internal/infra/messaging"
	"bazaar/internal/infra/persistence"
	"bazaar/internal/infra/persistence/blobstore"
	"bazaar/internal/infra/persistence/sqlstore"
	"bazaar/internal/usecase"
	"bazaar/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	// Persister is listed so its restore hook runs before any delivery serves.
	Persister  *persistence.Persister
	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectPersistence(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

type storageParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type storageResult struct {
	fx.Out

	Repo      repository.StateRepository
	TxManager repository.TransactionManager
}

// newStorage opens the snapshot store selected by storage.driver.
func newStorage(params storageParams) (storageResult, error) {
	switch params.Config.Storage.Driver {
	case config.StorageDriverBlob:
		bucket, err := blobstore.New(blobstore.Params{Lifecycle: params.Lifecycle, Config: params.Config, Logger: params.Logger})
		if err != nil {
			return storageResult{}, err
		}
		repo := blobstore.NewStateRepository(bucket)

		return storageResult{Repo: repo, TxManager: blobstore.NewTransactionManager(repo)}, nil

	case config.StorageDriverSQLite, config.StorageDriverPostgres:
		db, err := sqlstore.New(sqlstore.Params{Lifecycle: params.Lifecycle, Config: params.Config, Logger: params.Logger})
		if err != nil {
			return storageResult{}, err
		}

		return storageResult{Repo: sqlstore.NewStateRepository(db), TxManager: sqlstore.NewTransactionManager(db)}, nil

	default:
		return storageResult{}, errors.Errorf("unknown storage driver %q", params.Config.Storage.Driver)
	}
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newStorage,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			idgen.NewULIDGenerator,
			fx.Annotate(
				idgen.NewOrderIDGenerator,
				fx.ResultTags(`name:"orderIDs"`),
			),
			messaging.NewNavigationBroadcaster,
			func(b *messaging.NavigationBroadcaster) service.Navigator { return b },
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewCartService,
			impl.NewProfileService,
			impl.NewOrderService,
			impl.NewStoreSettingsService,
			impl.NewNavigationService,
		),
	)
}

type bindingParams struct {
	fx.In

	Auth          usecase.AuthUsecase
	Cart          usecase.CartUsecase
	Profile       usecase.ProfileUsecase
	Orders        usecase.OrderUsecase
	StoreSettings usecase.StoreSettingsUsecase
}

// newBindings lists every container that is saved to local storage.
func newBindings(params bindingParams) []persistence.Binding {
	return []persistence.Binding{
		persistence.Bind[entity.AuthState](repository.AuthStorageKey, params.Auth),
		persistence.Bind[entity.CartState](repository.CartStorageKey, params.Cart),
		persistence.Bind[entity.UserState](repository.UserStorageKey, params.Profile),
		persistence.Bind[entity.OrderState](repository.OrderStorageKey, params.Orders),
		persistence.Bind[entity.StoreSettingsState](repository.StoreSettingsStorageKey, params.StoreSettings),
	}
}

func injectPersistence() fx.Option {
	return fx.Options(
		fx.Provide(
			newBindings,
			persistence.NewPersister,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewRoleMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewCartHandler,
			handler.NewProfileHandler,
			handler.NewOrderHandler,
			handler.NewStoreHandler,
			handler.NewNavigationHandler,
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

func startServer(ctx context.Context, params startServerParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			for _, delivery := range params.Deliveries {
				go func() {
					if err := delivery.Serve(ctx); err != nil {
						slog.Error("Failed to start server", slog.Any("error", err))
						os.Exit(1)
					}
				}()
			}

			return nil
		},
	})
}

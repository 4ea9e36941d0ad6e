package impl

import (
	"log/slog"

	"bazaar/internal/domain/entity"
	"bazaar/internal/usecase"
)

func cloneStoreSettings(s entity.StoreSettingsState) entity.StoreSettingsState { return s }

// storeSettingsService implements the StoreSettingsUsecase interface.
type storeSettingsService struct {
	*stateStore[entity.StoreSettingsState]

	logger *slog.Logger
}

// NewStoreSettingsService is the constructor for storeSettingsService.
// It starts with the built-in storefront until the owner saves their own.
func NewStoreSettingsService(logger *slog.Logger) usecase.StoreSettingsUsecase {
	initial := entity.StoreSettingsState{CurrentStore: entity.DefaultStore()}

	return &storeSettingsService{
		stateStore: newStateStore(initial, cloneStoreSettings),
		logger:     logger,
	}
}

func (srv *storeSettingsService) CurrentStore() entity.Store {
	return srv.Snapshot().CurrentStore
}

func (srv *storeSettingsService) SetCurrentStore(store entity.Store) entity.StoreSettingsState {
	srv.logger.Info("Updating store settings", "storeID", store.ID)

	return srv.update(func(s entity.StoreSettingsState) entity.StoreSettingsState { return s.SetCurrentStore(store) })
}

package usecase

import (
	"bazaar/internal/domain/entity"
)

// StoreSettingsUsecase is the store owner's storefront container.
type StoreSettingsUsecase interface {
	Container[entity.StoreSettingsState]

	CurrentStore() entity.Store
	SetCurrentStore(store entity.Store) entity.StoreSettingsState
}

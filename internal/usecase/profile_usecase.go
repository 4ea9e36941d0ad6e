package usecase

import (
	"bazaar/internal/domain/entity"
)

// --- Input DTOs ---

// SetProfileInput replaces the profile. A nil profile clears it.
type SetProfileInput struct {
	Profile *entity.Profile `json:"user"`
}

// RecentSearchInput records a search query.
type RecentSearchInput struct {
	Query string `json:"query" validate:"required"`
}

// ProfileUsecase is the user profile container.
type ProfileUsecase interface {
	Container[entity.UserState]

	SetProfile(profile *entity.Profile) entity.UserState
	AddAddress(input entity.AddressInput) (entity.UserState, entity.Address)
	UpdateAddress(address entity.Address) entity.UserState
	RemoveAddress(id string) entity.UserState
	SetDefaultAddress(id string) entity.UserState

	AddRecentSearch(query string) entity.UserState
	ClearRecentSearches() entity.UserState

	ToggleFavoriteProduct(productID string) entity.UserState
	IsFavorite(productID string) bool
	// Favorites lists favorited product ids in the order they were added.
	Favorites() []string
}

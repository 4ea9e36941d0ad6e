package impl

import (
	"log/slog"
	"slices"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"go.uber.org/fx"
)

// ProfileServiceParams defines the dependencies of the profile container.
type ProfileServiceParams struct {
	fx.In

	Config *config.Config
	IDs    service.IDGenerator
	Logger *slog.Logger
}

// profileService implements the ProfileUsecase interface.
type profileService struct {
	*stateStore[entity.UserState]

	ids         service.IDGenerator
	searchLimit int
	logger      *slog.Logger
}

// NewProfileService is the constructor for profileService. No profile is loaded initially.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		stateStore:  newStateStore(entity.UserState{}, entity.UserState.Clone),
		ids:         params.IDs,
		searchLimit: params.Config.Profile.RecentSearchLimit,
		logger:      params.Logger,
	}
}

func (srv *profileService) SetProfile(profile *entity.Profile) entity.UserState {
	if profile != nil {
		srv.logger.Info("Loading profile", "userID", profile.ID)
	} else {
		srv.logger.Info("Clearing profile")
	}

	return srv.update(func(s entity.UserState) entity.UserState { return s.SetUser(profile) })
}

// AddAddress stores input under a fresh id and returns the stored address.
// Without a profile nothing is stored and the returned address is zero.
func (srv *profileService) AddAddress(input entity.AddressInput) (entity.UserState, entity.Address) {
	id := srv.ids.NewID()
	srv.logger.Debug("Adding address", "addressID", id, "isDefault", input.IsDefault)

	next := srv.update(func(s entity.UserState) entity.UserState { return s.AddAddress(input, id) })
	address, _ := next.User.FindAddress(id)

	return next, address
}

func (srv *profileService) UpdateAddress(address entity.Address) entity.UserState {
	srv.logger.Debug("Updating address", "addressID", address.ID)

	return srv.update(func(s entity.UserState) entity.UserState { return s.UpdateAddress(address) })
}

func (srv *profileService) RemoveAddress(id string) entity.UserState {
	srv.logger.Debug("Removing address", "addressID", id)

	return srv.update(func(s entity.UserState) entity.UserState { return s.RemoveAddress(id) })
}

func (srv *profileService) SetDefaultAddress(id string) entity.UserState {
	srv.logger.Debug("Setting default address", "addressID", id)

	return srv.update(func(s entity.UserState) entity.UserState { return s.SetDefaultAddress(id) })
}

func (srv *profileService) AddRecentSearch(query string) entity.UserState {
	return srv.update(func(s entity.UserState) entity.UserState { return s.AddRecentSearch(query, srv.searchLimit) })
}

func (srv *profileService) ClearRecentSearches() entity.UserState {
	return srv.update(entity.UserState.ClearRecentSearches)
}

func (srv *profileService) ToggleFavoriteProduct(productID string) entity.UserState {
	srv.logger.Debug("Toggling favorite", "productID", productID)

	return srv.update(func(s entity.UserState) entity.UserState { return s.ToggleFavoriteProduct(productID) })
}

func (srv *profileService) IsFavorite(productID string) bool {
	return read(srv.stateStore, func(s entity.UserState) bool { return s.IsFavorite(productID) })
}

func (srv *profileService) Favorites() []string {
	return read(srv.stateStore, func(s entity.UserState) []string { return slices.Clone(s.FavoriteProducts) })
}

package impl

import (
	"context"
	"log/slog"
	"sync"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// NavigationServiceParams defines the dependencies of the navigation guard.
type NavigationServiceParams struct {
	fx.In

	Auth      usecase.AuthUsecase
	Navigator service.Navigator
	Logger    *slog.Logger
}

// navigationService implements the NavigationUsecase interface.
//
// The guard does nothing until the shell reports its first committed route;
// after that every session change re-checks the current route.
type navigationService struct {
	mu        sync.Mutex
	current   string
	mounted   bool
	auth      usecase.AuthUsecase
	navigator service.Navigator
	logger    *slog.Logger
}

// NewNavigationService is the constructor for navigationService.
func NewNavigationService(params NavigationServiceParams) usecase.NavigationUsecase {
	srv := &navigationService{
		auth:      params.Auth,
		navigator: params.Navigator,
		logger:    params.Logger,
	}
	params.Auth.Subscribe(srv.onSessionChanged)

	return srv
}

// RouteCommitted is called once the route tree for path has mounted.
func (srv *navigationService) RouteCommitted(ctx context.Context, path string) (*usecase.NavigationOutput, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.mounted = true
	srv.current = path

	redirect, err := srv.guard(ctx, srv.auth.Snapshot())
	if err != nil {
		return nil, err
	}

	return &usecase.NavigationOutput{Path: path, Redirect: redirect}, nil
}

func (srv *navigationService) CurrentRoute() string {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.current
}

func (srv *navigationService) onSessionChanged(auth entity.AuthState) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if !srv.mounted {
		return
	}

	if _, err := srv.guard(context.Background(), auth); err != nil {
		srv.logger.Warn("Redirect after session change failed", "route", srv.current, "error", err)
	}
}

// guard must be called with mu held.
func (srv *navigationService) guard(ctx context.Context, auth entity.AuthState) (string, error) {
	route := entity.ClassifyRoute(srv.current)
	target := entity.DecideRedirect(route, auth)
	if target == "" || target == srv.current {
		return "", nil
	}

	srv.logger.Info("Redirecting",
		"from", srv.current,
		"to", target,
		"routeKind", route.Kind.String(),
		"authenticated", auth.IsAuthenticated,
		"role", auth.Role(),
	)

	event := &service.NavigationEvent{
		Type: service.NavigationEventReplace,
		Path: target,
		From: srv.current,
	}
	if err := srv.navigator.Replace(ctx, event); err != nil {
		return "", errors.Wrapf(err, "replace navigation to %s", target)
	}
	srv.current = target

	return target, nil
}

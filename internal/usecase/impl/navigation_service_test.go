package impl

import (
	"context"
	"testing"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/service"
	mockService "bazaar/internal/mocks/service"
	"bazaar/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// navigationServiceFixtures holds all test dependencies for navigation guard tests.
type navigationServiceFixtures struct {
	service   usecase.NavigationUsecase
	auth      usecase.AuthUsecase
	navigator *mockService.MockNavigator
}

func createTestNavigationService(t *testing.T) navigationServiceFixtures {
	t.Helper()

	auth := NewAuthService(newTestLogger())
	navigator := mockService.NewMockNavigator(t)
	service := NewNavigationService(NavigationServiceParams{
		Auth:      auth,
		Navigator: navigator,
		Logger:    newTestLogger(),
	})

	return navigationServiceFixtures{service: service, auth: auth, navigator: navigator}
}

func replaceTo(path string) any {
	return mock.MatchedBy(func(e *service.NavigationEvent) bool {
		return e.Type == service.NavigationEventReplace && e.Path == path
	})
}

func TestNavigationService_RoleMismatchScenario(t *testing.T) {
	fx := createTestNavigationService(t)
	ctx := context.Background()
	fx.auth.Login(entity.User{ID: "u1", Role: entity.RoleCustomer})

	fx.navigator.EXPECT().Replace(ctx, replaceTo("/(customer)")).Return(nil).Once()

	out, err := fx.service.RouteCommitted(ctx, "/(store)")
	require.NoError(t, err)
	assert.Equal(t, "/(customer)", out.Redirect)
	assert.Equal(t, "/(customer)", fx.service.CurrentRoute())
}

func TestNavigationService_NoRedirectBeforeFirstCommit(t *testing.T) {
	fx := createTestNavigationService(t)

	// no Replace expected: the shell has not mounted a route yet
	fx.auth.Login(entity.User{ID: "u1", Role: entity.RoleStore})
	fx.auth.Logout()

	assert.Empty(t, fx.service.CurrentRoute())
}

func TestNavigationService_LogoutInsideRoleArea(t *testing.T) {
	fx := createTestNavigationService(t)
	ctx := context.Background()
	fx.auth.Login(entity.User{ID: "u1", Role: entity.RoleDelivery})

	out, err := fx.service.RouteCommitted(ctx, "/(delivery)/earnings")
	require.NoError(t, err)
	assert.Empty(t, out.Redirect)

	fx.navigator.EXPECT().Replace(mock.Anything, replaceTo(entity.RoleSelectionPath)).Return(nil).Once()
	fx.auth.Logout()

	assert.Equal(t, entity.RoleSelectionPath, fx.service.CurrentRoute())
}

func TestNavigationService_LoginFromAuthFlowStays(t *testing.T) {
	fx := createTestNavigationService(t)
	ctx := context.Background()

	_, err := fx.service.RouteCommitted(ctx, "/otp-verification")
	require.NoError(t, err)

	// the auth flow screens navigate on their own after sign-in
	fx.auth.Login(entity.User{ID: "u1", Role: entity.RoleCustomer})

	assert.Equal(t, "/otp-verification", fx.service.CurrentRoute())
}

func TestNavigationService_SignedInOutsideAreas(t *testing.T) {
	fx := createTestNavigationService(t)
	ctx := context.Background()
	fx.auth.Login(entity.User{ID: "u1", Role: entity.RoleStore})

	fx.navigator.EXPECT().Replace(ctx, replaceTo("/(store)")).Return(nil).Once()

	out, err := fx.service.RouteCommitted(ctx, "/product/7")
	require.NoError(t, err)
	assert.Equal(t, "/(store)", out.Redirect)
}

func TestNavigationService_ReplaceFailure(t *testing.T) {
	fx := createTestNavigationService(t)
	ctx := context.Background()

	fx.navigator.EXPECT().Replace(ctx, replaceTo(entity.RoleSelectionPath)).Return(errors.New("no shell connected")).Once()

	_, err := fx.service.RouteCommitted(ctx, "/(customer)/cart")
	require.Error(t, err)
	assert.Equal(t, "/(customer)/cart", fx.service.CurrentRoute())
}

package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bazaar/config"
	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/response"
	"bazaar/internal/delivery/http/router"
	"bazaar/internal/delivery/http/router/handler"
	"bazaar/internal/domain/entity"
	"bazaar/internal/infra/idgen"
	"bazaar/internal/infra/messaging"
	mockService "bazaar/internal/mocks/service"
	"bazaar/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

type envelope struct {
	Data  json.RawMessage     `json:"data"`
	Error *response.ErrorInfo `json:"error"`
	Meta  *response.MetaInfo  `json:"meta"`
}

func newTestBridge(t *testing.T) *echo.Echo {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.Checkout.DeliveryFee = 40
	cfg.Checkout.TaxRate = 0.05
	cfg.Profile.RecentSearchLimit = 10

	navigator := mockService.NewMockNavigator(t)
	navigator.EXPECT().Replace(mock.Anything, mock.Anything).Return(nil).Maybe()

	auth := impl.NewAuthService(logger)
	cart := impl.NewCartService(impl.CartServiceParams{Config: cfg, IDs: idgen.NewULIDGenerator(), Logger: logger})
	profile := impl.NewProfileService(impl.ProfileServiceParams{Config: cfg, IDs: idgen.NewULIDGenerator(), Logger: logger})
	orders := impl.NewOrderService(impl.OrderServiceParams{
		Config:   cfg,
		OrderIDs: idgen.NewOrderIDGenerator(),
		Cart:     cart,
		Profile:  profile,
		Logger:   logger,
	})
	store := impl.NewStoreSettingsService(logger)
	navigation := impl.NewNavigationService(impl.NavigationServiceParams{Auth: auth, Navigator: navigator, Logger: logger})

	lc := fxtest.NewLifecycle(t)
	broadcaster := messaging.NewNavigationBroadcaster(messaging.BroadcasterParams{Lifecycle: lc, Logger: logger})
	lc.RequireStart()
	t.Cleanup(lc.RequireStop)

	return newEcho(cfg, logger, router.RouterParams{
		AuthHandler:    handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: auth, Logger: logger}),
		CartHandler:    handler.NewCartHandler(handler.CartHandlerParams{CartUC: cart, Logger: logger}),
		ProfileHandler: handler.NewProfileHandler(handler.ProfileHandlerParams{ProfileUC: profile, Logger: logger}),
		OrderHandler:   handler.NewOrderHandler(handler.OrderHandlerParams{OrderUC: orders, Logger: logger}),
		StoreHandler:   handler.NewStoreHandler(handler.StoreHandlerParams{StoreSettingsUC: store, Logger: logger}),
		NavigationHandler: handler.NewNavigationHandler(handler.NavigationHandlerParams{
			NavigationUC: navigation,
			Broadcaster:  broadcaster,
			Logger:       logger,
		}),
		RoleMiddleware: middleware.NewRoleMiddleware(auth),
	})
}

func call(t *testing.T, e *echo.Echo, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.NewDecoder(bytes.NewReader(rec.Body.Bytes())).Decode(&env), rec.Body.String())

	return rec, env
}

func signInAs(t *testing.T, e *echo.Echo, role entity.Role) {
	t.Helper()

	rec, _ := call(t, e, http.MethodPut, "/auth/phone", `{"phoneNumber":"98765 43210"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	rec, _ = call(t, e, http.MethodPut, "/auth/role", `{"role":"`+role.String()+`"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	rec, _ = call(t, e, http.MethodPost, "/auth/otp/verify", `{"code":"1234"}`)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestBridge_Health(t *testing.T) {
	e := newTestBridge(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-Id", "req-42")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-42", rec.Header().Get("X-Request-Id"))
	assert.Contains(t, rec.Body.String(), `"request_id":"req-42"`)
}

func TestBridge_OTPSignIn(t *testing.T) {
	e := newTestBridge(t)

	rec, _ := call(t, e, http.MethodPut, "/auth/phone", `{"phoneNumber":"98765 43210"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	rec, _ = call(t, e, http.MethodPut, "/auth/role", `{"role":"store"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, env := call(t, e, http.MethodPost, "/auth/otp/verify", `{"code":"12a4"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_OTP", env.Error.Code)

	rec, env = call(t, e, http.MethodPost, "/auth/otp/verify", `{"code":"1234"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var user entity.User
	require.NoError(t, json.Unmarshal(env.Data, &user))
	assert.Equal(t, entity.RoleStore, user.Role)
	assert.Equal(t, "98765 43210", user.Phone)

	_, env = call(t, e, http.MethodGet, "/auth/state", "")
	var state entity.AuthState
	require.NoError(t, json.Unmarshal(env.Data, &state))
	assert.True(t, state.IsAuthenticated)
	assert.Equal(t, entity.RoleStore, state.Role())
}

func TestBridge_ValidationFailures(t *testing.T) {
	e := newTestBridge(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		code   string
	}{
		{"short phone", http.MethodPut, "/auth/phone", `{"phoneNumber":"12345"}`, "VALIDATION_FAILED"},
		{"unknown role", http.MethodPut, "/auth/role", `{"role":"admin"}`, "VALIDATION_FAILED"},
		{"login with bad role", http.MethodPost, "/auth/login", `{"user":{"id":"u1","role":"admin"}}`, "INVALID_ROLE"},
		{"malformed body", http.MethodPut, "/auth/phone", `{"phoneNumber":`, "INVALID_INPUT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := call(t, e, tt.method, tt.path, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.code, env.Error.Code)
		})
	}
}

func TestBridge_RoleScopedRoutes(t *testing.T) {
	e := newTestBridge(t)

	rec, env := call(t, e, http.MethodGet, "/orders", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "NOT_AUTHENTICATED", env.Error.Code)

	signInAs(t, e, entity.RoleStore)

	rec, env = call(t, e, http.MethodGet, "/orders", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "ROLE_FORBIDDEN", env.Error.Code)
	assert.Nil(t, env.Error.Details)

	rec, env = call(t, e, http.MethodGet, "/store/settings", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var store entity.Store
	require.NoError(t, json.Unmarshal(env.Data, &store))
	assert.Equal(t, "My Store", store.Name)
}

func TestBridge_CartAddDefaultsQuantity(t *testing.T) {
	e := newTestBridge(t)

	product := `{"id":"p1","name":"Hammer","price":"40","discountPrice":"35","storeId":"s1","storeName":"City Hardware"}`

	rec, env := call(t, e, http.MethodPost, "/cart/items", `{"product":`+product+`,"quantity":0}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var cart struct {
		Items      []entity.CartItem `json:"items"`
		TotalItems int               `json:"totalItems"`
		TotalPrice string            `json:"totalPrice"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &cart))
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.TotalItems)
	assert.Equal(t, "35.00", cart.TotalPrice)

	rec, env = call(t, e, http.MethodPatch, "/cart/items/"+cart.Items[0].ID, `{"quantity":2}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(env.Data, &cart))
	assert.Equal(t, "70.00", cart.TotalPrice)

	rec, env = call(t, e, http.MethodGet, "/cart/summary", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var summary entity.CheckoutSummary
	require.NoError(t, json.Unmarshal(env.Data, &summary))
	assert.Equal(t, "113.5", summary.Total.String())

	rec, env = call(t, e, http.MethodPatch, "/cart/items/"+cart.Items[0].ID, `{"quantity":0}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(env.Data, &cart))
	assert.Empty(t, cart.Items)
}

func TestBridge_Checkout(t *testing.T) {
	e := newTestBridge(t)
	signInAs(t, e, entity.RoleCustomer)

	rec, env := call(t, e, http.MethodPost, "/orders", `{"paymentMethod":"cod"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "CART_EMPTY", env.Error.Code)

	rec, _ = call(t, e, http.MethodPost, "/cart/items",
		`{"product":{"id":"p1","name":"Milk","price":"40","storeId":"s1","storeName":"Fresh Mart"},"quantity":2}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, env = call(t, e, http.MethodPost, "/orders", `{"paymentMethod":"cod"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "PROFILE_NOT_FOUND", env.Error.Code)

	rec, _ = call(t, e, http.MethodPut, "/profile", `{"user":{"id":"u1","name":"Asha","addresses":[]}}`)
	require.Equal(t, http.StatusOK, rec.Code)
	rec, _ = call(t, e, http.MethodPost, "/profile/addresses",
		`{"name":"Home","addressLine1":"1 Main St","city":"Pune","state":"MH","postalCode":"411001"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, env = call(t, e, http.MethodPost, "/orders", `{"paymentMethod":"cod"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var order entity.Order
	require.NoError(t, json.Unmarshal(env.Data, &order))
	assert.True(t, strings.HasPrefix(order.ID, "ORD"))
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, "Home", order.DeliveryAddress.Name)

	_, env = call(t, e, http.MethodGet, "/cart", "")
	assert.Contains(t, string(env.Data), `"totalItems":0`)

	_, env = call(t, e, http.MethodGet, "/orders?filter=active", "")
	var orders []entity.Order
	require.NoError(t, json.Unmarshal(env.Data, &orders))
	assert.Len(t, orders, 1)

	rec, env = call(t, e, http.MethodGet, "/orders?filter=bogus", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}

func TestBridge_ProfileAddressNotFound(t *testing.T) {
	e := newTestBridge(t)

	rec, env := call(t, e, http.MethodPost, "/profile/addresses/missing/default", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "PROFILE_NOT_FOUND", env.Error.Code)

	rec, _ = call(t, e, http.MethodPut, "/profile", `{"user":{"id":"u1","name":"Asha","addresses":[]}}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, env = call(t, e, http.MethodPost, "/profile/addresses/missing/default", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "ADDRESS_NOT_FOUND", env.Error.Code)
	assert.Equal(t, "missing", env.Error.Details)
}

func TestBridge_NavigationCommit(t *testing.T) {
	e := newTestBridge(t)
	signInAs(t, e, entity.RoleStore)

	rec, env := call(t, e, http.MethodPost, "/navigation/commit", `{"path":"/(customer)/cart"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var out struct {
		Path     string `json:"path"`
		Redirect string `json:"redirect"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &out))
	assert.Equal(t, "/(customer)/cart", out.Path)
	assert.Equal(t, "/(store)", out.Redirect)
}

package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bazaar/internal/delivery/http/validator"
	"bazaar/internal/domain/entity"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// staleCart answers mutations with the new state while Snapshot lags behind,
// as it would when another writer lands between the two calls.
type staleCart struct {
	usecase.CartUsecase

	next entity.CartState
}

func (c staleCart) AddItem(entity.Product, int) entity.CartState { return c.next }
func (c staleCart) UpdateQuantity(string, int) entity.CartState { return c.next }
func (c staleCart) RemoveItem(string) entity.CartState { return c.next }
func (c staleCart) Clear() entity.CartState { return entity.CartState{Items: []entity.CartItem{}} }
func (c staleCart) Snapshot() entity.CartState { return entity.CartState{Items: []entity.CartItem{{ID: "old"}}} }

type staleProfile struct {
	usecase.ProfileUsecase
}

func (staleProfile) ToggleFavoriteProduct(productID string) entity.UserState {
	return entity.UserState{FavoriteProducts: []string{productID}}
}

func (staleProfile) IsFavorite(string) bool { return false }

type staleOrders struct {
	usecase.OrderUsecase
}

func (staleOrders) UpdateStatus(id string, status entity.OrderStatus) (entity.OrderState, bool, error) {
	return entity.OrderState{Orders: []entity.Order{{ID: id, Status: status}}}, true, nil
}

func (staleOrders) Snapshot() entity.OrderState { return entity.OrderState{} }

func newTestContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()

	var env struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	require.NoError(t, json.Unmarshal(env.Data, out))
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCartHandler_RespondsWithMutationResult(t *testing.T) {
	next := entity.CartState{}.AddItem(entity.Product{ID: "p1", Price: decimal.NewFromInt(25)}, 2, "item-1")
	h := NewCartHandler(CartHandlerParams{CartUC: staleCart{next: next}, Logger: testLogger()})

	cases := []struct {
		name string
		run  func(echo.Context) error
		body string
	}{
		{name: "add", run: h.AddItem, body: `{"product":{"id":"p1","price":"25"},"quantity":2}`},
		{name: "update", run: h.UpdateItem, body: `{"quantity":2}`},
		{name: "remove", run: h.RemoveItem},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := newTestContext(http.MethodPost, "/cart/items", tc.body)
			c.SetParamNames("id")
			c.SetParamValues("item-1")

			require.NoError(t, tc.run(c))

			var view cartView
			decodeData(t, rec, &view)
			require.Len(t, view.Items, 1)
			assert.Equal(t, "item-1", view.Items[0].ID)
			assert.Equal(t, 2, view.TotalItems)
			assert.Equal(t, "50.00", view.TotalPrice)
		})
	}

	c, rec := newTestContext(http.MethodDelete, "/cart", "")
	require.NoError(t, h.ClearCart(c))
	var view cartView
	decodeData(t, rec, &view)
	assert.Empty(t, view.Items)
}

func TestProfileHandler_ToggleFavoriteUsesResultState(t *testing.T) {
	h := NewProfileHandler(ProfileHandlerParams{ProfileUC: staleProfile{}, Logger: testLogger()})
	c, rec := newTestContext(http.MethodPost, "/profile/favorites/p9/toggle", "")
	c.SetParamNames("productID")
	c.SetParamValues("p9")

	require.NoError(t, h.ToggleFavorite(c))

	var out favoriteResponse
	decodeData(t, rec, &out)
	assert.Equal(t, favoriteResponse{ProductID: "p9", Favorite: true}, out)
}

func TestOrderHandler_UpdateStatusUsesResultState(t *testing.T) {
	h := NewOrderHandler(OrderHandlerParams{OrderUC: staleOrders{}, Logger: testLogger()})
	c, rec := newTestContext(http.MethodPatch, "/orders/o1/status", `{"status":"delivered"}`)
	c.SetParamNames("id")
	c.SetParamValues("o1")

	require.NoError(t, h.UpdateStatus(c))

	var state entity.OrderState
	decodeData(t, rec, &state)
	require.Len(t, state.Orders, 1)
	assert.Equal(t, entity.OrderStatusDelivered, state.Orders[0].Status)
}

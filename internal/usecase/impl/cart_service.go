package impl

import (
	"log/slog"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// CartServiceParams defines the dependencies of the cart container.
type CartServiceParams struct {
	fx.In

	Config *config.Config
	IDs    service.IDGenerator
	Logger *slog.Logger
}

// cartService implements the CartUsecase interface.
type cartService struct {
	*stateStore[entity.CartState]

	ids         service.IDGenerator
	deliveryFee decimal.Decimal
	taxRate     decimal.Decimal
	logger      *slog.Logger
}

// NewCartService is the constructor for cartService. The cart starts empty.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		stateStore:  newStateStore(entity.CartState{}, entity.CartState.Clone),
		ids:         params.IDs,
		deliveryFee: decimal.NewFromFloat(params.Config.Checkout.DeliveryFee),
		taxRate:     decimal.NewFromFloat(params.Config.Checkout.TaxRate),
		logger:      params.Logger,
	}
}

// AddItem merges into the existing line for the product, if any.
func (srv *cartService) AddItem(product entity.Product, quantity int) entity.CartState {
	srv.logger.Debug("Adding to cart", "productID", product.ID, "quantity", quantity)

	// The id is only used when a new line is created.
	newID := srv.ids.NewID()

	return srv.update(func(s entity.CartState) entity.CartState { return s.AddItem(product, quantity, newID) })
}

func (srv *cartService) RemoveItem(itemID string) entity.CartState {
	srv.logger.Debug("Removing from cart", "itemID", itemID)

	return srv.update(func(s entity.CartState) entity.CartState { return s.RemoveItem(itemID) })
}

func (srv *cartService) UpdateQuantity(itemID string, quantity int) entity.CartState {
	srv.logger.Debug("Updating cart quantity", "itemID", itemID, "quantity", quantity)

	return srv.update(func(s entity.CartState) entity.CartState { return s.UpdateQuantity(itemID, quantity) })
}

func (srv *cartService) Clear() entity.CartState {
	srv.logger.Debug("Clearing cart")

	return srv.update(func(s entity.CartState) entity.CartState { return s.Clear() })
}

func (srv *cartService) Take() entity.CartState {
	var taken entity.CartState
	srv.update(func(s entity.CartState) entity.CartState {
		taken = s.Clone()
		return s.Clear()
	})

	srv.logger.Debug("Took cart for checkout", "lines", len(taken.Items))

	return taken
}

func (srv *cartService) TotalPrice() decimal.Decimal {
	return read(srv.stateStore, entity.CartState.TotalPrice)
}

func (srv *cartService) TotalItems() int {
	return read(srv.stateStore, entity.CartState.TotalItems)
}

func (srv *cartService) Summary() entity.CheckoutSummary {
	return read(srv.stateStore, func(s entity.CartState) entity.CheckoutSummary {
		return s.Summary(srv.deliveryFee, srv.taxRate)
	})
}

func (srv *cartService) ItemsByStore() []entity.StoreGroup {
	return read(srv.stateStore, entity.CartState.ItemsByStore)
}

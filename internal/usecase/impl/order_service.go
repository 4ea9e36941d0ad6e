package impl

import (
	"log/slog"
	"time"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// OrderServiceParams defines the dependencies of the order container.
type OrderServiceParams struct {
	fx.In

	Config   *config.Config
	OrderIDs service.IDGenerator `name:"orderIDs"`
	Cart     usecase.CartUsecase
	Profile  usecase.ProfileUsecase
	Logger   *slog.Logger
}

// orderService implements the OrderUsecase interface.
type orderService struct {
	*stateStore[entity.OrderState]

	ids         service.IDGenerator
	cart        usecase.CartUsecase
	profile     usecase.ProfileUsecase
	deliveryFee decimal.Decimal
	taxRate     decimal.Decimal
	now         func() time.Time
	logger      *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		stateStore:  newStateStore(entity.OrderState{}, entity.OrderState.Clone),
		ids:         params.OrderIDs,
		cart:        params.Cart,
		profile:     params.Profile,
		deliveryFee: decimal.NewFromFloat(params.Config.Checkout.DeliveryFee),
		taxRate:     decimal.NewFromFloat(params.Config.Checkout.TaxRate),
		now:         time.Now,
		logger:      params.Logger,
	}
}

// PlaceOrder records the cart as a pending order, then clears the cart.
func (srv *orderService) PlaceOrder(input usecase.PlaceOrderInput) (*entity.Order, error) {
	if srv.cart.Snapshot().IsEmpty() {
		return nil, errors.WithStack(domainerrors.ErrCartEmpty)
	}

	profile := srv.profile.Snapshot().User
	if profile == nil {
		return nil, errors.WithStack(domainerrors.ErrProfileNotFound)
	}

	var (
		address entity.Address
		found   bool
	)
	if input.AddressID == "" {
		address, found = profile.DefaultAddress()
	} else {
		address, found = profile.FindAddress(input.AddressID)
	}
	if !found {
		return nil, errors.Wrapf(domainerrors.ErrAddressNotFound, "address %q", input.AddressID)
	}

	// lines added after this point stay in the cart for the next order
	cart := srv.cart.Take()
	if cart.IsEmpty() {
		return nil, errors.WithStack(domainerrors.ErrCartEmpty)
	}

	summary := cart.Summary(srv.deliveryFee, srv.taxRate)
	order := entity.NewOrder(srv.ids.NewID(), cart, summary, address, input.PaymentMethod, srv.now())

	srv.update(func(s entity.OrderState) entity.OrderState { return s.Add(order) })

	srv.logger.Info("Order placed",
		"orderID", order.ID,
		"storeID", order.StoreID,
		"items", len(order.Items),
		"total", order.Total.String(),
	)

	return &order, nil
}

func (srv *orderService) ListOrders(filter entity.OrderFilter) []entity.Order {
	return read(srv.stateStore, func(s entity.OrderState) []entity.Order { return s.Filter(filter) })
}

func (srv *orderService) UpdateStatus(id string, status entity.OrderStatus) (entity.OrderState, bool, error) {
	if !status.IsValid() {
		return entity.OrderState{}, false, errors.WithStack(domainerrors.ErrInvalidOrderStatus.WithDetails(string(status)))
	}

	found := false
	state := srv.update(func(s entity.OrderState) entity.OrderState {
		_, found = s.Find(id)

		return s.UpdateStatus(id, status)
	})

	srv.logger.Info("Order status updated", "orderID", id, "status", status, "found", found)

	return state, found, nil
}

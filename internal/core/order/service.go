package order

import (
	"context"
	"log/slog"

	"github.com/yadawity/yadawity/internal/core/cart"
	"github.com/yadawity/yadawity/internal/platform/apperr"
	"github.com/yadawity/yadawity/internal/platform/validate"
	"github.com/yadawity/yadawity/pkg/slice"
)

// CartReader is the slice of the cart flow checkout needs.
type CartReader interface {
	GetCart(context context.Context, userID int64) (*cart.Cart, error)
	Clear(context context.Context, userID int64) error
}

type Service struct {
	repo   Repository
	carts  CartReader
	logger *slog.Logger
}

func NewService(repo Repository, carts CartReader, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		carts:  carts,
		logger: logger,
	}
}

/*
Checkout converts the buyer's cart into a persisted order.

The cart is read and hydrated first; prices are frozen into the order lines
at this instant. Stock verification and decrement happen inside the store's
transaction, so a race on the last unit fails the checkout instead of
overselling. The cart is cleared only after the transaction commits.
*/
func (service *Service) Checkout(context context.Context, buyerID int64) (*Order, error) {
	hydrated, err := service.carts.GetCart(context, buyerID)
	if err != nil {
		return nil, err
	}
	if len(hydrated.Items) == 0 {
		return nil, apperr.Unprocessable("Cart is empty")
	}

	order := &Order{
		BuyerID:    buyerID,
		TotalCents: hydrated.TotalCents,
		Status:     StatusPending,
		Items: slice.Map(hydrated.Items, func(line cart.Line) Item {
			return Item{
				ArtworkID:      line.Artwork.ID,
				Quantity:       line.Quantity,
				UnitPriceCents: line.Artwork.PriceCents,
			}
		}),
	}

	if err := service.repo.Checkout(context, order); err != nil {
		return nil, err
	}

	// Cart cleanup is best-effort; the Redis TTL is the backstop.
	if err := service.carts.Clear(context, buyerID); err != nil {
		service.logger.Warn("cart_clear_after_checkout_failed",
			slog.Int64("buyer_id", buyerID),
			slog.String("error", err.Error()),
		)
	}

	service.logger.Info("order_created",
		slog.Int64("order_id", order.ID),
		slog.Int64("buyer_id", buyerID),
		slog.Int64("total_cents", order.TotalCents),
	)
	return order, nil
}

// ListMine returns the buyer's own orders.
func (service *Service) ListMine(context context.Context, buyerID int64, limit, offset int) ([]*Order, int, error) {
	return service.repo.ListOrders(context, Filter{BuyerID: buyerID}, limit, offset)
}

// ListSales returns orders that include at least one of the artist's works,
// so artists can track what sold without seeing unrelated purchases.
func (service *Service) ListSales(context context.Context, artistID int64, limit, offset int) ([]*Order, int, error) {
	return service.repo.ListSales(context, artistID, limit, offset)
}

// ListAll is the admin view across every buyer.
func (service *Service) ListAll(context context.Context, filter Filter, limit, offset int) ([]*Order, int, error) {
	return service.repo.ListOrders(context, filter, limit, offset)
}

// GetOwn returns an order only to the buyer who placed it.
func (service *Service) GetOwn(context context.Context, buyerID, orderID int64) (*Order, error) {
	order, err := service.repo.GetOrder(context, orderID)
	if err != nil {
		return nil, err
	}
	if order.BuyerID != buyerID {
		// Hide other buyers' orders entirely.
		return nil, apperr.NotFound("Order not found")
	}
	return order, nil
}

// GetOrder is the unrestricted admin read.
func (service *Service) GetOrder(context context.Context, orderID int64) (*Order, error) {
	return service.repo.GetOrder(context, orderID)
}

// UpdateStatus applies an admin fulfillment transition. Repeating the current
// status is a no-op success; a disallowed jump is rejected.
func (service *Service) UpdateStatus(context context.Context, orderID int64, status Status) error {
	if !status.Valid() {
		return validate.RequiredError(FieldStatus, "is not a valid order status")
	}

	current, err := service.repo.GetOrder(context, orderID)
	if err != nil {
		return err
	}

	if current.Status == status {
		return nil
	}
	if !current.Status.CanTransition(status) {
		return apperr.Unprocessable("Order cannot move to this status")
	}

	if err := service.repo.UpdateStatus(context, orderID, status); err != nil {
		return err
	}

	service.logger.Info("order_status_updated",
		slog.Int64("order_id", orderID),
		slog.String("status", string(status)),
	)
	return nil
}

package order_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yadawity/yadawity/internal/core/artwork"
	"github.com/yadawity/yadawity/internal/core/cart"
	"github.com/yadawity/yadawity/internal/core/order"
	"github.com/yadawity/yadawity/internal/platform/apperr"
	"github.com/yadawity/yadawity/internal/platform/dberr"
)

type fakeCart struct {
	cart    *cart.Cart
	cleared bool
}

func (f *fakeCart) GetCart(_ context.Context, _ int64) (*cart.Cart, error) {
	return f.cart, nil
}

func (f *fakeCart) Clear(_ context.Context, _ int64) error {
	f.cleared = true
	return nil
}

type fakeOrderRepo struct {
	byID      map[int64]*order.Order
	statusSet map[int64]order.Status
	nextID    int64
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{byID: map[int64]*order.Order{}, statusSet: map[int64]order.Status{}, nextID: 1}
}

func (r *fakeOrderRepo) Checkout(_ context.Context, o *order.Order) error {
	o.ID = r.nextID
	r.nextID++
	r.byID[o.ID] = o
	return nil
}

func (r *fakeOrderRepo) ListOrders(_ context.Context, _ order.Filter, _, _ int) ([]*order.Order, int, error) {
	return nil, 0, nil
}

func (r *fakeOrderRepo) ListSales(_ context.Context, _ int64, _, _ int) ([]*order.Order, int, error) {
	return nil, 0, nil
}

func (r *fakeOrderRepo) GetOrder(_ context.Context, id int64) (*order.Order, error) {
	o, ok := r.byID[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return o, nil
}

func (r *fakeOrderRepo) UpdateStatus(_ context.Context, id int64, status order.Status) error {
	r.statusSet[id] = status
	r.byID[id].Status = status
	return nil
}

func newService(repo *fakeOrderRepo, carts *fakeCart) *order.Service {
	return order.NewService(repo, carts, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		from    order.Status
		to      order.Status
		allowed bool
	}{
		{order.StatusPending, order.StatusPaid, true},
		{order.StatusPending, order.StatusCancelled, true},
		{order.StatusPending, order.StatusShipped, false},
		{order.StatusPending, order.StatusDelivered, false},
		{order.StatusPaid, order.StatusShipped, true},
		{order.StatusPaid, order.StatusCancelled, true},
		{order.StatusPaid, order.StatusDelivered, false},
		{order.StatusShipped, order.StatusDelivered, true},
		{order.StatusShipped, order.StatusCancelled, false},
		{order.StatusDelivered, order.StatusCancelled, false},
		{order.StatusCancelled, order.StatusPaid, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransition(tt.to))
		})
	}
}

func TestCheckout(t *testing.T) {
	piece := &artwork.Artwork{ID: 5, PriceCents: 150_00, Quantity: 3, Status: artwork.StatusApproved}
	carts := &fakeCart{cart: &cart.Cart{
		Items:      []cart.Line{{Artwork: piece, Quantity: 2, SubtotalCents: 300_00}},
		TotalCents: 300_00,
	}}
	repo := newFakeOrderRepo()
	service := newService(repo, carts)

	placed, err := service.Checkout(context.Background(), 42)
	require.NoError(t, err)

	// 1. Prices are frozen into the order lines
	require.Len(t, placed.Items, 1)
	assert.Equal(t, int64(150_00), placed.Items[0].UnitPriceCents)
	assert.Equal(t, int64(300_00), placed.TotalCents)
	assert.Equal(t, order.StatusPending, placed.Status)

	// 2. The cart is cleared after the order persists
	assert.True(t, carts.cleared)
}

func TestCheckout_EmptyCart(t *testing.T) {
	carts := &fakeCart{cart: &cart.Cart{}}
	service := newService(newFakeOrderRepo(), carts)

	_, err := service.Checkout(context.Background(), 42)
	require.Error(t, err)
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.HTTPStatus)
	assert.False(t, carts.cleared)
}

func TestGetOwn_HidesForeignOrders(t *testing.T) {
	repo := newFakeOrderRepo()
	service := newService(repo, &fakeCart{cart: &cart.Cart{}})
	require.NoError(t, repo.Checkout(context.Background(), &order.Order{BuyerID: 42, Status: order.StatusPending}))

	// 1. The buyer sees their own order
	own, err := service.GetOwn(context.Background(), 42, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(42), own.BuyerID)

	// 2. Another buyer gets a 404, not a 403
	_, err = service.GetOwn(context.Background(), 7, 1)
	require.Error(t, err)
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPStatus)
}

func TestUpdateStatus(t *testing.T) {
	repo := newFakeOrderRepo()
	service := newService(repo, &fakeCart{cart: &cart.Cart{}})
	require.NoError(t, repo.Checkout(context.Background(), &order.Order{BuyerID: 42, Status: order.StatusPending}))

	// 1. Unknown status is a validation error
	err := service.UpdateStatus(context.Background(), 1, order.Status("Teleported"))
	require.Error(t, err)
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.HTTPStatus)

	// 2. Disallowed jump is rejected
	err = service.UpdateStatus(context.Background(), 1, order.StatusDelivered)
	require.Error(t, err)
	appErr = apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.HTTPStatus)

	// 3. Legal transition is applied
	require.NoError(t, service.UpdateStatus(context.Background(), 1, order.StatusPaid))
	assert.Equal(t, order.StatusPaid, repo.statusSet[1])

	// 4. Repeating the current status is a no-op success
	delete(repo.statusSet, 1)
	require.NoError(t, service.UpdateStatus(context.Background(), 1, order.StatusPaid))
	_, wrote := repo.statusSet[1]
	assert.False(t, wrote)
}

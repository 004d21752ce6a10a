package order

import "context"

type Repository interface {
	// Checkout atomically creates the order and its items, decrements stock
	// for every purchased artwork, and fails the whole batch if any piece
	// lacks availability.
	Checkout(context context.Context, order *Order) error

	ListOrders(context context.Context, f Filter, limit, offset int) ([]*Order, int, error)

	// ListSales returns orders containing at least one of the artist's works.
	ListSales(context context.Context, artistID int64, limit, offset int) ([]*Order, int, error)

	GetOrder(context context.Context, id int64) (*Order, error)
	UpdateStatus(context context.Context, id int64, status Status) error
}

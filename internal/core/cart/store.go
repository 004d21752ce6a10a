package cart

import "context"

// Repository abstracts the volatile cart storage. Contents are a map of
// artwork ID to quantity; hydration happens in the service.
type Repository interface {
	SetItem(context context.Context, userID, artworkID int64, quantity int) error
	RemoveItem(context context.Context, userID, artworkID int64) error
	Items(context context.Context, userID int64) (map[int64]int, error)
	Clear(context context.Context, userID int64) error
}

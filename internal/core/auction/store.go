package auction

import "context"

type Repository interface {
	ListAuctions(context context.Context, f Filter, limit, offset int) ([]*Auction, int, error)
	GetAuction(context context.Context, id int64) (*Auction, error)
	CreateAuction(context context.Context, a *Auction) error

	// PlaceBid atomically records a bid and raises the auction's current
	// price. It must reject any amount that does not strictly exceed the
	// current bid, even under concurrent bidders.
	PlaceBid(context context.Context, bid *Bid) error

	ListBids(context context.Context, auctionID int64, limit, offset int) ([]*Bid, int, error)
	CloseExpired(context context.Context) (int64, error)
}

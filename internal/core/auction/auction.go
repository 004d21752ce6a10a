package auction

import "time"

// Status is the lifecycle state of an auction.
type Status string

const (
	StatusScheduled Status = "Scheduled"
	StatusLive      Status = "Live"
	StatusEnded     Status = "Ended"
	StatusCancelled Status = "Cancelled"
)

// Auction represents a timed sale attached to a single artwork.
//
// CurrentBidCents starts equal to StartingPriceCents and only ever moves up;
// the store enforces monotonicity at the SQL level.
type Auction struct {
	ID                 int64     `json:"id"`
	ArtworkID          int64     `json:"artwork_id"`
	StartingPriceCents int64     `json:"starting_price_cents"`
	CurrentBidCents    int64     `json:"current_bid_cents"`
	BidCount           int       `json:"bid_count"`
	StartsAt           time.Time `json:"starts_at"`
	EndsAt             time.Time `json:"ends_at"`
	Status             Status    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// Bid is a single accepted offer on a live auction.
type Bid struct {
	ID          int64     `json:"id"`
	AuctionID   int64     `json:"auction_id"`
	BidderID    int64     `json:"bidder_id"`
	AmountCents int64     `json:"amount_cents"`
	CreatedAt   time.Time `json:"created_at"`
}

// Filter holds the parameters for a paginated auction search.
type Filter struct {
	Status    Status
	ArtworkID int64
}

const (
	FieldStartingPriceCents = "starting_price_cents"
	FieldAmountCents        = "amount_cents"
	FieldStartsAt           = "starts_at"
	FieldEndsAt             = "ends_at"
)

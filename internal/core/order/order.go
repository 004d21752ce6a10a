package order

import "time"

// Status is the fulfillment state of an order.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusPaid      Status = "Paid"
	StatusShipped   Status = "Shipped"
	StatusDelivered Status = "Delivered"
	StatusCancelled Status = "Cancelled"
)

// Valid reports whether s is a known fulfillment state.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// transitions maps each state to the states an admin may move it to.
var transitions = map[Status][]Status{
	StatusPending:   {StatusPaid, StatusCancelled},
	StatusPaid:      {StatusShipped, StatusCancelled},
	StatusShipped:   {StatusDelivered},
	StatusDelivered: {},
	StatusCancelled: {},
}

// CanTransition reports whether moving from s to next is allowed.
func (s Status) CanTransition(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Order is a completed checkout with its purchased lines.
type Order struct {
	ID         int64     `json:"id"`
	BuyerID    int64     `json:"buyer_id"`
	TotalCents int64     `json:"total_cents"`
	Status     Status    `json:"status"`
	Items      []Item    `json:"items,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Item is one purchased artwork line. UnitPriceCents is frozen at checkout
// time so later price edits never rewrite order history.
type Item struct {
	ID             int64 `json:"id"`
	OrderID        int64 `json:"-"`
	ArtworkID      int64 `json:"artwork_id"`
	Quantity       int   `json:"quantity"`
	UnitPriceCents int64 `json:"unit_price_cents"`
}

// Filter holds the parameters for a paginated order search.
type Filter struct {
	BuyerID int64
	Status  Status
}

const (
	FieldStatus = "status"
)

package cart

import (
	"time"

	"github.com/yadawity/yadawity/internal/core/artwork"
)

// CartTTL is how long an untouched cart survives in Redis. Every write
// refreshes the clock.
const CartTTL = 30 * 24 * time.Hour

// Line is one artwork in a cart, hydrated with its current listing so the
// client always sees live price and availability.
type Line struct {
	Artwork       *artwork.Artwork `json:"artwork"`
	Quantity      int              `json:"quantity"`
	SubtotalCents int64            `json:"subtotal_cents"`
}

// Cart is the hydrated view of a user's cart.
type Cart struct {
	Items      []Line `json:"items"`
	TotalCents int64  `json:"total_cents"`
}

const (
	FieldArtworkID = "artwork_id"
	FieldQuantity  = "quantity"
)

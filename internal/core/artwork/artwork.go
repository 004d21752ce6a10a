package artwork

import "time"

// Status is the moderation state of a listed artwork. Every new piece starts
// Pending and becomes visible in the public gallery only once Approved.
type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// Valid reports whether s is a known moderation state.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Artwork represents a single listed piece in the gallery.
//
// PriceCents keeps money integral; the presentation layer owns formatting.
type Artwork struct {
	ID          int64      `json:"id"`
	ArtistID    int64      `json:"artist_id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Description *string    `json:"description"`
	Category    string     `json:"category"`
	PriceCents  int64      `json:"price_cents"`
	Quantity    int        `json:"quantity"`
	Status      Status     `json:"status"`
	IsAuction   bool       `json:"is_auction"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"-"` // soft-delete tracker
}

// Filter holds the parameters for a paginated gallery search.
type Filter struct {
	Query         string // ILIKE search against title and description
	Category      string
	Status        Status // empty means "any" (admin/owner views only)
	ArtistID      int64  // 0 means "any artist"
	IsAuction     *bool
	MinPriceCents int64 // 0 means "no floor"
	MaxPriceCents int64 // 0 means "no ceiling"
}

const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldCategory    = "category"
	FieldPriceCents  = "price_cents"
	FieldQuantity    = "quantity"
	FieldStatus      = "status"
)

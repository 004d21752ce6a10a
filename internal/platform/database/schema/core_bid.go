package schema

// BidTable represents the 'core.bid' table
type BidTable struct {
	Table       string
	ID          string
	AuctionID   string
	BidderID    string
	AmountCents string
	CreatedAt   string
}

// Bid is the schema definition for core.bid
var Bid = BidTable{
	Table:       "core.bid",
	ID:          "id",
	AuctionID:   "auctionid",
	BidderID:    "bidderid",
	AmountCents: "amountcents",
	CreatedAt:   "createdat",
}

// Columns returns all standard column names
func (t BidTable) Columns() []string {
	return []string{t.ID, t.AuctionID, t.BidderID, t.AmountCents, t.CreatedAt}
}

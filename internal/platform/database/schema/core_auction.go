package schema

// AuctionTable represents the 'core.auction' table
type AuctionTable struct {
	Table              string
	ID                 string
	ArtworkID          string
	StartingPriceCents string
	CurrentBidCents    string
	BidCount           string
	StartsAt           string
	EndsAt             string
	Status             string
	CreatedAt          string
	UpdatedAt          string
}

// Auction is the schema definition for core.auction
var Auction = AuctionTable{
	Table:              "core.auction",
	ID:                 "id",
	ArtworkID:          "artworkid",
	StartingPriceCents: "startingpricecents",
	CurrentBidCents:    "currentbidcents",
	BidCount:           "bidcount",
	StartsAt:           "startsat",
	EndsAt:             "endsat",
	Status:             "status",
	CreatedAt:          "createdat",
	UpdatedAt:          "updatedat",
}

// Columns returns all standard column names
func (t AuctionTable) Columns() []string {
	return []string{
		t.ID, t.ArtworkID, t.StartingPriceCents, t.CurrentBidCents, t.BidCount,
		t.StartsAt, t.EndsAt, t.Status, t.CreatedAt, t.UpdatedAt,
	}
}

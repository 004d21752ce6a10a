package schema

// ArtworkTable represents the 'core.artwork' table
type ArtworkTable struct {
	Table       string
	ID          string
	ArtistID    string
	Title       string
	Slug        string
	Description string
	Category    string
	PriceCents  string
	Quantity    string
	Status      string
	IsAuction   string
	CreatedAt   string
	UpdatedAt   string
	DeletedAt   string
}

// Artwork is the schema definition for core.artwork
var Artwork = ArtworkTable{
	Table:       "core.artwork",
	ID:          "id",
	ArtistID:    "artistid",
	Title:       "title",
	Slug:        "slug",
	Description: "description",
	Category:    "category",
	PriceCents:  "pricecents",
	Quantity:    "quantity",
	Status:      "status",
	IsAuction:   "isauction",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
	DeletedAt:   "deletedat",
}

// Columns returns all standard column names
func (t ArtworkTable) Columns() []string {
	return []string{
		t.ID, t.ArtistID, t.Title, t.Slug, t.Description, t.Category, t.PriceCents,
		t.Quantity, t.Status, t.IsAuction, t.CreatedAt, t.UpdatedAt, t.DeletedAt,
	}
}

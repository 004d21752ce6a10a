package schema

// OrderTable represents the 'core.orders' table
//
// The table is named 'orders' (plural) because ORDER is a reserved word in SQL.
type OrderTable struct {
	Table      string
	ID         string
	BuyerID    string
	TotalCents string
	Status     string
	CreatedAt  string
	UpdatedAt  string
}

// Order is the schema definition for core.orders
var Order = OrderTable{
	Table:      "core.orders",
	ID:         "id",
	BuyerID:    "buyerid",
	TotalCents: "totalcents",
	Status:     "status",
	CreatedAt:  "createdat",
	UpdatedAt:  "updatedat",
}

// Columns returns all standard column names
func (t OrderTable) Columns() []string {
	return []string{t.ID, t.BuyerID, t.TotalCents, t.Status, t.CreatedAt, t.UpdatedAt}
}

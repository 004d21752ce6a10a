package schema

// OrderItemTable represents the 'core.order_item' table
type OrderItemTable struct {
	Table          string
	ID             string
	OrderID        string
	ArtworkID      string
	Quantity       string
	UnitPriceCents string
}

// OrderItem is the schema definition for core.order_item
var OrderItem = OrderItemTable{
	Table:          "core.order_item",
	ID:             "id",
	OrderID:        "orderid",
	ArtworkID:      "artworkid",
	Quantity:       "quantity",
	UnitPriceCents: "unitpricecents",
}

// Columns returns all standard column names
func (t OrderItemTable) Columns() []string {
	return []string{t.ID, t.OrderID, t.ArtworkID, t.Quantity, t.UnitPriceCents}
}

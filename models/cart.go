package models

// SelectedModifier is one confirmed customization on a cart line:
// group identity, item identity and the quantity chosen.
type SelectedModifier struct {
	GroupID    uint   `json:"group_id"`
	GroupName  string `json:"group_name"`
	ItemID     uint   `json:"item_id"`
	ItemName   string `json:"item_name"`
	PriceDelta int64  `json:"price_delta_amount"`
	Quantity   int    `json:"quantity"`
}

// CartItem is one line of the cart. UnitPrice is fixed at add time
// (base price + modifier deltas); later catalog changes do not touch it.
type CartItem struct {
	LineID    string             `json:"line_id"`
	ProductID uint               `json:"product_id"`
	Vendor    uint               `json:"vendor"`
	Title     string             `json:"title"`
	UnitPrice int64              `json:"unit_price"`
	Quantity  int                `json:"quantity"`
	Modifiers []SelectedModifier `json:"modifiers,omitempty"`
}

// LineTotal is the price of the line: unit price times quantity.
func (i CartItem) LineTotal() int64 {
	return i.UnitPrice * int64(i.Quantity)
}

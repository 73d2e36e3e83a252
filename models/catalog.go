package models

type Category struct {
	ID          uint   `json:"id"`
	Vendor      uint   `json:"vendor"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	SortOrder   int    `json:"sort_order,omitempty"`
}

type Product struct {
	ID               uint          `json:"id"`
	Vendor           uint          `json:"vendor"`
	Category         *uint         `json:"category"`
	Name             string        `json:"name_fa"`
	NameEN           string        `json:"name_en,omitempty"`
	ShortDescription string        `json:"short_description,omitempty"`
	Description      string        `json:"description,omitempty"`
	BasePrice        int64         `json:"base_price"`
	SortOrder        int           `json:"sort_order,omitempty"`
	IsActive         bool          `json:"is_active,omitempty"`
	IsAvailable      bool          `json:"is_available,omitempty"`
	IsAvailableToday bool          `json:"is_available_today,omitempty"`
	OptionGroups     []OptionGroup `json:"option_groups,omitempty"`
}

// OptionItem is one selectable customization inside a group. PriceDelta is
// added to the product base price per selected unit.
type OptionItem struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	PriceDelta  int64  `json:"price_delta_amount"`
	SortOrder   int    `json:"sort_order,omitempty"`
}

// OptionGroup is a named set of related customization choices with
// min/max selection constraints (e.g. sauces, drinks, extras).
type OptionGroup struct {
	ID          uint         `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	IsRequired  bool         `json:"is_required,omitempty"`
	MinSelect   int          `json:"min_select,omitempty"`
	MaxSelect   int          `json:"max_select,omitempty"`
	SortOrder   int          `json:"sort_order,omitempty"`
	Items       []OptionItem `json:"items"`
}

// EffectiveMinSelect resolves the minimum selection count for the group:
// the explicit min_select, else 1 when the group is required, else 0.
func (g OptionGroup) EffectiveMinSelect() int {
	if g.MinSelect > 0 {
		return g.MinSelect
	}
	if g.IsRequired {
		return 1
	}
	return 0
}

package models

type Vendor struct {
	ID                     uint    `json:"id"`
	Name                   string  `json:"name"`
	Slug                   string  `json:"slug"`
	City                   string  `json:"city,omitempty"`
	Area                   string  `json:"area,omitempty"`
	Lat                    float64 `json:"lat,omitempty"`
	Lng                    float64 `json:"lng,omitempty"`
	IsActive               bool    `json:"is_active,omitempty"`
	IsAcceptingOrders      bool    `json:"is_accepting_orders,omitempty"`
	SupportsInZoneDelivery bool    `json:"supports_in_zone_delivery,omitempty"`
	SupportsOutOfZoneSnapp bool    `json:"supports_out_of_zone_snapp_cod,omitempty"`
	MaxActiveOrders        int     `json:"max_active_orders,omitempty"`
	LogoURL                string  `json:"logo_url,omitempty"`
	Description            string  `json:"description,omitempty"`
}

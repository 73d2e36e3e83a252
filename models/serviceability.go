package models

// NearestLocation describes the kitchen location matched during a
// serviceability evaluation.
type NearestLocation struct {
	Title         string  `json:"title,omitempty"`
	Lat           float64 `json:"lat"`
	Lng           float64 `json:"lng"`
	ServiceRadius *int64  `json:"service_radius_m,omitempty"`
}

// ServiceabilityResult is the server-computed snapshot describing whether
// the current location/address can be served and under what delivery terms.
// It is replaced wholesale on each evaluation, never merged.
type ServiceabilityResult struct {
	IsServiceable     bool                `json:"is_serviceable"`
	DeliveryType      DeliveryType        `json:"delivery_type"`
	DeliveryFeeAmount int64               `json:"delivery_fee_amount"`
	DeliveryLabel     string              `json:"delivery_label,omitempty"`
	DeliveryPostpaid  bool                `json:"delivery_is_postpaid,omitempty"`
	Vendor            *Vendor             `json:"vendor"`
	MenuProducts      []Product           `json:"menu_products"`
	DistanceMeters    *float64            `json:"distance_meters,omitempty"`
	Reason            string              `json:"reason,omitempty"`
	SuggestedProducts []uint              `json:"suggested_product_ids,omitempty"`
	ActiveOrder       *ActiveOrderSummary `json:"active_order,omitempty"`
	NearestLocation   *NearestLocation    `json:"nearest_location,omitempty"`
}

package models

import "time"

// OrderStatus represents all possible states of a storefront order
type OrderStatus string

const (
	StatusPendingPayment OrderStatus = "PENDING_PAYMENT"
	StatusPlaced         OrderStatus = "PLACED"
	StatusConfirmed      OrderStatus = "CONFIRMED"
	StatusPreparing      OrderStatus = "PREPARING"
	StatusReady          OrderStatus = "READY"
	StatusOutForDelivery OrderStatus = "OUT_FOR_DELIVERY"
	StatusDelivered      OrderStatus = "DELIVERED"
	StatusCancelled      OrderStatus = "CANCELLED"
	StatusFailed         OrderStatus = "FAILED"
)

// PaymentStatus tracks the payment side of an order independently of delivery
type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "UNPAID"
	PaymentPaid     PaymentStatus = "PAID"
	PaymentRefunded PaymentStatus = "REFUNDED"
	PaymentFailed   PaymentStatus = "FAILED"
)

// DeliveryType distinguishes the two fee policies: in-zone flat fee collected
// upfront vs. out-of-zone third-party courier paid on delivery.
type DeliveryType string

const (
	DeliveryInZone    DeliveryType = "IN_ZONE"
	DeliveryOutOfZone DeliveryType = "OUT_OF_ZONE_SNAPP"
)

type Order struct {
	ID                string         `json:"id"`
	ShortCode         string         `json:"short_code"`
	Status            OrderStatus    `json:"status"`
	PaymentStatus     PaymentStatus  `json:"payment_status,omitempty"`
	PlacedAt          time.Time      `json:"placed_at"`
	SubtotalAmount    int64          `json:"subtotal_amount,omitempty"`
	DeliveryFeeAmount int64          `json:"delivery_fee_amount,omitempty"`
	TotalAmount       int64          `json:"total_amount,omitempty"`
	Currency          string         `json:"currency,omitempty"`
	DeliveryType      DeliveryType   `json:"delivery_type,omitempty"`
	CashOnDelivery    bool           `json:"delivery_is_cash_on_delivery,omitempty"`
	PaymentURL        string         `json:"payment_url,omitempty"`
	Items             []OrderItem    `json:"items,omitempty"`
	Delivery          *OrderDelivery `json:"delivery,omitempty"`
}

// OrderItem is an immutable snapshot of a product at order time; later
// catalog changes never affect it.
type OrderItem struct {
	ID            string `json:"id"`
	Product       uint   `json:"product"`
	TitleSnapshot string `json:"product_title_snapshot"`
	UnitPrice     int64  `json:"unit_price_snapshot"`
	Quantity      int    `json:"quantity"`
	Modifiers     any    `json:"modifiers,omitempty"`
	LineSubtotal  int64  `json:"line_subtotal,omitempty"`
}

type OrderDelivery struct {
	ID             string       `json:"id"`
	DeliveryType   DeliveryType `json:"delivery_type,omitempty"`
	CashOnDelivery bool         `json:"is_cash_on_delivery,omitempty"`
	CourierName    string       `json:"courier_name,omitempty"`
	CourierPhone   string       `json:"courier_phone,omitempty"`
	TrackingCode   string       `json:"tracking_code,omitempty"`
	TrackingURL    string       `json:"tracking_url,omitempty"`
	QuoteAmount    int64        `json:"external_delivery_quote_amount,omitempty"`
	FinalAmount    int64        `json:"external_delivery_final_amount,omitempty"`
	Provider       string       `json:"external_provider,omitempty"`
}

// VendorOrder is the dashboard view of an order, enriched with the
// customer contact and drop-off details a kitchen needs.
type VendorOrder struct {
	Order
	CustomerName        string   `json:"customer_name,omitempty"`
	CustomerPhone       string   `json:"customer_phone,omitempty"`
	DeliveryAddressText string   `json:"delivery_address_text,omitempty"`
	DeliveryLat         *float64 `json:"delivery_lat,omitempty"`
	DeliveryLng         *float64 `json:"delivery_lng,omitempty"`
	DeliveryNotes       string   `json:"delivery_notes,omitempty"`
}

// ActiveOrderSummary is the lightweight record of the session's single
// in-flight order; it gates address mutation until the order resolves.
type ActiveOrderSummary struct {
	ID        string      `json:"id"`
	ShortCode string      `json:"short_code"`
	Status    OrderStatus `json:"status"`
}

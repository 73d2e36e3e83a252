package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"storefront-gateway/models"
)

// AddressInput is the create/update body for the address book.
type AddressInput struct {
	Title     string   `json:"title,omitempty"`
	FullText  string   `json:"full_text,omitempty"`
	City      string   `json:"city,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	IsDefault bool     `json:"is_default,omitempty"`
}

// ModifierItemEntry mirrors the backend's normalized modifier item shape.
type ModifierItemEntry struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	PriceDelta int64  `json:"price_delta_amount"`
	Quantity   int    `json:"quantity"`
}

// ModifierGroupEntry groups the selected items of one option group.
type ModifierGroupEntry struct {
	GroupID   uint                `json:"group_id"`
	GroupName string              `json:"group_name"`
	Items     []ModifierItemEntry `json:"items"`
}

type OrderItemInput struct {
	Product   uint                 `json:"product"`
	Quantity  int                  `json:"quantity"`
	Modifiers []ModifierGroupEntry `json:"modifiers,omitempty"`
}

// AddressDraft is an inline delivery address supplied at checkout when no
// saved address is selected.
type AddressDraft struct {
	Title     string   `json:"title"`
	FullText  string   `json:"full_text"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// OrderPayload is the full order submission body.
type OrderPayload struct {
	Vendor              uint                `json:"vendor,omitempty"`
	DeliveryAddress     *uint               `json:"delivery_address,omitempty"`
	DeliveryAddressData *AddressDraft       `json:"delivery_address_data,omitempty"`
	CustomerPhone       string              `json:"customer_phone,omitempty"`
	AcceptTerms         bool                `json:"accept_terms"`
	Items               []OrderItemInput    `json:"items"`
	CustomerLocation    *models.Coordinates `json:"customer_location,omitempty"`
	SubtotalAmount      int64               `json:"subtotal_amount,omitempty"`
	DeliveryFeeAmount   int64               `json:"delivery_fee_amount,omitempty"`
	TotalAmount         int64               `json:"total_amount,omitempty"`
	PaymentMethod       string              `json:"payment_method,omitempty"`
}

// OrderConfirmation is the discriminated result of a submission: a plain
// confirmation, or a confirmation plus freshly issued credentials when a
// guest order created an account on the fly.
type OrderConfirmation struct {
	Order      models.Order
	PaymentURL string
	Auth       *models.AuthPayload
}

// ServiceabilityRequest asks the backend whether a location/address is
// deliverable and by which vendor.
type ServiceabilityRequest struct {
	Location  *models.Coordinates `json:"location,omitempty"`
	AddressID *uint               `json:"address_id,omitempty"`
	Vendor    *uint               `json:"vendor,omitempty"`
	Items     []VendorHint        `json:"items,omitempty"`
}

// VendorHint carries the vendor of an already-carted item so the backend
// can reject a vendor mismatch early.
type VendorHint struct {
	Vendor uint `json:"vendor"`
}

type VerifyOTPInput struct {
	Phone       string `json:"phone"`
	Code        string `json:"code"`
	DeviceID    string `json:"device_id,omitempty"`
	DeviceTitle string `json:"device_title,omitempty"`
}

// Vendors lists the active vendors.
func (c *Client) Vendors(ctx context.Context) ([]models.Vendor, error) {
	var out []models.Vendor
	err := c.do(ctx, http.MethodGet, "/vendors/vendors/", nil, nil, &out)
	return out, err
}

// ProductsByVendor lists a vendor's catalog including option groups.
func (c *Client) ProductsByVendor(ctx context.Context, vendorID uint) ([]models.Product, error) {
	q := url.Values{"vendor": {strconv.FormatUint(uint64(vendorID), 10)}}
	var out []models.Product
	err := c.do(ctx, http.MethodGet, "/catalog/products/", q, nil, &out)
	return out, err
}

func (c *Client) Addresses(ctx context.Context) ([]models.Address, error) {
	var out []models.Address
	err := c.do(ctx, http.MethodGet, "/addresses/addresses/", nil, nil, &out)
	return out, err
}

func (c *Client) CreateAddress(ctx context.Context, in AddressInput) (*models.Address, error) {
	var out models.Address
	if err := c.do(ctx, http.MethodPost, "/addresses/addresses/", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateAddress(ctx context.Context, id uint, in AddressInput) (*models.Address, error) {
	var out models.Address
	path := fmt.Sprintf("/addresses/addresses/%d/", id)
	if err := c.do(ctx, http.MethodPatch, path, nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteAddress(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/addresses/addresses/%d/", id), nil, nil, nil)
}

// Orders lists the caller's orders, newest first.
func (c *Client) Orders(ctx context.Context) ([]models.Order, error) {
	var out []models.Order
	err := c.do(ctx, http.MethodGet, "/orders/orders/", nil, nil, &out)
	return out, err
}

// CreateOrder submits the composed order.
func (c *Client) CreateOrder(ctx context.Context, payload OrderPayload) (*OrderConfirmation, error) {
	var resp struct {
		models.Order
		Auth *models.AuthPayload `json:"auth,omitempty"`
	}
	if err := c.do(ctx, http.MethodPost, "/orders/orders/", nil, payload, &resp); err != nil {
		return nil, err
	}
	return &OrderConfirmation{
		Order:      resp.Order,
		PaymentURL: resp.Order.PaymentURL,
		Auth:       resp.Auth,
	}, nil
}

// RequestPaymentLink asks for a payment redirect URL for an existing order
// that is still payable (pending payment or failed).
func (c *Client) RequestPaymentLink(ctx context.Context, orderID string) (string, error) {
	var resp struct {
		PaymentURL string `json:"payment_url"`
		Detail     string `json:"detail,omitempty"`
	}
	path := fmt.Sprintf("/orders/orders/%s/pay/", orderID)
	if err := c.do(ctx, http.MethodPost, path, nil, map[string]any{}, &resp); err != nil {
		return "", err
	}
	if resp.PaymentURL == "" {
		return "", &APIError{StatusCode: http.StatusOK, Detail: resp.Detail}
	}
	return resp.PaymentURL, nil
}

// Serviceability evaluates the given location/address against the vendor
// network. The result replaces any previous snapshot wholesale.
func (c *Client) Serviceability(ctx context.Context, req ServiceabilityRequest) (*models.ServiceabilityResult, error) {
	var out models.ServiceabilityResult
	if err := c.do(ctx, http.MethodPost, "/orders/serviceability/", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Session bootstraps the cached credentials against the backend.
func (c *Client) Session(ctx context.Context) (*models.SessionInfo, error) {
	var out models.SessionInfo
	if err := c.do(ctx, http.MethodGet, "/accounts/session/", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RequestOTP asks the backend to send a login code to the phone.
func (c *Client) RequestOTP(ctx context.Context, phone string) error {
	body := map[string]string{"phone": phone, "purpose": "LOGIN"}
	return c.do(ctx, http.MethodPost, "/accounts/login-otps/", nil, body, nil)
}

// VerifyOTP exchanges a phone + code for tokens and the user profile.
func (c *Client) VerifyOTP(ctx context.Context, in VerifyOTPInput) (*models.AuthPayload, error) {
	var resp struct {
		OK      bool               `json:"ok"`
		Access  string             `json:"access"`
		Refresh string             `json:"refresh"`
		User    models.UserProfile `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/accounts/verify-login/", nil, in, &resp); err != nil {
		return nil, err
	}
	return &models.AuthPayload{Access: resp.Access, Refresh: resp.Refresh, User: resp.User}, nil
}

// VendorOrders lists the dashboard orders for the caller's vendor. An empty
// status keeps the backend default (active plus recently finished).
func (c *Client) VendorOrders(ctx context.Context, status string) ([]models.VendorOrder, error) {
	var q url.Values
	if status != "" {
		q = url.Values{"status": {status}}
	}
	var out []models.VendorOrder
	err := c.do(ctx, http.MethodGet, "/orders/vendor-orders/", q, nil, &out)
	return out, err
}

// VendorOrder fetches one dashboard order.
func (c *Client) VendorOrder(ctx context.Context, orderID string) (*models.VendorOrder, error) {
	var out models.VendorOrder
	path := fmt.Sprintf("/orders/vendor-orders/%s/", orderID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetVendorOrderStatus moves a vendor order to the target status.
func (c *Client) SetVendorOrderStatus(ctx context.Context, orderID string, status models.OrderStatus) (*models.VendorOrder, error) {
	var out models.VendorOrder
	path := fmt.Sprintf("/orders/vendor-orders/%s/status/", orderID)
	if err := c.do(ctx, http.MethodPost, path, nil, map[string]string{"status": string(status)}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

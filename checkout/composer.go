// Package checkout gathers everything an order submission needs — cart,
// address, phone, terms, location and the serviceability snapshot — submits
// it upstream and reconciles the result.
package checkout

import (
	"context"
	"errors"
	"sync/atomic"

	"go.uber.org/zap"

	"storefront-gateway/models"
	"storefront-gateway/store"
	"storefront-gateway/upstream"
)

var (
	ErrCartEmpty        = errors.New("checkout: cart is empty")
	ErrAddressRequired  = errors.New("checkout: select an address or provide a complete new one")
	ErrPhoneRequired    = errors.New("checkout: contact phone is required")
	ErrTermsNotAccepted = errors.New("checkout: terms must be accepted")
	ErrNotServiceable   = errors.New("checkout: current location is not serviceable")
	// ErrSubmitInFlight guards against duplicate orders from rapid
	// repeated submissions.
	ErrSubmitInFlight = errors.New("checkout: a submission is already in progress")
)

// orderAPI is the slice of the upstream client the composer needs.
type orderAPI interface {
	CreateOrder(ctx context.Context, payload upstream.OrderPayload) (*upstream.OrderConfirmation, error)
	RequestPaymentLink(ctx context.Context, orderID string) (string, error)
}

// AddressDraft is a new address typed inline at checkout.
type AddressDraft struct {
	Title    string
	FullText string
}

// Complete reports whether the draft can serve as a delivery address.
func (d AddressDraft) Complete() bool {
	return d.Title != "" && d.FullText != ""
}

// Input is everything the user supplies on the checkout form. Exactly one
// of AddressID / NewAddress must resolve.
type Input struct {
	AddressID   uint
	NewAddress  *AddressDraft
	Phone       string
	AcceptTerms bool
}

// Quote is the computed money breakdown shown before submission. The
// out-of-zone courier fee is collected on delivery and excluded from the
// payable total.
type Quote struct {
	Subtotal       int64               `json:"subtotal"`
	DeliveryType   models.DeliveryType `json:"delivery_type,omitempty"`
	DeliveryFee    int64               `json:"delivery_fee"`
	CashOnDelivery bool                `json:"cash_on_delivery"`
	PayableTotal   int64               `json:"payable_total"`
}

// Confirmation is the reconciled submission result. IssuedAuth is non-nil
// only when a guest order created an account on the fly.
type Confirmation struct {
	Order      models.Order        `json:"order"`
	PaymentURL string              `json:"payment_url,omitempty"`
	IssuedAuth *models.AuthPayload `json:"-"`
}

// Composer reads the injected state containers and drives one submission at
// a time.
type Composer struct {
	api      orderAPI
	cart     *store.Cart
	session  *store.Session
	location *store.Location
	service  *store.Serviceability
	log      *zap.Logger

	inFlight atomic.Bool
}

func NewComposer(api orderAPI, cart *store.Cart, session *store.Session, location *store.Location, service *store.Serviceability, log *zap.Logger) *Composer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Composer{
		api:      api,
		cart:     cart,
		session:  session,
		location: location,
		service:  service,
		log:      log,
	}
}

// CurrentQuote computes the money breakdown from the cart and the latest
// serviceability snapshot.
func (c *Composer) CurrentQuote() Quote {
	q := Quote{Subtotal: c.cart.Subtotal()}
	snapshot := c.service.Current()
	if snapshot == nil || !snapshot.IsServiceable {
		q.PayableTotal = q.Subtotal
		return q
	}
	q.DeliveryType = snapshot.DeliveryType
	switch snapshot.DeliveryType {
	case models.DeliveryInZone:
		q.DeliveryFee = snapshot.DeliveryFeeAmount
		q.PayableTotal = q.Subtotal + q.DeliveryFee
	default:
		// out-of-zone courier: fee collected on delivery
		q.CashOnDelivery = true
		q.PayableTotal = q.Subtotal
	}
	return q
}

// validate enforces every submission precondition before any network call.
func (c *Composer) validate(in Input) error {
	if c.cart.Len() == 0 {
		return ErrCartEmpty
	}
	if in.AddressID == 0 && (in.NewAddress == nil || !in.NewAddress.Complete()) {
		return ErrAddressRequired
	}
	if in.Phone == "" {
		return ErrPhoneRequired
	}
	if !in.AcceptTerms {
		return ErrTermsNotAccepted
	}
	snapshot := c.service.Current()
	if snapshot == nil || !snapshot.IsServiceable || snapshot.Vendor == nil {
		return ErrNotServiceable
	}
	return nil
}

// Submit places the order. On success the cart is cleared, the active order
// recorded and any freshly issued credentials applied; on failure every
// store keeps its pre-attempt state.
func (c *Composer) Submit(ctx context.Context, in Input) (*Confirmation, error) {
	if !c.inFlight.CompareAndSwap(false, true) {
		return nil, ErrSubmitInFlight
	}
	defer c.inFlight.Store(false)

	if err := c.validate(in); err != nil {
		return nil, err
	}

	snapshot := c.service.Current()
	quote := c.CurrentQuote()
	payload := upstream.OrderPayload{
		Vendor:            snapshot.Vendor.ID,
		CustomerPhone:     in.Phone,
		AcceptTerms:       in.AcceptTerms,
		Items:             buildItems(c.cart.Items()),
		SubtotalAmount:    quote.Subtotal,
		DeliveryFeeAmount: snapshot.DeliveryFeeAmount,
		TotalAmount:       quote.PayableTotal,
		PaymentMethod:     "ONLINE",
	}
	if in.AddressID != 0 {
		id := in.AddressID
		payload.DeliveryAddress = &id
	} else {
		draft := &upstream.AddressDraft{Title: in.NewAddress.Title, FullText: in.NewAddress.FullText}
		if coords := c.location.Coords(); coords != nil {
			draft.Latitude = &coords.Latitude
			draft.Longitude = &coords.Longitude
		}
		payload.DeliveryAddressData = draft
	}
	if coords := c.location.Coords(); coords != nil {
		payload.CustomerLocation = coords
	}

	confirmation, err := c.api.CreateOrder(ctx, payload)
	if err != nil {
		return nil, err
	}

	// only now is it safe to mutate local state
	c.cart.Clear()
	c.session.SetActiveOrder(&models.ActiveOrderSummary{
		ID:        confirmation.Order.ID,
		ShortCode: confirmation.Order.ShortCode,
		Status:    confirmation.Order.Status,
	})
	if confirmation.Auth != nil {
		c.session.ApplyAuth(*confirmation.Auth)
	}

	result := &Confirmation{
		Order:      confirmation.Order,
		PaymentURL: confirmation.PaymentURL,
		IssuedAuth: confirmation.Auth,
	}

	// no redirect URL in the confirmation: ask for a payment link as a
	// best-effort follow-up
	if result.PaymentURL == "" && result.Order.ID != "" {
		url, err := c.api.RequestPaymentLink(ctx, result.Order.ID)
		if err != nil {
			c.log.Warn("payment link request failed",
				zap.String("order_id", result.Order.ID), zap.Error(err))
		} else {
			result.PaymentURL = url
		}
	}

	return result, nil
}

// buildItems regroups each line's flattened modifiers into the backend's
// group-entry wire shape.
func buildItems(items []models.CartItem) []upstream.OrderItemInput {
	out := make([]upstream.OrderItemInput, 0, len(items))
	for _, item := range items {
		input := upstream.OrderItemInput{
			Product:  item.ProductID,
			Quantity: item.Quantity,
		}
		var current *upstream.ModifierGroupEntry
		for _, mod := range item.Modifiers {
			if current == nil || current.GroupID != mod.GroupID {
				input.Modifiers = append(input.Modifiers, upstream.ModifierGroupEntry{
					GroupID:   mod.GroupID,
					GroupName: mod.GroupName,
				})
				current = &input.Modifiers[len(input.Modifiers)-1]
			}
			current.Items = append(current.Items, upstream.ModifierItemEntry{
				ID:         mod.ItemID,
				Name:       mod.ItemName,
				PriceDelta: mod.PriceDelta,
				Quantity:   mod.Quantity,
			})
		}
		out = append(out, input)
	}
	return out
}

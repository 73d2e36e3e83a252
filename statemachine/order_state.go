package statemachine

import (
	"errors"

	"storefront-gateway/models"
)

// Actors that can drive an order through its lifecycle
const (
	ActorVendor   = "vendor"
	ActorCustomer = "customer"
	ActorSystem   = "system"
)

// Transition defines a valid state change and who can perform it
type Transition struct {
	From  models.OrderStatus
	To    models.OrderStatus
	Actor string
}

// validTransitions is the authoritative state machine definition
var validTransitions = []Transition{
	// Payment gateway outcome moves the order out of the pre-state
	{From: models.StatusPendingPayment, To: models.StatusPlaced, Actor: ActorSystem},
	{From: models.StatusPendingPayment, To: models.StatusFailed, Actor: ActorSystem},
	{From: models.StatusPendingPayment, To: models.StatusCancelled, Actor: ActorSystem},
	{From: models.StatusPendingPayment, To: models.StatusCancelled, Actor: ActorCustomer},
	// Vendor confirms and prepares the order
	{From: models.StatusPlaced, To: models.StatusConfirmed, Actor: ActorVendor},
	{From: models.StatusPlaced, To: models.StatusPreparing, Actor: ActorVendor},
	{From: models.StatusConfirmed, To: models.StatusPreparing, Actor: ActorVendor},
	{From: models.StatusPreparing, To: models.StatusReady, Actor: ActorVendor},
	// Handing over to the courier; a vendor may skip READY
	{From: models.StatusConfirmed, To: models.StatusOutForDelivery, Actor: ActorVendor},
	{From: models.StatusPreparing, To: models.StatusOutForDelivery, Actor: ActorVendor},
	{From: models.StatusReady, To: models.StatusOutForDelivery, Actor: ActorVendor},
	{From: models.StatusOutForDelivery, To: models.StatusDelivered, Actor: ActorVendor},
	// Cancellations before preparation starts
	{From: models.StatusPlaced, To: models.StatusCancelled, Actor: ActorVendor},
	{From: models.StatusPlaced, To: models.StatusCancelled, Actor: ActorCustomer},
	{From: models.StatusConfirmed, To: models.StatusCancelled, Actor: ActorVendor},
	{From: models.StatusConfirmed, To: models.StatusCancelled, Actor: ActorCustomer},
}

// activeStatuses are the states during which an order still gates the
// session (address mutation disabled, one order at a time).
var activeStatuses = map[models.OrderStatus]bool{
	models.StatusPendingPayment: true,
	models.StatusPlaced:         true,
	models.StatusConfirmed:      true,
	models.StatusPreparing:      true,
	models.StatusReady:          true,
	models.StatusOutForDelivery: true,
}

// IsActive reports whether an order in the given status is still in flight.
func IsActive(status models.OrderStatus) bool {
	return activeStatuses[status]
}

// transitionKey is used to look up valid transitions quickly
type transitionKey struct {
	From  models.OrderStatus
	To    models.OrderStatus
	Actor string
}

// Build a lookup map for O(1) validation
var transitionMap = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool)
	for _, t := range validTransitions {
		m[transitionKey{t.From, t.To, t.Actor}] = true
	}
	return m
}()

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(status models.OrderStatus) []models.OrderStatus {
	var nexts []models.OrderStatus
	seen := map[models.OrderStatus]bool{}
	for _, t := range validTransitions {
		if t.From == status && !seen[t.To] {
			nexts = append(nexts, t.To)
			seen[t.To] = true
		}
	}
	return nexts
}

// CanTransition checks if a given actor can move from one state to another
func CanTransition(from, to models.OrderStatus, actor string) error {
	key := transitionKey{From: from, To: to, Actor: actor}
	if transitionMap[key] {
		return nil
	}
	return errors.New(
		"invalid transition: " + string(from) + " → " + string(to) +
			" is not allowed for actor '" + actor + "'. " +
			"Valid transitions from " + string(from) + " are: " + describeValidFrom(from),
	)
}

func describeValidFrom(status models.OrderStatus) string {
	nexts := ValidTransitionsFrom(status)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	result := ""
	for i, s := range nexts {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}

// GetAllTransitions returns the full state machine for documentation
func GetAllTransitions() []Transition {
	return validTransitions
}

package statemachine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"storefront-gateway/models"
)

func TestVendorHappyPath(t *testing.T) {
	steps := []struct {
		from models.OrderStatus
		to   models.OrderStatus
	}{
		{models.StatusPlaced, models.StatusConfirmed},
		{models.StatusConfirmed, models.StatusPreparing},
		{models.StatusPreparing, models.StatusReady},
		{models.StatusReady, models.StatusOutForDelivery},
		{models.StatusOutForDelivery, models.StatusDelivered},
	}
	for _, step := range steps {
		assert.NoError(t, CanTransition(step.from, step.to, ActorVendor),
			"vendor should move %s -> %s", step.from, step.to)
	}
}

func TestVendorMaySkipReady(t *testing.T) {
	assert.NoError(t, CanTransition(models.StatusPreparing, models.StatusOutForDelivery, ActorVendor))
	assert.NoError(t, CanTransition(models.StatusConfirmed, models.StatusOutForDelivery, ActorVendor))
	assert.NoError(t, CanTransition(models.StatusPlaced, models.StatusPreparing, ActorVendor))
}

func TestPaymentOutcomeIsSystemOnly(t *testing.T) {
	assert.NoError(t, CanTransition(models.StatusPendingPayment, models.StatusPlaced, ActorSystem))
	assert.NoError(t, CanTransition(models.StatusPendingPayment, models.StatusFailed, ActorSystem))
	assert.Error(t, CanTransition(models.StatusPendingPayment, models.StatusPlaced, ActorVendor))
}

func TestCancellationWindowClosesOnPreparing(t *testing.T) {
	assert.NoError(t, CanTransition(models.StatusPlaced, models.StatusCancelled, ActorCustomer))
	assert.NoError(t, CanTransition(models.StatusConfirmed, models.StatusCancelled, ActorVendor))
	assert.Error(t, CanTransition(models.StatusPreparing, models.StatusCancelled, ActorVendor))
	assert.Error(t, CanTransition(models.StatusOutForDelivery, models.StatusCancelled, ActorCustomer))
}

func TestInvalidTransitionNamesValidOptions(t *testing.T) {
	err := CanTransition(models.StatusPlaced, models.StatusDelivered, ActorVendor)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid transition")
	assert.Contains(t, err.Error(), string(models.StatusConfirmed))
}

func TestTerminalStatesHaveNoExits(t *testing.T) {
	for _, status := range []models.OrderStatus{models.StatusDelivered, models.StatusCancelled, models.StatusFailed} {
		assert.Empty(t, ValidTransitionsFrom(status), "%s should be terminal", status)
		err := CanTransition(status, models.StatusPlaced, ActorSystem)
		assert.Contains(t, err.Error(), "terminal")
	}
}

func TestIsActive(t *testing.T) {
	assert.True(t, IsActive(models.StatusPendingPayment))
	assert.True(t, IsActive(models.StatusOutForDelivery))
	assert.False(t, IsActive(models.StatusDelivered))
	assert.False(t, IsActive(models.StatusCancelled))
	assert.False(t, IsActive(models.StatusFailed))
}

func TestGetAllTransitionsCoversEveryStatus(t *testing.T) {
	transitions := GetAllTransitions()
	assert.NotEmpty(t, transitions)
	seen := map[models.OrderStatus]bool{}
	for _, tr := range transitions {
		seen[tr.From] = true
		seen[tr.To] = true
	}
	for _, status := range []models.OrderStatus{
		models.StatusPendingPayment, models.StatusPlaced, models.StatusConfirmed,
		models.StatusPreparing, models.StatusReady, models.StatusOutForDelivery,
		models.StatusDelivered, models.StatusCancelled, models.StatusFailed,
	} {
		assert.True(t, seen[status], "status %s missing from transition table", status)
	}
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-gateway/models"
	"storefront-gateway/statemachine"
)

// ListOrders proxies the caller's order history, newest first
func (e *Env) ListOrders(c *gin.Context) {
	orders, err := e.API.Orders(c.Request.Context())
	if err != nil {
		e.upstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// GetActiveOrder returns the order currently gating the session, if any
func (e *Env) GetActiveOrder(c *gin.Context) {
	order := e.Session.ActiveOrder()
	if order == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No active order"})
		return
	}
	if !statemachine.IsActive(order.Status) {
		e.Session.SetActiveOrder(nil)
		c.JSON(http.StatusNotFound, gin.H{"error": "No active order"})
		return
	}
	c.JSON(http.StatusOK, order)
}

// RetryPayment requests a fresh payment link for an order that is still
// payable (pending payment or failed).
func (e *Env) RetryPayment(c *gin.Context) {
	paymentURL, err := e.API.RequestPaymentLink(c.Request.Context(), c.Param("id"))
	if err != nil {
		e.upstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"payment_url": paymentURL})
}

// GetStateMachineInfo documents the order lifecycle for API consumers
func (e *Env) GetStateMachineInfo(c *gin.Context) {
	transitions := statemachine.GetAllTransitions()
	result := make([]gin.H, 0, len(transitions))
	for _, t := range transitions {
		result = append(result, gin.H{
			"from":  t.From,
			"to":    t.To,
			"actor": t.Actor,
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"statuses": []models.OrderStatus{
			models.StatusPendingPayment,
			models.StatusPlaced,
			models.StatusConfirmed,
			models.StatusPreparing,
			models.StatusReady,
			models.StatusOutForDelivery,
			models.StatusDelivered,
			models.StatusCancelled,
			models.StatusFailed,
		},
		"transitions": result,
	})
}

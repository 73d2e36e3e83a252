package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-gateway/models"
	"storefront-gateway/statemachine"
)

// ListVendorOrders shows the dashboard orders for the caller's vendor.
// An optional ?status= filter narrows the list.
func (e *Env) ListVendorOrders(c *gin.Context) {
	orders, err := e.API.VendorOrders(c.Request.Context(), c.Query("status"))
	if err != nil {
		e.upstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// GetVendorOrder fetches one dashboard order with its items
func (e *Env) GetVendorOrder(c *gin.Context) {
	order, err := e.API.VendorOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		e.upstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

type UpdateVendorOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// UpdateVendorOrderStatus moves an order forward in its lifecycle. The
// transition is validated against the state machine before the backend is
// asked, so an out-of-order tap fails fast with the valid options.
func (e *Env) UpdateVendorOrderStatus(c *gin.Context) {
	var req UpdateVendorOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	orderID := c.Param("id")
	current, err := e.API.VendorOrder(c.Request.Context(), orderID)
	if err != nil {
		e.upstreamError(c, err)
		return
	}

	if err := statemachine.CanTransition(current.Status, req.Status, statemachine.ActorVendor); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":             err.Error(),
			"current_status":    current.Status,
			"valid_transitions": statemachine.ValidTransitionsFrom(current.Status),
		})
		return
	}

	updated, err := e.API.SetVendorOrderStatus(c.Request.Context(), orderID, req.Status)
	if err != nil {
		e.upstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order status updated", "order": updated})
}

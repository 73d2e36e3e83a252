package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-gateway/modifier"
	"storefront-gateway/store"
)

// GetCart returns the cart lines and derived totals
func (e *Env) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"items":      e.Cart.Items(),
		"subtotal":   e.Cart.Subtotal(),
		"item_count": e.Cart.ItemCount(),
	})
}

type SelectionItemRequest struct {
	ItemID   uint `json:"item_id" binding:"required"`
	Quantity int  `json:"quantity"`
}

type SelectionGroupRequest struct {
	GroupID uint                   `json:"group_id" binding:"required"`
	Items   []SelectionItemRequest `json:"items"`
}

type AddCartItemRequest struct {
	ProductID  uint                    `json:"product_id" binding:"required"`
	Quantity   int                     `json:"quantity"`
	Selections []SelectionGroupRequest `json:"selections"`
}

// AddCartItem configures a product against its option groups and appends
// the priced line. The product must be on the current serviceability menu,
// so the price snapshot comes from the menu the customer actually sees.
func (e *Env) AddCartItem(c *gin.Context) {
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, ok := e.Service.FindProduct(req.ProductID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product is not on the current menu"})
		return
	}

	selection := modifier.NewSelection(product)
	for _, group := range req.Selections {
		for _, item := range group.Items {
			qty := item.Quantity
			if qty == 0 {
				qty = 1
			}
			if err := selection.Set(group.GroupID, item.ItemID, qty); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
		}
	}

	line, err := selection.Confirm()
	if err != nil {
		var constraint *modifier.ConstraintError
		if errors.As(err, &constraint) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": constraint.Message, "group": constraint.Group})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Quantity > 1 {
		line.Quantity = req.Quantity
	}
	stored := e.Cart.Add(line)
	c.JSON(http.StatusCreated, gin.H{"message": "Added to cart", "item": stored, "subtotal": e.Cart.Subtotal()})
}

type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// UpdateCartItem replaces a line's quantity; quantities below 1 are rejected
func (e *Env) UpdateCartItem(c *gin.Context) {
	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	err := e.Cart.UpdateQuantity(c.Param("lineId"), *req.Quantity)
	switch {
	case errors.Is(err, store.ErrInvalidQuantity):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity must be at least 1"})
	case errors.Is(err, store.ErrLineNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart line not found"})
	default:
		c.JSON(http.StatusOK, gin.H{"items": e.Cart.Items(), "subtotal": e.Cart.Subtotal()})
	}
}

// RemoveCartItem drops a line; removing an unknown line is a no-op
func (e *Env) RemoveCartItem(c *gin.Context) {
	e.Cart.Remove(c.Param("lineId"))
	c.JSON(http.StatusOK, gin.H{"items": e.Cart.Items(), "subtotal": e.Cart.Subtotal()})
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-gateway/checkout"
)

// GetQuote returns the current money breakdown for the checkout summary
func (e *Env) GetQuote(c *gin.Context) {
	c.JSON(http.StatusOK, e.Composer.CurrentQuote())
}

type NewAddressRequest struct {
	Title    string `json:"title"`
	FullText string `json:"full_text"`
}

type SubmitOrderRequest struct {
	AddressID   uint               `json:"address_id"`
	NewAddress  *NewAddressRequest `json:"new_address"`
	Phone       string             `json:"phone"`
	AcceptTerms bool               `json:"accept_terms"`
}

// SubmitOrder runs the checkout composer. Precondition failures come back
// as 400 with the violated rule; a concurrent submission as 409; an
// upstream rejection passes through with the cart untouched.
func (e *Env) SubmitOrder(c *gin.Context) {
	var req SubmitOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := checkout.Input{
		AddressID:   req.AddressID,
		Phone:       req.Phone,
		AcceptTerms: req.AcceptTerms,
	}
	if req.NewAddress != nil {
		input.NewAddress = &checkout.AddressDraft{
			Title:    req.NewAddress.Title,
			FullText: req.NewAddress.FullText,
		}
	}

	confirmation, err := e.Composer.Submit(c.Request.Context(), input)
	switch {
	case err == nil:
	case errors.Is(err, checkout.ErrSubmitInFlight):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	case errors.Is(err, checkout.ErrCartEmpty),
		errors.Is(err, checkout.ErrAddressRequired),
		errors.Is(err, checkout.ErrPhoneRequired),
		errors.Is(err, checkout.ErrTermsNotAccepted),
		errors.Is(err, checkout.ErrNotServiceable):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	default:
		e.upstreamError(c, err)
		return
	}

	resp := gin.H{
		"message":     "Order placed",
		"order":       confirmation.Order,
		"payment_url": confirmation.PaymentURL,
	}
	if confirmation.IssuedAuth != nil {
		resp["user"] = confirmation.IssuedAuth.User
	}
	c.JSON(http.StatusCreated, resp)
}

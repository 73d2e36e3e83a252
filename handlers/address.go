package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront-gateway/upstream"
)

// ListAddresses proxies the user's address book
func (e *Env) ListAddresses(c *gin.Context) {
	addresses, err := e.API.Addresses(c.Request.Context())
	if err != nil {
		e.upstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(addresses), "addresses": addresses})
}

type AddressRequest struct {
	Title     string   `json:"title" binding:"required"`
	FullText  string   `json:"full_text" binding:"required"`
	City      string   `json:"city"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	IsDefault bool     `json:"is_default"`
}

// blockWhileOrderActive rejects address mutation while the session has an
// in-flight order; the placed order references the address.
func (e *Env) blockWhileOrderActive(c *gin.Context) bool {
	if order := e.Session.ActiveOrder(); order != nil {
		c.JSON(http.StatusConflict, gin.H{
			"error":        "Addresses cannot be changed while an order is active",
			"active_order": order,
		})
		return true
	}
	return false
}

// CreateAddress adds a saved address. Coordinates default to the last-known
// location when the caller omits them.
func (e *Env) CreateAddress(c *gin.Context) {
	if e.blockWhileOrderActive(c) {
		return
	}
	var req AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input := addressInput(req)
	if input.Latitude == nil || input.Longitude == nil {
		if coords := e.Location.Coords(); coords != nil {
			input.Latitude = &coords.Latitude
			input.Longitude = &coords.Longitude
		}
	}
	address, err := e.API.CreateAddress(c.Request.Context(), input)
	if err != nil {
		e.upstreamError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Address saved", "address": address})
}

// UpdateAddress edits a saved address
func (e *Env) UpdateAddress(c *gin.Context) {
	if e.blockWhileOrderActive(c) {
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid address id"})
		return
	}
	var req AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	address, err := e.API.UpdateAddress(c.Request.Context(), uint(id), addressInput(req))
	if err != nil {
		e.upstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Address updated", "address": address})
}

// DeleteAddress removes a saved address
func (e *Env) DeleteAddress(c *gin.Context) {
	if e.blockWhileOrderActive(c) {
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid address id"})
		return
	}
	if err := e.API.DeleteAddress(c.Request.Context(), uint(id)); err != nil {
		e.upstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Address deleted"})
}

func addressInput(req AddressRequest) upstream.AddressInput {
	return upstream.AddressInput{
		Title:     req.Title,
		FullText:  req.FullText,
		City:      req.City,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		IsDefault: req.IsDefault,
	}
}

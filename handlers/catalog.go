package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront-gateway/models"
	"storefront-gateway/upstream"
)

// ListVendors proxies the vendor listing
func (e *Env) ListVendors(c *gin.Context) {
	vendors, err := e.API.Vendors(c.Request.Context())
	if err != nil {
		e.upstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(vendors), "vendors": vendors})
}

// GetVendorProducts proxies a vendor's catalog including option groups
func (e *Env) GetVendorProducts(c *gin.Context) {
	vendorID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vendor id"})
		return
	}
	products, err := e.API.ProductsByVendor(c.Request.Context(), uint(vendorID))
	if err != nil {
		e.upstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(products), "products": products})
}

type EvaluateServiceabilityRequest struct {
	AddressID *uint               `json:"address_id"`
	Vendor    *uint               `json:"vendor"`
	Location  *models.Coordinates `json:"location"`
}

// EvaluateServiceability asks the backend whether the current location or a
// chosen address is deliverable and replaces the local snapshot with the
// answer. Falls back to the last-known coordinates when the request carries
// neither a location nor an address.
func (e *Env) EvaluateServiceability(c *gin.Context) {
	var req EvaluateServiceabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	evaluation := upstream.ServiceabilityRequest{
		AddressID: req.AddressID,
		Vendor:    req.Vendor,
		Location:  req.Location,
	}
	if evaluation.Location == nil && evaluation.AddressID == nil {
		evaluation.Location = e.Location.Coords()
	}
	for _, item := range e.Cart.Items() {
		if item.Vendor != 0 {
			evaluation.Items = append(evaluation.Items, upstream.VendorHint{Vendor: item.Vendor})
		}
	}

	result, err := e.API.Serviceability(c.Request.Context(), evaluation)
	if err != nil {
		e.upstreamError(c, err)
		return
	}

	e.Service.Set(result)
	if result.ActiveOrder != nil {
		e.Session.SetActiveOrder(result.ActiveOrder)
	}
	c.JSON(http.StatusOK, result)
}

// GetServiceability returns the latest snapshot without a network call
func (e *Env) GetServiceability(c *gin.Context) {
	snapshot := e.Service.Current()
	if snapshot == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No serviceability evaluation yet"})
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

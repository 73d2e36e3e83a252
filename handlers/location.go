package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-gateway/models"
)

// GetLocation returns the last-known coordinates and request status
func (e *Env) GetLocation(c *gin.Context) {
	status, errMsg := e.Location.Status()
	resp := gin.H{"status": status}
	if coords := e.Location.Coords(); coords != nil {
		resp["coords"] = coords
	}
	if errMsg != "" {
		resp["error"] = errMsg
	}
	c.JSON(http.StatusOK, resp)
}

type SetLocationRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required"`
	Longitude *float64 `json:"longitude" binding:"required"`
	Accuracy  *float64 `json:"accuracy"`
}

// SetLocation overwrites the location slot, e.g. after a map pick
func (e *Env) SetLocation(c *gin.Context) {
	var req SetLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	coords := models.Coordinates{
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
		Accuracy:  req.Accuracy,
	}
	e.Location.SetCoords(coords)
	c.JSON(http.StatusOK, gin.H{"status": models.LocationGranted, "coords": coords})
}

// RefreshLocation runs the configured location provider with its bounded
// wait. A failure is classified and recorded, never fatal.
func (e *Env) RefreshLocation(c *gin.Context) {
	e.Location.SetStatus(models.LocationPrompting, "")
	coords, status, err := e.Resolver.Resolve(c.Request.Context())
	if err != nil {
		e.Location.SetStatus(status, err.Error())
		c.JSON(http.StatusOK, gin.H{"status": status, "error": err.Error()})
		return
	}
	e.Location.SetCoords(*coords)
	c.JSON(http.StatusOK, gin.H{"status": status, "coords": coords})
}

type ReportLocationStatusRequest struct {
	Status  models.LocationStatus `json:"status" binding:"required"`
	Message string                `json:"message"`
}

// ReportLocationStatus lets the UI record a browser-side geolocation
// outcome (denied, unsupported, error) in the shared location store.
func (e *Env) ReportLocationStatus(c *gin.Context) {
	var req ReportLocationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	switch req.Status {
	case models.LocationDenied, models.LocationUnsupported, models.LocationError, models.LocationPrompting:
		e.Location.SetStatus(req.Status, req.Message)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status must be one of: prompting, denied, unsupported, error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": req.Status})
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"storefront-gateway/checkout"
	"storefront-gateway/geo"
	"storefront-gateway/store"
	"storefront-gateway/upstream"
)

// Env carries the injected state containers and collaborators the handlers
// work with. No package-level mutable state.
type Env struct {
	API      *upstream.Client
	Cart     *store.Cart
	Session  *store.Session
	Location *store.Location
	Service  *store.Serviceability
	Composer *checkout.Composer
	Resolver *geo.Resolver
	Log      *zap.Logger
}

// upstreamError translates a failed backend call into a gateway response:
// backend 4xx pass through with their detail, anything else is a bad
// gateway. Local state is untouched by the time this is called.
func (e *Env) upstreamError(c *gin.Context, err error) {
	var apiErr *upstream.APIError
	if errors.As(err, &apiErr) {
		status := apiErr.StatusCode
		if status < 400 || status > 499 {
			status = http.StatusBadGateway
		}
		msg := apiErr.Detail
		if msg == "" {
			msg = "Upstream request failed"
		}
		c.JSON(status, gin.H{"error": msg, "code": apiErr.Code})
		return
	}
	e.Log.Warn("upstream call failed", zap.Error(err))
	c.JSON(http.StatusBadGateway, gin.H{"error": "Upstream request failed"})
}

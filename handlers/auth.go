package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-gateway/upstream"
)

type RequestOTPRequest struct {
	Phone string `json:"phone" binding:"required"`
}

type VerifyOTPRequest struct {
	Phone string `json:"phone" binding:"required"`
	Code  string `json:"code" binding:"required"`
}

// RequestOTP asks the backend to send a login code
func (e *Env) RequestOTP(c *gin.Context) {
	var req RequestOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := e.API.RequestOTP(c.Request.Context(), req.Phone); err != nil {
		e.upstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "OTP sent"})
}

// VerifyOTP exchanges the code for a session
func (e *Env) VerifyOTP(c *gin.Context) {
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	auth, err := e.API.VerifyOTP(c.Request.Context(), upstream.VerifyOTPInput{
		Phone:       req.Phone,
		Code:        req.Code,
		DeviceID:    e.Session.DeviceID(),
		DeviceTitle: "storefront-gateway",
	})
	if err != nil {
		e.upstreamError(c, err)
		return
	}
	e.Session.ApplyAuth(*auth)
	e.Session.SetActiveOrder(nil)
	c.JSON(http.StatusOK, gin.H{"message": "Logged in", "user": auth.User})
}

// GetSession reports the current session, bootstrapping it against the
// backend when credentials are cached.
func (e *Env) GetSession(c *gin.Context) {
	if e.Session.AccessToken() == "" {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}
	info, err := e.API.Session(c.Request.Context())
	if err != nil {
		// an auth failure already cleared the credential cache via the
		// client callback; other failures fall back to the cached view
		if e.Session.AccessToken() == "" {
			c.JSON(http.StatusOK, gin.H{"authenticated": false})
			return
		}
		e.upstreamError(c, err)
		return
	}
	if !info.Authenticated {
		e.Session.ClearCredentials()
		e.Session.SetActiveOrder(nil)
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}
	if info.User != nil {
		e.Session.SetUser(*info.User)
	}
	e.Session.SetActiveOrder(info.ActiveOrder)
	c.JSON(http.StatusOK, gin.H{
		"authenticated": true,
		"user":          info.User,
		"active_order":  info.ActiveOrder,
	})
}

// Logout tears down the session-scoped state: credentials, active order,
// cart and the serviceability snapshot.
func (e *Env) Logout(c *gin.Context) {
	e.Session.Logout()
	e.Cart.Clear()
	e.Service.Clear()
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

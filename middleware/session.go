package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"storefront-gateway/store"
)

// SessionRequired blocks routes that need an authenticated session: a cached
// access token that has not expired and a known user profile. Expiry is read
// locally from the token's exp claim; the backend still has the final word.
func SessionRequired(session *store.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !session.IsAuthenticated() {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Login required"})
			c.Abort()
			return
		}
		if exp := session.TokenExpiry(); !exp.IsZero() && exp.Before(time.Now()) {
			session.ClearCredentials()
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expired, please log in again"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// VendorRequired enforces that the session user carries a vendor role
// before exposing the dashboard routes.
func VendorRequired(session *store.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := session.User()
		if !user.IsVendorStaff() {
			c.JSON(http.StatusForbidden, gin.H{"error": "Vendor access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CORS allows the thin web UI to call the gateway from another origin.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

package routes

import (
	"github.com/gin-gonic/gin"

	"storefront-gateway/handlers"
	"storefront-gateway/middleware"
	"storefront-gateway/store"
)

func SetupRoutes(r *gin.Engine, env *handlers.Env, session *store.Session) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Phone login
		public.POST("/auth/otp", env.RequestOTP)
		public.POST("/auth/verify", env.VerifyOTP)
		public.GET("/auth/session", env.GetSession)
		public.POST("/auth/logout", env.Logout)

		// Vendors & catalogs (no auth needed)
		public.GET("/vendors", env.ListVendors)
		public.GET("/vendors/:id/products", env.GetVendorProducts)

		// Serviceability snapshot
		public.POST("/serviceability", env.EvaluateServiceability)
		public.GET("/serviceability", env.GetServiceability)

		// State machine info (great for docs/Postman)
		public.GET("/state-machine", env.GetStateMachineInfo)
	}

	// ── Session-local state ────────────────────────────────────────
	local := r.Group("/api")
	{
		// Location slot
		local.GET("/location", env.GetLocation)
		local.PUT("/location", env.SetLocation)
		local.POST("/location/refresh", env.RefreshLocation)
		local.POST("/location/status", env.ReportLocationStatus)

		// Cart
		local.GET("/cart", env.GetCart)
		local.POST("/cart/items", env.AddCartItem)
		local.PATCH("/cart/items/:lineId", env.UpdateCartItem)
		local.DELETE("/cart/items/:lineId", env.RemoveCartItem)

		// Checkout; guests may submit, the backend issues credentials
		local.GET("/checkout/quote", env.GetQuote)
		local.POST("/checkout", env.SubmitOrder)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.SessionRequired(session))
	{
		// Address book
		auth.GET("/addresses", env.ListAddresses)
		auth.POST("/addresses", env.CreateAddress)
		auth.PATCH("/addresses/:id", env.UpdateAddress)
		auth.DELETE("/addresses/:id", env.DeleteAddress)

		// Order history & tracking
		auth.GET("/orders", env.ListOrders)
		auth.GET("/orders/active", env.GetActiveOrder)
		auth.POST("/orders/:id/pay", env.RetryPayment)
	}

	// ── Vendor dashboard routes ────────────────────────────────────
	vendor := r.Group("/api/vendor")
	vendor.Use(middleware.SessionRequired(session), middleware.VendorRequired(session))
	{
		vendor.GET("/orders", env.ListVendorOrders)
		vendor.GET("/orders/:id", env.GetVendorOrder)
		vendor.POST("/orders/:id/status", env.UpdateVendorOrderStatus)
	}
}

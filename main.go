package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"storefront-gateway/checkout"
	"storefront-gateway/config"
	"storefront-gateway/geo"
	"storefront-gateway/handlers"
	"storefront-gateway/kvstore"
	"storefront-gateway/middleware"
	"storefront-gateway/routes"
	"storefront-gateway/store"
	"storefront-gateway/upstream"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	logger, err := newLogger(cfg.Log)
	if err != nil {
		log.Fatal("Failed to build logger: ", err)
	}
	defer logger.Sync()

	gin.SetMode(cfg.Server.Mode)

	// Session cache: tokens, profile, device id, last-known location
	kv, err := kvstore.Open(cfg.Store.Path)
	if err != nil {
		logger.Fatal("failed to open session store", zap.Error(err))
	}

	// State containers, all injected; no package-level mutable state
	cart := store.NewCart()
	session := store.NewSession(kv)
	location := store.NewLocation(kv)
	service := store.NewServiceability()

	api := upstream.New(cfg.Upstream.BaseURL, cfg.Upstream.Timeout, session.AccessToken, func() {
		logger.Info("upstream rejected credentials, clearing session")
		session.ClearCredentials()
		session.SetActiveOrder(nil)
	})

	var provider geo.Provider
	if cfg.Geo.UseFixed {
		provider = geo.Static(cfg.Geo.FixedLat, cfg.Geo.FixedLng)
	}
	resolver := geo.NewResolver(provider, cfg.Geo.Timeout)

	composer := checkout.NewComposer(api, cart, session, location, service, logger)

	env := &handlers.Env{
		API:      api,
		Cart:     cart,
		Session:  session,
		Location: location,
		Service:  service,
		Composer: composer,
		Resolver: resolver,
		Log:      logger,
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.CORS())

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Storefront Gateway",
		})
	})

	// Register all routes
	routes.SetupRoutes(r, env, session)

	logger.Info("storefront gateway listening",
		zap.String("addr", cfg.Server.Addr()),
		zap.String("upstream", cfg.Upstream.BaseURL))
	if err := r.Run(cfg.Server.Addr()); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(cfg config.LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	zcfg := zap.NewProductionConfig()
	if cfg.Encoding == "console" {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	return zcfg.Build()
}

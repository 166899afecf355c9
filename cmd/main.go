package main

import (
	"compliance-service/internal/apperr"
	"compliance-service/internal/export"
	"compliance-service/internal/handler"
	mid "compliance-service/internal/middleware"
	"compliance-service/internal/seed"
	"compliance-service/pkg/config"
	"compliance-service/pkg/database"
	"compliance-service/pkg/jwtutil"
	"compliance-service/pkg/logger"
	"compliance-service/prometheus"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	// Load configuration (.env is read by config.Load when present)
	appConfig, err := config.Load("compliance-service")
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	if err := logger.InitLogger(appConfig); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting compliance-service",
		zap.String("environment", appConfig.Server.Env),
		zap.String("port", appConfig.Server.Port))

	// Initialize database
	db, err := database.Init(appConfig)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established")

	// Seed the catalog on first run
	if err := seed.Run(db, log); err != nil {
		log.Fatal("Failed to seed catalog", zap.Error(err))
	}

	// Construct components; the DB handle is injected, never global
	jwt := jwtutil.New(&appConfig.JWT)
	auth := mid.NewAuth(jwt)
	exporter := export.New(&appConfig.Export)

	authHandler := handler.NewAuthHandler(db, jwt)
	productHandler := handler.NewProductHandler(db)
	historyHandler := handler.NewHistoryHandler(db)
	exportHandler := handler.NewExportHandler(db, exporter)

	// Initialize Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = apperr.ErrorHandler(appConfig.Server.Env)

	// Middleware
	e.Use(middleware.Recover())
	e.Use(mid.RequestIDMiddleware)
	e.Use(mid.MetricsMiddleware)

	// Metrics endpoint
	e.GET("/metrics", echo.WrapHandler(prometheus.GetPrometheusHandler()))

	// Health check endpoint
	e.GET("/health", handler.Health)

	// Auth routes
	e.POST("/api/auth/register", authHandler.Register)
	e.POST("/api/auth/login", authHandler.Login)
	e.GET("/api/auth/me", authHandler.Me, auth.Middleware)
	e.PUT("/api/auth/profile", authHandler.UpdateProfile, auth.Middleware)

	// Product catalog routes - lookup is public, mutation is admin-only
	e.GET("/api/products", productHandler.List)
	e.GET("/api/products/search", productHandler.Search)
	e.GET("/api/products/:id", productHandler.Get)
	e.POST("/api/products", productHandler.Create, auth.Middleware, mid.RequireAdmin)
	e.PUT("/api/products/:id", productHandler.Update, auth.Middleware, mid.RequireAdmin)
	e.DELETE("/api/products/:id", productHandler.Delete, auth.Middleware, mid.RequireAdmin)

	// Search history routes
	historyAPI := e.Group("/api/history", auth.Middleware)
	historyAPI.GET("", historyHandler.List)
	historyAPI.POST("", historyHandler.Save)
	historyAPI.DELETE("/:id", historyHandler.Delete)
	historyAPI.DELETE("", historyHandler.Clear)

	// Export routes
	exportAPI := e.Group("/api/export", auth.Middleware)
	exportAPI.POST("/tccs", exportHandler.Export(export.KindTCCS))
	exportAPI.POST("/testing", exportHandler.Export(export.KindTesting))
	exportAPI.POST("/declaration", exportHandler.Export(export.KindDeclaration))
	exportAPI.POST("/label", exportHandler.Export(export.KindLabel))
	exportAPI.POST("/all", exportHandler.Export(export.KindAll))
	exportAPI.GET("/download/:filename", exportHandler.Download)

	// Start server
	port := appConfig.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}

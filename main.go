// File: slowlove/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"slowlove/config"
	"slowlove/data"
	"slowlove/handlers"
	"slowlove/middleware"
	"slowlove/routes"
	"slowlove/services/booking"
	"slowlove/services/content"
	"slowlove/services/upstream"
	"slowlove/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitCache()

	// Background work (poller, sweeper, health monitor) lives until shutdown.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	upstreamClient := upstream.NewHTTPClient(config.AppConfig.UpstreamBaseURL, config.AppConfig.UpstreamTimeout)

	poller := booking.NewPoller(
		upstreamClient,
		utils.GetCacheClient(),
		config.AppConfig.SlotPollInterval,
		logger,
	)

	registry := booking.NewRegistry(booking.Deps{
		Upstream: upstreamClient,
		Slots:    poller,
		Event:    data.Event,
		Logger:   logger,
	}, config.AppConfig.SessionTTL)

	poller.AddObserver(registry)
	go poller.Run(ctx)
	go registry.RunSweeper(ctx)

	utils.StartHealthMonitor(ctx, utils.GetCacheClient(), func(ctx context.Context) error {
		_, err := upstreamClient.SlotStatus(ctx)
		return err
	})

	// Create the Gin router.
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	bookingHandler := handlers.NewBookingHandler(registry, poller, logger)
	contentHandler := handlers.NewContentHandler(&content.DefaultContentService{})

	routes.RegisterRoutes(router, bookingHandler, contentHandler)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

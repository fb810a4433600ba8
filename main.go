// File: tutorbase/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tutorbase/config"
	"tutorbase/cron"
	"tutorbase/database"
	bookingRepoPkg "tutorbase/database/repository/booking"
	busyRepoPkg "tutorbase/database/repository/busy"
	tutorRepoPkg "tutorbase/database/repository/tutor"
	"tutorbase/handlers"
	"tutorbase/middleware"
	"tutorbase/routes"
	"tutorbase/services/booking"
	"tutorbase/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	tutorRepo := tutorRepoPkg.NewMongoTutorRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	busyRepo := busyRepoPkg.NewMongoBusyRepo()

	// services.
	bookingService := &booking.DefaultBookingService{
		TutorRepo:   tutorRepo,
		BookingRepo: bookingRepo,
		BusyRepo:    busyRepo,
		WindowDays:  config.AppConfig.BookingWindowDays,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		TutorRepo:                 tutorRepo,
		GetTutorSlotsHandler:      handlers.GetTutorSlotsHandler(bookingService),
		CreateBookingHandler:      handlers.CreateBookingHandler(bookingService),
		UpdateAvailabilityHandler: handlers.UpdateAvailabilityHandler(tutorRepo),
		CreateBusyWindowHandler:   handlers.CreateBusyWindowHandler(busyRepo),
		DeleteBusyWindowHandler:   handlers.DeleteBusyWindowHandler(busyRepo),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background worker pruning expired busy windows.
	cron.InitPruneWorker(busyRepo)

	// Periodic Mongo/Redis health snapshots served by /health.
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

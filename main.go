// File: stayhub/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stayhub/config"
	"stayhub/cron"
	"stayhub/database"
	availabilityRepoPkg "stayhub/database/repository/availability"
	bookingRepoPkg "stayhub/database/repository/booking"
	propertyRepoPkg "stayhub/database/repository/property"
	userRepoPkg "stayhub/database/repository/user"
	"stayhub/handlers"
	"stayhub/middleware"
	"stayhub/routes"
	"stayhub/services/booking"
	"stayhub/services/property"
	"stayhub/services/user"
	"stayhub/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	propertyRepo := propertyRepoPkg.NewMongoPropertyRepo()
	availabilityRepo := availabilityRepoPkg.NewMongoAvailabilityRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}

	propertyService := &property.DefaultPropertyService{
		Repo:         propertyRepo,
		Availability: availabilityRepo,
		Users:        userRepo,
	}

	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer asynqClient.Close()

	bookingEngine := &booking.DefaultBookingEngine{
		Props:        propertyRepo,
		Bookings:     bookingRepo,
		Availability: availabilityRepo,
		Tax:          &booking.FlatTaxPolicy{RateBps: config.AppConfig.TaxRateBps},

		DefaultServiceFeeBps: config.AppConfig.DefaultServiceFeeBps,
		Scheduler: &booking.AsynqLifecycleScheduler{
			Client:     asynqClient,
			PendingTTL: time.Duration(config.AppConfig.PendingBookingTTLHours) * time.Hour,
		},
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Users:        handlers.NewUserHandler(userService),
		Properties:   handlers.NewPropertyHandler(propertyService),
		Availability: handlers.NewAvailabilityHandler(bookingEngine, propertyService),
		Bookings:     handlers.NewBookingHandler(bookingEngine, bookingRepo),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the booking lifecycle worker.
	cron.InitLifecycleWorker(bookingEngine)

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

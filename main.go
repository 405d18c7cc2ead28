// File: washhub/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"washhub/config"
	"washhub/database"
	availabilityRepo "washhub/database/repository/availability"
	bookingRepo "washhub/database/repository/booking"
	capacityRepo "washhub/database/repository/capacity"
	"washhub/handlers"
	"washhub/middleware"
	"washhub/routes"
	"washhub/services/booking"
	"washhub/services/partner"
	"washhub/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()

	taskClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskDB,
	})
	defer taskClient.Close()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	availRepo := availabilityRepo.NewMongoAvailabilityRepo()
	capRepo := capacityRepo.NewMongoCapacityRepo()
	bkRepo := bookingRepo.NewMongoBookingRepo()

	// services.
	partnerService, err := partner.NewDefaultPartnerService(availRepo, capRepo, utils.GetCacheClient())
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize partner service: %v", err)
	}
	bookingService, err := booking.NewDefaultBookingService(bkRepo, availRepo, taskClient)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize booking service: %v", err)
	}

	scheduleHandler := handlers.NewScheduleHandler(partnerService)
	bookingHandler := handlers.NewBookingHandler(bookingService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Schedule endpoints.
		GetWeeklyAvailabilityHandler: scheduleHandler.GetWeeklyAvailabilityHandler,
		GetCapacityHandler:           scheduleHandler.GetCapacityHandler,
		EditDayBlocksHandler:         scheduleHandler.EditDayBlocksHandler,
		SetDayEnabledHandler:         scheduleHandler.SetDayEnabledHandler,
		SaveScheduleHandler:          scheduleHandler.SaveScheduleHandler,

		// Booking endpoints.
		ListBookingsHandler:      bookingHandler.ListBookingsHandler,
		StartBookingHandler:      bookingHandler.StartBookingHandler,
		CompleteBookingHandler:   bookingHandler.CompleteBookingHandler,
		CancelBookingHandler:     bookingHandler.CancelBookingHandler,
		RescheduleBookingHandler: bookingHandler.RescheduleBookingHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

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

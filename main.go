// File: serenia/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"serenia/config"
	"serenia/cron"
	"serenia/database"
	associateRepoPkg "serenia/database/repository/associate"
	bookingRepoPkg "serenia/database/repository/booking"
	"serenia/handlers"
	"serenia/routes"
	"serenia/services/availability"
	"serenia/services/booking"
	"serenia/services/notification"
	"serenia/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.FirebaseInit()

	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	defer asynqClient.Close()

	// Create the Gin router.
	router := gin.New()
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	assocRepo := associateRepoPkg.NewMongoAssociateRepo()
	bkgRepo := bookingRepoPkg.NewMongoBookingRepo()

	cacheClient := utils.GetCacheClient()

	// services.
	notificationService := &notification.DefaultNotificationService{
		Associates: assocRepo,
	}

	availabilityService := &availability.DefaultAvailabilityService{
		Repo:  assocRepo,
		Cache: cacheClient,
	}

	bookingService := &booking.DefaultBookingService{
		AssociateRepo:            assocRepo,
		BookingRepo:              bkgRepo,
		Notifier:                 notificationService,
		AsynqClient:              asynqClient,
		Cache:                    cacheClient,
		HorizonDays:              config.AppConfig.BookingHorizonDays,
		ReleaseNeighborsOnCancel: config.AppConfig.CancelReleasesNeighbors,
	}

	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	associateHandler := handlers.NewAssociateHandler(assocRepo)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		AssociateRepo: assocRepo,

		// Associate directory endpoints.
		CreateAssociateHandler: associateHandler.CreateAssociateHandler,
		GetAssociateHandler:    associateHandler.GetAssociateHandler,
		ListAssociatesHandler:  associateHandler.ListAssociatesHandler,
		DeleteAssociateHandler: associateHandler.DeleteAssociateHandler,

		// Availability endpoints.
		SetAvailabilityHandler:    availabilityHandler.SetAvailabilityHandler,
		ApplyPatternHandler:       availabilityHandler.ApplyPatternHandler,
		ClearAvailabilityHandler:  availabilityHandler.ClearAvailabilityHandler,
		GetDayAvailabilityHandler: availabilityHandler.GetDayAvailabilityHandler,
		GetCalendarHandler:        availabilityHandler.GetCalendarHandler,
		NextAvailableSlotHandler:  availabilityHandler.NextAvailableSlotHandler,

		// Booking endpoints.
		BookSlotHandler:              bookingHandler.BookSlotHandler,
		CancelBookingHandler:         bookingHandler.CancelBookingHandler,
		GetBookingHandler:            bookingHandler.GetBookingHandler,
		ListSubjectBookingsHandler:   bookingHandler.ListSubjectBookingsHandler,
		ListAssociateBookingsHandler: bookingHandler.ListAssociateBookingsHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background workers.
	go cron.InitReminderWorker(notificationService)
	go utils.StartHealthMonitor(cacheClient, database.MongoClient)

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

	closeRedis(cacheClient)
	logger.Sugar().Info("main: server stopped gracefully")
}

func closeRedis(client *redis.Client) {
	if client == nil {
		return
	}
	if err := client.Close(); err != nil {
		utils.GetLogger().Sugar().Warnf("main: failed to close redis client: %v", err)
	}
}

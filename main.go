package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"notilog/config"
	"notilog/database"
	notificationRepo "notilog/database/repository"
	"notilog/events"
	"notilog/handlers"
	"notilog/middleware"
	"notilog/routes"
	"notilog/services/notification"
	"notilog/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Event bus. Owned here and passed by reference; the handler publishes,
	// the writer subscribes.
	dispatcher := events.NewDispatcher(logger)

	// repositories.
	notifRepo := notificationRepo.NewGormNotificationRepo()

	// services.
	writer, err := notification.NewDefaultWriter(notifRepo, logger)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification writer: %v", err)
	}
	dispatcher.Subscribe(events.NewNotification, writer.HandleNewNotification)

	notificationHandler := handlers.NewNotificationHandler(dispatcher)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		CreateNotificationHandler: notificationHandler.CreateNotificationHandler,
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

	// Accepted notifications may still be in flight on the event bus; give
	// them the rest of the shutdown budget to reach the store.
	if err := dispatcher.Drain(ctx); err != nil {
		logger.Sugar().Warnf("main: shutdown with undelivered events: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

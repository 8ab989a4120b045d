package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates the endpoint handlers wired in main so the routes
// package can register them without importing the services.
type HandlerBundle struct {
	// Notification endpoints.
	CreateNotificationHandler gin.HandlerFunc
}

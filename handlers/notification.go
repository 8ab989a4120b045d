package handlers

import (
	"net/http"

	"notilog/events"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Publisher is the slice of the event dispatcher the handler needs.
type Publisher interface {
	Publish(name string, payload any)
}

// NotificationHandler accepts notification requests and hands them to the
// event bus. It never touches the database: persistence happens behind the
// NewNotification event, after the response has been written.
type NotificationHandler struct {
	bus Publisher
}

func NewNotificationHandler(bus Publisher) *NotificationHandler {
	return &NotificationHandler{bus: bus}
}

// createNotificationRequest is the POST /api/notifications body.
type createNotificationRequest struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

// CreateNotificationHandler validates presence of message and type, publishes
// the NewNotification event, and acknowledges immediately. The 201 means
// "event triggered", not "row written" — a downstream insert failure is only
// visible in the logs.
func (h *NotificationHandler) CreateNotificationHandler(c *gin.Context) {
	logger := getLogger(c)

	var req createNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid notification request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message and type are required"})
		return
	}

	if req.Message == "" || req.Type == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message and type are required"})
		return
	}

	h.bus.Publish(events.NewNotification, events.NewNotificationPayload{
		Message: req.Message,
		Type:    req.Type,
	})

	c.JSON(http.StatusCreated, gin.H{"message": "Notification event triggered"})
}

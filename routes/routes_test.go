package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"notilog/handlers"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRegisterRoutes(t *testing.T) {
	router := gin.New()
	hb := &handlers.HandlerBundle{
		CreateNotificationHandler: func(c *gin.Context) {
			c.JSON(http.StatusCreated, gin.H{"message": "Notification event triggered"})
		},
	}
	RegisterRoutes(router, hb)

	t.Run("health", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		router.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Errorf("expected status 200, got %d", w.Code)
		}
	})

	t.Run("create notification route is wired", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/notifications", nil)
		router.ServeHTTP(w, req)
		if w.Code != http.StatusCreated {
			t.Errorf("expected status 201, got %d", w.Code)
		}
	})

	t.Run("no other notification endpoints", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/notifications", nil)
		router.ServeHTTP(w, req)
		if w.Code != http.StatusNotFound {
			t.Errorf("expected status 404, got %d", w.Code)
		}
	})
}

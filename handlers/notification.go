package handlers

import (
	"net/http"

	"finance-server/cache"
	httpHandler "finance-server/handlers/http"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	store *cache.NotificationStore
}

func NewNotificationHandler(store *cache.NotificationStore) *NotificationHandler {
	return &NotificationHandler{store: store}
}

// List handles GET /api/notification
func (h *NotificationHandler) List(c *gin.Context) {
	notifications := h.store.Pending(httpHandler.CurrentUser(c).ID)
	c.JSON(http.StatusOK, gin.H{
		"notifications": notifications,
		"count":         len(notifications),
	})
}

// Dismiss handles DELETE /api/notification/:id
func (h *NotificationHandler) Dismiss(c *gin.Context) {
	if !h.store.Dismiss(httpHandler.CurrentUser(c).ID, c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Notification not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification dismissed"})
}

// Stats handles GET /api/notification/stats
func (h *NotificationHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"stats":  h.store.Stats(),
	})
}

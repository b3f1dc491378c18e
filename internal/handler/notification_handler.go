package handler

import (
	"log"
	"net/http"

	"github.com/jpconwi/communitycare/internal/middleware"
	"github.com/jpconwi/communitycare/internal/service"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	svc *service.NotificationService
}

func NewNotificationHandler(svc *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

// List returns the caller's notifications newest first, then marks them all
// read: viewing the list is the acknowledgment.
func (h *NotificationHandler) List(c *gin.Context) {
	actor := middleware.GetActor(c)
	list, err := h.svc.ListForUser(actor.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.svc.MarkAllRead(actor.ID); err != nil {
		log.Printf("[notification] mark read for user %d: %v", actor.ID, err)
	}
	c.JSON(http.StatusOK, gin.H{"notifications": list})
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	actor := middleware.GetActor(c)
	if err := h.svc.MarkAllRead(actor.ID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	actor := middleware.GetActor(c)
	count, err := h.svc.UnreadCount(actor.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"unread": count})
}

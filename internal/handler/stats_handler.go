package handler

import (
	"net/http"

	"github.com/jpconwi/communitycare/internal/middleware"
	"github.com/jpconwi/communitycare/internal/service"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	svc *service.StatsService
}

func NewStatsHandler(svc *service.StatsService) *StatsHandler {
	return &StatsHandler{svc: svc}
}

// Get returns the global report counts plus the caller's own count.
func (h *StatsHandler) Get(c *gin.Context) {
	actor := middleware.GetActor(c)
	global, err := h.svc.Global()
	if err != nil {
		respondError(c, err)
		return
	}
	mine, err := h.svc.ForUser(actor.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"total":       global.Total,
		"pending":     global.Pending,
		"in_progress": global.InProgress,
		"resolved":    global.Resolved,
		"my_reports":  mine,
	})
}

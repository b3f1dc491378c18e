package handler

import (
	"net/http"
	"strconv"

	"github.com/jpconwi/communitycare/internal/domain"
	"github.com/jpconwi/communitycare/internal/middleware"
	"github.com/jpconwi/communitycare/internal/models"
	"github.com/jpconwi/communitycare/internal/repository"
	"github.com/jpconwi/communitycare/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	defaultLogLimit = 50
	maxLogLimit     = 100
)

type AdminHandler struct {
	users     *service.UserAdminService
	auditRepo *repository.AuditLogRepository
}

func NewAdminHandler(users *service.UserAdminService, auditRepo *repository.AuditLogRepository) *AdminHandler {
	return &AdminHandler{users: users, auditRepo: auditRepo}
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	actor := middleware.GetActor(c)
	list, err := h.users.ListUsers(actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": list})
}

type SetRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

func (h *AdminHandler) SetRole(c *gin.Context) {
	actor := middleware.GetActor(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}
	var req SetRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	u, err := h.users.SetRole(actor, uint(id), req.Role)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": u})
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	actor := middleware.GetActor(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}
	if err := h.users.DeleteUser(actor, uint(id)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *AdminHandler) ListLogs(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLogLimit)))
	if limit <= 0 {
		limit = defaultLogLimit
	}
	if limit > maxLogLimit {
		limit = maxLogLimit
	}
	list, err := h.auditRepo.List(limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"logs": list})
}

// ClearLogs wipes the audit log. Irreversible.
func (h *AdminHandler) ClearLogs(c *gin.Context) {
	actor := middleware.GetActor(c)
	entry := &models.AuditLog{
		AdminID:    actor.ID,
		Action:     domain.ActionClearLogs,
		TargetType: domain.TargetSystem,
		Details:    "Audit log cleared",
	}
	if err := h.auditRepo.Clear(entry); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

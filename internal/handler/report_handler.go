package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/jpconwi/communitycare/internal/middleware"
	"github.com/jpconwi/communitycare/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	svc *service.ReportService
}

func NewReportHandler(svc *service.ReportService) *ReportHandler {
	return &ReportHandler{svc: svc}
}

type SubmitReportRequest struct {
	ReporterName     string   `json:"reporter_name" form:"reporter_name"`
	ProblemType      string   `json:"problem_type" form:"problem_type"`
	Location         string   `json:"location" form:"location"`
	IssueDescription string   `json:"issue_description" form:"issue_description"`
	ReportedDate     string   `json:"reported_date" form:"reported_date"`
	Priority         string   `json:"priority" form:"priority"`
	Latitude         *float64 `json:"latitude" form:"latitude"`
	Longitude        *float64 `json:"longitude" form:"longitude"`
}

// Submit accepts JSON, or multipart form data with an optional "photo" file
// part.
func (h *ReportHandler) Submit(c *gin.Context) {
	actor := middleware.GetActor(c)
	var req SubmitReportRequest
	in := service.SubmitInput{}

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		if err := c.ShouldBind(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if file, err := c.FormFile("photo"); err == nil {
			f, err := file.Open()
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable photo"})
				return
			}
			defer f.Close()
			in.Photo = f
		}
	} else {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	in.ReporterName = req.ReporterName
	in.ProblemType = req.ProblemType
	in.Location = req.Location
	in.IssueDescription = req.IssueDescription
	in.ReportedDate = req.ReportedDate
	in.Priority = req.Priority
	in.Latitude = req.Latitude
	in.Longitude = req.Longitude

	report, err := h.svc.Submit(c.Request.Context(), actor, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"report": report})
}

func (h *ReportHandler) List(c *gin.Context) {
	actor := middleware.GetActor(c)
	scope := c.DefaultQuery("scope", service.ScopeMine)
	reports, err := h.svc.List(actor, scope)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reports": reports})
}

func (h *ReportHandler) Get(c *gin.Context) {
	actor := middleware.GetActor(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report id"})
		return
	}
	report, err := h.svc.Get(actor, uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"report": report})
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *ReportHandler) UpdateStatus(c *gin.Context) {
	actor := middleware.GetActor(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report id"})
		return
	}
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	report, err := h.svc.TransitionStatus(actor, uint(id), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"report": report})
}

func (h *ReportHandler) Delete(c *gin.Context) {
	actor := middleware.GetActor(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report id"})
		return
	}
	if err := h.svc.Delete(actor, uint(id)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/jpconwi/communitycare/internal/domain"
	"github.com/jpconwi/communitycare/internal/models"
	"github.com/jpconwi/communitycare/pkg/photos"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReportStore is the slice of the report repository the lifecycle service
// needs. The multi-write methods are transactional: the primary mutation and
// its notification/audit side effects commit together or not at all.
type ReportStore interface {
	Create(r *models.Report) error
	GetByID(id uint) (*models.Report, error)
	ListAll() ([]models.Report, error)
	ListByUser(userID uint) ([]models.Report, error)
	UpdateStatus(r *models.Report, n *models.Notification, entry *models.AuditLog) error
	Delete(r *models.Report, entry *models.AuditLog) error
}

// ReportService owns the report lifecycle: submission, the status state
// machine, deletion, and the side effects each transition must carry.
type ReportService struct {
	repo        ReportStore
	photos      photos.Client
	photoFolder string
}

func NewReportService(repo ReportStore, photoClient photos.Client, photoFolder string) *ReportService {
	return &ReportService{repo: repo, photos: photoClient, photoFolder: photoFolder}
}

type SubmitInput struct {
	ReporterName     string
	ProblemType      string
	Location         string
	IssueDescription string
	ReportedDate     string
	Priority         string
	Latitude         *float64
	Longitude        *float64
	Photo            io.Reader // optional
}

// Submit files a new report for the actor. Status always starts Pending; no
// notification is sent on creation.
func (s *ReportService) Submit(ctx context.Context, actor Actor, in SubmitInput) (*models.Report, error) {
	switch {
	case in.ReporterName == "":
		return nil, invalidField("reporter_name", "required")
	case in.ProblemType == "":
		return nil, invalidField("problem_type", "required")
	case in.Location == "":
		return nil, invalidField("location", "required")
	case in.IssueDescription == "":
		return nil, invalidField("issue_description", "required")
	case in.ReportedDate == "":
		return nil, invalidField("reported_date", "required")
	case in.Priority == "":
		return nil, invalidField("priority", "required")
	}
	problemType, ok := domain.CanonicalProblemType(in.ProblemType)
	if !ok {
		return nil, invalidField("problem_type", "unknown problem type")
	}
	priority, ok := domain.CanonicalPriority(in.Priority)
	if !ok {
		return nil, invalidField("priority", "unknown priority")
	}

	var photoRef string
	if in.Photo != nil {
		ref, err := s.photos.Upload(ctx, in.Photo, s.photoFolder, uuid.NewString())
		if err != nil {
			return nil, fmt.Errorf("upload photo: %w", err)
		}
		photoRef = ref
	}

	report := &models.Report{
		UserID:           actor.ID,
		ReporterName:     in.ReporterName,
		ProblemType:      problemType,
		Location:         in.Location,
		IssueDescription: in.IssueDescription,
		ReportedDate:     in.ReportedDate,
		Status:           domain.StatusPending,
		Priority:         priority,
		PhotoRef:         photoRef,
		Latitude:         in.Latitude,
		Longitude:        in.Longitude,
	}
	if err := s.repo.Create(report); err != nil {
		return nil, err
	}
	return report, nil
}

// TransitionStatus moves a report to newStatus. Any of the three statuses may
// move to any other, including itself; Resolved reports can be reopened. Each
// call appends exactly one owner notification and one audit entry, committed
// atomically with the status change.
func (s *ReportService) TransitionStatus(actor Actor, reportID uint, newStatus string) (*models.Report, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	if !domain.ValidStatus(newStatus) {
		return nil, ErrInvalidStatus
	}
	report, err := s.repo.GetByID(reportID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, err
	}
	report.Status = newStatus
	n := &models.Notification{
		UserID:   report.UserID,
		ReportID: report.ID,
		Message:  fmt.Sprintf("Your report status has been updated to %s", newStatus),
		Type:     domain.NotificationTypeStatusUpdate,
	}
	entry := &models.AuditLog{
		AdminID:    actor.ID,
		Action:     domain.ActionUpdateStatus,
		TargetType: domain.TargetReport,
		TargetID:   &report.ID,
		Details:    fmt.Sprintf("Status changed to %s", newStatus),
	}
	if err := s.repo.UpdateStatus(report, n, entry); err != nil {
		return nil, err
	}
	return report, nil
}

// Delete removes a report. The owner is not notified; deletion is only
// visible in the audit log.
func (s *ReportService) Delete(actor Actor, reportID uint) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}
	report, err := s.repo.GetByID(reportID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReportNotFound
		}
		return err
	}
	entry := &models.AuditLog{
		AdminID:    actor.ID,
		Action:     domain.ActionDelete,
		TargetType: domain.TargetReport,
		TargetID:   &report.ID,
		Details:    fmt.Sprintf("Deleted: %s - %s", report.ProblemType, report.Location),
	}
	return s.repo.Delete(report, entry)
}

const (
	ScopeAll  = "all"
	ScopeMine = "mine"
)

// List returns reports newest-first by id. Scope "all" is admin-only.
func (s *ReportService) List(actor Actor, scope string) ([]models.Report, error) {
	switch scope {
	case ScopeAll:
		if !actor.IsAdmin() {
			return nil, ErrForbidden
		}
		return s.repo.ListAll()
	case ScopeMine:
		return s.repo.ListByUser(actor.ID)
	default:
		return nil, invalidField("scope", "must be 'all' or 'mine'")
	}
}

// Get returns one report. Only the owner or an admin may see it.
func (s *ReportService) Get(actor Actor, reportID uint) (*models.Report, error) {
	report, err := s.repo.GetByID(reportID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, err
	}
	if !actor.IsAdmin() && report.UserID != actor.ID {
		return nil, ErrForbidden
	}
	return report, nil
}

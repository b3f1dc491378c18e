package service

import (
	"errors"
	"fmt"

	"github.com/jpconwi/communitycare/internal/domain"
	"github.com/jpconwi/communitycare/internal/models"
	"github.com/jpconwi/communitycare/internal/repository"

	"gorm.io/gorm"
)

// AdminUserStore is the slice of the user repository the admin service needs.
// UpdateRole and DeleteCascade are transactional with their audit entry.
type AdminUserStore interface {
	GetByID(id uint) (*models.User, error)
	ListWithReportCounts() ([]repository.UserSummary, error)
	UpdateRole(u *models.User, entry *models.AuditLog) error
	DeleteCascade(u *models.User, entry *models.AuditLog) error
}

// ReportCounter supplies the owned-report count for cascade audit details.
type ReportCounter interface {
	CountByUser(userID uint) (int64, error)
}

// UserAdminService owns admin-side user management: role changes and user
// deletion with report cascade.
type UserAdminService struct {
	userRepo AdminUserStore
	reports  ReportCounter
}

func NewUserAdminService(userRepo AdminUserStore, reports ReportCounter) *UserAdminService {
	return &UserAdminService{userRepo: userRepo, reports: reports}
}

func (s *UserAdminService) ListUsers(actor Actor) ([]repository.UserSummary, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	return s.userRepo.ListWithReportCounts()
}

// SetRole changes a user's role. Admins cannot change their own role, which
// guarantees at least one admin remains.
func (s *UserAdminService) SetRole(actor Actor, userID uint, newRole string) (*models.User, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	if userID == actor.ID {
		return nil, ErrSelfModification
	}
	if !domain.ValidRole(newRole) {
		return nil, ErrInvalidRole
	}
	u, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	u.Role = newRole
	entry := &models.AuditLog{
		AdminID:    actor.ID,
		Action:     domain.ActionUpdateRole,
		TargetType: domain.TargetUser,
		TargetID:   &u.ID,
		Details:    fmt.Sprintf("Role changed to %s", newRole),
	}
	if err := s.userRepo.UpdateRole(u, entry); err != nil {
		return nil, err
	}
	return u, nil
}

// DeleteUser removes a user and every report they own. The cascade and the
// audit entry commit in one transaction.
func (s *UserAdminService) DeleteUser(actor Actor, userID uint) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}
	if userID == actor.ID {
		return ErrSelfModification
	}
	u, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	reportCount, err := s.reports.CountByUser(userID)
	if err != nil {
		return err
	}
	entry := &models.AuditLog{
		AdminID:    actor.ID,
		Action:     domain.ActionDelete,
		TargetType: domain.TargetUser,
		TargetID:   &u.ID,
		Details:    fmt.Sprintf("Deleted user: %s (cascade removed %d reports)", u.Username, reportCount),
	}
	return s.userRepo.DeleteCascade(u, entry)
}

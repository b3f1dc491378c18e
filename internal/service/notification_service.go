package service

import (
	"github.com/jpconwi/communitycare/internal/domain"
	"github.com/jpconwi/communitycare/internal/models"
)

type NotificationStore interface {
	Create(n *models.Notification) error
	ListByUser(userID uint) ([]models.Notification, error)
	MarkAllRead(userID uint) error
	UnreadCount(userID uint) (int64, error)
}

type NotificationService struct {
	repo NotificationStore
}

func NewNotificationService(repo NotificationStore) *NotificationService {
	return &NotificationService{repo: repo}
}

func (s *NotificationService) Notify(userID, reportID uint, message, notifType string) error {
	if notifType == "" {
		notifType = domain.NotificationTypeStatusUpdate
	}
	return s.repo.Create(&models.Notification{
		UserID:   userID,
		ReportID: reportID,
		Message:  message,
		Type:     notifType,
	})
}

func (s *NotificationService) ListForUser(userID uint) ([]models.Notification, error) {
	return s.repo.ListByUser(userID)
}

// MarkAllRead is idempotent; marking an already-read inbox is a no-op.
func (s *NotificationService) MarkAllRead(userID uint) error {
	return s.repo.MarkAllRead(userID)
}

func (s *NotificationService) UnreadCount(userID uint) (int64, error) {
	return s.repo.UnreadCount(userID)
}

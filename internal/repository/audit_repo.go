package repository

import (
	"github.com/jpconwi/communitycare/internal/models"

	"gorm.io/gorm"
)

type AuditLogRepository struct {
	db *gorm.DB
}

func NewAuditLogRepository(db *gorm.DB) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

func (r *AuditLogRepository) Create(entry *models.AuditLog) error {
	return r.db.Create(entry).Error
}

// List returns the newest entries joined with the acting admin's username.
func (r *AuditLogRepository) List(limit int) ([]models.AuditLogEntry, error) {
	var list []models.AuditLogEntry
	err := r.db.Model(&models.AuditLog{}).
		Select("audit_logs.*, users.username AS admin_name").
		Joins("JOIN users ON users.id = audit_logs.admin_id").
		Order("audit_logs.id DESC").
		Limit(limit).
		Find(&list).Error
	return list, err
}

// Clear hard-deletes every entry, then records the wipe itself so the log is
// never silently emptied. There is no soft delete for the audit log.
func (r *AuditLogRepository) Clear(entry *models.AuditLog) error {
	tx := r.db.Begin()
	if tx.Error != nil {
		return tx.Error
	}
	if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.AuditLog{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Create(entry).Error; err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}

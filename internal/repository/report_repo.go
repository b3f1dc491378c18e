package repository

import (
	"github.com/jpconwi/communitycare/internal/models"

	"gorm.io/gorm"
)

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) Create(report *models.Report) error {
	return r.db.Create(report).Error
}

func (r *ReportRepository) GetByID(id uint) (*models.Report, error) {
	var report models.Report
	err := r.db.First(&report, id).Error
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// Listing order is newest first by id, i.e. insertion order.

func (r *ReportRepository) ListAll() ([]models.Report, error) {
	var list []models.Report
	err := r.db.Order("id DESC").Find(&list).Error
	return list, err
}

func (r *ReportRepository) ListByUser(userID uint) ([]models.Report, error) {
	var list []models.Report
	err := r.db.Where("user_id = ?", userID).Order("id DESC").Find(&list).Error
	return list, err
}

func (r *ReportRepository) CountByUser(userID uint) (int64, error) {
	var c int64
	err := r.db.Model(&models.Report{}).Where("user_id = ?", userID).Count(&c).Error
	return c, err
}

// UpdateStatus persists the report's new status together with the owner
// notification and the audit entry. The three writes share one transaction so
// a status change is never visible without its side effects.
func (r *ReportRepository) UpdateStatus(report *models.Report, n *models.Notification, entry *models.AuditLog) error {
	tx := r.db.Begin()
	if tx.Error != nil {
		return tx.Error
	}
	if err := tx.Model(&models.Report{}).Where("id = ?", report.ID).Update("status", report.Status).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Create(n).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Create(entry).Error; err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}

// Delete removes the report and writes the audit entry in one transaction.
func (r *ReportRepository) Delete(report *models.Report, entry *models.AuditLog) error {
	tx := r.db.Begin()
	if tx.Error != nil {
		return tx.Error
	}
	if err := tx.Delete(&models.Report{}, report.ID).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Create(entry).Error; err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}

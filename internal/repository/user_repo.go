package repository

import (
	"github.com/jpconwi/communitycare/internal/models"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(u *models.User) error {
	return r.db.Create(u).Error
}

func (r *UserRepository) GetByID(id uint) (*models.User, error) {
	var u models.User
	err := r.db.First(&u, id).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var u models.User
	err := r.db.Where("email = ?", email).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByUsername(username string) (*models.User, error) {
	var u models.User
	err := r.db.Where("username = ?", username).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// UserSummary is a user row with the number of reports they own, for the
// admin user-management view.
type UserSummary struct {
	models.User
	ReportCount int64 `json:"report_count"`
}

func (r *UserRepository) ListWithReportCounts() ([]UserSummary, error) {
	var list []UserSummary
	err := r.db.Model(&models.User{}).
		Select("users.*, COUNT(reports.id) AS report_count").
		Joins("LEFT JOIN reports ON reports.user_id = users.id").
		Group("users.id").
		Order("users.id DESC").
		Find(&list).Error
	return list, err
}

// UpdateRole persists the new role and the audit entry in one transaction.
func (r *UserRepository) UpdateRole(u *models.User, entry *models.AuditLog) error {
	tx := r.db.Begin()
	if tx.Error != nil {
		return tx.Error
	}
	if err := tx.Model(&models.User{}).Where("id = ?", u.ID).Update("role", u.Role).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Create(entry).Error; err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}

// DeleteCascade removes the user's reports, then the user, then writes the
// audit entry, all in one transaction.
func (r *UserRepository) DeleteCascade(u *models.User, entry *models.AuditLog) error {
	tx := r.db.Begin()
	if tx.Error != nil {
		return tx.Error
	}
	if err := tx.Where("user_id = ?", u.ID).Delete(&models.Report{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Delete(&models.User{}, u.ID).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Create(entry).Error; err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}

package repository

import (
	"github.com/jpconwi/communitycare/internal/domain"
	"github.com/jpconwi/communitycare/internal/models"

	"gorm.io/gorm"
)

// GlobalStats are on-demand counts over the full report set. Nothing is
// cached; every call re-scans the table.
type GlobalStats struct {
	Total      int64 `json:"total"`
	Pending    int64 `json:"pending"`
	InProgress int64 `json:"in_progress"`
	Resolved   int64 `json:"resolved"`
}

type StatsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) GlobalStats() (*GlobalStats, error) {
	var s GlobalStats
	if err := r.db.Model(&models.Report{}).Count(&s.Total).Error; err != nil {
		return nil, err
	}
	r.db.Model(&models.Report{}).Where("status = ?", domain.StatusPending).Count(&s.Pending)
	r.db.Model(&models.Report{}).Where("status = ?", domain.StatusInProgress).Count(&s.InProgress)
	r.db.Model(&models.Report{}).Where("status = ?", domain.StatusResolved).Count(&s.Resolved)
	return &s, nil
}

func (r *StatsRepository) UserReportCount(userID uint) (int64, error) {
	var c int64
	err := r.db.Model(&models.Report{}).Where("user_id = ?", userID).Count(&c).Error
	return c, err
}

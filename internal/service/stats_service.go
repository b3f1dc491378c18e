package service

import "github.com/jpconwi/communitycare/internal/repository"

type StatsStore interface {
	GlobalStats() (*repository.GlobalStats, error)
	UserReportCount(userID uint) (int64, error)
}

// StatsService computes read-only snapshots over the report set.
type StatsService struct {
	repo StatsStore
}

func NewStatsService(repo StatsStore) *StatsService {
	return &StatsService{repo: repo}
}

func (s *StatsService) Global() (*repository.GlobalStats, error) {
	return s.repo.GlobalStats()
}

func (s *StatsService) ForUser(userID uint) (int64, error) {
	return s.repo.UserReportCount(userID)
}

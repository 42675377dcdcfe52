package service

import (
	"context"

	"github.com/hr-bulk-import-api/internal/repository"
)

// statsService is the concrete implementation of StatsService
type statsService struct {
	repos *repository.Repositories
}

func newStatsService(repos *repository.Repositories) *statsService {
	return &statsService{repos: repos}
}

// Counts returns row counts for the metrics endpoint
func (s *statsService) Counts(ctx context.Context) (map[string]int, error) {
	users, err := s.repos.User.Count(ctx)
	if err != nil {
		return nil, err
	}
	leaves, err := s.repos.Leave.Count(ctx)
	if err != nil {
		return nil, err
	}
	milestones, err := s.repos.Milestone.Count(ctx)
	if err != nil {
		return nil, err
	}
	return map[string]int{
		"users":      users,
		"leaves":     leaves,
		"milestones": milestones,
	}, nil
}

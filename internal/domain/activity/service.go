package activity

import (
	"context"
	"log/slog"
)

const (
	defaultRecentLimit = 20
	maxRecentLimit     = 100
)

// Service handles activity log operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new activity service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Log persists an entry.
func (s *Service) Log(ctx context.Context, entry *Entry) error {
	return s.repo.Log(ctx, entry)
}

// Recent returns the newest entries, newest first.
func (s *Service) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	if limit > maxRecentLimit {
		limit = maxRecentLimit
	}
	return s.repo.Recent(ctx, limit)
}

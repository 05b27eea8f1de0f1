package service

import (
	"context"
	"fmt"

	"placefinder-api/internal/models"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// HistoryService lists recent search summaries
type HistoryService struct {
	repo SearchLogReader
}

// SearchLogReader interface for dependency injection
type SearchLogReader interface {
	RecentSearches(ctx context.Context, limit int) ([]models.SearchLog, error)
}

// NewHistoryService creates a new history service. repo may be nil when no
// database is configured.
func NewHistoryService(repo SearchLogReader) *HistoryService {
	return &HistoryService{repo: repo}
}

// Recent returns up to limit summaries, newest first
func (s *HistoryService) Recent(ctx context.Context, limit int) ([]models.SearchLog, error) {
	if s.repo == nil {
		return nil, ErrHistoryUnavailable
	}

	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	entries, err := s.repo.RecentSearches(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list searches: %w", err)
	}

	return entries, nil
}

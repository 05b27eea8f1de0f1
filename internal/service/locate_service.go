package service

import (
	"context"
	"fmt"
	"strings"

	"placefinder-api/internal/models"
)

// LocateService resolves free-text place queries into a coordinate to search around
type LocateService struct {
	finder PlaceFinder
}

// PlaceFinder interface for dependency injection
type PlaceFinder interface {
	FindPlace(ctx context.Context, query string) (*models.Landmark, error)
}

// NewLocateService creates a new locate service
func NewLocateService(finder PlaceFinder) *LocateService {
	return &LocateService{finder: finder}
}

// Locate returns the best match for query, or nil when nothing matches
func (s *LocateService) Locate(ctx context.Context, query string) (*models.Landmark, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("service: %w: query cannot be empty", ErrInvalidRequest)
	}

	landmark, err := s.finder.FindPlace(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("service: failed to locate place: %w", err)
	}

	return landmark, nil
}

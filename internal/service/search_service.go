package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"placefinder-api/internal/models"
	"placefinder-api/internal/search"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// GridPlanner interface for dependency injection
type GridPlanner interface {
	Points(center models.Coordinate, radius float64) ([]models.Coordinate, error)
}

// Aggregator interface for dependency injection
type Aggregator interface {
	Aggregate(ctx context.Context, points []models.Coordinate, categories []string, radius float64, fetchAllPages bool) search.Aggregation
}

// SearchLogWriter persists search summaries
type SearchLogWriter interface {
	SaveSearch(ctx context.Context, entry models.SearchLog) error
}

// SearchService runs place searches: it picks the sample points, fans the
// queries out and ranks the merged result
type SearchService struct {
	planner    GridPlanner
	aggregator Aggregator
	logs       SearchLogWriter
	timeout    time.Duration
}

// NewSearchService creates a new search service. logs may be nil. A zero
// timeout leaves the search bounded only by the caller's context.
func NewSearchService(planner GridPlanner, aggregator Aggregator, logs SearchLogWriter, timeout time.Duration) *SearchService {
	return &SearchService{
		planner:    planner,
		aggregator: aggregator,
		logs:       logs,
		timeout:    timeout,
	}
}

// Search finds places around req.Center and returns them ranked by review count.
// Failed provider queries are reported in the result, not as an error; a
// search that finds nothing returns an empty result set.
func (s *SearchService) Search(ctx context.Context, req models.SearchRequest) (*models.ResultSet, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	started := time.Now()
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	points := []models.Coordinate{req.Center}
	if req.GridEnabled {
		var err error
		points, err = s.planner.Points(req.Center, req.Radius)
		if err != nil {
			return nil, fmt.Errorf("service: failed to plan grid: %w", err)
		}
	}

	categories := req.Categories()
	agg := s.aggregator.Aggregate(ctx, points, categories, req.Radius, req.FetchAllPages)

	result := &models.ResultSet{
		SearchID: uuid.NewString(),
		Request:  req,
		Places:   search.Rank(agg.Places),
		Failures: agg.Failures,
		Queries:  agg.Queries,
	}
	if result.Places == nil {
		result.Places = []models.Place{}
	}
	if result.Failures == nil {
		result.Failures = []models.QueryFailure{}
	}

	elapsed := time.Since(started)
	log.Info().
		Str("search_id", result.SearchID).
		Str("center", req.Center.String()).
		Float64("radius", req.Radius).
		Strs("categories", categories).
		Int("queries", agg.Queries).
		Int("failed", len(agg.Failures)).
		Int("places", len(result.Places)).
		Dur("elapsed", elapsed).
		Msg("search completed")

	s.record(ctx, result, categories, started, elapsed)

	return result, nil
}

func (s *SearchService) record(ctx context.Context, result *models.ResultSet, categories []string, started time.Time, elapsed time.Duration) {
	if s.logs == nil {
		return
	}

	entry := models.SearchLog{
		ID:            result.SearchID,
		CreatedAt:     started.UTC(),
		Center:        result.Request.Center,
		Radius:        result.Request.Radius,
		Categories:    categories,
		GridEnabled:   result.Request.GridEnabled,
		FetchAllPages: result.Request.FetchAllPages,
		QueryCount:    result.Queries,
		FailedQueries: len(result.Failures),
		PlaceCount:    len(result.Places),
		Duration:      elapsed,
	}

	// the search deadline may already be spent
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()

	if err := s.logs.SaveSearch(ctx, entry); err != nil {
		log.Warn().Err(err).Str("search_id", result.SearchID).Msg("failed to record search")
	}
}

func validate(req models.SearchRequest) error {
	if !(req.Center.Lat >= -90 && req.Center.Lat <= 90) {
		return fmt.Errorf("service: %w: invalid latitude: %f", ErrInvalidRequest, req.Center.Lat)
	}
	if !(req.Center.Lng >= -180 && req.Center.Lng <= 180) {
		return fmt.Errorf("service: %w: invalid longitude: %f", ErrInvalidRequest, req.Center.Lng)
	}
	if !(req.Radius > 0) || math.IsInf(req.Radius, 0) {
		return fmt.Errorf("service: %w: radius must be positive", ErrInvalidRequest)
	}
	if req.Category != "" && req.Category != models.AllCategories && !models.IsPlaceType(req.Category) {
		return fmt.Errorf("service: %w: unknown category %q", ErrInvalidRequest, req.Category)
	}
	return nil
}

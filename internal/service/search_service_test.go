package service

import (
	"context"
	"math"
	"testing"

	"placefinder-api/internal/models"
	"placefinder-api/internal/search"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockGridPlanner is a mock implementation of the GridPlanner interface
type MockGridPlanner struct {
	mock.Mock
}

func (m *MockGridPlanner) Points(center models.Coordinate, radius float64) ([]models.Coordinate, error) {
	args := m.Called(center, radius)
	return args.Get(0).([]models.Coordinate), args.Error(1)
}

// MockAggregator is a mock implementation of the Aggregator interface
type MockAggregator struct {
	mock.Mock
}

func (m *MockAggregator) Aggregate(ctx context.Context, points []models.Coordinate, categories []string, radius float64, fetchAllPages bool) search.Aggregation {
	args := m.Called(ctx, points, categories, radius, fetchAllPages)
	return args.Get(0).(search.Aggregation)
}

// MockSearchLogWriter is a mock implementation of the SearchLogWriter interface
type MockSearchLogWriter struct {
	mock.Mock
}

func (m *MockSearchLogWriter) SaveSearch(ctx context.Context, entry models.SearchLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

var paris = models.Coordinate{Lat: 48.8566, Lng: 2.3522}

func TestSearchService_Search(t *testing.T) {
	grid := []models.Coordinate{
		{Lat: 1, Lng: 1}, {Lat: 1, Lng: 2}, {Lat: 1, Lng: 3},
		{Lat: 2, Lng: 1}, paris, {Lat: 2, Lng: 3},
		{Lat: 3, Lng: 1}, {Lat: 3, Lng: 2}, {Lat: 3, Lng: 3},
	}

	tests := []struct {
		name               string
		req                models.SearchRequest
		expectedPoints     []models.Coordinate
		expectedCategories []string
		aggregation        search.Aggregation
		expectedIDs        []string
	}{
		{
			name:               "single point single category",
			req:                models.SearchRequest{Center: paris, Radius: 500, Category: "restaurant"},
			expectedPoints:     []models.Coordinate{paris},
			expectedCategories: []string{"restaurant"},
			aggregation: search.Aggregation{
				Places: []models.Place{
					{ID: "a", Name: "Le Procope", ReviewCount: 120},
					{ID: "b", Name: "Chez Nous", ReviewCount: 5},
					{ID: "c", Name: "Bouillon Chartier", ReviewCount: 80},
				},
				Queries: 1,
			},
			expectedIDs: []string{"a", "c", "b"},
		},
		{
			name:               "grid search over principal categories",
			req:                models.SearchRequest{Center: paris, Radius: 1000, Category: "all", GridEnabled: true, FetchAllPages: true},
			expectedPoints:     grid,
			expectedCategories: models.PrincipalCategories,
			aggregation: search.Aggregation{
				Places:  []models.Place{{ID: "x", ReviewCount: 1}, {ID: "y", ReviewCount: 9}},
				Queries: 45,
				Failures: []models.QueryFailure{
					{Location: grid[0], Category: "bar", Error: "boom"},
				},
			},
			expectedIDs: []string{"y", "x"},
		},
		{
			name:               "empty category scans principal categories",
			req:                models.SearchRequest{Center: paris, Radius: 500},
			expectedPoints:     []models.Coordinate{paris},
			expectedCategories: models.PrincipalCategories,
			aggregation:        search.Aggregation{Queries: 5},
			expectedIDs:        []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			planner := new(MockGridPlanner)
			aggregator := new(MockAggregator)
			logs := new(MockSearchLogWriter)
			service := NewSearchService(planner, aggregator, logs, 0)

			if tt.req.GridEnabled {
				planner.On("Points", tt.req.Center, tt.req.Radius).Return(grid, nil)
			}
			aggregator.On("Aggregate", mock.Anything, tt.expectedPoints, tt.expectedCategories, tt.req.Radius, tt.req.FetchAllPages).
				Return(tt.aggregation)
			logs.On("SaveSearch", mock.Anything, mock.MatchedBy(func(e models.SearchLog) bool {
				return e.QueryCount == tt.aggregation.Queries &&
					e.FailedQueries == len(tt.aggregation.Failures) &&
					e.PlaceCount == len(tt.aggregation.Places) &&
					e.GridEnabled == tt.req.GridEnabled
			})).Return(nil)

			// Execute
			result, err := service.Search(context.Background(), tt.req)

			// Assert
			require.NoError(t, err)
			assert.NotEmpty(t, result.SearchID)
			assert.Equal(t, tt.req, result.Request)
			assert.Equal(t, tt.aggregation.Queries, result.Queries)
			assert.Len(t, result.Failures, len(tt.aggregation.Failures))
			assert.NotNil(t, result.Places)

			ids := make([]string, 0, len(result.Places))
			for _, p := range result.Places {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.expectedIDs, ids)

			planner.AssertExpectations(t)
			aggregator.AssertExpectations(t)
			logs.AssertExpectations(t)
		})
	}
}

func TestSearchService_InvalidRequest(t *testing.T) {
	tests := []struct {
		name string
		req  models.SearchRequest
	}{
		{name: "latitude out of range", req: models.SearchRequest{Center: models.Coordinate{Lat: 91}, Radius: 500}},
		{name: "longitude out of range", req: models.SearchRequest{Center: models.Coordinate{Lng: -181}, Radius: 500}},
		{name: "latitude not a number", req: models.SearchRequest{Center: models.Coordinate{Lat: math.NaN()}, Radius: 500}},
		{name: "zero radius", req: models.SearchRequest{Center: paris}},
		{name: "negative radius", req: models.SearchRequest{Center: paris, Radius: -10}},
		{name: "unknown category", req: models.SearchRequest{Center: paris, Radius: 500, Category: "casino"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			aggregator := new(MockAggregator)
			service := NewSearchService(new(MockGridPlanner), aggregator, nil, 0)

			result, err := service.Search(context.Background(), tt.req)

			assert.Nil(t, result)
			assert.ErrorIs(t, err, ErrInvalidRequest)
			aggregator.AssertNotCalled(t, "Aggregate")
		})
	}
}

func TestSearchService_DegenerateGrid(t *testing.T) {
	pole := models.Coordinate{Lat: 90, Lng: 0}
	aggregator := new(MockAggregator)
	service := NewSearchService(search.NewGridPlanner(0), aggregator, nil, 0)

	result, err := service.Search(context.Background(), models.SearchRequest{
		Center:      pole,
		Radius:      500,
		Category:    "cafe",
		GridEnabled: true,
	})

	assert.Nil(t, result)
	var gridErr *search.DegenerateGridError
	assert.ErrorAs(t, err, &gridErr)
	aggregator.AssertNotCalled(t, "Aggregate")
}

func TestSearchService_LogFailureIsNotFatal(t *testing.T) {
	aggregator := new(MockAggregator)
	logs := new(MockSearchLogWriter)
	service := NewSearchService(new(MockGridPlanner), aggregator, logs, 0)

	aggregator.On("Aggregate", mock.Anything, []models.Coordinate{paris}, []string{"bar"}, 300.0, false).
		Return(search.Aggregation{Places: []models.Place{{ID: "a"}}, Queries: 1})
	logs.On("SaveSearch", mock.Anything, mock.Anything).Return(assert.AnError)

	result, err := service.Search(context.Background(), models.SearchRequest{Center: paris, Radius: 300, Category: "bar"})

	require.NoError(t, err)
	assert.Len(t, result.Places, 1)
	logs.AssertExpectations(t)
}

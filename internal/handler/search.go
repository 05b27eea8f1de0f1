package handler

import (
	"context"
	"errors"
	"net/http"

	"placefinder-api/internal/models"
	"placefinder-api/internal/search"
	"placefinder-api/internal/service"

	"github.com/gin-gonic/gin"
)

// SearchHandler handles place search requests
type SearchHandler struct {
	service SearchService
}

// SearchService interface for dependency injection
type SearchService interface {
	Search(context.Context, models.SearchRequest) (*models.ResultSet, error)
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(svc SearchService) *SearchHandler {
	return &SearchHandler{service: svc}
}

type searchParams struct {
	Lat      *float64 `form:"lat" binding:"required,gte=-90,lte=90"`
	Lng      *float64 `form:"lng" binding:"required,gte=-180,lte=180"`
	Radius   float64  `form:"radius" binding:"required,gt=0,lte=50000"`
	Category string   `form:"category"`
	Grid     bool     `form:"grid"`
	AllPages bool     `form:"all_pages"`
	Limit    int      `form:"limit" binding:"gte=0"`
}

// SearchResponse is the body of a successful search
type SearchResponse struct {
	SearchID string                `json:"search_id"`
	Total    int                   `json:"total"`
	Queries  int                   `json:"queries"`
	Places   []models.PlaceView    `json:"places"`
	Failures []models.QueryFailure `json:"failures"`
	Message  string                `json:"message,omitempty"`
}

// Search handles GET /search requests
//
//	@Summary	Find the most reviewed places around a point
//	@Tags		search
//	@Produce	json
//	@Param		lat			query		number	true	"Latitude"
//	@Param		lng			query		number	true	"Longitude"
//	@Param		radius		query		number	true	"Search radius in meters"
//	@Param		category	query		string	false	"Place type, or 'all' for the principal categories"
//	@Param		grid		query		bool	false	"Search a 3x3 grid around the point"
//	@Param		all_pages	query		bool	false	"Follow up to two continuation pages per query"
//	@Param		limit		query		int		false	"Return only the top N places"
//	@Success	200			{object}	SearchResponse
//	@Failure	400			{object}	map[string]string
//	@Failure	422			{object}	map[string]string
//	@Router		/search [get]
func (h *SearchHandler) Search(c *gin.Context) {
	var params searchParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid search parameters: " + err.Error()})
		return
	}

	req := models.SearchRequest{
		Center:        models.Coordinate{Lat: *params.Lat, Lng: *params.Lng},
		Radius:        params.Radius,
		Category:      params.Category,
		GridEnabled:   params.Grid,
		FetchAllPages: params.AllPages,
	}

	result, err := h.service.Search(c.Request.Context(), req)
	if err != nil {
		var gridErr *search.DegenerateGridError
		switch {
		case errors.Is(err, service.ErrInvalidRequest):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.As(err, &gridErr):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": gridErr.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	resp := SearchResponse{
		SearchID: result.SearchID,
		Total:    len(result.Places),
		Queries:  result.Queries,
		Places:   models.Views(search.TopN(result.Places, params.Limit)),
		Failures: result.Failures,
	}
	if resp.Failures == nil {
		resp.Failures = []models.QueryFailure{}
	}
	if resp.Total == 0 {
		resp.Message = "no places found nearby"
	}

	c.JSON(http.StatusOK, resp)
}

// Categories handles GET /categories requests
//
//	@Summary	List searchable place types
//	@Tags		search
//	@Produce	json
//	@Success	200	{object}	map[string][]string
//	@Router		/categories [get]
func Categories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"place_types": models.PlaceTypes,
		"principal":   models.PrincipalCategories,
	})
}

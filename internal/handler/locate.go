package handler

import (
	"context"
	"errors"
	"net/http"

	"placefinder-api/internal/models"
	"placefinder-api/internal/service"

	"github.com/gin-gonic/gin"
)

// LocateHandler handles free-text place lookups
type LocateHandler struct {
	service LocateService
}

// LocateService interface for dependency injection
type LocateService interface {
	Locate(context.Context, string) (*models.Landmark, error)
}

// NewLocateHandler creates a new locate handler
func NewLocateHandler(svc LocateService) *LocateHandler {
	return &LocateHandler{service: svc}
}

// Locate handles GET /locate requests
//
//	@Summary	Resolve a place name into a coordinate
//	@Tags		locate
//	@Produce	json
//	@Param		q	query		string	true	"Place or city name"
//	@Success	200	{object}	models.Landmark
//	@Failure	400	{object}	map[string]string
//	@Failure	404	{object}	map[string]string
//	@Router		/locate [get]
func (h *LocateHandler) Locate(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'q'"})
		return
	}

	landmark, err := h.service.Locate(c.Request.Context(), query)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if landmark == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "place not found, try a different query"})
		return
	}

	c.JSON(http.StatusOK, landmark)
}

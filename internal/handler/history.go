package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"placefinder-api/internal/models"
	"placefinder-api/internal/service"

	"github.com/gin-gonic/gin"
)

// HistoryHandler lists recent searches
type HistoryHandler struct {
	service HistoryService
}

// HistoryService interface for dependency injection
type HistoryService interface {
	Recent(context.Context, int) ([]models.SearchLog, error)
}

// NewHistoryHandler creates a new history handler
func NewHistoryHandler(svc HistoryService) *HistoryHandler {
	return &HistoryHandler{service: svc}
}

// Recent handles GET /searches requests
//
//	@Summary	List recent searches
//	@Tags		history
//	@Produce	json
//	@Param		limit	query		int	false	"Maximum number of entries"
//	@Success	200		{array}		models.SearchLog
//	@Failure	503		{object}	map[string]string
//	@Router		/searches [get]
func (h *HistoryHandler) Recent(c *gin.Context) {
	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		var err error
		limit, err = strconv.Atoi(limitStr)
		if err != nil || limit < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit format"})
			return
		}
	}

	entries, err := h.service.Recent(c.Request.Context(), limit)
	if err != nil {
		if errors.Is(err, service.ErrHistoryUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, entries)
}

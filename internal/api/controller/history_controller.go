package controller

import (
	"net/http"
	"strconv"

	"bookatlas/book-discovery/internal/api/models"
	"bookatlas/book-discovery/internal/api/response"
	"bookatlas/book-discovery/internal/api/service"

	"github.com/gin-gonic/gin"
)

// HistoryController handles search-history HTTP requests.
type HistoryController struct {
	historyService service.HistoryService
}

// NewHistoryController creates a new HistoryController.
func NewHistoryController(historyService service.HistoryService) *HistoryController {
	return &HistoryController{historyService: historyService}
}

// Log handles POST /search-history.
func (hc *HistoryController) Log(c *gin.Context) {
	var req models.LogSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	entry, err := hc.historyService.Log(c.Request.Context(), &req)
	if err != nil {
		response.ServerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "search saved",
		"history": entry,
	})
}

// ListByUser handles GET /search-history/:user_id?limit=20.
func (hc *HistoryController) ListByUser(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		response.Message(c, http.StatusBadRequest, "invalid user id")
		return
	}

	limit := service.DefaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.Message(c, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}

	entries, err := hc.historyService.ListForUser(c.Request.Context(), userID, limit)
	if err != nil {
		response.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

package controller

import (
	"net/http"
	"strconv"

	"bookatlas/book-discovery/internal/api/response"
	"bookatlas/book-discovery/internal/api/service"

	"github.com/gin-gonic/gin"
)

// RecommendationController handles GET /recommendations/:user_id.
type RecommendationController struct {
	recService service.RecommendationService
}

// NewRecommendationController creates a new RecommendationController.
func NewRecommendationController(recService service.RecommendationService) *RecommendationController {
	return &RecommendationController{recService: recService}
}

// Get returns the derived search hints for a user.
func (rc *RecommendationController) Get(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		response.Message(c, http.StatusBadRequest, "invalid user id")
		return
	}

	rec, err := rc.recService.Recommend(c.Request.Context(), userID)
	if err != nil {
		response.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, rec)
}

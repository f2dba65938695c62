package controller

import (
	"errors"
	"net/http"
	"strconv"

	"bookatlas/book-discovery/internal/api/models"
	"bookatlas/book-discovery/internal/api/response"
	"bookatlas/book-discovery/internal/api/service"

	"github.com/gin-gonic/gin"
)

// FavoriteController handles favorite-book HTTP requests.
type FavoriteController struct {
	favService service.FavoriteService
}

// NewFavoriteController creates a new FavoriteController.
func NewFavoriteController(favService service.FavoriteService) *FavoriteController {
	return &FavoriteController{favService: favService}
}

// Add handles POST /favorites.
func (fc *FavoriteController) Add(c *gin.Context) {
	var req models.AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	fav, err := fc.favService.Add(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, models.ErrAlreadyFavorited) {
			response.Message(c, http.StatusBadRequest, "already in favorites")
			return
		}
		response.ServerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "added to favorites",
		"favorite": fav,
	})
}

// ListByUser handles GET /favorites/:user_id.
func (fc *FavoriteController) ListByUser(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		response.Message(c, http.StatusBadRequest, "invalid user id")
		return
	}

	favorites, err := fc.favService.ListForUser(c.Request.Context(), userID)
	if err != nil {
		response.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, favorites)
}

// Remove handles DELETE /favorites/:favorite_id. The favorite is deleted
// by its own id alone; no check ties it to the caller's user.
func (fc *FavoriteController) Remove(c *gin.Context) {
	favoriteID, err := strconv.ParseInt(c.Param("favorite_id"), 10, 64)
	if err != nil {
		response.Message(c, http.StatusBadRequest, "invalid favorite id")
		return
	}

	if err := fc.favService.Remove(c.Request.Context(), favoriteID); err != nil {
		if errors.Is(err, models.ErrFavoriteNotFound) {
			response.Message(c, http.StatusNotFound, "favorite not found")
			return
		}
		response.ServerError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "removed from favorites")
}

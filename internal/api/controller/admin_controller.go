package controller

import (
	"net/http"

	"bookatlas/book-discovery/internal/api/response"
	"bookatlas/book-discovery/internal/api/service"

	"github.com/gin-gonic/gin"
)

// AdminController serves the global read-only views. These routes carry
// no authentication; the is_admin flag on users is informational only.
type AdminController struct {
	adminService service.AdminService
}

// NewAdminController creates a new AdminController.
func NewAdminController(adminService service.AdminService) *AdminController {
	return &AdminController{adminService: adminService}
}

// Users handles GET /admin/users.
func (ac *AdminController) Users(c *gin.Context) {
	users, err := ac.adminService.AllUsers(c.Request.Context())
	if err != nil {
		response.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// Favorites handles GET /admin/favorites.
func (ac *AdminController) Favorites(c *gin.Context) {
	favorites, err := ac.adminService.AllFavorites(c.Request.Context())
	if err != nil {
		response.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, favorites)
}

// History handles GET /admin/search-history.
func (ac *AdminController) History(c *gin.Context) {
	entries, err := ac.adminService.AllHistory(c.Request.Context())
	if err != nil {
		response.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// Stats handles GET /admin/stats.
func (ac *AdminController) Stats(c *gin.Context) {
	stats, err := ac.adminService.Stats(c.Request.Context())
	if err != nil {
		response.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

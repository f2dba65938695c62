package controller

import (
	"errors"
	"net/http"

	"bookatlas/book-discovery/internal/api/models"
	"bookatlas/book-discovery/internal/api/response"
	"bookatlas/book-discovery/internal/api/service"

	"github.com/gin-gonic/gin"
)

// UserController handles registration and login requests.
type UserController struct {
	userService service.UserService
}

// NewUserController creates a new UserController.
func NewUserController(userService service.UserService) *UserController {
	return &UserController{userService: userService}
}

// Register handles POST /register.
func (uc *UserController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	_, err := uc.userService.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, models.ErrDuplicateUsername) {
			response.Message(c, http.StatusBadRequest, "username already exists")
			return
		}
		response.ServerError(c, err)
		return
	}

	response.Message(c, http.StatusCreated, "user created successfully")
}

// Login handles POST /login. On success the user's identity is returned
// directly; there is no session to establish.
func (uc *UserController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	user, err := uc.userService.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "invalid credentials",
			})
			return
		}
		response.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.LoginResponse{
		Status:   "success",
		Message:  "login successful",
		UserID:   user.ID,
		Username: user.Username,
		IsAdmin:  user.IsAdmin,
	})
}

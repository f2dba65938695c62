package server

import (
	"net/http"

	"bookatlas/book-discovery/internal/api/controller"

	"github.com/gin-gonic/gin"
)

// Server owns the Gin engine and its route table. Each route maps to
// exactly one controller method; controllers never call back in.
type Server struct {
	engine *gin.Engine
}

// NewServer wires the controllers into a Gin engine.
func NewServer(
	userController *controller.UserController,
	favoriteController *controller.FavoriteController,
	historyController *controller.HistoryController,
	recommendationController *controller.RecommendationController,
	adminController *controller.AdminController,
) *Server {
	engine := gin.New()
	engine.Use(gin.Recovery(), RequestID(), Observe())

	engine.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "API running"})
	})

	engine.POST("/register", userController.Register)
	engine.POST("/login", userController.Login)

	engine.POST("/favorites", favoriteController.Add)
	engine.GET("/favorites/:user_id", favoriteController.ListByUser)
	engine.DELETE("/favorites/:favorite_id", favoriteController.Remove)

	engine.POST("/search-history", historyController.Log)
	engine.GET("/search-history/:user_id", historyController.ListByUser)

	engine.GET("/recommendations/:user_id", recommendationController.Get)

	admin := engine.Group("/admin")
	{
		admin.GET("/users", adminController.Users)
		admin.GET("/favorites", adminController.Favorites)
		admin.GET("/search-history", adminController.History)
		admin.GET("/stats", adminController.Stats)
	}

	return &Server{engine: engine}
}

// Engine exposes the underlying Gin engine for http.Server and tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

package routes

import (
	"net/http"

	"teamfolio/internal/handlers"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	router *gin.Engine,
	authHandler *handlers.AuthHandler,
	projectHandler *handlers.ProjectHandler,
	teamHandler *handlers.TeamHandler,
	metaHandler *handlers.MetaHandler,
) {
	api := router.Group("/api/v1")

	authRoutes := NewAuthRoutes(authHandler)
	authRoutes.RegisterRoutes(api)

	projectRoutes := NewProjectRoutes(projectHandler)
	projectRoutes.RegisterRoutes(api)

	teamRoutes := NewTeamRoutes(teamHandler)
	teamRoutes.RegisterRoutes(api)

	metaRoutes := NewMetaRoutes(metaHandler)
	metaRoutes.RegisterRoutes(router)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
}

package routes

import (
	"teamfolio/internal/handlers"
	"teamfolio/internal/middlewares"

	"github.com/gin-gonic/gin"
)

type ProjectRoutes struct {
	handler *handlers.ProjectHandler
}

func NewProjectRoutes(handler *handlers.ProjectHandler) *ProjectRoutes {
	return &ProjectRoutes{handler: handler}
}

func (r *ProjectRoutes) RegisterRoutes(router *gin.RouterGroup) {
	// Public read surface
	projects := router.Group("/projects")
	{
		projects.GET("", r.handler.ListProjects)
		projects.GET("/:id", r.handler.GetProject)
	}

	// Admin mutations all sit behind the authentication guard
	admin := router.Group("/admin/projects")
	admin.Use(middlewares.Authenticate)
	{
		admin.POST("", r.handler.CreateProject)
		admin.PUT("/order", r.handler.ReorderProjects)
		admin.PUT("/:id", r.handler.UpdateProject)
		admin.DELETE("/:id", r.handler.DeleteProject)
		admin.POST("/:id/refresh-readme", r.handler.RefreshReadme)
	}
}

package routes

import (
	"teamfolio/internal/handlers"
	"teamfolio/internal/middlewares"

	"github.com/gin-gonic/gin"
)

type TeamRoutes struct {
	handler *handlers.TeamHandler
}

func NewTeamRoutes(handler *handlers.TeamHandler) *TeamRoutes {
	return &TeamRoutes{handler: handler}
}

func (r *TeamRoutes) RegisterRoutes(router *gin.RouterGroup) {
	team := router.Group("/team")
	{
		team.GET("", r.handler.ListTeamMembers)
		team.GET("/:id", r.handler.GetTeamMember)
	}

	admin := router.Group("/admin/team")
	admin.Use(middlewares.Authenticate)
	{
		admin.POST("", r.handler.CreateTeamMember)
		admin.PUT("/:id", r.handler.UpdateTeamMember)
		admin.DELETE("/:id", r.handler.DeleteTeamMember)
	}
}

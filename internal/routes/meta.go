package routes

import (
	"teamfolio/internal/handlers"

	"github.com/gin-gonic/gin"
)

type MetaRoutes struct {
	handler *handlers.MetaHandler
}

func NewMetaRoutes(handler *handlers.MetaHandler) *MetaRoutes {
	return &MetaRoutes{handler: handler}
}

// Crawler-facing endpoints live at the root, not under /api/v1.
func (r *MetaRoutes) RegisterRoutes(router *gin.Engine) {
	router.GET("/sitemap.xml", r.handler.Sitemap)
	router.GET("/robots.txt", r.handler.Robots)
	router.GET("/og", r.handler.OGImage)
}

package routes

import (
	"github.com/gin-gonic/gin"

	templatehandlers "luster/internal/interfaces/http/handlers/template"
	"luster/internal/interfaces/http/middleware"
)

type TemplateRouteConfig struct {
	TemplateHandler *templatehandlers.TemplateHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

func SetupTemplateRoutes(engine *gin.Engine, config *TemplateRouteConfig) {
	templates := engine.Group("/inspection-templates")
	templates.Use(config.AuthMiddleware.RequireAuth())
	{
		templates.POST("", config.TemplateHandler.CreateTemplate)
		templates.GET("", config.TemplateHandler.ListTemplates)

		templates.POST("/:id/archive", config.TemplateHandler.ArchiveTemplate)
		templates.POST("/:id/restore", config.TemplateHandler.RestoreTemplate)

		templates.GET("/:id", config.TemplateHandler.GetTemplate)
		templates.PATCH("/:id", config.TemplateHandler.UpdateTemplate)
	}
}

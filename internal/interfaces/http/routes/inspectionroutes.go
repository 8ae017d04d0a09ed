package routes

import (
	"github.com/gin-gonic/gin"

	inspectionhandlers "luster/internal/interfaces/http/handlers/inspection"
	"luster/internal/interfaces/http/middleware"
)

type InspectionRouteConfig struct {
	InspectionHandler *inspectionhandlers.InspectionHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

func SetupInspectionRoutes(engine *gin.Engine, config *InspectionRouteConfig) {
	inspections := engine.Group("/inspections")
	inspections.Use(config.AuthMiddleware.RequireAuth())
	{
		// IMPORTANT: Register specific paths BEFORE parameterized paths to avoid route conflicts

		inspections.POST("", config.InspectionHandler.CreateInspection)
		inspections.GET("", config.InspectionHandler.ListInspections)

		// Lifecycle transitions
		inspections.POST("/:id/start", config.InspectionHandler.StartInspection)
		inspections.POST("/:id/complete", config.InspectionHandler.CompleteInspection)
		inspections.POST("/:id/cancel", config.InspectionHandler.CancelInspection)

		// Corrective actions
		inspections.POST("/:id/corrective-actions", config.InspectionHandler.CreateCorrectiveAction)
		inspections.PATCH("/:id/corrective-actions/:actionId", config.InspectionHandler.UpdateCorrectiveAction)
		inspections.POST("/:id/corrective-actions/:actionId/verify", config.InspectionHandler.VerifyCorrectiveAction)

		// Sign-offs and re-inspections
		inspections.POST("/:id/signoffs", config.InspectionHandler.CreateSignoff)
		inspections.POST("/:id/reinspections", config.InspectionHandler.CreateReinspection)

		// Read-side extras
		inspections.GET("/:id/activities", config.InspectionHandler.ListActivities)
		inspections.GET("/:id/report", config.InspectionHandler.RenderReport)

		// Generic parameterized routes (must come LAST)
		inspections.GET("/:id", config.InspectionHandler.GetInspection)
		inspections.DELETE("/:id", config.InspectionHandler.DeleteInspection)
	}
}
